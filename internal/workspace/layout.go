package workspace

// relayout stacks the members of every placed Segment top to bottom and
// recomputes their bounding connector boxes. Callers hold w.mu.
func (w *Workspace) relayout() {
	for _, id := range w.forest {
		w.arena[id].Layout(w.spacing, w.renderer)
	}
	w.dirty = true
}

// redraw runs the redraw hook if a relayout happened since the last call.
// It must be called without holding w.mu.
func (w *Workspace) redraw() {
	w.mu.Lock()
	fn, dirty := w.onRedraw, w.dirty
	w.dirty = false
	w.mu.Unlock()

	if dirty && fn != nil {
		fn()
	}
}
