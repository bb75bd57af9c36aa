package workspace

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"snapblocks/internal/stack"
)

// Check verifies the structural invariants of the whole workspace: every
// forest ID names an arena record exactly once, every Segment passes
// stack.Segment.Check, placed Segments are non-empty, and no Block is
// reachable from two Segments.
//
// Check walks every Block. It is meant for tests and debugging, not for the
// editing path.
func (w *Workspace) Check() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var errs []error

	inForest := make(map[stack.ID]bool, len(w.forest))
	for _, id := range w.forest {
		if inForest[id] {
			errs = append(errs, fmt.Errorf("segment %d placed twice", id))
		}
		inForest[id] = true
		if _, ok := w.arena[id]; !ok {
			errs = append(errs, fmt.Errorf("placed segment %d: %w", id, ErrUnknownSegment))
		}
	}

	owner := make(map[*stack.Block]stack.ID)
	for _, id := range slices.Sorted(maps.Keys(w.arena)) {
		s := w.arena[id]
		if s.ID() != id {
			errs = append(errs, fmt.Errorf("arena slot %d holds segment %d", id, s.ID()))
		}
		if err := s.Check(); err != nil {
			// Empty floating segments are transient; empty placed ones are not.
			if !errors.Is(err, stack.ErrEmpty) || inForest[id] {
				errs = append(errs, err)
			}
		}
		for _, b := range s.Blocks() {
			if b == nil {
				continue
			}
			if prev, dup := owner[b]; dup {
				errs = append(errs, fmt.Errorf("block %s in segments %d and %d: %w", b.ID(), prev, id, ErrDuplicateBlock))
				continue
			}
			owner[b] = id
		}
	}
	return errors.Join(errs...)
}
