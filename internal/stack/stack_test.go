package stack

import (
	"errors"
	"testing"

	"snapblocks/internal/geom"
)

// fixed measures every block as w x h.
type fixed struct{ w, h float64 }

func (f fixed) Measure(Content) (float64, float64) { return f.w, f.h }

func blocks(labels ...string) []*Block {
	out := make([]*Block, len(labels))
	for i, l := range labels {
		out[i] = New(Content{Kind: "statement", Label: l})
	}
	return out
}

func labels(s *Segment) []string {
	var out []string
	for _, b := range s.Blocks() {
		out = append(out, b.Content().Label)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestConnectorZones(t *testing.T) {
	b := New(Content{Label: "x"})
	b.SetSize(100, 40)
	b.moveTo(0, 35)

	tests := []struct {
		name string
		got  geom.Box
		want geom.Box
	}{
		{"top", b.ConnectorZoneTop(), geom.NewBox(-10, 25, 70, 55)},
		{"bottom", b.ConnectorZoneBottom(), geom.NewBox(-10, 55, 70, 85)},
		{"union", b.ConnectorZone(), geom.NewBox(-10, 25, 70, 85)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("zone = %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestZonesSymmetric(t *testing.T) {
	b := NewWithZone(Content{}, Zone{MarginX: 2, MarginY: 1, Reach: 12})
	b.SetSize(20, 3)
	top, bottom := b.ConnectorZoneTop(), b.ConnectorZoneBottom()
	if top.Width() != bottom.Width() || top.Height() != bottom.Height() {
		t.Errorf("top %vx%v, bottom %vx%v: want equal extents",
			top.Width(), top.Height(), bottom.Width(), bottom.Height())
	}
}

func TestCopy(t *testing.T) {
	orig := NewWithZone(Content{Kind: "move", Label: "forward"}, Zone{1, 2, 3})
	orig.SetSize(10, 10)
	orig.HighlightTopConnector(true)
	NewSegment(7, orig)

	c := orig.Copy()
	if c == orig {
		t.Fatal("Copy() returned the same pointer")
	}
	if c.ID() == orig.ID() {
		t.Error("Copy() kept the ID")
	}
	if c.Content() != orig.Content() || c.Zone() != orig.Zone() {
		t.Errorf("Copy() = %+v/%+v, want %+v/%+v", c.Content(), c.Zone(), orig.Content(), orig.Zone())
	}
	if c.Drawn() || c.Top() != NoSegment || c.Index() != -1 {
		t.Errorf("Copy() drawn=%v top=%d index=%d, want unlinked", c.Drawn(), c.Top(), c.Index())
	}
	if top, bottom := c.Highlighted(); top || bottom {
		t.Error("Copy() kept highlights")
	}
}

func TestHighlights(t *testing.T) {
	b := New(Content{})
	b.HighlightTopConnector(true)
	if top, bottom := b.Highlighted(); !top || bottom {
		t.Errorf("Highlighted() = %v, %v, want true, false", top, bottom)
	}
	b.HighlightBottomConnector(true)
	b.ClearHighlights()
	if top, bottom := b.Highlighted(); top || bottom {
		t.Errorf("Highlighted() = %v, %v after clear", top, bottom)
	}
}

func TestSegmentChain(t *testing.T) {
	s := NewSegment(1, blocks("a", "b", "c")...)
	if err := s.Check(); err != nil {
		t.Fatalf("Check() = %v", err)
	}
	if s.Len() != 3 || s.First().Content().Label != "a" || s.Last().Content().Label != "c" {
		t.Fatalf("labels = %v", labels(s))
	}
	b := s.At(1)
	if s.Previous(b) != s.First() || s.Next(b) != s.Last() {
		t.Error("Previous/Next of middle member wrong")
	}
	if s.Previous(s.First()) != nil || s.Next(s.Last()) != nil {
		t.Error("Previous(first) or Next(last) not nil")
	}
	if s.Next(New(Content{})) != nil {
		t.Error("Next(non-member) not nil")
	}
}

func TestInsertAfter(t *testing.T) {
	tests := []struct {
		name string
		at   int
		want []string
	}{
		{"head", -1, []string{"x", "y", "a", "b", "c"}},
		{"middle", 1, []string{"a", "b", "x", "y", "c"}},
		{"tail", 2, []string{"a", "b", "c", "x", "y"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSegment(1, blocks("a", "b", "c")...)
			s.InsertAfter(tt.at, blocks("x", "y")...)
			if got := labels(s); !equal(got, tt.want) {
				t.Errorf("labels = %v, want %v", got, tt.want)
			}
			if err := s.Check(); err != nil {
				t.Errorf("Check() = %v", err)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	s := NewSegment(1, blocks("a", "b", "c", "d")...)
	s.Layout(0, fixed{10, 10})
	tail := s.Split(2, 2)

	if got := labels(s); !equal(got, []string{"a", "b"}) {
		t.Errorf("head labels = %v", got)
	}
	if got := labels(tail); !equal(got, []string{"c", "d"}) {
		t.Errorf("tail labels = %v", got)
	}
	if _, ok := s.BoundingConnectorBox(); ok {
		t.Error("head bounding box still valid after Split")
	}
	for _, seg := range []*Segment{s, tail} {
		if err := seg.Check(); err != nil {
			t.Errorf("Check(%d) = %v", seg.ID(), err)
		}
	}
	if tail.First().Top() != 2 {
		t.Errorf("tail.First().Top() = %d, want 2", tail.First().Top())
	}
}

func TestRemoveAt(t *testing.T) {
	s := NewSegment(1, blocks("a", "b", "c")...)
	b := s.RemoveAt(1)
	if b.Top() != NoSegment || b.Index() != -1 {
		t.Errorf("removed block still owned: top=%d index=%d", b.Top(), b.Index())
	}
	if got := labels(s); !equal(got, []string{"a", "c"}) {
		t.Errorf("labels = %v", got)
	}
	if err := s.Check(); err != nil {
		t.Errorf("Check() = %v", err)
	}
}

func TestTake(t *testing.T) {
	s := NewSegment(1, blocks("a", "b")...)
	got := s.Take()
	if len(got) != 2 || s.Len() != 0 {
		t.Fatalf("Take() = %d blocks, Len() = %d", len(got), s.Len())
	}
	if !errors.Is(s.Check(), ErrEmpty) {
		t.Error("Check() on emptied segment is not ErrEmpty")
	}
	for _, b := range got {
		if b.Top() != NoSegment {
			t.Errorf("taken block owned by %d", b.Top())
		}
	}
}

func TestLayout(t *testing.T) {
	s := NewSegment(1, blocks("a", "b", "c")...)
	s.Layout(-5, fixed{100, 40})

	for i, want := range []float64{0, 35, 70} {
		if got := s.At(i).Position(); got != (geom.Point{X: 0, Y: want}) {
			t.Errorf("At(%d).Position() = %+v, want y=%v", i, got, want)
		}
	}
	box, ok := s.BoundingConnectorBox()
	if !ok {
		t.Fatal("BoundingConnectorBox() not valid after Layout")
	}
	if want := geom.NewBox(-10, -10, 70, 120); box != want {
		t.Errorf("BoundingConnectorBox() = %+v, want %+v", box, want)
	}
	if w, h := s.Size(); w != 100 || h != 110 {
		t.Errorf("Size() = %v, %v, want 100, 110", w, h)
	}
}

func TestCheckDetectsStaleOwner(t *testing.T) {
	s := NewSegment(1, blocks("a", "b")...)
	NewSegment(2, s.At(1))
	if err := s.Check(); !errors.Is(err, ErrOwner) {
		t.Errorf("Check() = %v, want ErrOwner", err)
	}
}
