package geom

// Frame converts points between a local coordinate system and its parent.
type Frame interface {
	// ToLocal maps a point given in parent coordinates into the frame.
	ToLocal(p Point) Point
	// ToParent maps a point given in frame coordinates into the parent.
	ToParent(p Point) Point
}

// Offset is a frame whose origin sits at (X, Y) in its parent, with no
// scaling. Stack origins and the editor's pan are offsets.
type Offset Point

// ToLocal implements Frame.
func (o Offset) ToLocal(p Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

// ToParent implements Frame.
func (o Offset) ToParent(p Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// Identity is the frame that maps every point to itself.
var Identity Frame = Offset{}
