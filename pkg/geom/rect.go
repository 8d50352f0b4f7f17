package geom

// Quadrant indices, shared by Rect.Quarters and every quadindex traversal
// that needs to push or order a node's four children.
const (
	NW = 0
	NE = 1
	SW = 2
	SE = 3
)

// Rect is the closed axis-aligned region [X, X+W] x [Y, Y+H]. W and H are
// assumed non-negative; a Rect with W or H of zero degenerates to a segment
// or a point, which is a legal (if unusual) boundary.
type Rect struct {
	X, Y, W, H float32
}

// ContainsPoint reports whether p lies within the closed rectangle.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Overlaps reports whether the two closed rectangles share at least one
// point.
func (r Rect) Overlaps(o Rect) bool {
	return r.X <= o.X+o.W && o.X <= r.X+r.W && r.Y <= o.Y+o.H && o.Y <= r.Y+r.H
}

// IntersectsCircle reports whether the rectangle and the disk of the given
// radius around center share a point. Comparison is done in squared
// distance, so no square root is ever computed.
func (r Rect) IntersectsCircle(center Point, radius float32) bool {
	closestX := clampF32(center.X, r.X, r.X+r.W)
	closestY := clampF32(center.Y, r.Y, r.Y+r.H)
	dx := float64(center.X - closestX)
	dy := float64(center.Y - closestY)
	rad := float64(radius)
	return dx*dx+dy*dy <= rad*rad
}

// Union returns the smallest rectangle enclosing both r and o.
func (r Rect) Union(o Rect) Rect {
	minX := min(r.X, o.X)
	minY := min(r.Y, o.Y)
	maxX := max(r.X+r.W, o.X+o.W)
	maxY := max(r.Y+r.H, o.Y+o.H)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Corners returns the rectangle's four corners in perimeter order:
// bottom-left, bottom-right, top-right, top-left.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
	}
}

// Quarters splits r into its four quadrant rectangles, in NW, NE, SW, SE
// order. The midlines are shared by adjacent quadrants here (each returned
// Rect is itself closed on all four sides) because Quarters describes
// geometry for display and overlap pruning, not point routing; QuadrantIndex
// is the single place that resolves which quadrant a point on a split line
// belongs to.
func (r Rect) Quarters() [4]Rect {
	midX := r.X + r.W/2
	midY := r.Y + r.H/2
	nw := Rect{X: r.X, Y: midY, W: midX - r.X, H: r.Y + r.H - midY}
	ne := Rect{X: midX, Y: midY, W: r.X + r.W - midX, H: r.Y + r.H - midY}
	sw := Rect{X: r.X, Y: r.Y, W: midX - r.X, H: midY - r.Y}
	se := Rect{X: midX, Y: r.Y, W: r.X + r.W - midX, H: midY - r.Y}
	var out [4]Rect
	out[NW] = nw
	out[NE] = ne
	out[SW] = sw
	out[SE] = se
	return out
}

// QuadrantIndex decides which of boundary's four quarters point p routes
// into. A point exactly on the vertical split line is assigned to the
// east side (NE/SE); a point exactly on the horizontal split line is
// assigned to the north side (NW/NE). This upper/right bias is the single
// rule that removes split-line ambiguity and must be used everywhere a
// point is routed into a child quadrant.
func QuadrantIndex(boundary Rect, p Point) int {
	midX := boundary.X + boundary.W/2
	midY := boundary.Y + boundary.H/2
	east := p.X >= midX
	north := p.Y >= midY
	switch {
	case !east && north:
		return NW
	case east && north:
		return NE
	case !east && !north:
		return SW
	default:
		return SE
	}
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
