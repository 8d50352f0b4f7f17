package quadindex

import "github.com/kestrel-geo/quadindex/pkg/geom"

// traverse walks the tree with an explicit stack, pruning any subtree
// whose boundary fails prune, and calling visit for every entry reached in
// a surviving leaf. Children are pushed in reverse so they pop, and so
// visit fires, in NW, NE, SW, SE order.
func (t *Tree[V]) traverse(prune func(geom.Rect) bool, visit func(Entry[V])) {
	stack := []*node[V]{t.root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !prune(cur.boundary) {
			continue
		}
		if cur.isLeaf {
			for _, e := range cur.entries {
				visit(e)
			}
			continue
		}
		stack = append(stack, cur.children[geom.SE], cur.children[geom.SW], cur.children[geom.NE], cur.children[geom.NW])
	}
}

// Query returns every entry whose point lies within r.
func (t *Tree[V]) Query(r geom.Rect) []Entry[V] {
	var out []Entry[V]
	t.traverse(func(b geom.Rect) bool { return b.Overlaps(r) }, func(e Entry[V]) {
		if r.ContainsPoint(e.Point) {
			out = append(out, e)
		}
	})
	return out
}

// QueryCircle returns every entry within radius of center.
func (t *Tree[V]) QueryCircle(center geom.Point, radius float32) []Entry[V] {
	var out []Entry[V]
	r2 := float64(radius) * float64(radius)
	t.traverse(func(b geom.Rect) bool { return b.IntersectsCircle(center, radius) }, func(e Entry[V]) {
		dx := float64(e.Point.X - center.X)
		dy := float64(e.Point.Y - center.Y)
		if dx*dx+dy*dy <= r2 {
			out = append(out, e)
		}
	})
	return out
}

// QueryPolygon returns every entry inside poly. A malformed polygon (fewer
// than 3 vertices) matches nothing and is not an error.
func (t *Tree[V]) QueryPolygon(poly geom.Polygon) []Entry[V] {
	var out []Entry[V]
	if len(poly) < 3 {
		return out
	}
	t.traverse(func(b geom.Rect) bool { return b.IntersectsPolygon(poly) }, func(e Entry[V]) {
		if geom.PointInPolygon(e.Point, poly) {
			out = append(out, e)
		}
	})
	return out
}

// QueryRay returns every entry lying on the traced segment of ray. A
// zero-direction ray, or one with MaxLen <= 0, matches nothing and is not
// an error.
func (t *Tree[V]) QueryRay(ray geom.Ray) []Entry[V] {
	var out []Entry[V]
	if (ray.Dir.X == 0 && ray.Dir.Y == 0) || ray.MaxLen <= 0 {
		return out
	}
	t.traverse(func(b geom.Rect) bool { return b.IntersectsRay(ray) }, func(e Entry[V]) {
		if geom.PointOnRay(e.Point, ray) {
			out = append(out, e)
		}
	})
	return out
}

// QuerySector returns every entry inside s.
func (t *Tree[V]) QuerySector(s geom.Sector) []Entry[V] {
	var out []Entry[V]
	t.traverse(func(b geom.Rect) bool { return b.IntersectsSector(s) }, func(e Entry[V]) {
		if geom.PointInSector(e.Point, s) {
			out = append(out, e)
		}
	})
	return out
}

// Find looks up the value stored at p, if any.
func (t *Tree[V]) Find(p geom.Point) (V, bool) {
	var zero V
	cur := t.root
	for {
		if cur.isLeaf {
			for _, e := range cur.entries {
				if e.Point == p {
					return e.Value, true
				}
			}
			return zero, false
		}
		if !cur.boundary.ContainsPoint(p) {
			return zero, false
		}
		idx := geom.QuadrantIndex(cur.boundary, p)
		cur = cur.children[idx]
	}
}

// Entries returns every entry in the tree, in NW, NE, SW, SE traversal
// order.
func (t *Tree[V]) Entries() []Entry[V] {
	var out []Entry[V]
	t.traverse(func(geom.Rect) bool { return true }, func(e Entry[V]) {
		out = append(out, e)
	})
	return out
}
