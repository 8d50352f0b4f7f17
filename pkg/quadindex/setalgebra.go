package quadindex

import "github.com/kestrel-geo/quadindex/pkg/geom"

// Merge builds a fresh tree containing every entry of a and b. On a point
// collision a's entry wins. The result's boundary is the union of both
// inputs' boundaries.
func Merge[V any](a, b *Tree[V], capacity int) (*Tree[V], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	out := New[V](a.boundary.Union(b.boundary))
	for _, e := range b.Entries() {
		if err := out.Insert(e.Point, e.Value, capacity); err != nil {
			return nil, err
		}
	}
	for _, e := range a.Entries() {
		if err := out.Insert(e.Point, e.Value, capacity); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Intersection builds a fresh tree containing a's entries whose point is
// also present in b. The result's boundary is the union of both inputs'
// boundaries, matching Merge.
func Intersection[V any](a, b *Tree[V], capacity int) (*Tree[V], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	out := New[V](a.boundary.Union(b.boundary))
	for _, e := range a.Entries() {
		if _, ok := b.Find(e.Point); ok {
			if err := out.Insert(e.Point, e.Value, capacity); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Difference builds a fresh tree containing a's entries whose point is not
// present in b. The result's boundary is the union of both inputs'
// boundaries, matching Merge.
func Difference[V any](a, b *Tree[V], capacity int) (*Tree[V], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	out := New[V](a.boundary.Union(b.boundary))
	for _, e := range a.Entries() {
		if _, ok := b.Find(e.Point); !ok {
			if err := out.Insert(e.Point, e.Value, capacity); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Filter builds a fresh tree containing only t's entries for which pred
// returns true.
func Filter[V any](t *Tree[V], capacity int, pred func(geom.Point, V) bool) (*Tree[V], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	out := New[V](t.boundary)
	for _, e := range t.Entries() {
		if pred(e.Point, e.Value) {
			if err := out.Insert(e.Point, e.Value, capacity); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
