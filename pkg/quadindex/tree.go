package quadindex

import (
	"fmt"

	"github.com/kestrel-geo/quadindex/pkg/geom"
	"github.com/kestrel-geo/quadindex/pkg/quadindex/internal/nodepool"
)

// Tree is a region quadtree over a fixed boundary, storing V values keyed
// by geom.Point. A Tree is a plain value with no internal synchronization:
// it is meant for single-owner use, the same way a map or slice is.
type Tree[V any] struct {
	root     *node[V]
	boundary geom.Rect
	pool     *nodepool.Pool[node[V]]
}

// New creates an empty Tree over boundary. capacity is not fixed at
// construction time; it is supplied again on every mutating call, matching
// a region quadtree where the split threshold is a per-call parameter
// rather than a structural constant.
//
// New panics if boundary is degenerate (negative width or height), the same
// way the teacher's NewView panics on inverted coordinates: this is a
// caller mistake in the constructor's contract, not a runtime condition a
// caller can recover from.
func New[V any](boundary geom.Rect) *Tree[V] {
	if boundary.W < 0 || boundary.H < 0 {
		panic(fmt.Sprintf("quadindex: cannot create Tree with degenerate boundary %+v", boundary))
	}
	t := &Tree[V]{
		boundary: boundary,
		pool:     nodepool.New[node[V]](),
	}
	t.root = t.newLeaf(boundary)
	return t
}

// Clear returns a fresh, empty Tree over boundary. It is the same
// operation as New, named to match the engine's clear entry point.
func Clear[V any](boundary geom.Rect) *Tree[V] {
	return New[V](boundary)
}

// Bounds returns the tree's fixed boundary.
func (t *Tree[V]) Bounds() geom.Rect {
	return t.boundary
}

func (t *Tree[V]) newLeaf(b geom.Rect) *node[V] {
	n := t.pool.Alloc()
	n.reset(b, true)
	return n
}

func (t *Tree[V]) newInternal(b geom.Rect) *node[V] {
	n := t.pool.Alloc()
	n.reset(b, false)
	return n
}
