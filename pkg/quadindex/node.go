package quadindex

import "github.com/kestrel-geo/quadindex/pkg/geom"

// node is either a Leaf, holding entries directly, or an Internal node with
// four children covering boundary's quadrants in geom.NW, geom.NE, geom.SW,
// geom.SE order. entryCount is the live total across the whole subtree
// rooted here, maintained incrementally by insert/remove so Count never
// needs a traversal.
type node[V any] struct {
	boundary   geom.Rect
	isLeaf     bool
	entries    []Entry[V]
	children   [4]*node[V]
	entryCount int
}

func (n *node[V]) reset(b geom.Rect, isLeaf bool) {
	n.boundary = b
	n.isLeaf = isLeaf
	n.entries = nil
	n.children = [4]*node[V]{}
	n.entryCount = 0
}
