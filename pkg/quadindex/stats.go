package quadindex

import "github.com/kestrel-geo/quadindex/pkg/geom"

// Count returns the total number of entries stored in the tree. It is
// answered directly from the root's cached entryCount, with no traversal.
func (t *Tree[V]) Count() int {
	return t.root.entryCount
}

// Depth returns the number of edges on the longest root-to-leaf path. An
// unsplit tree (a single leaf root) has depth 0.
func (t *Tree[V]) Depth() int {
	type frame struct {
		n     *node[V]
		depth int
	}
	maxDepth := 0
	stack := []frame{{t.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.n.isLeaf {
			if f.depth > maxDepth {
				maxDepth = f.depth
			}
			continue
		}
		for _, c := range f.n.children {
			stack = append(stack, frame{c, f.depth + 1})
		}
	}
	return maxDepth
}

// CountNodes returns the number of leaf and internal nodes in the tree.
func (t *Tree[V]) CountNodes() (leaves, internals int) {
	stack := []*node[V]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.isLeaf {
			leaves++
			continue
		}
		internals++
		stack = append(stack, n.children[:]...)
	}
	return leaves, internals
}

// Walk visits every node in the tree in NW, NE, SW, SE preorder, calling
// visit with a description of each. Walk stops early if visit returns
// false.
func (t *Tree[V]) Walk(visit func(NodeInfo) bool) {
	type frame struct {
		n     *node[V]
		depth int
	}
	stack := []frame{{t.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		info := NodeInfo{
			Boundary:   f.n.boundary,
			IsLeaf:     f.n.isLeaf,
			EntryCount: f.n.entryCount,
			Depth:      f.depth,
		}
		if !visit(info) {
			return
		}
		if !f.n.isLeaf {
			stack = append(stack,
				frame{f.n.children[geom.SE], f.depth + 1},
				frame{f.n.children[geom.SW], f.depth + 1},
				frame{f.n.children[geom.NE], f.depth + 1},
				frame{f.n.children[geom.NW], f.depth + 1},
			)
		}
	}
}
