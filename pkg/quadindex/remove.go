package quadindex

import "github.com/kestrel-geo/quadindex/pkg/geom"

// Remove deletes the entry at p, if any, and reports whether an entry was
// actually removed. After removal, every ancestor whose subtree has
// shrunk to capacity or fewer entries is compressed back into a leaf.
func (t *Tree[V]) Remove(p geom.Point, capacity int) (bool, error) {
	if capacity < 1 {
		return false, ErrInvalidCapacity
	}
	if !t.boundary.ContainsPoint(p) {
		return false, nil
	}

	path := make([]*node[V], 0, 8)
	cur := t.root
	for {
		path = append(path, cur)
		if cur.isLeaf {
			idx := -1
			for i := range cur.entries {
				if cur.entries[i].Point == p {
					idx = i
					break
				}
			}
			if idx == -1 {
				return false, nil
			}
			cur.entries = append(cur.entries[:idx], cur.entries[idx+1:]...)
			for _, anc := range path {
				anc.entryCount--
			}
			t.compressPath(path, capacity)
			return true, nil
		}
		qidx := geom.QuadrantIndex(cur.boundary, p)
		cur = cur.children[qidx]
	}
}

// RemoveValue removes the entry at p only if its current value equals v
// under eq, leaving the tree untouched otherwise.
func (t *Tree[V]) RemoveValue(p geom.Point, v V, eq EqualFunc[V], capacity int) (bool, error) {
	if capacity < 1 {
		return false, ErrInvalidCapacity
	}
	existing, ok := t.Find(p)
	if !ok || !eq(existing, v) {
		return false, nil
	}
	return t.Remove(p, capacity)
}

// RemoveRange deletes every entry whose point lies within r and returns
// how many were removed.
func (t *Tree[V]) RemoveRange(r geom.Rect, capacity int) (int, error) {
	if capacity < 1 {
		return 0, ErrInvalidCapacity
	}

	var toRemove []geom.Point
	stack := []*node[V]{t.root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !cur.boundary.Overlaps(r) {
			continue
		}
		if cur.isLeaf {
			for _, e := range cur.entries {
				if r.ContainsPoint(e.Point) {
					toRemove = append(toRemove, e.Point)
				}
			}
			continue
		}
		stack = append(stack, cur.children[geom.SE], cur.children[geom.SW], cur.children[geom.NE], cur.children[geom.NW])
	}

	removed := 0
	for _, p := range toRemove {
		ok, err := t.Remove(p, capacity)
		if err != nil {
			return removed, err
		}
		if ok {
			removed++
		}
	}
	return removed, nil
}

// compressPath walks path from the removed leaf back up to the root,
// collapsing any internal node whose subtree has shrunk to capacity or
// fewer entries into a plain leaf.
func (t *Tree[V]) compressPath(path []*node[V], capacity int) {
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		if n.isLeaf {
			continue
		}
		if n.entryCount <= capacity {
			t.collapseToLeaf(n)
		}
	}
}

// collapseToLeaf gathers n's subtree entries in traversal order, frees the
// descendant nodes back to the pool, and turns n into a leaf holding those
// entries.
func (t *Tree[V]) collapseToLeaf(n *node[V]) {
	entries := t.collectEntries(n)
	t.freeDescendants(n)
	n.isLeaf = true
	n.entries = entries
	n.children = [4]*node[V]{}
}

// collectEntries returns every entry in n's subtree, in NW, NE, SW, SE
// leaf order, via an explicit stack rather than recursion.
func (t *Tree[V]) collectEntries(n *node[V]) []Entry[V] {
	var out []Entry[V]
	stack := []*node[V]{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.isLeaf {
			out = append(out, cur.entries...)
			continue
		}
		stack = append(stack, cur.children[geom.SE], cur.children[geom.SW], cur.children[geom.NE], cur.children[geom.NW])
	}
	return out
}

// freeDescendants releases every node under n (not n itself) back to the
// pool.
func (t *Tree[V]) freeDescendants(n *node[V]) {
	if n.isLeaf {
		return
	}
	stack := append([]*node[V]{}, n.children[:]...)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !cur.isLeaf {
			stack = append(stack, cur.children[:]...)
		}
		t.pool.Free(cur)
	}
}
