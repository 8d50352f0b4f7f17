package quadindex

import (
	"math"

	"github.com/kestrel-geo/quadindex/pkg/geom"
)

// Insert adds (p, v) to the tree. If p already holds a value, that value
// is replaced and the tree's entry count is unchanged. If p lies outside
// the tree's boundary, Insert is a no-op and returns ErrOutOfBounds.
//
// The insertion path is walked iteratively: cur descends one node at a
// time with no recursive call, and path records the visited ancestors so
// their cached entryCount can be updated once the leaf is found.
func (t *Tree[V]) Insert(p geom.Point, v V, capacity int) error {
	if capacity < 1 {
		return ErrInvalidCapacity
	}
	if !t.boundary.ContainsPoint(p) {
		return ErrOutOfBounds
	}

	path := make([]*node[V], 0, 8)
	cur := t.root
	for {
		path = append(path, cur)
		if cur.isLeaf {
			if replaceInPlace(cur, p, v) {
				return nil
			}
			cur.entries = append(cur.entries, Entry[V]{Point: p, Value: v})
			for _, anc := range path {
				anc.entryCount++
			}
			if len(cur.entries) > capacity {
				t.subdivide(cur, capacity)
			}
			return nil
		}
		idx := geom.QuadrantIndex(cur.boundary, p)
		cur = cur.children[idx]
	}
}

// InsertAdaptive behaves like Insert, except the destination leaf's
// effective capacity is raised by policy.Multiplier when its post-insert
// density (entries per unit area) exceeds policy.Threshold. A disabled
// policy (the zero value) behaves exactly like Insert. Raising the
// effective capacity only changes the split decision for this leaf; any
// cascading subdivisions still split at the nominal capacity.
func (t *Tree[V]) InsertAdaptive(p geom.Point, v V, capacity int, policy DensityPolicy) error {
	if capacity < 1 {
		return ErrInvalidCapacity
	}
	if !t.boundary.ContainsPoint(p) {
		return ErrOutOfBounds
	}

	path := make([]*node[V], 0, 8)
	cur := t.root
	for {
		path = append(path, cur)
		if cur.isLeaf {
			if replaceInPlace(cur, p, v) {
				return nil
			}
			cur.entries = append(cur.entries, Entry[V]{Point: p, Value: v})
			for _, anc := range path {
				anc.entryCount++
			}

			effectiveCapacity := capacity
			if policy.enabled() {
				area := float64(cur.boundary.W) * float64(cur.boundary.H)
				if area > 0 {
					density := float64(len(cur.entries)) / area
					if density > policy.Threshold {
						effectiveCapacity = int(math.Ceil(float64(capacity) * policy.Multiplier))
						if effectiveCapacity < capacity {
							effectiveCapacity = capacity
						}
					}
				}
			}
			if len(cur.entries) > effectiveCapacity {
				t.subdivide(cur, capacity)
			}
			return nil
		}
		idx := geom.QuadrantIndex(cur.boundary, p)
		cur = cur.children[idx]
	}
}

func replaceInPlace[V any](leaf *node[V], p geom.Point, v V) bool {
	for i := range leaf.entries {
		if leaf.entries[i].Point == p {
			leaf.entries[i].Value = v
			return true
		}
	}
	return false
}

// subdivide converts a leaf whose entries have overflowed capacity into an
// internal node with four leaf children, routing every existing entry into
// its quadrant. If a child itself overflows it is split again. The whole
// cascade runs off an explicit worklist rather than recursive calls, since
// recursion depth here isn't bounded by anything but the input data.
func (t *Tree[V]) subdivide(n *node[V], capacity int) {
	type pending struct {
		n       *node[V]
		entries []Entry[V]
	}
	stack := []pending{{n: n, entries: n.entries}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cur.n.isLeaf = false
		cur.n.entries = nil
		quarters := cur.n.boundary.Quarters()

		var buckets [4][]Entry[V]
		for _, e := range cur.entries {
			idx := geom.QuadrantIndex(cur.n.boundary, e.Point)
			buckets[idx] = append(buckets[idx], e)
		}

		for i := 0; i < 4; i++ {
			child := t.newLeaf(quarters[i])
			child.entries = buckets[i]
			child.entryCount = len(buckets[i])
			cur.n.children[i] = child
			if len(buckets[i]) > capacity {
				stack = append(stack, pending{n: child, entries: buckets[i]})
			}
		}
	}
}
