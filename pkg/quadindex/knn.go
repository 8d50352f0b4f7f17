package quadindex

import (
	"container/heap"
	"sort"

	"github.com/kestrel-geo/quadindex/pkg/geom"
)

// nodeHeap is a min-heap of subtrees ordered by lower-bound squared
// distance to the query point, used to drive best-first traversal.
type nodeHeap[V any] []nodeDist[V]

type nodeDist[V any] struct {
	n     *node[V]
	dist  float64
	order int
}

func (h nodeHeap[V]) Len() int { return len(h) }
func (h nodeHeap[V]) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	// Equal lower bounds: fall back to push order, which follows the
	// NW, NE, SW, SE order children are enumerated in, so ties resolve
	// to traversal order instead of container/heap's unspecified order.
	return h[i].order < h[j].order
}
func (h nodeHeap[V]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap[V]) Push(x interface{}) { *h = append(*h, x.(nodeDist[V])) }
func (h *nodeHeap[V]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// candidateHeap is a bounded max-heap of the best k candidates found so
// far, ordered so the current worst candidate sits at the root and can be
// evicted in O(log k).
type candidateHeap[V any] []candidate[V]

type candidate[V any] struct {
	entry  Entry[V]
	distSq float64
	seq    int
}

func (h candidateHeap[V]) Len() int { return len(h) }
func (h candidateHeap[V]) Less(i, j int) bool {
	if h[i].distSq != h[j].distSq {
		return h[i].distSq > h[j].distSq
	}
	// Equal distances: the later-discovered candidate is the worse one, so
	// eviction keeps the earliest-discovered entries.
	return h[i].seq > h[j].seq
}
func (h candidateHeap[V]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap[V]) Push(x interface{}) { *h = append(*h, x.(candidate[V])) }
func (h *candidateHeap[V]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// FindNearest returns the k entries closest to target, nearest first. Ties
// in distance are broken by the order entries were discovered during the
// best-first traversal (effectively NW, NE, SW, SE order among equally
// close candidates). It returns fewer than k entries if the tree holds
// fewer than k, and nil if k <= 0.
func (t *Tree[V]) FindNearest(target geom.Point, k int) []Entry[V] {
	if k <= 0 {
		return nil
	}

	pq := &nodeHeap[V]{}
	heap.Init(pq)
	pushOrder := 0
	heap.Push(pq, nodeDist[V]{n: t.root, dist: lowerBoundSq(t.root.boundary, target), order: pushOrder})
	pushOrder++

	best := &candidateHeap[V]{}
	heap.Init(best)
	seq := 0

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(nodeDist[V])
		if best.Len() == k && cur.dist > (*best)[0].distSq {
			break
		}

		if cur.n.isLeaf {
			for _, e := range cur.n.entries {
				dx := float64(e.Point.X - target.X)
				dy := float64(e.Point.Y - target.Y)
				d2 := dx*dx + dy*dy
				if best.Len() < k {
					heap.Push(best, candidate[V]{entry: e, distSq: d2, seq: seq})
					seq++
				} else if d2 < (*best)[0].distSq {
					heap.Pop(best)
					heap.Push(best, candidate[V]{entry: e, distSq: d2, seq: seq})
					seq++
				}
			}
			continue
		}

		for _, c := range cur.n.children {
			d := lowerBoundSq(c.boundary, target)
			if best.Len() == k && d > (*best)[0].distSq {
				continue
			}
			heap.Push(pq, nodeDist[V]{n: c, dist: d, order: pushOrder})
			pushOrder++
		}
	}

	results := make([]candidate[V], best.Len())
	copy(results, *best)
	sort.Slice(results, func(i, j int) bool {
		if results[i].distSq != results[j].distSq {
			return results[i].distSq < results[j].distSq
		}
		return results[i].seq < results[j].seq
	})

	out := make([]Entry[V], len(results))
	for i, r := range results {
		out[i] = r.entry
	}
	return out
}

// lowerBoundSq returns the squared distance from p to the closest point a
// subtree bounded by b could possibly contain.
func lowerBoundSq(b geom.Rect, p geom.Point) float64 {
	closestX := clampF32(p.X, b.X, b.X+b.W)
	closestY := clampF32(p.Y, b.Y, b.Y+b.H)
	dx := float64(p.X - closestX)
	dy := float64(p.Y - closestY)
	return dx*dx + dy*dy
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
