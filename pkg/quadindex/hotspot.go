package quadindex

import "github.com/kestrel-geo/quadindex/pkg/geom"

// FindHotspot returns the boundary and entry count of the densest node in
// the tree (entries per unit area) among nodes whose entry count is at
// least minCount, along with that count. Ties in density are broken by
// shallower depth, then by traversal order (NW, NE, SW, SE, first found
// wins). If no node meets minCount, it returns the tree's own boundary and
// a count of 0.
func (t *Tree[V]) FindHotspot(minCount int) (geom.Rect, int) {
	type frame struct {
		n     *node[V]
		depth int
	}

	bestRect := t.root.boundary
	bestCount := 0
	bestDensity := -1.0
	bestDepth := -1
	found := false

	stack := []frame{{t.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		count := f.n.entryCount
		if count >= minCount {
			area := float64(f.n.boundary.W) * float64(f.n.boundary.H)
			var density float64
			if area > 0 {
				density = float64(count) / area
			}

			better := !found ||
				density > bestDensity ||
				(density == bestDensity && f.depth < bestDepth)
			if better {
				bestRect = f.n.boundary
				bestCount = count
				bestDensity = density
				bestDepth = f.depth
				found = true
			}
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

	return bestRect, bestCount
}
