// Package geom provides the geometric primitives and region predicates used
// by pkg/quadindex: points, axis-aligned rectangles, polygons, rays and
// circular sectors, along with the intersection/containment tests the
// quadtree traversal relies on for pruning and leaf-level matching.
package geom

// Point is a location in 2D space. Equality is bit-identical float32
// comparison; callers are responsible for any tolerance they need before
// constructing a Point.
type Point struct {
	X, Y float32
}
