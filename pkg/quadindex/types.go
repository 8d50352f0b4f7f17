package quadindex

import "github.com/kestrel-geo/quadindex/pkg/geom"

// Entry is a single (point, value) pair stored at a leaf.
type Entry[V any] struct {
	Point geom.Point
	Value V
}

// EqualFunc compares two values for equality. It is supplied by the caller
// where the engine needs value equality rather than just point identity,
// such as RemoveValue.
type EqualFunc[V any] func(a, b V) bool

// DensityPolicy controls InsertAdaptive's effective capacity for a leaf
// whose local density (entries per unit area) exceeds Threshold: the
// leaf's effective capacity becomes ceil(capacity * Multiplier) for the
// purpose of deciding whether to subdivide. The zero value disables
// adaptivity (a Threshold of zero would otherwise fire on every leaf).
type DensityPolicy struct {
	Threshold  float64
	Multiplier float64
}

func (p DensityPolicy) enabled() bool {
	return p.Threshold > 0
}

// NodeInfo describes one node visited by Walk.
type NodeInfo struct {
	Boundary   geom.Rect
	IsLeaf     bool
	EntryCount int
	Depth      int
}
