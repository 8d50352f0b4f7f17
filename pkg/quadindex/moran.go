package quadindex

import "math"

// SpatialAutocorrelation computes Moran's I for the tree's entries, using
// numeric to project each value to a float64. Two entries are considered
// neighbors if their distance is within threshold; a threshold of 0 or
// less falls back to the mean nearest-neighbor distance of the set. The
// result is clamped to [-1, 1] and rounded through float32 precision. It
// returns 0 when there are fewer than two entries or the values have zero
// variance.
func SpatialAutocorrelation[V any](t *Tree[V], numeric func(V) float64, threshold float64) float64 {
	entries := t.Entries()
	n := len(entries)
	if n < 2 {
		return 0
	}

	values := make([]float64, n)
	sum := 0.0
	for i, e := range entries {
		values[i] = numeric(e.Value)
		sum += values[i]
	}
	mean := sum / float64(n)

	varSum := 0.0
	for _, v := range values {
		d := v - mean
		varSum += d * d
	}
	if varSum == 0 {
		return 0
	}

	th := threshold
	if th <= 0 {
		th = t.meanNearestNeighborDistance(entries)
		if th <= 0 {
			return 0
		}
	}
	thSq := th * th

	weightSum := 0.0
	numerator := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dx := float64(entries[i].Point.X - entries[j].Point.X)
			dy := float64(entries[i].Point.Y - entries[j].Point.Y)
			if dx*dx+dy*dy <= thSq {
				weightSum++
				numerator += (values[i] - mean) * (values[j] - mean)
			}
		}
	}
	if weightSum == 0 {
		return 0
	}

	moranI := (float64(n) / weightSum) * (numerator / varSum)
	if moranI > 1 {
		moranI = 1
	}
	if moranI < -1 {
		moranI = -1
	}
	return float64(float32(moranI))
}

func (t *Tree[V]) meanNearestNeighborDistance(entries []Entry[V]) float64 {
	if len(entries) < 2 {
		return 0
	}
	sum := 0.0
	count := 0
	for _, e := range entries {
		nearest := t.FindNearest(e.Point, 2)
		for _, cand := range nearest {
			if cand.Point == e.Point {
				continue
			}
			dx := float64(cand.Point.X - e.Point.X)
			dy := float64(cand.Point.Y - e.Point.Y)
			sum += math.Sqrt(dx*dx + dy*dy)
			count++
			break
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
