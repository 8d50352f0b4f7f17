package quadindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-geo/quadindex/pkg/geom"
)

func TestSpatialAutocorrelationRequiresTwoPoints(t *testing.T) {
	tr := New[float64](worldBoundary())
	require.NoError(t, tr.Insert(geom.Point{X: 1, Y: 1}, 5, 4))
	got := SpatialAutocorrelation(tr, func(v float64) float64 { return v }, 10)
	assert.Equal(t, 0.0, got)
}

func TestSpatialAutocorrelationZeroVariance(t *testing.T) {
	tr := New[float64](worldBoundary())
	require.NoError(t, tr.Insert(geom.Point{X: 1, Y: 1}, 5, 4))
	require.NoError(t, tr.Insert(geom.Point{X: 2, Y: 2}, 5, 4))
	got := SpatialAutocorrelation(tr, func(v float64) float64 { return v }, 10)
	assert.Equal(t, 0.0, got)
}

func TestSpatialAutocorrelationPositiveClustering(t *testing.T) {
	tr := New[float64](worldBoundary())
	// Two tight clusters of similar values, far apart from each other:
	// nearby points share similar values, which should score positively.
	require.NoError(t, tr.Insert(geom.Point{X: 1, Y: 1}, 10, 4))
	require.NoError(t, tr.Insert(geom.Point{X: 2, Y: 2}, 11, 4))
	require.NoError(t, tr.Insert(geom.Point{X: 90, Y: 90}, -10, 4))
	require.NoError(t, tr.Insert(geom.Point{X: 91, Y: 91}, -11, 4))

	got := SpatialAutocorrelation(tr, func(v float64) float64 { return v }, 5)
	assert.Greater(t, got, 0.0)
	assert.LessOrEqual(t, got, 1.0)
}

func TestSpatialAutocorrelationRange(t *testing.T) {
	tr := New[float64](worldBoundary())
	for i, p := range []geom.Point{{X: 1, Y: 1}, {X: 50, Y: 50}, {X: 99, Y: 99}, {X: 20, Y: 80}} {
		require.NoError(t, tr.Insert(p, float64(i), 4))
	}
	got := SpatialAutocorrelation(tr, func(v float64) float64 { return v }, 0)
	assert.GreaterOrEqual(t, got, -1.0)
	assert.LessOrEqual(t, got, 1.0)
}
