package quadindex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-geo/quadindex/pkg/geom"
)

func buildTestTree(t *testing.T) *Tree[string] {
	t.Helper()
	tr := New[string](worldBoundary())
	pts := map[geom.Point]string{
		{X: 10, Y: 10}: "a",
		{X: 20, Y: 20}: "b",
		{X: 80, Y: 80}: "c",
		{X: 50, Y: 50}: "d",
		{X: 90, Y: 10}: "e",
	}
	for p, v := range pts {
		require.NoError(t, tr.Insert(p, v, 2))
	}
	return tr
}

func TestQueryRect(t *testing.T) {
	tr := buildTestTree(t)
	got := tr.Query(geom.Rect{X: 0, Y: 0, W: 30, H: 30})
	assert.Len(t, got, 2)
}

func TestQueryCircle(t *testing.T) {
	tr := buildTestTree(t)
	got := tr.QueryCircle(geom.Point{X: 10, Y: 10}, 15)
	assert.Len(t, got, 2, "expect (10,10) and (20,20) within radius 15")
}

func TestQueryPolygonMalformed(t *testing.T) {
	tr := buildTestTree(t)
	got := tr.QueryPolygon(geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.Empty(t, got)
}

func TestQueryPolygon(t *testing.T) {
	tr := buildTestTree(t)
	square := geom.Polygon{
		{X: 0, Y: 0}, {X: 30, Y: 0}, {X: 30, Y: 30}, {X: 0, Y: 30},
	}
	got := tr.QueryPolygon(square)
	assert.Len(t, got, 2)
}

func TestQueryRayZeroDirection(t *testing.T) {
	tr := buildTestTree(t)
	ray := geom.Ray{Origin: geom.Point{X: 0, Y: 0}, Dir: geom.Point{}, MaxLen: 100}
	got := tr.QueryRay(ray)
	assert.Empty(t, got)
}

func TestQueryRayHitsAlongDiagonal(t *testing.T) {
	tr := buildTestTree(t)
	ray := geom.Ray{Origin: geom.Point{X: 0, Y: 0}, Dir: geom.Point{X: 1, Y: 1}, MaxLen: 60}
	got := tr.QueryRay(ray)
	assert.Len(t, got, 3, "(10,10), (20,20), (50,50) lie on the diagonal within max_length")
}

func TestQuerySector(t *testing.T) {
	tr := buildTestTree(t)
	sector := geom.Sector{Center: geom.Point{X: 0, Y: 0}, Start: 0, End: float32(math.Pi / 4), Radius: 100}
	got := tr.QuerySector(sector)
	for _, e := range got {
		assert.GreaterOrEqual(t, e.Point.X, e.Point.Y-0.001)
	}
	assert.NotEmpty(t, got)
}

func TestFind(t *testing.T) {
	tr := buildTestTree(t)
	v, ok := tr.Find(geom.Point{X: 50, Y: 50})
	require.True(t, ok)
	assert.Equal(t, "d", v)

	_, ok = tr.Find(geom.Point{X: 1, Y: 1})
	assert.False(t, ok)
}

func TestQueryOrderIsTraversalOrder(t *testing.T) {
	tr := New[int](worldBoundary())
	capacity := 1
	pts := []geom.Point{{X: 10, Y: 90}, {X: 90, Y: 90}, {X: 10, Y: 10}, {X: 90, Y: 10}}
	for i, p := range pts {
		require.NoError(t, tr.Insert(p, i, capacity))
	}
	got := tr.Query(worldBoundary())
	require.Len(t, got, 4)
	assert.Equal(t, geom.Point{X: 10, Y: 90}, got[0].Point, "NW first")
	assert.Equal(t, geom.Point{X: 90, Y: 90}, got[1].Point, "NE second")
	assert.Equal(t, geom.Point{X: 10, Y: 10}, got[2].Point, "SW third")
	assert.Equal(t, geom.Point{X: 90, Y: 10}, got[3].Point, "SE fourth")
}
