package quadindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-geo/quadindex/pkg/geom"
)

func TestRemoveMissingPoint(t *testing.T) {
	tr := New[int](worldBoundary())
	ok, err := tr.Remove(geom.Point{X: 1, Y: 1}, 4)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemoveThenCompress(t *testing.T) {
	tr := New[int](worldBoundary())
	capacity := 2
	pts := []geom.Point{{X: 10, Y: 10}, {X: 20, Y: 20}, {X: 30, Y: 30}}
	for i, p := range pts {
		require.NoError(t, tr.Insert(p, i, capacity))
	}
	_, internals := tr.CountNodes()
	require.Greater(t, internals, 0)

	ok, err := tr.Remove(pts[2], capacity)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, 2, tr.Count())
	leaves, internals := tr.CountNodes()
	assert.Equal(t, 1, leaves)
	assert.Equal(t, 0, internals, "subtree should compress back to a single leaf once it fits capacity")
}

func TestRemoveValueOnlyMatchesEqualValue(t *testing.T) {
	tr := New[string](worldBoundary())
	p := geom.Point{X: 5, Y: 5}
	require.NoError(t, tr.Insert(p, "a", 4))

	eq := func(a, b string) bool { return a == b }
	ok, err := tr.RemoveValue(p, "b", eq, 4)
	require.NoError(t, err)
	assert.False(t, ok, "value mismatch must not remove")
	assert.Equal(t, 1, tr.Count())

	ok, err = tr.RemoveValue(p, "a", eq, 4)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, tr.Count())
}

func TestRemoveRange(t *testing.T) {
	tr := New[int](worldBoundary())
	capacity := 2
	pts := []geom.Point{{X: 10, Y: 10}, {X: 11, Y: 11}, {X: 90, Y: 90}}
	for i, p := range pts {
		require.NoError(t, tr.Insert(p, i, capacity))
	}
	n, err := tr.RemoveRange(geom.Rect{X: 0, Y: 0, W: 20, H: 20}, capacity)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, tr.Count())
	_, ok := tr.Find(pts[2])
	assert.True(t, ok)
}

func TestCompressNodeGlobalPass(t *testing.T) {
	tr := New[int](worldBoundary())
	capacity := 2
	pts := []geom.Point{{X: 10, Y: 10}, {X: 90, Y: 90}, {X: 11, Y: 11}}
	for i, p := range pts {
		require.NoError(t, tr.Insert(p, i, capacity))
	}
	_, internals := tr.CountNodes()
	require.Equal(t, 1, internals, "third insert should have forced one split")

	_, err := tr.Remove(pts[2], capacity)
	require.NoError(t, err)

	require.NoError(t, tr.CompressNode(capacity))
	leaves, internals := tr.CountNodes()
	assert.Equal(t, 1, leaves)
	assert.Equal(t, 0, internals)
}

func TestClearResetsTree(t *testing.T) {
	tr := New[int](worldBoundary())
	require.NoError(t, tr.Insert(geom.Point{X: 1, Y: 1}, 1, 4))
	fresh := Clear[int](worldBoundary())
	assert.Equal(t, 0, fresh.Count())
	assert.Equal(t, 1, tr.Count())
}
