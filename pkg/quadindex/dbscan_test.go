package quadindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-geo/quadindex/pkg/geom"
)

func TestDBSCANClusterFindsDenseGroup(t *testing.T) {
	tr := New[int](worldBoundary())
	capacity := 4
	cluster := []geom.Point{{X: 10, Y: 10}, {X: 10.5, Y: 10.5}, {X: 11, Y: 10}, {X: 10, Y: 11}}
	for i, p := range cluster {
		require.NoError(t, tr.Insert(p, i, capacity))
	}
	require.NoError(t, tr.Insert(geom.Point{X: 90, Y: 90}, 99, capacity))

	result := tr.DBSCANCluster(2, 3)
	require.Len(t, result.Clusters, 1)
	assert.Len(t, result.Clusters[0], 4)
	assert.Contains(t, result.Noise, geom.Point{X: 90, Y: 90})
}

func TestDBSCANClusterAllNoiseWhenIsolated(t *testing.T) {
	tr := New[int](worldBoundary())
	capacity := 4
	pts := []geom.Point{{X: 10, Y: 20}, {X: 30, Y: 40}, {X: 50, Y: 60}}
	for i, p := range pts {
		require.NoError(t, tr.Insert(p, i, capacity))
	}
	result := tr.DBSCANCluster(5, 3)
	assert.Empty(t, result.Clusters)
	assert.Len(t, result.Noise, 3)
}
