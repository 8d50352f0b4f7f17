package quadindex

import "github.com/kestrel-geo/quadindex/pkg/geom"

// DBSCANResult holds the output of DBSCANCluster: each inner slice of
// Clusters is one discovered cluster's points, and Noise holds every point
// that was never absorbed into a cluster.
type DBSCANResult struct {
	Clusters [][]geom.Point
	Noise    []geom.Point
}

// DBSCANCluster runs standard DBSCAN over the tree's points, using
// QueryCircle as the neighborhood oracle: two points are neighbors if
// their distance is at most eps, and a point is a core point once it has
// at least minPts neighbors (inclusive of itself).
func (t *Tree[V]) DBSCANCluster(eps float32, minPts int) DBSCANResult {
	entries := t.Entries()

	visited := make(map[geom.Point]bool, len(entries))
	clusterOf := make(map[geom.Point]int, len(entries))
	var clusters [][]geom.Point

	for _, e := range entries {
		p := e.Point
		if visited[p] {
			continue
		}
		visited[p] = true

		neighbors := pointsOf(t.QueryCircle(p, eps))
		if len(neighbors) < minPts {
			continue
		}

		clusterIdx := len(clusters)
		cluster := []geom.Point{p}
		clusterOf[p] = clusterIdx

		seeds := append([]geom.Point{}, neighbors...)
		for i := 0; i < len(seeds); i++ {
			q := seeds[i]
			if !visited[q] {
				visited[q] = true
				qNeighbors := pointsOf(t.QueryCircle(q, eps))
				if len(qNeighbors) >= minPts {
					seeds = append(seeds, qNeighbors...)
				}
			}
			if _, assigned := clusterOf[q]; !assigned {
				clusterOf[q] = clusterIdx
				cluster = append(cluster, q)
			}
		}
		clusters = append(clusters, cluster)
	}

	var noise []geom.Point
	for _, e := range entries {
		if _, ok := clusterOf[e.Point]; !ok {
			noise = append(noise, e.Point)
		}
	}

	return DBSCANResult{Clusters: clusters, Noise: noise}
}

func pointsOf[V any](entries []Entry[V]) []geom.Point {
	out := make([]geom.Point, len(entries))
	for i, e := range entries {
		out[i] = e.Point
	}
	return out
}
