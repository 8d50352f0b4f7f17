package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointInSector(t *testing.T) {
	s := Sector{Center: Point{X: 0, Y: 0}, Start: 0, End: float32(math.Pi / 2), Radius: 10}
	assert.True(t, PointInSector(Point{X: 5, Y: 5}, s))
	assert.False(t, PointInSector(Point{X: -5, Y: -5}, s), "wrong angular quadrant")
	assert.False(t, PointInSector(Point{X: 100, Y: 0}, s), "outside radius")
}

func TestPointInSectorFullCircle(t *testing.T) {
	s := Sector{Center: Point{X: 0, Y: 0}, Start: 0, End: float32(2 * math.Pi), Radius: 10}
	assert.True(t, PointInSector(Point{X: -5, Y: -5}, s))
}

func TestRectIntersectsSector(t *testing.T) {
	s := Sector{Center: Point{X: 0, Y: 0}, Start: 0, End: float32(math.Pi / 2), Radius: 10}
	r := Rect{X: 3, Y: 3, W: 2, H: 2}
	assert.True(t, r.IntersectsSector(s))

	farWedge := Rect{X: -5, Y: -5, W: 2, H: 2}
	assert.False(t, farWedge.IntersectsSector(s), "inside the disk but outside the angular range")

	outsideDisk := Rect{X: 50, Y: 50, W: 2, H: 2}
	assert.False(t, outsideDisk.IntersectsSector(s))
}
