package geom

import "math"

// Sector is a disk wedge: all points within Radius of Center whose angle
// (measured with math.Atan2 convention) falls in the counter-clockwise
// range [Start, End]. If End-Start >= 2*pi the sector covers the full disk.
type Sector struct {
	Center     Point
	Start, End float32
	Radius     float32
}

func normalizeAngle(a float64) float64 {
	twoPi := 2 * math.Pi
	for a < 0 {
		a += twoPi
	}
	for a >= twoPi {
		a -= twoPi
	}
	return a
}

func angleInSector(angle, start, end float64) bool {
	a := normalizeAngle(angle)
	s := normalizeAngle(start)
	e := normalizeAngle(end)
	if s <= e {
		return a >= s && a <= e
	}
	return a >= s || a <= e
}

// PointInSector reports whether p lies within the disk and, unless the
// sector spans the full circle, within its angular range.
func PointInSector(p Point, s Sector) bool {
	dx := float64(p.X - s.Center.X)
	dy := float64(p.Y - s.Center.Y)
	rad := float64(s.Radius)
	if dx*dx+dy*dy > rad*rad {
		return false
	}
	if float64(s.End)-float64(s.Start) >= 2*math.Pi {
		return true
	}
	return angleInSector(math.Atan2(dy, dx), float64(s.Start), float64(s.End))
}

// IntersectsSector reports whether r shares any point with s. It holds if
// r overlaps the sector's disk and either the sector is a full circle, a
// corner of r falls inside the sector, or an edge of r crosses one of the
// two radii bounding the sector's angular range.
func (r Rect) IntersectsSector(s Sector) bool {
	if !r.IntersectsCircle(s.Center, s.Radius) {
		return false
	}
	if float64(s.End)-float64(s.Start) >= 2*math.Pi {
		return true
	}
	corners := r.Corners()
	for _, c := range corners {
		if PointInSector(c, s) {
			return true
		}
	}
	p1 := Point{
		X: s.Center.X + s.Radius*float32(math.Cos(float64(s.Start))),
		Y: s.Center.Y + s.Radius*float32(math.Sin(float64(s.Start))),
	}
	p2 := Point{
		X: s.Center.X + s.Radius*float32(math.Cos(float64(s.End))),
		Y: s.Center.Y + s.Radius*float32(math.Sin(float64(s.End))),
	}
	for e := 0; e < 4; e++ {
		a := corners[e]
		b := corners[(e+1)%4]
		if segmentsIntersect(a, b, s.Center, p1) || segmentsIntersect(a, b, s.Center, p2) {
			return true
		}
	}
	return false
}
