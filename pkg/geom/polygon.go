package geom

// Polygon is an ordered list of vertices describing a (possibly non-convex,
// non-self-intersecting) simple polygon. A Polygon with fewer than three
// vertices is malformed; every function here treats that as "encloses
// nothing" rather than raising an error.
type Polygon []Point

// PointInPolygon reports whether p lies inside poly, using the standard
// even-odd ray casting rule. Points exactly on an edge may resolve either
// way, which matches the ray casting algorithm's own boundary behaviour.
func PointInPolygon(p Point, poly Polygon) bool {
	if len(poly) < 3 {
		return false
	}
	inside := false
	n := len(poly)
	j := n - 1
	for i := 0; i < n; i++ {
		xi, yi := float64(poly[i].X), float64(poly[i].Y)
		xj, yj := float64(poly[j].X), float64(poly[j].Y)
		py := float64(p.Y)
		if (yi > py) != (yj > py) {
			xIntersect := xi + (py-yi)*(xj-xi)/(yj-yi)
			if float64(p.X) < xIntersect {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// IntersectsPolygon reports whether r and poly share any area. It holds if
// any polygon vertex lies in r, any corner of r lies in poly, or any edge
// of poly crosses any edge of r.
func (r Rect) IntersectsPolygon(poly Polygon) bool {
	if len(poly) < 3 {
		return false
	}
	for _, v := range poly {
		if r.ContainsPoint(v) {
			return true
		}
	}
	corners := r.Corners()
	for _, c := range corners {
		if PointInPolygon(c, poly) {
			return true
		}
	}
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		for e := 0; e < 4; e++ {
			c := corners[e]
			d := corners[(e+1)%4]
			if segmentsIntersect(a, b, c, d) {
				return true
			}
		}
	}
	return false
}

func orientation(a, b, c Point) float64 {
	return float64(b.X-a.X)*float64(c.Y-a.Y) - float64(b.Y-a.Y)*float64(c.X-a.X)
}

func onSegment(a, b, p Point) bool {
	if orientation(a, b, p) != 0 {
		return false
	}
	return float64(p.X) >= float64(min(a.X, b.X)) && float64(p.X) <= float64(max(a.X, b.X)) &&
		float64(p.Y) >= float64(min(a.Y, b.Y)) && float64(p.Y) <= float64(max(a.Y, b.Y))
}

func segmentsIntersect(a, b, c, d Point) bool {
	o1 := orientation(a, b, c)
	o2 := orientation(a, b, d)
	o3 := orientation(c, d, a)
	o4 := orientation(c, d, b)

	if ((o1 > 0) != (o2 > 0)) && ((o3 > 0) != (o4 > 0)) && o1 != 0 && o2 != 0 && o3 != 0 && o4 != 0 {
		return true
	}

	if o1 == 0 && onSegment(a, b, c) {
		return true
	}
	if o2 == 0 && onSegment(a, b, d) {
		return true
	}
	if o3 == 0 && onSegment(c, d, a) {
		return true
	}
	if o4 == 0 && onSegment(c, d, b) {
		return true
	}
	return false
}
