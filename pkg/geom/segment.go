package geom

// SegmentsIntersect reports whether 2D segments [p1,p2] and [q1,q2]
// intersect, including touching endpoints and collinear overlap.
func SegmentsIntersect(p1, p2, q1, q2 Vec2) bool {
	d1 := orient(q1, q2, p1)
	d2 := orient(q1, q2, p2)
	d3 := orient(p1, p2, q1)
	d4 := orient(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if d1 == 0 && onSegment(q1, q2, p1) {
		return true
	}
	if d2 == 0 && onSegment(q1, q2, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, q2) {
		return true
	}
	return false
}

// PolylinesIntersect reports whether any segment of a intersects any
// segment of b.
func PolylinesIntersect(a, b []Vec2) bool {
	for i := 0; i+1 < len(a); i++ {
		for j := 0; j+1 < len(b); j++ {
			if SegmentsIntersect(a[i], a[i+1], b[j], b[j+1]) {
				return true
			}
		}
	}
	return false
}

// PointSegmentDistance returns the distance from p to segment [a,b] in 3D.
func PointSegmentDistance(p, a, b Vec3) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Distance(a.Add(ab.Scale(t)))
}

// PolylineDistance returns the minimum distance from p to a polyline.
func PolylineDistance(p Vec3, line []Vec3) float64 {
	if len(line) == 0 {
		return 0
	}
	if len(line) == 1 {
		return p.Distance(line[0])
	}
	min := 1e300
	for i := 0; i+1 < len(line); i++ {
		if d := PointSegmentDistance(p, line[i], line[i+1]); d < min {
			min = d
		}
	}
	return min
}

func orient(a, b, c Vec2) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

func onSegment(a, b, p Vec2) bool {
	return p.X >= min(a.X, b.X) && p.X <= max(a.X, b.X) &&
		p.Y >= min(a.Y, b.Y) && p.Y <= max(a.Y, b.Y)
}
