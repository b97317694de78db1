package domain

import (
	"github.com/acrovato/gmshcfd/internal/geometry"
	"github.com/acrovato/gmshcfd/pkg/geom"
)

// spanSamples controls how many spanwise stations are tested for
// chordwise overlap between two candidate surfaces.
const spanSamples = 8

// surfacesIntersect reports whether two lofted surfaces intersect:
// bounding boxes must overlap, and the chordwise section polygons,
// interpolated at common span stations, must cross or contain each
// other at some station.
func surfacesIntersect(a, b *geometry.Surface) bool {
	ba, bb := a.BBox(), b.BBox()
	if !ba.Overlaps(bb) {
		return false
	}
	lo := max(ba.Min.Y, bb.Min.Y)
	hi := min(ba.Max.Y, bb.Max.Y)
	if hi < lo {
		return false
	}
	for i := 0; i <= spanSamples; i++ {
		y := lo + (hi-lo)*float64(i)/float64(spanSamples)
		pa := sectionAt(a, y)
		pb := sectionAt(b, y)
		if polygonsOverlap(pa, pb) {
			return true
		}
	}
	return false
}

// sectionAt returns the closed chordwise polygon of the surface at span
// y, linearly interpolated between the bracketing sections.
func sectionAt(s *geometry.Surface, y float64) []geom.Vec2 {
	secs := s.Sections
	if y <= secs[0].Span {
		return closedChordwise(&secs[0])
	}
	if y >= secs[len(secs)-1].Span {
		return closedChordwise(&secs[len(secs)-1])
	}
	for i := 0; i+1 < len(secs); i++ {
		if y > secs[i+1].Span {
			continue
		}
		t := (y - secs[i].Span) / (secs[i+1].Span - secs[i].Span)
		n := len(secs[i].Points)
		pts := make([]geom.Vec2, 0, n+1)
		for j := 0; j < n; j++ {
			p := secs[i].Points[j].Scale(1 - t).Add(secs[i+1].Points[j].Scale(t))
			pts = append(pts, p.XZ())
		}
		return closePolygon(pts)
	}
	return closedChordwise(&secs[len(secs)-1])
}

func closedChordwise(sec *geometry.Section) []geom.Vec2 {
	pts := make([]geom.Vec2, 0, len(sec.Points)+1)
	for _, p := range sec.Points {
		pts = append(pts, p.XZ())
	}
	return closePolygon(pts)
}

func closePolygon(pts []geom.Vec2) []geom.Vec2 {
	if len(pts) > 0 && pts[0] != pts[len(pts)-1] {
		pts = append(pts, pts[0])
	}
	return pts
}

// polygonsOverlap reports whether two closed polygons cross or one
// contains the other.
func polygonsOverlap(a, b []geom.Vec2) bool {
	if geom.PolylinesIntersect(a, b) {
		return true
	}
	return pointInPolygon(a[0], b) || pointInPolygon(b[0], a)
}

// pointInPolygon ray-casts in +x over the closed polygon.
func pointInPolygon(p geom.Vec2, poly []geom.Vec2) bool {
	inside := false
	for i := 0; i+1 < len(poly); i++ {
		p1, p2 := poly[i], poly[i+1]
		if (p1.Y > p.Y) == (p2.Y > p.Y) {
			continue
		}
		x := p1.X + (p.Y-p1.Y)/(p2.Y-p1.Y)*(p2.X-p1.X)
		if x > p.X {
			inside = !inside
		}
	}
	return inside
}
