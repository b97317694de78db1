package geom

import (
	"testing"
)

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	got := a.Add(b)
	want := Vec3{5, 7, 9}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestMid(t *testing.T) {
	got := Mid(Vec3{0, 0, 0}, Vec3{2, 4, 6})
	want := Vec3{1, 2, 3}
	if got != want {
		t.Errorf("Mid() = %v, want %v", got, want)
	}
}

func TestBBoxExtend(t *testing.T) {
	b := EmptyBBox()
	b.Extend(Vec3{1, 2, 3})
	b.Extend(Vec3{-1, 0, 5})
	if b.Min != (Vec3{-1, 0, 3}) {
		t.Errorf("BBox.Min = %v, want {-1 0 3}", b.Min)
	}
	if b.Max != (Vec3{1, 2, 5}) {
		t.Errorf("BBox.Max = %v, want {1 2 5}", b.Max)
	}
}

func TestBBoxOverlaps(t *testing.T) {
	a := BBox{Vec3{0, 0, 0}, Vec3{1, 1, 1}}
	b := BBox{Vec3{0.5, 0.5, 0.5}, Vec3{2, 2, 2}}
	c := BBox{Vec3{3, 3, 3}, Vec3{4, 4, 4}}
	if !a.Overlaps(b) {
		t.Error("expected a and b to overlap")
	}
	if a.Overlaps(c) {
		t.Error("expected a and c not to overlap")
	}
}

func TestBBoxContains(t *testing.T) {
	outer := BBox{Vec3{-10, -10, -10}, Vec3{10, 10, 10}}
	inner := BBox{Vec3{-1, -1, -1}, Vec3{1, 1, 1}}
	if !outer.Contains(inner, 5) {
		t.Error("expected inner inside outer with margin 5")
	}
	if outer.Contains(inner, 9.5) {
		t.Error("expected margin 9.5 to be violated")
	}
}

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, q1, q2 Vec2
		want           bool
	}{
		{"crossing", Vec2{0, 0}, Vec2{1, 1}, Vec2{0, 1}, Vec2{1, 0}, true},
		{"disjoint", Vec2{0, 0}, Vec2{1, 0}, Vec2{0, 1}, Vec2{1, 1}, false},
		{"touching", Vec2{0, 0}, Vec2{1, 0}, Vec2{1, 0}, Vec2{2, 1}, true},
		{"collinear overlap", Vec2{0, 0}, Vec2{2, 0}, Vec2{1, 0}, Vec2{3, 0}, true},
		{"collinear disjoint", Vec2{0, 0}, Vec2{1, 0}, Vec2{2, 0}, Vec2{3, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentsIntersect(tt.p1, tt.p2, tt.q1, tt.q2); got != tt.want {
				t.Errorf("SegmentsIntersect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolylineDistance(t *testing.T) {
	line := []Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}
	got := PolylineDistance(Vec3{1, 0, 2}, line)
	if got < 1.999 || got > 2.001 {
		t.Errorf("PolylineDistance() = %v, want 2", got)
	}
	got = PolylineDistance(Vec3{-1, 0, 0}, line)
	if got < 0.999 || got > 1.001 {
		t.Errorf("PolylineDistance() past endpoint = %v, want 1", got)
	}
}
