package geom

// BBox is an axis-aligned bounding box.
type BBox struct {
	Min, Max Vec3
}

// EmptyBBox returns a box that any point will extend.
func EmptyBBox() BBox {
	return BBox{
		Min: Vec3{1e300, 1e300, 1e300},
		Max: Vec3{-1e300, -1e300, -1e300},
	}
}

// Extend grows the box to contain p.
func (b *BBox) Extend(p Vec3) {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
}

// Union returns the smallest box containing b and other.
func (b BBox) Union(other BBox) BBox {
	u := b
	u.Extend(other.Min)
	u.Extend(other.Max)
	return u
}

// Overlaps reports whether b and other share any volume.
func (b BBox) Overlaps(other BBox) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

// Center returns the box center.
func (b BBox) Center() Vec3 {
	return Mid(b.Min, b.Max)
}

// Diagonal returns the length of the box diagonal.
func (b BBox) Diagonal() float64 {
	return b.Max.Sub(b.Min).Length()
}

// Contains reports whether other lies inside b with at least the given
// margin on every side.
func (b BBox) Contains(other BBox, margin float64) bool {
	return other.Min.X-b.Min.X >= margin && b.Max.X-other.Max.X >= margin &&
		other.Min.Y-b.Min.Y >= margin && b.Max.Y-other.Max.Y >= margin &&
		other.Min.Z-b.Min.Z >= margin && b.Max.Z-other.Max.Z >= margin
}
