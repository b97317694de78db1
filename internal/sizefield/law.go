package sizefield

import "math"

// FarfieldSize returns the mesh size reached at the farfield boundary
// when the size grows geometrically with the given ratio from h at the
// surface over the distance d. Derived from the geometric series
// h + h*r + ... + h*r^(n-1) = d solved for n.
func FarfieldSize(h, d, r float64) float64 {
	n := math.Log(1-(1-r)*d/h) / math.Log(r)
	return h * math.Pow(r, n-1)
}
