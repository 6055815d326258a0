package altcheck

import "math"

// NormalizeHeading maps any heading into [0,360). NaN stays NaN.
func NormalizeHeading(h float64) float64 {
	return floorMod(h, 360)
}

// ReciprocalHeading returns the heading of the other end of a runway. Headings in [0,180)
// gain 180, all others lose it; a heading outside [0,360) therefore stays outside.
func ReciprocalHeading(he float64) float64 {
	if he >= 0 && he < 180 { return he + 180 }
	return he - 180
}

// HeadingDifference is the signed angle from b to a, in [-180,180). If either is NaN,
// so is the result.
func HeadingDifference(a, b float64) float64 {
	return floorMod(a - b + 180 + 360, 360) - 180
}

// AbsMinDifference is the smaller magnitude of the two differences, ignoring NaN; NaN
// only if both are.
func AbsMinDifference(d1, d2 float64) float64 {
	a1,a2 := math.Abs(d1), math.Abs(d2)
	switch {
	case math.IsNaN(a1): return a2
	case math.IsNaN(a2): return a1
	}
	return math.Min(a1, a2)
}

// floorMod has the sign of the divisor (math.Mod has the sign of the dividend).
func floorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 { r += m }
	if r == m { r = 0 } // -1e-20 + 360 rounds up to 360
	return r
}
