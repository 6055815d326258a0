package analysis

import(
	"fmt"
	"math"
)

// AngleBin is one bar of the distribution of runway/orientation differences.
type AngleBin struct {
	Lo, Hi   float64
	Count    int
	Fraction float64 // Count divided by all profiles, including the undefined ones
}

type AngleHistogram struct {
	Bins     []AngleBin
	N        int // all profiles
	Profiles int // profiles with no undefined values
}

// NewAngleHistogram bins AbsDifferenceMin into [0,10), [10,20) ... [80,90]; the last bin
// is closed. Undefined values are not binned but still count towards N, so the fractions
// need not sum to one.
func NewAngleHistogram(results []ProfileResult) AngleHistogram {
	h := AngleHistogram{N: len(results)}
	for lo := 0.0; lo < 90; lo += 10 {
		h.Bins = append(h.Bins, AngleBin{Lo:lo, Hi:lo+10})
	}

	for _,pr := range results {
		if !pr.HasNaN() { h.Profiles++ }

		v := pr.AbsDifferenceMin
		if math.IsNaN(v) || v < 0 || v > 90 { continue }
		i := int(v / 10)
		if i >= len(h.Bins) { i = len(h.Bins)-1 } // v == 90
		h.Bins[i].Count++
	}

	for i := range h.Bins {
		if h.N > 0 { h.Bins[i].Fraction = float64(h.Bins[i].Count) / float64(h.N) }
	}

	return h
}

func (h AngleHistogram)String() string {
	str := fmt.Sprintf("No. of profiles: %d (of %d)\n", h.Profiles, h.N)
	for _,b := range h.Bins {
		str += fmt.Sprintf(" [%2.0f,%2.0f) %5.1f%% (%d)\n", b.Lo, b.Hi, 100*b.Fraction, b.Count)
	}
	return str
}
