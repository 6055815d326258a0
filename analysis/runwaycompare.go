package analysis

import(
	"fmt"
	"math"
	"sort"

	"github.com/wxobs/altcheck"
)

// ComparedPoint is an observation, annotated with how its direction of travel compares to
// each end of the runway.
type ComparedPoint struct {
	altcheck.Observation
	DifferenceHE float64 // signed, [-180,180); NaN if there's no orientation
	DifferenceLE float64
}

// ProfileResult is the outcome of comparing one profile with the runway of its nearest airport.
type ProfileResult struct {
	Phase          altcheck.Phase
	Airport        altcheck.Airport // nearest to the lowest point of the profile
	AirportDistKM  float64
	Runway         altcheck.Runway
	RunwayHE       float64          // heading of the high end
	RunwayLE       float64          // reciprocal of the high end

	Points       []ComparedPoint    // the whole profile, lowest point first (ascent) or last (descent)
	Summary        ComparedPoint    // the point that represents the profile
	AbsDifferenceMin float64        // smaller of |DifferenceHE|, |DifferenceLE| at the summary point
	TrackKM        float64

	Source         string           // e.g. which airport/date file this came from
}

func (pr ProfileResult)String() string {
	return fmt.Sprintf("%s %s -> %s, runway %.1f/%.1f, orientation %.1f, min diff %.1f",
		pr.Phase, pr.Summary.Registration, pr.Airport.Ident, pr.RunwayHE, pr.RunwayLE,
		pr.Summary.Orientation, pr.AbsDifferenceMin)
}

// HasNaN is true if any of the values written out for the profile is undefined.
func (pr ProfileResult)HasNaN() bool {
	for _,v := range []float64{pr.Summary.Lat, pr.Summary.Long, pr.Summary.Altitude,
		pr.Summary.Orientation, pr.RunwayHE, pr.RunwayLE, pr.Summary.DifferenceHE,
		pr.Summary.DifferenceLE, pr.AbsDifferenceMin} {
		if math.IsNaN(v) { return true }
	}
	return false
}

// {{{ ac.CompareProfile

// CompareProfile orders the profile by altitude (upwards for an ascent, downwards for a
// descent), works out the direction of travel between consecutive points, and compares
// it against both ends of the nearest airport's runway. The profile itself is unchanged.
func (ac *AnalysisContext)CompareProfile(p altcheck.Profile, phase altcheck.Phase) (ProfileResult, error) {
	pr := ProfileResult{Phase: phase}
	if len(p) < 2 { return pr, fmt.Errorf("profile has %d points; need at least two", len(p)) }

	sorted := p.Copy()
	var lowest, summary int
	switch phase {
	case altcheck.Ascent:
		sorted.SortByAltitude(true)
		lowest, summary = 0, 1 // point 0 never has an orientation
	case altcheck.Descent:
		sorted.SortByAltitude(false)
		lowest, summary = len(sorted)-1, len(sorted)-1
	default:
		return pr, fmt.Errorf("can't compare a profile for phase %s", phase)
	}

	ComputeOrientation(sorted)

	airport,km,err := ac.Airports.Nearest(sorted[lowest].Latlong)
	if err != nil { return pr, err }
	pr.Airport, pr.AirportDistKM = airport, km

	if pr.Runway,err = ac.Runways.For(airport.Ident, ac.RunwayPolicy); err != nil {
		return pr, err
	}
	pr.RunwayHE, pr.RunwayLE = pr.Runway.Headings()

	pr.Points = make([]ComparedPoint, len(sorted))
	for i,o := range sorted {
		pr.Points[i] = ComparedPoint{
			Observation: o,
			DifferenceHE: altcheck.HeadingDifference(o.Orientation, pr.RunwayHE),
			DifferenceLE: altcheck.HeadingDifference(o.Orientation, pr.RunwayLE),
		}
	}

	pr.Summary = pr.Points[summary]
	pr.AbsDifferenceMin = altcheck.AbsMinDifference(pr.Summary.DifferenceHE, pr.Summary.DifferenceLE)
	pr.TrackKM = p.PathLengthKM()

	return pr, nil
}

// }}}
// {{{ SortResults

// SortResults orders by AbsDifferenceMin, smallest first, with the undefined ones at the
// end. Equal values keep their order.
func SortResults(results []ProfileResult) {
	sort.SliceStable(results, func(i,j int) bool {
		a,b := results[i].AbsDifferenceMin, results[j].AbsDifferenceMin
		if math.IsNaN(a) { return false }
		if math.IsNaN(b) { return true }
		return a < b
	})
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
