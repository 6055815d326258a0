package analysis

import(
	"math"

	"github.com/wxobs/altcheck"
	"github.com/wxobs/altcheck/geodesy"
)

// ComputeOrientation annotates each observation with the direction of travel from the
// previous one, in the profile's current order. The first observation has no previous
// point, and repeated positions have no direction; both are left as NaN.
func ComputeOrientation(p altcheck.Profile) {
	for i := range p {
		if i == 0 || p[i].SamePlaceAs(p[i-1]) {
			p[i].Orientation = math.NaN()
			continue
		}
		p[i].Orientation = geodesy.Bearing(p[i-1].Latlong, p[i].Latlong)
	}
}
