// Package geodesy does distance and azimuth calculations on the WGS84 ellipsoid. Azimuths
// follow the PROJ convention, so results line up with pyproj/geod outputs: the back
// azimuth is measured at the destination, pointing back at the origin.
package geodesy

import(
	"math"

	"github.com/jftuga/geodist"
	"github.com/skypies/geo"
	"github.com/tidwall/geodesic"
)

// Inverse solves the inverse geodesic problem from a to b. Azimuths are in (-180,180].
func Inverse(a, b geo.Latlong) (distKM, fwdAzimuth, backAzimuth float64) {
	var s12, azi1, azi2 float64
	geodesic.WGS84.Inverse(a.Lat, a.Long, b.Lat, b.Long, &s12, &azi1, &azi2)

	// azi2 is the direction of travel at b; the back azimuth points the other way.
	back := azi2 + 180
	if back > 180 { back -= 360 }

	return s12 / 1000.0, azi1, back
}

// DistanceKM is the ellipsoidal distance between two points, via Vincenty's formulae. For
// the near-antipodal pairs where Vincenty does not converge, Karney's method is used.
func DistanceKM(a, b geo.Latlong) float64 {
	_,km,err := geodist.VincentyDistance(geodist.Coord{Lat:a.Lat, Lon:a.Long},
		geodist.Coord{Lat:b.Lat, Lon:b.Long})
	if err != nil {
		km,_,_ = Inverse(a, b)
	}
	return km
}

// Bearing is the direction of travel from prev to cur, measured at prev, in [0,360). It
// is NaN when the points coincide, or when either is undefined.
func Bearing(prev, cur geo.Latlong) float64 {
	if math.IsNaN(prev.Lat) || math.IsNaN(prev.Long) || math.IsNaN(cur.Lat) || math.IsNaN(cur.Long) {
		return math.NaN()
	}
	if prev.Lat == cur.Lat && prev.Long == cur.Long { return math.NaN() }

	// Azimuth at prev, pointing towards cur.
	_,fwd,_ := Inverse(prev, cur)
	if fwd < 0 { fwd += 360 }
	if fwd >= 360 { fwd -= 360 }
	return fwd
}
