package geodesy

import(
	"math"
	"testing"

	"github.com/skypies/geo"
	"github.com/stretchr/testify/assert"
)

var(
	egll = geo.Latlong{Lat:51.4706, Long:-0.461941}
	egkk = geo.Latlong{Lat:51.148102, Long:-0.190278}
	egcc = geo.Latlong{Lat:53.349375, Long:-2.279521}
)

func TestInverseDueNorthAndEast(t *testing.T) {
	_,fwd,back := Inverse(geo.Latlong{Lat:51, Long:0}, geo.Latlong{Lat:52, Long:0})
	assert.InDelta(t, 0.0, fwd, 1e-9)
	assert.InDelta(t, 180.0, math.Abs(back), 1e-9)

	_,fwd,back = Inverse(geo.Latlong{Lat:0, Long:0}, geo.Latlong{Lat:0, Long:1})
	assert.InDelta(t, 90.0, fwd, 1e-9)
	assert.InDelta(t, -90.0, back, 1e-9)
}

func TestDistanceKM(t *testing.T) {
	// Heathrow to Gatwick is about 41km; to Manchester about 243km
	assert.InDelta(t, 41.0, DistanceKM(egll, egkk), 1.0)
	assert.InDelta(t, 243.0, DistanceKM(egll, egcc), 2.0)

	// Vincenty and Karney agree to well under a metre at these ranges
	km,_,_ := Inverse(egll, egcc)
	assert.InDelta(t, km, DistanceKM(egll, egcc), 0.001)

	assert.Equal(t, 0.0, DistanceKM(egll, egll))
}

func TestDistanceKMAntipodal(t *testing.T) {
	// Vincenty fails to converge here; we should still get half the meridian-ish circumference
	km := DistanceKM(geo.Latlong{Lat:0, Long:0}, geo.Latlong{Lat:0.5, Long:179.7})
	assert.InDelta(t, 19950.0, km, 100.0)
}

func TestBearing(t *testing.T) {
	assert.InDelta(t, 0.0, Bearing(geo.Latlong{Lat:51, Long:0}, geo.Latlong{Lat:51.01, Long:0}), 1e-9)
	assert.InDelta(t, 180.0, Bearing(geo.Latlong{Lat:51.01, Long:0}, geo.Latlong{Lat:51, Long:0}), 1e-9)

	// Westbound along the equator comes out at 270, not -90
	assert.InDelta(t, 270.0, Bearing(geo.Latlong{Lat:0, Long:1}, geo.Latlong{Lat:0, Long:0}), 1e-9)

	// Gatwick lies south-east of Heathrow
	b := Bearing(egll, egkk)
	assert.True(t, b > 90 && b < 180, "bearing %f", b)

	assert.True(t, math.IsNaN(Bearing(egll, egll)))
	assert.True(t, math.IsNaN(Bearing(geo.Latlong{Lat:math.NaN(), Long:0}, egll)))
}
