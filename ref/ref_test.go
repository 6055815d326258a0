package ref

// go test -v github.com/wxobs/altcheck/ref

import(
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/skypies/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wxobs/altcheck/geodesy"
)

const(
	airportsCSV = `"id","ident","type","name","latitude_deg","longitude_deg","elevation_ft"
2434,"EGLL","large_airport","London Heathrow Airport",51.4706,-0.461941,83
2429,"EGKK","large_airport","London Gatwick Airport",51.148102,-0.190278,202
2415,"EGCC","large_airport","Manchester Airport",53.349375,-2.279521,257
9999,"XXXX","closed","Nowhere",,,
`
	runwaysCSV = `"id","airport_ref","airport_ident","length_ft","width_ft","le_ident","le_heading_degT","he_ident","he_heading_degT"
1,2434,"EGLL",12001,164,"09L",89.6,"27R",269.7
2,2434,"EGLL",12802,164,"09R",89.6,"27L",269.7
3,2429,"EGKK",10879,148,"08R",77.9,"26L",257.9
4,2429,"EGKK",8415,148,"08L",77.9,"26R",257.9
5,2415,"EGCC",10000,150,"05L",50.8,"23R",230.8
6,2415,"EGCC",10000,150,"05R",51.0,"23L",231.0
7,1,"ZZZZ",,,"",,"",
`
)

func loadTestTables(t *testing.T) (Airports, Runways) {
	as,err := LoadAirports(strings.NewReader(airportsCSV))
	require.NoError(t, err)
	rs,err := LoadRunways(strings.NewReader(runwaysCSV))
	require.NoError(t, err)
	return as, rs
}

func TestLoadAirports(t *testing.T) {
	as,_ := loadTestTables(t)
	require.Len(t, as, 3) // XXXX has no position
	assert.Equal(t, "EGLL", as[0].Ident)
	assert.Equal(t, "London Heathrow Airport", as[0].Name)
	assert.Equal(t, 51.4706, as[0].Lat)

	a,ok := as.Lookup("EGCC")
	assert.True(t, ok)
	assert.Equal(t, "Manchester Airport", a.Name)
	_,ok = as.Lookup("KSFO")
	assert.False(t, ok)
}

func TestNearest(t *testing.T) {
	as,_ := loadTestTables(t)

	a,km,err := as.Nearest(geo.Latlong{Lat:51.4775, Long:-0.4614})
	require.NoError(t, err)
	assert.Equal(t, "EGLL", a.Ident)
	assert.InDelta(t, 0.77, km, 0.05)

	a,_,err = as.Nearest(geo.Latlong{Lat:51.16, Long:-0.17})
	require.NoError(t, err)
	assert.Equal(t, "EGKK", a.Ident)

	a,_,err = as.Nearest(geo.Latlong{Lat:55.95, Long:-3.37}) // Edinburgh; Manchester is the closest we have
	require.NoError(t, err)
	assert.Equal(t, "EGCC", a.Ident)
}

func TestNearestTieGoesToFirst(t *testing.T) {
	as := Airports{}
	as = append(as, Airports{{Ident:"AAAA", Latlong:geo.Latlong{Lat:0, Long:1}}}...)
	as = append(as, Airports{{Ident:"BBBB", Latlong:geo.Latlong{Lat:0, Long:-1}}}...)
	a,_,err := as.Nearest(geo.Latlong{Lat:0, Long:0})
	require.NoError(t, err)
	assert.Equal(t, "AAAA", a.Ident)
}

func TestNearestUsesGeodesicDistance(t *testing.T) {
	as,_ := loadTestTables(t)
	pos := geo.Latlong{Lat:51.30, Long:-0.33} // roughly between Heathrow and Gatwick

	a,km,err := as.Nearest(pos)
	require.NoError(t, err)
	want,_,_ := geodesy.Inverse(pos, a.Latlong)
	assert.Equal(t, want, km)

	for _,other := range as {
		otherKM,_,_ := geodesy.Inverse(pos, other.Latlong)
		assert.GreaterOrEqual(t, otherKM, km, other.Ident)
	}
}

func TestNearestEmpty(t *testing.T) {
	_,_,err := Airports{}.Nearest(geo.Latlong{Lat:51, Long:0})
	assert.True(t, errors.Is(err, ErrNoAirports))
}

func TestRunwaysFor(t *testing.T) {
	_,rs := loadTestTables(t)

	r,err := rs.For("EGLL", RunwayLongest)
	require.NoError(t, err)
	assert.Equal(t, 12802.0, r.LengthFt)

	r,err = rs.For("EGLL", RunwayFirst)
	require.NoError(t, err)
	assert.Equal(t, 12001.0, r.LengthFt)

	// Equal lengths: the first listed wins
	r,err = rs.For("EGCC", RunwayLongest)
	require.NoError(t, err)
	assert.Equal(t, 230.8, r.HighEndHeading)

	he,le := r.Headings()
	assert.Equal(t, 230.8, he)
	assert.InDelta(t, 50.8, le, 1e-9)

	r,err = rs.For("ZZZZ", RunwayLongest)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r.LengthFt))
	he,le = r.Headings()
	assert.True(t, math.IsNaN(he) && math.IsNaN(le))

	_,err = rs.For("KSFO", RunwayLongest)
	assert.True(t, errors.Is(err, ErrNoRunway))
}

func TestParseRunwayPolicy(t *testing.T) {
	p,err := ParseRunwayPolicy("First")
	require.NoError(t, err)
	assert.Equal(t, RunwayFirst, p)

	p,err = ParseRunwayPolicy("")
	require.NoError(t, err)
	assert.Equal(t, RunwayLongest, p)

	_,err = ParseRunwayPolicy("widest")
	assert.Error(t, err)
}
