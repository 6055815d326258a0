package analysis

import(
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/skypies/geo"
	"github.com/stretchr/testify/require"

	"github.com/wxobs/altcheck"
	"github.com/wxobs/altcheck/ref"
)

const(
	testAirportsCSV = `"id","ident","type","name","latitude_deg","longitude_deg"
2434,"EGLL","large_airport","London Heathrow Airport",51.4706,-0.461941
2429,"EGKK","large_airport","London Gatwick Airport",51.148102,-0.190278
9000,"EGNR","small_airport","No Runways Here",53.17,-2.97
`
	testRunwaysCSV = `"id","airport_ident","length_ft","le_heading_degT","he_heading_degT"
1,"EGLL",12001,89.7,269.7
2,"EGLL",12802,89.7,269.7
3,"EGKK",10879,77.9,257.9
`
)

func testContext(t *testing.T) *AnalysisContext {
	as,err := ref.LoadAirports(strings.NewReader(testAirportsCSV))
	require.NoError(t, err)
	rs,err := ref.LoadRunways(strings.NewReader(testRunwaysCSV))
	require.NoError(t, err)
	return &AnalysisContext{Airports: as, Runways: rs, RunwayPolicy: ref.RunwayLongest}
}

var testDay = time.Date(2018, 7, 22, 15, 0, 0, 0, time.UTC)

// eastbound returns n reports heading due east along 51.4775N towards Heathrow, a minute
// apart, descending from 900m in 100m steps.
func eastbound(reg string, phase altcheck.Phase, start time.Time, n int) altcheck.Profile {
	p := altcheck.Profile{}
	for i := 0; i < n; i++ {
		o := altcheck.NewObservation(altcheck.SourceAMDAR)
		o.Registration = reg
		o.TimestampUTC = start.Add(time.Duration(i) * time.Minute)
		o.Latlong = geo.Latlong{Lat: 51.4775, Long: -0.60 + 0.02*float64(i)}
		o.Altitude = 900 - 100*float64(i)
		o.Phase = phase
		p = append(p, o)
	}
	return p
}

// amdarText renders observations the way MetDB extracts them, with a header line.
func amdarText(p altcheck.Profile) string {
	str := "RGSN_NMBR,TIME,LAT,LON,ALTD,FLGT_PHAS\n"
	for _,o := range p {
		str += fmt.Sprintf("%s,%s--,%.4f,%.4f,%.1f,%d\n", o.Registration,
			o.TimestampUTC.Format("200601021504"), o.Lat, o.Long, o.Altitude, int(o.Phase))
	}
	return str
}
