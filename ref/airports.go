// Package ref contains the reference tables the analyses look things up in: airports and
// their runways, in the OurAirports CSV layout.
package ref

import(
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/skypies/geo"

	"github.com/wxobs/altcheck"
	"github.com/wxobs/altcheck/geodesy"
	"github.com/wxobs/altcheck/metdb"
)

var(
	ErrNoAirports = errors.New("ref: airport table is empty")
	ErrNoRunway   = errors.New("ref: no runway for airport")
)

// Airports is the airport table, in file order.
type Airports []altcheck.Airport

func (as Airports)String() string {
	str := fmt.Sprintf("--- airports (%d entries) ---\n", len(as))
	for _,a := range as {
		str += fmt.Sprintf(" %s\n", a)
	}
	return str
}

// {{{ LoadAirports

// LoadAirports reads ident, name, latitude_deg and longitude_deg; other columns are ignored.
func LoadAirports(rdr io.Reader) (Airports, error) {
	ret := Airports{}
	rowReader := metdb.NewRowReader(rdr, nil)

	for {
		row,err := rowReader.Read()
		if err == io.EOF { break }
		if err != nil { return ret, err }

		lat,err := row.Float("latitude_deg")
		if err != nil { return ret, fmt.Errorf("airports line %d: %w", rowReader.Line(), err) }
		long,err := row.Float("longitude_deg")
		if err != nil { return ret, fmt.Errorf("airports line %d: %w", rowReader.Line(), err) }
		if math.IsNaN(lat) || math.IsNaN(long) { continue } // can't be nearest to anything

		ret = append(ret, altcheck.Airport{
			Ident: row["ident"],
			Name: row["name"],
			Latlong: geo.Latlong{Lat:lat, Long:long},
		})
	}

	return ret, nil
}

// }}}
// {{{ as.Nearest

// Nearest is a brute-force scan by geodesic (Karney) distance. Ties go to the airport that
// comes first in the table.
func (as Airports)Nearest(pos geo.Latlong) (altcheck.Airport, float64, error) {
	if len(as) == 0 { return altcheck.Airport{}, math.NaN(), ErrNoAirports }

	iBest, bestKM := -1, math.Inf(1)
	for i,a := range as {
		if km,_,_ := geodesy.Inverse(pos, a.Latlong); km < bestKM {
			iBest, bestKM = i, km
		}
	}
	if iBest < 0 {
		return altcheck.Airport{}, math.NaN(), fmt.Errorf("ref: no airport has a finite distance to %s", pos)
	}
	return as[iBest], bestKM, nil
}

func (as Airports)Lookup(ident string) (altcheck.Airport, bool) {
	for _,a := range as {
		if a.Ident == ident { return a, true }
	}
	return altcheck.Airport{}, false
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
