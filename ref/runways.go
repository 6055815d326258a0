package ref

import(
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/wxobs/altcheck"
	"github.com/wxobs/altcheck/metdb"
)

// RunwayPolicy decides which runway represents an airport that has several.
type RunwayPolicy int
const(
	RunwayLongest RunwayPolicy = iota // longest by length_ft; ties go to the first listed
	RunwayFirst                       // the first one listed
)

func (p RunwayPolicy)String() string {
	switch p {
	case RunwayLongest: return "longest"
	case RunwayFirst:   return "first"
	}
	return fmt.Sprintf("RunwayPolicy(%d)", int(p))
}

func ParseRunwayPolicy(s string) (RunwayPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "longest": return RunwayLongest, nil
	case "first":       return RunwayFirst, nil
	}
	return RunwayLongest, fmt.Errorf("runway policy '%s' not recognized (want longest or first)", s)
}

func (p RunwayPolicy)MarshalText() ([]byte, error) { return []byte(p.String()), nil }
func (p *RunwayPolicy)UnmarshalText(b []byte) error {
	pol,err := ParseRunwayPolicy(string(b))
	if err != nil { return err }
	*p = pol
	return nil
}

// Runways is the runway table, indexed by airport ident. Each airport's runways are in
// file order.
type Runways map[string][]altcheck.Runway

// {{{ LoadRunways

func LoadRunways(rdr io.Reader) (Runways, error) {
	ret := Runways{}
	rowReader := metdb.NewRowReader(rdr, nil)

	for {
		row,err := rowReader.Read()
		if err == io.EOF { break }
		if err != nil { return ret, err }

		r := altcheck.Runway{AirportIdent: row["airport_ident"]}
		if r.LengthFt,err = row.Float("length_ft"); err == nil {
			if r.HighEndHeading,err = row.Float("he_heading_degT"); err == nil {
				r.LowEndHeading,err = row.Float("le_heading_degT")
			}
		}
		if err != nil { return ret, fmt.Errorf("runways line %d: %w", rowReader.Line(), err) }

		ret[r.AirportIdent] = append(ret[r.AirportIdent], r)
	}

	return ret, nil
}

// }}}
// {{{ rs.For

func (rs Runways)For(ident string, policy RunwayPolicy) (altcheck.Runway, error) {
	candidates := rs[ident]
	if len(candidates) == 0 { return altcheck.Runway{}, fmt.Errorf("%s: %w", ident, ErrNoRunway) }

	if policy == RunwayFirst { return candidates[0], nil }

	iBest := 0
	for i,r := range candidates {
		// NaN compares false, so a runway of unknown length never wins
		if r.LengthFt > candidates[iBest].LengthFt || math.IsNaN(candidates[iBest].LengthFt) && !math.IsNaN(r.LengthFt) {
			iBest = i
		}
	}
	return candidates[iBest], nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
