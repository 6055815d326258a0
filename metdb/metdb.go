// Package metdb reads the text extracts of AMDAR and Mode-S reports pulled from MetDB,
// and the day-minimum tables derived from them.
package metdb

import(
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/skypies/geo"

	"github.com/wxobs/altcheck"
	"github.com/wxobs/altcheck/store"
)

const(
	KindAMDAR = "AMDARS"
	KindModeS = "MODE-S"

	DateFormat = "20060102"
)

var ErrNoFile = errors.New("metdb: no extract for that airport and date")

// {{{ Layout

// Layout knows where extracts live: {root}/{KIND}/{airport}/{KIND}_{yyyymmdd}.txt
type Layout struct {
	Root string
}

func (l Layout)Path(kind, airport string, day time.Time) string {
	return store.Join(l.Root, kind, airport, fmt.Sprintf("%s_%s.txt", kind, day.Format(DateFormat)))
}

// DayMinPath is where the Mode-S day-minimum table for an airport and period lives.
func DayMinPath(dir, airport, period string) string {
	return store.Join(dir, fmt.Sprintf("%s_%s_day_min_BG.csv", airport, period))
}

// DateRange is every UTC day from s to e, inclusive.
func DateRange(s, e time.Time) []time.Time {
	ret := []time.Time{}
	s = time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, time.UTC)
	for d := s; !d.After(e); d = d.AddDate(0,0,1) {
		ret = append(ret, d)
	}
	return ret
}

// }}}

// {{{ ReadAMDAR

func ReadAMDAR(rdr io.Reader) (altcheck.Profile, error) {
	p := altcheck.Profile{}
	rowReader := NewRowReader(rdr, DefaultAMDARHeader)

	for {
		row,err := rowReader.Read()
		if err == io.EOF { break }
		if err != nil { return p, err }

		o,err := row.ToAMDARObservation()
		if err != nil { return p, fmt.Errorf("line %d: %w", rowReader.Line(), err) }
		p = append(p, o)
	}

	return p, nil
}

func (r Row)ToAMDARObservation() (altcheck.Observation, error) {
	o := altcheck.NewObservation(altcheck.SourceAMDAR)
	o.Registration = r["RGSN_NMBR"]

	var err error
	if o.TimestampUTC,err = r.Time("TIME"); err != nil { return o, err }
	if o.Latlong,err = r.latlong(); err != nil { return o, err }
	if o.Altitude,err = r.Float("ALTD"); err != nil { return o, err }

	phase,err := r.Int("FLGT_PHAS")
	if err != nil { return o, err }
	o.Phase = altcheck.Phase(phase)

	return o, nil
}

// }}}
// {{{ ReadModeS

func ReadModeS(rdr io.Reader) (altcheck.Profile, error) {
	p := altcheck.Profile{}
	rowReader := NewRowReader(rdr, nil)

	for {
		row,err := rowReader.Read()
		if err == io.EOF { break }
		if err != nil { return p, err }

		o,err := row.ToModeSObservation()
		if err != nil { return p, fmt.Errorf("line %d: %w", rowReader.Line(), err) }
		p = append(p, o)
	}

	return p, nil
}

func (r Row)ToModeSObservation() (altcheck.Observation, error) {
	o := altcheck.NewObservation(altcheck.SourceModeS)
	o.Registration = r["RGSN_NMBR"] // usually absent

	var err error
	if o.TimestampUTC,err = r.Time("TIME"); err != nil { return o, err }
	if o.Latlong,err = r.latlong(); err != nil { return o, err }
	if o.PressureAltitude,err = r.Float("PESR_ALTD"); err != nil { return o, err }
	if o.GNSSAltitude,err = r.Float("GNSS_ALTD"); err != nil { return o, err }

	return o, nil
}

// }}}
// {{{ ReadDayMin

// DayMin is a row of a day-minimum table: the position and altitude of the lowest Mode-S
// GNSS altitude seen on that day.
type DayMin struct {
	Date         time.Time
	geo.Latlong
	GNSSAltitude float64
	Extra        map[string]float64 // any other numeric columns, by name
}

func ReadDayMin(rdr io.Reader) ([]DayMin, error) {
	ret := []DayMin{}
	rowReader := NewRowReader(rdr, nil)

	for {
		row,err := rowReader.Read()
		if err == io.EOF { break }
		if err != nil { return ret, err }

		dm := DayMin{}
		if dm.Date,err = row.Time("TIME"); err != nil {
			return ret, fmt.Errorf("line %d: %w", rowReader.Line(), err)
		}
		if dm.Latlong,err = row.latlong(); err != nil {
			return ret, fmt.Errorf("line %d: %w", rowReader.Line(), err)
		}
		if dm.GNSSAltitude,err = row.Float("GNSS_ALTD"); err != nil {
			return ret, fmt.Errorf("line %d: %w", rowReader.Line(), err)
		}
		for _,col := range rowReader.Headers() {
			switch col {
			case "TIME", "LAT", "LON", "GNSS_ALTD", "":
				continue
			}
			if v,err := row.Float(col); err == nil {
				if dm.Extra == nil { dm.Extra = map[string]float64{} }
				dm.Extra[col] = v
			}
		}
		ret = append(ret, dm)
	}

	return ret, nil
}

// }}}

func (r Row)latlong() (geo.Latlong, error) {
	lat,err := r.Float("LAT")
	if err != nil { return geo.Latlong{}, err }
	long,err := r.Float("LON")
	if err != nil { return geo.Latlong{}, err }
	if math.IsNaN(lat) || math.IsNaN(long) {
		return geo.Latlong{}, fmt.Errorf("missing position (LAT='%s', LON='%s')", r["LAT"], r["LON"])
	}
	return geo.Latlong{Lat:lat, Long:long}, nil
}

// {{{ GroupByRegistration

// GroupByRegistration splits observations by aircraft. The registrations come back in
// the order they first appear; each group keeps the relative order of its observations.
func GroupByRegistration(p altcheck.Profile) ([]string, map[string]altcheck.Profile) {
	regs := []string{}
	groups := map[string]altcheck.Profile{}
	for _,o := range p {
		if _,exists := groups[o.Registration]; !exists {
			regs = append(regs, o.Registration)
		}
		groups[o.Registration] = append(groups[o.Registration], o)
	}
	return regs, groups
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
