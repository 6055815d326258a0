package analysis

import(
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/wxobs/altcheck/beam"
	"github.com/wxobs/altcheck/metdb"
	"github.com/wxobs/altcheck/report"
)

// Lookuper is a gridded model that can be sampled at a position (beam.Grid, in practice).
type Lookuper interface {
	Lookup(lon, lat float64) (float64, error)
}

// Scenario is one configuration of the radar network, and the column its modelled
// minimum observable altitude is written to.
type Scenario struct {
	Name   string   // e.g. "Existing"
	Column string   // e.g. "min_obs_altd_exist"
	Grid   Lookuper
}

// DefaultScenarioColumns maps the scenario names onto the column names used in the stats tables.
var DefaultScenarioColumns = map[string]string{
	"Existing": "min_obs_altd_exist",
	"Priority": "min_obs_altd_priority",
	"AllSites": "min_obs_altd_all",
}

// BeamRow is a day's minimum observed altitude, with the model's value at that position
// under each scenario (in scenario order).
type BeamRow struct {
	metdb.DayMin
	Model []float64
}

// CompareBeam samples each scenario at each day's position. Positions outside a grid get
// NaN, and are counted in the second return value.
func CompareBeam(days []metdb.DayMin, scenarios []Scenario) ([]BeamRow, int) {
	ret := make([]BeamRow, len(days))
	nOutside := 0
	for i,dm := range days {
		ret[i] = BeamRow{DayMin: dm, Model: make([]float64, len(scenarios))}
		for j,sc := range scenarios {
			v,err := sc.Grid.Lookup(dm.Long, dm.Lat)
			if errors.Is(err, beam.ErrOutsideGrid) { nOutside++ }
			if err != nil { v = math.NaN() }
			ret[i].Model[j] = v
		}
	}
	return ret, nOutside
}

// BeamStats is the per-airport row of the stats table: mean of the observed daily
// minima, and of the model values under each scenario.
type BeamStats struct {
	Airport    string
	GNSSMean   float64
	ModelMeans []float64
}

func (bs BeamStats)String() string {
	return fmt.Sprintf("%s: observed %.0f, modelled %v", bs.Airport, bs.GNSSMean, bs.ModelMeans)
}

func SummarizeBeam(airport string, rows []BeamRow, nScenarios int) BeamStats {
	bs := BeamStats{Airport: airport, ModelMeans: make([]float64, nScenarios)}

	gnss := []float64{}
	for _,r := range rows { gnss = append(gnss, r.GNSSAltitude) }
	bs.GNSSMean = MeanOf(gnss)

	for j := 0; j < nScenarios; j++ {
		vals := []float64{}
		for _,r := range rows {
			if j < len(r.Model) { vals = append(vals, r.Model[j]) }
		}
		bs.ModelMeans[j] = MeanOf(vals)
	}

	return bs
}

// BeamDetailReport is the day-min table with the model values added as extra columns.
// Any other numeric columns from the day-min table are carried through, after the
// model columns; a day without one gets NaN.
func BeamDetailReport(name string, rows []BeamRow, scenarios []Scenario) *report.Report {
	extra := []string{}
	seen := map[string]bool{}
	for _,row := range rows {
		for k,_ := range row.Extra {
			if !seen[k] { seen[k] = true; extra = append(extra, k) }
		}
	}
	sort.Strings(extra)

	headers := []string{"TIME", "LAT", "LON", "GNSS_ALTD"}
	for _,sc := range scenarios { headers = append(headers, sc.Column) }
	headers = append(headers, extra...)
	r := report.New(name, headers...)

	for _,row := range rows {
		vals := []interface{}{row.Date.Format(metdb.DateFormat), row.Lat, row.Long, row.GNSSAltitude}
		for _,v := range row.Model { vals = append(vals, v) }
		for _,k := range extra {
			v,exists := row.Extra[k]
			if !exists { v = math.NaN() }
			vals = append(vals, v)
		}
		r.AddValues(vals...)
	}
	r.I["[A] days"] = len(rows)
	return r
}

// BeamStatsReport is the stats table, one row per airport with Airport as the first column.
func BeamStatsReport(name string, stats []BeamStats, scenarios []Scenario) *report.Report {
	headers := []string{"Airport", "GNSS_ALTD"}
	for _,sc := range scenarios { headers = append(headers, sc.Column) }
	r := report.New(name, headers...)

	for _,bs := range stats {
		vals := []interface{}{bs.Airport, bs.GNSSMean}
		for _,v := range bs.ModelMeans { vals = append(vals, v) }
		r.AddValues(vals...)
	}
	r.I["[A] airports"] = len(stats)
	return r
}
