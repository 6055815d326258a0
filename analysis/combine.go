package analysis

import(
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/wxobs/altcheck/metdb"
	"github.com/wxobs/altcheck/report"
)

// StatsTable is an airport stats table, as written by the beam comparison: an airport
// column (named "Airport", or unnamed) followed by numeric columns.
type StatsTable struct {
	Period  string
	Columns []string
	Rows    []StatsRow
}

type StatsRow struct {
	Airport string
	Values  []float64 // in Columns order
}

// {{{ ReadStatsTable

func ReadStatsTable(rdr io.Reader, period string) (StatsTable, error) {
	st := StatsTable{Period: period}
	rowReader := metdb.NewRowReader(rdr, nil)

	headers := rowReader.Headers()
	if len(headers) < 1 { return st, fmt.Errorf("stats table %s: no header", period) }
	airportCol := headers[0]
	st.Columns = append([]string{}, headers[1:]...)

	for {
		row,err := rowReader.Read()
		if err == io.EOF { break }
		if err != nil { return st, fmt.Errorf("stats table %s: %w", period, err) }

		sr := StatsRow{Airport: row[airportCol], Values: make([]float64, len(st.Columns))}
		for i,col := range st.Columns {
			if sr.Values[i],err = row.Float(col); err != nil {
				return st, fmt.Errorf("stats table %s line %d: %w", period, rowReader.Line(), err)
			}
		}
		st.Rows = append(st.Rows, sr)
	}

	return st, nil
}

// }}}
// {{{ st.Mask

// Mask blanks out every value for the named airports, e.g. when the radar they depend on
// was out of service for the period. It returns how many rows were masked.
func (st *StatsTable)Mask(airports []string) int {
	masked := map[string]bool{}
	for _,a := range airports { masked[a] = true }

	n := 0
	for i := range st.Rows {
		if !masked[st.Rows[i].Airport] { continue }
		for j := range st.Rows[i].Values { st.Rows[i].Values[j] = math.NaN() }
		n++
	}
	return n
}

// }}}
// {{{ CombinePeriods

// CombinePeriods averages each airport's values across the tables, ignoring NaNs. Columns
// are taken in the order first seen; airports are sorted by name.
func CombinePeriods(tables []StatsTable) StatsTable {
	ret := StatsTable{}

	colIdx := map[string]int{}
	for _,st := range tables {
		if ret.Period != "" { ret.Period += "+" }
		ret.Period += st.Period
		for _,col := range st.Columns {
			if _,exists := colIdx[col]; !exists {
				colIdx[col] = len(ret.Columns)
				ret.Columns = append(ret.Columns, col)
			}
		}
	}

	vals := map[string][][]float64{} // airport -> column -> values
	for _,st := range tables {
		for _,sr := range st.Rows {
			if _,exists := vals[sr.Airport]; !exists {
				vals[sr.Airport] = make([][]float64, len(ret.Columns))
			}
			for i,v := range sr.Values {
				j := colIdx[st.Columns[i]]
				vals[sr.Airport][j] = append(vals[sr.Airport][j], v)
			}
		}
	}

	airports := []string{}
	for a,_ := range vals { airports = append(airports, a) }
	sort.Strings(airports)

	for _,a := range airports {
		sr := StatsRow{Airport: a, Values: make([]float64, len(ret.Columns))}
		for j := range ret.Columns {
			sr.Values[j] = MeanOf(vals[a][j])
		}
		ret.Rows = append(ret.Rows, sr)
	}

	return ret
}

// }}}

func (st StatsTable)Report(name string) *report.Report {
	r := report.New(name, append([]string{"Airport"}, st.Columns...)...)
	for _,sr := range st.Rows {
		vals := []interface{}{sr.Airport}
		for _,v := range sr.Values { vals = append(vals, v) }
		r.AddValues(vals...)
	}
	r.S["[A] periods"] = st.Period
	r.I["[B] airports"] = len(st.Rows)
	return r
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
