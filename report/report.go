// Package report holds the tabular results of a run, and writes them out as CSV, as a PDF
// table, or into BigQuery.
package report

import(
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/skypies/util/histogram"
)

type ReportLogLevel int
const(
	DEBUG ReportLogLevel = iota
	INFO
)

type Report struct {
	Name        string
	LogLevel    ReportLogLevel

	// Output state
	HeadersText []string
	RowsText  [][]string

	I           map[string]int
	F           map[string]float64
	S           map[string]string
	H           histogram.Histogram

	Log         string
}

func New(name string, headers ...string) *Report {
	return &Report{
		Name: name,
		LogLevel: INFO,
		HeadersText: headers,
		RowsText: [][]string{},
		I: map[string]int{},
		F: map[string]float64{},
		S: map[string]string{},
		H: histogram.Histogram{ValMin:0, ValMax:180, NumBuckets:18},
	}
}

func (r *Report)Logger(level ReportLogLevel, s string) {
	if level < r.LogLevel { return }
	r.Log += s
}
func (r *Report)Infof(s string,args ...interface{}) { r.Logger(INFO, fmt.Sprintf(s,args...)) }
func (r *Report)Debugf(s string,args ...interface{}) { r.Logger(DEBUG, fmt.Sprintf(s,args...)) }

func (r *Report)AddRow(text ...string) {
	r.RowsText = append(r.RowsText, text)
}

// AddValues renders each value as a row cell; floats keep their full precision, and an
// undefined float is written as NaN.
func (r *Report)AddValues(vals ...interface{}) {
	row := make([]string, len(vals))
	for i,v := range vals {
		row[i] = FormatValue(v)
	}
	r.AddRow(row...)
}

func FormatValue(v interface{}) string {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) { return "NaN" }
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return FormatValue(float64(x))
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}

func (r *Report)MetadataTable() [][]string {
	all := map[string]string{}

	for k,v := range r.I { all[k] = fmt.Sprintf("%d", v) }
	for k,v := range r.F { all[k] = fmt.Sprintf("%.1f", v) }
	for k,v := range r.S { all[k] = v }

	if stats,valid := r.H.Stats(); valid {
		all["[Z] stats, N"] = fmt.Sprintf("%v", stats.N)
		all["[Z] stats, Mean"] = fmt.Sprintf("%.1f", stats.Mean)
		all["[Z] stats, Stddev"] = fmt.Sprintf("%.1f", stats.Stddev)
		all["[Z] stats, 50%ile"] = fmt.Sprintf("%v", stats.Percentile50)
		all["[Z] stats, 90%ile"] = fmt.Sprintf("%v", stats.Percentile90)
	}

	keys := []string{}
	for k,_ := range all { keys = append(keys, k) }
	sort.Strings(keys)

	out := [][]string{}
	for _,k := range keys {
		out = append(out, []string{k, all[k]})
	}

	return out
}
