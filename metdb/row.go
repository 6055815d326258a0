package metdb

import(
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// {{{ notes

/* MetDB extracts come as one CSV text file per data type, airport and day.

AMDAR files look like this (FLGT_PHAS is absent in some older extracts):

  RGSN_NMBR,TIME,LAT,LON,ALTD,FLGT_PHAS
  b'EU0322  ',201807221530--,51.4775,-0.4614,152.0,6

The seconds in TIME are '--' when the report didn't carry them. Some extracts were
written without the header line at all; for those we assume DefaultAMDARHeader.

Mode-S files carry both pressure and GNSS altitudes:

  TIME,LAT,LON,PESR_ALTD,GNSS_ALTD

Day-min files are one row per day, with TIME as yyyymmdd.

 */

// }}}

var(
	DefaultAMDARHeader = []string{"RGSN_NMBR", "TIME", "LAT", "LON", "ALTD"}
)

type RowReader struct {
	csvreader *csv.Reader
	headers   []string
	pending   []string // a data row that was read while looking for the header
	n         int      // line count, for error messages
}

// NewRowReader reads the header line. If defaults is non-nil, and the first line doesn't
// start with the first default column name, the defaults are used as the header and the
// first line is kept as data.
func NewRowReader(ioreader io.Reader, defaults []string) *RowReader {
	rdr := RowReader{
		csvreader: csv.NewReader(ioreader),
	}
	rdr.csvreader.FieldsPerRecord = -1 // we check the counts ourselves
	rdr.csvreader.ReuseRecord = false

	first,err := rdr.csvreader.Read() // Discard err, we'll get it when we try to get next row
	if err != nil {
		rdr.headers = defaults
		return &rdr
	}
	rdr.n = 1

	if len(defaults) > 0 && !strings.HasPrefix(strings.TrimSpace(first[0]), prefixOf(defaults[0])) {
		rdr.headers = defaults
		rdr.pending = first
	} else {
		for i := range first { first[i] = strings.TrimSpace(first[i]) }
		rdr.headers = first
	}
	return &rdr
}

// "RGSN_NMBR" -> "RGSN"
func prefixOf(col string) string {
	if i := strings.Index(col, "_"); i > 0 { return col[:i] }
	return col
}

func (r *RowReader)Headers() []string { return r.headers }

// {{{ rdr.Read()

func (r *RowReader)Read() (Row,error) {
	m := Row{}

	var vals []string
	if r.pending != nil {
		vals,r.pending = r.pending,nil
	} else {
		var err error
		if vals,err = r.csvreader.Read(); err != nil {
			return m,err
		}
		r.n++
	}

	if len(r.headers) != len(vals) {
		return m, fmt.Errorf("line %d: header/val mismatch (%d/%d)", r.n, len(r.headers), len(vals))
	}

	for i := range vals {
		m[r.headers[i]] = vals[i]
	}

	return m,nil
}

func (r *RowReader)Line() int { return r.n }

// }}}

type Row map[string]string

func (r Row)Has(col string) bool { _,exists := r[col]; return exists }

// Float returns NaN for absent or blank cells; anything else that won't parse is an error.
func (r Row)Float(col string) (float64, error) {
	s := strings.TrimSpace(r[col])
	if s == "" || strings.EqualFold(s, "nan") { return math.NaN(), nil }
	f,err := strconv.ParseFloat(s, 64)
	if err != nil { return math.NaN(), fmt.Errorf("%s: bad value '%s'", col, r[col]) }
	return f, nil
}

// Int reads integer-valued cells, accepting pandas-style "6.0".
func (r Row)Int(col string) (int, error) {
	f,err := r.Float(col)
	if err != nil { return 0, err }
	if math.IsNaN(f) { return 0, nil }
	return int(f), nil
}

func (r Row)Time(col string) (time.Time, error) { return ParseTime(r[col]) }

// {{{ ParseTime

var timeLayouts = map[int]string{
	14: "20060102150405",
	12: "200601021504",
	10: "2006010215",
	8:  "20060102",
}

// ParseTime handles the compact MetDB timestamps; missing digits ('--') count as zero.
// All times are UTC.
func ParseTime(s string) (time.Time, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "--", "00")
	s = strings.TrimSuffix(s, ".0") // numbers that passed through a float column

	layout,exists := timeLayouts[len(s)]
	if !exists { return time.Time{}, fmt.Errorf("time '%s' has unexpected length %d", s, len(s)) }

	t,err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil { return time.Time{}, fmt.Errorf("time '%s': %w", s, err) }
	return t, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
