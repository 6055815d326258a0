package analysis

import(
	"fmt"
	"math"
	"time"

	"github.com/wxobs/altcheck"
)

// MinimaRow is the lowest of each kind of altitude seen during one time bucket.
type MinimaRow struct {
	Start            time.Time
	Altitude         float64 // AMDAR ALTD
	PressureAltitude float64 // Mode-S PESR_ALTD
	GNSSAltitude     float64 // Mode-S GNSS_ALTD
	N                int
}

func (mr MinimaRow)String() string {
	return fmt.Sprintf("%s ALTD:%.0f PESR_ALTD:%.0f GNSS_ALTD:%.0f (%d obs)",
		mr.Start.Format("2006.01.02 15:04"), mr.Altitude, mr.PressureAltitude, mr.GNSSAltitude, mr.N)
}

// Minima buckets the observations by UTC time (e.g. time.Hour, or 24*time.Hour for days)
// and finds the minimum of each altitude in each bucket, ignoring NaNs. Every bucket from
// the earliest to the latest observation is present; those with nothing in them are NaN.
func Minima(p altcheck.Profile, bucket time.Duration) []MinimaRow {
	if len(p) == 0 || bucket <= 0 { return []MinimaRow{} }

	s,e := p[0].TimestampUTC, p[0].TimestampUTC
	for _,o := range p {
		if o.TimestampUTC.Before(s) { s = o.TimestampUTC }
		if o.TimestampUTC.After(e) { e = o.TimestampUTC }
	}
	s,e = s.UTC().Truncate(bucket), e.UTC().Truncate(bucket)

	n := int(e.Sub(s) / bucket) + 1
	ret := make([]MinimaRow, n)
	for i := range ret {
		ret[i] = MinimaRow{
			Start: s.Add(time.Duration(i) * bucket),
			Altitude: math.NaN(),
			PressureAltitude: math.NaN(),
			GNSSAltitude: math.NaN(),
		}
	}

	for _,o := range p {
		i := int(o.TimestampUTC.UTC().Truncate(bucket).Sub(s) / bucket)
		ret[i].N++
		ret[i].Altitude = nanMin(ret[i].Altitude, o.Altitude)
		ret[i].PressureAltitude = nanMin(ret[i].PressureAltitude, o.PressureAltitude)
		ret[i].GNSSAltitude = nanMin(ret[i].GNSSAltitude, o.GNSSAltitude)
	}

	return ret
}

func nanMin(a, b float64) float64 {
	if math.IsNaN(a) { return b }
	if math.IsNaN(b) { return a }
	return math.Min(a, b)
}

// MeanOf is the mean of the values that aren't NaN; NaN if there are none.
func MeanOf(vals []float64) float64 {
	sum,n := 0.0, 0
	for _,v := range vals {
		if math.IsNaN(v) { continue }
		sum += v
		n++
	}
	if n == 0 { return math.NaN() }
	return sum / float64(n)
}

// MinimaSummary is the mean of the daily minima, for one airport.
type MinimaSummary struct {
	Airport             string
	Days                int     // days with at least one observation
	ModeSGNSSMean       float64
	ModeSPressureMean   float64
	AMDARPressureMean   float64
}

func SummarizeMinima(airport string, daily []MinimaRow) MinimaSummary {
	gnss,pesr,altd := []float64{}, []float64{}, []float64{}
	ms := MinimaSummary{Airport: airport}
	for _,mr := range daily {
		if mr.N > 0 { ms.Days++ }
		gnss = append(gnss, mr.GNSSAltitude)
		pesr = append(pesr, mr.PressureAltitude)
		altd = append(altd, mr.Altitude)
	}
	ms.ModeSGNSSMean = MeanOf(gnss)
	ms.ModeSPressureMean = MeanOf(pesr)
	ms.AMDARPressureMean = MeanOf(altd)
	return ms
}
