package analysis

import(
	"fmt"
	"math"
	"time"

	"cloud.google.com/go/bigquery"
)

// ProfileForBigQuery is a flattened ProfileResult, with just the summary point. It is
// designed for streaming into BigQuery, for analysis across periods; undefined values
// become NULLs.
type ProfileForBigQuery struct {
	Period           string
	Date             string // yyyy-mm-dd, as BQ's DATE() function formats it
	Registration     string
	Phase            string
	Airport          string
	AirportDistKM    float64
	NumPoints        int

	TimestampUTC     time.Time
	Lat,Long         bigquery.NullFloat64
	Altitude         bigquery.NullFloat64
	Orientation      bigquery.NullFloat64
	RunwayHE         bigquery.NullFloat64
	RunwayLE         bigquery.NullFloat64
	DifferenceHE     bigquery.NullFloat64
	DifferenceLE     bigquery.NullFloat64
	AbsDifferenceMin bigquery.NullFloat64
}

func (pbq ProfileForBigQuery)String() string {
	return fmt.Sprintf("%s %s %s %s -> %s, %v", pbq.Period, pbq.Date, pbq.Phase, pbq.Registration,
		pbq.Airport, pbq.AbsDifferenceMin)
}

func nullFloat(f float64) bigquery.NullFloat64 {
	if math.IsNaN(f) || math.IsInf(f, 0) { return bigquery.NullFloat64{} }
	return bigquery.NullFloat64{Float64: f, Valid: true}
}

func (pr ProfileResult)ForBigQuery(period string) *ProfileForBigQuery {
	s := pr.Summary
	return &ProfileForBigQuery{
		Period: period,
		Date: s.TimestampUTC.Format("2006-01-02"),
		Registration: s.Registration,
		Phase: pr.Phase.String(),
		Airport: pr.Airport.Ident,
		AirportDistKM: pr.AirportDistKM,
		NumPoints: len(pr.Points),

		TimestampUTC: s.TimestampUTC,
		Lat: nullFloat(s.Lat),
		Long: nullFloat(s.Long),
		Altitude: nullFloat(s.Altitude),
		Orientation: nullFloat(s.Orientation),
		RunwayHE: nullFloat(pr.RunwayHE),
		RunwayLE: nullFloat(pr.RunwayLE),
		DifferenceHE: nullFloat(s.DifferenceHE),
		DifferenceLE: nullFloat(s.DifferenceLE),
		AbsDifferenceMin: nullFloat(pr.AbsDifferenceMin),
	}
}
