package analysis

import(
	"context"
	"errors"
	"fmt"

	"github.com/skypies/util/histogram"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wxobs/altcheck"
	"github.com/wxobs/altcheck/metdb"
	"github.com/wxobs/altcheck/report"
)

type OrientationOptions struct {
	RunOptions
	Layout   metdb.Layout
	Context  *AnalysisContext
	Profiles ProfileOptions
	BigQuery report.BigQueryTarget // if set, the summary rows are also streamed into BigQuery
}

type OrientationOutcome struct {
	Results   []ProfileResult // sorted by AbsDifferenceMin, NaN last
	Histogram AngleHistogram
	Skipped   int             // airport/days with no extract
}

// {{{ RunOrientation

// RunOrientation finds every ascent (or descent) in the extracts for the airports and
// days, and compares each with the runway of its nearest airport. It writes
// Summary_<phase>_<period>.csv and Summary_hist_<phase>_<period>.csv into the output dir.
func RunOrientation(ctx context.Context, opt OrientationOptions) (OrientationOutcome, error) {
	out := OrientationOutcome{}
	lg := opt.logger()
	if opt.Context == nil { return out, fmt.Errorf("RunOrientation: no airport/runway context") }

	perAirport := make([][]ProfileResult, len(opt.Airports))
	skipped := make([]int, len(opt.Airports))

	eg,egctx := errgroup.WithContext(ctx)
	eg.SetLimit(opt.limit())
	for i,airport := range opt.Airports {
		i,airport := i,airport
		eg.Go(func() error {
			results,nSkipped,err := orientationForAirport(egctx, opt, airport)
			perAirport[i], skipped[i] = results, nSkipped
			return err
		})
	}
	if err := eg.Wait(); err != nil { return out, err }

	for i := range opt.Airports {
		out.Results = append(out.Results, perAirport[i]...)
		out.Skipped += skipped[i]
	}
	SortResults(out.Results)
	out.Histogram = NewAngleHistogram(out.Results)

	lg.Info("orientation done",
		zap.String("phase", opt.Profiles.Phase.String()),
		zap.String("period", opt.Period),
		zap.Int("profiles", out.Histogram.N),
		zap.Int("complete", out.Histogram.Profiles),
		zap.Int("skipped", out.Skipped))

	suffix := fmt.Sprintf("%s_%s", opt.Profiles.Phase, opt.Period)
	if err := writeReport(ctx, opt.RunOptions, opt.OutputDir, "Summary_"+suffix, OrientationReport(suffix, out.Results)); err != nil {
		return out, err
	}
	if err := writeReport(ctx, opt.RunOptions, opt.OutputDir, "Summary_hist_"+suffix, out.Histogram.Report(suffix)); err != nil {
		return out, err
	}

	if !opt.BigQuery.IsNil() {
		rows := []*ProfileForBigQuery{}
		for _,pr := range out.Results { rows = append(rows, pr.ForBigQuery(opt.Period)) }
		if err := report.ExportToBigQuery(ctx, opt.BigQuery, rows); err != nil { return out, err }
		lg.Info("exported to bigquery", zap.Stringer("table", opt.BigQuery), zap.Int("rows", len(rows)))
	}

	return out, nil
}

func orientationForAirport(ctx context.Context, opt OrientationOptions, airport string) ([]ProfileResult, int, error) {
	lg := opt.logger().With(zap.String("airport", airport))
	ret := []ProfileResult{}
	skipped := 0

	for _,day := range opt.days() {
		if err := ctx.Err(); err != nil { return ret, skipped, err }

		obs,err := loadExtract(ctx, opt.RunOptions, opt.Layout, metdb.KindAMDAR, airport, day)
		if errors.Is(err, metdb.ErrNoFile) {
			lg.Warn("no AMDAR extract", zap.Time("day", day))
			skipped++
			continue
		} else if err != nil {
			return ret, skipped, err
		}

		results := CompareDay(opt.Context, obs, opt.Profiles, lg)
		for i := range results {
			results[i].Source = fmt.Sprintf("%s/%s", airport, day.Format(metdb.DateFormat))
		}
		lg.Info("compared profiles", zap.Time("day", day), zap.Int("profiles", len(results)))
		ret = append(ret, results...)
	}

	return ret, skipped, nil
}

// }}}
// {{{ CompareDay

// CompareDay extracts the profiles from a day of observations and compares each of them.
// Profiles that can't be compared (e.g. no runway data) are logged and left out.
func CompareDay(ac *AnalysisContext, obs altcheck.Profile, opt ProfileOptions, lg *zap.Logger) []ProfileResult {
	if lg == nil { lg = zap.NewNop() }
	ret := []ProfileResult{}

	for _,p := range ExtractProfiles(obs, opt) {
		pr,err := ac.CompareProfile(p, opt.Phase)
		if err != nil {
			lg.Warn("profile not compared", zap.String("registration", p[0].Registration), zap.Error(err))
			continue
		}
		lg.Debug("profile", zap.Stringer("result", pr))
		ret = append(ret, pr)
	}

	return ret
}

// }}}
// {{{ OrientationReport, h.Report

var OrientationHeaders = []string{
	"TIME", "RGSN_NMBR", "LAT", "LON", "ALTD", "FLGT_PHAS", "orientation", "nearest airport",
	"runway_orientation_he", "runway_orientation_le", "difference_he", "difference_le",
	"abs_difference_min", "airport_dist_km", "track_km",
}

// OrientationReport has one row per profile: its summary point, and how that compares
// with the runway.
func OrientationReport(name string, results []ProfileResult) *report.Report {
	r := report.New("Summary_"+name, OrientationHeaders...)

	for _,pr := range results {
		s := pr.Summary
		r.AddValues(s.TimestampUTC.Format("2006-01-02 15:04:05"), s.Registration, s.Lat, s.Long,
			s.Altitude, int(s.Phase), s.Orientation, pr.Airport.Name, pr.RunwayHE, pr.RunwayLE,
			s.DifferenceHE, s.DifferenceLE, pr.AbsDifferenceMin, pr.AirportDistKM, pr.TrackKM)

		r.I["[A] profiles"]++
		if pr.HasNaN() {
			r.I["[B] profiles with undefined values"]++
		} else {
			r.H.Add(histogram.ScalarVal(pr.AbsDifferenceMin))
		}
		r.I["[C] airport: "+pr.Airport.Ident]++
	}

	return r
}

func (h AngleHistogram)Report(name string) *report.Report {
	r := report.New("Summary_hist_"+name, "bin_start", "bin_end", "count", "fraction")
	for _,b := range h.Bins {
		r.AddValues(b.Lo, b.Hi, b.Count, b.Fraction)
	}
	r.I["No. of profiles"] = h.Profiles
	r.I["No. of results"] = h.N
	r.Infof("%s", h)
	return r
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
