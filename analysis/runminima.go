package analysis

import(
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wxobs/altcheck"
	"github.com/wxobs/altcheck/metdb"
	"github.com/wxobs/altcheck/report"
)

type MinimaOptions struct {
	RunOptions
	Layout metdb.Layout
}

// RunMinima gathers all the AMDAR and Mode-S observations for each airport over the days,
// and writes {airport}_{period}_hour_min.csv and {airport}_{period}_day_min.csv, plus
// Airport_mean_day_min_{period}.csv summarising every airport.
func RunMinima(ctx context.Context, opt MinimaOptions) ([]MinimaSummary, error) {
	summaries := make([]MinimaSummary, len(opt.Airports))

	eg,egctx := errgroup.WithContext(ctx)
	eg.SetLimit(opt.limit())
	for i,airport := range opt.Airports {
		i,airport := i,airport
		eg.Go(func() error {
			ms,err := minimaForAirport(egctx, opt, airport)
			summaries[i] = ms
			return err
		})
	}
	if err := eg.Wait(); err != nil { return summaries, err }

	r := MinimaSummaryReport("Airport_mean_day_min_"+opt.Period, summaries)
	if err := writeReport(ctx, opt.RunOptions, opt.OutputDir, r.Name, r); err != nil {
		return summaries, err
	}

	return summaries, nil
}

func minimaForAirport(ctx context.Context, opt MinimaOptions, airport string) (MinimaSummary, error) {
	lg := opt.logger().With(zap.String("airport", airport))
	all := altcheck.Profile{}

	for _,day := range opt.days() {
		for _,kind := range []string{metdb.KindAMDAR, metdb.KindModeS} {
			if err := ctx.Err(); err != nil { return MinimaSummary{}, err }

			obs,err := loadExtract(ctx, opt.RunOptions, opt.Layout, kind, airport, day)
			if errors.Is(err, metdb.ErrNoFile) {
				lg.Warn("no extract", zap.String("kind", kind), zap.Time("day", day))
				continue
			} else if err != nil {
				return MinimaSummary{}, err
			}
			all = append(all, obs...)
		}
	}

	hourly := Minima(all, time.Hour)
	daily := Minima(all, 24*time.Hour)
	ms := SummarizeMinima(airport, daily)
	lg.Info("minima", zap.Int("observations", len(all)), zap.Int("days", ms.Days),
		zap.Float64("modes_gnss_mean", ms.ModeSGNSSMean))

	name := fmt.Sprintf("%s_%s", airport, opt.Period)
	if err := writeReport(ctx, opt.RunOptions, opt.OutputDir, name+"_hour_min", MinimaReport(name, hourly)); err != nil {
		return ms, err
	}
	if err := writeReport(ctx, opt.RunOptions, opt.OutputDir, name+"_day_min", MinimaReport(name, daily)); err != nil {
		return ms, err
	}

	return ms, nil
}

func MinimaReport(name string, rows []MinimaRow) *report.Report {
	r := report.New(name, "TIME", "ALTD", "PESR_ALTD", "GNSS_ALTD", "N")
	for _,mr := range rows {
		r.AddValues(mr.Start.Format("2006-01-02 15:04:05"), mr.Altitude, mr.PressureAltitude,
			mr.GNSSAltitude, mr.N)
	}
	return r
}

func MinimaSummaryReport(name string, summaries []MinimaSummary) *report.Report {
	r := report.New(name, "Airport", "days", "modes_GNSS_mean", "modes_pressure_mean",
		"amdar_pressure_mean")
	for _,ms := range summaries {
		r.AddValues(ms.Airport, ms.Days, ms.ModeSGNSSMean, ms.ModeSPressureMean, ms.AMDARPressureMean)
	}
	return r
}
