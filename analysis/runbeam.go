package analysis

import(
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wxobs/altcheck/beam"
	"github.com/wxobs/altcheck/metdb"
	"github.com/wxobs/altcheck/store"
)

type BeamOptions struct {
	RunOptions
	DayMinDir     string
	ModelDir      string
	ScenarioNames []string          // e.g. Existing, Priority, AllSites; if empty, every model in ModelDir
	Columns       map[string]string // scenario name -> output column; DefaultScenarioColumns if nil
	XCell, YCell  float64

	Scenarios     []Scenario        // if set, used instead of loading grids from ModelDir
}

const(
	modelPrefix = "constant_ng_network_"
	modelSuffix = "_deriv.nc"
)

// ModelPath is where the gridded model for a network scenario lives.
func ModelPath(dir, scenario string) string {
	return store.Join(dir, modelPrefix + scenario + modelSuffix)
}

// FindScenarios returns the names of the scenarios with a model file directly in dir, sorted.
func FindScenarios(ctx context.Context, st *store.Store, dir string) ([]string, error) {
	files,err := st.List(ctx, dir)
	if err != nil { return nil, err }

	ret := []string{}
	for _,f := range files {
		base := path.Base(f)
		if !strings.HasPrefix(base, modelPrefix) || !strings.HasSuffix(base, modelSuffix) { continue }
		name := strings.TrimSuffix(strings.TrimPrefix(base, modelPrefix), modelSuffix)
		if name == "" || ModelPath(dir, name) != f { continue }
		ret = append(ret, name)
	}
	return ret, nil
}

// {{{ LoadScenarios

// LoadScenarios reads each scenario's grid, in parallel.
func LoadScenarios(ctx context.Context, opt BeamOptions) ([]Scenario, error) {
	cols := opt.Columns
	if cols == nil { cols = DefaultScenarioColumns }

	names := opt.ScenarioNames
	if len(names) == 0 {
		var err error
		if names,err = FindScenarios(ctx, opt.store(), opt.ModelDir); err != nil { return nil, err }
		if len(names) == 0 { return nil, fmt.Errorf("no models found in %s", opt.ModelDir) }
		opt.logger().Info("found models", zap.Strings("scenarios", names))
	}

	ret := make([]Scenario, len(names))
	eg,egctx := errgroup.WithContext(ctx)
	for i,name := range names {
		i,name := i,name
		eg.Go(func() error {
			col,exists := cols[name]
			if !exists { col = "min_obs_altd_" + name }

			local,cleanup,err := opt.store().LocalCopy(egctx, ModelPath(opt.ModelDir, name))
			if err != nil { return err }
			defer cleanup()

			g,err := beam.Load(local, name, opt.XCell, opt.YCell)
			if err != nil { return fmt.Errorf("scenario %s: %w", name, err) }
			opt.logger().Info("loaded model", zap.Stringer("grid", g))

			ret[i] = Scenario{Name: name, Column: col, Grid: g}
			return nil
		})
	}
	if err := eg.Wait(); err != nil { return nil, err }

	return ret, nil
}

// }}}
// {{{ RunBeamCompare

// RunBeamCompare samples the model at each day's minimum Mode-S position, for every
// airport, and writes the per-airport means as Airport_min_mode-s_stats_{period}.csv.
// The per-day values go into {airport}_{period}_day_min_model.csv. Airports with no
// day-min table are skipped.
func RunBeamCompare(ctx context.Context, opt BeamOptions) ([]BeamStats, error) {
	lg := opt.logger()
	scenarios := opt.Scenarios
	if scenarios == nil {
		var err error
		if scenarios,err = LoadScenarios(ctx, opt); err != nil { return nil, err }
	}

	stats := []BeamStats{}
	for _,airport := range opt.Airports {
		p := metdb.DayMinPath(opt.DayMinDir, airport, opt.Period)
		rdr,err := opt.store().Open(ctx, p)
		if errors.Is(err, store.ErrNotExist) {
			lg.Warn("no day-min table", zap.String("airport", airport), zap.String("path", p))
			continue
		} else if err != nil {
			return stats, err
		}
		days,err := metdb.ReadDayMin(rdr)
		rdr.Close()
		if err != nil { return stats, fmt.Errorf("%s: %w", p, err) }

		rows,nOutside := CompareBeam(days, scenarios)
		if nOutside > 0 {
			lg.Warn("positions outside the model grid", zap.String("airport", airport), zap.Int("n", nOutside))
		}

		bs := SummarizeBeam(airport, rows, len(scenarios))
		lg.Info("beam compared", zap.String("airport", airport), zap.Int("days", len(rows)),
			zap.Stringer("stats", bs))
		stats = append(stats, bs)

		name := fmt.Sprintf("%s_%s_day_min_model", airport, opt.Period)
		if err := writeReport(ctx, opt.RunOptions, opt.OutputDir, name, BeamDetailReport(name, rows, scenarios)); err != nil {
			return stats, err
		}
	}

	name := StatsTableName(opt.Period)
	if err := writeReport(ctx, opt.RunOptions, opt.OutputDir, name, BeamStatsReport(name, stats, scenarios)); err != nil {
		return stats, err
	}

	return stats, nil
}

// StatsTableName is the basename (no .csv) of the per-airport stats table for a period.
func StatsTableName(period string) string {
	return fmt.Sprintf("Airport_min_mode-s_stats_%s", period)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
