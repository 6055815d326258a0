package analysis

import(
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/wxobs/altcheck/store"
)

type CombineOptions struct {
	RunOptions
	StatsDir string
	Periods  []string
	Exclude  map[string][]string // period -> airports whose values are unreliable for it
}

// RunCombine reads the stats table for each period, masks the excluded airports, and
// writes the per-airport average across periods as Airport_min_mode-s_stats_{p1+p2...}.csv.
func RunCombine(ctx context.Context, opt CombineOptions) (StatsTable, error) {
	lg := opt.logger()
	tables := []StatsTable{}

	for _,period := range opt.Periods {
		p := store.Join(opt.StatsDir, StatsTableName(period) + ".csv")
		if exists,err := opt.store().Exists(ctx, p); err != nil {
			return StatsTable{}, err
		} else if !exists {
			return StatsTable{}, fmt.Errorf("no stats table for period %s (%s): %w", period, p, store.ErrNotExist)
		}
		rdr,err := opt.store().Open(ctx, p)
		if err != nil { return StatsTable{}, err }
		st,err := ReadStatsTable(rdr, period)
		rdr.Close()
		if err != nil { return StatsTable{}, fmt.Errorf("%s: %w", p, err) }

		if n := st.Mask(opt.Exclude[period]); n > 0 {
			lg.Info("masked airports", zap.String("period", period), zap.Strings("airports", opt.Exclude[period]),
				zap.Int("rows", n))
		}
		tables = append(tables, st)
	}

	combined := CombinePeriods(tables)
	name := StatsTableName(strings.Join(opt.Periods, "+"))
	if err := writeReport(ctx, opt.RunOptions, opt.OutputDir, name, combined.Report(name)); err != nil {
		return combined, err
	}

	return combined, nil
}
