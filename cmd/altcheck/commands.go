package main

import(
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/skypies/geo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wxobs/altcheck"
	"github.com/wxobs/altcheck/analysis"
	"github.com/wxobs/altcheck/config"
	"github.com/wxobs/altcheck/metdb"
)

var(
	fPhase     string
	fBigQuery  bool
	fPeriods   string
	fInitForce bool
)

func init() {
	orientationCmd.Flags().StringVar(&fPhase, "phase", "", "ascent or descent (overrides the config)")
	orientationCmd.Flags().BoolVar(&fBigQuery, "bigquery", false, "also stream the results into the configured BigQuery table")
	combineCmd.Flags().StringVar(&fPeriods, "periods", "", "comma-separated periods to combine (overrides the config)")
	initConfigCmd.Flags().BoolVar(&fInitForce, "force", false, "overwrite an existing file")
}

// runOptions fills in the settings shared by every job, for a named period.
func runOptions(period string) (analysis.RunOptions, error) {
	opt := analysis.RunOptions{
		Store: st,
		Logger: logger,
		Airports: cfg.Airports,
		Period: period,
		OutputDir: cfg.Paths.Output,
		PDF: cfg.PDF,
		Parallelism: cfg.Parallelism,
	}
	if period == "" { return opt, nil }

	s,e,err := cfg.PeriodRange(period)
	if err != nil { return opt, err }
	opt.Start, opt.End = s, e
	return opt, nil
}

// {{{ orientation

var orientationCmd = &cobra.Command{
	Use:   "orientation",
	Short: "Compare the direction of AMDAR ascents/descents with the nearest runway",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		ro,err := runOptions(fPeriod)
		if err != nil { return err }

		oc := cfg.Orientation
		if fPhase != "" {
			if oc.Phase,err = altcheck.ParsePhase(fPhase); err != nil { return err }
		}

		ac,err := analysis.LoadAnalysisContext(ctx, st, cfg.Paths.AirportsFile(), cfg.Paths.RunwaysFile(), oc.RunwayPolicy)
		if err != nil { return err }
		logger.Info("loaded reference tables", zap.Int("airports", len(ac.Airports)),
			zap.Int("airports_with_runways", len(ac.Runways)))

		opt := analysis.OrientationOptions{
			RunOptions: ro,
			Layout: metdb.Layout{Root: cfg.Paths.MetDB},
			Context: ac,
			Profiles: analysis.ProfileOptions{
				Phase: oc.Phase,
				MaxAltitude: oc.MaxAltitude,
				Gap: oc.GetGap(),
				MinPoints: oc.MinPoints,
			},
		}
		if fBigQuery {
			if cfg.BigQuery.IsNil() { return fmt.Errorf("--bigquery: no table configured") }
			opt.BigQuery = cfg.BigQuery
		}

		outcome,err := analysis.RunOrientation(ctx, opt)
		if err != nil { return err }
		fmt.Print(outcome.Histogram)
		return nil
	},
}

// }}}
// {{{ minima

var minimaCmd = &cobra.Command{
	Use:   "minima",
	Short: "Hourly and daily minimum AMDAR and Mode-S altitudes per airport",
	RunE: func(cmd *cobra.Command, args []string) error {
		ro,err := runOptions(fPeriod)
		if err != nil { return err }

		summaries,err := analysis.RunMinima(cmd.Context(), analysis.MinimaOptions{
			RunOptions: ro,
			Layout: metdb.Layout{Root: cfg.Paths.MetDB},
		})
		if err != nil { return err }

		for _,ms := range summaries {
			fmt.Printf("%-14s %3d days  GNSS %6.0fm  Mode-S pressure %6.0fm  AMDAR %6.0fm\n", ms.Airport,
				ms.Days, ms.ModeSGNSSMean, ms.ModeSPressureMean, ms.AMDARPressureMean)
		}
		return nil
	},
}

// }}}
// {{{ beamcompare

var beamCmd = &cobra.Command{
	Use:   "beamcompare",
	Short: "Compare daily minimum Mode-S altitudes with the modelled lowest radar beam",
	RunE: func(cmd *cobra.Command, args []string) error {
		ro,err := runOptions(fPeriod)
		if err != nil { return err }

		stats,err := analysis.RunBeamCompare(cmd.Context(), analysis.BeamOptions{
			RunOptions: ro,
			DayMinDir: cfg.Paths.DayMin,
			ModelDir: cfg.Paths.Model,
			ScenarioNames: cfg.Model.Scenarios,
			Columns: cfg.Model.Columns,
			XCell: cfg.Model.XCell,
			YCell: cfg.Model.YCell,
		})
		if err != nil { return err }

		for _,bs := range stats { fmt.Println(bs) }
		return nil
	},
}

// }}}
// {{{ combine

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Average the per-airport beam stats across periods",
	RunE: func(cmd *cobra.Command, args []string) error {
		ro,err := runOptions("")
		if err != nil { return err }

		periods := cfg.Combine.Periods
		if fPeriods != "" { periods = strings.Split(fPeriods, ",") }

		combined,err := analysis.RunCombine(cmd.Context(), analysis.CombineOptions{
			RunOptions: ro,
			StatsDir: cfg.Paths.Stats,
			Periods: periods,
			Exclude: cfg.Combine.Exclude,
		})
		if err != nil { return err }

		fmt.Printf("%d airports, periods %s\n", len(combined.Rows), combined.Period)
		return nil
	},
}

// }}}
// {{{ airport

var airportCmd = &cobra.Command{
	Use:   "airport LAT LON",
	Short: "Show the nearest airport to a position, and its runway headings",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lat,err := strconv.ParseFloat(args[0], 64)
		if err != nil { return fmt.Errorf("bad latitude: %w", err) }
		long,err := strconv.ParseFloat(args[1], 64)
		if err != nil { return fmt.Errorf("bad longitude: %w", err) }

		ac,err := analysis.LoadAnalysisContext(cmd.Context(), st, cfg.Paths.AirportsFile(),
			cfg.Paths.RunwaysFile(), cfg.Orientation.RunwayPolicy)
		if err != nil { return err }

		a,km,err := ac.Airports.Nearest(geo.Latlong{Lat:lat, Long:long})
		if err != nil { return err }
		fmt.Printf("%s, %.2f km away\n", a, km)

		rwy,err := ac.Runways.For(a.Ident, ac.RunwayPolicy)
		if err != nil { return err }
		he,le := rwy.Headings()
		fmt.Printf("%s runway: %s (HE %.1f, LE %.1f)\n", ac.RunwayPolicy, rwy, he, le)
		return nil
	},
}

// }}}
// {{{ init-config

var initConfigCmd = &cobra.Command{
	Use:   "init-config PATH",
	Short: "Write out the default config, to be edited",
	Args:  cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		if _,err := os.Stat(args[0]); err == nil && !fInitForce {
			return fmt.Errorf("%s already exists (use --force)", args[0])
		}
		return config.DefaultConfig().Save(args[0])
	},
}

// }}}
