// The altcheck command runs the altitude and position cross-checks of aircraft-derived
// observations (AMDAR, Mode-S) against airport runways and the radar coverage model.
package main

import(
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wxobs/altcheck/config"
	"github.com/wxobs/altcheck/store"
)

var(
	fConfigFile string
	fVerbose    bool
	fPeriod     string

	cfg    *config.Config
	logger *zap.Logger
	st     *store.Store
)

var rootCmd = &cobra.Command{
	Use:   "altcheck",
	Short: "Cross-check AMDAR and Mode-S reports against runways and radar coverage",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg,err = config.Load(fConfigFile); err != nil { return err }
		if err := cfg.Validate(); err != nil { return fmt.Errorf("%s: %w", fConfigFile, err) }

		zcfg := zap.NewProductionConfig()
		if fVerbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else if zcfg.Level,err = zap.ParseAtomicLevel(cfg.LogLevel); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
		if logger,err = zcfg.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		st = store.New()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if st != nil { st.Close() }
		if logger != nil { _ = logger.Sync() }
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&fConfigFile, "config", "c", "altcheck.yaml", "config file (defaults are used if it doesn't exist)")
	rootCmd.PersistentFlags().BoolVarP(&fVerbose, "verbose", "v", false, "debug logging")

	for _,cmd := range []*cobra.Command{orientationCmd, minimaCmd, beamCmd} {
		cmd.Flags().StringVarP(&fPeriod, "period", "p", "", "named period from the config (e.g. Jul18, winter)")
		cmd.MarkFlagRequired("period")
	}

	rootCmd.AddCommand(orientationCmd)
	rootCmd.AddCommand(minimaCmd)
	rootCmd.AddCommand(beamCmd)
	rootCmd.AddCommand(combineCmd)
	rootCmd.AddCommand(airportCmd)
	rootCmd.AddCommand(initConfigCmd)
}

func main() {
	ctx,stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
