package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/asrcpq/mytableau/internal/config"
	"github.com/asrcpq/mytableau/internal/uicolor"
)

var (
	flagConfig   string
	flagWatch    bool
	flagMaxSteps int
	flagNoColor  bool
	flagVerbose  bool

	logger *zap.Logger
	runID  string
	cfg    config.Config
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "prover",
		Short: "A semantic tableau prover for a small description-logic language",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zcfg := zap.NewProductionConfig()
			if flagVerbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := zcfg.Build()
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			logger = l
			runID = uuid.NewString()

			loaded := config.Default()
			if flagConfig != "" {
				loaded, err = config.Load(flagConfig)
				if err != nil {
					return fmt.Errorf("loading config %s: %w", flagConfig, err)
				}
			}
			if flagMaxSteps != 0 {
				loaded.MaxSteps = flagMaxSteps
			}
			if flagNoColor {
				loaded.Color = false
			}
			cfg = loaded
			if !cfg.Color {
				uicolor.Plain()
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a .mytableau.yml config file")
	root.PersistentFlags().BoolVar(&flagWatch, "watch", false, "re-run on input file change")
	root.PersistentFlags().IntVar(&flagMaxSteps, "max-steps", 0, "abort a proof after this many worklist steps (0 = unlimited)")
	root.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable styled trace output")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug-level logging")

	root.AddCommand(newRunCmd(), newTraceCmd(), newPrintCmd())
	return root
}

func fatalErr(cmd *cobra.Command, err error) {
	if logger != nil {
		logger.Error("fatal", zap.Error(err), zap.String("run_id", runID))
	}
	fmt.Fprintln(cmd.ErrOrStderr(), err)
	os.Exit(1)
}
