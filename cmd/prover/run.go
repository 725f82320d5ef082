package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/asrcpq/mytableau/internal/trace"
	"github.com/asrcpq/mytableau/internal/watch"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [file...]",
		Short: "Parse and prove each input, printing true/false per file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var sink trace.Sink = trace.Discard{}
			if cfg.Trace {
				sink = &trace.TextSink{W: cmd.OutOrStdout(), NoColor: !cfg.Color}
			}
			return runAll(cmd, args, sink)
		},
	}
}

func runAll(cmd *cobra.Command, args []string, sink trace.Sink) error {
	names, embedded := inputNames(args)

	run := func() error {
		for _, name := range names {
			if err := proveOne(cmd.OutOrStdout(), name, embedded, sink); err != nil {
				return err
			}
		}
		return nil
	}

	if err := run(); err != nil {
		fatalErr(cmd, err)
	}

	if flagWatch && !embedded {
		w, err := watch.New(names, 200_000_000, func(path string) {
			if err := proveOne(cmd.OutOrStdout(), path, false, sink); err != nil && logger != nil {
				logger.Error("rerun failed", zap.Error(err), zap.String("run_id", runID))
			}
		})
		if err != nil {
			fatalErr(cmd, err)
		}
		defer w.Close()
		select {}
	}
	return nil
}
