package main

import (
	"github.com/spf13/cobra"

	"github.com/asrcpq/mytableau/internal/trace"
)

func newTraceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace [file...]",
		Short: "Like run, but prints an indented, styled trace of every branch step",
		RunE: func(cmd *cobra.Command, args []string) error {
			sink := &trace.TextSink{W: cmd.OutOrStdout(), NoColor: !cfg.Color}
			return runAll(cmd, args, sink)
		},
	}
}
