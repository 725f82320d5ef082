package main

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/asrcpq/mytableau/internal/symtab"
	"github.com/asrcpq/mytableau/internal/tableau"
	"github.com/asrcpq/mytableau/internal/trace"
)

// proveOne parses one input (by file path, or by embedded-sample name when
// embedded is true), negates its TBox-tagged sentences, and runs the
// prover with sink attached, writing "name: true|false" to w and logging a
// structured event for the run.
func proveOne(w io.Writer, name string, embedded bool, sink trace.Sink) error {
	tab := symtab.New()

	loadFn := loadFile
	if embedded {
		loadFn = loadSample
	}
	props, err := loadFn(tab, name)
	if err != nil {
		return fmt.Errorf("loading %s: %w", name, err)
	}
	props = negateTBox(props)

	start := time.Now()
	prover := tableau.New(tab, sink, cfg.MaxSteps)
	closed, err := prover.Prove(props)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("proving %s: %w", name, err)
	}

	fmt.Fprintf(w, "%s: %t\n", name, closed)
	if logger != nil {
		logger.Info("proof finished",
			zap.String("run_id", runID),
			zap.String("input", name),
			zap.Bool("closed", closed),
			zap.Int("steps", prover.Steps()),
			zap.Int64("elapsed_ms", elapsed.Milliseconds()),
		)
	}
	return nil
}
