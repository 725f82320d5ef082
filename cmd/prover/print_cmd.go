package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asrcpq/mytableau/internal/printer"
	"github.com/asrcpq/mytableau/internal/symtab"
)

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print [file...]",
		Short: "Round-trip each input sentence through the pretty-printer",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, embedded := inputNames(args)
			for _, name := range names {
				tab := symtab.New()
				loadFn := loadFile
				if embedded {
					loadFn = loadSample
				}
				props, err := loadFn(tab, name)
				if err != nil {
					fatalErr(cmd, fmt.Errorf("loading %s: %w", name, err))
				}
				for _, p := range props {
					fmt.Fprintln(cmd.OutOrStdout(), printer.Print(tab, p))
				}
			}
			return nil
		},
	}
}
