// Command prover is the CLI front-end for the tableau engine: it parses
// one description-logic sentence per line, negates any TBox-tagged
// assertions, and reports whether the resulting set closes.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
