package main

import (
	"bufio"
	"embed"
	"io"
	"os"
	"strings"

	"github.com/asrcpq/mytableau/internal/dlparser"
	"github.com/asrcpq/mytableau/internal/formula"
	"github.com/asrcpq/mytableau/internal/symtab"
)

//go:embed fixtures/*.txt
var sampleFS embed.FS

// sampleFixtures lists the bundled suite used when the CLI is run with no
// file arguments.
var sampleFixtures = []string{
	"fixtures/prop0.txt",
	"fixtures/prop1.txt",
	"fixtures/dl1.txt",
	"fixtures/dl2.txt",
	"fixtures/dl3.txt",
	"fixtures/dl4.txt",
}

func loadPropositions(tab *symtab.Table, r io.Reader) ([]*formula.Proposition, error) {
	var props []*formula.Proposition
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		p, err := dlparser.Parse(tab, line)
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return props, nil
}

func loadFile(tab *symtab.Table, path string) ([]*formula.Proposition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return loadPropositions(tab, f)
}

func loadSample(tab *symtab.Table, name string) ([]*formula.Proposition, error) {
	f, err := sampleFS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return loadPropositions(tab, f)
}

// negateTBox returns a copy of props with every TConcept-rooted entry
// negated in place, the convention this CLI uses to turn a tautology
// check ("does this concept hold unconditionally?") into the consistency
// check the prover actually performs (does its negation fail to be
// satisfiable?).
func negateTBox(props []*formula.Proposition) []*formula.Proposition {
	out := make([]*formula.Proposition, len(props))
	for i, p := range props {
		if p.Root.Kind == formula.RootTConcept {
			out[i] = p.Negate()
		} else {
			out[i] = p
		}
	}
	return out
}

// inputNames returns either the given file args or the bundled sample
// fixture names, tagging each with whether it must be opened via the
// embedded filesystem.
func inputNames(args []string) (names []string, embedded bool) {
	if len(args) > 0 {
		return args, false
	}
	return sampleFixtures, true
}
