// Package printer renders a Proposition back into the surface syntax
// described by the operator glossary, for the CLI's "print" subcommand and
// for the round-trip property test.
package printer

import (
	"fmt"
	"strings"

	"github.com/asrcpq/mytableau/internal/formula"
	"github.com/asrcpq/mytableau/internal/symtab"
)

// Print renders p as a single surface-syntax sentence.
func Print(tab *symtab.Table, p *formula.Proposition) string {
	switch p.Root.Kind {
	case formula.RootAConcept:
		body := renderIndex(tab, p.Graph, p.Graph.Last())
		return fmt.Sprintf("%s(%s)", body, tab.Name(p.Root.Individual))
	case formula.RootARole:
		sentence := fmt.Sprintf("%s(%s %s)", tab.Name(p.Root.Role), tab.Name(p.Root.X), tab.Name(p.Root.Y))
		if !p.Root.Polarity {
			return "!(" + sentence + ")"
		}
		return sentence
	default:
		return renderIndex(tab, p.Graph, p.Graph.Last())
	}
}

func renderIndex(tab *symtab.Table, g *formula.Graph, i int) string {
	if i < 0 {
		return ""
	}
	n := g.Nodes[i]
	switch n.Kind {
	case formula.KindAtom:
		return tab.Name(n.Sym)
	case formula.KindNot:
		return "!(" + renderIndex(tab, g, n.A) + ")"
	case formula.KindAnd:
		return "&(" + strings.Join([]string{renderIndex(tab, g, n.A), renderIndex(tab, g, n.B)}, " ") + ")"
	case formula.KindOr:
		return "|(" + strings.Join([]string{renderIndex(tab, g, n.A), renderIndex(tab, g, n.B)}, " ") + ")"
	case formula.KindForAll:
		return fmt.Sprintf("@(%s %s)", tab.Name(n.Sym), renderIndex(tab, g, n.A))
	case formula.KindExist:
		return fmt.Sprintf("#(%s %s)", tab.Name(n.Sym), renderIndex(tab, g, n.A))
	}
	return ""
}
