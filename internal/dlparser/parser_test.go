package dlparser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asrcpq/mytableau/internal/dlparser"
	"github.com/asrcpq/mytableau/internal/formula"
	"github.com/asrcpq/mytableau/internal/printer"
	"github.com/asrcpq/mytableau/internal/symtab"
)

func TestParseBareAtom(t *testing.T) {
	tab := symtab.New()
	p, err := dlparser.Parse(tab, "A")
	require.NoError(t, err)
	assert.Equal(t, formula.RootTConcept, p.Root.Kind)
	require.Len(t, p.Graph.Nodes, 1)
	assert.Equal(t, formula.KindAtom, p.Graph.Nodes[0].Kind)
}

func TestParseAndSourceOrderRestored(t *testing.T) {
	tab := symtab.New()
	p, err := dlparser.Parse(tab, "&(A B)")
	require.NoError(t, err)
	last := p.Graph.Nodes[p.Graph.Last()]
	require.Equal(t, formula.KindAnd, last.Kind)
	assert.Equal(t, "A", tab.Name(p.Graph.Nodes[last.A].Sym))
	assert.Equal(t, "B", tab.Name(p.Graph.Nodes[last.B].Sym))
}

func TestParseAConcept(t *testing.T) {
	tab := symtab.New()
	p, err := dlparser.Parse(tab, "C(ann)")
	require.NoError(t, err)
	require.Equal(t, formula.RootAConcept, p.Root.Kind)
	assert.Equal(t, "ann", tab.Name(p.Root.Individual))
	assert.Equal(t, "C", tab.Name(p.Graph.Nodes[p.Graph.Last()].Sym))
}

func TestParsePositiveRole(t *testing.T) {
	tab := symtab.New()
	p, err := dlparser.Parse(tab, "r(ann bob)")
	require.NoError(t, err)
	require.Equal(t, formula.RootARole, p.Root.Kind)
	assert.True(t, p.Root.Polarity)
	assert.Equal(t, "r", tab.Name(p.Root.Role))
	assert.Equal(t, "ann", tab.Name(p.Root.X))
	assert.Equal(t, "bob", tab.Name(p.Root.Y))
}

func TestParseNegativeRole(t *testing.T) {
	tab := symtab.New()
	p, err := dlparser.Parse(tab, "!(r(ann bob))")
	require.NoError(t, err)
	require.Equal(t, formula.RootARole, p.Root.Kind)
	assert.False(t, p.Root.Polarity)
	assert.Equal(t, "ann", tab.Name(p.Root.X))
	assert.Equal(t, "bob", tab.Name(p.Root.Y))
}

func TestParseForAllPopsRoleOffGraph(t *testing.T) {
	tab := symtab.New()
	p, err := dlparser.Parse(tab, "@(r C)")
	require.NoError(t, err)
	last := p.Graph.Nodes[p.Graph.Last()]
	require.Equal(t, formula.KindForAll, last.Kind)
	assert.Equal(t, "r", tab.Name(last.Sym))
	assert.Equal(t, "C", tab.Name(p.Graph.Nodes[last.A].Sym))
}

func TestParseImplyDesugars(t *testing.T) {
	tab := symtab.New()
	p, err := dlparser.Parse(tab, ">(A B)")
	require.NoError(t, err)
	last := p.Graph.Nodes[p.Graph.Last()]
	require.Equal(t, formula.KindOr, last.Kind)
	notA := p.Graph.Nodes[last.A]
	require.Equal(t, formula.KindNot, notA.Kind)
	assert.Equal(t, "A", tab.Name(p.Graph.Nodes[notA.A].Sym))
	assert.Equal(t, "B", tab.Name(p.Graph.Nodes[last.B].Sym))
}

func TestParseUnbalancedParensIsFatal(t *testing.T) {
	tab := symtab.New()
	_, err := dlparser.Parse(tab, "&(A B")
	require.Error(t, err)
	var pe *dlparser.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, dlparser.Structural, pe.Kind)
}

func TestParseUnknownCharacterIsLexicalError(t *testing.T) {
	tab := symtab.New()
	_, err := dlparser.Parse(tab, "A%B")
	require.Error(t, err)
	var pe *dlparser.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, dlparser.Lexical, pe.Kind)
}

func TestRoundTripThroughPrinter(t *testing.T) {
	cases := []string{
		"A",
		"&(A B)",
		"|(A B)",
		"!(A)",
		"@(r C)",
		"#(r C)",
		"C(ann)",
		"r(ann bob)",
		"!(r(ann bob))",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			tab := symtab.New()
			p, err := dlparser.Parse(tab, in)
			require.NoError(t, err)
			out := printer.Print(tab, p)

			tab2 := symtab.New()
			p2, err := dlparser.Parse(tab2, out)
			require.NoError(t, err)
			out2 := printer.Print(tab2, p2)
			assert.Equal(t, out, out2, "printer output must be stable under re-parsing")
		})
	}
}
