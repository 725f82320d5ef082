package formula_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asrcpq/mytableau/internal/formula"
	"github.com/asrcpq/mytableau/internal/symtab"
)

func buildAtom(tab *symtab.Table, g *formula.Graph, name string) int {
	return g.Push(formula.Node{Kind: formula.KindAtom, Sym: tab.Intern(name)})
}

func TestNegateAtomWrapsInNot(t *testing.T) {
	tab := symtab.New()
	g := &formula.Graph{}
	buildAtom(tab, g, "A")
	p := formula.New(formula.TConcept())
	p.Graph = g

	p.Negate()
	require.Len(t, p.Graph.Nodes, 2)
	assert.Equal(t, formula.KindNot, p.Graph.Nodes[1].Kind)
}

// Negate is a structural involution on a bare literal: negating an Atom
// twice restores it exactly, since the second call just pops the Not
// wrapper the first call pushed.
func TestNegateInvolutionOnLiteral(t *testing.T) {
	tab := symtab.New()
	g := &formula.Graph{}
	buildAtom(tab, g, "A")
	p := formula.WithGraph(formula.TConcept(), g)

	before := append([]formula.Node(nil), p.Graph.Nodes...)
	p.Negate()
	p.Negate()

	if diff := cmp.Diff(before, p.Graph.Nodes, cmpopts.EquateComparable()); diff != "" {
		t.Errorf("double negation changed the graph (-want +got):\n%s", diff)
	}
}

func TestAtomCheckDetectsContradiction(t *testing.T) {
	tab := symtab.New()
	gA := &formula.Graph{}
	buildAtom(tab, gA, "A")
	p := formula.WithGraph(formula.AConcept(tab.Intern("x")), gA)

	gNotA := &formula.Graph{}
	ai := buildAtom(tab, gNotA, "A")
	gNotA.Push(formula.Node{Kind: formula.KindNot, A: ai})
	q := formula.WithGraph(formula.AConcept(tab.Intern("x")), gNotA)

	assert.True(t, formula.AtomCheck(p, q))
	assert.True(t, formula.AtomCheck(q, p))
	assert.False(t, formula.AtomCheck(p, p))
}

func TestAtomCheckRespectsIndividual(t *testing.T) {
	tab := symtab.New()
	gA := &formula.Graph{}
	buildAtom(tab, gA, "A")
	p := formula.WithGraph(formula.AConcept(tab.Intern("x")), gA)

	gNotA := &formula.Graph{}
	ai := buildAtom(tab, gNotA, "A")
	gNotA.Push(formula.Node{Kind: formula.KindNot, A: ai})
	q := formula.WithGraph(formula.AConcept(tab.Intern("y")), gNotA)

	assert.False(t, formula.AtomCheck(p, q), "different individuals never clash")
}

func TestAtomCheckRoleAssertions(t *testing.T) {
	tab := symtab.New()
	r := tab.Intern("r")
	x := tab.Intern("x")
	y := tab.Intern("y")

	pos := formula.New(formula.ARole(true, r, x, y))
	neg := formula.New(formula.ARole(false, r, x, y))
	assert.True(t, formula.AtomCheck(pos, neg))

	other := formula.New(formula.ARole(true, r, x, tab.Intern("z")))
	assert.False(t, formula.AtomCheck(pos, other))
}

func TestCloneSubtreeIsDenseAndIndependent(t *testing.T) {
	tab := symtab.New()
	g := &formula.Graph{}
	a := buildAtom(tab, g, "A")
	b := buildAtom(tab, g, "B")
	andIdx := g.Push(formula.Node{Kind: formula.KindAnd, A: a, B: b})
	g.Push(formula.Node{Kind: formula.KindNot, A: andIdx}) // unrelated trailing node

	p := formula.WithGraph(formula.TConcept(), g)
	clone := formula.CloneSubtree(p, andIdx)

	require.Len(t, clone.Graph.Nodes, 3)
	last := clone.Graph.Nodes[clone.Graph.Last()]
	assert.Equal(t, formula.KindAnd, last.Kind)

	// mutating the clone must not touch the original graph.
	clone.Negate()
	assert.Len(t, g.Nodes, 4)
}
