// Package formula implements the concept-graph and Proposition model the
// parser builds and the prover manipulates: concept nodes (a Not may wrap
// a compound child) stored in a flat, append-only, index-referencing graph, wrapped by
// a Proposition that tags the graph's root as a TBox concept, an
// ABox concept-on-individual, or an ABox role assertion.
package formula

import "github.com/asrcpq/mytableau/internal/symtab"

// NodeKind tags the variant a Node holds.
type NodeKind int

const (
	KindAtom NodeKind = iota
	KindNot
	KindAnd
	KindOr
	KindForAll
	KindExist
)

// Node is one entry in a Graph. Depending on Kind:
//
//	Atom:    Sym is the concept/individual symbol.
//	Not:     A is the negated child's index.
//	And/Or:  A, B are the two children's indices.
//	ForAll:  Sym is the role id, A is the body's index.
//	Exist:   Sym is the role id, A is the body's index.
type Node struct {
	Kind NodeKind
	Sym  symtab.ID
	A, B int
}

// Graph is an ordered, append-only sequence of concept nodes. The last
// element is the semantically outermost node (the root concept). Nodes
// reference earlier nodes only by index, so the graph is acyclic by
// construction (invariant 1 of the data model).
type Graph struct {
	Nodes []Node
}

// Push appends node and returns its index.
func (g *Graph) Push(n Node) int {
	g.Nodes = append(g.Nodes, n)
	return len(g.Nodes) - 1
}

// Last returns the index of the outermost (last-pushed) node, or -1 if the
// graph is empty.
func (g *Graph) Last() int {
	return len(g.Nodes) - 1
}

// RootKind tags which of the three Proposition shapes a root is.
type RootKind int

const (
	RootTConcept RootKind = iota
	RootAConcept
	RootARole
)

// Root is the Proposition's tag: a pure concept, a concept applied to an
// individual, or a (possibly negated) role assertion between two
// individuals.
type Root struct {
	Kind RootKind

	// AConcept
	Individual symtab.ID

	// ARole
	Polarity bool
	Role     symtab.ID
	X, Y     symtab.ID
}

// TConcept builds a TBox-concept root.
func TConcept() Root { return Root{Kind: RootTConcept} }

// AConcept builds an ABox concept-on-individual root.
func AConcept(ind symtab.ID) Root { return Root{Kind: RootAConcept, Individual: ind} }

// ARole builds an ABox role-assertion root.
func ARole(polarity bool, role, x, y symtab.ID) Root {
	return Root{Kind: RootARole, Polarity: polarity, Role: role, X: x, Y: y}
}

// Proposition pairs a concept graph with its root tag. ARole propositions
// carry an empty graph — their full semantics live in Root.
type Proposition struct {
	Root  Root
	Graph *Graph
}

// New wraps root with a fresh, empty graph.
func New(root Root) *Proposition {
	return &Proposition{Root: root, Graph: &Graph{}}
}

// WithGraph wraps root with an existing graph (used by the parser once it
// has built the body before learning the proposition is an ABox sentence).
func WithGraph(root Root, g *Graph) *Proposition {
	return &Proposition{Root: root, Graph: g}
}

// Negate rewrites p's outermost operator in place via the standard
// negation-normal-form dual rules and returns p. It does not touch an
// ARole root — role negation is the polarity bit, and callers must not
// call Negate on an ARole-rooted proposition.
func (p *Proposition) Negate() *Proposition {
	g := p.Graph
	last := g.Last()
	if last < 0 {
		return p
	}
	n := g.Nodes[last]
	switch n.Kind {
	case KindNot:
		g.Nodes = g.Nodes[:last]
	case KindAtom:
		g.Push(Node{Kind: KindNot, A: last})
	case KindAnd:
		g.Nodes = g.Nodes[:last]
		na := g.Push(Node{Kind: KindNot, A: n.A})
		nb := g.Push(Node{Kind: KindNot, A: n.B})
		g.Push(Node{Kind: KindOr, A: na, B: nb})
	case KindOr:
		g.Nodes = g.Nodes[:last]
		na := g.Push(Node{Kind: KindNot, A: n.A})
		nb := g.Push(Node{Kind: KindNot, A: n.B})
		g.Push(Node{Kind: KindAnd, A: na, B: nb})
	case KindExist:
		g.Nodes = g.Nodes[:last]
		na := g.Push(Node{Kind: KindNot, A: n.A})
		g.Push(Node{Kind: KindForAll, Sym: n.Sym, A: na})
	case KindForAll:
		g.Nodes = g.Nodes[:last]
		na := g.Push(Node{Kind: KindNot, A: n.A})
		g.Push(Node{Kind: KindExist, Sym: n.Sym, A: na})
	}
	return p
}

// CloneSubtree produces a new Proposition whose graph contains only the
// nodes reachable from index i in p.Graph, renumbered densely, carrying
// p's root tag.
func CloneSubtree(p *Proposition, i int) *Proposition {
	out := &Graph{}
	remap := make(map[int]int, len(p.Graph.Nodes))
	var walk func(idx int) int
	walk = func(idx int) int {
		if r, ok := remap[idx]; ok {
			return r
		}
		n := p.Graph.Nodes[idx]
		var newNode Node
		switch n.Kind {
		case KindAtom:
			newNode = Node{Kind: KindAtom, Sym: n.Sym}
		case KindNot:
			newNode = Node{Kind: KindNot, A: walk(n.A)}
		case KindAnd:
			a := walk(n.A)
			b := walk(n.B)
			newNode = Node{Kind: KindAnd, A: a, B: b}
		case KindOr:
			a := walk(n.A)
			b := walk(n.B)
			newNode = Node{Kind: KindOr, A: a, B: b}
		case KindForAll:
			newNode = Node{Kind: KindForAll, Sym: n.Sym, A: walk(n.A)}
		case KindExist:
			newNode = Node{Kind: KindExist, Sym: n.Sym, A: walk(n.A)}
		}
		r := out.Push(newNode)
		remap[idx] = r
		return r
	}
	walk(i)
	return &Proposition{Root: p.Root, Graph: out}
}

// literalOf reports the (negated, symbol) pair for p's outermost concept
// node if it is a literal (an Atom or a Not directly wrapping an Atom).
func literalOf(p *Proposition) (neg bool, sym symtab.ID, ok bool) {
	last := p.Graph.Last()
	if last < 0 {
		return false, 0, false
	}
	n := p.Graph.Nodes[last]
	switch n.Kind {
	case KindAtom:
		return false, n.Sym, true
	case KindNot:
		child := p.Graph.Nodes[n.A]
		if child.Kind == KindAtom {
			return true, child.Sym, true
		}
	}
	return false, 0, false
}

// AtomCheck is the contradiction predicate: it reports whether p and q are
// opposite literals at the same individual/pair.
func AtomCheck(p, q *Proposition) bool {
	if p.Root.Kind == RootAConcept && q.Root.Kind == RootAConcept {
		if p.Root.Individual != q.Root.Individual {
			return false
		}
	}

	pRole := p.Root.Kind == RootARole
	qRole := q.Root.Kind == RootARole
	if pRole || qRole {
		if pRole != qRole {
			return false
		}
		return p.Root.Role == q.Root.Role &&
			p.Root.X == q.Root.X &&
			p.Root.Y == q.Root.Y &&
			p.Root.Polarity != q.Root.Polarity
	}

	pNeg, pSym, pOk := literalOf(p)
	qNeg, qSym, qOk := literalOf(q)
	if !pOk || !qOk {
		return false
	}
	return pNeg != qNeg && pSym == qSym
}
