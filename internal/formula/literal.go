package formula

import "github.com/asrcpq/mytableau/internal/symtab"

// IsClosingAtom reports whether p, taken alone, already closes its branch:
// Atom(Bottom) is unsatisfiable anywhere, and Not(Atom(Top)) is
// unsatisfiable since Top can never be false.
func IsClosingAtom(p *Proposition) bool {
	if p.Root.Kind == RootARole {
		return false
	}
	last := p.Graph.Last()
	if last < 0 {
		return false
	}
	n := p.Graph.Nodes[last]
	switch n.Kind {
	case KindAtom:
		return n.Sym == symtab.Bottom
	case KindNot:
		child := p.Graph.Nodes[n.A]
		return child.Kind == KindAtom && child.Sym == symtab.Top
	}
	return false
}

// IsTautology reports whether p is trivially true and asserts nothing:
// Atom(Top) or Not(Atom(Bottom)).
func IsTautology(p *Proposition) bool {
	if p.Root.Kind == RootARole {
		return false
	}
	last := p.Graph.Last()
	if last < 0 {
		return false
	}
	n := p.Graph.Nodes[last]
	switch n.Kind {
	case KindAtom:
		return n.Sym == symtab.Top
	case KindNot:
		child := p.Graph.Nodes[n.A]
		return child.Kind == KindAtom && child.Sym == symtab.Bottom
	}
	return false
}

// Kind reports p's outermost concept node kind. ok is false for an ARole
// proposition, which carries no graph to speak of.
func (p *Proposition) Kind() (kind NodeKind, ok bool) {
	if p.Root.Kind == RootARole {
		return 0, false
	}
	last := p.Graph.Last()
	if last < 0 {
		return 0, false
	}
	return p.Graph.Nodes[last].Kind, true
}

// Children returns the two operands of p's outermost And/Or node as
// independent Propositions carrying p's root tag.
func (p *Proposition) Children() (a, b *Proposition) {
	last := p.Graph.Last()
	n := p.Graph.Nodes[last]
	return CloneSubtree(p, n.A), CloneSubtree(p, n.B)
}

// QuantifierBody returns the role id and body of p's outermost
// ForAll/Exist node, the body carrying p's root tag (callers that
// instantiate the body at a different individual must rewrap its graph
// with a fresh Root).
func (p *Proposition) QuantifierBody() (role symtab.ID, body *Proposition) {
	last := p.Graph.Last()
	n := p.Graph.Nodes[last]
	return n.Sym, CloneSubtree(p, n.A)
}
