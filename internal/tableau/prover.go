// Package tableau implements the worklist-driven recursive tableau search:
// a branch tree (branch.go) of straight-line assertion runs, forked only by
// Or, closed by literal contradiction or a Bottom-class literal, and
// expanded by the usual conjunction/disjunction/role-quantifier rules. A
// universal-quantifier proposition that finds no role witness at the time
// it is drawn is parked in a FIFO "unmatched" buffer rather than dropped,
// and is drained back onto the worklist whenever a step might have
// produced a new witness for it (an asserted role fact, a conjunction, a
// literal negation, or an existential's freshly minted role and
// successor).
package tableau

import (
	"github.com/asrcpq/mytableau/internal/formula"
	"github.com/asrcpq/mytableau/internal/printer"
	"github.com/asrcpq/mytableau/internal/symtab"
	"github.com/asrcpq/mytableau/internal/trace"
)

// Prover owns one proof run's symbol table, branch store, and observer.
// It is not safe for concurrent use by multiple goroutines; a caller
// proving several independent inputs concurrently must give each input its
// own Prover.
type Prover struct {
	tab      *symtab.Table
	store    *Store
	sink     trace.Sink
	maxSteps int
	steps    int
}

// New returns a Prover backed by tab. sink may be nil, which installs
// trace.Discard. maxSteps of 0 means no step budget.
func New(tab *symtab.Table, sink trace.Sink, maxSteps int) *Prover {
	if sink == nil {
		sink = trace.Discard{}
	}
	return &Prover{tab: tab, store: NewStore(), sink: sink, maxSteps: maxSteps}
}

// Steps reports how many worklist items have been processed so far.
func (p *Prover) Steps() int { return p.steps }

// Prove decides whether props, taken together, is closed — every branch a
// tableau expansion produces ends in a literal contradiction. A
// TConcept-rooted proposition is implicitly asserted of one freshly
// allocated anonymous individual (the usual way a free-variable ALC
// tableau anchors a pure concept expression to a point of evaluation); an
// AConcept or ARole proposition is asserted exactly as parsed.
func (p *Prover) Prove(props []*formula.Proposition) (bool, error) {
	root := p.tab.Fresh()
	norm := make([]*formula.Proposition, 0, len(props))
	for _, pr := range props {
		if pr.Root.Kind == formula.RootTConcept {
			norm = append(norm, formula.WithGraph(formula.AConcept(root), pr.Graph))
		} else {
			norm = append(norm, pr)
		}
	}
	node := p.store.Push(nil)
	closed, err := p.expand(node, norm, nil)
	p.sink.Event(trace.Event{Kind: trace.Done, Result: closed})
	return closed, err
}

// pushNegation rewrites a surface-written "Not(compound)" into the
// De Morgan form the search can act on, one level at a time, reusing
// Proposition.Negate (which computes a one-step negation of whatever node
// is outermost) against the negated node's own child rather than the Not
// wrapper itself. A literal Not(Atom) is left alone — it already is NNF.
func pushNegation(p *formula.Proposition) *formula.Proposition {
	for {
		kind, ok := p.Kind()
		if !ok || kind != formula.KindNot {
			return p
		}
		last := p.Graph.Last()
		childIdx := p.Graph.Nodes[last].A
		if p.Graph.Nodes[childIdx].Kind == formula.KindAtom {
			return p
		}
		p = formula.CloneSubtree(p, childIdx).Negate()
	}
}

func cloneProps(w []*formula.Proposition) []*formula.Proposition {
	out := make([]*formula.Proposition, len(w))
	copy(out, w)
	return out
}

func (p *Prover) render(pr *formula.Proposition) string {
	return printer.Print(p.tab, pr)
}

func (p *Prover) expand(node *Node, worklist, unmatched []*formula.Proposition) (bool, error) {
	depth := 0
	for n := node; n != nil; n = n.Parent() {
		depth++
	}

	// drain moves every parked universal back onto the worklist, to be
	// retried now that this step may have produced a new role witness.
	drain := func() {
		worklist = append(worklist, unmatched...)
		unmatched = nil
	}

	for len(worklist) > 0 {
		if p.maxSteps > 0 && p.steps >= p.maxSteps {
			return false, &InvariantError{Msg: "step budget exceeded"}
		}
		p.steps++

		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		cur = pushNegation(cur)

		if formula.IsTautology(cur) {
			continue
		}

		p.sink.Event(trace.Event{Kind: trace.Assert, Depth: depth, Text: p.render(cur)})

		if formula.IsClosingAtom(cur) {
			p.sink.Event(trace.Event{Kind: trace.Closed, Depth: depth, Text: p.render(cur)})
			return true, nil
		}

		contradiction := node.WalkUp(func(other *formula.Proposition) bool {
			return formula.AtomCheck(cur, other)
		})
		node.Append(cur)
		if contradiction {
			p.sink.Event(trace.Event{Kind: trace.Closed, Depth: depth, Text: p.render(cur)})
			return true, nil
		}

		kind, isGraph := cur.Kind()
		if !isGraph {
			// an asserted role fact: retry every parked universal.
			drain()
			continue
		}

		switch kind {
		case formula.KindAtom:
			// literal; nothing further to expand.

		case formula.KindNot:
			// literal (pushNegation leaves only Not of an atom here);
			// nothing further to expand, so just retry anything parked.
			drain()

		case formula.KindAnd:
			a, b := cur.Children()
			worklist = append(worklist, a, b)
			drain()

		case formula.KindOr:
			a, b := cur.Children()
			p.sink.Event(trace.Event{Kind: trace.Fork, Depth: depth, Text: p.render(cur)})

			leftNode := p.store.Push(node)
			leftClosed, err := p.expand(leftNode, append(cloneProps(worklist), a), cloneProps(unmatched))
			if err != nil {
				return false, err
			}
			if !leftClosed {
				return false, nil
			}

			rightNode := p.store.Push(node)
			rightClosed, err := p.expand(rightNode, append(cloneProps(worklist), b), cloneProps(unmatched))
			if err != nil {
				return false, err
			}
			return leftClosed && rightClosed, nil

		case formula.KindForAll:
			if cur.Root.Kind != formula.RootAConcept {
				continue
			}
			role, body := cur.QuantifierBody()
			x := cur.Root.Individual
			matched := false
			node.WalkUp(func(anc *formula.Proposition) bool {
				if anc.Root.Kind == formula.RootARole && anc.Root.Polarity &&
					anc.Root.Role == role && anc.Root.X == x {
					clone := formula.CloneSubtree(body, body.Graph.Last())
					inst := formula.WithGraph(formula.AConcept(anc.Root.Y), clone.Graph)
					worklist = append(worklist, inst)
					matched = true
				}
				return false
			})
			if !matched {
				unmatched = append(unmatched, cur)
			}

		case formula.KindExist:
			if cur.Root.Kind != formula.RootAConcept {
				continue
			}
			role, body := cur.QuantifierBody()
			x := cur.Root.Individual
			y := p.tab.Fresh()
			roleProp := formula.New(formula.ARole(true, role, x, y))
			bodyProp := formula.WithGraph(formula.AConcept(y), body.Graph)
			worklist = append(worklist, roleProp, bodyProp)
			drain()
		}
	}
	return false, nil
}
