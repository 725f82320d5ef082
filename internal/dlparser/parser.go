// Package dlparser implements the hand-rolled shunting-yard parser described
// in the surface syntax grammar: a token/unit stack collapsed on each ')',
// with ABox sentences (concept-on-individual, role assertion) recognized by
// the shape of the operator slot a closing paren exposes rather than by a
// separate grammar production.
package dlparser

import (
	"strings"

	"github.com/asrcpq/mytableau/internal/formula"
	"github.com/asrcpq/mytableau/internal/symtab"
)

type itemKind int

const (
	itemIdent itemKind = iota
	itemUnit
	itemLPar
	itemOp
)

type opKind int

const (
	opAnd opKind = iota
	opOr
	opNot
	opImply
	opIff
	opForAll
	opExist
)

type stackItem struct {
	kind  itemKind
	ident string
	unit  int
	op    opKind
}

// Parse reads one surface-syntax sentence and returns its Proposition,
// interning every atomic name it encounters into tab. A leading "!(...)"
// wrapping a role assertion is recognized as that role's negation before
// falling back to ordinary recursive parsing, so "!(r(a b))" flips the
// polarity bit produced by parsing "r(a b)" rather than running through the
// generic Not-of-a-concept path (which a role assertion, having no concept
// graph, cannot take).
func Parse(tab *symtab.Table, line string) (*formula.Proposition, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, structErr(line, "empty sentence")
	}
	if strings.HasPrefix(trimmed, "!(") && strings.HasSuffix(trimmed, ")") {
		inner := trimmed[2 : len(trimmed)-1]
		if prop, err := parseGeneral(tab, inner); err == nil &&
			prop.Root.Kind == formula.RootARole && prop.Root.Polarity {
			prop.Root.Polarity = false
			return prop, nil
		}
	}
	return parseGeneral(tab, trimmed)
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func parseGeneral(tab *symtab.Table, line string) (*formula.Proposition, error) {
	g := &formula.Graph{}
	root := formula.TConcept()
	stack := make([]stackItem, 0, 16)

	push := func(it stackItem) { stack = append(stack, it) }
	pop := func() (stackItem, bool) {
		if len(stack) == 0 {
			return stackItem{}, false
		}
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return it, true
	}

	i, n := 0, len(line)
	for i < n {
		c := line[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '(':
			push(stackItem{kind: itemLPar})
			i++
		case c == ')':
			prop, newRoot, done, err := collapse(tab, g, root, pop, push)
			if err != nil {
				return nil, wrapLine(err, line)
			}
			if done {
				return prop, nil
			}
			root = newRoot
			i++
		case isIdentStart(c):
			j := i
			for j < n && isIdentStart(line[j]) {
				j++
			}
			push(stackItem{kind: itemIdent, ident: line[i:j]})
			i = j
		case c == '&':
			push(stackItem{kind: itemOp, op: opAnd})
			i++
		case c == '|':
			push(stackItem{kind: itemOp, op: opOr})
			i++
		case c == '!':
			push(stackItem{kind: itemOp, op: opNot})
			i++
		case c == '>':
			push(stackItem{kind: itemOp, op: opImply})
			i++
		case c == '=':
			push(stackItem{kind: itemOp, op: opIff})
			i++
		case c == '@':
			push(stackItem{kind: itemOp, op: opForAll})
			i++
		case c == '#':
			push(stackItem{kind: itemOp, op: opExist})
			i++
		default:
			return nil, lexErr(line, "unexpected character '"+string(c)+"'")
		}
	}

	switch len(stack) {
	case 0:
		if len(g.Nodes) == 0 {
			return nil, structErr(line, "no expression produced")
		}
	case 1:
		top := stack[0]
		switch top.kind {
		case itemIdent:
			g.Push(formula.Node{Kind: formula.KindAtom, Sym: tab.Intern(top.ident)})
		case itemUnit:
			// already the graph's last node; nothing to do.
		default:
			return nil, structErr(line, "trailing operator with no operand")
		}
	default:
		return nil, structErr(line, "unbalanced parentheses or trailing tokens")
	}
	return formula.WithGraph(root, g), nil
}

func wrapLine(err error, line string) error {
	if pe, ok := err.(*ParseError); ok && pe.Line == "" {
		pe.Line = line
	}
	return err
}

// collapse handles one ')': it gathers the argument list back to the
// matching '(', then dispatches on whatever sits beneath it. It returns
// either a finished Proposition (done == true, for ABox sentences, which
// consume the rest of the line by definition) or a possibly-updated default
// root plus pushing a Unit marker for the built subexpression.
func collapse(
	tab *symtab.Table,
	g *formula.Graph,
	root formula.Root,
	pop func() (stackItem, bool),
	push func(stackItem),
) (*formula.Proposition, formula.Root, bool, error) {
	idList := make([]int, 0, 2)
	for {
		top, ok := pop()
		if !ok {
			return nil, root, false, structErr("", "unmatched ')'")
		}
		switch top.kind {
		case itemLPar:
			goto collected
		case itemIdent:
			idx := g.Push(formula.Node{Kind: formula.KindAtom, Sym: tab.Intern(top.ident)})
			idList = append(idList, idx)
		case itemUnit:
			idList = append(idList, top.unit)
		default:
			return nil, root, false, structErr("", "operator encountered during argument collection")
		}
	}
collected:
	opSlot, ok := pop()
	if !ok {
		return nil, root, false, structErr("", "missing operator before '('")
	}

	switch opSlot.kind {
	case itemOp:
		idx, err := dispatchOp(g, opSlot.op, idList)
		if err != nil {
			return nil, root, false, err
		}
		push(stackItem{kind: itemUnit, unit: idx})
		return nil, root, false, nil

	case itemIdent:
		prop, err := dispatchABox(tab, g, opSlot.ident, idList)
		if err != nil {
			return nil, root, false, err
		}
		return prop, root, true, nil

	case itemUnit:
		// A compound concept (already collapsed to a Unit by its own,
		// separate parens) applied to a single individual: "&(A B)(ann)",
		// "!(X)(ann)", "@(r C)(ann)" and so on.
		if len(idList) != 1 {
			return nil, root, false, structErr("", "a compound concept can only be applied to one individual")
		}
		last := g.Last()
		if last < 0 || g.Nodes[last].Kind != formula.KindAtom {
			return nil, root, false, structErr("", "ABox individual must be a bare identifier")
		}
		ind := g.Nodes[last].Sym
		g.Nodes = g.Nodes[:last]
		return formula.WithGraph(formula.AConcept(ind), g), root, true, nil

	default:
		return nil, root, false, structErr("", "unsupported token before '('")
	}
}

func dispatchOp(g *formula.Graph, op opKind, idList []int) (int, error) {
	switch op {
	case opAnd:
		if len(idList) != 2 {
			return 0, structErr("", "'&' needs exactly two arguments")
		}
		return g.Push(formula.Node{Kind: formula.KindAnd, A: idList[1], B: idList[0]}), nil
	case opOr:
		if len(idList) != 2 {
			return 0, structErr("", "'|' needs exactly two arguments")
		}
		return g.Push(formula.Node{Kind: formula.KindOr, A: idList[1], B: idList[0]}), nil
	case opNot:
		if len(idList) != 1 {
			return 0, structErr("", "'!' needs exactly one argument")
		}
		return g.Push(formula.Node{Kind: formula.KindNot, A: idList[0]}), nil
	case opImply:
		if len(idList) != 2 {
			return 0, structErr("", "'>' needs exactly two arguments")
		}
		na := g.Push(formula.Node{Kind: formula.KindNot, A: idList[1]})
		return g.Push(formula.Node{Kind: formula.KindOr, A: na, B: idList[0]}), nil
	case opIff:
		if len(idList) != 2 {
			return 0, structErr("", "'=' needs exactly two arguments")
		}
		n1 := g.Push(formula.Node{Kind: formula.KindNot, A: idList[1]})
		id1 := g.Push(formula.Node{Kind: formula.KindOr, A: n1, B: idList[0]})
		n2 := g.Push(formula.Node{Kind: formula.KindNot, A: idList[0]})
		id2 := g.Push(formula.Node{Kind: formula.KindOr, A: n2, B: idList[1]})
		return g.Push(formula.Node{Kind: formula.KindAnd, A: id1, B: id2}), nil
	case opForAll, opExist:
		if len(idList) != 2 {
			return 0, structErr("", "quantifier needs a role identifier and a body")
		}
		last := g.Last()
		if last < 0 || g.Nodes[last].Kind != formula.KindAtom {
			return 0, structErr("", "quantifier role must be a bare identifier")
		}
		role := g.Nodes[last].Sym
		g.Nodes = g.Nodes[:last]
		body := idList[0]
		if op == opForAll {
			return g.Push(formula.Node{Kind: formula.KindForAll, Sym: role, A: body}), nil
		}
		return g.Push(formula.Node{Kind: formula.KindExist, Sym: role, A: body}), nil
	}
	return 0, structErr("", "unknown operator")
}

func dispatchABox(tab *symtab.Table, g *formula.Graph, operatorName string, idList []int) (*formula.Proposition, error) {
	switch len(idList) {
	case 1:
		last := g.Last()
		if last < 0 || g.Nodes[last].Kind != formula.KindAtom {
			return nil, structErr("", "ABox individual must be a bare identifier")
		}
		ind := g.Nodes[last].Sym
		g.Nodes = g.Nodes[:last]
		g.Push(formula.Node{Kind: formula.KindAtom, Sym: tab.Intern(operatorName)})
		return formula.WithGraph(formula.AConcept(ind), g), nil

	case 2:
		if len(g.Nodes) < 2 {
			return nil, structErr("", "role assertion needs two individuals")
		}
		xLast := g.Last()
		xNode := g.Nodes[xLast]
		g.Nodes = g.Nodes[:xLast]
		yLast := g.Last()
		yNode := g.Nodes[yLast]
		g.Nodes = g.Nodes[:yLast]
		if xNode.Kind != formula.KindAtom || yNode.Kind != formula.KindAtom {
			return nil, structErr("", "role assertion arguments must be bare identifiers")
		}
		role := tab.Intern(operatorName)
		return formula.WithGraph(formula.ARole(true, role, xNode.Sym, yNode.Sym), &formula.Graph{}), nil

	default:
		return nil, structErr("", "ABox sentence must apply to one or two individuals")
	}
}
