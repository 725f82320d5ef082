package tableau

import "github.com/asrcpq/mytableau/internal/formula"

// Node is one segment of the branch tree: a straight run of propositions
// asserted without forking, plus a parent pointer. A fork (an Or
// expansion) is the only thing that creates a new Node — a conjunction's
// two conjuncts are simply appended to the current Node's list, since they
// never need their own branch identity.
type Node struct {
	id     int
	parent *Node
	props  []*formula.Proposition
}

// Append records p as asserted on this branch.
func (n *Node) Append(p *formula.Proposition) {
	n.props = append(n.props, p)
}

// Parent returns n's parent, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// WalkUp calls fn for every proposition asserted on n and each of its
// ancestors, nearest first, stopping as soon as fn returns true.
func (n *Node) WalkUp(fn func(*formula.Proposition) bool) bool {
	for cur := n; cur != nil; cur = cur.parent {
		for i := len(cur.props) - 1; i >= 0; i-- {
			if fn(cur.props[i]) {
				return true
			}
		}
	}
	return false
}

// Store is the append-only branch tree. Nodes are never removed; closing a
// branch just means the search backs out of its recursive call without
// visiting it again.
type Store struct {
	nodes []*Node
}

// NewStore returns an empty branch store.
func NewStore() *Store { return &Store{} }

// Push creates a new child of parent (nil for the tree's root) and records
// it in the store.
func (s *Store) Push(parent *Node) *Node {
	n := &Node{id: len(s.nodes), parent: parent}
	s.nodes = append(s.nodes, n)
	return n
}

// Len reports how many nodes have ever been pushed.
func (s *Store) Len() int { return len(s.nodes) }
