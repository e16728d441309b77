// Package parsetree provides parse trees over a fixed grammar, including
// partial ("in progress") parses.
//
// Every node of a tree is in exactly one of three states. A terminal leaf
// holds a terminal symbol and nothing else. An undeveloped nonterminal holds
// a nonterminal symbol whose production has not yet been chosen. A developed
// nonterminal is bound to a production of the grammar and has one child per
// right-hand-side symbol of that production, in order. Which state a node is
// in is fully determined by its symbol's classification in the grammar and
// whether a production is bound, so the state is derived rather than
// stored.
//
// Trees are logically immutable from the outside: every transformation
// returns a fresh tree that shares no node with its input.
package parsetree

import (
	"errors"
	"fmt"

	"github.com/dekarrin/cfgkit/grammar"
)

// NoProduction is the production index of a node that has no production
// bound: terminal leaves and undeveloped nonterminals.
const NoProduction = -1

// Kind is the state a parse-tree node is in.
type Kind int

const (
	// TerminalLeaf is a node holding a terminal symbol.
	TerminalLeaf Kind = iota

	// UndevelopedNonterminal is a nonterminal node whose production has not
	// yet been chosen.
	UndevelopedNonterminal

	// DevelopedNonterminal is a nonterminal node bound to a production, with
	// one child per right-hand-side symbol.
	DevelopedNonterminal
)

var (
	// ErrNoUndeveloped is returned by ApplyProduction when the tree has no
	// undeveloped nonterminal left to develop.
	ErrNoUndeveloped = errors.New("tree has no undeveloped nonterminal")

	// ErrSymbolMismatch is returned by ApplyProduction when the production's
	// left-hand side is not the leftmost undeveloped symbol.
	ErrSymbolMismatch = errors.New("production lhs does not match leftmost undeveloped symbol")
)

// Node is a single node of a parse tree. Production is NoProduction unless
// the node has been developed.
type Node struct {
	Symbol     string
	Production int
	Children   []*Node
}

// NewNode creates a leaf node for the given symbol with no production
// bound.
func NewNode(symbol string) *Node {
	return &Node{Symbol: symbol, Production: NoProduction}
}

// Copy returns a deep copy of the node: every descendant is a freshly
// allocated node and no node is shared with n.
func (n *Node) Copy() *Node {
	newN := &Node{
		Symbol:     n.Symbol,
		Production: n.Production,
	}
	for _, c := range n.Children {
		newN.Children = append(newN.Children, c.Copy())
	}
	return newN
}

// KindIn returns the state of n relative to g.
func (n *Node) KindIn(g grammar.Grammar) Kind {
	if g.IsTerminal(n.Symbol) {
		return TerminalLeaf
	}
	if n.Production == NoProduction {
		return UndevelopedNonterminal
	}
	return DevelopedNonterminal
}

// Tree is a parse tree: a root node together with the grammar the tree is
// relative to. The zero Tree is not usable; create one with New or
// ReadTree.
type Tree struct {
	Grammar grammar.Grammar
	Root    *Node
}

// New creates a single-node tree over g rooted at g's start symbol. The
// root is an undeveloped nonterminal, or a terminal leaf in the degenerate
// case of a start symbol that never appears as a left-hand side.
func New(g grammar.Grammar) Tree {
	return Tree{Grammar: g, Root: NewNode(g.StartSymbol())}
}

// Copy returns a tree with a deep-copied root. No node is shared with t.
func (t Tree) Copy() Tree {
	return Tree{Grammar: t.Grammar, Root: t.Root.Copy()}
}

// Walk calls fn for every node of the tree in pre-order (each node before
// its children, children left to right), passing the node's depth below the
// root.
func (t Tree) Walk(fn func(n *Node, depth int)) {
	if t.Root == nil {
		return
	}
	walk(t.Root, 0, fn)
}

func walk(n *Node, depth int, fn func(n *Node, depth int)) {
	fn(n, depth)
	for _, c := range n.Children {
		walk(c, depth+1, fn)
	}
}

// Nodes returns every node of the tree in pre-order.
func (t Tree) Nodes() []*Node {
	var nodes []*Node
	t.Walk(func(n *Node, depth int) {
		nodes = append(nodes, n)
	})
	return nodes
}

// Size returns the number of nodes in the tree.
func (t Tree) Size() int {
	count := 0
	t.Walk(func(n *Node, depth int) {
		count++
	})
	return count
}

// LeafCount returns the number of nodes with no children: terminal leaves,
// undeveloped nonterminals, and nonterminals developed by an epsilon
// production.
func (t Tree) LeafCount() int {
	count := 0
	t.Walk(func(n *Node, depth int) {
		if len(n.Children) == 0 {
			count++
		}
	})
	return count
}

// FirstUndeveloped returns the leftmost undeveloped nonterminal in
// pre-order, or nil if the tree has none.
func (t Tree) FirstUndeveloped() *Node {
	if t.Root == nil {
		return nil
	}
	return firstUndeveloped(t.Root, t.Grammar)
}

func firstUndeveloped(n *Node, g grammar.Grammar) *Node {
	if n.KindIn(g) == UndevelopedNonterminal {
		return n
	}
	for _, c := range n.Children {
		if u := firstUndeveloped(c, g); u != nil {
			return u
		}
	}
	return nil
}

// HasUndeveloped returns whether any undeveloped nonterminal remains in the
// tree.
func (t Tree) HasUndeveloped() bool {
	return t.FirstUndeveloped() != nil
}

// UndevelopedSymbol returns the symbol of the leftmost undeveloped
// nonterminal. The second return is false when the tree has none.
func (t Tree) UndevelopedSymbol() (string, bool) {
	n := t.FirstUndeveloped()
	if n == nil {
		return "", false
	}
	return n.Symbol, true
}

// IsFullyDeveloped returns whether the tree has no undeveloped nonterminal
// anywhere.
func (t Tree) IsFullyDeveloped() bool {
	return !t.HasUndeveloped()
}

// ApplyProduction returns a new tree identical to t except that its
// leftmost undeveloped nonterminal has been developed by production i of
// the tree's grammar: the node gains one child per right-hand-side symbol
// and is bound to i. t itself is never modified, even on failure.
//
// It returns an error when i is out of range for the grammar, when the tree
// has no undeveloped nonterminal (ErrNoUndeveloped), or when production i's
// left-hand side is not the undeveloped node's symbol (ErrSymbolMismatch).
func (t Tree) ApplyProduction(i int) (Tree, error) {
	if i < 0 || i >= t.Grammar.Len() {
		return Tree{}, fmt.Errorf("production index out of range: %d (grammar has %d)", i, t.Grammar.Len())
	}

	target := t.FirstUndeveloped()
	if target == nil {
		return Tree{}, ErrNoUndeveloped
	}

	p := t.Grammar.Get(i)
	if target.Symbol != p.LHS {
		return Tree{}, fmt.Errorf("%w: production is %q, undeveloped symbol is %q", ErrSymbolMismatch, p.String(), target.Symbol)
	}

	clone := t.Copy()
	node := clone.FirstUndeveloped()
	for _, s := range p.RHS {
		node.Children = append(node.Children, NewNode(s))
	}
	node.Production = i

	return clone, nil
}

// Equal returns whether the tree has the exact same structure as the given
// object: same symbols, same bound productions, same children throughout.
// Anything other than a Tree or non-nil *Tree compares unequal.
func (t Tree) Equal(o any) bool {
	other, ok := o.(Tree)
	if !ok {
		otherPtr, ok := o.(*Tree)
		if !ok {
			return false
		} else if otherPtr == nil {
			return false
		}
		other = *otherPtr
	}

	return nodesEqual(t.Root, other.Root)
}

func nodesEqual(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Symbol != b.Symbol {
		return false
	}
	if a.Production != b.Production {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !nodesEqual(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// Validate checks the node-state invariants everywhere in the tree: a
// terminal leaf has no children and no bound production, an undeveloped
// nonterminal has no children, and a developed node's children symbols,
// read left to right, equal the right-hand side of its bound production.
// It returns the first violation found in pre-order, or nil.
func (t Tree) Validate() error {
	var verr error
	t.Walk(func(n *Node, depth int) {
		if verr != nil {
			return
		}
		verr = validateNode(n, t.Grammar)
	})
	return verr
}

func validateNode(n *Node, g grammar.Grammar) error {
	if g.IsTerminal(n.Symbol) {
		if len(n.Children) > 0 {
			return fmt.Errorf("terminal node %q has children", n.Symbol)
		}
		if n.Production != NoProduction {
			return fmt.Errorf("terminal node %q has a bound production", n.Symbol)
		}
		return nil
	}

	if n.Production == NoProduction {
		if len(n.Children) > 0 {
			return fmt.Errorf("undeveloped node %q has children", n.Symbol)
		}
		return nil
	}

	if n.Production < 0 || n.Production >= g.Len() {
		return fmt.Errorf("node %q bound to out-of-range production %d", n.Symbol, n.Production)
	}

	p := g.Get(n.Production)
	if p.LHS != n.Symbol {
		return fmt.Errorf("node %q bound to production %q", n.Symbol, p.String())
	}
	if len(n.Children) != len(p.RHS) {
		return fmt.Errorf("node %q has %d children for production %q", n.Symbol, len(n.Children), p.String())
	}
	for i := range p.RHS {
		if n.Children[i].Symbol != p.RHS[i] {
			return fmt.Errorf("node %q child %d is %q, production %q wants %q", n.Symbol, i, n.Children[i].Symbol, p.String(), p.RHS[i])
		}
	}
	return nil
}
