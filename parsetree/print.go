package parsetree

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dekarrin/cfgkit/grammar"
	"github.com/dekarrin/cfgkit/internal/util"
)

// ErrNoTree is returned by ReadTree when the input does not describe a
// single well-formed tree.
var ErrNoTree = errors.New("no tree")

// Leaves returns the terminal symbols of the tree, left to right.
// Undeveloped nonterminals and epsilon-developed nodes contribute nothing.
func (t Tree) Leaves() []string {
	var leaves []string
	t.Walk(func(n *Node, depth int) {
		if t.Grammar.IsTerminal(n.Symbol) {
			leaves = append(leaves, n.Symbol)
		}
	})
	return leaves
}

// Yield returns the tree's leaves joined with single spaces.
func (t Tree) Yield() string {
	return strings.Join(t.Leaves(), " ")
}

// String returns the indented form of the tree: one node per line in
// pre-order, each line indented by two spaces per level of depth, followed
// by the node's symbol. ReadTree inverts this form.
func (t Tree) String() string {
	var sb strings.Builder
	t.Walk(func(n *Node, depth int) {
		if sb.Len() > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(n.Symbol)
	})
	return sb.String()
}

type readFrame struct {
	depth int
	node  *Node
}

// ReadTree parses the indented tree form from r against g. Each non-blank
// line is one node: its depth is the count of leading spaces divided by
// two, and its symbol is the line's first whitespace-delimited token. A
// line may ascend any number of levels from its predecessor but may only
// descend one.
//
// Nodes that were given children are bound to the first grammar production
// matching their symbol and children, when one exists; per the optional
// post-read validation policy, a missing match is not an error here but
// will be reported by Validate.
//
// An indent that is not a multiple of two, a line with no valid parent, a
// second root, or empty input all fail with an error wrapping ErrNoTree.
func ReadTree(r io.Reader, g grammar.Grammar) (Tree, error) {
	var root *Node
	working := util.Stack[readFrame]{}

	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		symbol := fields[0]

		indent := len(line) - len(strings.TrimLeft(line, " "))
		if indent%2 != 0 {
			return Tree{}, fmt.Errorf("%w: line %d: indent of %d is not a multiple of two", ErrNoTree, lineno, indent)
		}
		depth := indent / 2

		if working.Empty() {
			if depth != 0 {
				return Tree{}, fmt.Errorf("%w: line %d: first node must be at depth 0", ErrNoTree, lineno)
			}
			root = NewNode(symbol)
			working.Push(readFrame{depth: 0, node: root})
			continue
		}

		// pop until we see our parent.
		for !working.Empty() && working.Peek().depth >= depth {
			working.Pop()
		}
		if working.Empty() {
			return Tree{}, fmt.Errorf("%w: line %d: second tree root %q", ErrNoTree, lineno, symbol)
		}
		parent := working.Peek()
		if parent.depth != depth-1 {
			return Tree{}, fmt.Errorf("%w: line %d: node %q at depth %d has no depth-%d ancestor", ErrNoTree, lineno, symbol, depth, depth-1)
		}

		node := NewNode(symbol)
		parent.node.Children = append(parent.node.Children, node)
		working.Push(readFrame{depth: depth, node: node})
	}
	if err := sc.Err(); err != nil {
		return Tree{}, fmt.Errorf("reading tree: %w", err)
	}

	if root == nil {
		return Tree{}, fmt.Errorf("%w: empty input", ErrNoTree)
	}

	t := Tree{Grammar: g, Root: root}
	bindProductions(root, g)
	return t, nil
}

// bindProductions assigns production indexes to every read node that has
// children, matching on symbol and children symbols. Nodes with no matching
// production are left unbound for Validate to flag.
func bindProductions(n *Node, g grammar.Grammar) {
	if len(n.Children) > 0 {
		rhs := make([]string, len(n.Children))
		for i := range n.Children {
			rhs[i] = n.Children[i].Symbol
		}
		if i := g.IndexOf(grammar.MakeProduction(n.Symbol, rhs...)); i != grammar.NoIndex {
			n.Production = i
		}
	}
	for _, c := range n.Children {
		bindProductions(c, g)
	}
}
