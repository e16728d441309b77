// Package rewrite holds the grammar rewrites used as pipeline stages before
// analysis: the left-factoring prefix trie and left-recursion elimination.
package rewrite

import (
	"strings"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/dekarrin/cfgkit/grammar"
)

// Trie is a prefix tree over symbol sequences. Inserting every right-hand
// side of a nonterminal's productions makes common prefixes shared paths,
// which is exactly what left-factoring needs to see.
type Trie struct {
	children *treemap.Map
	end      bool
}

// NewTrie creates an empty prefix trie.
func NewTrie() *Trie {
	return &Trie{children: treemap.NewWithStringComparator()}
}

// Insert adds one symbol sequence to the trie. The empty sequence marks the
// root itself as a sequence end (an epsilon right-hand side).
func (t *Trie) Insert(seq []string) {
	if len(seq) == 0 {
		t.end = true
		return
	}

	var child *Trie
	if v, ok := t.children.Get(seq[0]); ok {
		child = v.(*Trie)
	} else {
		child = NewTrie()
		t.children.Put(seq[0], child)
	}
	child.Insert(seq[1:])
}

// Len returns the number of sequences stored in the trie.
func (t *Trie) Len() int {
	count := 0
	if t.end {
		count++
	}
	it := t.children.Iterator()
	for it.Next() {
		count += it.Value().(*Trie).Len()
	}
	return count
}

// String returns the trie one symbol per line, indented two spaces per
// level, children in lexicographic order. A symbol where an inserted
// sequence ends is marked with a trailing " .", and an epsilon sequence at
// the root prints as a lone "ε" line.
func (t *Trie) String() string {
	var sb strings.Builder
	if t.end {
		sb.WriteString("ε")
	}
	t.write(&sb, 0)
	return sb.String()
}

func (t *Trie) write(sb *strings.Builder, depth int) {
	it := t.children.Iterator()
	for it.Next() {
		sym := it.Key().(string)
		child := it.Value().(*Trie)

		if sb.Len() > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(sym)
		if child.end {
			sb.WriteString(" .")
		}
		child.write(sb, depth+1)
	}
}

// FactorTries builds one prefix trie per nonterminal of g, each holding the
// right-hand sides of that nonterminal's productions. Alternatives that
// share a prefix share a path, so a node with more than one child below a
// shared prefix is a left-factoring opportunity.
func FactorTries(g grammar.Grammar) map[string]*Trie {
	tries := map[string]*Trie{}
	for _, p := range g.Productions() {
		trie, ok := tries[p.LHS]
		if !ok {
			trie = NewTrie()
			tries[p.LHS] = trie
		}
		trie.Insert(p.RHS)
	}
	return tries
}
