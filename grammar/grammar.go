// Package grammar provides the context-free grammar model shared by every
// other part of cfgkit: symbols, productions, and grammars, along with the
// textual surface readers and writers.
//
// A symbol is an opaque nonempty string with no embedded whitespace. Whether
// a symbol is a terminal or a nonterminal is not an intrinsic property; a
// symbol is a nonterminal of a grammar exactly when it appears as the
// left-hand side of at least one of its productions. The empty string is
// reserved as the epsilon marker and is only ever valid inside analysis
// sets, never as a production symbol.
package grammar

import (
	"fmt"
	"strings"

	"github.com/dekarrin/cfgkit/internal/util"
)

// Epsilon is the distinguished empty-string marker. It appears in FIRST sets
// of nullable sentential forms but is never itself a grammar symbol, and it
// is never a member of a FOLLOW or PREDICT set.
const Epsilon = ""

// NoIndex is returned by IndexOf when the production is not in the grammar.
const NoIndex = -1

// Production is a single grammar rule LHS -> RHS. The RHS may be empty, in
// which case the production is an epsilon production. Productions are value
// types and are never modified once constructed.
type Production struct {
	LHS string
	RHS []string
}

// MakeProduction builds a production from its left-hand side and right-hand
// side symbols.
func MakeProduction(lhs string, rhs ...string) Production {
	p := Production{LHS: lhs, RHS: make([]string, len(rhs))}
	copy(p.RHS, rhs)
	return p
}

// IsEpsilon returns whether the production has an empty right-hand side.
func (p Production) IsEpsilon() bool {
	return len(p.RHS) == 0
}

// Copy returns a production that shares no storage with p.
func (p Production) Copy() Production {
	return MakeProduction(p.LHS, p.RHS...)
}

// Equal returns whether the production is equal to the given object. Two
// productions are equal exactly when their left-hand sides and right-hand
// side sequences are equal.
func (p Production) Equal(o any) bool {
	other, ok := o.(Production)
	if !ok {
		otherPtr, ok := o.(*Production)
		if !ok {
			return false
		} else if otherPtr == nil {
			return false
		}
		other = *otherPtr
	}

	if p.LHS != other.LHS {
		return false
	}
	if len(p.RHS) != len(other.RHS) {
		return false
	}
	for i := range p.RHS {
		if p.RHS[i] != other.RHS[i] {
			return false
		}
	}

	return true
}

// Compare orders productions lexicographically, left-hand side first, then
// the right-hand side sequences. It returns a negative number, zero, or a
// positive number as p sorts before, equal to, or after o.
func (p Production) Compare(o Production) int {
	if p.LHS != o.LHS {
		return strings.Compare(p.LHS, o.LHS)
	}
	for i := 0; i < len(p.RHS) && i < len(o.RHS); i++ {
		if p.RHS[i] != o.RHS[i] {
			return strings.Compare(p.RHS[i], o.RHS[i])
		}
	}
	return len(p.RHS) - len(o.RHS)
}

// String returns the production in "LHS -> RHS" form, with ε standing in for
// an empty right-hand side.
func (p Production) String() string {
	if p.IsEpsilon() {
		return fmt.Sprintf("%s -> ε", p.LHS)
	}
	return fmt.Sprintf("%s -> %s", p.LHS, strings.Join(p.RHS, " "))
}

// Grammar is an ordered sequence of productions. The order is meaningful: it
// fixes the index of every production, which the LR item machinery relies
// on, and the left-hand side of the first production is the start symbol.
//
// A Grammar is logically immutable once constructed. All accessors are
// read-only and the value may be shared freely between goroutines.
type Grammar struct {
	prods []Production
}

// New creates a grammar from the given productions, in order.
func New(prods ...Production) Grammar {
	g := Grammar{prods: make([]Production, len(prods))}
	for i := range prods {
		g.prods[i] = prods[i].Copy()
	}
	return g
}

// Len returns the number of productions in the grammar.
func (g Grammar) Len() int {
	return len(g.prods)
}

// Get returns the production at index i. It panics if i is out of range;
// drivers convert the panic to a nonzero exit.
func (g Grammar) Get(i int) Production {
	if i < 0 || i >= len(g.prods) {
		panic(fmt.Sprintf("production index out of range: %d (grammar has %d)", i, len(g.prods)))
	}
	return g.prods[i]
}

// IndexOf returns the smallest index whose production equals p, or NoIndex
// if no production of the grammar equals p.
func (g Grammar) IndexOf(p Production) int {
	for i := range g.prods {
		if g.prods[i].Equal(p) {
			return i
		}
	}
	return NoIndex
}

// Productions returns a copy of the grammar's production sequence.
func (g Grammar) Productions() []Production {
	prods := make([]Production, len(g.prods))
	copy(prods, g.prods)
	return prods
}

// StartSymbol returns the left-hand side of the first production. It panics
// if the grammar is empty.
func (g Grammar) StartSymbol() string {
	if len(g.prods) == 0 {
		panic("start symbol requested of empty grammar")
	}
	return g.prods[0].LHS
}

// ProductionsFrom returns all productions whose left-hand side is lhs, in
// grammar order. The result is empty when lhs is a terminal.
func (g Grammar) ProductionsFrom(lhs string) []Production {
	var from []Production
	for i := range g.prods {
		if g.prods[i].LHS == lhs {
			from = append(from, g.prods[i])
		}
	}
	return from
}

// IsNonterminal returns whether s appears as the left-hand side of any
// production.
func (g Grammar) IsNonterminal(s string) bool {
	for i := range g.prods {
		if g.prods[i].LHS == s {
			return true
		}
	}
	return false
}

// IsTerminal returns whether s is a terminal of the grammar, that is,
// whether it never appears as a left-hand side.
func (g Grammar) IsTerminal(s string) bool {
	return !g.IsNonterminal(s)
}

// AllSymbols returns every symbol that occurs anywhere in the grammar,
// either as a left-hand side or inside a right-hand side.
func (g Grammar) AllSymbols() util.StringSet {
	syms := util.NewStringSet()
	for i := range g.prods {
		syms.Add(g.prods[i].LHS)
		for _, s := range g.prods[i].RHS {
			syms.Add(s)
		}
	}
	return syms
}

// AllNonterminals returns every symbol appearing as a left-hand side.
func (g Grammar) AllNonterminals() util.StringSet {
	nts := util.NewStringSet()
	for i := range g.prods {
		nts.Add(g.prods[i].LHS)
	}
	return nts
}

// AllTerminals returns every symbol that occurs in the grammar but never as
// a left-hand side.
func (g Grammar) AllTerminals() util.StringSet {
	terms := util.NewStringSet()
	terms.AddAll(g.AllSymbols().Difference(g.AllNonterminals()))
	return terms
}

// Augmented returns a new grammar whose first production is S' -> S, where S
// is the start symbol of g and S' is S with enough prime suffixes appended
// to be a fresh symbol, followed by all of g's productions in order.
func (g Grammar) Augmented() Grammar {
	start := g.StartSymbol()
	syms := g.AllSymbols()

	newStart := start + "'"
	for syms.Has(newStart) {
		newStart += "'"
	}

	prods := make([]Production, 0, len(g.prods)+1)
	prods = append(prods, MakeProduction(newStart, start))
	prods = append(prods, g.prods...)
	return New(prods...)
}

// Equal returns whether the grammar is equal to the given object. Grammars
// are equal when they hold equal productions in the same order.
func (g Grammar) Equal(o any) bool {
	other, ok := o.(Grammar)
	if !ok {
		otherPtr, ok := o.(*Grammar)
		if !ok {
			return false
		} else if otherPtr == nil {
			return false
		}
		other = *otherPtr
	}

	if len(g.prods) != len(other.prods) {
		return false
	}
	for i := range g.prods {
		if !g.prods[i].Equal(other.prods[i]) {
			return false
		}
	}
	return true
}

// DevelopAt returns every one-step development of the sentential form seq at
// position i, one per production of the nonterminal at that position, in
// grammar order. The symbol at position i must be a nonterminal of g.
func (g Grammar) DevelopAt(seq []string, i int) ([][]string, error) {
	if i < 0 || i >= len(seq) {
		return nil, fmt.Errorf("position %d out of range for sequence of %d symbols", i, len(seq))
	}
	if !g.IsNonterminal(seq[i]) {
		return nil, fmt.Errorf("symbol %q at position %d is not a nonterminal", seq[i], i)
	}

	var developments [][]string
	for _, p := range g.ProductionsFrom(seq[i]) {
		dev := make([]string, 0, len(seq)-1+len(p.RHS))
		dev = append(dev, seq[:i]...)
		dev = append(dev, p.RHS...)
		dev = append(dev, seq[i+1:]...)
		developments = append(developments, dev)
	}
	return developments, nil
}
