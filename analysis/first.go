// Package analysis computes the classical predictive-parser sets over a
// context-free grammar: FIRST, FOLLOW, and PREDICT, together with
// predict-predict conflict detection.
//
// All three are fixed-point computations; each iterates until no set gains a
// member. They never fail on semantic content of the grammar — ambiguous
// grammars are processed like any other and simply surface nonempty
// conflicts.
//
// The algorithms follow Michael Scott's presentation, with the dragon book
// consulted where the two differ. The main point of divergence between
// textbooks is whether terminal symbols receive FOLLOW entries; both
// behaviors are kept, behind the Scott variant.
package analysis

import (
	"sort"
	"strings"

	"github.com/dekarrin/cfgkit/grammar"
	"github.com/dekarrin/cfgkit/internal/util"
)

// SymbolSets maps each symbol of a grammar to a computed set of terminals
// (plus possibly the epsilon marker, for FIRST sets).
type SymbolSets map[string]util.StringSet

// Of returns the set for sym. The returned set is never nil; a symbol with
// no computed entries yields an empty set.
func (ss SymbolSets) Of(sym string) util.StringSet {
	if s, ok := ss[sym]; ok {
		return s
	}
	return util.NewStringSet()
}

// String renders every set on its own line, symbols sorted, set members
// sorted, with ε standing in for the epsilon marker.
func (ss SymbolSets) String() string {
	syms := make([]string, 0, len(ss))
	for sym := range ss {
		syms = append(syms, sym)
	}
	sort.Strings(syms)

	var sb strings.Builder
	for i, sym := range syms {
		if i > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(sym)
		sb.WriteString(" : ")
		sb.WriteString(setString(ss[sym]))
	}
	return sb.String()
}

func setString(s util.StringSet) string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, m := range s.ElementsSorted() {
		if m == grammar.Epsilon {
			m = "ε"
		}
		sb.WriteString(m)
		sb.WriteRune(' ')
	}
	sb.WriteRune('}')
	return sb.String()
}

// First computes FIRST for every symbol of g.
//
// FIRST of a terminal is the singleton holding that terminal. FIRST of a
// nonterminal A holds every terminal that can begin a sentential form
// derivable from A, plus the epsilon marker exactly when A derives the
// empty string.
func First(g grammar.Grammar) SymbolSets {
	FIRST := SymbolSets{}

	// all terminals are their own first sets.
	for _, t := range g.AllTerminals().Elements() {
		FIRST[t] = util.StringSetOf([]string{t})
	}

	// seed epsilon for any nonterminal that directly produces epsilon.
	for _, p := range g.Productions() {
		if p.IsEpsilon() {
			FIRST[p.LHS] = util.StringSetOf([]string{grammar.Epsilon})
		}
	}
	for _, nt := range g.AllNonterminals().Elements() {
		if _, ok := FIRST[nt]; !ok {
			FIRST[nt] = util.NewStringSet()
		}
	}

	workDone := true
	for workDone {
		workDone = false

		for _, p := range g.Productions() {
			// walk the rhs left to right; a symbol contributes its FIRST
			// set (minus epsilon), and we only continue past it if it can
			// derive epsilon.
			wholeProdIsEps := true
			for _, s := range p.RHS {
				for _, b := range FIRST.Of(s).Elements() {
					if b == grammar.Epsilon {
						continue
					}
					if !FIRST[p.LHS].Has(b) {
						FIRST[p.LHS].Add(b)
						workDone = true
					}
				}

				if !FIRST.Of(s).Has(grammar.Epsilon) {
					wholeProdIsEps = false
					break
				}
			}
			if wholeProdIsEps && !FIRST[p.LHS].Has(grammar.Epsilon) {
				FIRST[p.LHS].Add(grammar.Epsilon)
				workDone = true
			}
		}
	}

	return FIRST
}

// SequenceFirst returns FIRST of the concatenation of seq under the already
// computed sets, using the same left-to-right rule as First: each symbol
// contributes its FIRST set and the walk stops at the first symbol whose
// FIRST lacks epsilon. The result contains the epsilon marker exactly when
// every symbol of seq derives epsilon (vacuously so for an empty sequence).
func (ss SymbolSets) SequenceFirst(seq []string) util.StringSet {
	first := util.NewStringSet()
	derivesEps := true
	for _, s := range seq {
		for _, b := range ss.Of(s).Elements() {
			if b == grammar.Epsilon {
				continue
			}
			first.Add(b)
		}
		if !ss.Of(s).Has(grammar.Epsilon) {
			derivesEps = false
			break
		}
	}
	if derivesEps {
		first.Add(grammar.Epsilon)
	}
	return first
}

// SequenceDerivesEpsilon returns whether every symbol of seq has epsilon in
// its FIRST set, which is exactly when the whole sequence can derive the
// empty string. An empty sequence vacuously derives epsilon.
func (ss SymbolSets) SequenceDerivesEpsilon(seq []string) bool {
	for _, s := range seq {
		if !ss.Of(s).Has(grammar.Epsilon) {
			return false
		}
	}
	return true
}
