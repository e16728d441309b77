package analysis

import (
	"github.com/dekarrin/cfgkit/grammar"
	"github.com/dekarrin/cfgkit/internal/util"
)

// Follow computes FOLLOW for every nonterminal of g: the set of terminals
// that may immediately follow that nonterminal in some sentential form
// derived from the start symbol. The epsilon marker never appears in a
// FOLLOW set.
//
// The start symbol is not seeded with an end-of-input marker. A caller that
// wants one adds an explicit eof terminal to the grammar, e.g.
// "Goal -> Expr eof".
func Follow(g grammar.Grammar) SymbolSets {
	return followTrailer(g, false)
}

// FollowScott computes FOLLOW the way Scott's book defines it, accumulating
// trailer sets onto every right-hand-side symbol, terminals included. The
// entries for nonterminals are the same as those of Follow.
func FollowScott(g grammar.Grammar) SymbolSets {
	return followTrailer(g, true)
}

// followTrailer walks each production right to left carrying a TRAILER set:
// whatever can follow the production's lhs follows its last symbol, and a
// nullable symbol passes the trailer through while contributing its own
// FIRST set.
func followTrailer(g grammar.Grammar, scott bool) SymbolSets {
	FOLLOW := SymbolSets{}
	FIRST := First(g)

	if scott {
		for _, s := range g.AllSymbols().Elements() {
			FOLLOW[s] = util.NewStringSet()
		}
	} else {
		for _, nt := range g.AllNonterminals().Elements() {
			FOLLOW[nt] = util.NewStringSet()
		}
	}

	workDone := true
	for workDone {
		workDone = false

		for _, p := range g.Productions() {
			trailer := util.NewStringSet()
			trailer.AddAll(FOLLOW.Of(p.LHS))

			for i := len(p.RHS) - 1; i >= 0; i-- {
				s := p.RHS[i]

				if scott || g.IsNonterminal(s) {
					for _, t := range trailer.Elements() {
						if !FOLLOW[s].Has(t) {
							FOLLOW[s].Add(t)
							workDone = true
						}
					}
				}

				if g.IsNonterminal(s) {
					if FIRST.Of(s).Has(grammar.Epsilon) {
						// s can vanish, so whatever follows it can also
						// follow whatever comes before it. Fold in what s
						// itself can start with.
						for _, b := range FIRST.Of(s).Elements() {
							if b == grammar.Epsilon {
								continue
							}
							trailer.Add(b)
						}
					} else {
						trailer = util.NewStringSet()
						trailer.AddAll(FIRST.Of(s))
					}
				} else {
					// a terminal always begins with itself.
					trailer = util.NewStringSet()
					trailer.AddAll(FIRST.Of(s))
				}
			}
		}
	}

	return FOLLOW
}

// FollowDirect computes the same FOLLOW relation production-segment-wise:
// for every production A -> α X β it adds sequence-FIRST(β) minus epsilon to
// FOLLOW[X], and FOLLOW[A] as well when β is empty or derives epsilon. Like
// FollowScott it produces entries for terminals; the nonterminal entries
// agree with Follow.
func FollowDirect(g grammar.Grammar) SymbolSets {
	FOLLOW := SymbolSets{}
	FIRST := First(g)

	for _, s := range g.AllSymbols().Elements() {
		FOLLOW[s] = util.NewStringSet()
	}

	workDone := true
	for workDone {
		workDone = false

		for _, p := range g.Productions() {
			for i, s := range p.RHS {
				beta := p.RHS[i+1:]

				for _, t := range FIRST.SequenceFirst(beta).Elements() {
					if t == grammar.Epsilon {
						continue
					}
					if !FOLLOW[s].Has(t) {
						FOLLOW[s].Add(t)
						workDone = true
					}
				}

				if FIRST.SequenceDerivesEpsilon(beta) {
					for _, t := range FOLLOW.Of(p.LHS).Elements() {
						if !FOLLOW[s].Has(t) {
							FOLLOW[s].Add(t)
							workDone = true
						}
					}
				}
			}
		}
	}

	return FOLLOW
}
