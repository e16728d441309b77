// Package cfgkit is a design-time toolkit for context-free grammars: it
// reads grammars from a textual surface syntax, computes the classical
// predictive-parser analyses over them (FIRST, FOLLOW, PREDICT, and the
// LR(0) canonical collection), manipulates parse trees including partial
// parses, and performs the left-factoring and left-recursion rewrites used
// as pipeline stages before analysis.
//
// The subpackages do the work; this package only bundles the common "run
// every analysis" case for the drivers and for callers that want all the
// sets at once.
package cfgkit

import (
	"github.com/dekarrin/cfgkit/analysis"
	"github.com/dekarrin/cfgkit/grammar"
)

// Analysis holds every predictive-parser set of one grammar.
type Analysis struct {
	Grammar grammar.Grammar

	// First maps every symbol to its FIRST set.
	First analysis.SymbolSets

	// Follow maps every nonterminal to its FOLLOW set. Which variant
	// computed it depends on the Scott option given to Analyze.
	Follow analysis.SymbolSets

	// Predict holds one PREDICT set per production, index-aligned with the
	// grammar.
	Predict analysis.ProductionSets
}

// Analyze computes FIRST, FOLLOW, and PREDICT for g. When scott is true the
// FOLLOW sets are computed with the trailer-accumulating variant that also
// produces entries for terminals; otherwise only nonterminals receive
// entries.
func Analyze(g grammar.Grammar, scott bool) Analysis {
	a := Analysis{
		Grammar: g,
		First:   analysis.First(g),
		Predict: analysis.Predict(g),
	}
	if scott {
		a.Follow = analysis.FollowScott(g)
	} else {
		a.Follow = analysis.Follow(g)
	}
	return a
}
