package analysis

import (
	"strings"

	"github.com/dekarrin/cfgkit/grammar"
	"github.com/dekarrin/cfgkit/internal/util"
)

// ProductionSets holds one terminal set per production of a grammar,
// aligned with the grammar's production indexes.
type ProductionSets []util.StringSet

// Predict computes PREDICT for every production of g: the terminals that
// select that production during a predictive parse. For a production
// A -> α, PREDICT is sequence-FIRST(α) without the epsilon marker, plus
// FOLLOW(A) when α derives epsilon. The epsilon marker is never a member.
func Predict(g grammar.Grammar) ProductionSets {
	FIRST := First(g)
	FOLLOW := Follow(g)

	PREDICT := make(ProductionSets, g.Len())
	for i, p := range g.Productions() {
		set := FIRST.SequenceFirst(p.RHS)
		set.Remove(grammar.Epsilon)
		if FIRST.SequenceDerivesEpsilon(p.RHS) {
			set.AddAll(FOLLOW.Of(p.LHS))
		}
		PREDICT[i] = set
	}
	return PREDICT
}

// Render returns the PREDICT sets one per line in production-index order,
// each production shown in its arrow form. g must be the grammar the sets
// were computed from.
func (ps ProductionSets) Render(g grammar.Grammar) string {
	var sb strings.Builder
	for i := range ps {
		if i > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(g.Get(i).String())
		sb.WriteString(" : ")
		sb.WriteString(setString(ps[i]))
	}
	return sb.String()
}

// Conflict is a pair of same-lhs productions whose PREDICT sets overlap,
// meaning a predictive parser cannot choose between them on one terminal of
// lookahead. The zero Conflict (empty-lhs productions) is the no-conflict
// sentinel.
type Conflict struct {
	First       grammar.Production
	Second      grammar.Production
	FirstIndex  int
	SecondIndex int
	Overlap     util.StringSet
}

// PredictConflict returns the first pair of productions of g with the same
// left-hand side and non-disjoint PREDICT sets, in production-index order.
// The second return is false, and the Conflict is the zero sentinel, when
// every same-lhs pair is disjoint.
func PredictConflict(g grammar.Grammar) (Conflict, bool) {
	PREDICT := Predict(g)
	prods := g.Productions()

	for i := 0; i < len(prods); i++ {
		for j := i + 1; j < len(prods); j++ {
			if prods[i].LHS != prods[j].LHS {
				continue
			}
			if PREDICT[i].DisjointWith(PREDICT[j]) {
				continue
			}

			overlap := util.NewStringSet()
			overlap.AddAll(PREDICT[i].Intersection(PREDICT[j]))
			return Conflict{
				First:       prods[i],
				Second:      prods[j],
				FirstIndex:  i,
				SecondIndex: j,
				Overlap:     overlap,
			}, true
		}
	}

	return Conflict{}, false
}
