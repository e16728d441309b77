package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/cfgkit/grammar"
)

func Test_Predict(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect [][]string
	}{
		{
			name:  "epsilon production predicts its follow set",
			input: "S a A\nA b\nA",
			expect: [][]string{
				{"a"},
				{"b"},
				{}, // FOLLOW[A] is empty, nothing follows A
			},
		},
		{
			name:  "epsilon production with a real follow set",
			input: "S a A c\nA b\nA",
			expect: [][]string{
				{"a"},
				{"b"},
				{"c"},
			},
		},
		{
			name:  "classic expression grammar tails",
			input: "Goal Expr eof\nExpr Term Expr'\nExpr' + Term Expr'\nExpr'\nTerm num",
			expect: [][]string{
				{"num"},
				{"num"},
				{"+"},
				{"eof"},
				{"num"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			g := mustRead(t, tc.input)
			PREDICT := Predict(g)

			assert.Len(PREDICT, g.Len())
			for i, members := range tc.expect {
				actual := PREDICT[i]
				assert.Equal(len(members), actual.Len(), "PREDICT[%s] = %s", g.Get(i).String(), actual.StringOrdered())
				for _, m := range members {
					assert.True(actual.Has(m), "PREDICT[%s] = %s is missing %q", g.Get(i).String(), actual.StringOrdered(), m)
				}
				assert.False(actual.Has(grammar.Epsilon), "ε ∈ PREDICT[%s]", g.Get(i).String())
			}
		})
	}
}

func Test_Predict_MatchesDefinition(t *testing.T) {
	// PREDICT[p] = FIRST(rhs) \ {ε}, plus FOLLOW(lhs) when rhs derives ε.
	assert := assert.New(t)

	g := mustRead(t, classicExprGrammar)
	FIRST := First(g)
	FOLLOW := Follow(g)
	PREDICT := Predict(g)

	for i, p := range g.Productions() {
		expect := FIRST.SequenceFirst(p.RHS).Copy()
		expect.Remove(grammar.Epsilon)
		if FIRST.SequenceDerivesEpsilon(p.RHS) {
			expect.AddAll(FOLLOW.Of(p.LHS))
		}
		assert.True(expect.Equal(PREDICT[i]), "PREDICT[%s]: expected %s, got %s", p.String(), expect.StringOrdered(), PREDICT[i].StringOrdered())
	}
}

func Test_PredictConflict(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		expectOk     bool
		expectFirst  string
		expectSecond string
	}{
		{
			name:     "classic expression grammar is conflict free",
			input:    classicExprGrammar,
			expectOk: false,
		},
		{
			name:     "disjoint epsilon alternative",
			input:    "S a A\nA b\nA",
			expectOk: false,
		},
		{
			name:         "ambiguous arithmetic conflicts on its first pair",
			input:        "S S + S\nS S - S\nS n",
			expectOk:     true,
			expectFirst:  "S -> S + S",
			expectSecond: "S -> S - S",
		},
		{
			name:         "epsilon alternative clashing with follow",
			input:        "S A b\nA b\nA",
			expectOk:     true,
			expectFirst:  "A -> b",
			expectSecond: "A -> ε",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			g := mustRead(t, tc.input)
			conf, ok := PredictConflict(g)

			assert.Equal(tc.expectOk, ok)
			if !tc.expectOk {
				// the sentinel is the zero pair with empty lhs.
				assert.Equal("", conf.First.LHS)
				assert.Equal("", conf.Second.LHS)
				return
			}

			assert.Equal(tc.expectFirst, conf.First.String())
			assert.Equal(tc.expectSecond, conf.Second.String())
			assert.False(conf.Overlap.Empty())
		})
	}
}
