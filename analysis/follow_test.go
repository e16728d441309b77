package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/cfgkit/grammar"
)

func Test_Follow(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect map[string][]string
	}{
		{
			name:  "classic expression grammar with eof",
			input: classicExprGrammar,
			expect: map[string][]string{
				"Expr":   {"eof", ")"},
				"Expr'":  {"eof", ")"},
				"Term":   {"eof", "+", "-", ")"},
				"Term'":  {"eof", "+", "-", ")"},
				"Factor": {"eof", "+", "-", "*", "/", ")"},
				"Goal":   {},
			},
		},
		{
			name:  "nothing follows the tail nonterminal",
			input: "S a A\nA b\nA",
			expect: map[string][]string{
				"S": {},
				"A": {},
			},
		},
		{
			name:  "nullable symbol passes the trailer through",
			input: "S A B c\nA a\nB b\nB",
			expect: map[string][]string{
				"A": {"b", "c"},
				"B": {"c"},
				"S": {},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			g := mustRead(t, tc.input)
			FOLLOW := Follow(g)

			for sym, members := range tc.expect {
				actual := FOLLOW.Of(sym)
				assert.Equal(len(members), actual.Len(), "FOLLOW[%s] = %s", sym, actual.StringOrdered())
				for _, m := range members {
					assert.True(actual.Has(m), "FOLLOW[%s] = %s is missing %q", sym, actual.StringOrdered(), m)
				}
			}

			// epsilon never shows up, and the default form has no entries
			// for terminals.
			for sym, set := range FOLLOW {
				assert.False(set.Has(grammar.Epsilon), "ε ∈ FOLLOW[%s]", sym)
				assert.True(g.IsNonterminal(sym), "terminal %q has a FOLLOW entry", sym)
			}
		})
	}
}

func Test_FollowScott_CoversTerminals(t *testing.T) {
	assert := assert.New(t)

	g := mustRead(t, classicExprGrammar)
	FOLLOW := Follow(g)
	scott := FollowScott(g)

	// the nonterminal entries agree with the default form.
	for _, nt := range g.AllNonterminals().Elements() {
		assert.True(FOLLOW.Of(nt).Equal(scott.Of(nt)), "FOLLOW[%s] differs between variants: %s vs %s", nt, FOLLOW.Of(nt).StringOrdered(), scott.Of(nt).StringOrdered())
	}

	// terminals now accumulate trailers too.
	assert.True(scott.Of("num").Has(")"))
	assert.True(scott.Of("num").Has("+"))
	assert.True(scott.Of("(").Has("("))
	assert.True(scott.Of("(").Has("num"))
}

func Test_FollowDirect_AgreesOnNonterminals(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{
			name:  "classic expression grammar",
			input: classicExprGrammar,
		},
		{
			name:  "nullable chains",
			input: "S A B c\nA a\nA\nB b\nB",
		},
		{
			name:  "ambiguous arithmetic",
			input: "S S + S\nS S - S\nS n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			g := mustRead(t, tc.input)
			trailer := Follow(g)
			direct := FollowDirect(g)

			for _, nt := range g.AllNonterminals().Elements() {
				assert.True(trailer.Of(nt).Equal(direct.Of(nt)), "FOLLOW[%s]: trailer %s vs direct %s", nt, trailer.Of(nt).StringOrdered(), direct.Of(nt).StringOrdered())
			}
		})
	}
}
