package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/cfgkit/grammar"
)

// classicExprGrammar is the right-recursive expression grammar used
// throughout the tests, with an explicit eof terminal on the goal.
const classicExprGrammar = `
Goal Expr eof
Expr Term Expr'
Expr' + Term Expr'
Expr' - Term Expr'
Expr'
Term Factor Term'
Term' * Factor Term'
Term' / Factor Term'
Term'
Factor ( Expr )
Factor num
Factor name
`

func mustRead(t *testing.T, input string) grammar.Grammar {
	t.Helper()
	g, err := grammar.Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("reading test grammar: %v", err)
	}
	return g
}

func Test_First(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect map[string][]string
	}{
		{
			name:  "ambiguous arithmetic grammar",
			input: "S S + S\nS S - S\nS S / S\nS S * S\nS n",
			expect: map[string][]string{
				"S": {"n"},
				"n": {"n"},
				"+": {"+"},
			},
		},
		{
			name:  "classic expression grammar",
			input: classicExprGrammar,
			expect: map[string][]string{
				"Expr":   {"(", "name", "num"},
				"Term":   {"(", "name", "num"},
				"Factor": {"(", "name", "num"},
				"Expr'":  {"+", "-", grammar.Epsilon},
				"Term'":  {"*", "/", grammar.Epsilon},
				"Goal":   {"(", "name", "num"},
			},
		},
		{
			name:  "epsilon seeds directly nullable lhs",
			input: "S a A\nA b\nA",
			expect: map[string][]string{
				"S": {"a"},
				"A": {"b", grammar.Epsilon},
			},
		},
		{
			name:  "nullability propagates through whole productions",
			input: "S A B\nA\nB\nB b",
			expect: map[string][]string{
				"S": {"b", grammar.Epsilon},
				"A": {grammar.Epsilon},
				"B": {"b", grammar.Epsilon},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			FIRST := First(mustRead(t, tc.input))

			for sym, members := range tc.expect {
				actual := FIRST.Of(sym)
				assert.Equal(len(members), actual.Len(), "FIRST[%s] = %s", sym, actual.StringOrdered())
				for _, m := range members {
					assert.True(actual.Has(m), "FIRST[%s] = %s is missing %q", sym, actual.StringOrdered(), m)
				}
			}
		})
	}
}

func Test_First_Soundness(t *testing.T) {
	// if epsilon is in FIRST[A], some production of A must be an epsilon
	// production or have an all-nullable rhs.
	assert := assert.New(t)

	g := mustRead(t, classicExprGrammar)
	FIRST := First(g)

	for _, A := range g.AllNonterminals().Elements() {
		if !FIRST.Of(A).Has(grammar.Epsilon) {
			continue
		}

		foundNullable := false
		for _, p := range g.ProductionsFrom(A) {
			if FIRST.SequenceDerivesEpsilon(p.RHS) {
				foundNullable = true
				break
			}
		}
		assert.True(foundNullable, "ε ∈ FIRST[%s] but no production of %s is nullable", A, A)
	}
}

func Test_First_MonotonicUnderNewProduction(t *testing.T) {
	assert := assert.New(t)

	base := mustRead(t, classicExprGrammar)
	grown := grammar.New(append(base.Productions(), grammar.MakeProduction("Factor", "lit"))...)

	before := First(base)
	after := First(grown)

	for sym, set := range before {
		for _, m := range set.Elements() {
			assert.True(after.Of(sym).Has(m), "adding a production removed %q from FIRST[%s]", m, sym)
		}
	}
}

func Test_SequenceFirst(t *testing.T) {
	g := mustRead(t, classicExprGrammar)
	FIRST := First(g)

	testCases := []struct {
		name   string
		seq    []string
		expect []string
	}{
		{
			name:   "empty sequence derives epsilon",
			seq:    nil,
			expect: []string{grammar.Epsilon},
		},
		{
			name:   "single terminal",
			seq:    []string{"+"},
			expect: []string{"+"},
		},
		{
			name:   "nullable head exposes the tail",
			seq:    []string{"Expr'", "eof"},
			expect: []string{"+", "-", "eof"},
		},
		{
			name:   "non-nullable head hides the tail",
			seq:    []string{"Term", "Expr'"},
			expect: []string{"(", "name", "num"},
		},
		{
			name:   "all-nullable sequence keeps epsilon",
			seq:    []string{"Expr'", "Term'"},
			expect: []string{"+", "-", "*", "/", grammar.Epsilon},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := FIRST.SequenceFirst(tc.seq)
			assert.Equal(len(tc.expect), actual.Len(), "FIRST(seq) = %s", actual.StringOrdered())
			for _, m := range tc.expect {
				assert.True(actual.Has(m), "FIRST(seq) = %s is missing %q", actual.StringOrdered(), m)
			}
		})
	}
}

func Test_SequenceFirst_ConcatenationLaw(t *testing.T) {
	// FIRST(αβ) = (FIRST(α) \ {ε}) ∪ (FIRST(β) if α derives ε, else ∅)
	assert := assert.New(t)

	g := mustRead(t, classicExprGrammar)
	FIRST := First(g)

	sequences := [][]string{
		{},
		{"Expr'"},
		{"Term"},
		{"Expr'", "Term'"},
		{"(", "Expr", ")"},
		{"Term'", "eof"},
	}

	for _, alpha := range sequences {
		for _, beta := range sequences {
			whole := append(append([]string{}, alpha...), beta...)

			expect := FIRST.SequenceFirst(alpha).Copy()
			expect.Remove(grammar.Epsilon)
			if FIRST.SequenceDerivesEpsilon(alpha) {
				expect.AddAll(FIRST.SequenceFirst(beta))
			}

			actual := FIRST.SequenceFirst(whole)
			assert.True(expect.Equal(actual), "FIRST(%v ++ %v): expected %s, got %s", alpha, beta, expect.StringOrdered(), actual.StringOrdered())
		}
	}
}
