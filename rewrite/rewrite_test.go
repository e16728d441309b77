package rewrite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/cfgkit/grammar"
)

func mustRead(t *testing.T, input string) grammar.Grammar {
	t.Helper()
	g, err := grammar.Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("reading test grammar: %v", err)
	}
	return g
}

func Test_Trie_Insert(t *testing.T) {
	assert := assert.New(t)

	trie := NewTrie()
	assert.Equal(0, trie.Len())

	trie.Insert([]string{"(", "Expr", ")"})
	trie.Insert([]string{"num"})
	trie.Insert([]string{"(", "Expr", ",", "Expr", ")"})
	assert.Equal(3, trie.Len())

	// reinserting an existing sequence does not grow the trie.
	trie.Insert([]string{"num"})
	assert.Equal(3, trie.Len())

	// the empty sequence marks the root.
	trie.Insert(nil)
	assert.Equal(4, trie.Len())
}

func Test_Trie_String(t *testing.T) {
	testCases := []struct {
		name   string
		seqs   [][]string
		expect string
	}{
		{
			name: "different first symbols get separate paths",
			seqs: [][]string{
				{"(", "Expr", ")"},
				{"num"},
			},
			expect: "(\n  Expr\n    ) .\nnum .",
		},
		{
			name: "children print in lexicographic order",
			seqs: [][]string{
				{"c"},
				{"a"},
				{"b"},
			},
			expect: "a .\nb .\nc .",
		},
		{
			name: "end marker on an inner symbol",
			seqs: [][]string{
				{"a", "b"},
				{"a"},
			},
			expect: "a .\n  b .",
		},
		{
			name: "epsilon sequence at the root",
			seqs: [][]string{
				{},
				{"a"},
			},
			expect: "ε\na .",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			trie := NewTrie()
			for _, seq := range tc.seqs {
				trie.Insert(seq)
			}
			assert.Equal(tc.expect, trie.String())
		})
	}
}

func Test_FactorTries(t *testing.T) {
	assert := assert.New(t)

	g := mustRead(t, "Factor ( Expr )\nFactor num\nFactor name\nExpr num")

	tries := FactorTries(g)
	assert.Len(tries, 2)
	assert.Equal(3, tries["Factor"].Len())
	assert.Equal(1, tries["Expr"].Len())
}

func Test_RemoveLeftRecursion(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect grammar.Grammar
	}{
		{
			name:  "no left recursion passes through grouped",
			input: "S a A\nA b",
			expect: grammar.New(
				grammar.MakeProduction("A", "b"),
				grammar.MakeProduction("S", "a", "A"),
			),
		},
		{
			name:  "immediate left recursion",
			input: "E E + T\nE T\nT n",
			expect: grammar.New(
				grammar.MakeProduction("E", "T", "E0"),
				grammar.MakeProduction("E0", "+", "T", "E0"),
				grammar.MakeProduction("E0"),
				grammar.MakeProduction("T", "n"),
			),
		},
		{
			name:  "indirect left recursion through substitution",
			input: "S A a\nA S b\nA c",
			expect: grammar.New(
				grammar.MakeProduction("A", "S", "b"),
				grammar.MakeProduction("A", "c"),
				grammar.MakeProduction("S", "c", "a", "S0"),
				grammar.MakeProduction("S0", "b", "a", "S0"),
				grammar.MakeProduction("S0"),
			),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := RemoveLeftRecursion(mustRead(t, tc.input))
			assert.True(tc.expect.Equal(actual), "expected:\n%s\nactual:\n%s", tc.expect.String(), actual.String())
		})
	}
}

func Test_RemoveLeftRecursion_IsLeftRecursionFree(t *testing.T) {
	// no production of the output may begin with its own lhs, and the fresh
	// tail nonterminals must not collide with existing symbols.
	testCases := []struct {
		name  string
		input string
	}{
		{
			name:  "immediate",
			input: "E E + T\nE E - T\nE T\nT T * F\nT F\nF n",
		},
		{
			name:  "indirect",
			input: "S A a\nA S b\nA c",
		},
		{
			name:  "tail name already taken",
			input: "E E + T\nE T\nE0 x\nT E0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			g := mustRead(t, tc.input)
			rewritten := RemoveLeftRecursion(g)

			for _, p := range rewritten.Productions() {
				if len(p.RHS) > 0 {
					assert.NotEqual(p.LHS, p.RHS[0], "production %q is still immediately left recursive", p.String())
				}
			}
		})
	}
}
