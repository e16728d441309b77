package grammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ReadCFG1(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    Grammar
		expectErr bool
	}{
		{
			name:   "empty input",
			input:  "",
			expect: New(),
		},
		{
			name:  "single alternative",
			input: "S => a b",
			expect: New(
				MakeProduction("S", "a", "b"),
			),
		},
		{
			name:  "alternation",
			input: "S => a | b c | d",
			expect: New(
				MakeProduction("S", "a"),
				MakeProduction("S", "b", "c"),
				MakeProduction("S", "d"),
			),
		},
		{
			name:  "leading bar is an epsilon alternative",
			input: "A => | b",
			expect: New(
				MakeProduction("A"),
				MakeProduction("A", "b"),
			),
		},
		{
			name:  "trailing bar adds nothing",
			input: "A => b |",
			expect: New(
				MakeProduction("A", "b"),
			),
		},
		{
			name:  "star desugars to a fresh star nonterminal",
			input: "S => a item *",
			expect: New(
				MakeProduction("S", "a", "item_star_seq"),
				MakeProduction("item_star_seq", "item", "item_star_seq"),
				MakeProduction("item_star_seq"),
			),
		},
		{
			name:  "star desugars once across the whole input",
			input: "S => item *\nT => item * x",
			expect: New(
				MakeProduction("S", "item_star_seq"),
				MakeProduction("item_star_seq", "item", "item_star_seq"),
				MakeProduction("item_star_seq"),
				MakeProduction("T", "item_star_seq", "x"),
			),
		},
		{
			name:  "escapes allow literal meta tokens",
			input: `list => item list | item * | \*`,
			expect: New(
				MakeProduction("list", "item", "list"),
				MakeProduction("list", "item_star_seq"),
				MakeProduction("item_star_seq", "item", "item_star_seq"),
				MakeProduction("item_star_seq"),
				MakeProduction("list", "*"),
			),
		},
		{
			name:  "escaped arrow and bar in rhs",
			input: `rule => \=> \| x`,
			expect: New(
				MakeProduction("rule", "=>", "|", "x"),
			),
		},
		{
			name:      "line without arrow",
			input:     "S a b",
			expectErr: true,
		},
		{
			name:      "single token line also lacks the arrow",
			input:     "S",
			expectErr: true,
		},
		{
			name:      "meta token as lhs",
			input:     "| => a",
			expectErr: true,
		},
		{
			name:      "star with nothing to its left",
			input:     "S => * a",
			expectErr: true,
		},
		{
			name:      "two stars in one alternative",
			input:     "S => a * b *",
			expectErr: true,
		},
		{
			name:  "star in second alternative only",
			input: "S => x | a * b",
			expect: New(
				MakeProduction("S", "x"),
				MakeProduction("S", "a_star_seq", "b"),
				MakeProduction("a_star_seq", "a", "a_star_seq"),
				MakeProduction("a_star_seq"),
			),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := ReadCFG1(strings.NewReader(tc.input))

			if tc.expectErr {
				assert.Error(err)
				return
			}

			assert.NoError(err)
			assert.True(tc.expect.Equal(actual), "expected:\n%s\nactual:\n%s", tc.expect.String(), actual.String())
		})
	}
}
