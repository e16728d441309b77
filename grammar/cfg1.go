package grammar

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Meta-tokens of the extended `.cfg1` surface syntax. Each is recognized
// only as a complete whitespace-delimited token; prefixing a token with the
// escape character hides it from this recognition.
const (
	metaArrow  = "=>"
	metaAlt    = "|"
	metaStar   = "*"
	metaEscape = '\\'
)

// starSuffix is appended to a symbol X to name the fresh nonterminal that a
// Kleene-starred X desugars to.
const starSuffix = "_star_seq"

// ReadCFG1 parses a grammar in the extended `.cfg1` surface syntax and
// returns the equivalent plain grammar.
//
// The extended syntax is a superset of `.cfg`. Each non-blank line is
//
//	lhs => alt1 | alt2 | ...
//
// where every alternative becomes one production with the line's lhs. An
// empty alternative followed by `|` yields an epsilon production; a trailing
// `|`, or an arrow with nothing after it, adds no production. Within an
// alternative,
// `X *` desugars to a fresh nonterminal X_star_seq with the productions
// X_star_seq -> X X_star_seq and X_star_seq -> ε; the desugaring happens
// once across the whole input, so repeated uses of the same starred symbol
// do not produce duplicate productions. Finally, the escape character `\` is
// stripped from every token, which is how literal `*`, `|`, and `=>` tokens
// are written.
//
// Malformed lines (missing arrow, meta-token as lhs, a star with nothing to
// its left, or more than one star in one alternative) are rejected with an
// error naming the offending line.
func ReadCFG1(r io.Reader) (Grammar, error) {
	var raw []Production
	var rawLines []int

	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}

		lhs := tokens[0]
		if lhs == metaArrow || lhs == metaAlt || lhs == metaStar {
			return Grammar{}, fmt.Errorf("line %d: meta-token %q cannot be a production lhs: %q", lineno, lhs, line)
		}
		if len(tokens) < 2 || tokens[1] != metaArrow {
			return Grammar{}, fmt.Errorf("line %d: missing %q after lhs: %q", lineno, metaArrow, line)
		}

		// read the alternatives. Each run of tokens up to the next | is one
		// production with this line's lhs; entering the loop with an
		// immediate | gives an epsilon production, while a trailing | gives
		// nothing extra.
		rest := tokens[2:]
		i := 0
		for i < len(rest) {
			var rhs []string
			for i < len(rest) && rest[i] != metaAlt {
				rhs = append(rhs, rest[i])
				i++
			}
			if i < len(rest) {
				i++
			}
			raw = append(raw, MakeProduction(lhs, rhs...))
			rawLines = append(rawLines, lineno)
		}
	}
	if err := sc.Err(); err != nil {
		return Grammar{}, fmt.Errorf("reading grammar: %w", err)
	}

	var prods []Production
	for k, p := range raw {
		stars := 0
		starAt := -1
		for i, s := range p.RHS {
			if s == metaStar {
				stars++
				starAt = i
			}
		}

		switch {
		case stars == 0:
			// duplicates are permitted here; only the star desugaring
			// suppresses them.
			prods = append(prods, stripProductionEscapes(p))
		case stars > 1:
			return Grammar{}, fmt.Errorf("line %d: more than one %q in one alternative of %q", rawLines[k], metaStar, p.LHS)
		case starAt == 0:
			return Grammar{}, fmt.Errorf("line %d: %q with nothing to its left in an alternative of %q", rawLines[k], metaStar, p.LHS)
		default:
			for _, q := range desugarStar(p, starAt) {
				prods = appendUnlessPresent(prods, stripProductionEscapes(q))
			}
		}
	}

	return New(prods...), nil
}

// desugarStar rewrites the production p, whose rhs holds a star at position
// starAt, into the three productions the star stands for.
func desugarStar(p Production, starAt int) []Production {
	repeated := p.RHS[starAt-1]
	fresh := repeated + starSuffix

	newRHS := make([]string, 0, len(p.RHS)-1)
	newRHS = append(newRHS, p.RHS[:starAt-1]...)
	newRHS = append(newRHS, fresh)
	newRHS = append(newRHS, p.RHS[starAt+1:]...)

	return []Production{
		MakeProduction(p.LHS, newRHS...),
		MakeProduction(fresh, repeated, fresh),
		MakeProduction(fresh),
	}
}

// appendUnlessPresent adds p to prods unless an equal production is already
// there. Duplicate suppression is what makes repeated `X *` uses across the
// input desugar only once.
func appendUnlessPresent(prods []Production, p Production) []Production {
	for i := range prods {
		if prods[i].Equal(p) {
			return prods
		}
	}
	return append(prods, p)
}

// stripEscapes removes every escape character from s, keeping the character
// that follows each one literally.
func stripEscapes(s string) string {
	if !strings.ContainsRune(s, metaEscape) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == metaEscape {
			if i+1 < len(s) {
				i++
				sb.WriteByte(s[i])
			}
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

func stripProductionEscapes(p Production) Production {
	rhs := make([]string, len(p.RHS))
	for i := range p.RHS {
		rhs[i] = stripEscapes(p.RHS[i])
	}
	return MakeProduction(stripEscapes(p.LHS), rhs...)
}
