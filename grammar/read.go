package grammar

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Read parses a grammar in the plain `.cfg` surface syntax. The input is
// line oriented and whitespace tokenized: the first token of each non-blank
// line is the production's left-hand side and the remaining tokens, possibly
// none, are its right-hand side. Blank lines are skipped.
//
// Read never fails on lexical grounds; any run of non-whitespace bytes is a
// symbol. Empty input yields an empty grammar. The only errors returned are
// I/O errors from the underlying reader.
func Read(r io.Reader) (Grammar, error) {
	var prods []Production

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		tokens := strings.Fields(sc.Text())
		if len(tokens) == 0 {
			continue
		}
		prods = append(prods, MakeProduction(tokens[0], tokens[1:]...))
	}
	if err := sc.Err(); err != nil {
		return Grammar{}, fmt.Errorf("reading grammar: %w", err)
	}

	return New(prods...), nil
}

// Write emits g in the `.cfg` surface syntax: one production per line, the
// left-hand side first, all symbols whitespace delimited, terminated by a
// blank line. Any grammar produced by Read round-trips: Read(Write(g))
// yields a grammar equal to g.
func Write(w io.Writer, g Grammar) error {
	var sb strings.Builder
	for _, p := range g.Productions() {
		sb.WriteString(p.LHS)
		for _, s := range p.RHS {
			sb.WriteRune(' ')
			sb.WriteString(s)
		}
		sb.WriteRune('\n')
	}
	sb.WriteRune('\n')

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing grammar: %w", err)
	}
	return nil
}

// String returns the grammar in its `.cfg` surface form, without the
// trailing blank line.
func (g Grammar) String() string {
	var sb strings.Builder
	for i, p := range g.Productions() {
		if i > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(p.LHS)
		for _, s := range p.RHS {
			sb.WriteRune(' ')
			sb.WriteString(s)
		}
	}
	return sb.String()
}
