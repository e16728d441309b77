package rewrite

import (
	"strconv"

	"github.com/dekarrin/cfgkit/grammar"
)

// RemoveLeftRecursion returns a grammar that derives the same language as g,
// rewritten by the two phases below to remove left recursion.
//
// It runs two phases. First, for nonterminals taken in lexicographic order,
// any production of a later nonterminal that begins with an earlier one is
// replaced by one production per alternative of the earlier nonterminal,
// substituted in at the front. The alternatives substituted are those of g
// as given, and substitution is not repeated, so indirect left recursion
// through a longer chain (A -> B x, B -> C y, C -> A z) can remain in the
// result. Second, immediate left
// recursion is eliminated per nonterminal: the left-recursive alternatives
// of A move to a fresh right-recursive tail nonterminal A<n>, every
// non-recursive alternative of A gets the tail appended, and the tail gets
// an epsilon production.
//
// The output groups productions by nonterminal in lexicographic order, so a
// rewritten grammar's production order (and with it its start symbol) need
// not match g's.
func RemoveLeftRecursion(g grammar.Grammar) grammar.Grammar {
	nonterminals := g.AllNonterminals().ElementsSorted()

	// phase 1: substitute leading earlier nonterminals.
	var substituted []grammar.Production
	var replaced []grammar.Production
	for i := range nonterminals {
		for j := 0; j < i; j++ {
			earlier := nonterminals[j]
			for _, p := range g.ProductionsFrom(nonterminals[i]) {
				if len(p.RHS) == 0 || p.RHS[0] != earlier {
					continue
				}
				for _, q := range g.ProductionsFrom(earlier) {
					newRHS := make([]string, 0, len(q.RHS)+len(p.RHS)-1)
					newRHS = append(newRHS, q.RHS...)
					newRHS = append(newRHS, p.RHS[1:]...)
					substituted = append(substituted, grammar.MakeProduction(p.LHS, newRHS...))
				}
				replaced = append(replaced, p)
			}
		}
	}

	g1prods := substituted
	for _, p := range g.Productions() {
		if !containsProduction(replaced, p) {
			g1prods = append(g1prods, p)
		}
	}
	g1 := grammar.New(g1prods...)

	// phase 2: eliminate immediate left recursion.
	var final []grammar.Production
	counter := 0
	symbols := g1.AllSymbols()
	for _, A := range g1.AllNonterminals().ElementsSorted() {
		var leftRecursive [][]string
		var betas [][]string
		for _, p := range g1.ProductionsFrom(A) {
			if len(p.RHS) > 0 && p.RHS[0] == A {
				// drop the leading A; the tail nonterminal carries the rest.
				leftRecursive = append(leftRecursive, p.RHS[1:])
			} else {
				betas = append(betas, p.RHS)
			}
		}

		if len(leftRecursive) == 0 {
			final = append(final, g1.ProductionsFrom(A)...)
			continue
		}

		tail := A + strconv.Itoa(counter)
		counter++
		for symbols.Has(tail) {
			tail = A + strconv.Itoa(counter)
			counter++
		}

		for _, rhs := range betas {
			newRHS := make([]string, 0, len(rhs)+1)
			newRHS = append(newRHS, rhs...)
			newRHS = append(newRHS, tail)
			final = append(final, grammar.MakeProduction(A, newRHS...))
		}
		for _, rhs := range leftRecursive {
			newRHS := make([]string, 0, len(rhs)+1)
			newRHS = append(newRHS, rhs...)
			newRHS = append(newRHS, tail)
			final = append(final, grammar.MakeProduction(tail, newRHS...))
		}
		final = append(final, grammar.MakeProduction(tail))
	}

	return grammar.New(final...)
}

func containsProduction(prods []grammar.Production, p grammar.Production) bool {
	for i := range prods {
		if prods[i].Equal(p) {
			return true
		}
	}
	return false
}
