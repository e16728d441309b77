package parsetree

import (
	"fmt"

	"github.com/dekarrin/cfgkit/internal/util"
)

// DevelopFirst returns one tree per production of the leftmost undeveloped
// symbol of t, in grammar order, each identical to t except that the
// leftmost undeveloped node has been developed by that production. The
// result is empty when t is already fully developed.
func DevelopFirst(t Tree) []Tree {
	toDevelop, ok := t.UndevelopedSymbol()
	if !ok {
		return nil
	}

	var developed []Tree
	for _, p := range t.Grammar.ProductionsFrom(toDevelop) {
		next, err := t.ApplyProduction(t.Grammar.IndexOf(p))
		if err != nil {
			// the production came from the undeveloped symbol itself, so
			// this cannot happen on a well-formed tree.
			panic(fmt.Sprintf("developing %q: %v", toDevelop, err))
		}
		developed = append(developed, next)
	}
	return developed
}

// Enumerate visits every fully developed tree reachable from t whose leaf
// count is at most maxLeaves, by worklist: trees over the cap are dropped,
// fully developed trees are passed to visit, and everything else is
// replaced by its DevelopFirst results.
//
// Termination is only guaranteed when the grammar and cap admit finitely
// many qualifying derivations; visit may return false to stop the
// enumeration early regardless.
func Enumerate(t Tree, maxLeaves int, visit func(Tree) bool) {
	workList := util.Stack[Tree]{}
	workList.Push(t)

	for !workList.Empty() {
		x := workList.Pop()
		if x.LeafCount() > maxLeaves {
			continue
		}
		if x.IsFullyDeveloped() {
			if !visit(x) {
				return
			}
			continue
		}
		for _, next := range DevelopFirst(x) {
			workList.Push(next)
		}
	}
}
