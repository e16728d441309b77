package lr

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/dekarrin/cfgkit/grammar"
)

// StartItem is the item the canonical collection is grown from: the first
// production of the grammar with the dot at the far left. For an augmented
// grammar this is [S' -> . S].
func StartItem() Item {
	return Item{Production: 0, Dot: 0}
}

// Closure computes CLOSURE(I) against g: the smallest superset of I such
// that whenever an item of the closure has its dot immediately before a
// nonterminal B, the closure also holds [B -> . γ] for every production
// B -> γ of g. Items whose dot sits at the end of the rhs, or before a
// terminal, contribute nothing.
func Closure(I ItemSet, g grammar.Grammar) ItemSet {
	closure := I.Copy()

	workDone := true
	for workDone {
		workDone = false

		var toAdd []Item
		for _, it := range closure.Sorted() {
			p := g.Get(it.Production)
			if it.Dot >= len(p.RHS) {
				continue
			}
			B := p.RHS[it.Dot]
			if g.IsTerminal(B) {
				continue
			}
			for _, q := range g.ProductionsFrom(B) {
				toAdd = append(toAdd, Item{Production: g.IndexOf(q), Dot: 0})
			}
		}

		for _, it := range toAdd {
			if !closure.Has(it) {
				closure.Add(it)
				workDone = true
			}
		}
	}

	return closure
}

// Goto computes GOTO(I, X) against g: the closure of every item of I whose
// dot sits immediately before X, with the dot advanced past it. X may be
// any symbol. The result is empty when no item of I has X after its dot.
func Goto(I ItemSet, X string, g grammar.Grammar) ItemSet {
	advanced := NewItemSet()
	for _, it := range I.Sorted() {
		p := g.Get(it.Production)
		if it.Dot < len(p.RHS) && p.RHS[it.Dot] == X {
			advanced.Add(Item{Production: it.Production, Dot: it.Dot + 1})
		}
	}
	return Closure(advanced, g)
}

// itemSetComparator orders item sets for the treeset holding the canonical
// collection. Equality under this order is item-set equality.
func itemSetComparator(a, b interface{}) int {
	return a.(ItemSet).Compare(b.(ItemSet))
}

// Collection computes the canonical collection of LR(0) item sets of g,
// which should be an augmented grammar: starting from the closure of the
// start item, every nonempty GOTO result on every symbol is added until no
// new item set appears. The returned sets are in their lexicographic total
// order, so the output is deterministic for a given grammar.
func Collection(g grammar.Grammar) []ItemSet {
	collection := treeset.NewWith(itemSetComparator)
	collection.Add(Closure(NewItemSet(StartItem()), g))

	symbols := g.AllSymbols().ElementsSorted()

	workDone := true
	for workDone {
		workDone = false

		// snapshot: the collection must not grow under its own iterator.
		sets := collection.Values()
		for _, v := range sets {
			c := v.(ItemSet)
			for _, X := range symbols {
				gotoResult := Goto(c, X, g)
				if gotoResult.Empty() || collection.Contains(gotoResult) {
					continue
				}
				collection.Add(gotoResult)
				workDone = true
			}
		}
	}

	out := make([]ItemSet, 0, collection.Size())
	for _, v := range collection.Values() {
		out = append(out, v.(ItemSet))
	}
	return out
}
