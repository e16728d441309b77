// Package lr implements the LR(0) constructions over a grammar: items, item
// sets, CLOSURE, GOTO, and the canonical collection of item sets.
//
// An item refers to a production by its index in the grammar rather than
// carrying the production itself, so every operation here takes the grammar
// it works against. Callers normally augment the grammar first with
// grammar.Augmented so that the item [0, 0] is [S' -> . S].
package lr

import (
	"sort"
	"strings"

	"github.com/dekarrin/cfgkit/grammar"
)

// Item is an LR(0) item: a production of the grammar, identified by index,
// with a dot position inside its right-hand side. Dot ranges from 0 (before
// the first rhs symbol) to the length of the rhs (past the last).
type Item struct {
	Production int
	Dot        int
}

// Compare orders items by production index, then dot position. It returns a
// negative number, zero, or a positive number as it sorts before, equal to,
// or after o.
func (it Item) Compare(o Item) int {
	if it.Production != o.Production {
		return it.Production - o.Production
	}
	return it.Dot - o.Dot
}

// Render returns the item in the form "[A -> α . β]" against the grammar
// its production index refers to.
func (it Item) Render(g grammar.Grammar) string {
	p := g.Get(it.Production)

	var sb strings.Builder
	sb.WriteRune('[')
	sb.WriteString(p.LHS)
	sb.WriteString(" ->")
	for i, s := range p.RHS {
		if i == it.Dot {
			sb.WriteString(" .")
		}
		sb.WriteRune(' ')
		sb.WriteString(s)
	}
	if it.Dot == len(p.RHS) {
		sb.WriteString(" .")
	}
	sb.WriteRune(']')
	return sb.String()
}

// ItemSet is a set of LR(0) items. The zero value is not usable; create one
// with NewItemSet.
type ItemSet map[Item]bool

// NewItemSet creates an ItemSet holding the given items.
func NewItemSet(items ...Item) ItemSet {
	s := ItemSet{}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add puts the given item in the set. It has no effect if the item is
// already there.
func (s ItemSet) Add(it Item) {
	s[it] = true
}

// Has returns whether the set contains the given item.
func (s ItemSet) Has(it Item) bool {
	_, has := s[it]
	return has
}

// Len returns the number of items in the set.
func (s ItemSet) Len() int {
	return len(s)
}

// Empty returns whether the set has no items.
func (s ItemSet) Empty() bool {
	return len(s) == 0
}

// Copy returns a set with the same items that shares no storage with s.
func (s ItemSet) Copy() ItemSet {
	newS := ItemSet{}
	for it := range s {
		newS[it] = true
	}
	return newS
}

// Sorted returns the items of the set ordered by (production, dot). All
// deterministic iteration over item sets goes through this.
func (s ItemSet) Sorted() []Item {
	items := make([]Item, 0, len(s))
	for it := range s {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Compare(items[j]) < 0
	})
	return items
}

// Equal returns whether the set holds exactly the same items as the given
// object, which must be an ItemSet or non-nil *ItemSet to compare equal.
func (s ItemSet) Equal(o any) bool {
	other, ok := o.(ItemSet)
	if !ok {
		otherPtr, ok := o.(*ItemSet)
		if !ok {
			return false
		} else if otherPtr == nil {
			return false
		}
		other = *otherPtr
	}

	if len(s) != len(other) {
		return false
	}
	for it := range s {
		if !other.Has(it) {
			return false
		}
	}
	return true
}

// Compare orders item sets lexicographically on their sorted item vectors.
// Two sets compare equal exactly when they hold the same items, so this is
// the total order the canonical collection is kept in.
func (s ItemSet) Compare(o ItemSet) int {
	a := s.Sorted()
	b := o.Sorted()

	for i := 0; i < len(a) && i < len(b); i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}

// Render returns the items of the set, sorted, one per line, each in its
// "[A -> α . β]" form.
func (s ItemSet) Render(g grammar.Grammar) string {
	var sb strings.Builder
	for i, it := range s.Sorted() {
		if i > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(it.Render(g))
	}
	return sb.String()
}
