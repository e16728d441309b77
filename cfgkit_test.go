package cfgkit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/cfgkit/grammar"
)

func Test_Analyze(t *testing.T) {
	assert := assert.New(t)

	g, err := grammar.Read(strings.NewReader("S a A\nA b\nA"))
	assert.NoError(err)

	a := Analyze(g, false)

	assert.True(a.First.Of("S").Has("a"))
	assert.True(a.First.Of("A").Has(grammar.Epsilon))
	assert.Len(a.Predict, g.Len())
	assert.True(a.Predict[0].Has("a"))

	// the default form computes FOLLOW for nonterminals only.
	for sym := range a.Follow {
		assert.True(g.IsNonterminal(sym))
	}

	// the scott variant adds terminal entries.
	scott := Analyze(g, true)
	assert.True(scott.Follow.Of("a").Has("b"))
}
