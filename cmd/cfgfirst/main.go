/*
Cfgfirst reads a grammar in `.cfg` form from standard input and writes the
predictive-parser analyses over it to standard output: the grammar itself,
FIRST for every symbol, FOLLOW, PREDICT for every production, and the first
predict-predict conflict if the grammar has one.

Usage:

	cfgfirst [flags] < grammar.cfg

The flags are:

	-v, --version
		Give the current version of cfgkit and then exit.

	-s, --scott
		Compute FOLLOW with the trailer-accumulating variant, which also
		produces FOLLOW entries for terminal symbols. The default computes
		entries for nonterminals only.

FOLLOW of the start symbol is not seeded with an end-of-input marker; add an
explicit eof terminal to the grammar if one is wanted.
*/
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/dekarrin/rosed"
	"github.com/spf13/pflag"

	"github.com/dekarrin/cfgkit"
	"github.com/dekarrin/cfgkit/analysis"
	"github.com/dekarrin/cfgkit/grammar"
	"github.com/dekarrin/cfgkit/internal/util"
	"github.com/dekarrin/cfgkit/internal/version"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitIOError indicates an unsuccessful program execution due to an
	// input or output problem.
	ExitIOError
)

const tableWidth = 72

var (
	returnCode  int = ExitSuccess
	flagVersion     = pflag.BoolP("version", "v", false, "Give the current version of cfgkit and then exit.")
	flagScott       = pflag.BoolP("scott", "s", false, "Accumulate FOLLOW trailers onto terminals as well.")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			// we are panicking, make sure we dont lose the panic just because
			// we checked
			panic("unrecoverable panic occured")
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	g, err := grammar.Read(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitIOError
		return
	}

	a := cfgkit.Analyze(g, *flagScott)

	fmt.Println(g.String())
	fmt.Println()

	fmt.Println("FIRST:")
	fmt.Println(setsTable(a.First))
	fmt.Println("FOLLOW:")
	fmt.Println(setsTable(a.Follow))

	fmt.Println("PREDICT:")
	fmt.Println(predictTable(g, a.Predict))

	if conf, ok := analysis.PredictConflict(g); ok {
		fmt.Println("PREDICT-PREDICT CONFLICT:")
		fmt.Printf("%s\n%s\non %s\n", conf.First.String(), conf.Second.String(), setStr(conf.Overlap))
	} else {
		fmt.Println("no predict-predict conflict")
	}
}

func setsTable(sets analysis.SymbolSets) string {
	data := [][]string{{"SYMBOL", "SET"}}

	syms := make([]string, 0, len(sets))
	for sym := range sets {
		syms = append(syms, sym)
	}
	sort.Strings(syms)

	for _, sym := range syms {
		data = append(data, []string{sym, setStr(sets[sym])})
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, tableWidth, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

func predictTable(g grammar.Grammar, sets analysis.ProductionSets) string {
	data := [][]string{{"PRODUCTION", "SET"}}
	for i := range sets {
		data = append(data, []string{g.Get(i).String(), setStr(sets[i])})
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, tableWidth, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

func setStr(s util.StringSet) string {
	out := "{ "
	for _, m := range s.ElementsSorted() {
		if m == grammar.Epsilon {
			m = "ε"
		}
		out += m + " "
	}
	return out + "}"
}
