/*
Cfgfactor reads a grammar in `.cfg` form from standard input and writes the
left-factoring prefix trie of every nonterminal to standard output: each
nonterminal's right-hand sides inserted into one trie, so that alternatives
sharing a common prefix share a path.

Usage:

	cfgfactor [flags] < grammar.cfg

The flags are:

	-v, --version
		Give the current version of cfgkit and then exit.
*/
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/pflag"

	"github.com/dekarrin/cfgkit/grammar"
	"github.com/dekarrin/cfgkit/internal/version"
	"github.com/dekarrin/cfgkit/rewrite"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitIOError indicates an unsuccessful program execution due to an
	// input or output problem.
	ExitIOError
)

var (
	returnCode  int = ExitSuccess
	flagVersion     = pflag.BoolP("version", "v", false, "Give the current version of cfgkit and then exit.")
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

	tries := rewrite.FactorTries(g)

	nonterminals := make([]string, 0, len(tries))
	for nt := range tries {
		nonterminals = append(nonterminals, nt)
	}
	sort.Strings(nonterminals)

	for _, nt := range nonterminals {
		fmt.Printf("NONTERMINAL: %s\n", nt)
		fmt.Println(tries[nt].String())
	}
}
