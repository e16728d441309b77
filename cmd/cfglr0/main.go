/*
Cfglr0 reads a grammar in `.cfg` form from standard input, augments it, and
writes the LR(0) constructions over the augmented grammar to standard
output: the augmented grammar itself, the closure of the initial item, and
the canonical collection of item sets.

Usage:

	cfglr0 [flags] < grammar.cfg

The flags are:

	-v, --version
		Give the current version of cfgkit and then exit.

Item sets are printed in a fixed total order (lexicographic on their sorted
item vectors), so the output is deterministic for a given grammar.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/dekarrin/cfgkit/grammar"
	"github.com/dekarrin/cfgkit/internal/version"
	"github.com/dekarrin/cfgkit/lr"
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
	if g.Len() == 0 {
		fmt.Fprintf(os.Stderr, "ERROR: empty grammar\n")
		returnCode = ExitIOError
		return
	}

	gPrime := g.Augmented()

	fmt.Println("AUGMENTED GRAMMAR:")
	fmt.Println(gPrime.String())
	fmt.Println()

	initial := lr.Closure(lr.NewItemSet(lr.StartItem()), gPrime)
	fmt.Println("INITIAL CLOSURE:")
	fmt.Println(initial.Render(gPrime))
	fmt.Println()

	fmt.Println("CANONICAL COLLECTION:")
	for i, set := range lr.Collection(gPrime) {
		fmt.Printf("I%d:\n", i)
		fmt.Println(set.Render(gPrime))
	}
}
