/*
Cfgtrees reads a grammar in `.cfg` form from standard input and enumerates
every fully developed parse tree over it whose leaf count does not exceed
the given cap, writing one tree per line to standard output as its yield.

Usage:

	cfgtrees [flags] MAX_LEAVES < grammar.cfg

The positional argument is the maximum leaf count a tree may have to be
emitted. The flags are:

	-v, --version
		Give the current version of cfgkit and then exit.

	-t, --tree
		Print each tree in its indented form, separated by blank lines,
		instead of one yield per line.

The enumeration is only guaranteed to terminate when the grammar and cap
admit finitely many qualifying derivations.
*/
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/dekarrin/cfgkit/grammar"
	"github.com/dekarrin/cfgkit/internal/version"
	"github.com/dekarrin/cfgkit/parsetree"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitIOError indicates an unsuccessful program execution due to an
	// input or output problem.
	ExitIOError

	// ExitUsageError indicates that the arguments were malformed.
	ExitUsageError
)

var (
	returnCode  int = ExitSuccess
	flagVersion     = pflag.BoolP("version", "v", false, "Give the current version of cfgkit and then exit.")
	flagTree        = pflag.BoolP("tree", "t", false, "Print indented trees instead of yields.")
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

	args := pflag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: cfgtrees [flags] MAX_LEAVES < grammar.cfg\n")
		returnCode = ExitUsageError
		return
	}
	maxLeaves, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: MAX_LEAVES must be an integer: %q\n", args[0])
		returnCode = ExitUsageError
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

	start := parsetree.New(g)
	parsetree.Enumerate(start, maxLeaves, func(t parsetree.Tree) bool {
		if *flagTree {
			fmt.Println(t.String())
			fmt.Println()
		} else {
			fmt.Println(t.Yield())
		}
		return true
	})
}
