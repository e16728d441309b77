/*
Cfgunrec reads a grammar in `.cfg` form from standard input, eliminates its
left recursion, and writes the resulting grammar to standard output in
`.cfg` form.

Usage:

	cfgunrec [flags] < grammar.cfg

The flags are:

	-v, --version
		Give the current version of cfgkit and then exit.

The output groups productions by nonterminal in lexicographic order, so its
production order need not match the input's.
*/
package main

import (
	"fmt"
	"os"

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

	if err := grammar.Write(os.Stdout, rewrite.RemoveLeftRecursion(g)); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitIOError
		return
	}
}
