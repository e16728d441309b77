/*
Cfganalyze runs a whole analysis pipeline described by a TOML manifest:
which grammar file to read, which surface format it is in, which rewrites to
apply, and which analyses to emit. The results go to standard output.

Usage:

	cfganalyze [flags] MANIFEST

The manifest looks like:

	grammar = "expr.cfg1"
	format = "cfg1"        # "cfg" (default) or "cfg1"
	rewrites = ["unrec"]   # applied in order; only "unrec" is defined
	scott = false          # FOLLOW variant

	[emit]
	grammar = true
	first = true
	follow = true
	predict = true
	conflicts = true
	factor = false
	items = false

The flags are:

	-v, --version
		Give the current version of cfgkit and then exit.
*/
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/dekarrin/cfgkit"
	"github.com/dekarrin/cfgkit/analysis"
	"github.com/dekarrin/cfgkit/grammar"
	"github.com/dekarrin/cfgkit/internal/version"
	"github.com/dekarrin/cfgkit/lr"
	"github.com/dekarrin/cfgkit/rewrite"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitIOError indicates an unsuccessful program execution due to an
	// input or output problem.
	ExitIOError

	// ExitUsageError indicates that the arguments or the manifest were
	// malformed.
	ExitUsageError
)

type manifest struct {
	Grammar  string   `toml:"grammar"`
	Format   string   `toml:"format"`
	Rewrites []string `toml:"rewrites"`
	Scott    bool     `toml:"scott"`
	Emit     emits    `toml:"emit"`
}

type emits struct {
	Grammar   bool `toml:"grammar"`
	First     bool `toml:"first"`
	Follow    bool `toml:"follow"`
	Predict   bool `toml:"predict"`
	Conflicts bool `toml:"conflicts"`
	Factor    bool `toml:"factor"`
	Items     bool `toml:"items"`
}

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

	args := pflag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: cfganalyze [flags] MANIFEST\n")
		returnCode = ExitUsageError
		return
	}

	var man manifest
	if _, err := toml.DecodeFile(args[0], &man); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitUsageError
		return
	}
	if man.Grammar == "" {
		fmt.Fprintf(os.Stderr, "ERROR: manifest does not name a grammar file\n")
		returnCode = ExitUsageError
		return
	}

	g, err := loadGrammar(man)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitIOError
		return
	}

	for _, rw := range man.Rewrites {
		switch rw {
		case "unrec":
			g = rewrite.RemoveLeftRecursion(g)
		default:
			fmt.Fprintf(os.Stderr, "ERROR: unknown rewrite %q\n", rw)
			returnCode = ExitUsageError
			return
		}
	}

	emit(g, man)
}

func loadGrammar(man manifest) (grammar.Grammar, error) {
	f, err := os.Open(man.Grammar)
	if err != nil {
		return grammar.Grammar{}, err
	}
	defer f.Close()

	switch man.Format {
	case "", "cfg":
		return grammar.Read(f)
	case "cfg1":
		return grammar.ReadCFG1(f)
	default:
		return grammar.Grammar{}, fmt.Errorf("unknown grammar format %q", man.Format)
	}
}

func emit(g grammar.Grammar, man manifest) {
	a := cfgkit.Analyze(g, man.Scott)

	if man.Emit.Grammar {
		fmt.Println(g.String())
		fmt.Println()
	}
	if man.Emit.First {
		fmt.Println("FIRST:")
		fmt.Println(a.First.String())
		fmt.Println()
	}
	if man.Emit.Follow {
		fmt.Println("FOLLOW:")
		fmt.Println(a.Follow.String())
		fmt.Println()
	}
	if man.Emit.Predict {
		fmt.Println("PREDICT:")
		fmt.Println(a.Predict.Render(g))
		fmt.Println()
	}
	if man.Emit.Conflicts {
		if conf, ok := analysis.PredictConflict(g); ok {
			fmt.Println("PREDICT-PREDICT CONFLICT:")
			fmt.Println(conf.First.String())
			fmt.Println(conf.Second.String())
		} else {
			fmt.Println("no predict-predict conflict")
		}
		fmt.Println()
	}
	if man.Emit.Factor {
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
		fmt.Println()
	}
	if man.Emit.Items && g.Len() > 0 {
		gPrime := g.Augmented()
		fmt.Println("CANONICAL COLLECTION:")
		for i, set := range lr.Collection(gPrime) {
			fmt.Printf("I%d:\n", i)
			fmt.Println(set.Render(gPrime))
		}
	}
}
