/*
Cfgi starts an interactive console for exploring a grammar. Commands load a
grammar from a file and query the analyses over it without re-running a
whole driver per question.

Usage:

	cfgi [flags] [FILE]

If FILE is given it is loaded as a `.cfg` grammar before the prompt starts.
Type "help" at the prompt for the command list; "quit" exits.

The flags are:

	-v, --version
		Give the current version of cfgkit and then exit.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"github.com/dekarrin/cfgkit/analysis"
	"github.com/dekarrin/cfgkit/grammar"
	"github.com/dekarrin/cfgkit/internal/version"
	"github.com/dekarrin/cfgkit/lr"
	"github.com/dekarrin/cfgkit/parsetree"
	"github.com/dekarrin/cfgkit/rewrite"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitIOError indicates an unsuccessful program execution due to an
	// input or output problem.
	ExitIOError
)

const helpText = `Commands:
  load FILE      load a grammar in .cfg form
  load1 FILE     load a grammar in .cfg1 form
  show           print the current grammar
  first [SYM]    print FIRST sets, or FIRST of one symbol
  follow [SYM]   print FOLLOW sets, or FOLLOW of one nonterminal
  predict        print PREDICT sets per production
  conflict       report the first predict-predict conflict
  items          print the canonical LR(0) collection of the augmented grammar
  trees N        enumerate yields of all parse trees with at most N leaves
  unrec          replace the current grammar with its left-recursion-free form
  factor         print the left-factoring trie per nonterminal
  help           show this text
  quit           exit`

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

	var g grammar.Grammar
	loaded := false

	if args := pflag.Args(); len(args) > 0 {
		var err error
		g, err = loadFile(args[0], false)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitIOError
			return
		}
		loaded = true
	}

	rl, err := readline.New("cfg> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitIOError
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			return
		} else if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitIOError
			return
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd := fields[0]
		args := fields[1:]

		if cmd == "quit" || cmd == "exit" {
			return
		}
		if cmd == "help" {
			fmt.Println(helpText)
			continue
		}

		if cmd == "load" || cmd == "load1" {
			if len(args) != 1 {
				fmt.Printf("usage: %s FILE\n", cmd)
				continue
			}
			newG, err := loadFile(args[0], cmd == "load1")
			if err != nil {
				fmt.Printf("ERROR: %s\n", err.Error())
				continue
			}
			g = newG
			loaded = true
			fmt.Printf("loaded %d productions\n", g.Len())
			continue
		}

		if !loaded {
			fmt.Println("no grammar loaded; use \"load FILE\" first")
			continue
		}

		runCommand(&g, cmd, args)
	}
}

func loadFile(path string, extended bool) (grammar.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return grammar.Grammar{}, err
	}
	defer f.Close()

	if extended {
		return grammar.ReadCFG1(f)
	}
	return grammar.Read(f)
}

func runCommand(g *grammar.Grammar, cmd string, args []string) {
	switch cmd {
	case "show":
		fmt.Println(g.String())

	case "first":
		FIRST := analysis.First(*g)
		if len(args) == 1 {
			fmt.Println(FIRST.Of(args[0]).StringOrdered())
		} else {
			fmt.Println(FIRST.String())
		}

	case "follow":
		FOLLOW := analysis.Follow(*g)
		if len(args) == 1 {
			fmt.Println(FOLLOW.Of(args[0]).StringOrdered())
		} else {
			fmt.Println(FOLLOW.String())
		}

	case "predict":
		fmt.Println(analysis.Predict(*g).Render(*g))

	case "conflict":
		if conf, ok := analysis.PredictConflict(*g); ok {
			fmt.Printf("%s\n%s\non %s\n", conf.First.String(), conf.Second.String(), conf.Overlap.StringOrdered())
		} else {
			fmt.Println("no predict-predict conflict")
		}

	case "items":
		if g.Len() == 0 {
			fmt.Println("grammar is empty")
			return
		}
		gPrime := g.Augmented()
		for i, set := range lr.Collection(gPrime) {
			fmt.Printf("I%d:\n", i)
			fmt.Println(set.Render(gPrime))
		}

	case "trees":
		if len(args) != 1 {
			fmt.Println("usage: trees N")
			return
		}
		maxLeaves, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("N must be an integer: %q\n", args[0])
			return
		}
		if g.Len() == 0 {
			fmt.Println("grammar is empty")
			return
		}
		parsetree.Enumerate(parsetree.New(*g), maxLeaves, func(t parsetree.Tree) bool {
			fmt.Println(t.Yield())
			return true
		})

	case "unrec":
		*g = rewrite.RemoveLeftRecursion(*g)
		fmt.Println(g.String())

	case "factor":
		tries := rewrite.FactorTries(*g)
		nonterminals := make([]string, 0, len(tries))
		for nt := range tries {
			nonterminals = append(nonterminals, nt)
		}
		sort.Strings(nonterminals)
		for _, nt := range nonterminals {
			fmt.Printf("NONTERMINAL: %s\n", nt)
			fmt.Println(tries[nt].String())
		}

	default:
		fmt.Printf("unknown command %q; try \"help\"\n", cmd)
	}
}
