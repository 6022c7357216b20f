package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/JIMMY62m24/grammar-processor-midterm/grammar"
	"github.com/JIMMY62m24/grammar-processor-midterm/spec"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gramproc",
	Short: "Process a context-free grammar given in a BNF-like notation",
	Long: `gramproc provides three features:
- Prints a grammar you defined in a readable format.
- Enumerates words the grammar derives, up to a length and count bound.
- Decides whether words belong to the language of the grammar.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

const exampleGrammar = `S -> aB | bA
A -> a | aS | bAA
B -> b | bS | aBB
`

// readGrammar loads a grammar from the file at path, or from stdin when path
// is empty, or uses the built-in example grammar. start, when non-empty,
// overrides the start symbol.
func readGrammar(path string, useExample bool, start string) (*grammar.Grammar, error) {
	var root *spec.RootNode
	switch {
	case useExample:
		var err error
		root, err = spec.Parse(strings.NewReader(exampleGrammar))
		if err != nil {
			return nil, err
		}
	case path != "":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("Cannot open the grammar file %s: %w", path, err)
		}
		defer f.Close()
		root, err = spec.Parse(f)
		if err != nil {
			return nil, err
		}
	default:
		var err error
		root, err = spec.Parse(os.Stdin)
		if err != nil {
			return nil, err
		}
	}

	var opts []grammar.GrammarOption
	if start != "" {
		if len(start) != 1 {
			return nil, fmt.Errorf("a start symbol must be a single non-terminal letter; passed: %v", start)
		}
		opts = append(opts, grammar.StartSymbol(grammar.Symbol(start[0])))
	}
	return grammar.NewGrammar(root, opts...)
}
