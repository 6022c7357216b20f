package main

import (
	"fmt"
	"os"

	"github.com/JIMMY62m24/grammar-processor-midterm/grammar"
	"github.com/spf13/cobra"
)

var generateFlags = struct {
	example   *bool
	start     *string
	maxLength *int
	maxCount  *int
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "generate [grammar file path]",
		Short:   "Enumerate words the grammar derives",
		Example: `  gramproc generate grammar.txt --max-length 8 --max-count 50`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runGenerate,
	}
	generateFlags.example = cmd.Flags().Bool("example", false, "use the built-in example grammar instead of reading one")
	generateFlags.start = cmd.Flags().String("start", "", "start symbol (default the LHS of the first production)")
	generateFlags.maxLength = cmd.Flags().IntP("max-length", "l", 8, "maximum word length")
	generateFlags.maxCount = cmd.Flags().IntP("max-count", "c", 50, "maximum number of words")
	rootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	g, err := readGrammar(path, *generateFlags.example, *generateFlags.start)
	if err != nil {
		return err
	}

	words, err := grammar.Generate(cmd.Context(), g, *generateFlags.maxLength, *generateFlags.maxCount)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Generated %v words:\n", len(words))
	for i, word := range words {
		fmt.Fprintf(os.Stdout, "%2d. %#v\n", i+1, word)
	}

	return nil
}
