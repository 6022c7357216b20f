package main

import (
	"os"

	"github.com/JIMMY62m24/grammar-processor-midterm/grammar"
	"github.com/spf13/cobra"
)

var showFlags = struct {
	example *bool
	start   *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "show [grammar file path]",
		Short:   "Print a grammar in a readable format",
		Example: `  cat grammar.txt | gramproc show`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runShow,
	}
	showFlags.example = cmd.Flags().Bool("example", false, "use the built-in example grammar instead of reading one")
	showFlags.start = cmd.Flags().String("start", "", "start symbol (default the LHS of the first production)")
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	g, err := readGrammar(path, *showFlags.example, *showFlags.start)
	if err != nil {
		return err
	}

	return grammar.WriteDescription(os.Stdout, grammar.DescribeGrammar(g))
}
