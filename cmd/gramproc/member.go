package main

import (
	"fmt"
	"os"

	"github.com/JIMMY62m24/grammar-processor-midterm/grammar"
	"github.com/spf13/cobra"
)

var memberFlags = struct {
	grammarPath *string
	example     *bool
	start       *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "member <word>...",
		Short:   "Decide whether words belong to the language of the grammar",
		Example: `  gramproc member -g grammar.txt ab ba abb`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runMember,
	}
	memberFlags.grammarPath = cmd.Flags().StringP("grammar", "g", "", "grammar file path (default stdin)")
	memberFlags.example = cmd.Flags().Bool("example", false, "use the built-in example grammar instead of reading one")
	memberFlags.start = cmd.Flags().String("start", "", "start symbol (default the LHS of the first production)")
	rootCmd.AddCommand(cmd)
}

func runMember(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(*memberFlags.grammarPath, *memberFlags.example, *memberFlags.start)
	if err != nil {
		return err
	}

	for _, word := range args {
		member, err := grammar.IsMember(cmd.Context(), g, word)
		if err != nil {
			return err
		}
		if member {
			fmt.Fprintf(os.Stdout, "%#v BELONGS to the grammar\n", word)
		} else {
			fmt.Fprintf(os.Stdout, "%#v does NOT belong to the grammar\n", word)
		}
	}

	return nil
}
