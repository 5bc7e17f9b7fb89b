package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/cmdkit/foundation/utils/slicex"
	"github.com/msto63/cmdkit/foundation/utils/stringx"
)

func newStripANSICmd() *cobra.Command {
	return lineCmd("strip-ansi", "Remove ANSI color sequences", stringx.StripANSI)
}

func newQuoteCmd() *cobra.Command {
	return lineCmd("quote", "Quote text that contains spaces", stringx.QuoteIfNeeded)
}

func newUnquoteCmd() *cobra.Command {
	return lineCmd("unquote", "Remove one pair of matching outer quotes", stringx.StripQuotes)
}

func newSortCmd() *cobra.Command {
	var natural, unique bool

	cmd := &cobra.Command{
		Use:   "sort [text...]",
		Short: "Sort case-insensitively",
		Long: `Sort lines alphabetically, ignoring case and Unicode normalization
differences. With --natural, digit runs compare by numeric value so that
item2 sorts before item10.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputLines(cmd, args)
			if err != nil {
				return err
			}
			if unique {
				lines = slicex.RemoveDuplicates(lines)
			}
			if natural {
				lines = slicex.NaturalSort(lines)
			} else {
				lines = slicex.AlphabeticalSort(lines)
			}
			printLines(cmd, lines)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&natural, "natural", "n", false, "compare digit runs numerically")
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "drop repeated lines first")
	return cmd
}

func newDedupeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dedupe [text...]",
		Short: "Drop repeated lines, keeping first occurrences in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputLines(cmd, args)
			if err != nil {
				return err
			}
			printLines(cmd, slicex.RemoveDuplicates(lines))
			return nil
		},
	}
}
