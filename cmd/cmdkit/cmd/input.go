package cmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	kiterror "github.com/msto63/cmdkit/foundation/core/error"
)

const maxLineLength = 1024 * 1024

// inputLines returns args, or the lines of stdin when no args are given
func inputLines(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, kiterror.Wrap(err, "failed to read input").
			WithCode(kiterror.CodeIOError).
			WithOperation("cmdkit.input")
	}
	return lines, nil
}

func printLines(cmd *cobra.Command, lines []string) {
	out := cmd.OutOrStdout()
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}

// lineCmd builds a command that maps every input line through fn
func lineCmd(use, short string, fn func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [text...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputLines(cmd, args)
			if err != nil {
				return err
			}
			for i, line := range lines {
				lines[i] = fn(line)
			}
			printLines(cmd, lines)
			return nil
		},
	}
}
