package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	kiterrors "github.com/msto63/cmdkit/foundation/core/errors"
	"github.com/msto63/cmdkit/foundation/utils/execx"
)

func newWhichCmd() *cobra.Command {
	var editor bool

	cmd := &cobra.Command{
		Use:   "which [name...]",
		Short: "Print the full path of programs",
		Long: `Print the full path of each program as resolved by the system which
command. With --editor, print the editor a shell would launch: $EDITOR or
the first installed of the common editors.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if editor {
				path, ok := execx.FindEditor(args...)
				if !ok {
					return kiterrors.NotFoundError(kiterrors.ModuleExecx, "which", "editor", "any candidate")
				}
				fmt.Fprintln(out, path)
				return nil
			}

			names, err := inputLines(cmd, args)
			if err != nil {
				return err
			}

			var missing []string
			for _, name := range names {
				path, ok := execx.WhichContext(cmd.Context(), name)
				if !ok {
					missing = append(missing, name)
					continue
				}
				fmt.Fprintln(out, path)
			}

			if len(missing) > 0 {
				return kiterrors.NotFoundError(kiterrors.ModuleExecx, "which", "program", strings.Join(missing, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&editor, "editor", "e", false, "find the preferred editor; args replace the default candidates")
	return cmd
}
