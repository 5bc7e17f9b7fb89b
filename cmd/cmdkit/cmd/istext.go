package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	kiterror "github.com/msto63/cmdkit/foundation/core/error"
	"github.com/msto63/cmdkit/foundation/utils/filex"
)

func newIsTextCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "istext [file...]",
		Short: "Report whether files hold ASCII or UTF-8 text",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := inputLines(cmd, args)
			if err != nil {
				return err
			}

			rows := [][]string{{"FILE", "ENCODING", "TYPE"}}
			failed := 0
			for _, path := range paths {
				enc, err := filex.DetectEncoding(path)
				if err != nil {
					rows = append(rows, []string{path, ErrorMessageStyle.Render("error"), err.Error()})
					failed++
					continue
				}

				mime, err := filex.MIMEType(path)
				if err != nil {
					mime = "-"
				}
				if enc.IsText() {
					rows = append(rows, []string{path, StatusOKStyle.Render(enc.String()), mime})
				} else {
					rows = append(rows, []string{path, ErrorMessageStyle.Render(enc.String()), mime})
					failed++
				}
			}

			if !quiet {
				fmt.Fprint(cmd.OutOrStdout(), renderTable(rows, []lipgloss.Style{NameStyle, lipgloss.NewStyle(), MutedStyle}))
			}
			if failed > 0 {
				return kiterror.New(fmt.Sprintf("%d of %d files are not text files", failed, len(paths))).
					WithCode(kiterror.CodeValidationFailed).
					WithOperation("cmdkit.istext")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only set the exit status")
	return cmd
}
