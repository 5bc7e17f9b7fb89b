package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	kiterrors "github.com/msto63/cmdkit/foundation/core/errors"
	"github.com/msto63/cmdkit/foundation/utils/castx"
	"github.com/msto63/cmdkit/internal/settings"
)

func newSetCmd(a *app) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "set [name [value]]",
		Short: "Show or change a setting",
		Long: `Without arguments, list all settings. With a name, show one setting.
With a name and a value, convert the value to the setting's type and show
the old and new values. Values that cannot be converted leave the setting
unchanged.

Configured values from the config file and CMDKIT_<NAME> variables are
applied first.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			s := settings.Defaults(
				settings.WithCaster(castx.NewCaster(out)),
				settings.WithLogger(a.logger),
			)
			if _, err := s.Apply(a.cfg); err != nil {
				return err
			}

			switch len(args) {
			case 0:
				fmt.Fprint(out, renderParams(s.Params(), long))
			case 1:
				p, ok := s.Lookup(args[0])
				if !ok {
					return kiterrors.NotFoundError(kiterrors.ModuleSettings, "show", "parameter", args[0])
				}
				fmt.Fprint(out, renderParams([]settings.Param{p}, long))
			default:
				change, err := s.Set(args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s - was: %v\nnow: %v\n", change.Name, change.Old, change.New)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false, "include descriptions")
	return cmd
}

func renderParams(params []settings.Param, long bool) string {
	header := []string{"NAME", "VALUE"}
	styles := []lipgloss.Style{NameStyle, ValueStyle}
	if long {
		header = append(header, "DESCRIPTION")
		styles = append(styles, MutedStyle)
	}

	rows := [][]string{header}
	for _, p := range params {
		row := []string{p.Name, fmt.Sprintf("%v", p.Value)}
		if long {
			row = append(row, p.Description)
		}
		rows = append(rows, row)
	}
	return renderTable(rows, styles)
}
