package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/cmdkit/foundation/core/config"
	kiterror "github.com/msto63/cmdkit/foundation/core/error"
	kitlog "github.com/msto63/cmdkit/foundation/core/log"
	"github.com/msto63/cmdkit/foundation/utils/stringx"
)

// app holds state shared by all subcommands of one invocation
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string

	cfg    *config.Config
	logger *kitlog.Logger
	runID  string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "cmdkit",
		Short: "Text and shell helpers for command line tools",
		Long: `cmdkit bundles the small helpers an interactive command shell needs.

Commands read their arguments from the command line or, when none are
given, one per line from standard input.

Settings are read from --config or from the first cmdkit.toml,
cmdkit.yaml or cmdkit.yml found in the working directory, the home
directory or $XDG_CONFIG_HOME/cmdkit. CMDKIT_<NAME> environment
variables override file values.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: discovered cmdkit.toml/yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text, console, json, logfmt")

	rootCmd.AddCommand(
		newStripANSICmd(),
		newQuoteCmd(),
		newUnquoteCmd(),
		newSortCmd(),
		newDedupeCmd(),
		newWhichCmd(),
		newIsTextCmd(),
		newSetCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the command line and prints a failure to stderr
func Execute() error {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return kiterror.GetCode(err).ExitCode()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := kitlog.ParseLevel(stringx.FirstNonBlank(a.logLevel, cfg.GetString("log.level"), kitlog.DefaultLevel().String()))
	if err != nil {
		return kiterror.Wrap(err, "invalid --log-level").WithCode(kiterror.CodeInvalidInput)
	}
	format, err := kitlog.ParseFormat(stringx.FirstNonBlank(a.logFormat, cfg.GetString("log.format"), kitlog.FormatText.String()))
	if err != nil {
		return kiterror.Wrap(err, "invalid --log-format").WithCode(kiterror.CodeInvalidInput)
	}

	a.runID = uuid.NewString()
	a.logger = kitlog.NewWithConfig(kitlog.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "cmdkit",
	}).WithCorrelationID(a.runID)
	kitlog.SetDefault(a.logger)

	a.logger.Debug("command started", kitlog.Fields{
		"command": cmd.CommandPath(),
		"config":  cfg.FilePath(),
	})
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.cfgFile != "" {
		return config.LoadWithOptions(a.cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: strings.ToUpper(config.DefaultName),
		})
	}
	return config.DiscoverWithDefaults()
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, renderError(err.Error()))
}
