package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgersum/internal/buildinfo"
	"github.com/cleared-dev/ledgersum/internal/config"
	"github.com/cleared-dev/ledgersum/internal/logging"
)

// globalOptions are the flags shared by every subcommand.
type globalOptions struct {
	logLevel   string
	logFormat  string
	configPath string
}

func (o *globalOptions) logger(cmd *cobra.Command) zerolog.Logger {
	return logging.New(cmd.ErrOrStderr(), logging.Config{Level: o.logLevel, Format: o.logFormat})
}

// NewRootCommand creates the root CLI command with all subcommands registered.
// Flag defaults come from LEDGERSUM_* environment variables.
func NewRootCommand() *cobra.Command {
	env, err := config.LoadEnv()
	if err != nil {
		env = &config.Env{LogLevel: "warn", LogFormat: "console"}
	}
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "ledgersum",
		Short:   "Summarize expenses and income from bank statement files",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", env.LogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", env.LogFormat, "log format (console, json)")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", env.ConfigPath, "path to "+config.FileName)

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newSummarizeCommand(opts))

	return rootCmd
}
