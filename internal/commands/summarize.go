package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgersum/internal/config"
	"github.com/cleared-dev/ledgersum/internal/importer"
	"github.com/cleared-dev/ledgersum/internal/source"
	"github.com/cleared-dev/ledgersum/internal/summary"
)

const defaultFormat = "debit-credit"

type summarizeOptions struct {
	format      string
	dir         string
	separator   string
	quote       string
	noQuote     bool
	skipInvalid bool
}

func newSummarizeCommand(global *globalOptions) *cobra.Command {
	opts := &summarizeOptions{}

	cmd := &cobra.Command{
		Use:   "summarize [files...]",
		Short: "Print total expenses, income and net across statement files",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := global.logger(cmd)
			overrides := formatOverrides{
				separator: cmd.Flags().Changed("separator"),
				quote:     cmd.Flags().Changed("quote") || opts.noQuote,
			}
			return runSummarize(cmd.OutOrStdout(), logger, global.configPath, args, opts, overrides)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", defaultFormat, "statement format for files given on the command line")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "also summarize every .csv file in this directory")
	cmd.Flags().StringVar(&opts.separator, "separator", ",", "field separator (overrides the format)")
	cmd.Flags().StringVar(&opts.quote, "quote", `"`, "quote character (overrides the format)")
	cmd.Flags().BoolVar(&opts.noQuote, "no-quote", false, "disable quote handling")
	cmd.Flags().BoolVar(&opts.skipInvalid, "skip-invalid", false, "skip lines with unparseable amounts instead of failing")

	return cmd
}

type formatOverrides struct {
	separator bool
	quote     bool
}

func runSummarize(out io.Writer, logger zerolog.Logger, configPath string, files []string, opts *summarizeOptions, overrides formatOverrides) error {
	registry := importer.DefaultRegistry()
	var statements []config.Statement

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := registry.LoadConfig(cfg); err != nil {
			return err
		}
		statements = append(statements, cfg.Statements...)
	}

	for _, f := range files {
		statements = append(statements, config.Statement{Path: f, Format: opts.format})
	}

	if opts.dir != "" {
		found, err := importer.Scan(opts.dir)
		if err != nil {
			return err
		}
		for _, f := range found {
			statements = append(statements, config.Statement{Path: f.Path, Format: opts.format})
		}
	}

	if len(statements) == 0 {
		return errors.New("no statement files given")
	}

	sources := make([]summary.Source, 0, len(statements))
	for _, st := range statements {
		format, err := resolveFormat(registry, st.Format, opts, overrides)
		if err != nil {
			return fmt.Errorf("%s: %w", st.Path, err)
		}
		srcOpts := []source.Option{source.WithName(st.Path), source.WithLogger(logger)}
		if opts.skipInvalid {
			srcOpts = append(srcOpts, source.WithSkipInvalid())
		}
		sources = append(sources, format.Source(source.FromFile(st.Path), srcOpts...))
		logger.Debug().Str("path", st.Path).Str("format", format.Name).Msg("statement added")
	}

	report, err := summary.FromSources(sources...).Report()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Statements:     %d\n", report.Sources)
	fmt.Fprintf(out, "Total expenses: %s\n", report.Expenses)
	fmt.Fprintf(out, "Total income:   %s\n", report.Income)
	fmt.Fprintf(out, "Net:            %s\n", report.Net)
	return nil
}

func resolveFormat(registry *importer.Registry, name string, opts *summarizeOptions, overrides formatOverrides) (importer.Format, error) {
	format, ok := registry.Get(name)
	if !ok {
		return importer.Format{}, fmt.Errorf("unknown format %q (available: %s)", name, strings.Join(registry.Names(), ", "))
	}

	if overrides.separator {
		r, err := singleRune("separator", opts.separator)
		if err != nil {
			return importer.Format{}, err
		}
		format.Separator = r
	}
	if overrides.quote {
		format.Quote = 0
		if !opts.noQuote {
			r, err := singleRune("quote", opts.quote)
			if err != nil {
				return importer.Format{}, err
			}
			format.Quote = r
		}
	}
	return format, nil
}

func singleRune(flag, value string) (rune, error) {
	runes := []rune(value)
	if len(runes) != 1 {
		return 0, fmt.Errorf("--%s must be a single character, got %q", flag, value)
	}
	return runes[0], nil
}
