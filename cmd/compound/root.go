package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rpgo/compound-calculator/internal/calculation"
	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/rpgo/compound-calculator/internal/logging"
	"github.com/rpgo/compound-calculator/internal/output"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	format  string
	output  string
	locale  string
	verbose bool

	stdout io.Writer
	stderr io.Writer
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "compound",
		Short: "Compound interest projection calculator",
		Long: "Project how capital and regular contributions grow under compound interest,\n" +
			"how long a wealth or passive income goal takes, and what changes move it.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.stdout = cmd.OutOrStdout()
			opts.stderr = cmd.ErrOrStderr()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "console",
		fmt.Sprintf("Output format (%v or %s)", output.AvailableFormatterNames(), output.AllFormats))
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "Write the report to this file instead of stdout")
	rootCmd.PersistentFlags().StringVar(&opts.locale, "locale", "en-US",
		fmt.Sprintf("Locale for amounts and durations (%v)", output.SupportedLocales()))
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log engine diagnostics to stderr")

	rootCmd.AddCommand(
		newProjectCmd(opts),
		newScenariosCmd(opts),
		newSensitivityCmd(opts),
		newWhatIfCmd(opts),
		newExampleCmd(opts),
		newInteractiveCmd(opts),
		newServeCmd(),
	)
	return rootCmd
}

func (o *rootOptions) logger() *logging.SlogLogger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return logging.New(o.stderr, level)
}

func (o *rootOptions) engine() *calculation.ProjectionEngine {
	engine := calculation.NewProjectionEngine()
	engine.SetLogger(o.logger())
	return engine
}

// write renders report in the selected format to --output or stdout.
// With --format all, every format is written into the --output directory.
func (o *rootOptions) write(report *domain.Report) error {
	loc := output.LocaleFor(o.locale)
	if output.NormalizeFormatName(o.format) == output.AllFormats {
		paths, err := output.GenerateReports(report, loc, o.output)
		for _, p := range paths {
			fmt.Fprintf(o.stderr, "Report written to %s\n", p)
		}
		return err
	}

	f, err := output.GetFormatterByName(o.format, loc)
	if err != nil {
		return err
	}
	dest, err := output.WriteFormatted(f, report, o.output, o.stdout)
	if err != nil {
		return err
	}
	if dest != "stdout" {
		fmt.Fprintf(o.stderr, "Report written to %s\n", dest)
	}
	return nil
}
