// Package main provides the CLI entry point for docschema, a linter that
// checks Go function doc comments against a section schema.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/docschema/lint"
	"go.jacobcolvin.com/docschema/log"
	"go.jacobcolvin.com/docschema/profile"
	"go.jacobcolvin.com/docschema/report"
	"go.jacobcolvin.com/docschema/version"
)

func main() {
	err := newRootCmd(os.Stdout, os.Stderr).Execute()
	if errors.Is(err, lint.ErrIssuesFound) {
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	lintCfg := lint.NewConfig()
	logCfg := log.NewConfig()
	profCfg := profile.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "docschema [flags] [path ...]",
		Short: "Check Go doc comments against a section schema",
		Long: `docschema validates the doc comments of Go functions. Each comment is split
into paragraphs and classified into sections (description, "Test steps:",
"Pass criteria:", "Fail criteria:", "Reference:"). Sections must appear the
required number of times and lists must be formatted correctly.

Paths default to the current directory. With --staged, only functions added
in the git diff are checked, which suits pre-commit hooks.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, runConfig{lint: lintCfg, log: logCfg, profile: profCfg}, args, stdout, stderr)
		},
	}

	lintCfg.RegisterFlags(rootCmd.Flags())
	profCfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.PersistentFlags())

	for _, register := range []func(*cobra.Command) error{
		lintCfg.RegisterCompletions,
		profCfg.RegisterCompletions,
		logCfg.RegisterCompletions,
	} {
		err := register(rootCmd)
		if err != nil {
			fmt.Fprintf(stderr, "register completions: %v\n", err)
		}
	}

	rootCmd.AddCommand(newVersionCmd(stdout), newReportSchemaCmd(stdout))

	return rootCmd
}

type runConfig struct {
	lint    *lint.Config
	log     *log.Config
	profile *profile.Config
}

func run(cmd *cobra.Command, cfg runConfig, args []string, stdout, stderr io.Writer) (err error) {
	logger, err := cfg.log.NewLogger(stderr)
	if err != nil {
		return err
	}

	linter, err := cfg.lint.NewLinter(logger)
	if err != nil {
		return err
	}

	w, err := cfg.lint.NewWriter(stdout)
	if err != nil {
		return err
	}

	prof := cfg.profile.NewProfiler()

	err = prof.Start()
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, prof.Stop())
	}()

	r, err := linter.Lint(cmd.Context(), cfg.lint.NewSource(args))
	if err != nil {
		return err
	}

	err = w.Write(stdout, r)
	if err != nil {
		return err
	}

	if !r.Empty() {
		return fmt.Errorf("%w: %d", lint.ErrIssuesFound, r.Count())
	}

	return nil
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(stdout, version.Get())

			return err
		},
	}
}

func newReportSchemaCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "report-schema",
		Short: "Print the JSON Schema of the json and yaml report formats",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			schema, err := report.Schema()
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("%w: %w", report.ErrWriteOutput, err)
			}

			_, err = stdout.Write(append(out, '\n'))
			if err != nil {
				return fmt.Errorf("%w: %w", report.ErrWriteOutput, err)
			}

			return nil
		},
	}
}
