package lint

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"go.jacobcolvin.com/docschema/report"
	"go.jacobcolvin.com/docschema/source"
)

// Color modes accepted by the color flag.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Flags holds CLI flag names for lint configuration, allowing callers to
// customize flag names while keeping sensible defaults.
type Flags struct {
	NamePattern string
	Staged      string
	FromRef     string
	ToRef       string
	Format      string
	Color       string
	Jobs        string
}

// Config holds CLI flag values for lint configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewLinter], [Config.NewSource] and
// [Config.NewWriter] to build the pieces of a run.
type Config struct {
	Flags       Flags
	NamePattern string
	FromRef     string
	ToRef       string
	Format      string
	Color       string
	Jobs        int
	Staged      bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		NamePattern: "name-pattern",
		Staged:      "staged",
		FromRef:     "from-ref",
		ToRef:       "to-ref",
		Format:      "format",
		Color:       "color",
		Jobs:        "jobs",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds lint flags to the given [*pflag.FlagSet]. The ref
// flags default to the refs pre-commit exports for push hooks.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.NamePattern, c.Flags.NamePattern, "p", "",
		"regular expression selecting function names to check (default: all)")
	flags.BoolVarP(&c.Staged, c.Flags.Staged, "s", false,
		"check only functions added in the git diff instead of whole files")
	flags.StringVar(&c.FromRef, c.Flags.FromRef, os.Getenv(source.EnvFromRef),
		"baseline revision for --"+c.Flags.Staged+" (default HEAD)")
	flags.StringVar(&c.ToRef, c.Flags.ToRef, os.Getenv(source.EnvToRef),
		"target revision for --"+c.Flags.Staged+" (default: the index)")
	flags.StringVarP(&c.Format, c.Flags.Format, "f", string(report.FormatText),
		fmt.Sprintf("report format, one of: %s", report.Formats()))
	flags.StringVar(&c.Color, c.Flags.Color, ColorAuto,
		fmt.Sprintf("colorize text reports, one of: %s", colorModes()))
	flags.IntVarP(&c.Jobs, c.Flags.Jobs, "j", 0,
		"number of files linted concurrently (0 = GOMAXPROCS)")
}

// RegisterCompletions registers shell completions for lint flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	fixed := map[string][]string{
		c.Flags.Format: report.Formats(),
		c.Flags.Color:  colorModes(),
	}

	for _, flag := range []string{c.Flags.Format, c.Flags.Color} {
		err := cmd.RegisterFlagCompletionFunc(flag,
			cobra.FixedCompletions(fixed[flag], cobra.ShellCompDirectiveNoFileComp))
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{c.Flags.NamePattern, c.Flags.FromRef, c.Flags.ToRef, c.Flags.Jobs} {
		err := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// NewLinter creates a [Linter] using this [Config].
func (c *Config) NewLinter(logger *slog.Logger) (*Linter, error) {
	p, err := source.CompileFuncPattern(c.NamePattern)
	if err != nil {
		return nil, err
	}

	return NewLinter(
		WithFuncPattern(p),
		WithJobs(c.Jobs),
		WithLogger(logger),
	), nil
}

// NewSource creates the file enumerator for a run: the git diff when staged
// mode is enabled, otherwise the given paths (default ".").
func (c *Config) NewSource(args []string) source.Enumerator {
	if c.Staged {
		return source.Diff{
			Base:   c.FromRef,
			Target: c.ToRef,
		}
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	return source.Tree{Paths: args}
}

// NewWriter creates a [report.Writer] for out. In auto color mode, text is
// colorized only when out is a terminal.
func (c *Config) NewWriter(out io.Writer) (report.Writer, error) {
	format, err := report.ParseFormat(c.Format)
	if err != nil {
		return report.Writer{}, err
	}

	var colorize bool

	switch strings.ToLower(c.Color) {
	case ColorAlways:
		colorize = true
	case ColorNever:
		colorize = false
	case ColorAuto, "":
		colorize = isTerminal(out)
	default:
		return report.Writer{}, fmt.Errorf("%w: color mode %q", ErrInvalidOption, c.Color)
	}

	return report.Writer{Format: format, Color: colorize}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd())) //nolint:gosec // File descriptors fit in int.
}

func colorModes() []string {
	return []string{ColorAuto, ColorAlways, ColorNever}
}
