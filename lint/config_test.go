package lint_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/docschema/lint"
	"go.jacobcolvin.com/docschema/report"
	"go.jacobcolvin.com/docschema/source"
)

func TestConfigNewSource(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want   source.Enumerator
		args   []string
		staged bool
	}{
		"default path": {
			want: source.Tree{Paths: []string{"."}},
		},
		"explicit paths": {
			args: []string{"a", "b"},
			want: source.Tree{Paths: []string{"a", "b"}},
		},
		"staged ignores paths": {
			args:   []string{"a"},
			staged: true,
			want:   source.Diff{Base: "main", Target: "feature"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := lint.NewConfig()
			cfg.Staged = tc.staged
			cfg.FromRef = "main"
			cfg.ToRef = "feature"

			assert.Equal(t, tc.want, cfg.NewSource(tc.args))
		})
	}
}

func TestConfigNewWriter(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err    error
		format string
		color  string
		want   report.Writer
	}{
		"auto on buffer": {
			format: "text",
			color:  lint.ColorAuto,
			want:   report.Writer{Format: report.FormatText},
		},
		"always": {
			format: "text",
			color:  "ALWAYS",
			want:   report.Writer{Format: report.FormatText, Color: true},
		},
		"never json": {
			format: "json",
			color:  lint.ColorNever,
			want:   report.Writer{Format: report.FormatJSON},
		},
		"unknown color": {
			format: "text",
			color:  "sometimes",
			err:    lint.ErrInvalidOption,
		},
		"unknown format": {
			format: "xml",
			color:  lint.ColorNever,
			err:    report.ErrUnknownFormat,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := lint.NewConfig()
			cfg.Format = tc.format
			cfg.Color = tc.color

			w, err := cfg.NewWriter(&bytes.Buffer{})
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, w)
		})
	}
}

func TestConfigNewLinter(t *testing.T) {
	t.Parallel()

	cfg := lint.NewConfig()
	cfg.NamePattern = "Test("

	_, err := cfg.NewLinter(nil)
	require.ErrorIs(t, err, source.ErrInvalidPattern)

	cfg.NamePattern = `Test\w+`

	linter, err := cfg.NewLinter(nil)
	require.NoError(t, err)
	assert.NotNil(t, linter)
}

func TestConfigFlags(t *testing.T) {
	t.Setenv(source.EnvFromRef, "origin/main")
	t.Setenv(source.EnvToRef, "HEAD")

	cfg := lint.NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())
	require.NoError(t, cfg.RegisterCompletions(cmd))

	assert.Equal(t, "origin/main", cfg.FromRef)
	assert.Equal(t, "HEAD", cfg.ToRef)
	assert.Equal(t, string(report.FormatText), cfg.Format)
	assert.Equal(t, lint.ColorAuto, cfg.Color)

	require.NoError(t, cmd.Flags().Parse([]string{"-s", "-p", "Test.*", "-f", "yaml", "-j", "4"}))
	assert.True(t, cfg.Staged)
	assert.Equal(t, "Test.*", cfg.NamePattern)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, 4, cfg.Jobs)

	completionFn, ok := cmd.GetFlagCompletionFunc("format")
	require.True(t, ok)

	values, directive := completionFn(cmd, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	assert.Equal(t, report.Formats(), values)
}
