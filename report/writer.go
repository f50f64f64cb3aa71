package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
)

// Format is the output encoding of a [Writer].
type Format string

const (
	// FormatText writes one colored or plain line per finding.
	FormatText Format = "text"
	// FormatJSON writes the report as indented JSON.
	FormatJSON Format = "json"
	// FormatYAML writes the report as YAML.
	FormatYAML Format = "yaml"
)

var (
	// ErrUnknownFormat indicates an unrecognized output format string.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrWriteOutput indicates the report could not be encoded or written.
	ErrWriteOutput = errors.New("write output")
)

// Heading precedes the findings in text output.
const Heading = "Issues found in doc comments:"

// Formats returns all supported format names.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
}

// ParseFormat parses a format string, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if slices.Contains(Formats(), string(f)) {
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Writer renders a [Report] in one [Format].
type Writer struct {
	Format Format
	// Color enables ANSI colors in text output.
	Color bool
}

// Write renders r to out. Text output for an empty report writes nothing;
// JSON and YAML always write a document.
func (w Writer) Write(out io.Writer, r *Report) error {
	var (
		data []byte
		err  error
	)

	normalized := Report{Files: r.Files}
	if normalized.Files == nil {
		normalized.Files = []File{}
	}

	switch w.Format {
	case FormatText, "":
		if r.Empty() {
			return nil
		}

		data = []byte(Heading + "\n\n" + strings.Join(Lines(r, w.Color), "\n") + "\n")

	case FormatJSON:
		data, err = json.MarshalIndent(normalized, "", "  ")
		data = append(data, '\n')

	case FormatYAML:
		data, err = yaml.Marshal(normalized)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, w.Format)
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	_, err = out.Write(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}

type palette struct {
	file func(a ...any) string
	fn   func(a ...any) string
	sep  func(a ...any) string
	code func(a ...any) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}

		return c.SprintFunc()
	}

	return palette{
		file: mk(color.Bold),
		fn:   mk(color.FgMagenta),
		sep:  mk(color.FgCyan),
		code: mk(color.Bold, color.FgRed),
	}
}

// Lines renders one line per finding as
// "<file>:<function>:<line>: <code> <message>". When colorize is true, the
// file is bold, the function magenta, separators cyan and the code bold red.
func Lines(r *Report, colorize bool) []string {
	p := newPalette(colorize)
	sep := p.sep(":")

	var lines []string

	for _, f := range r.Files {
		for _, fn := range f.Functions {
			for _, verr := range fn.Errors {
				lines = append(lines, p.file(f.Path)+sep+
					p.fn(fn.Name)+sep+
					strconv.Itoa(fn.Line)+sep+" "+
					p.code(string(verr.Code))+" "+verr.Message)
			}
		}
	}

	return lines
}
