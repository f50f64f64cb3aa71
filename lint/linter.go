package lint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"go.jacobcolvin.com/docschema/docstring"
	"go.jacobcolvin.com/docschema/report"
	"go.jacobcolvin.com/docschema/source"
)

var (
	// ErrIssuesFound is returned by callers that turn a non-empty report into
	// a failing exit status.
	ErrIssuesFound = errors.New("doc comment issues found")
	// ErrInvalidOption indicates a configuration value is invalid.
	ErrInvalidOption = errors.New("invalid option")
)

// Linter validates the doc comments of functions found in source files.
//
// Create instances with [NewLinter].
type Linter struct {
	locator source.Locator
	funcs   *source.FuncPattern
	logger  *slog.Logger
	schema  docstring.Schema
	jobs    int
}

// Option configures a [Linter].
type Option func(*Linter)

// WithLocator sets the function locator. Defaults to a new
// [source.GoLocator].
func WithLocator(loc source.Locator) Option {
	return func(l *Linter) {
		l.locator = loc
	}
}

// WithFuncPattern selects the functions to check by name. Defaults to every
// function.
func WithFuncPattern(p *source.FuncPattern) Option {
	return func(l *Linter) {
		l.funcs = p
	}
}

// WithSchema sets the occurrence schema. Defaults to
// [docstring.DefaultSchema].
func WithSchema(schema docstring.Schema) Option {
	return func(l *Linter) {
		l.schema = schema
	}
}

// WithLogger sets the logger. Defaults to [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(l *Linter) {
		l.logger = logger
	}
}

// WithJobs sets how many files are linted concurrently. Values less than 1
// use GOMAXPROCS.
func WithJobs(n int) Option {
	return func(l *Linter) {
		l.jobs = n
	}
}

// NewLinter creates a [Linter] with the given options.
func NewLinter(opts ...Option) *Linter {
	l := &Linter{}
	for _, opt := range opts {
		opt(l)
	}

	if l.locator == nil {
		l.locator = source.NewGoLocator()
	}

	if l.funcs == nil {
		l.funcs = mustFuncPattern("")
	}

	if l.schema == nil {
		l.schema = docstring.DefaultSchema
	}

	if l.logger == nil {
		l.logger = slog.Default()
	}

	if l.jobs < 1 {
		l.jobs = runtime.GOMAXPROCS(0)
	}

	return l
}

// Lint enumerates files from src and runs the linter over them.
func (l *Linter) Lint(ctx context.Context, src source.Enumerator) (*report.Report, error) {
	files, err := src.Files(ctx)
	if err != nil {
		return nil, err
	}

	return l.Run(ctx, files)
}

// Run lints files concurrently and returns their findings in input order.
// The first error stops the run.
func (l *Linter) Run(ctx context.Context, files []source.File) (*report.Report, error) {
	results := make([][]report.Function, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.jobs)

	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			fns, err := l.LintFile(file)
			if err != nil {
				return err
			}

			results[i] = fns

			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	r := &report.Report{}

	for i, fns := range results {
		for _, fn := range fns {
			r.Add(files[i].Path, fn)
		}
	}

	l.logger.Debug("lint finished",
		slog.Int("files", len(files)),
		slog.Int("issues", r.Count()),
	)

	return r, nil
}

// LintFile lints every function declared in the file's lines and returns
// those with findings. Names that the locator cannot resolve, such as
// declarations inside comments, are logged and skipped.
func (l *Linter) LintFile(file source.File) ([]report.Function, error) {
	names := source.FuncNames(file.Lines, l.funcs)
	l.logger.Debug("scanning file",
		slog.String("path", file.Path),
		slog.Int("functions", len(names)),
	)

	var fns []report.Function

	for _, name := range names {
		found, err := l.LintFunc(file.Path, name)
		if errors.Is(err, source.ErrFuncNotFound) {
			l.logger.Warn("skipping unresolved function",
				slog.String("path", file.Path),
				slog.String("func", name),
			)

			continue
		}

		if err != nil {
			return nil, err
		}

		for _, fn := range found {
			if len(fn.Errors) > 0 {
				fns = append(fns, fn)
			}
		}
	}

	return fns, nil
}

// LintFunc validates the doc comment of every declaration named name in the
// file, so methods on different receivers are each checked. Results are in
// source order and named as go doc names them, e.g. "(*Suite).TestBoot".
func (l *Linter) LintFunc(path, name string) ([]report.Function, error) {
	docs, err := l.locator.Locate(path, name)
	if err != nil {
		return nil, err
	}

	fns := make([]report.Function, 0, len(docs))

	for _, fd := range docs {
		errs := docstring.Parse(fd.Doc).ValidateWith(l.schema)

		l.logger.Debug("validated doc comment",
			slog.String("path", path),
			slog.String("func", fd.QualifiedName()),
			slog.Bool("documented", fd.HasDoc),
			slog.Int("issues", len(errs)),
		)

		fns = append(fns, report.Function{
			Name:    fd.QualifiedName(),
			Line:    fd.Line,
			EndLine: fd.EndLine,
			Errors:  errs,
		})
	}

	return fns, nil
}

func mustFuncPattern(pattern string) *source.FuncPattern {
	p, err := source.CompileFuncPattern(pattern)
	if err != nil {
		panic(fmt.Sprintf("compiling function pattern %q: %v", pattern, err))
	}

	return p
}
