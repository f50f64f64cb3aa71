// Package lint runs doc comment validation over Go source files.
//
// A [Linter] takes files from a [source.Enumerator], finds the function
// declarations in each file's lines, locates their doc comments and
// validates them with [docstring.Parse]. Files are processed concurrently;
// the resulting [report.Report] keeps input order.
//
// [Config] bridges CLI flags to the library, following the RegisterFlags /
// RegisterCompletions / NewLinter pattern:
//
//	cfg := lint.NewConfig()
//	cfg.RegisterFlags(rootCmd.Flags())
//
//	linter, err := cfg.NewLinter(logger)
//	r, err := linter.Lint(ctx, cfg.NewSource(args))
package lint
