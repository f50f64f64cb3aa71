// Package log provides structured logging handler construction for use with
// [log/slog].
//
// It supports three output formats ([FormatText], [FormatJSON] and
// [FormatLogfmt]) and four severity levels ([LevelError], [LevelWarn],
// [LevelInfo] and [LevelDebug]). Text output is rendered by
// [charm.land/log/v2]; JSON and logfmt use the handlers from [log/slog].
//
// Use [NewHandler] to create a handler directly, or use [Config] with CLI
// flag integration via [github.com/spf13/pflag] and shell completion support
// via [github.com/spf13/cobra]:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	logger, err := cfg.NewLogger(os.Stderr)
//
// [charm.land/log/v2]: https://pkg.go.dev/charm.land/log/v2
package log
