// Package stringtest provides helpers for building multi-line test fixtures,
// including Go source files with doc comments.
package stringtest

import "strings"

// JoinLF joins multiple strings with LF line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"Test steps:",
//		"1. Step",
//	) // -> "Test steps:\n1. Step"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// JoinCRLF joins multiple strings with CRLF line endings.
func JoinCRLF(ss ...string) string {
	return strings.Join(ss, "\r\n")
}

// Comment renders lines as a Go line comment block, one "//" line per input
// line, with a trailing newline. Empty lines become a bare "//".
//
// Example:
//
//	src := stringtest.Comment("Summary.", "", "Test steps:") +
//		"func TestX(t *testing.T) {}\n"
func Comment(lines ...string) string {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString("//")

		if line != "" {
			sb.WriteByte(' ')
			sb.WriteString(line)
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}

// GoFile renders a Go source file for package pkg from the given
// declarations, separated by blank lines.
func GoFile(pkg string, decls ...string) string {
	var sb strings.Builder

	sb.WriteString("package ")
	sb.WriteString(pkg)
	sb.WriteString("\n")

	for _, decl := range decls {
		sb.WriteString("\n")
		sb.WriteString(decl)

		if !strings.HasSuffix(decl, "\n") {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
