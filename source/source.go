// Package source finds the functions whose doc comments should be linted.
//
// An [Enumerator] yields [File] values: either whole Go files ([Tree]) or
// only the lines added in a git diff ([Diff]). [FuncNames] discovers function
// declarations in those lines, and a [Locator] resolves each name to its doc
// comment and line range in the file on disk.
package source

import (
	"context"
	"errors"
)

var (
	// ErrFuncNotFound indicates a function name has no declaration in a file.
	ErrFuncNotFound = errors.New("function not found")
	// ErrInvalidPattern indicates a name or path pattern failed to compile.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrGitDiff indicates the git diff could not be produced or parsed.
	ErrGitDiff = errors.New("git diff")
	// ErrReadSource indicates a source file could not be read or parsed.
	ErrReadSource = errors.New("read source")
)

// File is one enumerated input: a path and the lines to search for function
// declarations.
type File struct {
	Path  string
	Lines []string
}

// Enumerator produces the files to lint.
type Enumerator interface {
	Files(ctx context.Context) ([]File, error)
}
