package source

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sourcegraph/go-diff/diff"
)

// Environment variables set by pre-commit for push and manual stages.
const (
	EnvFromRef = "PRE_COMMIT_FROM_REF"
	EnvToRef   = "PRE_COMMIT_TO_REF"
)

// DefaultPathPattern selects Go source files.
const DefaultPathPattern = `\.go$`

// GitRunner runs git with args in dir and returns its standard output.
type GitRunner func(ctx context.Context, dir string, args ...string) ([]byte, error)

// Diff enumerates files changed between two git revisions, keeping only the
// added lines of each file.
//
// With an empty Target the diff is taken between Base and the index (the
// staged changes), which is what a pre-commit hook sees. Base defaults to
// HEAD. Deleted files are skipped. File paths are joined onto the repository
// root, since git prints them relative to it.
type Diff struct {
	// Runner executes git. Defaults to [ExecGit].
	Runner GitRunner
	// Root is the repository root. Defaults to the top level of the
	// repository containing the working directory.
	Root string
	// Base is the baseline revision. Defaults to HEAD.
	Base string
	// Target is the revision compared against Base. Empty means the index.
	Target string
	// PathPattern filters changed paths. Defaults to [DefaultPathPattern].
	PathPattern string
}

// Files runs git diff and returns the added lines per changed file.
func (d Diff) Files(ctx context.Context) ([]File, error) {
	pattern := d.PathPattern
	if pattern == "" {
		pattern = DefaultPathPattern
	}

	pathRe, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, pattern, err)
	}

	runner := d.Runner
	if runner == nil {
		runner = ExecGit
	}

	root := d.Root
	if root == "" {
		root, err = topLevel(ctx, runner)
		if err != nil {
			return nil, err
		}
	}

	out, err := runner(ctx, root, d.args()...)
	if err != nil {
		return nil, err
	}

	return parseDiff(out, root, pathRe)
}

func (d Diff) args() []string {
	base := d.Base
	if base == "" {
		base = "HEAD"
	}

	args := []string{
		"diff", "--unified=0", "--no-color", "--no-ext-diff",
		"--src-prefix=a/", "--dst-prefix=b/",
	}
	if d.Target == "" {
		return append(args, "--cached", base)
	}

	return append(args, base, d.Target)
}

func topLevel(ctx context.Context, runner GitRunner) (string, error) {
	out, err := runner(ctx, ".", "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}

	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", fmt.Errorf("%w: empty repository top level", ErrGitDiff)
	}

	return root, nil
}

func parseDiff(out []byte, root string, pathRe *regexp.Regexp) ([]File, error) {
	fileDiffs, err := diff.ParseMultiFileDiff(out)
	if err != nil {
		return nil, fmt.Errorf("%w: parse: %w", ErrGitDiff, err)
	}

	var files []File

	for _, fd := range fileDiffs {
		if fd.NewName == "" || fd.NewName == "/dev/null" {
			continue
		}

		name := strings.TrimPrefix(fd.NewName, "b/")
		if !pathRe.MatchString(name) {
			continue
		}

		files = append(files, File{
			Path:  filepath.Join(root, filepath.FromSlash(name)),
			Lines: addedLines(fd.Hunks),
		})
	}

	return files, nil
}

func addedLines(hunks []*diff.Hunk) []string {
	var lines []string

	for _, h := range hunks {
		for line := range strings.SplitSeq(string(h.Body), "\n") {
			if added, ok := strings.CutPrefix(line, "+"); ok {
				lines = append(lines, added)
			}
		}
	}

	return lines
}

// ExecGit runs the git binary found in PATH.
func ExecGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%w: git %s: %w: %s",
			ErrGitDiff, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}

	return out, nil
}
