package source_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/docschema/source"
	"go.jacobcolvin.com/docschema/stringtest"
)

var stagedDiff = stringtest.JoinLF(
	"diff --git a/pkg/a_test.go b/pkg/a_test.go",
	"index 1111111..2222222 100644",
	"--- a/pkg/a_test.go",
	"+++ b/pkg/a_test.go",
	"@@ -3,0 +4,3 @@ package pkg",
	"+// Summary.",
	"+func TestNew(t *testing.T) {",
	"+}",
	"@@ -9 +12 @@ func TestOld(t *testing.T) {",
	"-\told()",
	"+\tnew()",
	"diff --git a/old.go b/old.go",
	"deleted file mode 100644",
	"index 3333333..0000000",
	"--- a/old.go",
	"+++ /dev/null",
	"@@ -1,2 +0,0 @@",
	"-package old",
	"-",
	"diff --git a/README.md b/README.md",
	"index 4444444..5555555 100644",
	"--- a/README.md",
	"+++ b/README.md",
	"@@ -1,0 +2 @@",
	"+More docs.",
	"diff --git a/pkg/new_test.go b/pkg/new_test.go",
	"new file mode 100644",
	"index 0000000..6666666",
	"--- /dev/null",
	"+++ b/pkg/new_test.go",
	"@@ -0,0 +1,2 @@",
	"+package pkg",
	"+func TestAdded(t *testing.T) {}",
	"",
)

type recordingRunner struct {
	err  error
	dir  string
	args []string
	out  string
}

func (r *recordingRunner) run(_ context.Context, dir string, args ...string) ([]byte, error) {
	r.dir = dir
	r.args = args

	if r.err != nil {
		return nil, r.err
	}

	return []byte(r.out), nil
}

func TestDiffFiles(t *testing.T) {
	t.Parallel()

	runner := &recordingRunner{out: stagedDiff}
	d := source.Diff{Runner: runner.run, Root: "repo"}

	files, err := d.Files(t.Context())
	require.NoError(t, err)

	assert.Equal(t, "repo", runner.dir)
	assert.Equal(t, []source.File{
		{
			Path:  filepath.Join("repo", "pkg", "a_test.go"),
			Lines: []string{"// Summary.", "func TestNew(t *testing.T) {", "}", "\tnew()"},
		},
		{
			Path:  filepath.Join("repo", "pkg", "new_test.go"),
			Lines: []string{"package pkg", "func TestAdded(t *testing.T) {}"},
		},
	}, files)
}

func TestDiffArgs(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		diff source.Diff
		want []string
	}{
		"staged against head": {
			diff: source.Diff{Root: "repo"},
			want: []string{"diff", "--unified=0", "--no-color", "--no-ext-diff", "--src-prefix=a/", "--dst-prefix=b/", "--cached", "HEAD"},
		},
		"staged against base": {
			diff: source.Diff{Root: "repo", Base: "main"},
			want: []string{"diff", "--unified=0", "--no-color", "--no-ext-diff", "--src-prefix=a/", "--dst-prefix=b/", "--cached", "main"},
		},
		"between revisions": {
			diff: source.Diff{Root: "repo", Base: "origin/main", Target: "HEAD"},
			want: []string{"diff", "--unified=0", "--no-color", "--no-ext-diff", "--src-prefix=a/", "--dst-prefix=b/", "origin/main", "HEAD"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			runner := &recordingRunner{}
			tc.diff.Runner = runner.run

			files, err := tc.diff.Files(t.Context())
			require.NoError(t, err)
			assert.Empty(t, files)
			assert.Equal(t, "repo", runner.dir)
			assert.Equal(t, tc.want, runner.args)
		})
	}
}

func TestDiffPathPattern(t *testing.T) {
	t.Parallel()

	runner := &recordingRunner{out: stagedDiff}
	d := source.Diff{Runner: runner.run, Root: ".", PathPattern: `\.md$`}

	files, err := d.Files(t.Context())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "README.md", files[0].Path)
	assert.Equal(t, []string{"More docs."}, files[0].Lines)

	d.PathPattern = `(`
	_, err = d.Files(t.Context())
	require.ErrorIs(t, err, source.ErrInvalidPattern)
}

func TestDiffRunnerError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	runner := &recordingRunner{err: errBoom}

	_, err := source.Diff{Runner: runner.run}.Files(t.Context())
	require.ErrorIs(t, err, errBoom)
}

// scriptedRunner answers each git subcommand with a fixed output and records
// the directory each one ran in.
type scriptedRunner struct {
	out  map[string]string
	dirs map[string]string
	mu   sync.Mutex
}

func (r *scriptedRunner) run(_ context.Context, dir string, args ...string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.dirs == nil {
		r.dirs = map[string]string{}
	}

	r.dirs[args[0]] = dir

	return []byte(r.out[args[0]]), nil
}

func TestDiffTopLevel(t *testing.T) {
	t.Parallel()

	top := filepath.Join(string(filepath.Separator), "work", "repo")

	tcs := map[string]struct {
		err   error
		out   map[string]string
		paths []string
	}{
		"paths join onto repository root": {
			out: map[string]string{
				"rev-parse": top + "\n",
				"diff":      stagedDiff,
			},
			paths: []string{
				filepath.Join(top, "pkg", "a_test.go"),
				filepath.Join(top, "pkg", "new_test.go"),
			},
		},
		"empty top level": {
			out: map[string]string{"rev-parse": "\n"},
			err: source.ErrGitDiff,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			runner := &scriptedRunner{out: tc.out}

			files, err := source.Diff{Runner: runner.run}.Files(t.Context())
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, ".", runner.dirs["rev-parse"])
			assert.Equal(t, top, runner.dirs["diff"])

			var paths []string
			for _, f := range files {
				paths = append(paths, f.Path)
			}

			assert.Equal(t, tc.paths, paths)
		})
	}
}
