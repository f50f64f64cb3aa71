package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Tree enumerates Go files from a list of paths. Each path is either a file,
// used as-is, or a directory searched recursively for "*.go" files.
// Directories named vendor or testdata, and hidden directories, are skipped
// during the search.
type Tree struct {
	Paths []string
}

// Files reads every selected file. Results are deduplicated and sorted by
// path.
func (t Tree) Files(ctx context.Context) ([]File, error) {
	var paths []string

	for _, root := range t.Paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadSource, err)
		}

		if !info.IsDir() {
			paths = append(paths, filepath.Clean(root))
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			if d.IsDir() {
				if path != root && skipDir(d.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			if strings.HasSuffix(path, ".go") {
				paths = append(paths, path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%w: walk %s: %w", ErrReadSource, root, err)
		}
	}

	slices.Sort(paths)
	paths = slices.Compact(paths)

	files := make([]File, 0, len(paths))

	for _, path := range paths {
		src, err := os.ReadFile(path) //nolint:gosec // Paths come from CLI arguments.
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadSource, err)
		}

		files = append(files, File{
			Path:  path,
			Lines: strings.Split(string(src), "\n"),
		})
	}

	return files, nil
}

func skipDir(name string) bool {
	return name == "vendor" || name == "testdata" ||
		(strings.HasPrefix(name, ".") && name != "." && name != "..")
}
