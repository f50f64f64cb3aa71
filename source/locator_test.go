package source_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/docschema/source"
	"go.jacobcolvin.com/docschema/stringtest"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestGoLocatorLocate(t *testing.T) {
	t.Parallel()

	src := stringtest.GoFile("sample",
		`import "testing"`,
		stringtest.Comment(
			"Verify boot.",
			"",
			"Test steps:",
			" 1. Reset",
			"",
			"Pass criteria:",
			"  - Boots",
		)+"func TestBoot(t *testing.T) {\n\tt.Log(1)\n}",
		"func TestNoDoc(t *testing.T) {}",
		stringtest.Comment("Summary.")+"//nolint:paralleltest // Shares state.\nfunc TestDirective(t *testing.T) {}",
		"type suite struct{}",
		stringtest.Comment("Method summary.")+"func (s *suite) TestMethod() {}",
		"type other struct{}",
		stringtest.Comment("Other method.")+"func (other) TestMethod() {}",
	)
	path := writeFile(t, t.TempDir(), "sample_test.go", src)

	tcs := map[string]struct {
		name string
		want []source.FuncDoc
	}{
		"documented": {
			name: "TestBoot",
			want: []source.FuncDoc{{
				Name: "TestBoot",
				Doc: stringtest.JoinLF(
					"Verify boot.",
					"",
					"Test steps:",
					" 1. Reset",
					"",
					"Pass criteria:",
					"  - Boots",
					"",
				),
				HasDoc:  true,
				Line:    12,
				EndLine: 14,
			}},
		},
		"undocumented": {
			name: "TestNoDoc",
			want: []source.FuncDoc{{
				Name:    "TestNoDoc",
				Line:    16,
				EndLine: 16,
			}},
		},
		"directive removed": {
			name: "TestDirective",
			want: []source.FuncDoc{{
				Name:    "TestDirective",
				Doc:     "Summary.\n",
				HasDoc:  true,
				Line:    20,
				EndLine: 20,
			}},
		},
		"methods on every receiver": {
			name: "TestMethod",
			want: []source.FuncDoc{
				{
					Name:    "TestMethod",
					Recv:    "*suite",
					Doc:     "Method summary.\n",
					HasDoc:  true,
					Line:    25,
					EndLine: 25,
				},
				{
					Name:    "TestMethod",
					Recv:    "other",
					Doc:     "Other method.\n",
					HasDoc:  true,
					Line:    30,
					EndLine: 30,
				},
			},
		},
	}

	loc := source.NewGoLocator()

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := loc.Locate(path, tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGoLocatorErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeFile(t, dir, "good.go", stringtest.GoFile("good", "func A() {}"))
	bad := writeFile(t, dir, "bad.go", "package bad\nfunc {")

	loc := source.NewGoLocator()

	_, err := loc.Locate(good, "Missing")
	require.ErrorIs(t, err, source.ErrFuncNotFound)

	_, err = loc.Locate(bad, "A")
	require.ErrorIs(t, err, source.ErrReadSource)

	_, err = loc.Locate(filepath.Join(dir, "absent.go"), "A")
	require.ErrorIs(t, err, source.ErrReadSource)
}

func TestGoLocatorConcurrent(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "c.go", stringtest.GoFile("c",
		stringtest.Comment("A.")+"func A() {}",
		stringtest.Comment("B.")+"func B() {}",
	))

	loc := source.NewGoLocator()

	var wg sync.WaitGroup
	for i := range 16 {
		name := "A"
		if i%2 == 1 {
			name = "B"
		}

		wg.Go(func() {
			docs, err := loc.Locate(path, name)
			if assert.NoError(t, err) && assert.Len(t, docs, 1) {
				assert.Equal(t, name+".\n", docs[0].Doc)
			}
		})
	}

	wg.Wait()
}

func TestFuncDocQualifiedName(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		doc  source.FuncDoc
		want string
	}{
		"function":         {doc: source.FuncDoc{Name: "TestA"}, want: "TestA"},
		"value receiver":   {doc: source.FuncDoc{Name: "TestA", Recv: "suite"}, want: "suite.TestA"},
		"pointer receiver": {doc: source.FuncDoc{Name: "TestA", Recv: "*suite"}, want: "(*suite).TestA"},
		"generic receiver": {doc: source.FuncDoc{Name: "TestA", Recv: "*Suite[T]"}, want: "(*Suite[T]).TestA"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.doc.QualifiedName())
		})
	}
}
