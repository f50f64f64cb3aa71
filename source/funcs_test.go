package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/docschema/source"
)

func TestFuncNames(t *testing.T) {
	t.Parallel()

	lines := []string{
		"package sample",
		"func TestA(t *testing.T) {",
		"\tfunc() {}()",
		"}",
		"func (s *Suite) TestB() {",
		"func (s *Suite[T]) TestC() {",
		"func helper() {}",
		"func Map[K comparable, V any](m map[K]V) {}",
		"func TestA(t *testing.T) {",
		"// func TestInComment(t *testing.T) {",
		"var funcs = 1",
		"x := myfunc TestNot() {",
		"func TestMulti(t *testing.T) (int, error) {",
		"func TestGeneric[T any](t *testing.T) {",
		"func TestCallback(t *testing.T, f func()) {",
	}

	tcs := map[string]struct {
		pattern string
		want    []string
	}{
		"all functions": {
			pattern: "",
			want: []string{
				"TestA", "TestB", "TestC", "helper", "Map", "TestInComment",
				"TestMulti", "TestGeneric", "TestCallback",
			},
		},
		"test functions": {
			pattern: `Test\w+`,
			want: []string{
				"TestA", "TestB", "TestC", "TestInComment",
				"TestMulti", "TestGeneric", "TestCallback",
			},
		},
		"greedy pattern stops at the identifier": {
			pattern: `Test.*`,
			want: []string{
				"TestA", "TestB", "TestC", "TestInComment",
				"TestMulti", "TestGeneric", "TestCallback",
			},
		},
		"prefix alternation is anchored": {
			pattern: `Test(Multi|Generic)`,
			want:    []string{"TestMulti", "TestGeneric"},
		},
		"whole name only": {
			pattern: "Test",
			want:    nil,
		},
		"alternation": {
			pattern: "TestA|helper",
			want:    []string{"TestA", "helper"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p, err := source.CompileFuncPattern(tc.pattern)
			require.NoError(t, err)
			assert.Equal(t, tc.want, source.FuncNames(lines, p))
		})
	}
}

func TestCompileFuncPatternInvalid(t *testing.T) {
	t.Parallel()

	_, err := source.CompileFuncPattern(`Test(`)
	require.ErrorIs(t, err, source.ErrInvalidPattern)
}

func TestFuncPatternMatchName(t *testing.T) {
	t.Parallel()

	p, err := source.CompileFuncPattern(`Test|Bench`)
	require.NoError(t, err)

	assert.Equal(t, `^(?:Test|Bench)$`, p.String())
	assert.True(t, p.MatchName("Bench"))
	assert.False(t, p.MatchName("TestX"))
	assert.False(t, p.MatchName("XBench"))
}
