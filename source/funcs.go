package source

import (
	"fmt"
	"regexp"
)

// DefaultNamePattern matches any function name.
const DefaultNamePattern = `\w+`

var funcDecl = regexp.MustCompile(`\bfunc\s+(?:\([^)]*\)\s*)?(?P<name>\w+)\s*[\[(]`)

// FuncPattern selects function declarations by name.
//
// Create instances with [CompileFuncPattern].
type FuncPattern struct {
	name *regexp.Regexp
}

// CompileFuncPattern builds a [FuncPattern] for Go function and method
// declarations whose whole name matches namePattern. An empty namePattern
// matches every function.
func CompileFuncPattern(namePattern string) (*FuncPattern, error) {
	if namePattern == "" {
		namePattern = DefaultNamePattern
	}

	re, err := regexp.Compile(`^(?:` + namePattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, namePattern, err)
	}

	return &FuncPattern{name: re}, nil
}

// MatchName reports whether name is selected by the pattern.
func (p *FuncPattern) MatchName(name string) bool {
	return p.name.MatchString(name)
}

// String returns the anchored name expression.
func (p *FuncPattern) String() string {
	return p.name.String()
}

// FuncNames returns the names of functions declared in lines that match p.
// Names are unique and in order of first appearance.
func FuncNames(lines []string, p *FuncPattern) []string {
	idx := funcDecl.SubexpIndex("name")

	var (
		names []string
		seen  = map[string]bool{}
	)

	for _, line := range lines {
		m := funcDecl.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		name := m[idx]
		if seen[name] || !p.MatchName(name) {
			continue
		}

		seen[name] = true
		names = append(names, name)
	}

	return names
}
