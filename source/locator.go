package source

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"sync"
)

// FuncDoc is the doc comment and position of one function declaration.
type FuncDoc struct {
	// Name is the function or method name.
	Name string
	// Recv is the receiver type of a method, e.g. "*Suite". Empty for
	// functions.
	Recv string
	// Doc is the comment text with comment markers and directives removed.
	Doc string
	// HasDoc is false when the declaration has no doc comment at all.
	HasDoc bool
	// Line is the line of the func keyword.
	Line int
	// EndLine is the line of the closing brace.
	EndLine int
}

// QualifiedName returns the name as go doc prints it: "Name" for functions,
// "Suite.Name" or "(*Suite).Name" for methods.
func (d FuncDoc) QualifiedName() string {
	switch {
	case d.Recv == "":
		return d.Name
	case d.Recv[0] == '*':
		return "(" + d.Recv + ")." + d.Name
	}

	return d.Recv + "." + d.Name
}

// Locator resolves a function name in a file to the doc comments of every
// declaration with that name.
type Locator interface {
	Locate(path, name string) ([]FuncDoc, error)
}

// GoLocator locates top-level function and method declarations in Go files.
// Parsed files are cached by path. Safe for concurrent use.
//
// Create instances with [NewGoLocator].
type GoLocator struct {
	files map[string]*parsedFile
	mu    sync.Mutex
}

type parsedFile struct {
	fset *token.FileSet
	file *ast.File
	err  error
	once sync.Once
}

// NewGoLocator creates an empty [GoLocator].
func NewGoLocator() *GoLocator {
	return &GoLocator{files: map[string]*parsedFile{}}
}

// Locate returns every top-level declaration named name in the file at
// path, in source order. Methods on different receivers that share a name
// are all returned. It returns [ErrFuncNotFound] when no declaration matches.
func (l *GoLocator) Locate(path, name string) ([]FuncDoc, error) {
	pf := l.parsed(path)
	if pf.err != nil {
		return nil, pf.err
	}

	var docs []FuncDoc

	for _, decl := range pf.file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Name.Name != name {
			continue
		}

		doc := FuncDoc{
			Name:    name,
			HasDoc:  fn.Doc != nil,
			Line:    pf.fset.Position(fn.Pos()).Line,
			EndLine: pf.fset.Position(fn.End()).Line,
		}
		if fn.Recv != nil && len(fn.Recv.List) > 0 {
			doc.Recv = types.ExprString(fn.Recv.List[0].Type)
		}

		if fn.Doc != nil {
			doc.Doc = fn.Doc.Text()
		}

		docs = append(docs, doc)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: %s in %s", ErrFuncNotFound, name, path)
	}

	return docs, nil
}

func (l *GoLocator) parsed(path string) *parsedFile {
	l.mu.Lock()

	pf, ok := l.files[path]
	if !ok {
		pf = &parsedFile{}
		l.files[path] = pf
	}

	l.mu.Unlock()

	pf.once.Do(func() {
		pf.fset = token.NewFileSet()

		f, err := parser.ParseFile(pf.fset, path, nil, parser.ParseComments|parser.SkipObjectResolution)
		if err != nil {
			pf.err = fmt.Errorf("%w: %w", ErrReadSource, err)
			return
		}

		pf.file = f
	})

	return pf
}
