// Package report collects validation results per file and function and
// renders them for humans or machines.
//
// Text output has one line per finding:
//
//	<file>:<function>:<line>: <code> <message>
//
// [Writer] also encodes a [Report] as JSON or YAML; [Schema] describes that
// encoding as a JSON Schema.
package report

import (
	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/docschema/docstring"
)

// Function holds the findings for one function.
type Function struct {
	Name    string                      `json:"name"    yaml:"name"    jsonschema:"function name, or Recv.Name for methods"`
	Errors  []docstring.ValidationError `json:"errors"  yaml:"errors"  jsonschema:"findings in report order"`
	Line    int                         `json:"line"    yaml:"line"    jsonschema:"line of the func keyword"`
	EndLine int                         `json:"endLine" yaml:"endLine" jsonschema:"line of the closing brace"`
}

// File holds the functions with findings in one source file.
type File struct {
	Path      string     `json:"path"      yaml:"path"      jsonschema:"source file path"`
	Functions []Function `json:"functions" yaml:"functions" jsonschema:"functions with findings"`
}

// Report is an ordered mapping from file to function to findings.
type Report struct {
	Files []File `json:"files" yaml:"files" jsonschema:"files with findings"`
}

// Add records fn under path. Functions without errors are ignored. Files
// keep the order in which they were first added.
func (r *Report) Add(path string, fn Function) {
	if len(fn.Errors) == 0 {
		return
	}

	for i := range r.Files {
		if r.Files[i].Path == path {
			r.Files[i].Functions = append(r.Files[i].Functions, fn)
			return
		}
	}

	r.Files = append(r.Files, File{Path: path, Functions: []Function{fn}})
}

// Count returns the total number of findings.
func (r *Report) Count() int {
	n := 0

	for _, f := range r.Files {
		for _, fn := range f.Functions {
			n += len(fn.Errors)
		}
	}

	return n
}

// Empty reports whether there are no findings.
func (r *Report) Empty() bool {
	return r.Count() == 0
}

// Schema returns the JSON Schema of the JSON and YAML encodings of a
// [Report].
func Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[Report](nil)
	if err != nil {
		return nil, err
	}

	schema.Schema = "https://json-schema.org/draft/2020-12/schema"
	schema.Title = "docschema report"

	return schema, nil
}
