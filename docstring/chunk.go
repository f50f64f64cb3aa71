package docstring

import (
	"slices"
	"strings"
)

// Chunk is one classified section of a doc comment.
//
// Element 0 of its lines is the header used for classification. Create
// instances with [NewChunk].
type Chunk struct {
	lines []string
	kind  Kind
}

// Classify returns the section kind for a paragraph based on the text before
// the first colon of its first line. Unrecognized headers, and paragraphs
// without a colon, are descriptions.
func Classify(lines []string) Kind {
	if len(lines) == 0 {
		return KindDescription
	}

	header, _, _ := strings.Cut(lines[0], ":")
	if kind, ok := headers[header]; ok {
		return kind
	}

	return KindDescription
}

// NewChunk classifies a paragraph and builds the chunk for it. The lines are
// copied; references written in shorthand form are expanded into a list.
func NewChunk(lines []string) Chunk {
	kind := Classify(lines)

	content := slices.Clone(lines)
	if kind == KindReferences {
		content = expandReferences(content)
	}

	return Chunk{kind: kind, lines: content}
}

// Kind returns the section kind.
func (c Chunk) Kind() Kind {
	return c.kind
}

// Lines returns a copy of the section lines, header first.
func (c Chunk) Lines() []string {
	return slices.Clone(c.lines)
}

// Validate runs the formatting validator for the chunk's kind.
func (c Chunk) Validate() []ValidationError {
	if len(c.lines) == 0 {
		return []ValidationError{newError(CodeMissingContent, "No value for "+c.kind.String())}
	}

	verr, found := c.kind.Shape().Validator()(c.lines, c.kind.String())
	if !found {
		return nil
	}

	return []ValidationError{verr}
}

// expandReferences rewrites "Reference: A, B" into a header line followed by
// "- A" and "- B". Multi-line sections, and single lines with no entries
// after the colon, are returned unchanged.
func expandReferences(lines []string) []string {
	if len(lines) != 1 {
		return lines
	}

	header, rest, ok := strings.Cut(lines[0], ":")
	if !ok {
		return lines
	}

	expanded := []string{header}

	for entry := range strings.SplitSeq(rest, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		expanded = append(expanded, "- "+entry)
	}

	if len(expanded) == 1 {
		return lines
	}

	return expanded
}
