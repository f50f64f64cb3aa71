package docstring

import (
	"slices"
	"strings"
)

// Docstring is a parsed doc comment: its sections in document order.
//
// Create instances with [Parse].
type Docstring struct {
	chunks []Chunk
}

// Parse splits raw comment text into paragraphs and classifies each one.
// An empty or blank comment yields a Docstring with no chunks.
func Parse(raw string) *Docstring {
	paragraphs := SplitParagraphs(raw)

	chunks := make([]Chunk, 0, len(paragraphs))
	for _, p := range paragraphs {
		chunks = append(chunks, NewChunk(p))
	}

	return &Docstring{chunks: chunks}
}

// Chunks returns a copy of the sections in document order.
func (d *Docstring) Chunks() []Chunk {
	return slices.Clone(d.chunks)
}

// Empty reports whether the doc comment had no content.
func (d *Docstring) Empty() bool {
	return len(d.chunks) == 0
}

// Validate checks the doc comment against [DefaultSchema] and each section's
// formatting rules.
func (d *Docstring) Validate() []ValidationError {
	return d.ValidateWith(DefaultSchema)
}

// ValidateWith checks the doc comment against schema and each section's
// formatting rules. Occurrence errors come first, followed by section errors
// in document order. An empty doc comment yields only [CodeEmptyDocstring].
func (d *Docstring) ValidateWith(schema Schema) []ValidationError {
	if d.Empty() {
		return []ValidationError{newError(CodeEmptyDocstring, "Missing/Empty docstring")}
	}

	errs := ValidateOccurrences(d.chunks, schema)
	for _, c := range d.chunks {
		errs = append(errs, c.Validate()...)
	}

	return errs
}

// SplitParagraphs splits text on runs of blank lines. Lines are trimmed and
// whitespace-only lines act as separators, so no paragraph is empty.
func SplitParagraphs(raw string) [][]string {
	var (
		paragraphs [][]string
		current    []string
	)

	for line := range strings.SplitSeq(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(current) > 0 {
				paragraphs = append(paragraphs, current)
				current = nil
			}

			continue
		}

		current = append(current, line)
	}

	if len(current) > 0 {
		paragraphs = append(paragraphs, current)
	}

	return paragraphs
}
