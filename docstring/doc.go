// Package docstring parses and validates structured function doc comments.
//
// A doc comment is split into paragraphs separated by blank lines. Each
// paragraph becomes a [Chunk] whose [Kind] is decided by its first line:
//
//	Test steps:     -> [KindTestSteps]     (ordered list)
//	Pass criteria:  -> [KindPassCriteria]  (unordered list)
//	Fail criteria:  -> [KindFailCriteria]  (unordered list)
//	Reference:      -> [KindReferences]    (unordered list)
//	anything else   -> [KindDescription]   (free text)
//
// Headers are matched case-sensitively against the text before the first
// colon. A single-line references paragraph such as "Reference: BUG1, BUG2"
// is expanded into a header and one list item per comma-separated entry.
//
// # Validation
//
// [Docstring.Validate] returns every finding as a [ValidationError] value;
// nothing in this package fails with a Go error. Findings are ordered as
// follows:
//
//  1. [CodeEmptyDocstring] alone, when the comment has no paragraphs.
//  2. Occurrence errors from [ValidateOccurrences], in [Schema] order.
//  3. Formatting errors from each chunk, in document order. Each chunk
//     reports at most one formatting error.
//
// The occurrence rules live in a [Schema] value. [DefaultSchema] requires at
// least one description, exactly one of each of test steps, pass criteria and
// fail criteria, and at most one references section.
//
// # Usage
//
//	doc := docstring.Parse(comment)
//	for _, verr := range doc.Validate() {
//	    fmt.Println(verr.Code, verr.Message)
//	}
//
// All types are immutable after construction and safe for concurrent use.
package docstring
