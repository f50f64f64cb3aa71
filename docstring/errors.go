package docstring

// Code identifies a class of validation finding.
//
// Codes are grouped by range: 1xx for missing content, 11x for ordered list
// formatting, 12x for unordered list formatting, 21x for section occurrence
// and 30x for the doc comment as a whole.
type Code string

const (
	// CodeMissingContent is reported for a chunk with no lines.
	CodeMissingContent Code = "E100"

	// CodeOrderedMissing is reported when an ordered list has no items.
	CodeOrderedMissing Code = "E111"
	// CodeOrderedFirst is reported when an ordered list does not start at 1.
	CodeOrderedFirst Code = "E112"
	// CodeOrderedNumbering is reported for gaps or duplicates in numbering.
	CodeOrderedNumbering Code = "E113"

	// CodeUnorderedMissing is reported when an unordered list has no items.
	CodeUnorderedMissing Code = "E121"
	// CodeUnorderedFirst is reported when the first item has no dash.
	CodeUnorderedFirst Code = "E122"
	// CodeUnorderedDash is reported when an item does not start with "- ".
	CodeUnorderedDash Code = "E123"

	// CodeSectionMissing is reported when a required section is absent.
	CodeSectionMissing Code = "E211"
	// CodeSectionTooMany is reported when a section exceeds its maximum.
	CodeSectionTooMany Code = "E212"
	// CodeSectionTooFew is reported when a section is below its minimum.
	CodeSectionTooFew Code = "E213"

	// CodeEmptyDocstring is reported when the doc comment is absent or empty.
	CodeEmptyDocstring Code = "E300"
)

// ValidationError is a single finding produced by validation.
//
// It implements error so it can be logged or wrapped, but validation never
// returns it through an error result.
type ValidationError struct {
	Code    Code   `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Error returns the code followed by the message.
func (e ValidationError) Error() string {
	return string(e.Code) + " " + e.Message
}

func newError(code Code, message string) ValidationError {
	return ValidationError{Code: code, Message: message}
}
