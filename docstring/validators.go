package docstring

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	orderedItem   = regexp.MustCompile(`^\s*\d+\.\s`)
	orderedFirst  = regexp.MustCompile(`^\s*1\.\s`)
	unorderedItem = regexp.MustCompile(`^\s*-\s`)
)

// ValidateOrderedList checks that lines form a header followed by a list
// numbered 1, 2, 3 and so on. Lines without a number marker continue the
// previous item.
func ValidateOrderedList(lines []string, label string) (ValidationError, bool) {
	if len(lines) < 2 {
		return newError(CodeOrderedMissing, label+" list elements are missing"), true
	}

	items := mergeItems(lines[1:], orderedItem)
	if !orderedFirst.MatchString(items[0]) {
		return newError(CodeOrderedFirst, label+" first element in a list should start with 1."), true
	}

	for i, item := range items {
		if !strings.HasPrefix(strings.TrimSpace(item), strconv.Itoa(i+1)+". ") {
			return newError(CodeOrderedNumbering, label+" list elements have wrong numbering"), true
		}
	}

	return ValidationError{}, false
}

// ValidateUnorderedList checks that lines form a header followed by a list of
// items starting with "- ". Lines without a dash continue the previous item.
func ValidateUnorderedList(lines []string, label string) (ValidationError, bool) {
	if len(lines) < 2 {
		return newError(CodeUnorderedMissing, label+" list elements are missing"), true
	}

	items := mergeItems(lines[1:], unorderedItem)
	if !strings.HasPrefix(strings.TrimSpace(items[0]), "-") {
		return newError(CodeUnorderedFirst, label+" first element in a list should start with -"), true
	}

	for _, item := range items {
		if !strings.HasPrefix(strings.TrimSpace(item), "- ") {
			return newError(CodeUnorderedDash, label+" list elements should start with a dash ('-')"), true
		}
	}

	return ValidationError{}, false
}

// ValidateParagraph accepts any free text.
func ValidateParagraph(_ []string, _ string) (ValidationError, bool) {
	return ValidationError{}, false
}

// mergeItems joins wrapped list lines into whole items. The first line always
// starts an item; later lines start a new item only when they match marker.
func mergeItems(lines []string, marker *regexp.Regexp) []string {
	items := make([]string, 0, len(lines))
	items = append(items, lines[0])

	for _, line := range lines[1:] {
		if marker.MatchString(line) {
			items = append(items, line)
			continue
		}

		items[len(items)-1] += " " + line
	}

	return items
}
