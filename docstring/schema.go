package docstring

import (
	"fmt"
	"math"
	"strconv"
)

// Unbounded is the [Occurrence.Max] of a section that may repeat without
// limit.
const Unbounded = math.MaxInt

// Occurrence is an inclusive range of allowed section counts.
type Occurrence struct {
	Min int
	Max int
}

// String formats the range as "[min, max]", using "inf" for [Unbounded].
func (o Occurrence) String() string {
	return fmt.Sprintf("[%d, %s]", o.Min, formatCount(o.Max))
}

// Rule pairs a section kind with its allowed occurrence.
type Rule struct {
	Kind       Kind
	Occurrence Occurrence
}

// Schema lists occurrence rules in the order they are checked.
type Schema []Rule

// DefaultSchema is the schema applied by [Docstring.Validate]: Description
// [1, inf], Test Steps, Pass Criteria and Fail Criteria [1, 1], References
// [0, 1].
var DefaultSchema = defaultSchema()

func defaultSchema() Schema {
	all := Kinds()

	schema := make(Schema, 0, len(all))
	for _, k := range all {
		schema = append(schema, Rule{Kind: k, Occurrence: kinds[k].occurrence})
	}

	return schema
}

// ValidateOccurrences counts chunks per kind and checks the counts against
// schema. Each rule contributes at most one error: a missing required section
// is reported as [CodeSectionMissing] and suppresses the range checks.
func ValidateOccurrences(chunks []Chunk, schema Schema) []ValidationError {
	counts := make(map[Kind]int, len(schema))
	for _, c := range chunks {
		counts[c.Kind()]++
	}

	var errs []ValidationError

	for _, rule := range schema {
		count := counts[rule.Kind]
		section := rule.Kind.String()

		switch {
		case rule.Occurrence.Min > 0 && count == 0:
			errs = append(errs, newError(CodeSectionMissing, section+" section is missing"))
		case count > rule.Occurrence.Max:
			errs = append(errs, newError(CodeSectionTooMany, fmt.Sprintf(
				"Detected %s section %d time(s), max allowed is %s",
				section, count, formatCount(rule.Occurrence.Max))))
		case count < rule.Occurrence.Min:
			errs = append(errs, newError(CodeSectionTooFew, fmt.Sprintf(
				"Detected %s section %d time(s), min allowed is %d",
				section, count, rule.Occurrence.Min)))
		}
	}

	return errs
}

func formatCount(n int) string {
	if n == Unbounded {
		return "inf"
	}

	return strconv.Itoa(n)
}
