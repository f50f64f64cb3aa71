package docstring

// Kind is the section type of a [Chunk].
type Kind int

// Section kinds, in schema order.
const (
	KindDescription Kind = iota
	KindTestSteps
	KindPassCriteria
	KindFailCriteria
	KindReferences
)

// Shape is the content layout expected for a [Kind].
type Shape int

// Content shapes.
const (
	ShapeParagraph Shape = iota
	ShapeOrderedList
	ShapeUnorderedList
)

type kindInfo struct {
	name       string
	shape      Shape
	occurrence Occurrence
}

var kinds = [...]kindInfo{
	KindDescription:  {name: "Description", shape: ShapeParagraph, occurrence: Occurrence{Min: 1, Max: Unbounded}},
	KindTestSteps:    {name: "Test Steps", shape: ShapeOrderedList, occurrence: Occurrence{Min: 1, Max: 1}},
	KindPassCriteria: {name: "Pass Criteria", shape: ShapeUnorderedList, occurrence: Occurrence{Min: 1, Max: 1}},
	KindFailCriteria: {name: "Fail Criteria", shape: ShapeUnorderedList, occurrence: Occurrence{Min: 1, Max: 1}},
	KindReferences:   {name: "References", shape: ShapeUnorderedList, occurrence: Occurrence{Min: 0, Max: 1}},
}

// Validator checks the lines of one section, including its header line, and
// returns the first violation found. The label names the section in messages.
type Validator func(lines []string, label string) (ValidationError, bool)

var shapeValidators = [...]Validator{
	ShapeParagraph:     ValidateParagraph,
	ShapeOrderedList:   ValidateOrderedList,
	ShapeUnorderedList: ValidateUnorderedList,
}

// headers maps the text before the first colon of a paragraph to its kind.
// Unlisted headers are descriptions.
var headers = map[string]Kind{
	"Test steps":    KindTestSteps,
	"Pass criteria": KindPassCriteria,
	"Fail criteria": KindFailCriteria,
	"Reference":     KindReferences,
}

// Kinds returns all section kinds in schema order. [DefaultSchema] has one
// rule per kind, in this order.
func Kinds() []Kind {
	return []Kind{
		KindDescription,
		KindTestSteps,
		KindPassCriteria,
		KindFailCriteria,
		KindReferences,
	}
}

// String returns the display name of the kind, e.g. "Test Steps".
func (k Kind) String() string {
	if !k.valid() {
		return "Unknown"
	}

	return kinds[k].name
}

// Shape returns the content shape expected for the kind.
func (k Kind) Shape() Shape {
	if !k.valid() {
		return ShapeParagraph
	}

	return kinds[k].shape
}

func (k Kind) valid() bool {
	return k >= 0 && int(k) < len(kinds)
}

// String returns a lowercase name for the shape.
func (s Shape) String() string {
	switch s {
	case ShapeParagraph:
		return "paragraph"
	case ShapeOrderedList:
		return "ordered list"
	case ShapeUnorderedList:
		return "unordered list"
	}

	return "unknown"
}

// Validator returns the formatting validator for the shape.
func (s Shape) Validator() Validator {
	if s < 0 || int(s) >= len(shapeValidators) {
		return ValidateParagraph
	}

	return shapeValidators[s]
}
