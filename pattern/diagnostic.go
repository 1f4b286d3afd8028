package pattern

import "fmt"

// Diagnostic codes. Parse-level codes report syntax problems; the
// remaining codes are produced by Validate.
const (
	CodeEmptyParameter   = "empty-parameter"
	CodeUnclosedBrace    = "unclosed-brace"
	CodeUnexpectedToken  = "unexpected-token"
	CodeMissingType      = "missing-type-name"
	CodeDuplicateName    = "duplicate-name"
	CodeCatchAllNotLast  = "catch-all-not-last"
	CodeAdjacentVariadic = "adjacent-variadic-parameters"
	CodeInvalidModifier  = "invalid-modifier-combination"
	CodeUnknownType      = "unknown-type-constraint"
)

// Diagnostic reports one problem found in a pattern, with the byte offset
// into the pattern text where it was detected.
type Diagnostic struct {
	Code     string
	Message  string
	Position int
	Pattern  string // source text, set by Compile for rendering
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", d.Code, d.Position, d.Message)
}

func diag(code string, pos int, format string, args ...any) Diagnostic {
	return Diagnostic{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Position: pos,
	}
}
