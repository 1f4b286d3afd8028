package route

import "fmt"

// Result is the outcome of matching one argument vector. The set of
// implementations is closed; callers type-switch over the four variants.
type Result interface {
	String() string

	result()
}

var (
	_ Result = (*Matched)(nil)
	_ Result = (*NoMatch)(nil)
	_ Result = (*ConversionFailed)(nil)
	_ Result = (*MissingRequiredOption)(nil)
)

// Matched is a successful match: the winning entry and the typed values
// bound from the argument vector. Flags always appear in Values (false
// when absent); absent optional parameters are omitted.
type Matched struct {
	Entry  Entry
	Values map[string]any
}

func (m *Matched) result() {}
func (m *Matched) String() string {
	return fmt.Sprintf("matched %q", m.Entry.Pattern.Source())
}

// NoMatch means no route survived binding. Suggestions holds near-miss
// route words for "did you mean" output, best first.
type NoMatch struct {
	Suggestions []string
}

func (m *NoMatch) result()        {}
func (m *NoMatch) String() string { return "no matching route" }

// ConversionFailed means the best-matching route was found but one bound
// value failed type conversion. The matcher does not fall through to a
// lower-ranked route: the error is reported against the shape that won.
type ConversionFailed struct {
	Parameter    string
	Raw          string
	ExpectedType string
	Err          error
}

func (m *ConversionFailed) result() {}
func (m *ConversionFailed) String() string {
	return fmt.Sprintf("parameter %q: %q is not a valid %s", m.Parameter, m.Raw, m.ExpectedType)
}

// MissingRequiredOption means at least one route bound every positional
// token but lacked a required option, and nothing else matched. Option is
// the display name ("--name" or "-n") from the most specific such route.
type MissingRequiredOption struct {
	Option  string
	Pattern string
}

func (m *MissingRequiredOption) result() {}
func (m *MissingRequiredOption) String() string {
	return fmt.Sprintf("required option %s is missing", m.Option)
}
