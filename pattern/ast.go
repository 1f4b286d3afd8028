package pattern

import (
	"fmt"
	"strings"
)

// SegmentKind defines the closed set of segment variants.
type SegmentKind int

const (
	KindLiteral SegmentKind = iota
	KindParameter
	KindOption
	KindEndOfOptions
)

// Segment is one syntactic unit of a pattern. The set of implementations
// is closed: every consumer (validator, matcher, ranking) type-switches
// over the variants and a new variant will not compile past them silently.
type Segment interface {
	Kind() SegmentKind
	Position() int // where the segment starts in the pattern text
	String() string

	sealed()
}

var (
	_ Segment = (*LiteralSegment)(nil)
	_ Segment = (*ParameterSegment)(nil)
	_ Segment = (*OptionSegment)(nil)
	_ Segment = (*EndOfOptionsMarker)(nil)
)

// LiteralSegment matches exactly one argument, case-sensitively.
type LiteralSegment struct {
	Text string
	pos  int
}

func (s *LiteralSegment) Kind() SegmentKind { return KindLiteral }
func (s *LiteralSegment) Position() int     { return s.pos }
func (s *LiteralSegment) String() string    { return s.Text }
func (s *LiteralSegment) sealed()           {}

// ParameterSegment binds one or more positional arguments to a name.
type ParameterSegment struct {
	Name           string
	TypeConstraint string // empty means untyped (string)
	Optional       bool
	CatchAll       bool
	Repeated       bool
	pos            int
}

func (s *ParameterSegment) Kind() SegmentKind { return KindParameter }
func (s *ParameterSegment) Position() int     { return s.pos }
func (s *ParameterSegment) sealed()           {}

func (s *ParameterSegment) String() string {
	var b strings.Builder
	b.WriteByte('{')
	if s.CatchAll {
		b.WriteByte('*')
	}
	b.WriteString(s.Name)
	if s.TypeConstraint != "" {
		b.WriteByte(':')
		b.WriteString(s.TypeConstraint)
	}
	if s.Optional {
		b.WriteByte('?')
	}
	if s.Repeated {
		b.WriteByte('*')
	}
	b.WriteByte('}')
	return b.String()
}

// variadic reports whether the parameter can bind a variable number of
// tokens, which is what makes two adjacent ones ambiguous.
func (s *ParameterSegment) variadic() bool {
	return s.Optional || s.Repeated || s.CatchAll
}

// OptionSegment declares a named option. At least one of LongName and
// ShortName is set. A non-nil Value makes the option value-bearing and,
// unless the value parameter is optional, required for the route to match;
// a nil Value makes it a boolean flag that binds present/absent.
type OptionSegment struct {
	LongName  string
	ShortName string
	Value     *ParameterSegment
	pos       int
}

func (s *OptionSegment) Kind() SegmentKind { return KindOption }
func (s *OptionSegment) Position() int     { return s.pos }
func (s *OptionSegment) sealed()           {}

func (s *OptionSegment) String() string {
	var b strings.Builder
	if s.LongName != "" {
		b.WriteString("--")
		b.WriteString(s.LongName)
	} else {
		b.WriteByte('-')
		b.WriteString(s.ShortName)
	}
	if s.Value != nil {
		b.WriteString(s.Value.String())
	}
	return b.String()
}

// DisplayName returns the name used in diagnostics and match results,
// preferring the long form.
func (s *OptionSegment) DisplayName() string {
	if s.LongName != "" {
		return "--" + s.LongName
	}
	return "-" + s.ShortName
}

// BindName returns the key a boolean flag binds under in the match
// values: the long name when declared, otherwise the short one.
func (s *OptionSegment) BindName() string {
	if s.LongName != "" {
		return s.LongName
	}
	return s.ShortName
}

// Required reports whether the option must be present for a candidate
// route to survive. Flags are never required; value options are required
// unless the value parameter carries the '?' modifier.
func (s *OptionSegment) Required() bool {
	return s.Value != nil && !s.Value.Optional
}

// Repeated reports whether every occurrence is collected into a list.
func (s *OptionSegment) Repeated() bool {
	return s.Value != nil && s.Value.Repeated
}

// EndOfOptionsMarker is the literal "--" in a pattern. Everything to its
// right is positional, and at match time every argument after a bare "--"
// is positional for this route. It binds nothing itself.
type EndOfOptionsMarker struct {
	pos int
}

func (s *EndOfOptionsMarker) Kind() SegmentKind { return KindEndOfOptions }
func (s *EndOfOptionsMarker) Position() int     { return s.pos }
func (s *EndOfOptionsMarker) String() string    { return "--" }
func (s *EndOfOptionsMarker) sealed()           {}

// FormatSegments renders a segment list for debugging and the explain
// command output.
func FormatSegments(segs []Segment) string {
	parts := make([]string, 0, len(segs))
	for _, s := range segs {
		parts = append(parts, fmt.Sprintf("%s@%d", s.String(), s.Position()))
	}
	return strings.Join(parts, " ")
}
