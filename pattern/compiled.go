package pattern

import "fmt"

// TypeSet is the view of the conversion registry the validator needs:
// it only has to answer whether a constraint name is known, so misspelled
// constraints fail at start-up instead of on first matching input.
type TypeSet interface {
	Has(name string) bool
}

// Specificity ranks routes that structurally match the same argument
// vector. Fields are compared lexicographically, most significant first;
// ties after the full tuple fall back to table declaration order.
type Specificity struct {
	Literals    int  // literal segments, more is more specific
	TypedParams int  // typed non-catch-all positional parameters
	CatchAll    bool // absence ranks higher
	Options     int  // declared options
}

// Compare returns >0 if s is more specific than o, <0 if less, 0 on a tie.
func (s Specificity) Compare(o Specificity) int {
	if s.Literals != o.Literals {
		return s.Literals - o.Literals
	}
	if s.TypedParams != o.TypedParams {
		return s.TypedParams - o.TypedParams
	}
	if s.CatchAll != o.CatchAll {
		if s.CatchAll {
			return -1
		}
		return 1
	}
	return s.Options - o.Options
}

func (s Specificity) String() string {
	return fmt.Sprintf("(literals=%d typed=%d catchAll=%t options=%d)",
		s.Literals, s.TypedParams, s.CatchAll, s.Options)
}

// Compiled is the validated, immutable form of one pattern string. It is
// built once by Validate and never mutated afterwards, so a frozen route
// table can be read concurrently without synchronization.
type Compiled struct {
	source      string
	positionals []Segment // literals and parameters, declaration order
	options     []*OptionSegment
	hasMarker   bool
	score       Specificity
}

// Source returns the original pattern text, kept for diagnostics and help.
func (c *Compiled) Source() string { return c.source }

// HasEndOfOptions reports whether the pattern declares a "--" marker.
func (c *Compiled) HasEndOfOptions() bool { return c.hasMarker }

// Specificity returns the ranking score computed at validation time.
func (c *Compiled) Specificity() Specificity { return c.score }

// Positionals returns the ordered positional segments. The returned slice
// is a copy; the compiled pattern itself stays frozen.
func (c *Compiled) Positionals() []Segment {
	out := make([]Segment, len(c.positionals))
	copy(out, c.positionals)
	return out
}

// Options returns the declared options. The returned slice is a copy.
func (c *Compiled) Options() []*OptionSegment {
	out := make([]*OptionSegment, len(c.options))
	copy(out, c.options)
	return out
}

// Compile tokenizes, parses, and validates one pattern string. The
// returned diagnostics carry the pattern text for rendering; a non-empty
// diagnostic list means the pattern must not be used.
func Compile(source string, types TypeSet) (*Compiled, []Diagnostic) {
	segs, diags := Parse(Tokenize(source))
	if len(diags) == 0 {
		var compiled *Compiled
		compiled, diags = Validate(source, segs, types)
		if len(diags) == 0 {
			return compiled, nil
		}
	}
	for i := range diags {
		diags[i].Pattern = source
	}
	return nil, diags
}
