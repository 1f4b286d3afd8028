package route

import (
	"strings"

	"github.com/routekit/routekit/pattern"
)

// candidate is one route that survived binding, before conversion.
type candidate struct {
	entry   Entry
	params  []boundParam // positional bindings, declaration order
	options map[*pattern.OptionSegment]*occurrences
}

type boundParam struct {
	param  *pattern.ParameterSegment
	tokens []string
}

type occurrences struct {
	values []string // for value options, first-to-last appearance order
	count  int      // for flags
}

// Match evaluates one argument vector against the table. It is a pure
// function of (args, table): no state survives between calls, and
// candidates are always evaluated in declaration order.
func (t *Table) Match(args []string) Result {
	var best *candidate

	// the most specific route that bound every positional token but
	// lacked a required option; reported only if nothing else wins
	var missing *MissingRequiredOption
	var missingScore pattern.Specificity

	for _, entry := range t.entries {
		cand, miss := bindCandidate(entry, args)
		if miss != nil {
			score := entry.Pattern.Specificity()
			if missing == nil || score.Compare(missingScore) > 0 {
				missing, missingScore = miss, score
			}
			continue
		}
		if cand == nil {
			continue
		}
		if best == nil || cand.entry.Pattern.Specificity().Compare(best.entry.Pattern.Specificity()) > 0 {
			best = cand
		}
	}

	if best == nil {
		if missing != nil {
			return missing
		}
		return &NoMatch{Suggestions: t.suggestions(args)}
	}

	return t.convert(best)
}

// bindCandidate attempts to bind args against one route. It returns the
// candidate on success, a MissingRequiredOption when the positional shape
// matched but a required option was absent, or (nil, nil) on any other
// binding failure.
func bindCandidate(entry Entry, args []string) (*candidate, *MissingRequiredOption) {
	declared := entry.Pattern.Options()
	hasMarker := entry.Pattern.HasEndOfOptions()

	occ := make(map[*pattern.OptionSegment]*occurrences, len(declared))
	var positional []string
	afterMarker := false

	// Partition args into option and positional streams. The split is
	// per-candidate: only this route's marker declaration decides whether
	// "--" switches the rest to positional, and only this route's option
	// declarations decide whether a token after an option is its value.
	for i := 0; i < len(args); i++ {
		tok := args[i]

		if !afterMarker && hasMarker && tok == "--" {
			afterMarker = true
			continue
		}
		if afterMarker || !looksLikeOption(tok) {
			positional = append(positional, tok)
			continue
		}

		name, inline, hasInline := splitOptionToken(tok)
		opt := findOption(declared, name, strings.HasPrefix(tok, "--"))
		if opt == nil {
			// not an option this route declares; leave it to the
			// positional stream, which rejects routes that cannot
			// absorb it and lets a catch-all bind it verbatim
			positional = append(positional, tok)
			continue
		}
		o := occ[opt]
		if o == nil {
			o = &occurrences{}
			occ[opt] = o
		}
		if opt.Value == nil {
			if hasInline {
				return nil, nil // flag given a value
			}
			o.count++
			continue
		}
		value := inline
		if !hasInline {
			i++
			if i >= len(args) {
				return nil, nil // value option at end of args
			}
			value = args[i]
		}
		o.values = append(o.values, value)
		if !opt.Repeated() && len(o.values) > 1 {
			return nil, nil // duplicate non-repeated option, never "last wins"
		}
	}

	params, ok := bindPositionals(entry.Pattern.Positionals(), positional)
	if !ok {
		return nil, nil
	}

	for _, opt := range declared {
		if opt.Required() {
			if o := occ[opt]; o == nil || len(o.values) == 0 {
				return nil, &MissingRequiredOption{
					Option:  opt.DisplayName(),
					Pattern: entry.Pattern.Source(),
				}
			}
		}
	}

	return &candidate{entry: entry, params: params, options: occ}, nil
}

// bindPositionals binds positional tokens to segments left-to-right. The
// consumption rule is count-based: an optional parameter takes a token
// only if enough tokens remain for all later required segments, a repeated
// parameter takes as many as it can leave the rest their minimum, and a
// catch-all takes everything left.
func bindPositionals(segs []pattern.Segment, toks []string) ([]boundParam, bool) {
	// minimum token count each suffix of the segment list still needs
	minNeeded := make([]int, len(segs)+1)
	for i := len(segs) - 1; i >= 0; i-- {
		minNeeded[i] = minNeeded[i+1]
		switch s := segs[i].(type) {
		case *pattern.LiteralSegment:
			minNeeded[i]++
		case *pattern.ParameterSegment:
			if !s.CatchAll && !s.Optional {
				minNeeded[i]++ // required and repeated both need at least one
			}
		}
	}

	var bound []boundParam
	ti := 0
	for i, seg := range segs {
		remaining := len(toks) - ti
		switch s := seg.(type) {
		case *pattern.LiteralSegment:
			if remaining < 1 || toks[ti] != s.Text {
				return nil, false
			}
			ti++

		case *pattern.ParameterSegment:
			switch {
			case s.CatchAll:
				bound = append(bound, boundParam{param: s, tokens: toks[ti:]})
				ti = len(toks)

			case s.Repeated:
				take := remaining - minNeeded[i+1]
				if take < 1 {
					if s.Optional {
						continue
					}
					return nil, false
				}
				bound = append(bound, boundParam{param: s, tokens: toks[ti : ti+take]})
				ti += take

			case s.Optional:
				if remaining >= 1 && remaining-1 >= minNeeded[i+1] {
					bound = append(bound, boundParam{param: s, tokens: toks[ti : ti+1]})
					ti++
				}

			default:
				if remaining < 1 {
					return nil, false
				}
				bound = append(bound, boundParam{param: s, tokens: toks[ti : ti+1]})
				ti++
			}
		}
	}

	if ti != len(toks) {
		return nil, false // unconsumed tokens
	}
	return bound, true
}

// convert runs type conversion over the winning candidate's raw bindings.
// A failure is final: it names the parameter and raw value and does not
// fall through to a lower-ranked route.
func (t *Table) convert(c *candidate) Result {
	values := make(map[string]any)

	for _, b := range c.params {
		v, failed := t.convertParam(b.param, b.tokens)
		if failed != nil {
			return failed
		}
		values[b.param.Name] = v
	}

	for _, opt := range c.entry.Pattern.Options() {
		o := c.options[opt]
		if opt.Value == nil {
			values[opt.BindName()] = o != nil && o.count > 0
			continue
		}
		if o == nil || len(o.values) == 0 {
			continue // optional value option, absent
		}
		if opt.Repeated() {
			v, failed := t.convertParam(opt.Value, o.values)
			if failed != nil {
				return failed
			}
			values[opt.Value.Name] = v
		} else {
			v, failed := t.convertOne(opt.Value, o.values[0])
			if failed != nil {
				return failed
			}
			values[opt.Value.Name] = v
		}
	}

	return &Matched{Entry: c.entry, Values: values}
}

// convertParam converts a multi-token binding (catch-all, repeated
// parameter, repeated option). Untyped bindings stay []string; typed ones
// become []any in appearance order.
func (t *Table) convertParam(p *pattern.ParameterSegment, tokens []string) (any, *ConversionFailed) {
	if p.CatchAll || p.Repeated {
		if p.TypeConstraint == "" {
			return tokens, nil
		}
		out := make([]any, 0, len(tokens))
		for _, tok := range tokens {
			v, failed := t.convertOne(p, tok)
			if failed != nil {
				return nil, failed
			}
			out = append(out, v)
		}
		return out, nil
	}
	return t.convertOne(p, tokens[0])
}

func (t *Table) convertOne(p *pattern.ParameterSegment, raw string) (any, *ConversionFailed) {
	name := p.TypeConstraint
	if name == "" {
		return raw, nil
	}
	v, err := t.registry.Convert(name, raw)
	if err != nil {
		return nil, &ConversionFailed{
			Parameter:    p.Name,
			Raw:          raw,
			ExpectedType: name,
			Err:          err,
		}
	}
	return v, nil
}

// looksLikeOption reports whether an argument token is option-shaped. A
// bare "-" is positional by convention (commonly "stdin").
func looksLikeOption(tok string) bool {
	return len(tok) > 1 && tok[0] == '-'
}

// splitOptionToken strips the dash prefix and splits an inline
// "--name=value" form.
func splitOptionToken(tok string) (name, inline string, hasInline bool) {
	body := strings.TrimPrefix(tok, "-")
	body = strings.TrimPrefix(body, "-")
	if i := strings.IndexByte(body, '='); i >= 0 {
		return body[:i], body[i+1:], true
	}
	return body, "", false
}

func findOption(declared []*pattern.OptionSegment, name string, long bool) *pattern.OptionSegment {
	for _, opt := range declared {
		if long && opt.LongName == name {
			return opt
		}
		if !long && opt.ShortName == name {
			return opt
		}
	}
	return nil
}
