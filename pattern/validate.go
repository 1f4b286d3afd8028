package pattern

// Validate walks a parsed segment list, enforces the structural invariants
// the parser deliberately leaves alone, and on success freezes the result
// into a Compiled pattern. All violations are collected, not just the
// first, so a broken pattern is reported in full at start-up.
func Validate(source string, segs []Segment, types TypeSet) (*Compiled, []Diagnostic) {
	var diags []Diagnostic
	var positionals []Segment
	var options []*OptionSegment
	hasMarker := false

	seen := make(map[string]int) // bound name -> position of first declaration

	claimName := func(name string, pos int) {
		if first, ok := seen[name]; ok {
			diags = append(diags, diag(CodeDuplicateName, pos,
				"name %q already declared at offset %d", name, first))
			return
		}
		seen[name] = pos
	}

	checkType := func(p *ParameterSegment) {
		if p.TypeConstraint == "" {
			return
		}
		if types == nil || !types.Has(p.TypeConstraint) {
			diags = append(diags, diag(CodeUnknownType, p.Position(),
				"no converter registered for type %q", p.TypeConstraint))
		}
	}

	for _, seg := range segs {
		switch s := seg.(type) {
		case *LiteralSegment:
			positionals = append(positionals, s)

		case *ParameterSegment:
			if s.CatchAll && s.Repeated {
				diags = append(diags, diag(CodeInvalidModifier, s.Position(),
					"parameter %q cannot be both catch-all and repeated", s.Name))
			}
			claimName(s.Name, s.Position())
			checkType(s)
			positionals = append(positionals, s)

		case *OptionSegment:
			if s.LongName != "" {
				claimName("--"+s.LongName, s.Position())
			}
			if s.ShortName != "" {
				claimName("-"+s.ShortName, s.Position())
			}
			if v := s.Value; v != nil {
				if v.CatchAll {
					diags = append(diags, diag(CodeInvalidModifier, v.Position(),
						"option value %q cannot be a catch-all", v.Name))
				}
				claimName(v.Name, v.Position())
				checkType(v)
			} else {
				// a flag binds true/false under its bare name, so it
				// shares the value namespace with parameters
				claimName(s.BindName(), s.Position())
			}
			options = append(options, s)

		case *EndOfOptionsMarker:
			hasMarker = true
		}
	}

	diags = append(diags, checkPositionals(positionals)...)

	if len(diags) > 0 {
		return nil, diags
	}

	return &Compiled{
		source:      source,
		positionals: positionals,
		options:     options,
		hasMarker:   hasMarker,
		score:       scoreOf(positionals, options),
	}, nil
}

// checkPositionals enforces the two ordering invariants: a catch-all must
// be the last positional segment, and two adjacent variable-length
// parameters with no literal between them are rejected outright — at match
// time such a run admits multiple legal bindings and there is no principled
// way to prefer one.
func checkPositionals(positionals []Segment) []Diagnostic {
	var diags []Diagnostic
	var prevParam *ParameterSegment

	for i, seg := range positionals {
		p, ok := seg.(*ParameterSegment)
		if !ok {
			prevParam = nil
			continue
		}
		if p.CatchAll && i != len(positionals)-1 {
			diags = append(diags, diag(CodeCatchAllNotLast, p.Position(),
				"catch-all %q must be the last positional segment", p.Name))
		}
		if prevParam != nil && prevParam.variadic() && p.variadic() {
			diags = append(diags, diag(CodeAdjacentVariadic, p.Position(),
				"%q next to %q is ambiguous; separate them with a literal",
				p.Name, prevParam.Name))
		}
		prevParam = p
	}
	return diags
}

func scoreOf(positionals []Segment, options []*OptionSegment) Specificity {
	var score Specificity
	score.Options = len(options)
	for _, seg := range positionals {
		switch s := seg.(type) {
		case *LiteralSegment:
			score.Literals++
		case *ParameterSegment:
			if s.CatchAll {
				score.CatchAll = true
			} else if s.TypeConstraint != "" {
				score.TypedParams++
			}
		}
	}
	return score
}
