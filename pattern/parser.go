package pattern

// Parser consumes tokens produced by the lexer and builds the segment
// list. It is a single-pass recursive descent with no backtracking: on a
// malformed parameter it records a diagnostic and resynchronizes at the
// next '}' or end of input, so one broken brace does not hide every
// problem after it. Semantic checks (duplicate names, catch-all placement,
// ambiguity) are not the parser's job; see Validate.
type Parser struct {
	tokens      []Token
	current     int
	afterMarker bool
	diags       []Diagnostic
}

// NewParser creates a new Parser instance over a token stream.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse processes a token stream in one call.
func Parse(tokens []Token) ([]Segment, []Diagnostic) {
	return NewParser(tokens).Parse()
}

// Parse processes all tokens and returns the segments alongside every
// syntax diagnostic collected.
func (p *Parser) Parse() ([]Segment, []Diagnostic) {
	var segments []Segment

	for p.current < len(p.tokens) && p.peek().Kind != TokenEOF {
		seg := p.parseSegment()
		if seg != nil {
			segments = append(segments, seg)
		}
	}

	return segments, p.diags
}

// parseSegment parses a single segment based on the current token.
func (p *Parser) parseSegment() Segment {
	tok := p.peek()

	switch tok.Kind {
	case TokenLiteral, TokenIdent:
		p.current++
		return &LiteralSegment{Text: tok.Text, pos: tok.Position}

	case TokenOpenBrace:
		param := p.parseParameter()
		if param == nil {
			return nil
		}
		return param

	case TokenLongPrefix:
		return p.parseDash(tok, true)

	case TokenShortPrefix:
		return p.parseDash(tok, false)

	case TokenCloseBrace:
		p.diags = append(p.diags, diag(CodeUnexpectedToken, tok.Position, "unexpected '}'"))
		p.current++
		return nil

	default:
		p.diags = append(p.diags, diag(CodeUnexpectedToken, tok.Position, "unexpected %q", tok.Text))
		p.current++
		return nil
	}
}

// parseDash handles a '-' or '--' prefix token. An adjacent identifier
// makes it an option (or, right of the end-of-options marker, a literal);
// a bare "--" is the marker itself; a bare '-' is a plain literal.
func (p *Parser) parseDash(prefix Token, long bool) Segment {
	p.current++
	next := p.peek()
	adjacent := next.Kind == TokenIdent && next.Position == prefix.end()

	if !adjacent {
		if !long {
			return &LiteralSegment{Text: "-", pos: prefix.Position}
		}
		if p.afterMarker {
			// a second "--" right of the marker matches a literal "--" argument
			return &LiteralSegment{Text: "--", pos: prefix.Position}
		}
		p.afterMarker = true
		return &EndOfOptionsMarker{pos: prefix.Position}
	}

	p.current++ // consume the identifier

	if p.afterMarker {
		text := "-" + next.Text
		if long {
			text = "-" + text
		}
		return &LiteralSegment{Text: text, pos: prefix.Position}
	}

	opt := &OptionSegment{pos: prefix.Position}
	if long {
		opt.LongName = next.Text
	} else {
		opt.ShortName = next.Text
	}

	// a value declaration must hug the option name: "--out{file}" binds a
	// value, "--out {file}" is a flag followed by a positional parameter
	if brace := p.peek(); brace.Kind == TokenOpenBrace && brace.Position == next.end() {
		opt.Value = p.parseParameter()
	}
	return opt
}

// parseParameter parses '{' '*'? ident (':' ident)? '?'? '*'? '}'.
// On malformed input it records a diagnostic and skips to the closing
// brace (or end of input) so parsing can continue behind it.
func (p *Parser) parseParameter() *ParameterSegment {
	open := p.peek()
	p.current++

	param := &ParameterSegment{pos: open.Position}

	if p.peek().Kind == TokenAsterisk {
		param.CatchAll = true
		p.current++
	}

	name := p.peek()
	switch name.Kind {
	case TokenIdent:
		param.Name = name.Text
		p.current++
	case TokenCloseBrace:
		p.diags = append(p.diags, diag(CodeEmptyParameter, open.Position, "parameter has no name"))
		p.current++
		return nil
	case TokenEOF:
		p.diags = append(p.diags, diag(CodeUnclosedBrace, open.Position, "missing '}'"))
		return nil
	default:
		p.diags = append(p.diags, diag(CodeUnexpectedToken, name.Position,
			"expected parameter name, found %q", name.Text))
		p.resync()
		return nil
	}

	if p.peek().Kind == TokenColon {
		p.current++
		typ := p.peek()
		if typ.Kind != TokenIdent {
			p.diags = append(p.diags, diag(CodeMissingType, typ.Position,
				"expected type name after ':'"))
			p.resync()
			return nil
		}
		param.TypeConstraint = typ.Text
		p.current++
	}

	if p.peek().Kind == TokenQuestion {
		param.Optional = true
		p.current++
	}
	if p.peek().Kind == TokenAsterisk {
		param.Repeated = true
		p.current++
	}

	switch closing := p.peek(); closing.Kind {
	case TokenCloseBrace:
		p.current++
		return param
	case TokenEOF:
		p.diags = append(p.diags, diag(CodeUnclosedBrace, open.Position, "missing '}'"))
		return nil
	default:
		p.diags = append(p.diags, diag(CodeUnexpectedToken, closing.Position,
			"unexpected %q in parameter", closing.Text))
		p.resync()
		return nil
	}
}

// resync skips tokens up to and including the next '}', or stops at EOF.
func (p *Parser) resync() {
	for p.current < len(p.tokens) {
		k := p.tokens[p.current].Kind
		if k == TokenEOF {
			return
		}
		p.current++
		if k == TokenCloseBrace {
			return
		}
	}
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.current >= len(p.tokens) {
		return Token{Kind: TokenEOF, Position: -1}
	}
	return p.tokens[p.current]
}
