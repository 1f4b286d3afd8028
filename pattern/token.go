package pattern

// TokenKind defines different types of tokens that can be produced by the lexer.
type TokenKind int

const (
	// TokenLiteral represents a bare word outside braces, matched verbatim.
	TokenLiteral TokenKind = iota
	// TokenOpenBrace represents a '{' starting a parameter declaration.
	TokenOpenBrace
	// TokenCloseBrace represents a '}' closing a parameter declaration.
	TokenCloseBrace
	// TokenIdent represents an identifier inside braces or an option name.
	TokenIdent
	// TokenColon represents the ':' separating a parameter name from its type.
	TokenColon
	// TokenQuestion represents the '?' optional modifier.
	TokenQuestion
	// TokenAsterisk represents the '*' catch-all/repeated modifier.
	TokenAsterisk
	// TokenLongPrefix represents a leading "--". Whether it starts a long
	// option or is the end-of-options marker depends on whether an
	// identifier is adjacent; that is the parser's call.
	TokenLongPrefix
	// TokenShortPrefix represents a leading '-' of a short option.
	TokenShortPrefix
	// TokenEOF marks the end of the pattern string.
	TokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenLiteral:
		return "literal"
	case TokenOpenBrace:
		return "{"
	case TokenCloseBrace:
		return "}"
	case TokenIdent:
		return "identifier"
	case TokenColon:
		return ":"
	case TokenQuestion:
		return "?"
	case TokenAsterisk:
		return "*"
	case TokenLongPrefix:
		return "--"
	case TokenShortPrefix:
		return "-"
	case TokenEOF:
		return "EOF"
	default:
		return "unknown"
	}
}

// Token represents a single lexical token with kind, text, and position.
type Token struct {
	Kind     TokenKind
	Text     string // the literal string for this token
	Position int    // the starting byte offset in the original input
}

// end returns the byte offset just past this token. The parser uses it to
// detect adjacency, e.g. an option name immediately followed by '{'.
func (t Token) end() int {
	switch t.Kind {
	case TokenLongPrefix:
		return t.Position + 2
	case TokenShortPrefix:
		return t.Position + 1
	default:
		return t.Position + len(t.Text)
	}
}
