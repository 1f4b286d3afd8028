package pattern

import "unicode"

// Lexer is responsible for scanning a pattern string and producing tokens.
// It is total: any input yields a token stream, and all error detection is
// deferred to the parser so diagnostics can carry parse-level context.
type Lexer struct {
	input    string // the entire pattern to tokenize
	position int    // current reading position in input
	inBraces bool   // inside a '{...}' parameter declaration
	tokens   []Token
}

// NewLexer returns a new Lexer with the given input and initializes state.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		tokens: make([]Token, 0),
	}
}

// Tokenize processes the entire pattern string in one call.
func Tokenize(input string) []Token {
	return NewLexer(input).Tokenize()
}

// Tokenize scans the whole input and produces the token list, ending with
// a TokenEOF. Whitespace separates segments and is elided from the stream.
func (l *Lexer) Tokenize() []Token {
	for l.position < len(l.input) {
		currentPos := l.position
		c := l.input[l.position]

		switch {
		case isWhitespace(c):
			l.position++

		case c == '{':
			l.addToken(TokenOpenBrace, "{", currentPos)
			l.inBraces = true
			l.position++

		case c == '}':
			l.addToken(TokenCloseBrace, "}", currentPos)
			l.inBraces = false
			l.position++

		case l.inBraces:
			l.lexInBraces(currentPos)

		case c == '-':
			l.lexDash(currentPos)

		default:
			l.lexLiteral(currentPos)
		}
	}

	l.addToken(TokenEOF, "", l.position)
	return l.tokens
}

// lexInBraces scans one token inside a parameter declaration: the modifier
// punctuation, an identifier, or a stray character emitted as a literal so
// the parser can report it with a position.
func (l *Lexer) lexInBraces(startPos int) {
	switch c := l.input[l.position]; c {
	case ':':
		l.addToken(TokenColon, ":", startPos)
		l.position++
	case '?':
		l.addToken(TokenQuestion, "?", startPos)
		l.position++
	case '*':
		l.addToken(TokenAsterisk, "*", startPos)
		l.position++
	default:
		if isIdentStart(c) {
			l.lexIdent(startPos)
			return
		}
		l.addToken(TokenLiteral, string(c), startPos)
		l.position++
	}
}

// lexDash scans a word starting with '-': "--" yields a TokenLongPrefix,
// a single '-' yields a TokenShortPrefix, and in both cases an adjacent
// identifier is emitted as its own token. A bare "--" produces only the
// prefix token; the parser decides whether it is the end-of-options marker.
func (l *Lexer) lexDash(startPos int) {
	long := l.position+1 < len(l.input) && l.input[l.position+1] == '-'
	if long {
		l.addToken(TokenLongPrefix, "--", startPos)
		l.position += 2
	} else {
		l.addToken(TokenShortPrefix, "-", startPos)
		l.position++
	}

	if l.position < len(l.input) && isIdentStart(l.input[l.position]) {
		l.lexIdent(l.position)
	}
}

// lexIdent scans an identifier: a letter or underscore followed by
// letters, digits, underscores, or hyphens (so "--dry-run" stays one name).
func (l *Lexer) lexIdent(startPos int) {
	start := l.position
	for l.position < len(l.input) && isIdentPart(l.input[l.position]) {
		l.position++
	}
	l.addToken(TokenIdent, l.input[start:l.position], startPos)
}

// lexLiteral scans consecutive non-special, non-whitespace characters.
func (l *Lexer) lexLiteral(startPos int) {
	start := l.position
	for l.position < len(l.input) {
		c := l.input[l.position]
		if c == '{' || c == '}' || isWhitespace(c) {
			break
		}
		l.position++
	}
	if l.position > start {
		l.addToken(TokenLiteral, l.input[start:l.position], startPos)
	}
}

// addToken is a helper to append a new token to the lexer's token list.
func (l *Lexer) addToken(kind TokenKind, text string, pos int) {
	l.tokens = append(l.tokens, Token{
		Kind:     kind,
		Text:     text,
		Position: pos,
	})
}

func isWhitespace(c byte) bool {
	return unicode.IsSpace(rune(c))
}

func isIdentStart(c byte) bool {
	return c == '_' || unicode.IsLetter(rune(c))
}

func isIdentPart(c byte) bool {
	return c == '_' || c == '-' || unicode.IsLetter(rune(c)) || unicode.IsDigit(rune(c))
}
