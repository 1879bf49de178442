package lang

import "unicode"

// Lexer is responsible for scanning a statement source and producing tokens.
type Lexer struct {
	input  string
	offset int // current reading position in input
	line   int
	column int
}

// NewLexer returns a new Lexer over the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		line:   1,
		column: 1,
	}
}

// Tokenize processes the entire input and produces the list of tokens,
// terminated by a TokenEOF. Whitespace other than newlines is skipped;
// newlines are significant as statement separators and become tokens.
func (l *Lexer) Tokenize() ([]Token, error) {
	tokens := make([]Token, 0)

	for l.offset < len(l.input) {
		pos := l.pos()
		switch c := l.input[l.offset]; {
		case c == '\n':
			tokens = append(tokens, Token{Type: TokenNewline, Value: "\n", Pos: pos})
			l.advance()

		case c == ' ' || c == '\t' || c == '\r':
			l.advance()

		case c == '0':
			tokens = append(tokens, Token{Type: TokenLitFalse, Value: "0", Pos: pos})
			l.advance()

		case c == '1':
			tokens = append(tokens, Token{Type: TokenLitTrue, Value: "1", Pos: pos})
			l.advance()

		case c == '~':
			tokens = append(tokens, Token{Type: TokenNot, Value: "~", Pos: pos})
			l.advance()

		case c == '^':
			tokens = append(tokens, Token{Type: TokenAnd, Value: "^", Pos: pos})
			l.advance()

		case c == '(':
			tokens = append(tokens, Token{Type: TokenLParen, Value: "(", Pos: pos})
			l.advance()

		case c == ')':
			tokens = append(tokens, Token{Type: TokenRParen, Value: ")", Pos: pos})
			l.advance()

		case c == '<':
			// "<=>" equivalence
			if !l.match("<=>") {
				return nil, LexError{Pos: pos, Char: rune(c)}
			}
			tokens = append(tokens, Token{Type: TokenIff, Value: "<=>", Pos: pos})

		case c == '=':
			// "=>" implication
			if !l.match("=>") {
				return nil, LexError{Pos: pos, Char: rune(c)}
			}
			tokens = append(tokens, Token{Type: TokenImplies, Value: "=>", Pos: pos})

		case c == ':':
			// ":=" assignment
			if !l.match(":=") {
				return nil, LexError{Pos: pos, Char: rune(c)}
			}
			tokens = append(tokens, Token{Type: TokenAssign, Value: ":=", Pos: pos})

		case isAlpha(c):
			word := l.lexWord()
			// The single letter 'v' is the disjunction operator, never
			// an identifier.
			if word == "v" {
				tokens = append(tokens, Token{Type: TokenOr, Value: "v", Pos: pos})
			} else {
				tokens = append(tokens, Token{Type: TokenIdent, Value: word, Pos: pos})
			}

		default:
			return nil, LexError{Pos: pos, Char: rune(c)}
		}
	}

	tokens = append(tokens, Token{Type: TokenEOF, Value: "", Pos: l.pos()})
	return tokens, nil
}

// match consumes the given literal if the input continues with it.
func (l *Lexer) match(lit string) bool {
	if l.offset+len(lit) > len(l.input) || l.input[l.offset:l.offset+len(lit)] != lit {
		return false
	}
	for range lit {
		l.advance()
	}
	return true
}

// lexWord scans a maximal run of alphabetic characters.
func (l *Lexer) lexWord() string {
	start := l.offset
	for l.offset < len(l.input) && isAlpha(l.input[l.offset]) {
		l.advance()
	}
	return l.input[start:l.offset]
}

func (l *Lexer) pos() Position {
	return Position{Offset: l.offset, Line: l.line, Column: l.column}
}

func (l *Lexer) advance() {
	if l.input[l.offset] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.offset++
}

func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c))
}
