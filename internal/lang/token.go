package lang

import "fmt"

// TokenType defines the different kinds of tokens produced by the lexer.
type TokenType int

const (
	TokenLitFalse TokenType = iota // '0'
	TokenLitTrue                   // '1'
	TokenIdent                     // variable name
	TokenNot                       // '~'
	TokenAnd                       // '^'
	TokenOr                        // 'v'
	TokenImplies                   // '=>'
	TokenIff                       // '<=>'
	TokenAssign                    // ':='
	TokenLParen                    // '('
	TokenRParen                    // ')'
	TokenNewline                   // statement separator
	TokenEOF                       // end of input
)

// Position locates a token or error in the original input.
type Position struct {
	Offset int // byte offset, starting at 0
	Line   int // line number, starting at 1
	Column int // column number in bytes, starting at 1
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a single lexical unit with type, literal text, and position.
type Token struct {
	Type  TokenType
	Value string // the literal string for this token; identifier name for TokenIdent
	Pos   Position
}

// String renders the token the way it is reported in diagnostics.
func (t Token) String() string {
	switch t.Type {
	case TokenLitFalse:
		return "'0'"
	case TokenLitTrue:
		return "'1'"
	case TokenIdent:
		return fmt.Sprintf("identifier %q", t.Value)
	case TokenNot:
		return "'~'"
	case TokenAnd:
		return "'^'"
	case TokenOr:
		return "'v'"
	case TokenImplies:
		return "'=>'"
	case TokenIff:
		return "'<=>'"
	case TokenAssign:
		return "':='"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenNewline:
		return "end of line"
	case TokenEOF:
		return "end of input"
	default:
		return fmt.Sprintf("unknown token %q", t.Value)
	}
}
