package lang

// Parser consumes tokens produced by the lexer and builds a statement tree.
//
// The grammar, lowest to highest precedence, all binary operators
// left-associative:
//
//	program      := { assignment } expression
//	assignment   := IDENT ':=' ( '0' | '1' ) NEWLINE
//	expression   := biconditional
//	biconditional:= implication { '<=>' implication }
//	implication  := or_expr { '=>' or_expr }
//	or_expr      := and_expr { 'v' and_expr }
//	and_expr     := not_expr { '^' not_expr }
//	not_expr     := { '~' } atom
//	atom         := '0' | '1' | IDENT | '(' expression ')'
//
// Assignments must form a contiguous prefix; once a non-assignment line is
// seen the parser commits to expression mode and a later ':=' is an
// ordinary unexpected token. Every assignment is recorded in the
// environment as a side effect of parsing.
type Parser struct {
	tokens  []Token
	current int
	env     *Env
}

// NewParser creates a Parser over the given tokens, recording assignments
// into env.
func NewParser(tokens []Token, env *Env) *Parser {
	return &Parser{
		tokens: tokens,
		env:    env,
	}
}

// Parse processes all tokens and returns the tree of the final expression.
func (p *Parser) Parse() (Expr, error) {
	p.skipNewlines()

	// Assignment prefix: IDENT ':=' lines.
	for p.peek().Type == TokenIdent && p.peekAt(1).Type == TokenAssign {
		if err := p.parseAssignment(); err != nil {
			return nil, err
		}
		p.skipNewlines()
	}

	if p.peek().Type == TokenEOF {
		return nil, ParseError{Code: EmptyProgram, Pos: p.peek().Pos}
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	p.skipNewlines()
	if tok := p.peek(); tok.Type != TokenEOF {
		return nil, ParseError{Expected: "end of input", Found: tok, Pos: tok.Pos}
	}
	return expr, nil
}

func (p *Parser) parseAssignment() error {
	ident := p.next()
	p.next() // ':='

	var val bool
	switch tok := p.next(); tok.Type {
	case TokenLitFalse:
		val = false
	case TokenLitTrue:
		val = true
	default:
		return ParseError{Expected: "'0' or '1'", Found: tok, Pos: tok.Pos}
	}

	if !p.env.Bind(ident.Value, val) {
		return ParseError{Code: DuplicateAssignment, Name: ident.Value, Pos: ident.Pos}
	}

	if tok := p.peek(); tok.Type != TokenNewline && tok.Type != TokenEOF {
		return ParseError{Expected: "end of line", Found: tok, Pos: tok.Pos}
	}
	return nil
}

func (p *Parser) parseExpression() (Expr, error) {
	return p.parseIff()
}

func (p *Parser) parseIff() (Expr, error) {
	left, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == TokenIff {
		op := p.next()
		right, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: OpIff, Left: left, Right: right, TokPos: op.Pos}
	}
	return left, nil
}

func (p *Parser) parseImplies() (Expr, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == TokenImplies {
		op := p.next()
		right, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: OpImplies, Left: left, Right: right, TokPos: op.Pos}
	}
	return left, nil
}

func (p *Parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == TokenOr {
		op := p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: OpOr, Left: left, Right: right, TokPos: op.Pos}
	}
	return left, nil
}

func (p *Parser) parseAnd() (Expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == TokenAnd {
		op := p.next()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: OpAnd, Left: left, Right: right, TokPos: op.Pos}
	}
	return left, nil
}

func (p *Parser) parseNot() (Expr, error) {
	if p.peek().Type == TokenNot {
		op := p.next()
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return Not{Operand: operand, TokPos: op.Pos}, nil
	}
	return p.parseAtom()
}

func (p *Parser) parseAtom() (Expr, error) {
	switch tok := p.next(); tok.Type {
	case TokenLitFalse:
		return Literal{Val: false, TokPos: tok.Pos}, nil
	case TokenLitTrue:
		return Literal{Val: true, TokPos: tok.Pos}, nil
	case TokenIdent:
		return Var{Name: tok.Value, TokPos: tok.Pos}, nil
	case TokenLParen:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if closing := p.peek(); closing.Type != TokenRParen {
			return nil, ParseError{Expected: "')'", Found: closing, Pos: closing.Pos}
		}
		p.next() // ')'
		return expr, nil
	default:
		return nil, ParseError{Expected: "expression", Found: tok, Pos: tok.Pos}
	}
}

func (p *Parser) skipNewlines() {
	for p.peek().Type == TokenNewline {
		p.current++
	}
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	return p.peekAt(0)
}

func (p *Parser) peekAt(n int) Token {
	if p.current+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // TokenEOF
	}
	return p.tokens[p.current+n]
}

func (p *Parser) next() Token {
	tok := p.peek()
	if p.current < len(p.tokens)-1 {
		p.current++
	}
	return tok
}

// Parse tokenizes and parses a complete statement source, returning the
// expression tree and the environment populated by its assignments.
func Parse(src string) (Expr, *Env, error) {
	env := NewEnv()
	expr, err := ParseInto(src, env)
	return expr, env, err
}

// ParseInto is like Parse but records assignments into a caller-provided
// environment, which may already hold preset bindings. An assignment to a
// name that is already bound fails with a DuplicateAssignment error.
func ParseInto(src string, env *Env) (Expr, error) {
	tokens, err := NewLexer(src).Tokenize()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens, env).Parse()
}
