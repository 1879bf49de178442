package lang

// Expr represents a node in a parsed statement tree.
type Expr interface {
	isExpr()
	Pos() Position
	String() string
}

var (
	_ Expr = Literal{}
	_ Expr = Var{}
	_ Expr = Not{}
	_ Expr = Binary{}
)

// Literal represents a boolean constant ('0' or '1').
type Literal struct {
	Val    bool
	TokPos Position
}

func (Literal) isExpr()         {}
func (e Literal) Pos() Position { return e.TokPos }
func (e Literal) String() string {
	if e.Val {
		return "1"
	}
	return "0"
}

// Var represents a variable reference, resolved against the environment
// at evaluation time.
type Var struct {
	Name   string
	TokPos Position
}

func (Var) isExpr()          {}
func (e Var) Pos() Position  { return e.TokPos }
func (e Var) String() string { return e.Name }

// Not represents unary negation.
type Not struct {
	Operand Expr
	TokPos  Position
}

func (Not) isExpr()          {}
func (e Not) Pos() Position  { return e.TokPos }
func (e Not) String() string { return "~" + e.Operand.String() }

// BinaryOp represents the binary operators.
type BinaryOp int

const (
	_ BinaryOp = iota
	OpAnd
	OpOr
	OpImplies
	OpIff
)

func (op BinaryOp) String() string {
	switch op {
	case OpAnd:
		return "^"
	case OpOr:
		return "v"
	case OpImplies:
		return "=>"
	case OpIff:
		return "<=>"
	default:
		return "?"
	}
}

// Binary represents a binary operator application.
type Binary struct {
	Op     BinaryOp
	Left   Expr
	Right  Expr
	TokPos Position
}

func (Binary) isExpr()         {}
func (e Binary) Pos() Position { return e.TokPos }

// String renders the expression fully parenthesized, so that two trees
// with the same shape always render identically.
func (e Binary) String() string {
	return "(" + e.Left.String() + " " + e.Op.String() + " " + e.Right.String() + ")"
}
