package lang

import "fmt"

// Eval reduces an expression tree to a boolean with a post-order walk,
// resolving variable references against env. Both operands of a binary
// operator are always evaluated; expressions are pure, so there is no
// short-circuiting to observe.
func Eval(expr Expr, env *Env) (bool, error) {
	switch e := expr.(type) {
	case Literal:
		return e.Val, nil

	case Var:
		val, ok := env.Lookup(e.Name)
		if !ok {
			return false, EvalError{Name: e.Name, Pos: e.TokPos}
		}
		return val, nil

	case Not:
		val, err := Eval(e.Operand, env)
		if err != nil {
			return false, err
		}
		return !val, nil

	case Binary:
		left, err := Eval(e.Left, env)
		if err != nil {
			return false, err
		}
		right, err := Eval(e.Right, env)
		if err != nil {
			return false, err
		}
		switch e.Op {
		case OpAnd:
			return left && right, nil
		case OpOr:
			return left || right, nil
		case OpImplies:
			return !left || right, nil
		case OpIff:
			return left == right, nil
		default:
			return false, fmt.Errorf("unknown binary operator %d", e.Op)
		}

	default:
		return false, fmt.Errorf("unknown expression node %T", expr)
	}
}
