package lang

import "fmt"

// LexError reports a character that matches no token rule.
type LexError struct {
	Pos  Position
	Char rune
}

func (e LexError) Error() string {
	return fmt.Sprintf("%s: unexpected character %q", e.Pos, e.Char)
}

// ParseErrorCode distinguishes the ways parsing can fail.
type ParseErrorCode int

const (
	// UnexpectedToken is a token-expectation mismatch.
	UnexpectedToken ParseErrorCode = iota
	// EmptyProgram means no expression tokens remained after the assignments.
	EmptyProgram
	// DuplicateAssignment is a second assignment to an already bound name.
	DuplicateAssignment
)

// ParseError reports a grammar violation at a specific position.
type ParseError struct {
	Code     ParseErrorCode
	Expected string // what the parser was looking for (UnexpectedToken)
	Found    Token  // the token actually seen (UnexpectedToken)
	Name     string // the offending variable (DuplicateAssignment)
	Pos      Position
}

func (e ParseError) Error() string {
	switch e.Code {
	case EmptyProgram:
		return fmt.Sprintf("%s: empty program, no expression to evaluate", e.Pos)
	case DuplicateAssignment:
		return fmt.Sprintf("%s: duplicate assignment to %q", e.Pos, e.Name)
	default:
		return fmt.Sprintf("%s: expected %s, found %s", e.Pos, e.Expected, e.Found)
	}
}

// EvalError reports a variable reference with no binding in the environment.
type EvalError struct {
	Name string
	Pos  Position
}

func (e EvalError) Error() string {
	return fmt.Sprintf("%s: unbound variable %q", e.Pos, e.Name)
}
