// Package teval evaluates statements written in a small propositional
// logic language. A statement is zero or more assignment lines followed
// by one expression line:
//
//	p := 1
//	q := 0
//	~p v ~q
//
// This package is a thin facade; the pipeline lives in internal/lang and
// the engine, batch, and watch layers in package eval.
package teval

import (
	"github.com/proptools/teval/eval"
	"github.com/proptools/teval/internal/lang"
)

// Eval parses and evaluates a single statement source.
func Eval(source string) (bool, error) {
	return EvalWithVars(source, nil)
}

// EvalWithVars is like Eval with preset variable bindings seeded into
// the environment before parsing. A source assignment to a preset name
// fails as a duplicate assignment.
func EvalWithVars(source string, vars map[string]bool) (bool, error) {
	engine := eval.New(nil, vars)
	res, err := engine.RunSource([]byte(source))
	if err != nil {
		return false, err
	}
	return res.Value, nil
}

// Parse returns the expression tree and environment for a statement
// source without evaluating it, for callers that want to inspect or
// export the tree.
func Parse(source string) (lang.Expr, *lang.Env, error) {
	return lang.Parse(source)
}
