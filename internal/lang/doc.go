// Package lang implements the propositional statement language: lexical
// analysis, recursive-descent parsing into an expression tree, the
// variable environment, and tree-walking evaluation.
//
// A statement consists of zero or more assignment lines followed by one
// expression line:
//
//	p := 1
//	q := 0
//	~p v (q <=> 0)
//
// Operators, tightest binding first: '~' (negation), '^' (conjunction),
// 'v' (disjunction), '=>' (implication), '<=>' (equivalence). Identifiers
// are runs of letters; the single letter 'v' is reserved for disjunction.
//
// Each pipeline stage fails with its own error kind: LexError for an
// unrecognized character, ParseError for a grammar violation, EvalError
// for an unbound variable. All carry the position of the offense.
package lang
