package lang

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Env maps variable names to their boolean bindings. It is populated by
// assignment statements while parsing and consulted by the evaluator;
// its lifetime is a single statement-evaluation run.
type Env struct {
	vars map[string]bool
}

// NewEnv creates a new empty environment.
func NewEnv() *Env {
	return &Env{
		vars: make(map[string]bool),
	}
}

// Bind records a binding for name. It returns false, without overwriting,
// if name is already bound.
func (e *Env) Bind(name string, val bool) bool {
	if _, ok := e.vars[name]; ok {
		return false
	}
	e.vars[name] = val
	return true
}

// Lookup retrieves the value bound to name. The second return value
// reports whether the binding exists.
func (e *Env) Lookup(name string) (bool, bool) {
	val, ok := e.vars[name]
	return val, ok
}

// Len returns the number of bindings.
func (e *Env) Len() int {
	return len(e.vars)
}

// Names returns all bound names in sorted order.
func (e *Env) Names() []string {
	names := lo.Keys(e.vars)
	sort.Strings(names)
	return names
}

// Clone creates an independent copy of the environment.
func (e *Env) Clone() *Env {
	clone := &Env{vars: make(map[string]bool, len(e.vars))}
	for k, v := range e.vars {
		clone.vars[k] = v
	}
	return clone
}

// String returns a string representation of the bindings, in sorted order.
func (e *Env) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, name := range e.Names() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %t", name, e.vars[name])
	}
	b.WriteString("}")
	return b.String()
}
