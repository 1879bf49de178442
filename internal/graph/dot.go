// Package graph serializes an expression tree into a GraphViz DOT
// description for external rendering. The dump is purely structural:
// every tree node appears exactly once, every edge matches a
// parent-child pair.
package graph

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/proptools/teval/internal/lang"
)

// Write emits the DOT description of the tree rooted at root. Nodes are
// numbered breadth-first; operator nodes are drawn boxed, value nodes
// plain.
func Write(w io.Writer, root lang.Expr) error {
	var defs, edges strings.Builder

	type item struct {
		id   int
		expr lang.Expr
	}
	queue := []item{{id: 0, expr: root}}
	counter := 0
	writeDefinition(&defs, 0, root)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, child := range children(cur.expr) {
			counter++
			writeDefinition(&defs, counter, child)
			fmt.Fprintf(&edges, "    %d -> %d\n", cur.id, counter)
			queue = append(queue, item{id: counter, expr: child})
		}
	}

	if _, err := fmt.Fprintf(w, "digraph ast {\n%s%s}\n", defs.String(), edges.String()); err != nil {
		return err
	}
	return nil
}

// WriteFile renders the tree into a DOT file at path.
func WriteFile(path string, root lang.Expr) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, root)
}

func writeDefinition(b *strings.Builder, id int, expr lang.Expr) {
	if boxed(expr) {
		fmt.Fprintf(b, "    %d [label=%q shape=\"box\"]\n", id, label(expr))
		return
	}
	fmt.Fprintf(b, "    %d [label=%q]\n", id, label(expr))
}

// label returns the node text: literal value, variable name, or operator
// symbol.
func label(expr lang.Expr) string {
	switch e := expr.(type) {
	case lang.Literal:
		return e.String()
	case lang.Var:
		return e.Name
	case lang.Not:
		return "~"
	case lang.Binary:
		return e.Op.String()
	default:
		return "?"
	}
}

// boxed reports whether the node is an operator rather than a value.
func boxed(expr lang.Expr) bool {
	switch expr.(type) {
	case lang.Not, lang.Binary:
		return true
	default:
		return false
	}
}

func children(expr lang.Expr) []lang.Expr {
	switch e := expr.(type) {
	case lang.Not:
		return []lang.Expr{e.Operand}
	case lang.Binary:
		return []lang.Expr{e.Left, e.Right}
	default:
		return nil
	}
}
