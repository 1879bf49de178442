package graph

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proptools/teval/internal/lang"
)

func render(t *testing.T, src string) string {
	t.Helper()
	expr, _, err := lang.Parse(src)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, expr))
	return buf.String()
}

func countNodes(t *testing.T, expr lang.Expr) int {
	t.Helper()
	n := 1
	for _, child := range children(expr) {
		n += countNodes(t, child)
	}
	return n
}

func TestWriteSingleLiteral(t *testing.T) {
	out := render(t, "1")

	assert.Equal(t, "digraph ast {\n    0 [label=\"1\"]\n}\n", out)
}

func TestWriteShapes(t *testing.T) {
	out := render(t, "~1 v 0")

	// operators are boxed, values are plain
	assert.Contains(t, out, `[label="v" shape="box"]`)
	assert.Contains(t, out, `[label="~" shape="box"]`)
	assert.Contains(t, out, `[label="1"]`)
	assert.Contains(t, out, `[label="0"]`)
}

func TestWriteVariableLabels(t *testing.T) {
	out := render(t, "p := 1\nq := 0\np <=> q")

	assert.Contains(t, out, `[label="p"]`)
	assert.Contains(t, out, `[label="q"]`)
	assert.Contains(t, out, `[label="<=>" shape="box"]`)
}

func TestWriteNodeAndEdgeCounts(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "leaf", input: "0"},
		{name: "unary chain", input: "~~~1"},
		{name: "binary tree", input: "1 ^ 0 v 1"},
		{name: "mixed operators", input: "p := 1\nq := 0\n~p ^ (q v 1) => p <=> q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, _, err := lang.Parse(tt.input)
			require.NoError(t, err)
			n := countNodes(t, expr)

			var buf bytes.Buffer
			require.NoError(t, Write(&buf, expr))
			out := buf.String()

			assert.Equal(t, n, strings.Count(out, "[label="), "one declaration per node")
			assert.Equal(t, n-1, strings.Count(out, " -> "), "one edge per parent-child pair")
		})
	}
}

func TestWriteBreadthFirstNumbering(t *testing.T) {
	out := render(t, "1 ^ 0")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "digraph ast {", lines[0])
	assert.Equal(t, `    0 [label="^" shape="box"]`, lines[1])
	assert.Equal(t, `    1 [label="1"]`, lines[2])
	assert.Equal(t, `    2 [label="0"]`, lines[3])
	assert.Equal(t, "    0 -> 1", lines[4])
	assert.Equal(t, "    0 -> 2", lines[5])
	assert.Equal(t, "}", lines[6])
}

func TestWriteFile(t *testing.T) {
	expr, _, err := lang.Parse("~0")
	require.NoError(t, err)

	path := t.TempDir() + "/tree.dot"
	require.NoError(t, WriteFile(path, expr))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, expr))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, buf.String(), string(content))
}
