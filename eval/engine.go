// Package eval wires the language pipeline into an engine that runs
// complete statement sources, plus batch and watch layers on top of it.
package eval

import (
	"os"

	"go.uber.org/zap"

	"github.com/proptools/teval/internal/lang"
)

// Result holds the outcome of evaluating one statement source.
type Result struct {
	Value    bool      // truth value of the final expression
	Tree     lang.Expr // the parsed expression
	Env      *lang.Env // bindings in effect during evaluation
	Filename string    // source file, empty for in-memory sources
}

// Engine runs the full lex/parse/eval pipeline over statement sources.
// Preset bindings, if any, seed the environment of every run; a source
// assignment to a preset name is rejected as a duplicate.
type Engine struct {
	logger  *zap.Logger
	presets map[string]bool
}

// New creates an Engine. A nil logger disables logging.
func New(logger *zap.Logger, presets map[string]bool) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		logger:  logger,
		presets: presets,
	}
}

// RunSource evaluates a statement source held in memory.
func (e *Engine) RunSource(source []byte) (*Result, error) {
	res, err := e.parseSource(source)
	if err != nil {
		return nil, err
	}

	val, err := lang.Eval(res.Tree, res.Env)
	if err != nil {
		return nil, err
	}
	res.Value = val

	e.logger.Debug("evaluated statement",
		zap.Bool("result", val),
		zap.Int("bindings", res.Env.Len()))
	return res, nil
}

// RunFile evaluates the statement in the file at path.
func (e *Engine) RunFile(path string) (*Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	res, err := e.RunSource(source)
	if err != nil {
		return nil, err
	}
	res.Filename = path
	return res, nil
}

// ParseFile parses the statement in the file at path without evaluating
// it. The returned Result carries the tree and environment only.
func (e *Engine) ParseFile(path string) (*Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	res, err := e.parseSource(source)
	if err != nil {
		return nil, err
	}
	res.Filename = path
	return res, nil
}

func (e *Engine) parseSource(source []byte) (*Result, error) {
	env := lang.NewEnv()
	for name, val := range e.presets {
		env.Bind(name, val)
	}

	tree, err := lang.ParseInto(string(source), env)
	if err != nil {
		return nil, err
	}
	return &Result{Tree: tree, Env: env}, nil
}
