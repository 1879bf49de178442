// Package formatter renders evaluation results and pipeline errors for
// terminal output.
package formatter

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/proptools/teval/internal/lang"
)

const tabWidth = 8

var (
	trueStyle  = color.New(color.FgGreen, color.Bold)
	falseStyle = color.New(color.FgRed, color.Bold)
	errorStyle = color.New(color.FgRed, color.Bold)
	fileStyle  = color.New(color.FgCyan, color.Bold)
	lineStyle  = color.New(color.FgHiBlue, color.Bold)
)

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

// Verdict renders a truth value. With bits set it prints "1"/"0" instead
// of "true"/"false".
func Verdict(value bool, bits bool) string {
	if value {
		if bits {
			return trueStyle.Sprint("1")
		}
		return trueStyle.Sprint("true")
	}
	if bits {
		return falseStyle.Sprint("0")
	}
	return falseStyle.Sprint("false")
}

// FormatError renders a pipeline error. When the error carries a position
// and the source is available, the offending line is printed with a caret
// arrow under the position, in the style:
//
//	input.prop:2:5: error: expected ')', found end of input
//	(1 v 0
//	    ^
func FormatError(err error, filename, source string) string {
	pos, ok := errorPosition(err)
	if !ok {
		return errorStyle.Sprint("error: ") + err.Error()
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("%s:%s: %s %s\n",
		fileStyle.Sprint(filename),
		lineStyle.Sprintf("%d:%d", pos.Line, pos.Column),
		errorStyle.Sprint("error:"),
		errorMessage(err)))

	lines := strings.Split(source, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return builder.String()
	}
	line := lines[pos.Line-1]
	builder.WriteString(line + "\n")
	builder.WriteString(strings.Repeat(" ", calculateVisualColumn(line, pos.Column)))
	builder.WriteString("^\n")
	return builder.String()
}

// errorPosition extracts the source position from any of the pipeline
// error kinds.
func errorPosition(err error) (lang.Position, bool) {
	var lexErr lang.LexError
	if errors.As(err, &lexErr) {
		return lexErr.Pos, true
	}
	var parseErr lang.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Pos, true
	}
	var evalErr lang.EvalError
	if errors.As(err, &evalErr) {
		return evalErr.Pos, true
	}
	return lang.Position{}, false
}

// errorMessage strips the leading "line:col: " prefix the error types
// include in Error(), since the header already shows the position.
func errorMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}

// calculateVisualColumn maps a byte column to a display column,
// expanding tabs.
func calculateVisualColumn(line string, column int) int {
	visualColumn := 0
	for i, ch := range line {
		if i+1 >= column {
			break
		}
		if ch == '\t' {
			visualColumn += tabWidth - (visualColumn % tabWidth)
		} else {
			visualColumn++
		}
	}
	return visualColumn
}
