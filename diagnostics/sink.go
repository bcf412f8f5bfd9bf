/*
File    : glox/diagnostics/sink.go
Package : diagnostics
*/

// Package diagnostics implements the error sink collaborator described by
// the interpreter's external interfaces: a single place that scan, parse,
// resolve, and runtime errors are reported to, and that the driver consults
// to pick an exit code. Unlike a global "had error" flag, a Sink is an
// explicit value threaded through the scanner, parser, resolver, and
// evaluator, so multiple independent interpreter instances (e.g. one per
// REPL server connection) never share state.
package diagnostics

import (
	"fmt"
	"io"

	"github.com/glox-lang/glox/token"

	"github.com/fatih/color"
)

// Sink collects static and runtime errors and renders them to an
// io.Writer. It never aborts the process itself — callers decide when to
// stop based on HadError/HadRuntimeError.
type Sink struct {
	w              io.Writer
	hadError       bool
	hadRuntimeErr  bool
	staticMessages []string
	colorEnabled   bool
}

// New creates a Sink that writes formatted diagnostics to w. Color output
// can be disabled (e.g. when writing to a file or a non-TTY) by passing
// colorEnabled=false.
func New(w io.Writer, colorEnabled bool) *Sink {
	return &Sink{w: w, colorEnabled: colorEnabled}
}

// HadError reports whether any static (scan/parse/resolve) error was
// recorded. The evaluator must not run when this is true.
func (s *Sink) HadError() bool { return s.hadError }

// HadRuntimeError reports whether a runtime error was recorded.
func (s *Sink) HadRuntimeError() bool { return s.hadRuntimeErr }

// Reset clears both flags, used by the REPL between lines so one bad line
// doesn't poison the exit status of the whole session.
func (s *Sink) Reset() {
	s.hadError = false
	s.hadRuntimeErr = false
}

// StaticError records a compile-time error at the given line. where is an
// optional location hint (e.g. " at 'foo'") appended after the line number,
// matching the "[line N] Error<where>: <message>" format from spec.md §7.
func (s *Sink) StaticError(line int, where, message string) {
	s.hadError = true
	text := fmt.Sprintf("[line %d] Error%s: %s", line, where, message)
	s.staticMessages = append(s.staticMessages, text)
	s.print(color.FgRed, text)
}

// RuntimeError records an execution-time error carrying the token where it
// occurred, per the "<message>\n[line N]" format from spec.md §7.
func (s *Sink) RuntimeError(tok token.Token, message string) {
	s.hadRuntimeErr = true
	text := fmt.Sprintf("%s\n[line %d]", message, tok.Line)
	s.print(color.FgRed, text)
}

// Messages returns every static error recorded so far, in report order.
func (s *Sink) Messages() []string {
	return append([]string(nil), s.staticMessages...)
}

func (s *Sink) print(c color.Attribute, text string) {
	if s.colorEnabled {
		color.New(c).Fprintln(s.w, text)
		return
	}
	fmt.Fprintln(s.w, text)
}
