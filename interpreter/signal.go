/*
File    : glox/interpreter/signal.go
Package : interpreter
*/
package interpreter

import (
	"fmt"

	"github.com/glox-lang/glox/token"
	"github.com/glox-lang/glox/value"
)

// breakSignal and continueSignal are returned (not panicked) from execute
// to unwind out of a loop body. They implement error purely so they can
// travel through the same return channel as a RuntimeError; callers that
// care tell them apart with a type switch before treating the result as a
// real failure.
type breakSignal struct{}

func (breakSignal) Error() string { return "break outside loop" }

type continueSignal struct{}

func (continueSignal) Error() string { return "continue outside loop" }

// returnSignal unwinds out of a function body carrying the returned value.
type returnSignal struct {
	Value value.Value
}

func (returnSignal) Error() string { return "return outside function" }

// RuntimeError is a genuine execution failure: a type error, an arity
// mismatch, an undefined-variable read, and so on. Division by zero is not
// one: it yields an IEEE-754 infinity or NaN.
// Carrying the offending token lets diagnostics.Sink report the line.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func newRuntimeError(tok token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}
