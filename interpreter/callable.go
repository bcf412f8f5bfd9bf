/*
File    : glox/interpreter/callable.go
Package : interpreter
*/
package interpreter

import (
	"fmt"

	"github.com/glox-lang/glox/ast"
	"github.com/glox-lang/glox/environment"
	"github.com/glox-lang/glox/value"
)

// Callable is anything `(...)` can invoke: a user-defined function or a
// native one. It lives in this package rather than value so it can close
// over *Interpreter without value importing interpreter.
type Callable interface {
	Arity() int
	Call(interp *Interpreter, args []value.Value) (value.Value, error)
	String() string
}

// Function is a user-defined function value: its declaration plus the
// environment active where it was defined. Capturing the environment by
// pointer, not by copy, is what gives closures shared mutable state across
// calls — a second call to the same Function sees whatever the first call
// left behind in any variable still alive in Closure's chain.
type Function struct {
	Name       string // empty for an anonymous function expression
	Declaration *ast.Function
	Closure    *environment.Environment
}

func NewFunction(name string, decl *ast.Function, closure *environment.Environment) *Function {
	return &Function{Name: name, Declaration: decl, Closure: closure}
}

func (f *Function) Arity() int { return len(f.Declaration.Params) }

func (f *Function) String() string {
	if f.Name == "" {
		return "<fn anonymous>"
	}
	return fmt.Sprintf("<fn %s>", f.Name)
}

// Call runs the function body in a fresh environment, child of the
// closure, with parameters bound to args. A returnSignal bubbling up out of
// the body supplies the call's result; falling off the end of the body
// without an explicit return yields nil.
func (f *Function) Call(interp *Interpreter, args []value.Value) (value.Value, error) {
	callEnv := environment.NewChild(f.Closure)
	for i, param := range f.Declaration.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	err := interp.executeBlock(f.Declaration.Body, callEnv)
	if ret, ok := err.(returnSignal); ok {
		return ret.Value, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, nil
}

// NativeFunction wraps a Go function so it can be called from glox code,
// e.g. clock() and println(x).
type NativeFunction struct {
	name  string
	arity int
	fn    func(interp *Interpreter, args []value.Value) (value.Value, error)
}

func NewNativeFunction(name string, arity int, fn func(interp *Interpreter, args []value.Value) (value.Value, error)) *NativeFunction {
	return &NativeFunction{name: name, arity: arity, fn: fn}
}

func (n *NativeFunction) Arity() int { return n.arity }

func (n *NativeFunction) String() string { return fmt.Sprintf("<native fn %s>", n.name) }

func (n *NativeFunction) Call(interp *Interpreter, args []value.Value) (value.Value, error) {
	return n.fn(interp, args)
}
