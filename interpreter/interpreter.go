/*
File    : glox/interpreter/interpreter.go
Package : interpreter
*/

// Package interpreter tree-walks the resolved AST and executes it.
//
// Non-local control flow (break, continue, return) is carried as a
// distinguished error value returned up the call stack from execute/Call,
// the same shape Go already uses for propagating a RuntimeError — the
// statement-execution functions below never need a separate "did this
// block exit abnormally" out-parameter, they just check what came back.
// while/for unwrap break/continue themselves; function Call unwraps
// returnSignal; everything else re-propagates unrecognized errors (a
// genuine RuntimeError, or bubbling break/continue/return further up) to
// its own caller.
package interpreter

import (
	"fmt"
	"io"
	"time"

	"github.com/glox-lang/glox/ast"
	"github.com/glox-lang/glox/diagnostics"
	"github.com/glox-lang/glox/environment"
	"github.com/glox-lang/glox/token"
	"github.com/glox-lang/glox/value"
)

// Interpreter executes a resolved program. One Interpreter holds the
// global environment and can run many programs against it in sequence
// (the REPL reuses one Interpreter across lines so top-level bindings
// persist).
type Interpreter struct {
	Globals   *environment.Environment
	env       *environment.Environment
	sink      *diagnostics.Sink
	distances map[ast.ID]int
	writer    io.Writer
}

// New creates an Interpreter with clock/println registered at global
// scope, writing print/println output to w.
func New(sink *diagnostics.Sink, w io.Writer) *Interpreter {
	globals := environment.New()
	interp := &Interpreter{Globals: globals, env: globals, sink: sink, writer: w}
	interp.defineNatives()
	return interp
}

func (interp *Interpreter) defineNatives() {
	interp.Globals.Define("clock", NewNativeFunction("clock", 0, func(_ *Interpreter, _ []value.Value) (value.Value, error) {
		return float64(time.Now().UnixNano()) / 1e9, nil
	}))
	var printlnFn *NativeFunction
	printlnFn = NewNativeFunction("println", 1, func(i *Interpreter, args []value.Value) (value.Value, error) {
		fmt.Fprintln(i.writer, value.Stringify(args[0]))
		return printlnFn, nil
	})
	interp.Globals.Define("println", printlnFn)
}

// Run executes a top-level program against distances, the resolver's
// side-table for that same parse. A RuntimeError is reported to the sink
// and returned; execution of subsequent top-level statements stops, as
// spec'd — the caller (driver/REPL) decides what to do next.
func (interp *Interpreter) Run(statements []ast.Stmt, distances map[ast.ID]int) error {
	_, _, err := interp.run(statements, distances, false)
	return err
}

// RunLine behaves like Run but additionally reports the value of a
// trailing bare expression statement, for the REPL's result-echo feature
// (SPEC_FULL.md §4). File-mode execution always uses Run instead, since
// only print/println produce output there.
func (interp *Interpreter) RunLine(statements []ast.Stmt, distances map[ast.ID]int) (value.Value, bool, error) {
	return interp.run(statements, distances, true)
}

func (interp *Interpreter) run(statements []ast.Stmt, distances map[ast.ID]int, echoLast bool) (value.Value, bool, error) {
	interp.distances = distances
	for i, stmt := range statements {
		if echoLast && i == len(statements)-1 {
			if exprStmt, ok := stmt.(*ast.ExpressionStmt); ok {
				v, err := interp.evaluate(exprStmt.Expr)
				if err != nil {
					interp.reportRuntimeError(err)
					return nil, false, err
				}
				return v, true, nil
			}
		}
		if err := interp.execute(stmt); err != nil {
			interp.reportRuntimeError(err)
			return nil, false, err
		}
	}
	return nil, false, nil
}

func (interp *Interpreter) reportRuntimeError(err error) {
	if rerr, ok := err.(*RuntimeError); ok {
		interp.sink.RuntimeError(rerr.Token, rerr.Message)
	}
}

// ---- statements ------------------------------------------------------

func (interp *Interpreter) execute(s ast.Stmt) error {
	switch n := s.(type) {
	case *ast.ExpressionStmt:
		_, err := interp.evaluate(n.Expr)
		return err

	case *ast.PrintStmt:
		v, err := interp.evaluate(n.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(interp.writer, value.Stringify(v))
		return nil

	case *ast.VarStmt:
		v := value.Uninitialized
		if n.Initializer != nil {
			var err error
			v, err = interp.evaluate(n.Initializer)
			if err != nil {
				return err
			}
		}
		interp.env.Define(n.Name.Lexeme, v)
		return nil

	case *ast.BlockStmt:
		return interp.executeBlock(n.Statements, environment.NewChild(interp.env))

	case *ast.IfStmt:
		cond, err := interp.evaluate(n.Cond)
		if err != nil {
			return err
		}
		if value.IsTruthy(cond) {
			return interp.execute(n.Then)
		}
		if n.Else != nil {
			return interp.execute(n.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := interp.evaluate(n.Cond)
			if err != nil {
				return err
			}
			if !value.IsTruthy(cond) {
				return nil
			}
			if err := interp.execute(n.Body); err != nil {
				if _, ok := err.(breakSignal); ok {
					return nil
				}
				if _, ok := err.(continueSignal); ok {
					continue
				}
				return err
			}
		}

	case *ast.ForStmt:
		return interp.executeFor(n)

	case *ast.FunctionStmt:
		fn := NewFunction(n.Name.Lexeme, n.Fn, interp.env)
		interp.env.Define(n.Name.Lexeme, fn)
		return nil

	case *ast.InterruptStmt:
		return interp.executeInterrupt(n)

	default:
		panic("interpreter: unhandled statement type")
	}
}

func (interp *Interpreter) executeFor(n *ast.ForStmt) error {
	loopEnv := environment.NewChild(interp.env)
	previous := interp.env
	interp.env = loopEnv
	defer func() { interp.env = previous }()

	if n.Initializer != nil {
		if err := interp.execute(n.Initializer); err != nil {
			return err
		}
	}

	for {
		if n.Cond != nil {
			cond, err := interp.evaluate(n.Cond)
			if err != nil {
				return err
			}
			if !value.IsTruthy(cond) {
				return nil
			}
		}

		if err := interp.execute(n.Body); err != nil {
			if _, ok := err.(breakSignal); ok {
				return nil
			}
			if _, ok := err.(continueSignal); !ok {
				return err
			}
			// continue: fall through to the increment step below
		}

		if n.Increment != nil {
			if _, err := interp.evaluate(n.Increment); err != nil {
				return err
			}
		}
	}
}

func (interp *Interpreter) executeInterrupt(n *ast.InterruptStmt) error {
	switch n.Keyword.Type {
	case token.BREAK:
		return breakSignal{}
	case token.CONTINUE:
		return continueSignal{}
	case token.RETURN:
		var v value.Value
		if n.Value != nil {
			var err error
			v, err = interp.evaluate(n.Value)
			if err != nil {
				return err
			}
		}
		return returnSignal{Value: v}
	default:
		panic("interpreter: unhandled interrupt keyword")
	}
}

// executeBlock runs statements in env, restoring the interpreter's
// previous environment on every exit path (normal, signal, or error).
func (interp *Interpreter) executeBlock(statements []ast.Stmt, env *environment.Environment) error {
	previous := interp.env
	interp.env = env
	defer func() { interp.env = previous }()

	for _, stmt := range statements {
		if err := interp.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}
