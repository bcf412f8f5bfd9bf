/*
File    : glox/resolver/resolver.go
Package : resolver
*/

// Package resolver performs a static pass over the parsed AST between
// parsing and evaluation. For every variable read or assignment it computes
// how many enclosing block scopes separate the use from the scope that
// declares it, and records that distance in a side table keyed by the
// expression's ast.ID. The interpreter's environment then resolves the
// binding by walking exactly that many parent links instead of searching by
// name, which also makes each block's own locals shadow an outer same-named
// local correctly regardless of when the outer block mutates its bindings.
//
// Globals (distance not found in any scope on the stack) are left
// unresolved and fall back to a dynamic lookup in the interpreter's global
// environment, matching top-level `var` and function declarations that can
// be referenced before every global is done being defined (e.g. mutual
// recursion between top-level functions).
package resolver

import (
	"github.com/glox-lang/glox/ast"
	"github.com/glox-lang/glox/diagnostics"
	"github.com/glox-lang/glox/token"
)

type varState int

const (
	declared varState = iota
	defined
)

type functionKind int

const (
	kindNone functionKind = iota
	kindFunction
)

// Resolver walks the AST once, building Distances.
type Resolver struct {
	sink      *diagnostics.Sink
	scopes    []map[string]varState
	Distances map[ast.ID]int
	currentFn functionKind
}

// New creates a Resolver that reports errors to sink.
func New(sink *diagnostics.Sink) *Resolver {
	return &Resolver{sink: sink, Distances: make(map[ast.ID]int)}
}

// Resolve walks every top-level statement. The returned map is also
// available afterward as r.Distances.
func (r *Resolver) Resolve(statements []ast.Stmt) map[ast.ID]int {
	r.resolveStmts(statements)
	return r.Distances
}

// ---- scope stack --------------------------------------------------------

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]varState))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name string, line int) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name]; ok {
		r.sink.StaticError(line, " at '"+name+"'", "Already a variable with this name in this scope.")
	}
	scope[name] = declared
}

func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = defined
}

// resolveLocal searches the scope stack from innermost outward and records
// the distance at which name is found. An unresolved name is left absent
// from Distances, signaling "look it up in globals" to the interpreter.
func (r *Resolver) resolveLocal(id ast.ID, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.Distances[id] = len(r.scopes) - 1 - i
			return
		}
	}
}

// ---- statements ----------------------------------------------------------

func (r *Resolver) resolveStmts(statements []ast.Stmt) {
	for _, s := range statements {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(n.Expr)

	case *ast.PrintStmt:
		r.resolveExpr(n.Expr)

	case *ast.VarStmt:
		r.declare(n.Name.Lexeme, n.Name.Line)
		if n.Initializer != nil {
			r.resolveExpr(n.Initializer)
		}
		r.define(n.Name.Lexeme)

	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(n.Statements)
		r.endScope()

	case *ast.IfStmt:
		r.resolveExpr(n.Cond)
		r.resolveStmt(n.Then)
		if n.Else != nil {
			r.resolveStmt(n.Else)
		}

	case *ast.WhileStmt:
		r.resolveExpr(n.Cond)
		r.resolveStmt(n.Body)

	case *ast.ForStmt:
		r.beginScope()
		if n.Initializer != nil {
			r.resolveStmt(n.Initializer)
		}
		if n.Cond != nil {
			r.resolveExpr(n.Cond)
		}
		if n.Increment != nil {
			r.resolveExpr(n.Increment)
		}
		r.resolveStmt(n.Body)
		r.endScope()

	case *ast.FunctionStmt:
		r.declare(n.Name.Lexeme, n.Name.Line)
		r.define(n.Name.Lexeme)
		r.resolveFunction(n.Fn, kindFunction)

	case *ast.InterruptStmt:
		if n.Keyword.Type == token.RETURN {
			if r.currentFn == kindNone {
				r.sink.StaticError(n.Keyword.Line, "", "Can't return from top-level code.")
			}
			if n.Value != nil {
				r.resolveExpr(n.Value)
			}
		}

	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionKind) {
	enclosingFn := r.currentFn
	r.currentFn = kind
	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param.Lexeme, param.Line)
		r.define(param.Lexeme)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
	r.currentFn = enclosingFn
}

// ---- expressions -----------------------------------------------------

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Literal:
		// no sub-expressions, nothing to resolve

	case *ast.Grouping:
		r.resolveExpr(n.Inner)

	case *ast.Variable:
		if len(r.scopes) > 0 {
			if state, ok := r.scopes[len(r.scopes)-1][n.Name.Lexeme]; ok && state == declared {
				r.sink.StaticError(n.Name.Line, " at '"+n.Name.Lexeme+"'", "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(n.ExprID(), n.Name.Lexeme)

	case *ast.Assign:
		r.resolveExpr(n.Value)
		r.resolveLocal(n.ExprID(), n.Name.Lexeme)

	case *ast.Unary:
		r.resolveExpr(n.Operand)

	case *ast.Postfix:
		r.resolveExpr(n.Operand)

	case *ast.Binary:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.Logical:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.Ternary:
		r.resolveExpr(n.Cond)
		r.resolveExpr(n.Then)
		r.resolveExpr(n.Else)

	case *ast.Call:
		r.resolveExpr(n.Callee)
		for _, arg := range n.Args {
			r.resolveExpr(arg)
		}

	case *ast.Function:
		r.resolveFunction(n, kindFunction)

	default:
		panic("resolver: unhandled expression type")
	}
}
