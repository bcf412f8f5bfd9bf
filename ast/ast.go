/*
File    : glox/ast/ast.go
Package : ast
*/

// Package ast defines the abstract syntax tree produced by the parser.
//
// Nodes are a closed set of tagged-union variants rather than a classic
// visitor hierarchy: the parser builds plain structs, and the resolver and
// evaluator use type switches over Expr/Stmt to dispatch on node kind. This
// avoids the double-dispatch Accept/Visitor scaffolding in favor of an
// exhaustive match, which is easier to keep correct as the grammar grows.
//
// Every Expr carries a stable numeric ID assigned at construction time. The
// resolver keys its distance side-table on this ID rather than on node
// identity, since Go gives no free structural identity for values the way
// an object-identity language would.
package ast

import (
	"sync/atomic"

	"github.com/glox-lang/glox/token"
)

// ID uniquely identifies one Expr node for the lifetime of a parse.
type ID int64

var nextID ID

// newID is safe for concurrent use: `glox serve` parses on one goroutine
// per connection.
func newID() ID {
	return ID(atomic.AddInt64((*int64)(&nextID), 1))
}

// Expr is implemented by every expression node.
type Expr interface {
	ExprID() ID
}

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
}

// exprBase gives every expression a unique ID without repeating the
// ExprID() boilerplate on each variant.
type exprBase struct {
	id ID
}

func newExprBase() exprBase { return exprBase{id: newID()} }

// ExprID returns this node's stable identity.
func (e exprBase) ExprID() ID { return e.id }

// ---- Expressions ------------------------------------------------------

// Literal is a constant: nil, a bool, a float64 number, or a string.
type Literal struct {
	exprBase
	Value interface{}
}

func NewLiteral(value interface{}) *Literal {
	return &Literal{exprBase: newExprBase(), Value: value}
}

// Grouping is a parenthesized expression, kept distinct from its inner
// expression so postfix/assignment-target checks can tell `(x)` from `x`.
type Grouping struct {
	exprBase
	Inner Expr
}

func NewGrouping(inner Expr) *Grouping {
	return &Grouping{exprBase: newExprBase(), Inner: inner}
}

// Variable is a read of a named binding.
type Variable struct {
	exprBase
	Name token.Token
}

func NewVariable(name token.Token) *Variable {
	return &Variable{exprBase: newExprBase(), Name: name}
}

// Assign is `name op value` where op is one of = += -= *= /=.
type Assign struct {
	exprBase
	Name  token.Token
	Op    token.Token
	Value Expr
}

func NewAssign(name, op token.Token, value Expr) *Assign {
	return &Assign{exprBase: newExprBase(), Name: name, Op: op, Value: value}
}

// Unary is a prefix operator: ! - ++ --.
type Unary struct {
	exprBase
	Op      token.Token
	Operand Expr
}

func NewUnary(op token.Token, operand Expr) *Unary {
	return &Unary{exprBase: newExprBase(), Op: op, Operand: operand}
}

// Postfix is a trailing operator applied to operand: ++ -- or the string
// newline-suffix operator \.
type Postfix struct {
	exprBase
	Operand Expr
	Op      token.Token
}

func NewPostfix(operand Expr, op token.Token) *Postfix {
	return &Postfix{exprBase: newExprBase(), Operand: operand, Op: op}
}

// Binary is a two-operand arithmetic/comparison/equality/comma expression.
type Binary struct {
	exprBase
	Left  Expr
	Op    token.Token
	Right Expr
}

func NewBinary(left Expr, op token.Token, right Expr) *Binary {
	return &Binary{exprBase: newExprBase(), Left: left, Op: op, Right: right}
}

// Logical is `and`/`or`, kept separate from Binary so the evaluator can
// short-circuit without inspecting the operator token.
type Logical struct {
	exprBase
	Left  Expr
	Op    token.Token
	Right Expr
}

func NewLogical(left Expr, op token.Token, right Expr) *Logical {
	return &Logical{exprBase: newExprBase(), Left: left, Op: op, Right: right}
}

// Ternary is `cond ? then : else`.
type Ternary struct {
	exprBase
	Cond     Expr
	Question token.Token
	Then     Expr
	Colon    token.Token
	Else     Expr
}

func NewTernary(cond Expr, question token.Token, then Expr, colon token.Token, els Expr) *Ternary {
	return &Ternary{exprBase: newExprBase(), Cond: cond, Question: question, Then: then, Colon: colon, Else: els}
}

// Call is `callee(args...)`. Paren is the closing `)` token, used to
// attribute runtime errors (wrong arity, non-callable target) to a line.
type Call struct {
	exprBase
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func NewCall(callee Expr, paren token.Token, args []Expr) *Call {
	return &Call{exprBase: newExprBase(), Callee: callee, Paren: paren, Args: args}
}

// Function is an anonymous function expression: `fun(params) { body }`.
// A named function declaration (ast.FunctionStmt) wraps one of these.
type Function struct {
	exprBase
	Params []token.Token
	Body   []Stmt
}

func NewFunction(params []token.Token, body []Stmt) *Function {
	return &Function{exprBase: newExprBase(), Params: params, Body: body}
}

// ---- Statements --------------------------------------------------------

type stmtBase struct{}

func (stmtBase) stmtNode() {}

// ExpressionStmt evaluates an expression for its side effects and discards
// the result.
type ExpressionStmt struct {
	stmtBase
	Expr Expr
}

// PrintStmt evaluates an expression and writes its stringified value.
type PrintStmt struct {
	stmtBase
	Expr Expr
}

// VarStmt declares a new binding, optionally initialized. Initializer is
// nil for `var x;`, which binds the uninitialized sentinel.
type VarStmt struct {
	stmtBase
	Name        token.Token
	Initializer Expr
}

// BlockStmt groups statements under a single new lexical scope.
type BlockStmt struct {
	stmtBase
	Statements []Stmt
}

// IfStmt is a conditional. Else is nil when there is no else-branch.
type IfStmt struct {
	stmtBase
	Cond Expr
	Then Stmt
	Else Stmt
}

// WhileStmt is a condition-checked loop.
type WhileStmt struct {
	stmtBase
	Cond Expr
	Body Stmt
}

// ForStmt is a C-style loop. Initializer, Cond, and Increment may each be
// nil (an absent condition means "loop forever").
type ForStmt struct {
	stmtBase
	Initializer Stmt
	Cond        Expr
	Increment   Expr
	Body        Stmt
}

// FunctionStmt is a named function declaration: `fun name(params) {body}`.
type FunctionStmt struct {
	stmtBase
	Name *token.Token
	Fn   *Function
}

// InterruptStmt is return/break/continue. Value is non-nil only for return,
// and only when a value expression followed the keyword.
type InterruptStmt struct {
	stmtBase
	Keyword token.Token
	Value   Expr
}
