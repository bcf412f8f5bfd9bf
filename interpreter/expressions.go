/*
File    : glox/interpreter/expressions.go
Package : interpreter
*/
package interpreter

import (
	"github.com/glox-lang/glox/ast"
	"github.com/glox-lang/glox/token"
	"github.com/glox-lang/glox/value"
)

func (interp *Interpreter) evaluate(e ast.Expr) (value.Value, error) {
	switch n := e.(type) {
	case *ast.Literal:
		return n.Value, nil

	case *ast.Grouping:
		return interp.evaluate(n.Inner)

	case *ast.Variable:
		return interp.lookupVariable(n.Name, n.ExprID())

	case *ast.Assign:
		return interp.evalAssign(n)

	case *ast.Unary:
		return interp.evalUnary(n)

	case *ast.Postfix:
		return interp.evalPostfix(n)

	case *ast.Binary:
		return interp.evalBinary(n)

	case *ast.Logical:
		return interp.evalLogical(n)

	case *ast.Ternary:
		return interp.evalTernary(n)

	case *ast.Call:
		return interp.evalCall(n)

	case *ast.Function:
		return NewFunction("", n, interp.env), nil

	default:
		panic("interpreter: unhandled expression type")
	}
}

func (interp *Interpreter) lookupVariable(name token.Token, id ast.ID) (value.Value, error) {
	var v value.Value
	var ok bool
	if distance, found := interp.distances[id]; found {
		v = interp.env.GetAt(distance, name.Lexeme)
		ok = true
	} else {
		v, ok = interp.Globals.Get(name.Lexeme)
	}
	if !ok {
		return nil, newRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
	}
	if value.IsUninitialized(v) {
		return nil, newRuntimeError(name, "Variable '%s' used without initialization.", name.Lexeme)
	}
	return v, nil
}

func (interp *Interpreter) assignVariable(name token.Token, id ast.ID, v value.Value) error {
	if distance, found := interp.distances[id]; found {
		interp.env.AssignAt(distance, name.Lexeme, v)
		return nil
	}
	if !interp.Globals.Assign(name.Lexeme, v) {
		return newRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
	}
	return nil
}

func (interp *Interpreter) evalAssign(n *ast.Assign) (value.Value, error) {
	newVal, err := interp.evaluate(n.Value)
	if err != nil {
		return nil, err
	}

	if n.Op.Type == token.EQUAL {
		if err := interp.assignVariable(n.Name, n.ExprID(), newVal); err != nil {
			return nil, err
		}
		return newVal, nil
	}

	old, err := interp.lookupVariable(n.Name, n.ExprID())
	if err != nil {
		return nil, err
	}

	var result value.Value
	switch n.Op.Type {
	case token.PLUS_EQUAL:
		result, err = addValues(old, newVal, n.Op)
	case token.MINUS_EQUAL:
		result, err = numericBinary(old, newVal, n.Op, func(a, b float64) float64 { return a - b })
	case token.STAR_EQUAL:
		result, err = numericBinary(old, newVal, n.Op, func(a, b float64) float64 { return a * b })
	case token.SLASH_EQUAL:
		result, err = numericBinary(old, newVal, n.Op, func(a, b float64) float64 { return a / b })
	default:
		panic("interpreter: unhandled compound assignment operator")
	}
	if err != nil {
		return nil, err
	}

	if err := interp.assignVariable(n.Name, n.ExprID(), result); err != nil {
		return nil, err
	}
	return result, nil
}

// evalUnary handles the prefix operators: ! - ++ --. Prefix ++/-- require a
// Variable operand (the parser already enforced this structurally) and
// return the *new* value.
func (interp *Interpreter) evalUnary(n *ast.Unary) (value.Value, error) {
	switch n.Op.Type {
	case token.BANG:
		v, err := interp.evaluate(n.Operand)
		if err != nil {
			return nil, err
		}
		return !value.IsTruthy(v), nil

	case token.MINUS:
		v, err := interp.evaluate(n.Operand)
		if err != nil {
			return nil, err
		}
		num, ok := v.(float64)
		if !ok {
			return nil, newRuntimeError(n.Op, "Operand must be a number.")
		}
		return -num, nil

	case token.PLUS_PLUS, token.MINUS_MINUS:
		return interp.evalIncrDecr(n.Operand, n.Op, true)

	default:
		panic("interpreter: unhandled unary operator")
	}
}

func (interp *Interpreter) evalPostfix(n *ast.Postfix) (value.Value, error) {
	switch n.Op.Type {
	case token.PLUS_PLUS, token.MINUS_MINUS:
		return interp.evalIncrDecr(n.Operand, n.Op, false)

	case token.BACKSLASH:
		v, err := interp.evaluate(n.Operand)
		if err != nil {
			return nil, err
		}
		s, ok := v.(string)
		if !ok {
			return nil, newRuntimeError(n.Op, "Operand of '\\' must be a string.")
		}
		return s + "\n", nil

	default:
		panic("interpreter: unhandled postfix operator")
	}
}

// evalIncrDecr shares the fetch/require-number/write-back/return-old-or-new
// logic between prefix and postfix ++/--. The operand is always a
// *ast.Variable (the parser guarantees this structurally).
func (interp *Interpreter) evalIncrDecr(operand ast.Expr, op token.Token, prefix bool) (value.Value, error) {
	v, ok := operand.(*ast.Variable)
	if !ok {
		return nil, newRuntimeError(op, "Can only increment or decrement variables.")
	}
	old, err := interp.lookupVariable(v.Name, v.ExprID())
	if err != nil {
		return nil, err
	}
	num, ok := old.(float64)
	if !ok {
		return nil, newRuntimeError(op, "Operand must be a number.")
	}

	delta := 1.0
	if op.Type == token.MINUS_MINUS {
		delta = -1.0
	}
	newVal := num + delta

	if err := interp.assignVariable(v.Name, v.ExprID(), newVal); err != nil {
		return nil, err
	}
	if prefix {
		return newVal, nil
	}
	return num, nil
}

func (interp *Interpreter) evalBinary(n *ast.Binary) (value.Value, error) {
	left, err := interp.evaluate(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := interp.evaluate(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op.Type {
	case token.COMMA:
		// Normally the right operand; if either side is a string, the
		// stringified operands are concatenated instead, which is what
		// lets `print "x =", x;`-style comma chains read as one line.
		if _, ok := left.(string); ok {
			return value.Stringify(left) + value.Stringify(right), nil
		}
		if _, ok := right.(string); ok {
			return value.Stringify(left) + value.Stringify(right), nil
		}
		return right, nil

	case token.PLUS:
		return addValues(left, right, n.Op)

	case token.MINUS:
		return numericBinary(left, right, n.Op, func(a, b float64) float64 { return a - b })
	case token.STAR:
		return numericBinary(left, right, n.Op, func(a, b float64) float64 { return a * b })
	case token.SLASH:
		return numericBinary(left, right, n.Op, func(a, b float64) float64 { return a / b })

	case token.GREATER:
		return numericCompare(left, right, n.Op, func(a, b float64) bool { return a > b })
	case token.GREATER_EQUAL:
		return numericCompare(left, right, n.Op, func(a, b float64) bool { return a >= b })
	case token.LESS:
		return numericCompare(left, right, n.Op, func(a, b float64) bool { return a < b })
	case token.LESS_EQUAL:
		return numericCompare(left, right, n.Op, func(a, b float64) bool { return a <= b })

	case token.EQUAL_EQUAL:
		return value.IsEqual(left, right), nil
	case token.BANG_EQUAL:
		return !value.IsEqual(left, right), nil

	default:
		panic("interpreter: unhandled binary operator")
	}
}

func addValues(left, right value.Value, op token.Token) (value.Value, error) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if lok && rok {
		return ln + rn, nil
	}
	_, lstr := left.(string)
	_, rstr := right.(string)
	if lstr || rstr {
		return value.Stringify(left) + value.Stringify(right), nil
	}
	return nil, newRuntimeError(op, "Operands must be two numbers or two strings.")
}

func numericBinary(left, right value.Value, op token.Token, f func(a, b float64) float64) (value.Value, error) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		return nil, newRuntimeError(op, "Operands must be a number.")
	}
	return f(ln, rn), nil
}

func numericCompare(left, right value.Value, op token.Token, f func(a, b float64) bool) (value.Value, error) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		return nil, newRuntimeError(op, "Operands must be a number.")
	}
	return f(ln, rn), nil
}

func (interp *Interpreter) evalLogical(n *ast.Logical) (value.Value, error) {
	left, err := interp.evaluate(n.Left)
	if err != nil {
		return nil, err
	}
	if n.Op.Type == token.OR {
		if value.IsTruthy(left) {
			return left, nil
		}
	} else { // AND
		if !value.IsTruthy(left) {
			return left, nil
		}
	}
	return interp.evaluate(n.Right)
}

// evalTernary evaluates both branches unconditionally, matching the
// source's behavior, and returns whichever one the condition selects.
func (interp *Interpreter) evalTernary(n *ast.Ternary) (value.Value, error) {
	cond, err := interp.evaluate(n.Cond)
	if err != nil {
		return nil, err
	}
	thenVal, err := interp.evaluate(n.Then)
	if err != nil {
		return nil, err
	}
	elseVal, err := interp.evaluate(n.Else)
	if err != nil {
		return nil, err
	}
	if value.IsTruthy(cond) {
		return thenVal, nil
	}
	return elseVal, nil
}

func (interp *Interpreter) evalCall(n *ast.Call) (value.Value, error) {
	callee, err := interp.evaluate(n.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, 0, len(n.Args))
	for _, argExpr := range n.Args {
		arg, err := interp.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(n.Paren, "Can only call functions.")
	}
	if len(args) != callable.Arity() {
		return nil, newRuntimeError(n.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(interp, args)
}
