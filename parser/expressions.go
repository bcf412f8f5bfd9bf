/*
File    : glox/parser/expressions.go
Package : parser
*/
package parser

import (
	"fmt"

	"github.com/glox-lang/glox/ast"
	"github.com/glox-lang/glox/token"
)

// expression is the widest expression production: the comma operator.
func (p *Parser) expression() ast.Expr {
	return p.comma()
}

// comma parses one or more conditional expressions joined by ','. The
// evaluator's comma operator returns the right operand, or the concatenation
// of both stringified operands when either one is a string.
func (p *Parser) comma() ast.Expr {
	expr := p.conditional()
	for p.match(token.COMMA) {
		op := p.previous()
		right := p.conditional()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

// conditional parses an assignment, optionally suffixed by `? then : else`.
// The else-branch recurses into conditional (not assignment) so ternaries
// associate to the right: `a ? b : c ? d : e` == `a ? b : (c ? d : e)`.
func (p *Parser) conditional() ast.Expr {
	expr := p.assignment()
	if p.match(token.QUESTION) {
		question := p.previous()
		then := p.expression()
		colon := p.consume(token.COLON, "Expect ':' after then branch of ternary expression.")
		elseBranch := p.conditional()
		expr = ast.NewTernary(expr, question, then, colon, elseBranch)
	}
	return expr
}

// assignment parses `target op value` where op is one of = += -= *= /=, and
// value is parsed right-associatively. The target must structurally be a
// Variable; any other left-hand side is a static error, but parsing
// continues with the already-parsed left expression rather than aborting.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.matchAssignOp() {
		op := p.previous()
		value := p.assignment()

		if v, ok := expr.(*ast.Variable); ok {
			return ast.NewAssign(v.Name, op, value)
		}
		p.reportNoThrow(op, "Invalid assignment target.")
		return expr
	}
	return expr
}

func (p *Parser) matchAssignOp() bool {
	return p.match(token.EQUAL, token.PLUS_EQUAL, token.MINUS_EQUAL, token.STAR_EQUAL, token.SLASH_EQUAL)
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = ast.NewLogical(expr, op, right)
	}
	return expr
}

// and is parsed as the source's actual (if arguably buggy) behavior: the
// right operand recurses into and() itself rather than the tighter
// equality() level, making `and` right-associative despite being labeled
// left-associative in the precedence table. See spec.md §9's open question
// on this exact point; glox preserves the source behavior for fidelity.
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	if p.match(token.AND) {
		op := p.previous()
		right := p.and()
		expr = ast.NewLogical(expr, op, right)
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.PLUS, token.MINUS) {
		op := p.previous()
		right := p.factor()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.STAR, token.SLASH) {
		op := p.previous()
		right := p.unary()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

// unary parses the prefix operators ! - ++ --, right-associatively.
// Prefix ++/-- additionally require the operand to structurally be a
// Variable, per spec.md §4.2.
func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS, token.PLUS_PLUS, token.MINUS_MINUS) {
		op := p.previous()
		right := p.unary()
		if op.Type == token.PLUS_PLUS || op.Type == token.MINUS_MINUS {
			if !isVariableExpr(right) {
				p.reportNoThrow(op, "Can only increment or decrement variables.")
			}
		}
		return ast.NewUnary(op, right)
	}
	return p.postfix()
}

// postfix applies at most one trailing ++/--/\ to a call expression. Two
// adjacent postfix ++/-- (`x++++`) are rejected since the first application
// does not yield a variable to apply the second to.
func (p *Parser) postfix() ast.Expr {
	expr := p.call()

	if p.check(token.PLUS_PLUS) || p.check(token.MINUS_MINUS) {
		op := p.advance()
		if !isVariableExpr(expr) {
			p.reportNoThrow(op, "Can only increment or decrement variables.")
		}
		expr = ast.NewPostfix(expr, op)
		if p.check(token.PLUS_PLUS) || p.check(token.MINUS_MINUS) {
			p.reportNoThrow(p.peek(), "Can only increment or decrement variables.")
		}
		return expr
	}
	if p.match(token.BACKSLASH) {
		op := p.previous()
		expr = ast.NewPostfix(expr, op)
	}
	return expr
}

// call parses zero or more chained call suffixes: f(1)(2)(3).
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for p.match(token.LEFT_PAREN) {
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.reportNoThrow(p.peek(), fmt.Sprintf("Can't have more than %d arguments.", maxArgs))
			}
			args = append(args, p.conditional())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RIGHT_PAREN, "Expect ')' after arguments.")
	return ast.NewCall(callee, paren, args)
}

// binaryOperatorStartsPrimary lists tokens that legally only appear as
// infix operators. Encountering one where a primary expression is expected
// means the left-hand operand was omitted (spec.md §4.2's error
// production): report it, consume the right-hand side at the matching
// precedence so the parser re-synchronizes cleanly, and yield a nil
// placeholder expression.
var binaryOperatorStartsPrimary = map[token.Type]bool{
	token.BANG_EQUAL: true, token.EQUAL_EQUAL: true,
	token.LESS: true, token.LESS_EQUAL: true, token.GREATER: true, token.GREATER_EQUAL: true,
	token.PLUS: true, token.SLASH: true, token.STAR: true,
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return ast.NewLiteral(false)
	case p.match(token.TRUE):
		return ast.NewLiteral(true)
	case p.match(token.NIL):
		return ast.NewLiteral(nil)
	case p.match(token.NUMBER, token.STRING):
		return ast.NewLiteral(p.previous().Literal)
	case p.match(token.IDENTIFIER):
		return ast.NewVariable(p.previous())
	case p.match(token.FUN):
		return p.functionBody("function")
	case p.match(token.LEFT_PAREN):
		expr := p.expression()
		p.consume(token.RIGHT_PAREN, "Expect ')' after expression.")
		return ast.NewGrouping(expr)
	}

	if binaryOperatorStartsPrimary[p.peek().Type] {
		op := p.advance()
		p.reportNoThrow(op, "Missing left-hand operand.")
		switch op.Type {
		case token.BANG_EQUAL, token.EQUAL_EQUAL:
			p.comparison()
		case token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL:
			p.term()
		case token.PLUS:
			p.factor()
		case token.SLASH, token.STAR:
			p.unary()
		}
		return ast.NewLiteral(nil)
	}

	panic(p.error(p.peek(), "Expect expression."))
}

func isVariableExpr(e ast.Expr) bool {
	_, ok := e.(*ast.Variable)
	return ok
}
