/*
File    : glox/parser/declarations.go
Package : parser
*/
package parser

import (
	"fmt"

	"github.com/glox-lang/glox/ast"
	"github.com/glox-lang/glox/token"
)

// declaration parses a function declaration, var declaration, or plain
// statement. A `fun` token is only the start of a named declaration when an
// identifier follows it; otherwise it's an anonymous function expression
// and control falls through to statement() -> expressionStatement().
func (p *Parser) declaration() ast.Stmt {
	if p.check(token.FUN) && p.checkNext(token.IDENTIFIER) {
		p.advance() // consume 'fun'
		return p.functionDeclaration("function")
	}
	if p.match(token.VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

// functionDeclaration parses `fun name(params) { body }`, delegating the
// parameter list and body to functionBody, which anonymous function
// expressions call directly.
func (p *Parser) functionDeclaration(kind string) ast.Stmt {
	name := p.consume(token.IDENTIFIER, fmt.Sprintf("Expect %s name.", kind))
	fn := p.functionBody(kind)
	return &ast.FunctionStmt{Name: &name, Fn: fn}
}

// functionBody parses `(params) { body }`, shared by named declarations and
// anonymous function expressions. A function body is its own loop-free
// context: break/continue lexically inside it must not see an enclosing
// loop from the declaration site, so loopDepth is reset for the duration.
func (p *Parser) functionBody(kind string) *ast.Function {
	saved := p.loopDepth
	p.loopDepth = 0
	defer func() { p.loopDepth = saved }()

	p.consume(token.LEFT_PAREN, fmt.Sprintf("Expect '(' after %s name.", kind))
	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.reportNoThrow(p.peek(), fmt.Sprintf("Can't have more than %d parameters.", maxArgs))
			}
			params = append(params, p.consume(token.IDENTIFIER, "Expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after parameters.")
	p.consume(token.LEFT_BRACE, fmt.Sprintf("Expect '{' before %s body.", kind))
	body := p.block()
	return ast.NewFunction(params, body)
}

// varDeclaration parses `var name;` or `var name = initializer;`. An absent
// initializer binds the uninitialized sentinel (see value.Uninitialized).
func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect variable name.")
	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: initializer}
}
