/*
File    : glox/parser/statements.go
Package : parser
*/
package parser

import (
	"github.com/glox-lang/glox/ast"
	"github.com/glox-lang/glox/token"
)

// statement dispatches on the current token to the right statement
// production. Anything that isn't a recognized statement keyword falls
// through to expressionStatement.
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.LEFT_BRACE):
		return &ast.BlockStmt{Statements: p.block()}
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.BREAK), p.match(token.CONTINUE):
		return p.loopInterruptStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after value.")
	return &ast.PrintStmt{Expr: value}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expr: expr}
}

// block parses statements up to (and consuming) the closing brace. The
// caller is responsible for having consumed the opening brace.
func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		stmt := p.recoverStmt(p.declaration)
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.consume(token.RIGHT_BRACE, "Expect '}' after block.")
	return statements
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Cond: cond, Then: thenBranch, Else: elseBranch}
}

// enterLoop/exitLoop track the loop-body depth so break/continue can be
// rejected outside any loop. The depth is restored even when a parse error
// unwinds through recoverStmt, because exitLoop runs via defer.
func (p *Parser) enterLoop() { p.loopDepth++ }
func (p *Parser) exitLoop()  { p.loopDepth-- }

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after condition.")

	p.enterLoop()
	defer p.exitLoop()
	body := p.statement()
	return &ast.WhileStmt{Cond: cond, Body: body}
}

func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		initializer = nil
	case p.match(token.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after for clauses.")

	p.enterLoop()
	defer p.exitLoop()
	body := p.statement()

	return &ast.ForStmt{Initializer: initializer, Cond: cond, Increment: increment, Body: body}
}

// loopInterruptStatement parses break/continue. Both are rejected outside a
// loop body; the parser already tracked loopDepth while parsing for/while
// bodies, so this is a pure static check with no evaluator involvement.
func (p *Parser) loopInterruptStatement() ast.Stmt {
	keyword := p.previous()
	if p.loopDepth == 0 {
		p.reportNoThrow(keyword, "'"+string(keyword.Type)+"' outside of a loop.")
	}
	p.consume(token.SEMICOLON, "Expect ';' after '"+string(keyword.Type)+"'.")
	return &ast.InterruptStmt{Keyword: keyword}
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after return value.")
	return &ast.InterruptStmt{Keyword: keyword, Value: value}
}
