package parser

import "github.com/sigma-lang/sigmac/lexer"

// whileStatement parses `goon (cond) block`.
func (p *Parser) whileStatement() Stmt {
	tok := p.advance() // consume 'goon'
	p.expect(lexer.LPAREN, "expected '(' after 'goon'")
	cond := p.expression()
	p.expect(lexer.RPAREN, "expected ')' after condition")
	body := p.block()
	return &WhileStmt{base{tok}, cond, body}
}

// forStatement parses `edge (init, cond, incr) block`. Per spec.md §6, the
// three clauses are comma-separated (not semicolon-separated) and each may
// be empty.
func (p *Parser) forStatement() Stmt {
	tok := p.advance() // consume 'edge'
	p.expect(lexer.LPAREN, "expected '(' after 'edge'")

	var init Stmt
	if !p.check(lexer.COMMA) {
		if p.check(lexer.VAR) {
			init = p.varDecl()
		} else {
			init = p.exprStatement()
		}
	}
	p.expect(lexer.COMMA, "expected ',' after for-loop initializer")

	var cond Expr
	if !p.check(lexer.COMMA) {
		cond = p.expression()
	}
	p.expect(lexer.COMMA, "expected ',' after for-loop condition")

	var incr Expr
	if !p.check(lexer.RPAREN) {
		incr = p.expression()
	}
	p.expect(lexer.RPAREN, "expected ')' after for-loop clauses")

	body := p.block()
	return &ForStmt{base{tok}, init, cond, incr, body}
}
