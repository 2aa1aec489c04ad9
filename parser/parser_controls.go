package parser

import "github.com/sigma-lang/sigmac/lexer"

// returnStatement parses `send [expr]`; the operand is optional, matching
// spec.md §6's `"send" [expr]` production.
func (p *Parser) returnStatement() Stmt {
	tok := p.advance() // consume 'send'
	var value Expr
	if p.canStartExpression() {
		value = p.expression()
	}
	return &ReturnStmt{base{tok}, value}
}

// canStartExpression reports whether the current token could begin a new
// expression, used to distinguish a bare `send` from `send expr`. Since
// newlines never terminate a statement (spec.md §6), a bare `send`
// immediately followed by another statement-introducing keyword (e.g.
// `mog` on the next line) must NOT be parsed as `send mog`.
func (p *Parser) canStartExpression() bool {
	switch p.peek().Type {
	case lexer.INT, lexer.FLOAT, lexer.STRING, lexer.INTERP_STRING,
		lexer.TRUE, lexer.FALSE, lexer.NULL, lexer.IDENT,
		lexer.LPAREN, lexer.LBRACKET,
		lexer.MINUS, lexer.NOT, lexer.BIT_NOT, lexer.INCREMENT, lexer.DECREMENT:
		return true
	default:
		return false
	}
}

// switchStatement parses `simp (expr) { (stan expr: block | ghost: block)* }`.
func (p *Parser) switchStatement() Stmt {
	tok := p.advance() // consume 'simp'
	p.expect(lexer.LPAREN, "expected '(' after 'simp'")
	value := p.expression()
	p.expect(lexer.RPAREN, "expected ')' after switch value")
	p.expect(lexer.LBRACE, "expected '{' to open switch body")

	var cases []SwitchCase
	for !p.check(lexer.RBRACE) && !p.atEnd() {
		switch {
		case p.check(lexer.CASE):
			p.advance()
			caseVal := p.expression()
			p.expect(lexer.COLON, "expected ':' after case value")
			body := p.block()
			cases = append(cases, SwitchCase{Value: caseVal, Body: body})
		case p.check(lexer.DEFAULT):
			p.advance()
			p.expect(lexer.COLON, "expected ':' after 'ghost'")
			body := p.block()
			cases = append(cases, SwitchCase{Body: body, IsDefault: true})
		default:
			p.fail(p.peek(), "expected 'stan' or 'ghost' in switch body")
		}
	}
	p.expect(lexer.RBRACE, "expected '}' to close switch body")
	return &SwitchStmt{base{tok}, value, cases}
}

// tryCatchStatement parses `yeet block caught block`; both blocks are
// mandatory per spec.md §4.2.
func (p *Parser) tryCatchStatement() Stmt {
	tok := p.advance() // consume 'yeet'
	tryBlock := p.block()
	p.expect(lexer.CATCH, "expected 'caught' after try block")
	catchBlock := p.block()
	return &TryCatchStmt{base{tok}, tryBlock, catchBlock}
}
