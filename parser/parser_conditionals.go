package parser

import "github.com/sigma-lang/sigmac/lexer"

// ifStatement parses `lowkey (cond) block (midkey (cond) block)* (highkey
// block)?`, lowering the else-if chain into nested IfStmt nodes the way
// spec.md §4.2 describes.
func (p *Parser) ifStatement() Stmt {
	tok := p.advance() // consume 'lowkey'
	return p.ifTail(tok)
}

func (p *Parser) ifTail(tok lexer.Token) Stmt {
	p.expect(lexer.LPAREN, "expected '(' after 'lowkey'")
	cond := p.expression()
	p.expect(lexer.RPAREN, "expected ')' after condition")
	then := p.block()

	stmt := &IfStmt{base{tok}, cond, then, nil}

	if p.check(lexer.ELSEIF) {
		elseifTok := p.advance()
		stmt.Else = p.ifTail(elseifTok)
		return stmt
	}
	if p.check(lexer.ELSE) {
		p.advance()
		stmt.Else = p.block()
	}
	return stmt
}
