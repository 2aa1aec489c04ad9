/*
File: parser_precedence.go implements the binary-operator precedence
ladder of spec.md §4.2, levels 2-11 (logical OR down to multiplicative).
Each level is left-associative and delegates to the next-higher level for
its operands, the standard precedence-climbing shape the teacher's own
parser_precedence.go uses for its (smaller) operator set.
*/
package parser

import "github.com/sigma-lang/sigmac/lexer"

func (p *Parser) logicalOr() Expr {
	expr := p.logicalAnd()
	for p.check(lexer.OR) {
		op := p.advance()
		right := p.logicalAnd()
		expr = &LogicalExpr{base{op}, expr, op.Type, right}
	}
	return expr
}

func (p *Parser) logicalAnd() Expr {
	expr := p.bitwiseOr()
	for p.check(lexer.AND) {
		op := p.advance()
		right := p.bitwiseOr()
		expr = &LogicalExpr{base{op}, expr, op.Type, right}
	}
	return expr
}

func (p *Parser) bitwiseOr() Expr {
	expr := p.bitwiseXor()
	for p.check(lexer.BIT_OR) {
		op := p.advance()
		right := p.bitwiseXor()
		expr = &BinaryExpr{base{op}, expr, op.Type, right}
	}
	return expr
}

func (p *Parser) bitwiseXor() Expr {
	expr := p.bitwiseAnd()
	for p.check(lexer.BIT_XOR) {
		op := p.advance()
		right := p.bitwiseAnd()
		expr = &BinaryExpr{base{op}, expr, op.Type, right}
	}
	return expr
}

func (p *Parser) bitwiseAnd() Expr {
	expr := p.equality()
	for p.check(lexer.BIT_AND) {
		op := p.advance()
		right := p.equality()
		expr = &BinaryExpr{base{op}, expr, op.Type, right}
	}
	return expr
}

func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.check(lexer.EQ) || p.check(lexer.NEQ) {
		op := p.advance()
		right := p.comparison()
		expr = &BinaryExpr{base{op}, expr, op.Type, right}
	}
	return expr
}

func (p *Parser) comparison() Expr {
	expr := p.shift()
	for p.check(lexer.LT) || p.check(lexer.GT) || p.check(lexer.LE) || p.check(lexer.GE) {
		op := p.advance()
		right := p.shift()
		expr = &BinaryExpr{base{op}, expr, op.Type, right}
	}
	return expr
}

func (p *Parser) shift() Expr {
	expr := p.additive()
	for p.check(lexer.SHL) || p.check(lexer.SHR) {
		op := p.advance()
		right := p.additive()
		expr = &BinaryExpr{base{op}, expr, op.Type, right}
	}
	return expr
}

func (p *Parser) additive() Expr {
	expr := p.multiplicative()
	for p.check(lexer.PLUS) || p.check(lexer.MINUS) {
		op := p.advance()
		right := p.multiplicative()
		expr = &BinaryExpr{base{op}, expr, op.Type, right}
	}
	return expr
}

func (p *Parser) multiplicative() Expr {
	expr := p.unary()
	for p.check(lexer.STAR) || p.check(lexer.SLASH) || p.check(lexer.PERCENT) {
		op := p.advance()
		right := p.unary()
		expr = &BinaryExpr{base{op}, expr, op.Type, right}
	}
	return expr
}
