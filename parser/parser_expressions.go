/*
File: parser_expressions.go is the expression-grammar entry point plus the
prefix-unary and postfix/call/index levels (§4.2 precedence levels 12
and 13). Level 1 (assignment) lives in parser_assignments.go; levels 2-11
(the binary ladder) live in parser_precedence.go; level 14 (primary) lives
in parser_literals.go. Splitting across files this way mirrors the
teacher's own parser_*.go layout, one file per expression concern rather
than one monolithic parseExpression switch.
*/
package parser

import "github.com/sigma-lang/sigmac/lexer"

// expression is the grammar's top-level expression production.
func (p *Parser) expression() Expr {
	return p.assignment()
}

// unary parses prefix `- ! ~ ++ --`, recursing on itself so prefixes
// stack (e.g. `!!x`), then falls through to postfix.
func (p *Parser) unary() Expr {
	switch p.peek().Type {
	case lexer.MINUS, lexer.NOT, lexer.BIT_NOT:
		op := p.advance()
		operand := p.unary()
		return &UnaryExpr{base{op}, op.Type, operand}
	case lexer.INCREMENT, lexer.DECREMENT:
		op := p.advance()
		operand := p.unary()
		ident, ok := operand.(*IdentifierExpr)
		if !ok {
			p.report.ParserError(op.Loc.Line, op.Lexeme, "prefix "+string(op.Type)+" requires an identifier operand")
			return operand
		}
		return &IncrementExpr{base{op}, ident.Name, op.Type, true}
	default:
		return p.postfix()
	}
}

// postfix parses a primary expression followed by any chain of postfix
// `++`/`--`, call `(...)`, and index `[...]` operators.
func (p *Parser) postfix() Expr {
	expr := p.primary()

	for {
		switch {
		case p.check(lexer.LPAREN):
			open := p.advance()
			args := p.callArguments(open)
			expr = &CallExpr{base{open}, expr, args}
		case p.check(lexer.LBRACKET):
			open := p.advance()
			idx := p.expression()
			p.expect(lexer.RBRACKET, "expected ']' after index expression")
			expr = &IndexExpr{base{open}, expr, idx}
		case p.check(lexer.INCREMENT) || p.check(lexer.DECREMENT):
			op := p.advance()
			ident, ok := expr.(*IdentifierExpr)
			if !ok {
				p.report.ParserError(op.Loc.Line, op.Lexeme, "postfix "+string(op.Type)+" requires an identifier operand")
				return expr
			}
			expr = &IncrementExpr{base{op}, ident.Name, op.Type, false}
		default:
			return expr
		}
	}
}
