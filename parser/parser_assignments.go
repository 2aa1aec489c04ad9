package parser

import "github.com/sigma-lang/sigmac/lexer"

var compoundOps = map[lexer.TokenType]bool{
	lexer.PLUS_ASSIGN: true, lexer.MINUS_ASSIGN: true,
	lexer.STAR_ASSIGN: true, lexer.SLASH_ASSIGN: true, lexer.PERCENT_ASSIGN: true,
}

// assignment is the lowest-precedence expression level (right-associative):
// simple `=` and the compound-assignment family. Everything of higher
// precedence is parsed first as a candidate LHS, then validated.
func (p *Parser) assignment() Expr {
	expr := p.logicalOr()

	if p.check(lexer.ASSIGN) {
		eq := p.advance()
		value := p.assignment()
		return p.finishAssign(eq, expr, value)
	}

	if op := p.peek().Type; compoundOps[op] {
		opTok := p.advance()
		value := p.assignment()
		return p.finishCompoundAssign(opTok, expr, value)
	}

	return expr
}

// finishAssign validates target and builds the Assign/IndexAssign node for
// a simple `=`. An invalid LHS reports "invalid assignment target" at the
// `=` token and returns the original expression unchanged, per spec.md §4.2.
func (p *Parser) finishAssign(eq lexer.Token, target Expr, value Expr) Expr {
	switch t := target.(type) {
	case *IdentifierExpr:
		return &AssignExpr{base{eq}, t.Name, value}
	case *IndexExpr:
		return &IndexAssignExpr{base{eq}, t.Object, t.Index, value}
	default:
		p.report.ParserError(eq.Loc.Line, eq.Lexeme, "invalid assignment target")
		return target
	}
}

func (p *Parser) finishCompoundAssign(opTok lexer.Token, target Expr, value Expr) Expr {
	ident, ok := target.(*IdentifierExpr)
	if !ok {
		p.report.ParserError(opTok.Loc.Line, opTok.Lexeme, "invalid assignment target")
		return target
	}
	return &CompoundAssignExpr{base{opTok}, ident.Name, opTok.Type, value}
}
