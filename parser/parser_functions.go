package parser

import "github.com/sigma-lang/sigmac/lexer"

const maxParams = 255

// funcDef parses `vibe IDENT ( [IDENT (, IDENT)*] ) block`.
func (p *Parser) funcDef() Stmt {
	tok := p.advance() // consume 'vibe'
	name := p.expect(lexer.IDENT, "expected function name after 'vibe'")
	p.expect(lexer.LPAREN, "expected '(' after function name")

	var params []Param
	if !p.check(lexer.RPAREN) {
		for {
			pname := p.expect(lexer.IDENT, "expected parameter name")
			params = append(params, Param{Name: pname.Lexeme, Tok: pname})
			if len(params) > maxParams {
				p.report.ParserError(pname.Loc.Line, pname.Lexeme,
					"function has more than 255 parameters")
			}
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.expect(lexer.RPAREN, "expected ')' after parameter list")
	body := p.block()
	return &FuncDefStmt{base{tok}, name.Lexeme, params, body}
}

// callArguments parses a parenthesized, comma-separated argument list
// whose opening '(' has already been consumed by the caller.
func (p *Parser) callArguments(openParen lexer.Token) []Expr {
	var args []Expr
	if !p.check(lexer.RPAREN) {
		for {
			args = append(args, p.expression())
			if len(args) > maxParams {
				p.report.ParserError(openParen.Loc.Line, openParen.Lexeme,
					"call has more than 255 arguments")
			}
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.expect(lexer.RPAREN, "expected ')' after arguments")
	return args
}
