package parser

import (
	"strings"

	"github.com/sigma-lang/sigmac/lexer"
)

// primary parses precedence level 14: literals, interpolated strings,
// array literals, identifiers, and parenthesized expressions.
func (p *Parser) primary() Expr {
	tok := p.peek()

	switch tok.Type {
	case lexer.INT:
		p.advance()
		return &LiteralExpr{base{tok}, LiteralInt, tok.Literal.Int, 0, false, ""}
	case lexer.FLOAT:
		p.advance()
		return &LiteralExpr{base{tok}, LiteralFloat, 0, tok.Literal.Float, false, ""}
	case lexer.STRING:
		p.advance()
		return &LiteralExpr{base{tok}, LiteralString, 0, 0, false, tok.Literal.Str}
	case lexer.INTERP_STRING:
		p.advance()
		return p.parseInterpolated(tok)
	case lexer.TRUE:
		p.advance()
		return &LiteralExpr{base{tok}, LiteralBool, 0, 0, true, ""}
	case lexer.FALSE:
		p.advance()
		return &LiteralExpr{base{tok}, LiteralBool, 0, 0, false, ""}
	case lexer.NULL:
		p.advance()
		return &LiteralExpr{base{tok}, LiteralNull, 0, 0, false, ""}
	case lexer.IDENT:
		p.advance()
		return &IdentifierExpr{base{tok}, tok.Lexeme}
	case lexer.LPAREN:
		p.advance()
		inner := p.expression()
		p.expect(lexer.RPAREN, "expected ')' after expression")
		return &GroupingExpr{base{tok}, inner}
	case lexer.LBRACKET:
		return p.arrayLiteral()
	}

	p.fail(tok, "expected expression")
	return nil
}

// arrayLiteral parses `[e1, ..., en]`, per spec.md §3's ArrayLiteral node.
func (p *Parser) arrayLiteral() Expr {
	tok := p.advance() // consume '['
	var elems []Expr
	if !p.check(lexer.RBRACKET) {
		for {
			elems = append(elems, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.expect(lexer.RBRACKET, "expected ']' to close array literal")
	return &ArrayLiteralExpr{base{tok}, elems}
}

// parseInterpolated splits an INTERP_STRING token's raw content on
// balanced `{...}` markers into alternating literal segments and
// identifier references, per spec.md §4.2: "inner text is trimmed; only
// identifier references are supported". No recursive expression parsing
// is performed inside the braces (§9 open question, resolved by spec.md).
func (p *Parser) parseInterpolated(tok lexer.Token) Expr {
	stringParts, names := splitInterpolated(tok.Literal.Str)

	exprParts := make([]*IdentifierExpr, len(names))
	for i, name := range names {
		exprParts[i] = &IdentifierExpr{base{tok}, name}
	}
	return &InterpolatedStringExpr{base{tok}, stringParts, exprParts}
}

func splitInterpolated(content string) (stringParts []string, names []string) {
	var buf strings.Builder
	i := 0
	for i < len(content) {
		if content[i] == '{' {
			if end := strings.IndexByte(content[i+1:], '}'); end >= 0 {
				stringParts = append(stringParts, buf.String())
				buf.Reset()
				names = append(names, strings.TrimSpace(content[i+1:i+1+end]))
				i = i + 1 + end + 1
				continue
			}
		}
		buf.WriteByte(content[i])
		i++
	}
	stringParts = append(stringParts, buf.String())
	return stringParts, names
}
