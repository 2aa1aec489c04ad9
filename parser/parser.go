/*
Package parser implements a recursive-descent, precedence-climbing parser
for Sigma.

Grounded on the teacher's parser/parser.go: a single cursor over the token
slice, a collected-not-fatal error discipline, and a Parser struct that
owns its own position. The teacher collects errors into a bare
`[]string` and never resynchronizes past the offending token; this parser
additionally implements panic-mode recovery using a
Go panic/recover pair scoped to one top-level declaration, the same
technique the teacher's own codebase uses for `executeFileWithRecovery`
at the driver level, just applied one layer down.
*/
package parser

import (
	"github.com/sigma-lang/sigmac/diagnostics"
	"github.com/sigma-lang/sigmac/lexer"
)

// Parser consumes a token stream and produces a Program.
type Parser struct {
	tokens []lexer.Token
	pos    int
	report *diagnostics.Reporter
}

// New creates a Parser over tokens. report receives syntax diagnostics; if
// nil, a private Reporter is allocated.
func New(tokens []lexer.Token, report *diagnostics.Reporter) *Parser {
	if report == nil {
		report = diagnostics.New()
	}
	return &Parser{tokens: tokens, report: report}
}

// parseError is panicked to unwind to the nearest declaration boundary
// once a diagnostic has already been recorded on the Reporter.
type parseError struct{}

func (parseError) Error() string { return "parse error" }

// Parse consumes the entire token stream and returns the resulting
// Program. Malformed declarations are skipped (after being reported) so
// parsing can continue and surface further errors in one run.
func (p *Parser) Parse() *Program {
	prog := &Program{}
	for !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}
	return prog
}

// ---- cursor primitives ----

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) lexer.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.pos-1]
}

func (p *Parser) atEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) advance() lexer.Token {
	if !p.atEnd() {
		p.pos++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.atEnd() {
		return t == lexer.EOF
	}
	return p.peek().Type == t
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it has type t, else reports msg at
// the current token and unwinds via panic(parseError{}).
func (p *Parser) expect(t lexer.TokenType, msg string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	p.fail(p.peek(), msg)
	return lexer.Token{}
}

// fail records a syntax diagnostic at tok and unwinds to the nearest
// declaration boundary.
func (p *Parser) fail(tok lexer.Token, msg string, hint ...string) {
	desc := tok.Lexeme
	if tok.Type == lexer.EOF {
		desc = "end of file"
	}
	p.report.ParserError(tok.Loc.Line, desc, msg, hint...)
	panic(parseError{})
}

// synchronize discards tokens until a statement-introducing keyword or EOF,
// per spec.md §4.2's panic-mode recovery policy.
func (p *Parser) synchronize() {
	for !p.atEnd() {
		switch p.peek().Type {
		case lexer.VAR, lexer.PRINT, lexer.IF, lexer.WHILE, lexer.FOR,
			lexer.FUNC, lexer.RETURN, lexer.BREAK, lexer.CONTINUE,
			lexer.SWITCH, lexer.TRY:
			return
		}
		p.advance()
	}
}

// declaration parses one top-level-or-nested declaration, recovering via
// panic-mode if a parseError unwinds through it.
func (p *Parser) declaration() (stmt Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	switch {
	case p.check(lexer.VAR):
		return p.varDecl()
	case p.check(lexer.FUNC):
		return p.funcDef()
	default:
		return p.statement()
	}
}
