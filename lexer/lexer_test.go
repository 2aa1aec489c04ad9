package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestLexer_Operators(t *testing.T) {
	toks := New(`+ - * / % += -= *= /= %= ++ -- == != < > <= >= && || ! & | ^ ~ << >> =`, "", nil).Tokens()
	want := []TokenType{
		PLUS, MINUS, STAR, SLASH, PERCENT,
		PLUS_ASSIGN, MINUS_ASSIGN, STAR_ASSIGN, SLASH_ASSIGN, PERCENT_ASSIGN,
		INCREMENT, DECREMENT,
		EQ, NEQ, LT, GT, LE, GE,
		AND, OR, NOT,
		BIT_AND, BIT_OR, BIT_XOR, BIT_NOT, SHL, SHR,
		ASSIGN, EOF,
	}
	assert.Equal(t, want, kinds(toks))
}

func TestLexer_KeywordsMapOneToOne(t *testing.T) {
	src := "fr say lowkey midkey highkey goon edge vibe send ongod cap nah mog skip simp stan ghost yeet caught"
	toks := New(src, "", nil).Tokens()
	want := []TokenType{VAR, PRINT, IF, ELSEIF, ELSE, WHILE, FOR, FUNC, RETURN,
		TRUE, FALSE, NULL, BREAK, CONTINUE, SWITCH, CASE, DEFAULT, TRY, CATCH, EOF}
	assert.Equal(t, want, kinds(toks))
}

func TestLexer_NumberLiterals(t *testing.T) {
	toks := New(`42 3.14 0`, "", nil).Tokens()
	a := assert.New(t)
	a.Equal(INT, toks[0].Type)
	a.Equal(int64(42), toks[0].Literal.Int)
	a.Equal(FLOAT, toks[1].Type)
	a.InDelta(3.14, toks[1].Literal.Float, 1e-9)
	a.Equal(INT, toks[2].Type)
	a.Equal(int64(0), toks[2].Literal.Int)
}

func TestLexer_StringLiteral(t *testing.T) {
	toks := New(`"hello world"`, "", nil).Tokens()
	assert.Equal(t, STRING, toks[0].Type)
	assert.Equal(t, "hello world", toks[0].Literal.Str)
}

func TestLexer_InterpolatedString(t *testing.T) {
	toks := New(`"greet {name}"`, "", nil).Tokens()
	assert.Equal(t, INTERP_STRING, toks[0].Type)
	assert.Equal(t, "greet {name}", toks[0].Literal.Str)
}

func TestLexer_StringWithoutPlaceholderIsPlainString(t *testing.T) {
	toks := New(`"no placeholder here"`, "", nil).Tokens()
	assert.Equal(t, STRING, toks[0].Type)
}

func TestLexer_EscapesAreNotDecoded(t *testing.T) {
	toks := New(`"a\nb"`, "", nil).Tokens()
	assert.Equal(t, `a\nb`, toks[0].Literal.Str)
}

func TestLexer_UnterminatedStringReportsError(t *testing.T) {
	lx := New(`"unterminated`, "", nil)
	toks := lx.Tokens()
	assert.Equal(t, INVALID, toks[0].Type)
	assert.True(t, lx.report.HadError())
}

func TestLexer_LineCommentsIgnored(t *testing.T) {
	toks := New("fr x = 1 # this is a comment\nsay x", "", nil).Tokens()
	assert.Equal(t, []TokenType{VAR, IDENT, ASSIGN, INT, PRINT, IDENT, EOF}, kinds(toks))
}

func TestLexer_TracksLineNumbers(t *testing.T) {
	toks := New("fr x = 1\nsay x\n", "", nil).Tokens()
	assert.Equal(t, 1, toks[0].Loc.Line)
	var sayTok Token
	for _, tok := range toks {
		if tok.Type == PRINT {
			sayTok = tok
		}
	}
	assert.Equal(t, 2, sayTok.Loc.Line)
}

func TestLexer_Identifiers(t *testing.T) {
	toks := New(`abc a12 _under`, "", nil).Tokens()
	assert.Equal(t, []TokenType{IDENT, IDENT, IDENT, EOF}, kinds(toks))
}

func TestLexer_EmitsTrailingEOF(t *testing.T) {
	toks := New(``, "", nil).Tokens()
	assert.Len(t, toks, 1)
	assert.Equal(t, EOF, toks[0].Type)
}
