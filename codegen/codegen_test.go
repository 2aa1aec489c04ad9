package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigma-lang/sigmac/diagnostics"
	"github.com/sigma-lang/sigmac/lexer"
	"github.com/sigma-lang/sigmac/parser"
)

// generate runs the full lex/parse/codegen pipeline and fails the test if
// any stage reports an error, returning the generated module's textual IR.
func generate(t *testing.T, src string) string {
	t.Helper()
	report := diagnostics.New()
	tokens := lexer.New(src, "<test>", report).Tokens()
	require.False(t, report.HadError(), "lexer errors: %v", report.Errors())

	program := parser.New(tokens, report).Parse()
	require.False(t, report.HadError(), "parser errors: %v", report.Errors())

	module, ok := New(report).Generate(program)
	require.True(t, ok, "codegen errors: %v", report.Errors())
	return module.String()
}

func TestGenerate_VarDeclAndPrint(t *testing.T) {
	ir := generate(t, "fr x = 5\nsay x\n")
	assert.Contains(t, ir, "define i32 @main")
	assert.Contains(t, ir, "declare i32 @printf")
	assert.Contains(t, ir, "%g")
}

func TestGenerate_FunctionCallRoundTrip(t *testing.T) {
	ir := generate(t, "vibe add(a, b) {\n send a + b\n}\nsay add(10, 20)\n")
	assert.Contains(t, ir, "define double @add(double %a, double %b)")
	assert.Contains(t, ir, "call double @add(double")
}

func TestGenerate_ForLoopCounts(t *testing.T) {
	ir := generate(t, "fr total = 0\nedge (fr i = 0, i < 10, i++) {\n total += i\n}\nsay total\n")
	assert.Contains(t, ir, "fadd")
	assert.Contains(t, ir, "fcmp")
}

func TestGenerate_BreakAndContinueInWhile(t *testing.T) {
	ir := generate(t, "fr i = 0\ngoon (i < 10) {\n i = i + 1\n lowkey (i == 5) {\n mog\n }\n skip\n}\n")
	assert.Contains(t, ir, "br label")
}

func TestGenerate_ArrayLiteralIndexAndReassign(t *testing.T) {
	ir := generate(t, "fr xs = [1, 2, 3]\nxs[0] = 9\nsay xs[0]\n")
	assert.Contains(t, ir, "[3 x double]")
	assert.Contains(t, ir, "getelementptr")
}

func TestGenerate_StringInterpolation(t *testing.T) {
	ir := generate(t, `fr name = "world"
say "hello {name}"
`)
	assert.Contains(t, ir, "%s")
}

func TestGenerate_ExactlyOneMainAndOnePrintf(t *testing.T) {
	ir := generate(t, "say 1\nsay 2\n")
	assert.Equal(t, 1, strings.Count(ir, "define i32 @main"))
	assert.Equal(t, 1, strings.Count(ir, "declare i32 @printf"))
}

func TestGenerate_NoDuplicateStringGlobalsForRepeatedLiteral(t *testing.T) {
	ir := generate(t, `say "same"
say "same"
`)
	assert.Equal(t, 1, strings.Count(ir, `c"same`))
}

func TestGenerate_EveryBasicBlockTerminated(t *testing.T) {
	report := diagnostics.New()
	tokens := lexer.New("fr i = 0\ngoon (i < 3) {\n i += 1\n}\nsay i\n", "<test>", report).Tokens()
	program := parser.New(tokens, report).Parse()
	require.False(t, report.HadError())

	module, ok := New(report).Generate(program)
	require.True(t, ok)

	for _, fn := range module.Funcs {
		for _, blk := range fn.Blocks {
			assert.NotNil(t, blk.Term, "block %s in %s has no terminator", blk.LocalName, fn.GlobalName)
		}
	}
}

func TestGenerate_BreakOutsideLoopReportsSemanticError(t *testing.T) {
	report := diagnostics.New()
	tokens := lexer.New("mog\n", "<test>", report).Tokens()
	program := parser.New(tokens, report).Parse()
	require.False(t, report.HadError())

	_, ok := New(report).Generate(program)
	assert.False(t, ok)
	assert.True(t, report.HadError())
}

func TestGenerate_ShortCircuitLogicalOr(t *testing.T) {
	ir := generate(t, "fr a = 1\nfr b = 0\nsay a || b\n")
	assert.Contains(t, ir, "phi double")
}

func TestGenerate_ShortCircuitLogicalAnd(t *testing.T) {
	ir := generate(t, "fr a = 1\nfr b = 0\nsay a && b\n")
	assert.Contains(t, ir, "phi double")
}

// Both incoming edges of the short-circuit phi must carry the same
// double representation: the constant short-circuit value and a
// truthy-converted (uitofp) RHS, never the RHS's raw value.
func TestGenerate_LogicalOrConvertsRHSToBoolean(t *testing.T) {
	ir := generate(t, "fr a = 0\nfr b = 5\nsay a || b\n")
	assert.Contains(t, ir, "uitofp")
}

func TestGenerate_StringEqualityCompares(t *testing.T) {
	ir := generate(t, `say "a" == "b"
`)
	assert.Contains(t, ir, "icmp eq")
}

func TestGenerate_StringOrderingComparisonIsSemanticError(t *testing.T) {
	report := diagnostics.New()
	tokens := lexer.New(`say "a" < "b"
`, "<test>", report).Tokens()
	program := parser.New(tokens, report).Parse()
	require.False(t, report.HadError())

	_, ok := New(report).Generate(program)
	assert.False(t, ok)
	assert.True(t, report.HadError())
}

func TestGenerate_StringNumberComparisonIsSemanticError(t *testing.T) {
	report := diagnostics.New()
	tokens := lexer.New(`fr name = "a"
say name == 1
`, "<test>", report).Tokens()
	program := parser.New(tokens, report).Parse()
	require.False(t, report.HadError())

	_, ok := New(report).Generate(program)
	assert.False(t, ok)
	assert.True(t, report.HadError())
}

func TestGenerate_SwitchStatement(t *testing.T) {
	ir := generate(t, "fr x = 2\nsimp (x) {\n stan 1: {\n say 1\n }\n stan 2: {\n say 2\n }\n ghost: {\n say 0\n }\n}\n")
	assert.Contains(t, ir, "fcmp")
}

func TestGenerate_TryCatchOnlyTryWired(t *testing.T) {
	ir := generate(t, "yeet {\n say 1\n} caught {\n say 2\n}\n")
	assert.Contains(t, ir, "unreachable")
}
