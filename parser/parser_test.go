package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigma-lang/sigmac/diagnostics"
	"github.com/sigma-lang/sigmac/lexer"
)

func parse(t *testing.T, src string) (*Program, *diagnostics.Reporter) {
	t.Helper()
	report := diagnostics.New()
	toks := lexer.New(src, "", report).Tokens()
	prog := New(toks, report).Parse()
	return prog, report
}

func TestParser_VarDeclAndPrint(t *testing.T) {
	prog, report := parse(t, `fr x = 5
say x`)
	require.False(t, report.HadError())
	require.Len(t, prog.Statements, 2)

	decl, ok := prog.Statements[0].(*VarDeclStmt)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name)
	lit, ok := decl.Initializer.(*LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, LiteralInt, lit.Kind)
	assert.Equal(t, int64(5), lit.Int)

	print, ok := prog.Statements[1].(*PrintStmt)
	require.True(t, ok)
	_, ok = print.Value.(*IdentifierExpr)
	assert.True(t, ok)
}

func TestParser_PrecedenceArithmeticOverAdditive(t *testing.T) {
	prog, report := parse(t, "1 + 2 * 3")
	require.False(t, report.HadError())
	expr := prog.Statements[0].(*ExprStmt).Value
	bin, ok := expr.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.PLUS, bin.Op)
	rhs, ok := bin.Right.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.STAR, rhs.Op)
}

func TestParser_LogicalBindsLooserThanBitwise(t *testing.T) {
	prog, report := parse(t, "a && b | c")
	require.False(t, report.HadError())
	expr := prog.Statements[0].(*ExprStmt).Value
	logical, ok := expr.(*LogicalExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.AND, logical.Op)
	_, ok = logical.Right.(*BinaryExpr)
	assert.True(t, ok)
}

func TestParser_AssignmentIsRightAssociative(t *testing.T) {
	prog, report := parse(t, "a = b = 1")
	require.False(t, report.HadError())
	outer, ok := prog.Statements[0].(*ExprStmt).Value.(*AssignExpr)
	require.True(t, ok)
	assert.Equal(t, "a", outer.Name)
	inner, ok := outer.Value.(*AssignExpr)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Name)
}

func TestParser_IndexIsValidAssignmentTarget(t *testing.T) {
	prog, report := parse(t, "a[0] = 1")
	require.False(t, report.HadError())
	assign, ok := prog.Statements[0].(*ExprStmt).Value.(*IndexAssignExpr)
	require.True(t, ok)
	_, ok = assign.Object.(*IdentifierExpr)
	assert.True(t, ok)
}

func TestParser_InvalidAssignmentTargetReportsErrorAndKeepsExpr(t *testing.T) {
	prog, report := parse(t, "1 + 2 = 3")
	assert.True(t, report.HadError())
	errs := report.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, diagnostics.Syntax, errs[0].Kind)
	assert.Contains(t, errs[0].Message, "invalid assignment target")
	_, ok := prog.Statements[0].(*ExprStmt).Value.(*BinaryExpr)
	assert.True(t, ok)
}

func TestParser_IfElseIfElseChainLowersToNestedIf(t *testing.T) {
	prog, report := parse(t, `lowkey (a) { say 1 } midkey (b) { say 2 } highkey { say 3 }`)
	require.False(t, report.HadError())
	outer, ok := prog.Statements[0].(*IfStmt)
	require.True(t, ok)
	inner, ok := outer.Else.(*IfStmt)
	require.True(t, ok)
	_, ok = inner.Else.(*BlockStmt)
	assert.True(t, ok)
}

func TestParser_ForClausesMayBeEmpty(t *testing.T) {
	prog, report := parse(t, `edge (,,) { say 1 }`)
	require.False(t, report.HadError())
	forStmt, ok := prog.Statements[0].(*ForStmt)
	require.True(t, ok)
	assert.Nil(t, forStmt.Init)
	assert.Nil(t, forStmt.Cond)
	assert.Nil(t, forStmt.Incr)
}

func TestParser_SwitchWithDefaultCase(t *testing.T) {
	prog, report := parse(t, `simp (x) { stan 1: { say 1 } ghost: { say 0 } }`)
	require.False(t, report.HadError())
	sw, ok := prog.Statements[0].(*SwitchStmt)
	require.True(t, ok)
	require.Len(t, sw.Cases, 2)
	assert.False(t, sw.Cases[0].IsDefault)
	assert.True(t, sw.Cases[1].IsDefault)
}

func TestParser_TryCatchRequiresBothBlocks(t *testing.T) {
	prog, report := parse(t, `yeet { say 1 } caught { say 2 }`)
	require.False(t, report.HadError())
	_, ok := prog.Statements[0].(*TryCatchStmt)
	assert.True(t, ok)
}

func TestParser_InterpolatedStringSplitsOnIdentifier(t *testing.T) {
	prog, report := parse(t, `"greet {name}"`)
	require.False(t, report.HadError())
	interp, ok := prog.Statements[0].(*ExprStmt).Value.(*InterpolatedStringExpr)
	require.True(t, ok)
	require.Len(t, interp.StringParts, len(interp.ExprParts)+1)
	assert.Equal(t, []string{"greet ", ""}, interp.StringParts)
	require.Len(t, interp.ExprParts, 1)
	assert.Equal(t, "name", interp.ExprParts[0].Name)
}

func TestParser_BareReturnHasNilValue(t *testing.T) {
	prog, report := parse(t, `vibe f() { send }`)
	require.False(t, report.HadError())
	fn := prog.Statements[0].(*FuncDefStmt)
	ret := fn.Body.Statements[0].(*ReturnStmt)
	assert.Nil(t, ret.Value)
}

func TestParser_ReturnFollowedByNextStatementDoesNotConsumeIt(t *testing.T) {
	prog, report := parse(t, "vibe f() { send\nmog }")
	require.False(t, report.HadError())
	fn := prog.Statements[0].(*FuncDefStmt)
	require.Len(t, fn.Body.Statements, 2)
	ret := fn.Body.Statements[0].(*ReturnStmt)
	assert.Nil(t, ret.Value)
	_, ok := fn.Body.Statements[1].(*BreakStmt)
	assert.True(t, ok)
}

func TestParser_ErrorRecoverySkipsToNextStatementKeyword(t *testing.T) {
	prog, report := parse(t, "fr x =\nsay 1")
	assert.True(t, report.HadError())
	require.Len(t, prog.Statements, 1)
	print, ok := prog.Statements[0].(*PrintStmt)
	require.True(t, ok)
	lit := print.Value.(*LiteralExpr)
	assert.Equal(t, int64(1), lit.Int)
}

func TestParser_FunctionDefCollectsParams(t *testing.T) {
	prog, report := parse(t, `vibe add(a, b) { send a + b }`)
	require.False(t, report.HadError())
	fn, ok := prog.Statements[0].(*FuncDefStmt)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
	assert.Equal(t, "b", fn.Params[1].Name)
}

func TestParser_ArrayLiteralAndIndex(t *testing.T) {
	prog, report := parse(t, `fr a = [10, 20, 30]
say a[1]`)
	require.False(t, report.HadError())
	decl := prog.Statements[0].(*VarDeclStmt)
	arr, ok := decl.Initializer.(*ArrayLiteralExpr)
	require.True(t, ok)
	assert.Len(t, arr.Elements, 3)

	print := prog.Statements[1].(*PrintStmt)
	idx, ok := print.Value.(*IndexExpr)
	require.True(t, ok)
	_, ok = idx.Index.(*LiteralExpr)
	assert.True(t, ok)
}

func TestParser_CompoundAssignRequiresIdentifierTarget(t *testing.T) {
	prog, report := parse(t, "a[0] += 1")
	assert.True(t, report.HadError())
	_, ok := prog.Statements[0].(*ExprStmt).Value.(*IndexExpr)
	assert.True(t, ok)
}
