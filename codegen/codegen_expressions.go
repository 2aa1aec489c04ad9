/*
File: codegen_expressions.go is the expression-lowering dispatcher plus
literal, identifier, binary, unary, grouping, and call emission. Logical
`&&`/`||` (short-circuit, block-splitting) lives in codegen_logical.go;
array literal/index lives in codegen_arrays.go; assignment forms live in
codegen_assignments.go.
*/
package codegen

import (
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/sigma-lang/sigmac/lexer"
	"github.com/sigma-lang/sigmac/parser"
)

// genExpr lowers expr to the SSA value it evaluates to, per spec.md §4.3's
// "Type representation": every result is either a double or an i8*
// pointer.
func (g *Generator) genExpr(expr parser.Expr) value.Value {
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		return g.genLiteral(e)
	case *parser.IdentifierExpr:
		return g.genIdentifier(e)
	case *parser.BinaryExpr:
		return g.genBinary(e)
	case *parser.LogicalExpr:
		return g.genLogical(e)
	case *parser.UnaryExpr:
		return g.genUnary(e)
	case *parser.GroupingExpr:
		return g.genExpr(e.Inner)
	case *parser.CallExpr:
		return g.genCall(e)
	case *parser.AssignExpr:
		return g.genAssign(e)
	case *parser.CompoundAssignExpr:
		return g.genCompoundAssign(e)
	case *parser.IncrementExpr:
		return g.genIncrement(e)
	case *parser.IndexExpr:
		return g.genIndex(e)
	case *parser.IndexAssignExpr:
		return g.genIndexAssign(e)
	case *parser.ArrayLiteralExpr:
		cell, _ := g.genArrayLiteral(e)
		return cell
	case *parser.InterpolatedStringExpr:
		// Outside of a direct `say` argument (handled by genPrint),
		// interpolation has no runtime sprintf to compose into; the original
		// text, `{name}` placeholders included, is interned as-is.
		return g.strings.intern(rawInterpolatedText(e))
	}
	g.report.SemanticError(expr.Tok().Loc.Line, "internal: unhandled expression node")
	return zeroDouble()
}

func rawInterpolatedText(e *parser.InterpolatedStringExpr) string {
	s := ""
	for i, part := range e.StringParts {
		s += part
		if i < len(e.ExprParts) {
			s += "{" + e.ExprParts[i].Name + "}"
		}
	}
	return s
}

func (g *Generator) genLiteral(lit *parser.LiteralExpr) value.Value {
	switch lit.Kind {
	case parser.LiteralInt:
		return constDouble(float64(lit.Int))
	case parser.LiteralFloat:
		return constDouble(lit.Float)
	case parser.LiteralBool:
		return boolToDouble(lit.Bool)
	case parser.LiteralNull:
		return zeroDouble()
	case parser.LiteralString:
		return g.strings.intern(lit.Str)
	}
	return zeroDouble()
}

// genIdentifier reads a variable's current value. Array-kinded variables
// evaluate to their backing pointer, since spec.md models an array's
// "value" as its allocation.
func (g *Generator) genIdentifier(id *parser.IdentifierExpr) value.Value {
	v, ok := g.scopes.lookup(id.Name)
	if !ok {
		g.report.SemanticError(id.Tok().Loc.Line, "unknown variable '"+id.Name+"'")
		return zeroDouble()
	}
	switch v.Kind {
	case KindArray:
		return v.Cell
	case KindString:
		return g.curBlock.NewLoad(types.I8Ptr, v.Cell)
	default:
		return g.curBlock.NewLoad(types.Double, v.Cell)
	}
}

var fpPred = map[lexer.TokenType]enum.FPred{
	lexer.EQ: enum.FPredOEQ, lexer.NEQ: enum.FPredONE,
	lexer.LT: enum.FPredOLT, lexer.GT: enum.FPredOGT,
	lexer.LE: enum.FPredOLE, lexer.GE: enum.FPredOGE,
}

// ptrPred holds the only two comparisons defined on pointer (string)
// operands, per spec.md's compared-types decision: equality compares
// pointer identity, which — since every string is interned through
// stringCache — coincides with content equality.
var ptrPred = map[lexer.TokenType]enum.IPred{
	lexer.EQ: enum.IPredEQ, lexer.NEQ: enum.IPredNE,
}

func (g *Generator) genBinary(b *parser.BinaryExpr) value.Value {
	left := g.genExpr(b.Left)
	right := g.genExpr(b.Right)

	switch b.Op {
	case lexer.PLUS:
		return g.curBlock.NewFAdd(left, right)
	case lexer.MINUS:
		return g.curBlock.NewFSub(left, right)
	case lexer.STAR:
		return g.curBlock.NewFMul(left, right)
	case lexer.SLASH:
		return g.curBlock.NewFDiv(left, right)
	case lexer.PERCENT:
		return g.curBlock.NewFRem(left, right)
	case lexer.BIT_AND, lexer.BIT_OR, lexer.BIT_XOR, lexer.SHL, lexer.SHR:
		return g.genBitwise(b.Op, left, right)
	case lexer.EQ, lexer.NEQ, lexer.LT, lexer.GT, lexer.LE, lexer.GE:
		return g.genComparison(b, left, right)
	}
	g.report.SemanticError(b.Tok().Loc.Line, "internal: unhandled binary operator "+string(b.Op))
	return zeroDouble()
}

// genComparison dispatches on the operands' physical LLVM type, per
// spec.md's compared-types decision (SPEC_FULL.md §5.7): two numbers
// compare with `fcmp`; two strings support only `==`/`!=`, compared by
// pointer identity via `icmp`; mixing a number with a string, or ordering
// two strings, is a semantic error rather than ill-defined IR.
func (g *Generator) genComparison(b *parser.BinaryExpr, left, right value.Value) value.Value {
	leftIsPtr, rightIsPtr := isPointerValue(left), isPointerValue(right)

	if leftIsPtr != rightIsPtr {
		g.report.SemanticError(b.Tok().Loc.Line, "cannot compare a string and a number")
		return zeroDouble()
	}

	if !leftIsPtr {
		cmp := g.curBlock.NewFCmp(fpPred[b.Op], left, right)
		return g.curBlock.NewUIToFP(cmp, types.Double)
	}

	pred, ok := ptrPred[b.Op]
	if !ok {
		g.report.SemanticError(b.Tok().Loc.Line, "strings only support == and != comparisons")
		return zeroDouble()
	}
	cmp := g.curBlock.NewICmp(pred, left, right)
	return g.curBlock.NewUIToFP(cmp, types.Double)
}

// genBitwise lowers the bitwise/shift family by round-tripping through
// i64, since doubles have no native bitwise instructions.
func (g *Generator) genBitwise(op lexer.TokenType, left, right value.Value) value.Value {
	li := g.curBlock.NewFPToSI(left, types.I64)
	ri := g.curBlock.NewFPToSI(right, types.I64)
	var result value.Value
	switch op {
	case lexer.BIT_AND:
		result = g.curBlock.NewAnd(li, ri)
	case lexer.BIT_OR:
		result = g.curBlock.NewOr(li, ri)
	case lexer.BIT_XOR:
		result = g.curBlock.NewXor(li, ri)
	case lexer.SHL:
		result = g.curBlock.NewShl(li, ri)
	case lexer.SHR:
		result = g.curBlock.NewAShr(li, ri)
	}
	return g.curBlock.NewSIToFP(result, types.Double)
}

func (g *Generator) genUnary(u *parser.UnaryExpr) value.Value {
	operand := g.genExpr(u.Operand)
	switch u.Op {
	case lexer.MINUS:
		return g.curBlock.NewFSub(zeroDouble(), operand)
	case lexer.NOT:
		cmp := g.curBlock.NewFCmp(enum.FPredOEQ, operand, zeroDouble())
		return g.curBlock.NewUIToFP(cmp, types.Double)
	case lexer.BIT_NOT:
		i := g.curBlock.NewFPToSI(operand, types.I64)
		inverted := g.curBlock.NewXor(i, constant.NewInt(types.I64, -1))
		return g.curBlock.NewSIToFP(inverted, types.Double)
	}
	g.report.SemanticError(u.Tok().Loc.Line, "internal: unhandled unary operator "+string(u.Op))
	return zeroDouble()
}

func (g *Generator) genCall(c *parser.CallExpr) value.Value {
	ident, ok := c.Callee.(*parser.IdentifierExpr)
	if !ok {
		g.report.SemanticError(c.Tok().Loc.Line, "call target must be a function name")
		return zeroDouble()
	}
	fn, ok := g.funcs[ident.Name]
	if !ok {
		g.report.SemanticError(c.Tok().Loc.Line, "unknown function '"+ident.Name+"'")
		return zeroDouble()
	}
	if len(c.Args) != len(fn.Params) {
		g.report.SemanticError(c.Tok().Loc.Line, "wrong argument count calling '"+ident.Name+"'")
		return zeroDouble()
	}
	args := make([]value.Value, len(c.Args))
	for i, a := range c.Args {
		args[i] = g.genExpr(a)
	}
	return g.curBlock.NewCall(fn, args...)
}
