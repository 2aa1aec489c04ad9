/*
File: codegen_arrays.go implements spec.md §4.3's "Array literal and
indexing" rule: fixed-size stack allocations of doubles addressed with a
two-index GEP, float index truncated to a signed integer, no bounds
checks (§9 open question, resolved by leaving them out).
*/
package codegen

import (
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/sigma-lang/sigmac/parser"
)

// genArrayLiteral allocates a [N x double] stack slot and stores each
// element expression into it in order.
func (g *Generator) genArrayLiteral(arr *parser.ArrayLiteralExpr) (value.Value, int) {
	n := len(arr.Elements)
	arrType := types.NewArray(uint64(n), types.Double)
	cell := g.curBlock.NewAlloca(arrType)
	for i, elem := range arr.Elements {
		val := g.genExpr(elem)
		gep := g.curBlock.NewGetElementPtr(arrType, cell, constI32(0), constI32(int64(i)))
		g.curBlock.NewStore(val, gep)
	}
	return cell, n
}

// resolveArrayVar looks up the array-kinded variable an Index expression's
// object names. Sigma arrays are one-dimensional, so the object must be a
// bare identifier; anything else, or a non-array identifier, is the
// "indexing a non-array" semantic error of spec.md §7.
func (g *Generator) resolveArrayVar(obj parser.Expr, line int) (*Variable, bool) {
	ident, ok := obj.(*parser.IdentifierExpr)
	if !ok {
		g.report.SemanticError(line, "indexing a non-array expression")
		return nil, false
	}
	v, ok := g.scopes.lookup(ident.Name)
	if !ok {
		g.report.SemanticError(line, "unknown variable '"+ident.Name+"'")
		return nil, false
	}
	if v.Kind != KindArray {
		g.report.SemanticError(line, "indexing a non-array variable '"+ident.Name+"'")
		return nil, false
	}
	return v, true
}

// elementPtr computes the GEP for arr[index], truncating the float index
// to i64 per spec.md's "runtime index is truncated from the float value
// to a signed integer."
func (g *Generator) elementPtr(v *Variable, indexExpr parser.Expr) value.Value {
	idx := g.genExpr(indexExpr)
	iidx := g.curBlock.NewFPToSI(idx, types.I64)
	arrType := types.NewArray(uint64(v.ArrayLen), types.Double)
	return g.curBlock.NewGetElementPtr(arrType, v.Cell, constI32(0), iidx)
}

func (g *Generator) genIndex(idx *parser.IndexExpr) value.Value {
	v, ok := g.resolveArrayVar(idx.Object, idx.Tok().Loc.Line)
	if !ok {
		return zeroDouble()
	}
	ptr := g.elementPtr(v, idx.Index)
	return g.curBlock.NewLoad(types.Double, ptr)
}

func (g *Generator) genIndexAssign(ia *parser.IndexAssignExpr) value.Value {
	v, ok := g.resolveArrayVar(ia.Object, ia.Tok().Loc.Line)
	if !ok {
		return zeroDouble()
	}
	val := g.genExpr(ia.Value)
	ptr := g.elementPtr(v, ia.Index)
	g.curBlock.NewStore(val, ptr)
	return val
}
