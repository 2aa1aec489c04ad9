/*
File: codegen_logical.go implements spec.md §4.3's short-circuit lowering
for `&&`/`||`, and the phi-edge-refresh discipline §4.3/§9 both call out by
name: the incoming block for the RHS edge of the phi must be whatever
block is current after RHS emission, not the block captured before it,
since RHS evaluation can itself split blocks.
*/
package codegen

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/sigma-lang/sigmac/lexer"
	"github.com/sigma-lang/sigmac/parser"
)

// genLogical lowers `left || right` / `left && right`. `||` short-circuits
// to 1.0 when the LHS is truthy without evaluating RHS; `&&` short-circuits
// to 0.0 when the LHS is falsy. Otherwise RHS is truthy-converted to 0.0/1.0
// the same way the short-circuit edge already is, so both incoming edges of
// the merge phi carry the same double representation (and so a
// pointer-typed RHS, e.g. a string variable, never reaches the phi with a
// mismatched LLVM type).
func (g *Generator) genLogical(l *parser.LogicalExpr) value.Value {
	left := g.genExpr(l.Left)
	startBlock := g.curBlock
	cond := g.truthy(left)

	rhsBlock := g.curFunc.NewBlock("")
	mergeBlock := g.curFunc.NewBlock("")

	shortCircuitValue := boolToDouble(l.Op == lexer.OR)
	if l.Op == lexer.OR {
		startBlock.NewCondBr(cond, mergeBlock, rhsBlock)
	} else {
		startBlock.NewCondBr(cond, rhsBlock, mergeBlock)
	}

	g.curBlock = rhsBlock
	right := g.genExpr(l.Right)
	// Re-read the current block: RHS evaluation may itself have split it
	// (e.g. a nested `||`), so the phi's RHS edge must name the block
	// active now, not rhsBlock.
	rhsExitBlock := g.curBlock
	rhsBool := g.truthy(right)
	rhsConverted := rhsExitBlock.NewUIToFP(rhsBool, types.Double)
	if !terminated(rhsExitBlock) {
		rhsExitBlock.NewBr(mergeBlock)
	}

	g.curBlock = mergeBlock
	return mergeBlock.NewPhi(
		ir.NewIncoming(shortCircuitValue, startBlock),
		ir.NewIncoming(rhsConverted, rhsExitBlock),
	)
}
