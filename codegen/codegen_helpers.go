/*
File: codegen_helpers.go collects small value-construction and
terminator-bookkeeping helpers shared across the statement/expression/
control-flow emitters.
*/
package codegen

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

func constI32(n int64) *constant.Int {
	return constant.NewInt(types.I32, n)
}

func constDouble(f float64) *constant.Float {
	return constant.NewFloat(types.Double, f)
}

// zeroDouble is Sigma's "false"/"null"/bare-return value, per spec.md
// §4.3's "Booleans collapse to 1.0/0.0. Null is 0.0."
func zeroDouble() *constant.Float { return constDouble(0) }

func boolToDouble(b bool) *constant.Float {
	if b {
		return constDouble(1)
	}
	return constDouble(0)
}

// terminated reports whether blk already ends in a terminator, so callers
// know whether to append a fallthrough branch (spec.md's repeated "if not
// already terminated" rule for if/while/for/function bodies).
func terminated(blk *ir.Block) bool {
	return blk.Term != nil
}

// truthy converts a double-typed SSA value to i1 by comparing it against
// 0.0, the single comparison spec.md §4.3 uses for every conditional.
func (g *Generator) truthy(v value.Value) value.Value {
	return g.curBlock.NewFCmp(enum.FPredONE, v, zeroDouble())
}

// enterFunc switches the generator's current function/block to fn/blk,
// returning a closure that restores the previous ones — the "switch the
// current function and insertion point, then restore state afterward"
// discipline spec.md §4.3 calls out for nested function emission.
func (g *Generator) enterFunc(fn *ir.Func, blk *ir.Block) (restore func()) {
	prevFunc, prevBlock := g.curFunc, g.curBlock
	g.curFunc, g.curBlock = fn, blk
	return func() {
		g.curFunc, g.curBlock = prevFunc, prevBlock
	}
}
