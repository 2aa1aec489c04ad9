/*
File: codegen_controls.go implements return, break/continue, switch, and
try/catch lowering, per spec.md §4.3.
*/
package codegen

import (
	"github.com/llir/llvm/ir/enum"

	"github.com/sigma-lang/sigmac/parser"
)

// genReturn lowers `send [value]`; a bare return yields 0.0.
func (g *Generator) genReturn(r *parser.ReturnStmt) {
	if r.Value == nil {
		g.curBlock.NewRet(zeroDouble())
		return
	}
	g.curBlock.NewRet(g.genExpr(r.Value))
}

// genBreak/genContinue branch to the innermost loop frame's target, or
// report "break/continue outside of loop" when the loop stack is empty
// (spec.md §7's Semantic-at-IR error table).
func (g *Generator) genBreak(b *parser.BreakStmt) {
	frame, ok := g.loops.current()
	if !ok {
		g.report.SemanticError(b.Tok().Loc.Line, "break outside of loop")
		return
	}
	g.curBlock.NewBr(frame.BreakTarget)
}

func (g *Generator) genContinue(c *parser.ContinueStmt) {
	frame, ok := g.loops.current()
	if !ok {
		g.report.SemanticError(c.Tok().Loc.Line, "continue outside of loop")
		return
	}
	g.curBlock.NewBr(frame.ContinueTarget)
}

// genSwitch lowers `simp (value) { cases }` as a cascade of equality
// comparisons terminating in the default block (or merge, if absent),
// per spec.md §4.3/§9 "Switch on floats": there is no integer jump table
// since case values are doubles.
func (g *Generator) genSwitch(sw *parser.SwitchStmt) {
	value := g.genExpr(sw.Value)
	mergeBlock := g.curFunc.NewBlock("")

	var defaultCase *parser.SwitchCase
	var compareCases []parser.SwitchCase
	for _, c := range sw.Cases {
		if c.IsDefault {
			cc := c
			defaultCase = &cc
			continue
		}
		compareCases = append(compareCases, c)
	}

	defaultBlock := mergeBlock
	if defaultCase != nil {
		defaultBlock = g.curFunc.NewBlock("")
	}

	for _, c := range compareCases {
		bodyBlock := g.curFunc.NewBlock("")
		nextBlock := g.curFunc.NewBlock("")

		caseVal := g.genExpr(c.Value)
		cmp := g.curBlock.NewFCmp(enum.FPredOEQ, value, caseVal)
		g.curBlock.NewCondBr(cmp, bodyBlock, nextBlock)

		g.curBlock = bodyBlock
		g.genStmt(c.Body)
		if !terminated(g.curBlock) {
			g.curBlock.NewBr(mergeBlock)
		}

		g.curBlock = nextBlock
	}

	// After the last comparison falls through, branch to default (or
	// straight to merge when there is none).
	if !terminated(g.curBlock) {
		g.curBlock.NewBr(defaultBlock)
	}

	if defaultCase != nil {
		g.curBlock = defaultBlock
		g.genStmt(defaultCase.Body)
		if !terminated(g.curBlock) {
			g.curBlock.NewBr(mergeBlock)
		}
	}

	g.curBlock = mergeBlock
}

// genTryCatch emits only the try block wired into the control-flow graph;
// the catch block is emitted (so it type-checks and its own diagnostics
// still surface) but left structurally unreachable, per spec.md §4.3/§9:
// "the present IR generator only emits the try block wired to the merge
// point... without an exception runtime."
func (g *Generator) genTryCatch(tc *parser.TryCatchStmt) {
	g.genStmt(tc.TryBlock)

	unreachableBlock := g.curFunc.NewBlock("")
	savedBlock := g.curBlock
	g.curBlock = unreachableBlock
	g.genStmt(tc.CatchBlock)
	if !terminated(g.curBlock) {
		g.curBlock.NewUnreachable()
	}
	g.curBlock = savedBlock
}
