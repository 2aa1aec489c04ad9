/*
File: codegen_loops.go implements spec.md §4.3's while/for lowering,
pushing and popping loop frames so break/continue inside the body can
find their targets.
*/
package codegen

import "github.com/sigma-lang/sigmac/parser"

// genWhile lowers `goon (cond) body`: cond/body/after blocks, loop frame
// {cond, after}.
func (g *Generator) genWhile(w *parser.WhileStmt) {
	condBlock := g.curFunc.NewBlock("")
	bodyBlock := g.curFunc.NewBlock("")
	afterBlock := g.curFunc.NewBlock("")

	g.curBlock.NewBr(condBlock)

	g.curBlock = condBlock
	cond := g.truthy(g.genExpr(w.Condition))
	g.curBlock.NewCondBr(cond, bodyBlock, afterBlock)

	g.loops.push(loopFrame{ContinueTarget: condBlock, BreakTarget: afterBlock})
	g.curBlock = bodyBlock
	g.genStmt(w.Body)
	if !terminated(g.curBlock) {
		g.curBlock.NewBr(condBlock)
	}
	g.loops.pop()

	g.curBlock = afterBlock
}

// genFor lowers `edge (init, cond, incr) body`: init executes once in the
// current block; cond/body/incr/after blocks follow; the loop frame's
// continue target is incr (not cond), per spec.md §4.3.
func (g *Generator) genFor(f *parser.ForStmt) {
	g.scopes.push() // init's VarDecl, if any, is scoped to the loop
	if f.Init != nil {
		g.genStmt(f.Init)
	}

	condBlock := g.curFunc.NewBlock("")
	bodyBlock := g.curFunc.NewBlock("")
	incrBlock := g.curFunc.NewBlock("")
	afterBlock := g.curFunc.NewBlock("")

	g.curBlock.NewBr(condBlock)

	g.curBlock = condBlock
	if f.Cond != nil {
		cond := g.truthy(g.genExpr(f.Cond))
		g.curBlock.NewCondBr(cond, bodyBlock, afterBlock)
	} else {
		g.curBlock.NewBr(bodyBlock)
	}

	g.loops.push(loopFrame{ContinueTarget: incrBlock, BreakTarget: afterBlock})
	g.curBlock = bodyBlock
	g.genStmt(f.Body)
	if !terminated(g.curBlock) {
		g.curBlock.NewBr(incrBlock)
	}
	g.loops.pop()

	g.curBlock = incrBlock
	if f.Incr != nil {
		g.genExpr(f.Incr)
	}
	if !terminated(g.curBlock) {
		g.curBlock.NewBr(condBlock)
	}

	g.curBlock = afterBlock
	g.scopes.pop()
}
