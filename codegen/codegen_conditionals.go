/*
File: codegen_conditionals.go implements spec.md §4.3's if/else lowering:
then/else/merge blocks, condition compared against 0.0, and an
unconditional branch to merge appended to any branch body that fell
through without its own terminator.
*/
package codegen

import "github.com/sigma-lang/sigmac/parser"

func (g *Generator) genIf(ifs *parser.IfStmt) {
	cond := g.truthy(g.genExpr(ifs.Condition))

	thenBlock := g.curFunc.NewBlock("")
	mergeBlock := g.curFunc.NewBlock("")

	var elseBlock = mergeBlock
	if ifs.Else != nil {
		elseBlock = g.curFunc.NewBlock("")
	}

	g.curBlock.NewCondBr(cond, thenBlock, elseBlock)

	g.curBlock = thenBlock
	g.genStmt(ifs.Then)
	if !terminated(g.curBlock) {
		g.curBlock.NewBr(mergeBlock)
	}

	if ifs.Else != nil {
		g.curBlock = elseBlock
		g.genStmt(ifs.Else)
		if !terminated(g.curBlock) {
			g.curBlock.NewBr(mergeBlock)
		}
	}

	g.curBlock = mergeBlock
}
