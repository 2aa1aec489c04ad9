/*
File: codegen_statements.go is the statement-lowering dispatcher, mirroring
the teacher's eval_statements.go/Eval type-switch shape but emitting SSA
instructions into g.curBlock instead of producing a runtime value.
*/
package codegen

import "github.com/sigma-lang/sigmac/parser"

// genStmt lowers one statement. It is a no-op once g.curBlock is already
// terminated (e.g. code following an unconditional `send`/`mog`/`skip` in
// the same block), since appending instructions after a terminator would
// produce invalid IR.
func (g *Generator) genStmt(stmt parser.Stmt) {
	if terminated(g.curBlock) {
		return
	}

	switch s := stmt.(type) {
	case *parser.VarDeclStmt:
		g.genVarDecl(s)
	case *parser.PrintStmt:
		g.genPrint(s)
	case *parser.ExprStmt:
		g.genExpr(s.Value)
	case *parser.BlockStmt:
		g.scopes.push()
		g.genBlockStmts(s.Statements)
		g.scopes.pop()
	case *parser.IfStmt:
		g.genIf(s)
	case *parser.WhileStmt:
		g.genWhile(s)
	case *parser.ForStmt:
		g.genFor(s)
	case *parser.FuncDefStmt:
		g.genFuncDef(s)
	case *parser.ReturnStmt:
		g.genReturn(s)
	case *parser.BreakStmt:
		g.genBreak(s)
	case *parser.ContinueStmt:
		g.genContinue(s)
	case *parser.SwitchStmt:
		g.genSwitch(s)
	case *parser.TryCatchStmt:
		g.genTryCatch(s)
	}
}

// genBlockStmts lowers a statement list in order, stopping early once a
// terminator has been emitted (dead code after return/break/continue is
// never visited, consistent with spec.md's "if an emitted body did not
// already terminate" phrasing throughout §4.3).
func (g *Generator) genBlockStmts(stmts []parser.Stmt) {
	for _, s := range stmts {
		if terminated(g.curBlock) {
			return
		}
		g.genStmt(s)
	}
}

// genVarDecl allocates a stack cell for the initializer's value and binds
// it to decl.Name in the innermost frame, per spec.md §4.3. Array literals
// are stack allocations in their own right (spec.md's "Arrays" data
// model), so they bind directly to the alloca genArrayLiteral produces
// rather than going through a second cell.
func (g *Generator) genVarDecl(decl *parser.VarDeclStmt) {
	if arr, ok := decl.Initializer.(*parser.ArrayLiteralExpr); ok {
		cell, length := g.genArrayLiteral(arr)
		g.scopes.define(decl.Name, &Variable{Cell: cell, Kind: KindArray, ArrayLen: length})
		return
	}
	val := g.genExpr(decl.Initializer)
	g.bindNew(decl.Name, val)
}
