/*
Package codegen implements Sigma's IR generator: the two-pass lowering
from the parser's AST to a textual LLVM-style SSA module, built on
github.com/llir/llvm.

Grounded on eval/evaluator.go's shape (a central state struct threading a
parser reference, plus one dispatch method per node category split across
files named after the category), generalized from tree-walking evaluation
to SSA emission: where the teacher's Evaluator produces a std.GoMixObject
per node, Generator produces a value.Value (or nothing, for statements)
and appends instructions to whatever *ir.Block is currently the insertion
point.
*/
package codegen

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"

	"github.com/sigma-lang/sigmac/diagnostics"
	"github.com/sigma-lang/sigmac/parser"
)

// Generator walks a Program twice and emits a textual IR module. It holds
// no state across calls to Generate: each call rebuilds the module, scope
// stack, loop stack, and string cache from scratch.
type Generator struct {
	report *diagnostics.Reporter

	module *ir.Module
	printf *ir.Func

	funcs map[string]*ir.Func // predeclared user functions, by name

	curFunc  *ir.Func
	curBlock *ir.Block

	scopes  *scopeStack
	loops   *loopStack
	strings *stringCache
}

// New creates a Generator. report receives semantic and verification
// diagnostics; if nil, a private Reporter is allocated.
func New(report *diagnostics.Reporter) *Generator {
	if report == nil {
		report = diagnostics.New()
	}
	return &Generator{report: report}
}

// Generate lowers prog to an IR module. The returned bool reports whether
// generation succeeded; on failure the Reporter carries the diagnostics
// and the returned module is nil (spec.md §4.3: "emitted
// only if no error occurred during generation").
func (g *Generator) Generate(prog *parser.Program) (*ir.Module, bool) {
	g.module = ir.NewModule()
	g.funcs = map[string]*ir.Func{}
	g.scopes = newScopeStack()
	g.loops = &loopStack{}
	g.strings = newStringCache(g.module)

	g.declarePrintf()
	g.predeclareFunctions(prog)

	// Pass 2a: emit bodies for every top-level function signature that Pass
	// 1 (predeclareFunctions) already registered in g.funcs.
	for _, stmt := range prog.Statements {
		if fd, isFunc := stmt.(*parser.FuncDefStmt); isFunc {
			g.genFuncDef(fd)
		}
	}

	// Pass 2b: emit the implicit main body from whatever top-level
	// statements are not function definitions.
	mainFn := g.module.NewFunc("main", types.I32)
	entry := mainFn.NewBlock("entry")
	g.curFunc = mainFn
	g.curBlock = entry

	for _, stmt := range prog.Statements {
		if _, isFunc := stmt.(*parser.FuncDefStmt); isFunc {
			continue
		}
		g.genStmt(stmt)
	}

	if g.curBlock.Term == nil {
		g.curBlock.NewRet(constI32(0))
	}

	if g.report.HadError() {
		return nil, false
	}
	return g.module, true
}

// declarePrintf declares the single variadic `printf` external symbol
// every Sigma program links against, per spec.md §3's IR Module data
// model.
func (g *Generator) declarePrintf() {
	param := ir.NewParam("", types.I8Ptr)
	g.printf = g.module.NewFunc("printf", types.I32, param)
	g.printf.Sig.Variadic = true
	g.printf.Variadic = true
}
