/*
File: codegen_assignments.go lowers the Assign, CompoundAssign, and
Increment expression forms. IndexAssign lives alongside array indexing in
codegen_arrays.go.
*/
package codegen

import (
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/sigma-lang/sigmac/lexer"
	"github.com/sigma-lang/sigmac/parser"
)

// genAssign lowers `name = value`; like C, the assignment expression
// itself evaluates to the assigned value.
func (g *Generator) genAssign(a *parser.AssignExpr) value.Value {
	val := g.genExpr(a.Value)
	g.rebindOrStore(a.Tok().Loc.Line, a.Name, val)
	return val
}

// genCompoundAssign lowers `name op= value` by loading the current value,
// applying op, and storing the result back. Compound assignment always
// targets a number cell; per spec.md's AST, CompoundAssign carries only a
// name (no index form), so it never needs the rebind-on-type-change path.
func (g *Generator) genCompoundAssign(ca *parser.CompoundAssignExpr) value.Value {
	line := ca.Tok().Loc.Line
	v, ok := g.scopes.lookup(ca.Name)
	if !ok {
		g.report.SemanticError(line, "assignment to undeclared variable '"+ca.Name+"'")
		return zeroDouble()
	}
	current := g.curBlock.NewLoad(types.Double, v.Cell)
	rhs := g.genExpr(ca.Value)

	var result value.Value
	switch ca.Op {
	case lexer.PLUS_ASSIGN:
		result = g.curBlock.NewFAdd(current, rhs)
	case lexer.MINUS_ASSIGN:
		result = g.curBlock.NewFSub(current, rhs)
	case lexer.STAR_ASSIGN:
		result = g.curBlock.NewFMul(current, rhs)
	case lexer.SLASH_ASSIGN:
		result = g.curBlock.NewFDiv(current, rhs)
	case lexer.PERCENT_ASSIGN:
		result = g.curBlock.NewFRem(current, rhs)
	default:
		g.report.SemanticError(line, "internal: unhandled compound operator "+string(ca.Op))
		return zeroDouble()
	}
	g.curBlock.NewStore(result, v.Cell)
	return result
}

// genIncrement lowers prefix/postfix `++`/`--`. Prefix evaluates to the
// updated value; postfix evaluates to the value before the update.
func (g *Generator) genIncrement(inc *parser.IncrementExpr) value.Value {
	line := inc.Tok().Loc.Line
	v, ok := g.scopes.lookup(inc.Name)
	if !ok {
		g.report.SemanticError(line, "increment of undeclared variable '"+inc.Name+"'")
		return zeroDouble()
	}
	old := g.curBlock.NewLoad(types.Double, v.Cell)
	delta := constDouble(1)
	var updated value.Value
	if inc.Op == lexer.INCREMENT {
		updated = g.curBlock.NewFAdd(old, delta)
	} else {
		updated = g.curBlock.NewFSub(old, delta)
	}
	g.curBlock.NewStore(updated, v.Cell)
	if inc.IsPrefix {
		return updated
	}
	return old
}
