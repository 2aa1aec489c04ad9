/*
File: codegen_locals.go implements spec.md §4.3's "Local variables" rule:
every local is a stack cell; a reassignment whose value has a different
physical type (float vs. pointer) replaces the cell and rebinds the name
in the current frame instead of storing through the old one.
*/
package codegen

import (
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

func isPointerValue(v value.Value) bool {
	_, ok := v.Type().(*types.PointerType)
	return ok
}

func kindOf(v value.Value) VarKind {
	if isPointerValue(v) {
		return KindString
	}
	return KindNumber
}

// allocateScalar creates a stack cell sized for val's type in the current
// block.
func (g *Generator) allocateScalar(val value.Value) value.Value {
	return g.curBlock.NewAlloca(val.Type())
}

// bindNew always allocates a fresh cell for name in the innermost frame,
// the `fr` declaration rule.
func (g *Generator) bindNew(name string, val value.Value) {
	cell := g.allocateScalar(val)
	g.curBlock.NewStore(val, cell)
	g.scopes.define(name, &Variable{Cell: cell, Kind: kindOf(val)})
}

// rebindOrStore implements assignment to an existing name: if the
// variable's physical kind matches val's, store through the existing
// cell; otherwise allocate a fresh cell and rebind name in the current
// (innermost) frame, per spec.md §4.3 and §9 ("Dynamic value typing").
// An assignment to an undeclared name is a semantic error.
func (g *Generator) rebindOrStore(tokLine int, name string, val value.Value) {
	v, ok := g.scopes.lookup(name)
	if !ok {
		g.report.SemanticError(tokLine, "assignment to undeclared variable '"+name+"'")
		return
	}
	if v.Kind == kindOf(val) {
		g.curBlock.NewStore(val, v.Cell)
		return
	}
	cell := g.allocateScalar(val)
	g.curBlock.NewStore(val, cell)
	g.scopes.define(name, &Variable{Cell: cell, Kind: kindOf(val)})
}
