/*
File: codegen_print.go implements spec.md §4.3's "Print" rule: an
interpolated-string argument composes a format string out of each
referenced identifier's physical type and calls printf once with every
value; any other expression dispatches on its own physical type.
*/
package codegen

import (
	"github.com/llir/llvm/ir/value"

	"github.com/sigma-lang/sigmac/parser"
)

func (g *Generator) genPrint(p *parser.PrintStmt) {
	if interp, ok := p.Value.(*parser.InterpolatedStringExpr); ok {
		g.genPrintInterpolated(interp)
		return
	}
	val := g.genExpr(p.Value)
	format := "%g\n"
	if isPointerValue(val) {
		format = "%s\n"
	}
	g.curBlock.NewCall(g.printf, g.strings.intern(format), val)
}

// genPrintInterpolated composes a single format string by walking the
// literal/identifier segments in order, then calls printf once with every
// referenced identifier's current value.
func (g *Generator) genPrintInterpolated(interp *parser.InterpolatedStringExpr) {
	format := ""
	args := make([]value.Value, 0, len(interp.ExprParts))
	for i, part := range interp.StringParts {
		format += part
		if i < len(interp.ExprParts) {
			ident := interp.ExprParts[i]
			val := g.genIdentifier(ident)
			if isPointerValue(val) {
				format += "%s"
			} else {
				format += "%g"
			}
			args = append(args, val)
		}
	}
	format += "\n"

	callArgs := append([]value.Value{g.strings.intern(format)}, args...)
	g.curBlock.NewCall(g.printf, callArgs...)
}
