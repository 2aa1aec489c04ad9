/*
File: ast_dump.go implements the `--ast` debug renderer.

Grounded on the teacher's main/print_visitor.go (PrintingVisitor): an
indent-accumulating writer that walks the tree and prints one line per
node, ascii-indented by nesting level. The teacher dispatches through its
NodeVisitor/Accept double-dispatch; Sigma's AST deliberately does not
implement Accept (see parser/node.go's doc comment), so this dumper
type-switches over parser.Stmt/parser.Expr directly. This carries no
semantic weight — it exists purely as a CLI debugging convenience.
*/
package main

import (
	"fmt"
	"io"

	"github.com/sigma-lang/sigmac/parser"
)

const astIndentSize = 2

type astDumper struct {
	w      io.Writer
	indent int
}

func dumpAST(w io.Writer, prog *parser.Program) {
	d := &astDumper{w: w}
	d.line("Program")
	d.indent += astIndentSize
	for _, s := range prog.Statements {
		d.stmt(s)
	}
	d.indent -= astIndentSize
}

func (d *astDumper) line(format string, args ...interface{}) {
	fmt.Fprintf(d.w, "%*s%s\n", d.indent, "", fmt.Sprintf(format, args...))
}

func (d *astDumper) nested(f func()) {
	d.indent += astIndentSize
	f()
	d.indent -= astIndentSize
}

func (d *astDumper) stmt(s parser.Stmt) {
	switch n := s.(type) {
	case *parser.VarDeclStmt:
		d.line("VarDecl %s", n.Name)
		d.nested(func() { d.expr(n.Initializer) })
	case *parser.PrintStmt:
		d.line("Print")
		d.nested(func() { d.expr(n.Value) })
	case *parser.ExprStmt:
		d.line("ExprStmt")
		d.nested(func() { d.expr(n.Value) })
	case *parser.BlockStmt:
		d.line("Block")
		d.nested(func() {
			for _, s := range n.Statements {
				d.stmt(s)
			}
		})
	case *parser.IfStmt:
		d.line("If")
		d.nested(func() {
			d.expr(n.Condition)
			d.stmt(n.Then)
			if n.Else != nil {
				d.stmt(n.Else)
			}
		})
	case *parser.WhileStmt:
		d.line("While")
		d.nested(func() {
			d.expr(n.Condition)
			d.stmt(n.Body)
		})
	case *parser.ForStmt:
		d.line("For")
		d.nested(func() {
			if n.Init != nil {
				d.stmt(n.Init)
			}
			if n.Cond != nil {
				d.expr(n.Cond)
			}
			if n.Incr != nil {
				d.expr(n.Incr)
			}
			d.stmt(n.Body)
		})
	case *parser.FuncDefStmt:
		d.line("FuncDef %s(%s)", n.Name, paramNames(n.Params))
		d.nested(func() { d.stmt(n.Body) })
	case *parser.ReturnStmt:
		d.line("Return")
		if n.Value != nil {
			d.nested(func() { d.expr(n.Value) })
		}
	case *parser.BreakStmt:
		d.line("Break")
	case *parser.ContinueStmt:
		d.line("Continue")
	case *parser.SwitchStmt:
		d.line("Switch")
		d.nested(func() {
			d.expr(n.Value)
			for _, c := range n.Cases {
				if c.IsDefault {
					d.line("Default")
				} else {
					d.line("Case")
					d.nested(func() { d.expr(c.Value) })
				}
				d.nested(func() { d.stmt(c.Body) })
			}
		})
	case *parser.TryCatchStmt:
		d.line("TryCatch")
		d.nested(func() {
			d.stmt(n.TryBlock)
			d.stmt(n.CatchBlock)
		})
	default:
		d.line("<unknown statement>")
	}
}

func (d *astDumper) expr(e parser.Expr) {
	switch n := e.(type) {
	case *parser.LiteralExpr:
		d.line("Literal %s", literalText(n))
	case *parser.IdentifierExpr:
		d.line("Identifier %s", n.Name)
	case *parser.BinaryExpr:
		d.line("Binary %s", n.Op)
		d.nested(func() { d.expr(n.Left); d.expr(n.Right) })
	case *parser.LogicalExpr:
		d.line("Logical %s", n.Op)
		d.nested(func() { d.expr(n.Left); d.expr(n.Right) })
	case *parser.UnaryExpr:
		d.line("Unary %s", n.Op)
		d.nested(func() { d.expr(n.Operand) })
	case *parser.GroupingExpr:
		d.line("Grouping")
		d.nested(func() { d.expr(n.Inner) })
	case *parser.CallExpr:
		d.line("Call")
		d.nested(func() {
			d.expr(n.Callee)
			for _, a := range n.Args {
				d.expr(a)
			}
		})
	case *parser.AssignExpr:
		d.line("Assign %s", n.Name)
		d.nested(func() { d.expr(n.Value) })
	case *parser.CompoundAssignExpr:
		d.line("CompoundAssign %s %s", n.Name, n.Op)
		d.nested(func() { d.expr(n.Value) })
	case *parser.IncrementExpr:
		d.line("Increment %s %s prefix=%v", n.Name, n.Op, n.IsPrefix)
	case *parser.IndexExpr:
		d.line("Index")
		d.nested(func() { d.expr(n.Object); d.expr(n.Index) })
	case *parser.IndexAssignExpr:
		d.line("IndexAssign")
		d.nested(func() { d.expr(n.Object); d.expr(n.Index); d.expr(n.Value) })
	case *parser.ArrayLiteralExpr:
		d.line("ArrayLiteral")
		d.nested(func() {
			for _, el := range n.Elements {
				d.expr(el)
			}
		})
	case *parser.InterpolatedStringExpr:
		d.line("InterpolatedString")
		d.nested(func() {
			for _, id := range n.ExprParts {
				d.expr(id)
			}
		})
	default:
		d.line("<unknown expression>")
	}
}

func literalText(n *parser.LiteralExpr) string {
	switch n.Kind {
	case parser.LiteralInt:
		return fmt.Sprintf("%d", n.Int)
	case parser.LiteralFloat:
		return fmt.Sprintf("%g", n.Float)
	case parser.LiteralBool:
		return fmt.Sprintf("%v", n.Bool)
	case parser.LiteralString:
		return fmt.Sprintf("%q", n.Str)
	default:
		return "null"
	}
}

func paramNames(params []parser.Param) string {
	s := ""
	for i, p := range params {
		if i > 0 {
			s += ", "
		}
		s += p.Name
	}
	return s
}
