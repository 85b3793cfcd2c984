package codegen

import (
	"nanomorpho/ast"
	"nanomorpho/report"
)

// generateExpr generates an expression.  The value of the expression is left
// in the accumulator.
func (g *Generator) generateExpr(expr ast.Expr) {
	switch v := expr.(type) {
	case *ast.Literal:
		g.emit(Instr{Op: OpMakeVal, Text: v.Text})
	case *ast.NameRef:
		g.emit(Instr{Op: OpFetch, N: v.Slot})
	case *ast.Store:
		g.generateExpr(v.Value)
		g.emit(Instr{Op: OpStore, N: v.Slot})
	case *ast.Call:
		g.generateCall(v)
	case *ast.Return:
		g.generateExpr(v.Value)
		g.emit(Instr{Op: OpReturn})
	case *ast.If:
		g.generateIf(v)
	case *ast.While:
		g.generateWhile(v)
	default:
		report.ReportICE("codegen for %T not implemented", expr)
	}
}

// generateCall generates a function call.  The last argument is passed in the
// accumulator and all the arguments before it are pushed onto the stack in
// order.
func (g *Generator) generateCall(call *ast.Call) {
	for i, arg := range call.Args {
		if i > 0 {
			g.emit(Instr{Op: OpPush})
		}

		g.generateExpr(arg)
	}

	g.emit(Instr{Op: OpCall, Text: call.Callee, N: len(call.Args)})
}

// generateBody generates the statements of a body in order.  Their values are
// discarded: each statement simply overwrites the accumulator.
func (g *Generator) generateBody(body []ast.Expr) {
	for _, stmt := range body {
		g.generateExpr(stmt)
	}
}
