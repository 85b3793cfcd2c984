package codegen

import "nanomorpho/ast"

// generateIf generates an if expression.  Each branch tests its condition and
// jumps to the next branch's label if it is false; the else body, if any,
// follows the last branch's label.
//
//	    <cond 1>
//	    (GoFalse _next1)
//	    <body 1>
//	    (Go _end)
//	_next1:
//	    ...
//	    <else body>
//	_end:
func (g *Generator) generateIf(ifExpr *ast.If) {
	labEnd := g.newLabel()

	for _, br := range ifExpr.Branches {
		labNext := g.newLabel()

		g.generateExpr(br.Cond)
		g.emit(Instr{Op: OpGoFalse, N: labNext})
		g.generateBody(br.Body)
		g.emit(Instr{Op: OpGo, N: labEnd})
		g.placeLabel(labNext)
	}

	if ifExpr.HasElse {
		g.generateBody(ifExpr.Else)
	}

	g.placeLabel(labEnd)
}

// generateWhile generates a while loop.
//
//	_start:
//	    <cond>
//	    (GoFalse _quit)
//	    <body>
//	    (Go _start)
//	_quit:
func (g *Generator) generateWhile(loop *ast.While) {
	labStart := g.newLabel()
	labQuit := g.newLabel()

	g.placeLabel(labStart)
	g.generateExpr(loop.Cond)
	g.emit(Instr{Op: OpGoFalse, N: labQuit})
	g.generateBody(loop.Body)
	g.emit(Instr{Op: OpGo, N: labStart})
	g.placeLabel(labQuit)
}
