package codegen

import (
	"nanomorpho/ast"
	"nanomorpho/report"
)

// Generator lowers functions into Morpho VM instructions.  A single generator
// should be used for a whole module: it owns the label counter, so labels are
// unique across every function it generates and are never reused.
type Generator struct {
	// The next label number to allocate.
	nextLabel int

	// The instructions of the function being generated.
	code []Instr
}

// NewGenerator creates a new generator whose first label is _0.
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateFunction generates the instructions of a function.  The function is
// assumed to be well-formed: generation cannot fail on the output of the
// parser.
func (g *Generator) GenerateFunction(fn *ast.Function) []Instr {
	if fn.ArgCount > fn.VarCount {
		report.ReportICE("function %s has more parameters (%d) than slots (%d)", fn.Name, fn.ArgCount, fn.VarCount)
	}

	g.code = nil

	// Every local is materialized as a stack slot initialized to null before
	// the body runs.
	for i := 0; i < fn.LocalCount(); i++ {
		g.emit(Instr{Op: OpMakeVal, Text: "null"})
		g.emit(Instr{Op: OpPush})
	}

	g.generateBody(fn.Body)

	// Backstop return for bodies that do not end with a return.
	g.emit(Instr{Op: OpReturn})

	code := g.code
	g.code = nil
	return code
}

// -----------------------------------------------------------------------------

// emit appends an instruction to the function being generated.
func (g *Generator) emit(in Instr) {
	g.code = append(g.code, in)
}

// newLabel allocates a new label number.
func (g *Generator) newLabel() int {
	lab := g.nextLabel
	g.nextLabel++
	return lab
}

// placeLabel emits a label as the target of jumps to it.
func (g *Generator) placeLabel(lab int) {
	g.emit(Instr{Op: OpLabel, N: lab})
}
