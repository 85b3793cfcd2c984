package ast

// Function is a compiled function: the root unit handed to code generation.
// Variables have already been resolved to slots: slots [0, ArgCount) are the
// parameters and slots [ArgCount, VarCount) are the locals.
type Function struct {
	ASTBase

	Name string

	ArgCount int
	VarCount int

	Body []Expr
}

// NewFunction creates a new function beginning on the given line.
func NewFunction(line int, name string, argCount, varCount int, body []Expr) *Function {
	return &Function{
		ASTBase:  NewASTBaseOn(line),
		Name:     name,
		ArgCount: argCount,
		VarCount: varCount,
		Body:     body,
	}
}

// LocalCount returns the number of local variables of the function: the
// variables which are not parameters.
func (fn *Function) LocalCount() int {
	return fn.VarCount - fn.ArgCount
}
