package ast

// Node is the abstract interface for all AST nodes.
type Node interface {
	// Line returns the 1-based source line on which the node begins.
	Line() int
}

// Expr is an expression node.  NanoMorpho is expression oriented: every
// statement is an expression, so this is the only kind of node that appears in
// a body.  The set of expression nodes is closed: only the types in this
// package implement it.
type Expr interface {
	Node

	exprNode()
}

// ASTBase is a utility base struct for all AST nodes.
type ASTBase struct {
	// The line on which the AST node begins.
	line int
}

// NewASTBaseOn creates a new AST base on the given line.
func NewASTBaseOn(line int) ASTBase {
	return ASTBase{line: line}
}

func (ab ASTBase) Line() int {
	return ab.line
}
