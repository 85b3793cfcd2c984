package ast

// Literal is a literal value.  The text is the literal's raw lexeme (quotes
// included for strings and characters) and is passed to the VM untouched.
type Literal struct {
	ASTBase

	Text string
}

// NameRef is a read of a parameter or local variable.
type NameRef struct {
	ASTBase

	Slot int
}

// Store is an assignment.  It is an expression: its value is the value stored.
type Store struct {
	ASTBase

	Slot  int
	Value Expr
}

// Call is a function call.  Operator applications are calls too: a binary
// operator is a call with two arguments and a prefix operator is a call with
// one, both named by the operator's lexeme.
type Call struct {
	ASTBase

	Callee string
	Args   []Expr
}

// Return evaluates its value and leaves the current function with it.
type Return struct {
	ASTBase

	Value Expr
}

// CondBranch is a single conditional branch of an if expression.
type CondBranch struct {
	Cond Expr
	Body []Expr
}

// If is an if expression.  The first branch is the `if` branch and all the
// following branches are `elsif` branches, in source order.
type If struct {
	ASTBase

	Branches []CondBranch

	// Else is the body of the `else` clause.  HasElse distinguishes a missing
	// else clause from an empty one.
	Else    []Expr
	HasElse bool
}

// While is a while loop.
type While struct {
	ASTBase

	Cond Expr
	Body []Expr
}

func (*Literal) exprNode() {}
func (*NameRef) exprNode() {}
func (*Store) exprNode()   {}
func (*Call) exprNode()    {}
func (*Return) exprNode()  {}
func (*If) exprNode()      {}
func (*While) exprNode()   {}
