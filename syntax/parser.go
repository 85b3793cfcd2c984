package syntax

import (
	"io"

	"nanomorpho/ast"
	"nanomorpho/common"
	"nanomorpho/report"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// Parser is the parser for a NanoMorpho program.  It is a recursive descent
// parser which builds the AST and resolves variable names to slots as it goes:
// there is no separate resolution pass.  All parsing functions assume that they
// begin with the token source positioned on the first token of their
// production and must consume all tokens (including the last) of their
// production.  The parser stops at the first error: errors are raised by
// panicking and caught once at the top of the parse.
type Parser struct {
	// src is the token source the parser reads from.
	src TokenSource
}

// ParseProgram parses a whole program from the given token source.  It returns
// the functions of the program in declaration order.  If the program is
// malformed, the first error encountered is returned (either a
// *report.SyntaxError or a *report.ScopeError) and no functions are returned.
func ParseProgram(src TokenSource) (funcs []*ast.Function, err error) {
	defer report.Catch(&err)

	p := &Parser{src: src}
	return p.parseProgram(), nil
}

// ParseSource lexes and parses the program read from r.
func ParseSource(r io.Reader) ([]*ast.Function, error) {
	return ParseProgram(NewTokenStream(NewLexer(r)))
}

// -----------------------------------------------------------------------------

// declare declares a new variable in the given symbol table.  The line is the
// line of the name's token.
func (p *Parser) declare(st *SymbolTable, name string, line int) int {
	slot, ok := st.Declare(name)
	if !ok {
		report.RaiseScope(line, name, "variable %s already exists", name)
	}

	return slot
}

// lookup resolves a variable name to its slot in the given symbol table.  The
// line is the line of the name's token.
func (p *Parser) lookup(st *SymbolTable, name string, line int) int {
	slot, ok := st.Lookup(name)
	if !ok {
		report.RaiseScope(line, name, "variable %s does not exist", name)
	}

	return slot
}

// gotOperatorOf returns whether the parser is positioned on an operator name of
// the given binary priority.
func (p *Parser) gotOperatorOf(pri int) bool {
	return p.src.Token1() == TOK_OPNAME && priority(p.src.Lexeme(), p.src.Line()) == pri
}

// endStmt consumes the `;` that terminates a statement.  A statement that ends
// with a closing brace may leave it out.
func (p *Parser) endStmt(stmt ast.Expr) {
	if p.src.Token1() != TOK_SEMI && endsInBlock(stmt) {
		return
	}

	p.src.Over(TOK_SEMI)
}

// endsInBlock returns whether the source text of an expression ends with the
// closing brace of a body.
func endsInBlock(e ast.Expr) bool {
	switch v := e.(type) {
	case *ast.If, *ast.While:
		return true
	case *ast.Return:
		return endsInBlock(v.Value)
	case *ast.Store:
		return endsInBlock(v.Value)
	case *ast.Call:
		// Operator applications end with their last operand.  Named calls end
		// with `)`.
		if len(v.Args) > 0 && !common.IsValidIdentifier(v.Callee) {
			return endsInBlock(v.Args[len(v.Args)-1])
		}
	}

	return false
}
