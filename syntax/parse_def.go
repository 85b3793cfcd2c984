package syntax

import "nanomorpho/ast"

// program := {function} EOF ;
func (p *Parser) parseProgram() []*ast.Function {
	var funcs []*ast.Function
	for p.src.Token1() != TOK_EOF {
		funcs = append(funcs, p.parseFunction())
	}

	return funcs
}

// function := 'NAME' '(' [name_list] ')' '{' {decl ';'} expr ';' {expr ';'} '}' ;
func (p *Parser) parseFunction() *ast.Function {
	startLine := p.src.Line()
	name := p.src.Over(TOK_NAME)

	// Each function gets its own symbol table: the parameters are declared
	// first so that they take the lowest slots.
	st := NewSymbolTable()

	p.src.Over(TOK_LPAREN)
	if p.src.Token1() != TOK_RPAREN {
		p.parseNameList(st)
	}
	p.src.Over(TOK_RPAREN)

	argCount := st.Count()

	p.src.Over(TOK_LBRACE)
	for p.src.Token1() == TOK_VAR {
		p.parseDecl(st)
		p.src.Over(TOK_SEMI)
	}

	// A function must have at least one statement.
	var body []ast.Expr
	for {
		stmt := p.parseExpr(st)
		p.endStmt(stmt)
		body = append(body, stmt)

		if p.src.Token1() == TOK_RBRACE {
			break
		}
	}
	p.src.Over(TOK_RBRACE)

	return ast.NewFunction(startLine, name, argCount, st.Count(), body)
}

// decl := 'var' name_list ;
func (p *Parser) parseDecl(st *SymbolTable) {
	p.src.Over(TOK_VAR)
	p.parseNameList(st)
}

// name_list := 'NAME' {',' 'NAME'} ;
func (p *Parser) parseNameList(st *SymbolTable) {
	for {
		line := p.src.Line()
		p.declare(st, p.src.Over(TOK_NAME), line)

		if p.src.Token1() != TOK_COMMA {
			break
		}

		p.src.Over(TOK_COMMA)
	}
}
