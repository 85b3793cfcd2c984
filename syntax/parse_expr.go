package syntax

import "nanomorpho/ast"

// expr := 'return' expr | 'NAME' '=' expr | binop_expr ;
func (p *Parser) parseExpr(st *SymbolTable) ast.Expr {
	line := p.src.Line()

	switch {
	case p.src.Token1() == TOK_RETURN:
		p.src.Advance()

		return &ast.Return{
			ASTBase: ast.NewASTBaseOn(line),
			Value:   p.parseExpr(st),
		}
	case p.src.Token1() == TOK_NAME && p.src.Token2() == TOK_ASSIGN:
		slot := p.lookup(st, p.src.Advance(), line)
		p.src.Over(TOK_ASSIGN)

		return &ast.Store{
			ASTBase: ast.NewASTBaseOn(line),
			Slot:    slot,
			Value:   p.parseExpr(st),
		}
	default:
		return p.parseBinOpExpr(st, minPriority)
	}
}

// -----------------------------------------------------------------------------

// binop_expr(n) := binop_expr(n+1) {'OPNAME' binop_expr(n+1)} ;   n != 2
// binop_expr(2) := binop_expr(3) ['OPNAME' binop_expr(2)] ;
// binop_expr(8) := small_expr ;
//
// The operator consumed at each level must have priority n.  Every level is
// left associative except for level 2 which is right associative.
func (p *Parser) parseBinOpExpr(st *SymbolTable, pri int) ast.Expr {
	if pri > maxPriority {
		return p.parseSmallExpr(st)
	}

	if pri == rightAssocPriority {
		lhs := p.parseBinOpExpr(st, pri+1)
		if p.gotOperatorOf(pri) {
			op := p.src.Advance()
			return newOperCall(op, lhs, p.parseBinOpExpr(st, pri))
		}

		return lhs
	}

	lhs := p.parseBinOpExpr(st, pri+1)
	for p.gotOperatorOf(pri) {
		op := p.src.Advance()
		lhs = newOperCall(op, lhs, p.parseBinOpExpr(st, pri+1))
	}

	return lhs
}

// newOperCall creates the call node for a binary operator application.
func newOperCall(op string, lhs, rhs ast.Expr) *ast.Call {
	return &ast.Call{
		ASTBase: ast.NewASTBaseOn(lhs.Line()),
		Callee:  op,
		Args:    []ast.Expr{lhs, rhs},
	}
}

// -----------------------------------------------------------------------------

// small_expr := 'NAME' ['(' [expr {',' expr}] ')']
//
//	| 'while' expr body
//	| 'if' expr body {'elsif' expr body} ['else' body]
//	| 'LITERAL'
//	| 'OPNAME' small_expr
//	| '(' expr ')' ;
func (p *Parser) parseSmallExpr(st *SymbolTable) ast.Expr {
	line := p.src.Line()

	switch p.src.Token1() {
	case TOK_NAME:
		name := p.src.Advance()

		// Functions share one flat namespace resolved by the VM: only
		// variables are looked up.
		if p.src.Token1() == TOK_LPAREN {
			return &ast.Call{
				ASTBase: ast.NewASTBaseOn(line),
				Callee:  name,
				Args:    p.parseArgs(st),
			}
		}

		return &ast.NameRef{
			ASTBase: ast.NewASTBaseOn(line),
			Slot:    p.lookup(st, name, line),
		}
	case TOK_WHILE:
		p.src.Advance()

		cond := p.parseExpr(st)
		return &ast.While{
			ASTBase: ast.NewASTBaseOn(line),
			Cond:    cond,
			Body:    p.parseBody(st),
		}
	case TOK_IF:
		return p.parseIf(st)
	case TOK_LITERAL:
		return &ast.Literal{
			ASTBase: ast.NewASTBaseOn(line),
			Text:    p.src.Advance(),
		}
	case TOK_OPNAME:
		op := p.src.Advance()

		return &ast.Call{
			ASTBase: ast.NewASTBaseOn(line),
			Callee:  op,
			Args:    []ast.Expr{p.parseSmallExpr(st)},
		}
	case TOK_LPAREN:
		p.src.Advance()

		expr := p.parseExpr(st)
		p.src.Over(TOK_RPAREN)
		return expr
	}

	p.src.Expected("expression")
	return nil
}

// args := '(' [expr {',' expr}] ')' ;
func (p *Parser) parseArgs(st *SymbolTable) []ast.Expr {
	p.src.Over(TOK_LPAREN)

	var args []ast.Expr
	if p.src.Token1() != TOK_RPAREN {
		for {
			args = append(args, p.parseExpr(st))

			if p.src.Token1() == TOK_RPAREN {
				break
			}

			p.src.Over(TOK_COMMA)
		}
	}

	p.src.Over(TOK_RPAREN)
	return args
}

// if_expr := 'if' expr body {'elsif' expr body} ['else' body] ;
func (p *Parser) parseIf(st *SymbolTable) *ast.If {
	line := p.src.Line()
	p.src.Over(TOK_IF)

	ifExpr := &ast.If{ASTBase: ast.NewASTBaseOn(line)}

	cond := p.parseExpr(st)
	ifExpr.Branches = append(ifExpr.Branches, ast.CondBranch{Cond: cond, Body: p.parseBody(st)})

	for p.src.Token1() == TOK_ELSIF {
		p.src.Advance()

		cond := p.parseExpr(st)
		ifExpr.Branches = append(ifExpr.Branches, ast.CondBranch{Cond: cond, Body: p.parseBody(st)})
	}

	if p.src.Token1() == TOK_ELSE {
		p.src.Advance()

		ifExpr.Else = p.parseBody(st)
		ifExpr.HasElse = true
	}

	return ifExpr
}

// body := '{' {expr ';'} '}' ;
func (p *Parser) parseBody(st *SymbolTable) []ast.Expr {
	p.src.Over(TOK_LBRACE)

	var body []ast.Expr
	for p.src.Token1() != TOK_RBRACE {
		stmt := p.parseExpr(st)
		p.endStmt(stmt)
		body = append(body, stmt)
	}

	p.src.Over(TOK_RBRACE)
	return body
}
