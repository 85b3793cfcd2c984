package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sprint formats an expression as an s-expression:
//
//	1                    literal
//	(name 0)             read of slot 0
//	(store 0 x)          assignment to slot 0
//	(call f a b)         call; operators are calls named by their lexeme
//	(return x)
//	(if c (...) elsif c (...) else (...))
//	(while c (...))
func Sprint(e Expr) string {
	sb := &strings.Builder{}
	writeExpr(sb, e)
	return sb.String()
}

// SprintBody formats a body as a parenthesized list of s-expressions.
func SprintBody(body []Expr) string {
	sb := &strings.Builder{}
	writeBody(sb, body)
	return sb.String()
}

// SprintFunction formats a function as `(func name argCount varCount body)`.
func SprintFunction(fn *Function) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "(func %s %d %d ", fn.Name, fn.ArgCount, fn.VarCount)
	writeBody(sb, fn.Body)
	sb.WriteByte(')')
	return sb.String()
}

// FprintProgram writes each function of a program on its own line.
func FprintProgram(w io.Writer, funcs []*Function) error {
	for _, fn := range funcs {
		if _, err := fmt.Fprintln(w, SprintFunction(fn)); err != nil {
			return err
		}
	}

	return nil
}

// -----------------------------------------------------------------------------

func writeBody(sb *strings.Builder, body []Expr) {
	sb.WriteByte('(')
	for i, e := range body {
		if i > 0 {
			sb.WriteByte(' ')
		}

		writeExpr(sb, e)
	}
	sb.WriteByte(')')
}

func writeExpr(sb *strings.Builder, e Expr) {
	switch v := e.(type) {
	case *Literal:
		sb.WriteString(v.Text)
	case *NameRef:
		sb.WriteString("(name ")
		sb.WriteString(strconv.Itoa(v.Slot))
		sb.WriteByte(')')
	case *Store:
		sb.WriteString("(store ")
		sb.WriteString(strconv.Itoa(v.Slot))
		sb.WriteByte(' ')
		writeExpr(sb, v.Value)
		sb.WriteByte(')')
	case *Call:
		sb.WriteString("(call ")
		sb.WriteString(v.Callee)
		for _, arg := range v.Args {
			sb.WriteByte(' ')
			writeExpr(sb, arg)
		}
		sb.WriteByte(')')
	case *Return:
		sb.WriteString("(return ")
		writeExpr(sb, v.Value)
		sb.WriteByte(')')
	case *If:
		sb.WriteString("(if ")
		for i, br := range v.Branches {
			if i > 0 {
				sb.WriteString(" elsif ")
			}

			writeExpr(sb, br.Cond)
			sb.WriteByte(' ')
			writeBody(sb, br.Body)
		}

		if v.HasElse {
			sb.WriteString(" else ")
			writeBody(sb, v.Else)
		}
		sb.WriteByte(')')
	case *While:
		sb.WriteString("(while ")
		writeExpr(sb, v.Cond)
		sb.WriteByte(' ')
		writeBody(sb, v.Body)
		sb.WriteByte(')')
	default:
		fmt.Fprintf(sb, "<%T>", e)
	}
}
