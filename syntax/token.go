package syntax

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The source text of the token.  Literals keep their quotes.
	Value string

	// The 1-based line the token begins on.
	Line int
}

// Enumeration of token kinds.
const (
	TOK_EOF = iota

	TOK_IF
	TOK_ELSE
	TOK_ELSIF
	TOK_WHILE
	TOK_VAR
	TOK_RETURN

	TOK_NAME
	TOK_OPNAME
	TOK_LITERAL

	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACE
	TOK_RBRACE
	TOK_COMMA
	TOK_SEMI
	TOK_ASSIGN
)

// kindNames gives a printable description of each token kind for use in
// error messages.
var kindNames = map[int]string{
	TOK_EOF:     "end of input",
	TOK_IF:      "`if`",
	TOK_ELSE:    "`else`",
	TOK_ELSIF:   "`elsif`",
	TOK_WHILE:   "`while`",
	TOK_VAR:     "`var`",
	TOK_RETURN:  "`return`",
	TOK_NAME:    "name",
	TOK_OPNAME:  "operator name",
	TOK_LITERAL: "literal",
	TOK_LPAREN:  "`(`",
	TOK_RPAREN:  "`)`",
	TOK_LBRACE:  "`{`",
	TOK_RBRACE:  "`}`",
	TOK_COMMA:   "`,`",
	TOK_SEMI:    "`;`",
	TOK_ASSIGN:  "`=`",
}

// KindName returns the printable description of a token kind.
func KindName(kind int) string {
	if name, ok := kindNames[kind]; ok {
		return name
	}

	return "<unknown token>"
}

// describe returns the description of a concrete token used as the "found"
// part of a syntax error.
func (tok *Token) describe() string {
	if tok.Kind == TOK_EOF {
		return "end of input"
	}

	return "`" + tok.Value + "`"
}
