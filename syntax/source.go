package syntax

import "nanomorpho/report"

// TokenSource is the stream of tokens consumed by the parser.  The parser never
// tokenizes text itself: it only inspects the current and next token kinds and
// consumes tokens through this interface.  Operations that fail raise a
// *report.SyntaxError by panicking (see report.Catch).
type TokenSource interface {
	// Token1 returns the kind of the current token.
	Token1() int

	// Token2 returns the kind of the token after the current one.
	Token2() int

	// Lexeme returns the text of the current token.
	Lexeme() string

	// Line returns the line of the current token.
	Line() int

	// Over consumes the current token if it is of the given kind and returns
	// its text.  Otherwise, it raises a syntax error naming the kind.
	Over(kind int) string

	// Advance consumes the current token and returns its text.
	Advance() string

	// Expected raises a syntax error on the current token stating that the
	// given construct was expected.
	Expected(what string)
}

// TokenStream is a TokenSource backed by a Lexer.  It holds a two token window
// over the lexer's output: the current token and the one after it.
type TokenStream struct {
	lexer *Lexer

	// tok is the current token and ahead is the token after it.  Both are nil
	// until the stream is first used.
	tok, ahead *Token
}

// NewTokenStream creates a new token stream over the given lexer.  No input is
// read until the stream is first used.
func NewTokenStream(lexer *Lexer) *TokenStream {
	return &TokenStream{lexer: lexer}
}

// fill loads the token window the first time the stream is used.
func (ts *TokenStream) fill() {
	if ts.tok == nil {
		ts.tok = ts.read()
		ts.ahead = ts.read()
	}
}

// read reads the next token from the lexer, raising any error it produces.
func (ts *TokenStream) read() *Token {
	tok, err := ts.lexer.NextToken()
	if err != nil {
		panic(err)
	}

	return tok
}

func (ts *TokenStream) Token1() int {
	ts.fill()
	return ts.tok.Kind
}

func (ts *TokenStream) Token2() int {
	ts.fill()
	return ts.ahead.Kind
}

func (ts *TokenStream) Lexeme() string {
	ts.fill()
	return ts.tok.Value
}

func (ts *TokenStream) Line() int {
	ts.fill()
	return ts.tok.Line
}

func (ts *TokenStream) Over(kind int) string {
	ts.fill()
	if ts.tok.Kind != kind {
		report.RaiseSyntax(ts.tok.Line, KindName(kind), ts.tok.describe())
	}

	return ts.Advance()
}

func (ts *TokenStream) Advance() string {
	ts.fill()
	value := ts.tok.Value

	// The stream stays on the EOF token once it reaches it.
	if ts.tok.Kind != TOK_EOF {
		ts.tok = ts.ahead
		ts.ahead = ts.read()
	}

	return value
}

func (ts *TokenStream) Expected(what string) {
	ts.fill()
	report.RaiseSyntax(ts.tok.Line, what, ts.tok.describe())
}
