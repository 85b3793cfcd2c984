package syntax

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"nanomorpho/report"
)

// Lexer is responsible for tokenizing a NanoMorpho source file.
type Lexer struct {
	file    *bufio.Reader
	tokBuff *strings.Builder

	line      int
	startLine int
}

// NewLexer creates a new lexer reading from r.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		file:    bufio.NewReader(r),
		tokBuff: &strings.Builder{},
		line:    1,
	}
}

// NextToken retrieves the next token from the input file. If the file has
// ended, this will be an EOF token: calling it again after that keeps yielding
// EOF tokens.  Malformed input yields a *report.SyntaxError.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == -1 {
			break
		}

		switch c {
		case '\n', '\t', ' ', '\r', '\v', '\f':
			l.skip()
		case ';':
			if isComment, err := l.skipComment(); err != nil {
				return nil, err
			} else if !isComment {
				return l.lexSingle(TOK_SEMI)
			}
		case '(':
			return l.lexSingle(TOK_LPAREN)
		case ')':
			return l.lexSingle(TOK_RPAREN)
		case '{':
			return l.lexSingle(TOK_LBRACE)
		case '}':
			return l.lexSingle(TOK_RBRACE)
		case ',':
			return l.lexSingle(TOK_COMMA)
		case '"':
			return l.lexStringLit()
		case '\'':
			return l.lexCharLit()
		default:
			if isDecimalDigit(c) {
				return l.lexNumericLit()
			} else if isFirstNameChar(c) {
				return l.lexNameOrKeyword()
			} else if isOperatorChar(c) {
				return l.lexOperator()
			}

			l.mark()
			l.eat()
			return nil, l.malformed("unknown character")
		}
	}

	l.mark()
	return l.makeToken(TOK_EOF), nil
}

// -----------------------------------------------------------------------------

// lexSingle lexes a single character punctuation token.
func (l *Lexer) lexSingle(kind int) (*Token, error) {
	l.mark()
	if _, err := l.eat(); err != nil {
		return nil, err
	}

	return l.makeToken(kind), nil
}

// skipComment skips over a `;;;` comment running to the end of the line.  It
// returns false without consuming anything if the lexer is positioned on a
// plain semicolon.
func (l *Lexer) skipComment() (bool, error) {
	buff, err := l.file.Peek(3)
	if err != nil && err != io.EOF {
		return false, err
	}

	if string(buff) != ";;;" {
		return false, nil
	}

	for {
		c, err := l.skip()
		if err != nil {
			return false, err
		} else if c == -1 || c == '\n' {
			return true, nil
		}
	}
}

// -----------------------------------------------------------------------------

// isOperatorChar returns whether c can appear in an operator name.
func isOperatorChar(c rune) bool {
	return strings.ContainsRune("+-*/!%&=><:^~|?", c)
}

// lexOperator lexes an operator name: the longest run of operator characters.
// A lone `=` is the assignment token rather than an operator name.
func (l *Lexer) lexOperator() (*Token, error) {
	l.mark()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == -1 || !isOperatorChar(c) {
			break
		}

		l.eat()
	}

	if l.tokBuff.String() == "=" {
		return l.makeToken(TOK_ASSIGN), nil
	}

	return l.makeToken(TOK_OPNAME), nil
}

// -----------------------------------------------------------------------------

// keywordPatterns maps keyword strings (patterns) to their keyword token kind.
var keywordPatterns = map[string]int{
	"if":     TOK_IF,
	"else":   TOK_ELSE,
	"elsif":  TOK_ELSIF,
	"while":  TOK_WHILE,
	"var":    TOK_VAR,
	"return": TOK_RETURN,

	"true":  TOK_LITERAL,
	"false": TOK_LITERAL,
	"null":  TOK_LITERAL,
}

// lexNameOrKeyword lexes a name or a keyword.
func (l *Lexer) lexNameOrKeyword() (*Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if !isFirstNameChar(c) && !isDecimalDigit(c) {
			break
		}

		l.eat()
	}

	if kind, ok := keywordPatterns[l.tokBuff.String()]; ok {
		return l.makeToken(kind), nil
	}

	return l.makeToken(TOK_NAME), nil
}

// -----------------------------------------------------------------------------

// lexNumericLit lexes an integer or a decimal literal with an optional
// exponent: `12`, `1.5`, `2.5e-3`.
func (l *Lexer) lexNumericLit() (*Token, error) {
	l.mark()

	if err := l.eatDigits(); err != nil {
		return nil, err
	}

	// A fraction needs a digit after the dot.
	buff, err := l.file.Peek(2)
	if err != nil && err != io.EOF {
		return nil, err
	}

	if len(buff) == 2 && buff[0] == '.' && isDecimalDigit(rune(buff[1])) {
		l.eat()
		if err := l.eatDigits(); err != nil {
			return nil, err
		}

		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		if c == 'e' || c == 'E' {
			l.eat()

			c, err = l.peek()
			if err != nil {
				return nil, err
			}

			if c == '+' || c == '-' {
				l.eat()

				c, err = l.peek()
				if err != nil {
					return nil, err
				}
			}

			if !isDecimalDigit(c) {
				return nil, l.malformed("incomplete numeric literal")
			}

			if err := l.eatDigits(); err != nil {
				return nil, err
			}
		}
	}

	return l.makeToken(TOK_LITERAL), nil
}

// eatDigits consumes a run of decimal digits.
func (l *Lexer) eatDigits() error {
	for {
		c, err := l.peek()
		if err != nil {
			return err
		} else if !isDecimalDigit(c) {
			return nil
		}

		l.eat()
	}
}

// -----------------------------------------------------------------------------

// lexStringLit lexes a string literal.  The quotes are kept in the token's
// value: the VM reads the literal exactly as it appears in the source.
func (l *Lexer) lexStringLit() (*Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		switch c {
		case -1, '\n':
			return nil, l.malformed("unclosed string literal")
		case '"':
			l.eat()
			return l.makeToken(TOK_LITERAL), nil
		case '\\':
			l.eat()
			if err := l.eatEscapeSequence(); err != nil {
				return nil, err
			}
		default:
			l.eat()
		}
	}
}

// lexCharLit lexes a character literal.
func (l *Lexer) lexCharLit() (*Token, error) {
	l.mark()
	l.eat()

	c, err := l.eat()
	if err != nil {
		return nil, err
	}

	switch c {
	case -1, '\n':
		return nil, l.malformed("unclosed character literal")
	case '\'':
		return nil, l.malformed("empty character literal")
	case '\\':
		if err := l.eatEscapeSequence(); err != nil {
			return nil, err
		}
	}

	c, err = l.eat()
	if err != nil {
		return nil, err
	} else if c != '\'' {
		return nil, l.malformed("unclosed character literal")
	}

	return l.makeToken(TOK_LITERAL), nil
}

// eatEscapeSequence consumes the character after a `\`.  This assumes the
// leading `\` has already been consumed.
func (l *Lexer) eatEscapeSequence() error {
	c, err := l.eat()
	if err != nil {
		return err
	}

	switch c {
	case 'b', 'f', 'n', 'r', 't', '0', '\'', '\\', '"':
		return nil
	case -1, '\n':
		return l.malformed("expected escape sequence")
	default:
		return l.malformed("unknown escape sequence")
	}
}

// -----------------------------------------------------------------------------

// mark sets the lexer's stored start line to its current line and clears the
// token buffer.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.tokBuff.Reset()
}

// makeToken produces a new token of the given kind from the lexer's state and
// resets the lexer to begin building the next token.
func (l *Lexer) makeToken(kind int) *Token {
	value := l.tokBuff.String()
	l.tokBuff.Reset()

	return &Token{
		Kind:  kind,
		Value: value,
		Line:  l.startLine,
	}
}

// malformed creates a syntax error for the token currently being lexed.
func (l *Lexer) malformed(reason string) error {
	found := ""
	if l.tokBuff.Len() > 0 {
		found = "`" + l.tokBuff.String() + "`"
	}

	return &report.SyntaxError{Line: l.startLine, Reason: reason, Found: found}
}

// -----------------------------------------------------------------------------

// eat moves the lexer forward one rune and writes the rune to the token buffer.
// If the lexer encounters an EOF, -1 is returned as the rune value.
func (l *Lexer) eat() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	l.updatePos(c)
	l.tokBuff.WriteRune(c)

	return c, nil
}

// skip moves the lexer forward one rune but does not write the rune to the
// token buffer.  If the lexer encounters an EOF, -1 is returned as the rune
// value.
func (l *Lexer) skip() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	l.updatePos(c)

	return c, nil
}

// peek returns the next rune in the file without moving the lexer forward or
// writing the rune to the token buffer.  If the lexer encounters an EOF, -1 is
// returned as rune value.
func (l *Lexer) peek() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	if err = l.file.UnreadRune(); err != nil {
		return 0, err
	}

	return c, nil
}

// updatePos updates the lexer's position based on input character.
func (l *Lexer) updatePos(c rune) {
	if c == '\n' {
		l.line++
	}
}

// -----------------------------------------------------------------------------

// isDecimalDigit returns whether c is a decimal digit.
func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// isFirstNameChar returns whether c could be the first rune of a name.
func isFirstNameChar(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}
