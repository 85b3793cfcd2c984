package report

import (
	"fmt"
	"runtime"
)

// CompileError is an error in the user's source text.  Both kinds of compile
// error know the line on which they occurred.
type CompileError interface {
	error

	// SourceLine returns the 1-based line the error occurred on.
	SourceLine() int

	// Message returns the error message without any position information.
	Message() string
}

// SyntaxError is a grammatical error: a token of the wrong kind, a malformed
// token, or a premature end of input.
type SyntaxError struct {
	// The line on which the offending token begins.
	Line int

	// Expected describes the construct the parser was expecting.  It is empty
	// for errors that are not a mismatch, such as an unknown character.
	Expected string

	// Found describes what was actually encountered: a quoted lexeme or
	// "end of input".  It may be empty.
	Found string

	// Reason replaces the "expected ..." phrasing for malformed tokens.
	Reason string
}

func (se *SyntaxError) SourceLine() int {
	return se.Line
}

func (se *SyntaxError) Message() string {
	var msg string
	if se.Reason != "" {
		msg = se.Reason
	} else {
		msg = "expected " + se.Expected
	}

	if se.Found != "" {
		if se.Reason != "" {
			return msg + ": " + se.Found
		}

		return msg + ", found " + se.Found
	}

	return msg
}

func (se *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", se.Line, se.Message())
}

// ScopeError is a variable resolution error: a duplicate declaration or a
// use of an undeclared name.
type ScopeError struct {
	Line int

	// The offending variable name.
	Name string

	// The message with the name already formatted into it.
	Msg string
}

func (se *ScopeError) SourceLine() int {
	return se.Line
}

func (se *ScopeError) Message() string {
	return se.Msg
}

func (se *ScopeError) Error() string {
	return fmt.Sprintf("line %d: %s", se.Line, se.Msg)
}

// -----------------------------------------------------------------------------

// RaiseSyntax aborts the current phase with a syntax error.  The error is
// delivered by `panic` and must be caught with `Catch`.
func RaiseSyntax(line int, expected, found string) {
	panic(&SyntaxError{Line: line, Expected: expected, Found: found})
}

// RaiseMalformed aborts the current phase with a syntax error that describes
// a malformed token rather than a mismatch.
func RaiseMalformed(line int, reason, found string) {
	panic(&SyntaxError{Line: line, Reason: reason, Found: found})
}

// RaiseScope aborts the current phase with a scope error about the variable
// `name`.  The message is formatted with the given arguments.
func RaiseScope(line int, name string, msg string, args ...interface{}) {
	panic(&ScopeError{Line: line, Name: name, Msg: fmt.Sprintf(msg, args...)})
}

// Catch recovers an error raised during a phase and stores it in `errp`: a
// compile error or an I/O error from reading the source.  Runtime panics and
// anything else are compiler defects and keep unwinding.
// NB: This function must ALWAYS be deferred.
func Catch(errp *error) {
	if x := recover(); x != nil {
		switch v := x.(type) {
		case CompileError:
			*errp = v
		case runtime.Error:
			panic(v)
		case error:
			*errp = v
		default:
			panic(x)
		}
	}
}
