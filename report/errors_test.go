package report

import (
	"errors"
	"io"
	"testing"
)

func TestCompileErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		err     CompileError
		wantMsg string
		wantErr string
	}{
		{
			"expected_found",
			&SyntaxError{Line: 3, Expected: "`;`", Found: "`}`"},
			"expected `;`, found `}`",
			"line 3: expected `;`, found `}`",
		},
		{
			"expected_only",
			&SyntaxError{Line: 1, Expected: "expression"},
			"expected expression",
			"line 1: expected expression",
		},
		{
			"malformed",
			&SyntaxError{Line: 7, Reason: "invalid operator name", Found: "`@`"},
			"invalid operator name: `@`",
			"line 7: invalid operator name: `@`",
		},
		{
			"scope",
			&ScopeError{Line: 2, Name: "x", Msg: "variable x does not exist"},
			"variable x does not exist",
			"line 2: variable x does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Message(); got != tt.wantMsg {
				t.Errorf("Message() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Error(); got != tt.wantErr {
				t.Errorf("Error() = %q, want %q", got, tt.wantErr)
			}
		})
	}
}

// raising runs f under Catch and returns the caught error.
func raising(f func()) (err error) {
	defer Catch(&err)

	f()
	return nil
}

func TestCatch(t *testing.T) {
	err := raising(func() { RaiseScope(4, "y", "variable %s already exists", "y") })

	var se *ScopeError
	if !errors.As(err, &se) {
		t.Fatalf("error = %T, want *ScopeError", err)
	}
	if se.Line != 4 || se.Name != "y" || se.Msg != "variable y already exists" {
		t.Errorf("ScopeError = %+v", se)
	}

	err = raising(func() { RaiseSyntax(9, "name", "end of input") })
	if err == nil || err.Error() != "line 9: expected name, found end of input" {
		t.Errorf("error = %v", err)
	}

	err = raising(func() { panic(io.ErrUnexpectedEOF) })
	if err != io.ErrUnexpectedEOF {
		t.Errorf("error = %v, want %v", err, io.ErrUnexpectedEOF)
	}

	if err := raising(func() {}); err != nil {
		t.Errorf("error = %v, want nil", err)
	}
}

func TestCatchRepanics(t *testing.T) {
	tests := []struct {
		name string
		f    func()
	}{
		{"runtime_error", func() {
			var s []int
			_ = s[1]
		}},
		{"non_error", func() { panic("boom") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("panic was swallowed")
				}
			}()

			raising(tt.f)
		})
	}
}

func TestLogLevelFromName(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"silent", LogLevelSilent},
		{"error", LogLevelError},
		{"warn", LogLevelWarn},
		{"verbose", LogLevelVerbose},
		{"", LogLevelVerbose},
	}

	for _, tt := range tests {
		if got := LogLevelFromName(tt.name); got != tt.want {
			t.Errorf("LogLevelFromName(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestReporterCounts(t *testing.T) {
	InitReporter(LogLevelSilent)
	defer InitReporter(LogLevelVerbose)

	if AnyErrors() {
		t.Fatal("fresh reporter has errors")
	}

	ReportWarning("Project", "version %s differs", "0.2.0")
	if AnyErrors() {
		t.Error("a warning counted as an error")
	}

	ReportCompileError("a.morpho", &SyntaxError{Line: 1, Expected: "name"})
	if !AnyErrors() {
		t.Error("compile error was not counted")
	}
}
