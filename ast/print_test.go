package ast

import (
	"bytes"
	"testing"
)

func lit(text string) *Literal {
	return &Literal{ASTBase: NewASTBaseOn(1), Text: text}
}

func name(slot int) *NameRef {
	return &NameRef{ASTBase: NewASTBaseOn(1), Slot: slot}
}

func TestSprint(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"literal", lit(`"s"`), `"s"`},
		{"name", name(2), "(name 2)"},
		{"store", &Store{Slot: 1, Value: lit("3")}, "(store 1 3)"},
		{"call", &Call{Callee: "+", Args: []Expr{name(0), lit("1")}}, "(call + (name 0) 1)"},
		{"call_no_args", &Call{Callee: "f"}, "(call f)"},
		{"return", &Return{Value: name(0)}, "(return (name 0))"},
		{
			"if_without_else",
			&If{Branches: []CondBranch{{Cond: name(0), Body: []Expr{lit("1")}}}},
			"(if (name 0) (1))",
		},
		{
			"if_with_empty_else",
			&If{Branches: []CondBranch{{Cond: name(0), Body: []Expr{lit("1")}}}, HasElse: true},
			"(if (name 0) (1) else ())",
		},
		{
			"if_elsif",
			&If{Branches: []CondBranch{
				{Cond: name(0), Body: []Expr{lit("1")}},
				{Cond: name(1), Body: []Expr{lit("2"), lit("3")}},
			}},
			"(if (name 0) (1) elsif (name 1) (2 3))",
		},
		{"while", &While{Cond: name(0), Body: nil}, "(while (name 0) ())"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sprint(tt.expr); got != tt.want {
				t.Errorf("Sprint() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFprintProgram(t *testing.T) {
	funcs := []*Function{
		NewFunction(1, "main", 0, 1, []Expr{&Store{Slot: 0, Value: lit("1")}}),
		NewFunction(4, "id", 1, 1, []Expr{&Return{Value: name(0)}}),
	}

	buff := &bytes.Buffer{}
	if err := FprintProgram(buff, funcs); err != nil {
		t.Fatalf("FprintProgram error: %v", err)
	}

	want := "(func main 0 1 ((store 0 1)))\n(func id 1 1 ((return (name 0))))\n"
	if got := buff.String(); got != want {
		t.Errorf("FprintProgram:\n%s\nwant:\n%s", got, want)
	}

	if funcs[0].LocalCount() != 1 || funcs[1].LocalCount() != 0 {
		t.Errorf("LocalCount() = %d, %d; want 1, 0", funcs[0].LocalCount(), funcs[1].LocalCount())
	}
	if funcs[1].Line() != 4 {
		t.Errorf("Line() = %d, want 4", funcs[1].Line())
	}
}
