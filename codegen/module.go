package codegen

import (
	"bufio"
	"fmt"
	"io"

	"nanomorpho/ast"
)

// Module is a whole program as it is handed to the program emitter.
type Module struct {
	// The program name: the output artifact is `<Name>.mexe`.
	Name string

	// The name of the entry function.
	Entry string

	// The name of the base runtime the module is linked against.
	Runtime string

	// The functions of the program in declaration order.
	Funcs []*ast.Function
}

// EmitModule generates every function of a module and writes the complete
// assembly listing to w:
//
//	"<name>.mexe" = <entry> in
//	!
//	{{
//	#"<function>[f<argCount>]" =
//	[
//	<instructions>
//	];
//	...
//	}}
//	*
//	<runtime>;
func EmitModule(w io.Writer, mod *Module) error {
	bw := bufio.NewWriter(w)
	g := NewGenerator()

	fmt.Fprintf(bw, "\"%s.mexe\" = %s in\n", mod.Name, mod.Entry)
	bw.WriteString("!\n{{\n")

	for _, fn := range mod.Funcs {
		writeFunction(bw, fn.Name, fn.ArgCount, g.GenerateFunction(fn))
	}

	bw.WriteString("}}\n*\n")
	fmt.Fprintf(bw, "%s;\n", mod.Runtime)

	return bw.Flush()
}

// writeFunction writes the exported block of a single function.
func writeFunction(w io.Writer, name string, argCount int, code []Instr) {
	fmt.Fprintf(w, "#\"%s\" =\n[\n", FuncName(name, argCount))
	for _, in := range code {
		fmt.Fprintln(w, in.String())
	}
	fmt.Fprint(w, "];\n")
}
