package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"nanomorpho/ast"
	"nanomorpho/codegen"
	"nanomorpho/report"
	"nanomorpho/syntax"
)

// Compiler represents the state of a single compilation: one project compiled
// to one output.
type Compiler struct {
	// proj is the project being compiled.
	proj *Project

	// funcs are the parsed functions of the program.
	funcs []*ast.Function
}

// NewCompiler creates a new compiler for the file or project directory at
// `rootPath`.  `profileName` selects a build profile of a project and may be
// empty.
func NewCompiler(rootPath, profileName string) (*Compiler, error) {
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("error calculating absolute path: %w", err)
	}

	finfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}

	var proj *Project
	if finfo.IsDir() {
		proj, err = LoadProject(absPath, profileName)
		if err != nil {
			return nil, err
		}
	} else {
		if profileName != "" {
			return nil, errors.New("a profile can only be selected when compiling a project directory")
		}

		proj = DefaultProject(absPath)
	}

	return &Compiler{proj: proj}, nil
}

// Project returns the project being compiled.
func (c *Compiler) Project() *Project {
	return c.proj
}

// -----------------------------------------------------------------------------

// Compile runs every phase of compilation and returns the output selected by
// the build profile.  If compilation fails, the error has already been
// reported and no output is returned.
func (c *Compiler) Compile() ([]byte, error) {
	report.ReportCompileHeader(c.proj.Name)

	if c.proj.Profile.Emit == EmitTokens {
		return c.runPhase("Lexing", c.dumpTokens)
	}

	if _, err := c.runPhase("Parsing", c.parse); err != nil {
		return nil, err
	}

	if c.proj.Profile.Emit == EmitAST {
		return c.runPhase("Printing", c.dumpAST)
	}

	return c.runPhase("Generating", c.generate)
}

// runPhase runs a single phase of compilation and reports its beginning and
// end.  A phase either produces output or fails with an error.
func (c *Compiler) runPhase(name string, phase func() ([]byte, error)) ([]byte, error) {
	report.ReportBeginPhase(name)

	out, err := phase()
	if err != nil {
		report.ReportEndPhase(false)

		if cerr, ok := err.(report.CompileError); ok {
			report.ReportCompileError(c.proj.SourcePath, cerr)
		} else {
			report.ReportStdError(c.proj.SourcePath, err)
		}

		return nil, err
	}

	report.ReportEndPhase(true)
	return out, nil
}

// parse parses the project's source file.
func (c *Compiler) parse() ([]byte, error) {
	f, err := os.Open(c.proj.SourcePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	funcs, err := syntax.ParseSource(f)
	if err != nil {
		return nil, err
	}

	c.funcs = funcs
	return nil, nil
}

// generate generates the assembly listing of the parsed program.
func (c *Compiler) generate() ([]byte, error) {
	buff := &bytes.Buffer{}

	err := codegen.EmitModule(buff, &codegen.Module{
		Name:    c.proj.Name,
		Entry:   c.proj.Entry,
		Runtime: c.proj.Runtime,
		Funcs:   c.funcs,
	})
	if err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// dumpAST prints the parsed program as s-expressions.
func (c *Compiler) dumpAST() ([]byte, error) {
	buff := &bytes.Buffer{}
	if err := ast.FprintProgram(buff, c.funcs); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// dumpTokens lexes the source file and prints one token per line.
func (c *Compiler) dumpTokens() ([]byte, error) {
	f, err := os.Open(c.proj.SourcePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buff := &bytes.Buffer{}
	if err := writeTokens(buff, syntax.NewLexer(f)); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// writeTokens writes every token produced by the lexer as `line kind value`.
// Tokens without text (EOF) are written as `line kind`.
func writeTokens(w io.Writer, lexer *syntax.Lexer) error {
	for {
		tok, err := lexer.NextToken()
		if err != nil {
			return err
		}

		if tok.Value == "" {
			fmt.Fprintf(w, "%d\t%s\n", tok.Line, syntax.KindName(tok.Kind))
		} else {
			fmt.Fprintf(w, "%d\t%s\t%s\n", tok.Line, syntax.KindName(tok.Kind), tok.Value)
		}

		if tok.Kind == syntax.TOK_EOF {
			return nil
		}
	}
}

// -----------------------------------------------------------------------------

// WriteOutput writes compilation output to the profile's output path, or to
// `stdout` if the profile has none.
func (c *Compiler) WriteOutput(out []byte, stdout io.Writer) error {
	outPath := c.proj.Profile.OutputPath
	if outPath == "" {
		_, err := stdout.Write(out)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outPath), os.ModePerm); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	if err := ioutil.WriteFile(outPath, out, 0644); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	return nil
}
