package cmd

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nanomorpho/common"
	"nanomorpho/report"
)

// writeProject creates a project directory holding the given project file and
// a trivial source file at `src/fib.morpho`.
func writeProject(t *testing.T, projectFile string) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "src"), os.ModePerm); err != nil {
		t.Fatal(err)
	}

	if err := ioutil.WriteFile(filepath.Join(dir, common.ProjectFileName), []byte(projectFile), 0644); err != nil {
		t.Fatal(err)
	}

	if err := ioutil.WriteFile(filepath.Join(dir, "src", "fib.morpho"), []byte("main() { return 1; }\n"), 0644); err != nil {
		t.Fatal(err)
	}

	return dir
}

const profilesProject = `[project]
name = "fib"
source = "src/fib.morpho"
nanomorpho-version = "0.1.0"

[[profiles]]
name = "debug"
emit = "ast"
output = "-"

[[profiles]]
name = "release"
output = "out/fib.masm"
default = true
`

func TestLoadProjectProfiles(t *testing.T) {
	report.InitReporter(report.LogLevelSilent)
	dir := writeProject(t, profilesProject)

	tests := []struct {
		name       string
		selected   string
		wantName   string
		wantEmit   string
		wantOutput string
	}{
		{"default_profile", "", "release", EmitMASM, filepath.Join(dir, "out", "fib.masm")},
		{"selected_profile", "debug", "debug", EmitAST, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proj, err := LoadProject(dir, tt.selected)
			if err != nil {
				t.Fatalf("LoadProject error: %v", err)
			}

			if proj.Name != "fib" {
				t.Errorf("Name = %q, want fib", proj.Name)
			}
			if want := filepath.Join(dir, "src", "fib.morpho"); proj.SourcePath != want {
				t.Errorf("SourcePath = %q, want %q", proj.SourcePath, want)
			}
			if proj.Entry != common.DefaultEntry || proj.Runtime != common.DefaultRuntime {
				t.Errorf("Entry, Runtime = %q, %q", proj.Entry, proj.Runtime)
			}
			if proj.Profile.Name != tt.wantName {
				t.Errorf("Profile.Name = %q, want %q", proj.Profile.Name, tt.wantName)
			}
			if proj.Profile.Emit != tt.wantEmit {
				t.Errorf("Profile.Emit = %q, want %q", proj.Profile.Emit, tt.wantEmit)
			}
			if proj.Profile.OutputPath != tt.wantOutput {
				t.Errorf("Profile.OutputPath = %q, want %q", proj.Profile.OutputPath, tt.wantOutput)
			}
		})
	}

	if _, err := LoadProject(dir, "missing"); err == nil {
		t.Error("selecting a missing profile succeeded")
	}
}

func TestLoadProjectDefaults(t *testing.T) {
	report.InitReporter(report.LogLevelSilent)

	dir := writeProject(t, `[project]
name = "fib"
source = "src/fib.morpho"
entry = "start"
runtime = "EXT"
`)

	proj, err := LoadProject(dir, "")
	if err != nil {
		t.Fatalf("LoadProject error: %v", err)
	}

	if proj.Entry != "start" || proj.Runtime != "EXT" {
		t.Errorf("Entry, Runtime = %q, %q; want start, EXT", proj.Entry, proj.Runtime)
	}
	if proj.Profile.Emit != EmitMASM {
		t.Errorf("Profile.Emit = %q, want %q", proj.Profile.Emit, EmitMASM)
	}
	if want := filepath.Join(dir, "fib.masm"); proj.Profile.OutputPath != want {
		t.Errorf("Profile.OutputPath = %q, want %q", proj.Profile.OutputPath, want)
	}
}

func TestLoadProjectErrors(t *testing.T) {
	report.InitReporter(report.LogLevelSilent)

	tests := []struct {
		name    string
		file    string
		wantErr string
	}{
		{"missing_table", "[other]\nx = 1\n", "missing the [project] table"},
		{"missing_name", "[project]\nsource = \"a.morpho\"\n", "missing project name"},
		{"bad_name", "[project]\nname = \"my prog\"\nsource = \"a.morpho\"\n", "must be a valid name"},
		{"missing_source", "[project]\nname = \"p\"\n", "must specify a source file"},
		{"bad_entry", "[project]\nname = \"p\"\nsource = \"a.morpho\"\nentry = \"1st\"\n", "entry function"},
		{"bad_version", "[project]\nname = \"p\"\nsource = \"a.morpho\"\nnanomorpho-version = \"one\"\n", "invalid nanomorpho-version"},
		{
			"bad_emit",
			"[project]\nname = \"p\"\nsource = \"a.morpho\"\n\n[[profiles]]\nname = \"x\"\nemit = \"llvm\"\n",
			"invalid emit mode",
		},
		{
			"two_defaults",
			"[project]\nname = \"p\"\nsource = \"a.morpho\"\n\n[[profiles]]\nname = \"a\"\ndefault = true\n\n[[profiles]]\nname = \"b\"\ndefault = true\n",
			"multiple default profiles",
		},
		{"bad_toml", "[project\nname = \"p\"\n", "error parsing project file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeProject(t, tt.file)

			_, err := LoadProject(dir, "")
			if err == nil {
				t.Fatal("LoadProject succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadProjectMissingFile(t *testing.T) {
	if _, err := LoadProject(t.TempDir(), ""); err == nil {
		t.Error("loading a directory without a project file succeeded")
	}
}

func TestVersionMismatch(t *testing.T) {
	tests := []struct {
		version string
		want    bool
		wantErr bool
	}{
		{common.CompilerVersion, false, false},
		{"v" + common.CompilerVersion, false, false},
		{"0.0.9", true, false},
		{"1.0.0", true, false},
		{"latest", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got, err := versionMismatch(tt.version)
			if (err != nil) != tt.wantErr {
				t.Fatalf("versionMismatch(%q) error = %v, wantErr %v", tt.version, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("versionMismatch(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

func TestDefaultProject(t *testing.T) {
	srcPath := filepath.Join("/work", "progs", "hello.morpho")
	proj := DefaultProject(srcPath)

	if proj.Name != "hello" {
		t.Errorf("Name = %q, want hello", proj.Name)
	}
	if proj.SourcePath != srcPath {
		t.Errorf("SourcePath = %q, want %q", proj.SourcePath, srcPath)
	}
	if want := filepath.Join("/work", "progs", "hello.masm"); proj.Profile.OutputPath != want {
		t.Errorf("Profile.OutputPath = %q, want %q", proj.Profile.OutputPath, want)
	}
	if proj.Profile.Emit != EmitMASM {
		t.Errorf("Profile.Emit = %q, want %q", proj.Profile.Emit, EmitMASM)
	}
}

func TestOverrideProfile(t *testing.T) {
	masmOut := filepath.Join("/work", "hello.masm")

	tests := []struct {
		name       string
		outPath    string
		emit       string
		wantEmit   string
		wantOutput string
	}{
		{"nothing", "", "", EmitMASM, masmOut},
		{"stdout", "-", "", EmitMASM, ""},
		{"dump_to_stdout", "", EmitAST, EmitAST, ""},
		{"dump_to_file", filepath.Join("/tmp", "hello.ast"), EmitAST, EmitAST, filepath.Join("/tmp", "hello.ast")},
		{"same_emit", "", EmitMASM, EmitMASM, masmOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proj := DefaultProject(filepath.Join("/work", "hello.morpho"))

			if err := proj.OverrideProfile(tt.outPath, tt.emit); err != nil {
				t.Fatalf("OverrideProfile error: %v", err)
			}
			if proj.Profile.Emit != tt.wantEmit {
				t.Errorf("Profile.Emit = %q, want %q", proj.Profile.Emit, tt.wantEmit)
			}
			if proj.Profile.OutputPath != tt.wantOutput {
				t.Errorf("Profile.OutputPath = %q, want %q", proj.Profile.OutputPath, tt.wantOutput)
			}
		})
	}

	if err := DefaultProject("a.morpho").OverrideProfile("", "llvm"); err == nil {
		t.Error("overriding with an invalid emit mode succeeded")
	}
}

func TestCompileProject(t *testing.T) {
	report.InitReporter(report.LogLevelSilent)
	dir := writeProject(t, profilesProject)

	c, err := NewCompiler(dir, "")
	if err != nil {
		t.Fatalf("NewCompiler error: %v", err)
	}

	out, err := c.Compile()
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}

	stdout := &bytes.Buffer{}
	if err := c.WriteOutput(out, stdout); err != nil {
		t.Fatalf("WriteOutput error: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("wrote %d bytes to stdout, want 0", stdout.Len())
	}

	written, err := ioutil.ReadFile(filepath.Join(dir, "out", "fib.masm"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	want := "\"fib.mexe\" = main in\n!\n{{\n#\"main[f0]\" =\n[\n(MakeVal 1)\n(Return)\n(Return)\n];\n}}\n*\nBASIS;\n"
	if string(written) != want {
		t.Errorf("output:\n%s\nwant:\n%s", written, want)
	}
}

func TestCompileProjectDebugProfile(t *testing.T) {
	report.InitReporter(report.LogLevelSilent)
	dir := writeProject(t, profilesProject)

	c, err := NewCompiler(dir, "debug")
	if err != nil {
		t.Fatalf("NewCompiler error: %v", err)
	}

	out, err := c.Compile()
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}

	stdout := &bytes.Buffer{}
	if err := c.WriteOutput(out, stdout); err != nil {
		t.Fatalf("WriteOutput error: %v", err)
	}

	if want := "(func main 0 0 ((return 1)))\n"; stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestNewCompilerErrors(t *testing.T) {
	if _, err := NewCompiler(filepath.Join(t.TempDir(), "nope.morpho"), ""); err == nil {
		t.Error("compiling a missing file succeeded")
	}

	srcPath := filepath.Join(t.TempDir(), "a.morpho")
	if err := ioutil.WriteFile(srcPath, []byte("main() { 0; }"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewCompiler(srcPath, "debug"); err == nil {
		t.Error("selecting a profile for a lone source file succeeded")
	}
}

func TestInitProject(t *testing.T) {
	report.InitReporter(report.LogLevelSilent)

	tests := []struct {
		name        string
		noProfiles  bool
		wantProfile string
		wantOutRel  string
	}{
		{"with_profiles", false, "release", filepath.Join("out", "hello.masm")},
		{"no_profiles", true, "default", "hello.masm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := InitProject("hello", dir, tt.noProfiles); err != nil {
				t.Fatalf("InitProject error: %v", err)
			}

			proj, err := LoadProject(dir, "")
			if err != nil {
				t.Fatalf("LoadProject error: %v", err)
			}
			if proj.Profile.Name != tt.wantProfile {
				t.Errorf("Profile.Name = %q, want %q", proj.Profile.Name, tt.wantProfile)
			}
			if want := filepath.Join(dir, tt.wantOutRel); proj.Profile.OutputPath != want {
				t.Errorf("Profile.OutputPath = %q, want %q", proj.Profile.OutputPath, want)
			}

			c, err := NewCompiler(dir, "")
			if err != nil {
				t.Fatalf("NewCompiler error: %v", err)
			}
			if _, err := c.Compile(); err != nil {
				t.Errorf("compiling the new project failed: %v", err)
			}

			if err := InitProject("hello", dir, tt.noProfiles); err == nil {
				t.Error("initializing over an existing project succeeded")
			}
		})
	}

	if err := InitProject("not valid", t.TempDir(), false); err == nil {
		t.Error("initializing a project with an invalid name succeeded")
	}
}
