package cmd

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"nanomorpho/common"

	"github.com/pelletier/go-toml"
)

// helloProgram is the source file created for a new project.
const helloProgram = `;;; The entry point of the program.
main() {
	writeln("Hello, world!");
}
`

// InitProject creates a new project named `name` in the directory at `dir`: a
// project file and a source file at `src/<name>.morpho`.  Unless `noProfiles`
// is set, the project file declares a release profile (the default) and a
// debug profile that prints the AST.
func InitProject(name, dir string, noProfiles bool) error {
	projFilePath := filepath.Join(dir, common.ProjectFileName)

	// check to see if a project already exists
	_, err := os.Stat(projFilePath)
	if err == nil {
		return errors.New("project file already exists")
	}

	if !os.IsNotExist(err) {
		return fmt.Errorf("project file error: %w", err)
	}

	if !common.IsValidIdentifier(name) {
		return errors.New("project name must be a valid name")
	}

	srcRelPath := "src/" + name + common.SrcFileExtension
	proj := &tomlProject{
		Name:    name,
		Source:  srcRelPath,
		Version: common.CompilerVersion,
	}

	var profiles []*tomlProfile
	if !noProfiles {
		profiles = []*tomlProfile{
			{Name: "release", OutputPath: "out/" + name + common.AsmFileExtension, Emit: EmitMASM, DefaultProf: true},
			{Name: "debug", OutputPath: "-", Emit: EmitAST},
		}
	}

	if err := os.MkdirAll(filepath.Join(dir, "src"), os.ModePerm); err != nil {
		return fmt.Errorf("error creating source directory: %w", err)
	}

	// an existing source file is kept as it is
	srcPath := filepath.Join(dir, filepath.FromSlash(srcRelPath))
	if _, err := os.Stat(srcPath); os.IsNotExist(err) {
		if err := ioutil.WriteFile(srcPath, []byte(helloProgram), 0644); err != nil {
			return fmt.Errorf("error creating source file: %w", err)
		}
	}

	// encode and save the project to file
	f, err := os.Create(projFilePath)
	if err != nil {
		return fmt.Errorf("error creating project file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(&tomlProjectFile{Project: proj, Profiles: profiles}); err != nil {
		return fmt.Errorf("error encoding TOML: %w", err)
	}

	return nil
}
