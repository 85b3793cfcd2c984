package cmd

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"nanomorpho/common"
	"nanomorpho/report"

	"github.com/pelletier/go-toml"
	"golang.org/x/mod/semver"
)

// tomlProjectFile represents the project file as it is encoded in TOML.
type tomlProjectFile struct {
	Project  *tomlProject   `toml:"project"`
	Profiles []*tomlProfile `toml:"profiles,omitempty"`
}

// tomlProject represents the `[project]` table of the project file.
type tomlProject struct {
	Name    string `toml:"name"`
	Source  string `toml:"source"`
	Entry   string `toml:"entry,omitempty"`
	Runtime string `toml:"runtime,omitempty"`
	Version string `toml:"nanomorpho-version,omitempty"`
}

// tomlProfile represents a build profile as it is encoded in TOML.
type tomlProfile struct {
	Name        string `toml:"name"`
	OutputPath  string `toml:"output,omitempty"`
	Emit        string `toml:"emit,omitempty"`
	DefaultProf bool   `toml:"default,omitempty"`
}

// Project is a loaded and validated NanoMorpho project: a single source file
// and the settings used to compile it.
type Project struct {
	// The program name used in the module header.
	Name string

	// The absolute path to the source file.
	SourcePath string

	// The name of the entry function.
	Entry string

	// The name of the base runtime named in the module footer.
	Runtime string

	// The selected build profile.
	Profile *Profile
}

// Profile is a build profile: where and what the compiler outputs.
type Profile struct {
	Name string

	// The path to write output to.  An empty path means standard output.
	OutputPath string

	// The output mode: one of the enumerated emit modes.
	Emit string
}

// Enumeration of emit modes.
const (
	EmitMASM   = "masm"
	EmitAST    = "ast"
	EmitTokens = "tokens"
)

// isValidEmit returns whether the emit mode is one of the enumerated ones.
func isValidEmit(emit string) bool {
	switch emit {
	case EmitMASM, EmitAST, EmitTokens:
		return true
	}

	return false
}

// -----------------------------------------------------------------------------

// DefaultProject creates the project used to compile a lone source file: the
// program is named after the file and the output is written beside it.
func DefaultProject(srcPath string) *Project {
	name := common.ProgramName(srcPath)

	return &Project{
		Name:       name,
		SourcePath: srcPath,
		Entry:      common.DefaultEntry,
		Runtime:    common.DefaultRuntime,
		Profile: &Profile{
			Name:       "default",
			OutputPath: filepath.Join(filepath.Dir(srcPath), name+common.AsmFileExtension),
			Emit:       EmitMASM,
		},
	}
}

// LoadProject loads and validates the project file in the directory at
// `absPath` and selects a build profile.  `selectedProfile` may be empty if no
// profile was requested.
func LoadProject(absPath, selectedProfile string) (*Project, error) {
	f, err := os.Open(filepath.Join(absPath, common.ProjectFileName))
	if err != nil {
		return nil, fmt.Errorf("unable to open project file: %w", err)
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading project file: %w", err)
	}

	tpf := &tomlProjectFile{}
	if err := toml.Unmarshal(buff, tpf); err != nil {
		return nil, fmt.Errorf("error parsing project file: %w", err)
	}

	if err := validateProject(tpf.Project); err != nil {
		return nil, err
	}

	proj := &Project{
		Name:       tpf.Project.Name,
		SourcePath: filepath.Join(absPath, filepath.FromSlash(tpf.Project.Source)),
		Entry:      tpf.Project.Entry,
		Runtime:    tpf.Project.Runtime,
	}

	if proj.Entry == "" {
		proj.Entry = common.DefaultEntry
	}

	if proj.Runtime == "" {
		proj.Runtime = common.DefaultRuntime
	}

	prof, err := selectProfile(absPath, proj.Name, tpf.Profiles, selectedProfile)
	if err != nil {
		return nil, err
	}
	proj.Profile = prof

	return proj, nil
}

// validateProject checks that the `[project]` table is valid.
func validateProject(tp *tomlProject) error {
	if tp == nil {
		return errors.New("project file is missing the [project] table")
	}

	if tp.Name == "" {
		return errors.New("missing project name")
	}

	if !common.IsValidIdentifier(tp.Name) {
		return errors.New("project name must be a valid name")
	}

	if tp.Source == "" {
		return fmt.Errorf("project %s must specify a source file", tp.Name)
	}

	if tp.Entry != "" && !common.IsValidIdentifier(tp.Entry) {
		return fmt.Errorf("entry function of project %s must be a valid name", tp.Name)
	}

	if tp.Version != "" {
		mismatch, err := versionMismatch(tp.Version)
		if err != nil {
			return err
		}

		if mismatch {
			report.ReportWarning(
				"Project",
				"version of project `%s` (v%s) does not match current nmc version (v%s)",
				tp.Name,
				tp.Version,
				common.CompilerVersion,
			)
		}
	}

	return nil
}

// versionMismatch compares a project's declared compiler version to the
// version of this compiler.  Versions are written without the leading `v`.
func versionMismatch(version string) (bool, error) {
	v := "v" + strings.TrimPrefix(version, "v")
	if !semver.IsValid(v) {
		return false, fmt.Errorf("invalid nanomorpho-version: %q", version)
	}

	return semver.Compare(v, "v"+common.CompilerVersion) != 0, nil
}

// selectProfile selects a build profile: the profile named `selectedProfile`
// if one was requested, otherwise the profile marked default, otherwise the
// first profile.  If the project declares no profiles, a default profile is
// created.
func selectProfile(absPath, projName string, profiles []*tomlProfile, selectedProfile string) (*Profile, error) {
	var chosen *tomlProfile

	if selectedProfile != "" {
		for _, prof := range profiles {
			if prof.Name == selectedProfile {
				chosen = prof
				break
			}
		}

		if chosen == nil {
			return nil, fmt.Errorf("project %s has no profile named %s", projName, selectedProfile)
		}
	} else {
		for _, prof := range profiles {
			if prof.DefaultProf {
				if chosen != nil {
					return nil, fmt.Errorf("project %s has multiple default profiles", projName)
				}

				chosen = prof
			}
		}

		if chosen == nil && len(profiles) > 0 {
			chosen = profiles[0]
		}
	}

	if chosen == nil {
		return &Profile{
			Name:       "default",
			OutputPath: filepath.Join(absPath, projName+common.AsmFileExtension),
			Emit:       EmitMASM,
		}, nil
	}

	return convertProfile(absPath, projName, chosen)
}

// convertProfile validates a TOML profile and converts it into a profile.
func convertProfile(absPath, projName string, tp *tomlProfile) (*Profile, error) {
	prof := &Profile{
		Name: tp.Name,
		Emit: tp.Emit,
	}

	if prof.Emit == "" {
		prof.Emit = EmitMASM
	} else if !isValidEmit(prof.Emit) {
		return nil, fmt.Errorf("profile %s has an invalid emit mode: %s", tp.Name, tp.Emit)
	}

	switch {
	case tp.OutputPath == "-":
		// Standard output.
	case tp.OutputPath == "":
		prof.OutputPath = filepath.Join(absPath, projName+common.AsmFileExtension)
	case filepath.IsAbs(tp.OutputPath):
		prof.OutputPath = tp.OutputPath
	default:
		prof.OutputPath = filepath.Join(absPath, filepath.FromSlash(tp.OutputPath))
	}

	return prof, nil
}

// -----------------------------------------------------------------------------

// OverrideProfile applies the command line's output options to the selected
// profile.  An empty argument leaves the profile's setting unchanged.  An
// output path of `-` means standard output.  Switching to a dump mode without
// naming an output writes the dump to standard output.
func (p *Project) OverrideProfile(outPath, emit string) error {
	if emit != "" {
		if !isValidEmit(emit) {
			return fmt.Errorf("invalid emit mode: %s", emit)
		}

		if emit != EmitMASM && emit != p.Profile.Emit && outPath == "" {
			p.Profile.OutputPath = ""
		}

		p.Profile.Emit = emit
	}

	switch outPath {
	case "":
	case "-":
		p.Profile.OutputPath = ""
	default:
		absOutPath, err := filepath.Abs(outPath)
		if err != nil {
			return fmt.Errorf("error calculating absolute path: %w", err)
		}

		p.Profile.OutputPath = absOutPath
	}

	return nil
}
