package cmd

import (
	"os"

	"nanomorpho/common"
	"nanomorpho/report"

	"github.com/ComedicChimera/olive"
)

// Execute runs the main `nmc` application and returns its exit code.
func Execute() int {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("nmc", "nmc compiles NanoMorpho programs to Morpho assembly", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "compile a source file or project", true)
	buildCmd.AddPrimaryArg("module-path", "the path to the source file or project directory", true)
	buildCmd.AddStringArg("outpath", "o", "the output path (`-` for standard output)", false)
	buildCmd.AddStringArg("profile", "p", "the name of the profile to build", false)
	buildCmd.AddSelectorArg("emit", "e", "what the compiler should output", false, []string{EmitMASM, EmitAST, EmitTokens})

	initCmd := cli.AddSubcommand("init", "initialize a project", true)
	initCmd.AddPrimaryArg("project-name", "the name of the new project", true)
	initCmd.AddStringArg("dir", "d", "the project directory (defaults to the working directory)", false)
	initCmd.AddFlag("no-profiles", "np", "indicates whether nmc should generate default profiles for this project")

	cli.AddSubcommand("version", "print the nmc version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal("usage error: %s", err)
	}

	logLevel := report.LogLevelFromName(result.Arguments["loglevel"].(string))
	report.InitReporter(logLevel)

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		return execBuildCommand(subResult, logLevel)
	case "init":
		execInitCommand(subResult)
	case "version":
		report.ReportInfo("nmc version", common.CompilerVersion)
	}

	return 0
}

// execBuildCommand executes the build subcommand and handles all errors.
func execBuildCommand(result *olive.ArgParseResult, logLevel int) int {
	rootPath, _ := result.PrimaryArg()

	c, err := NewCompiler(rootPath, stringArg(result, "profile"))
	if err != nil {
		report.ReportFatal("%s", err)
	}

	if err := c.Project().OverrideProfile(stringArg(result, "outpath"), stringArg(result, "emit")); err != nil {
		report.ReportFatal("%s", err)
	}

	// stdout carries the output: only warnings and errors are displayed
	if c.Project().Profile.OutputPath == "" && logLevel > report.LogLevelWarn {
		report.InitReporter(report.LogLevelWarn)
	}

	out, err := c.Compile()
	if err == nil {
		if werr := c.WriteOutput(out, os.Stdout); werr != nil {
			report.ReportStdError(c.Project().SourcePath, werr)
		}
	}

	report.ReportCompilationFinished(c.Project().Profile.OutputPath)

	if report.AnyErrors() {
		return 1
	}

	return 0
}

// execInitCommand executes the init subcommand.
func execInitCommand(result *olive.ArgParseResult) {
	name, _ := result.PrimaryArg()

	dir := stringArg(result, "dir")
	if dir == "" {
		workDir, err := os.Getwd()
		if err != nil {
			report.ReportFatal("error getting working directory: %s", err)
		}

		dir = workDir
	}

	if err := InitProject(name, dir, result.HasFlag("no-profiles")); err != nil {
		report.ReportFatal("%s", err)
	}

	report.ReportInfo("Created project", name)
}

// stringArg returns the value of an optional string argument or the empty
// string if it was not supplied.
func stringArg(result *olive.ArgParseResult, name string) string {
	if val, ok := result.Arguments[name]; ok {
		return val.(string)
	}

	return ""
}
