package report

import (
	"fmt"
	"os"
)

// -----------------------------------------------------------------------------
// NOTE: All report functions will only display if the appropriate log level is
// set.  Most report functions will simply fail silently if below their
// appropriate log level.

// ReportCompileError reports an error in the source file at `path`.
func ReportCompileError(path string, cerr CompileError) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		displayCompileMessage("error", path, cerr.SourceLine(), cerr.Message())
	}
}

// ReportStdError reports a non-fatal, standard Go error.
func ReportStdError(path string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		displayStdError(path, err)
	}
}

// ReportWarning reports a warning that does not belong to any source line:
// configuration problems and the like.
func ReportWarning(kind, msg string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.warnCount++

	if rep.logLevel > LogLevelError {
		displayWarning(kind, fmt.Sprintf(msg, args...))
	}
}

// ReportFatal reports a fatal error and exits the program.  These are expected
// errors that generally result from invalid configuration: a missing source
// file, a malformed project file, etc.
func ReportFatal(msg string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel > LogLevelSilent {
		displayEndPhase(false)
		displayFatal(fmt.Sprintf(msg, args...))
	}

	os.Exit(1)
}

// ReportICE reports an internal compiler error.  These are errors that result
// from a bug in the compiler: they are not intended to ever happen.  They are
// always displayed regardless of log level.
func ReportICE(msg string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	displayEndPhase(false)
	displayICE(fmt.Sprintf(msg, args...))

	os.Exit(-1)
}

// ReportInfo displays a tagged informational message.
func ReportInfo(tag, msg string) {
	if rep.logLevel == LogLevelVerbose {
		displayInfo(tag, msg)
	}
}

// -----------------------------------------------------------------------------

// AnyErrors returns whether or not any errors were reported.
func AnyErrors() bool {
	return rep.errorCount > 0
}

// -----------------------------------------------------------------------------
// Below are all the "aesthetic" reporting functions that will only run if the
// log level is to verbose.

// ReportCompileHeader reports the pre-compilation header: the compiler version
// and the program being compiled.
func ReportCompileHeader(program string) {
	if rep.logLevel == LogLevelVerbose {
		displayCompileHeader(program)
	}
}

// ReportBeginPhase reports the beginning of a compilation phase.
func ReportBeginPhase(phase string) {
	if rep.logLevel == LogLevelVerbose {
		displayBeginPhase(phase)
	}
}

// ReportEndPhase reports the end of the current compilation phase.
func ReportEndPhase(success bool) {
	if rep.logLevel == LogLevelVerbose {
		displayEndPhase(success)
	}
}

// ReportCompilationFinished reports the concluding message for compilation.
func ReportCompilationFinished(outputPath string) {
	if rep.logLevel == LogLevelVerbose {
		displayCompilationFinished(!AnyErrors(), rep.errorCount, rep.warnCount, outputPath)
	}
}
