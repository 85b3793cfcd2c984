package report

import (
	"sync"
	"time"
)

// Reporter is responsible for reporting errors, warnings, and other kinds of
// messages to the user during compilation.  The reporter respects the set log
// level and is synchronized: its methods can be safely called from multiple
// goroutines.
type Reporter struct {
	// The mutex used to synchonize different report calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// The number of errors and warnings reported so far.
	errorCount, warnCount int

	// The time at which the reporter was initialized.
	startTime time.Time
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages to the user (default).
)

// rep is the global reporter instance.
var rep = &Reporter{m: &sync.Mutex{}, logLevel: LogLevelVerbose, startTime: time.Now()}

// InitReporter initializes the global reporter to the given log level and
// resets its error and warning counts.
func InitReporter(logLevel int) {
	rep = &Reporter{
		m:         &sync.Mutex{},
		logLevel:  logLevel,
		startTime: time.Now(),
	}
}

// LogLevelFromName converts a log level name as it is given on the command
// line into a log level.  Unknown names yield the verbose level.
func LogLevelFromName(name string) int {
	switch name {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "warn":
		return LogLevelWarn
	default:
		return LogLevelVerbose
	}
}
