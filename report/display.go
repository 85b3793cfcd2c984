package report

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"nanomorpho/common"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// displayICE displays an internal compiler error message.
func displayICE(msg string) {
	fmt.Print("\n")
	ErrorStyleBG.Print("Internal Compiler Error")
	ErrorColorFG.Println(" " + msg)
	InfoColorFG.Println("This error was not supposed to happen: it is a bug in nmc.")
}

// displayFatal displays a fatal error message.
func displayFatal(msg string) {
	fmt.Print("\n")
	ErrorStyleBG.Print("Fatal Error")
	ErrorColorFG.Println(" " + msg)
}

// displayInfo displays a tagged informational message.
func displayInfo(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// displayWarning displays a warning not attached to any source text.
func displayWarning(kind, msg string) {
	WarnStyleBG.Print(kind + " Warning")
	WarnColorFG.Println(" " + msg)
}

// displayStdError displays a standard Go error.
func displayStdError(path string, err error) {
	fmt.Printf("%s: ", path)
	ErrorColorFG.Print("error")
	fmt.Printf(": %s\n\n", err)
}

// displayCompileMessage displays a compilation error or warning along with the
// source line it refers to.
func displayCompileMessage(label, path string, line int, msg string) {
	fmt.Printf("%s:%d: ", path, line)
	if label == "error" {
		ErrorColorFG.Print(label)
	} else {
		WarnColorFG.Print(label)
	}
	fmt.Printf(": %s\n", msg)

	displaySourceLine(path, line)
	fmt.Println()
}

// displaySourceLine displays a single numbered line of source text.  If the
// file cannot be read, nothing is displayed: the message has already been
// printed and the position is enough to locate the error.
func displaySourceLine(path string, line int) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	sc := bufio.NewScanner(file)
	for ln := 1; sc.Scan(); ln++ {
		if ln == line {
			text := strings.ReplaceAll(sc.Text(), "\t", "    ")

			InfoColorFG.Print(fmt.Sprintf("%-4d", line))
			fmt.Print("|  ")
			fmt.Println(strings.TrimSpace(text))
			return
		}
	}
}

// -----------------------------------------------------------------------------

// displayCompileHeader displays the compiler information before compilation.
func displayCompileHeader(program string) {
	fmt.Print("nmc ")
	InfoColorFG.Print("v" + common.CompilerVersion)
	fmt.Print(" -- program: ")
	InfoColorFG.Println(program)
}

// The phase currently being run and the time it began.
var currentPhase string
var phaseStartTime time.Time

const maxPhaseLength = len("Generating")

var (
	phaseDonePrinter = pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: SuccessStyleBG,
			Text:  "Done",
		},
	}

	phaseFailPrinter = pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: ErrorStyleBG,
			Text:  "Fail",
		},
	}
)

// displayBeginPhase records the beginning of a compilation phase.  Nothing is
// printed until the phase ends so that phase lines never interleave with
// error messages.
func displayBeginPhase(phase string) {
	currentPhase = phase
	phaseStartTime = time.Now()
}

// displayEndPhase displays the end of a compilation phase.
func displayEndPhase(success bool) {
	if currentPhase == "" {
		return
	}

	phaseText := currentPhase + strings.Repeat(" ", maxPhaseLength-len(currentPhase)+2)
	if success {
		phaseDonePrinter.Println(phaseText, fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds()))
	} else {
		phaseFailPrinter.Println(phaseText)
	}

	currentPhase = ""
}

// displayCompilationFinished displays a compilation finished message.
func displayCompilationFinished(success bool, errorCount, warnCount int, outputPath string) {
	fmt.Print("\n")

	if success {
		SuccessColorFG.Print("All done! ")
	} else {
		ErrorColorFG.Print("Oh no! ")
	}

	fmt.Print("(")

	switch errorCount {
	case 0:
		SuccessColorFG.Print(0)
		fmt.Print(" errors, ")
	case 1:
		ErrorColorFG.Print(1)
		fmt.Print(" error, ")
	default:
		ErrorColorFG.Print(errorCount)
		fmt.Print(" errors, ")
	}

	switch warnCount {
	case 0:
		SuccessColorFG.Print(0)
		fmt.Println(" warnings)")
	case 1:
		WarnColorFG.Print(1)
		fmt.Println(" warning)")
	default:
		WarnColorFG.Print(warnCount)
		fmt.Println(" warnings)")
	}

	if success && outputPath != "" {
		fmt.Print("output written to ")
		InfoColorFG.Println(outputPath)
	}
}
