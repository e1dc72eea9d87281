package display

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var style = lipgloss.NewStyle().
	Bold(true).
	PaddingTop(1).
	Foreground(lipgloss.Color("9"))

// Error prints the error and any additional messages to the terminal
func Error(err error, msgs ...string) {
	if err == nil {
		return
	}

	errMsg := err.Error()
	if errMsg == "" {
		return
	}

	ErrorMsg(errMsg)
	if len(msgs) > 0 {
		ErrorMsg(msgs...)
	}
}

func ErrorMsg(msgs ...string) {
	for _, msg := range msgs {
		fmt.Fprintln(os.Stderr, style.Render(msg))
	}
}

func FatalErr(err error, msgs ...string) {
	Error(err, msgs...)
	os.Exit(1)
}

func FatalErrWithSupportCTA(err error) {
	Error(err, supportCTA)
	os.Exit(1)
}

const supportCTA = `Still stuck? Run with --debug and attach the output when you open an issue at https://github.com/triageagent/triage-cli/issues`

func ErrorWithSupportCTA(err error) {
	Error(err, supportCTA)
}
