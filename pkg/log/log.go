// Package log prints human readable status lines for the command line.
package log

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

const (
	windowsOS = "windows"
)

// Result descrbiles the result of a task.
type Result bool

const (
	// Success means true result.
	Success Result = true
	// Failure means false result.
	Failure Result = false
)

// Colors of term style.
var (
	Yellow    = color.New(color.FgHiYellow, color.Bold).SprintFunc()
	Green     = color.New(color.FgHiGreen, color.Bold).SprintFunc()
	Cyan      = color.New(color.FgCyan, color.Bold, color.Underline).SprintFunc()
	Red       = color.New(color.FgHiRed, color.Bold).Add(color.Italic).SprintFunc()
	WhiteBold = color.New(color.FgWhite, color.Bold).SprintFunc()
)

var logAsJSON bool

// EnableJSONFormat makes every status event a single json line.
func EnableJSONFormat() {
	logAsJSON = true
}

// SuccessStatusEvent reports on a success event.
func SuccessStatusEvent(w io.Writer, fmtstr string, a ...any) {
	statusEvent(w, "success", "✅ ", fmtstr, a...)
}

// FailureStatusEvent reports on a failure event.
func FailureStatusEvent(w io.Writer, fmtstr string, a ...any) {
	statusEvent(w, "failure", "❌ ", fmtstr, a...)
}

// WarningStatusEvent reports on a warning event.
func WarningStatusEvent(w io.Writer, fmtstr string, a ...any) {
	statusEvent(w, "warning", "⚠️ ", fmtstr, a...)
}

// PendingStatusEvent reports on a pending event.
func PendingStatusEvent(w io.Writer, fmtstr string, a ...any) {
	statusEvent(w, "pending", "⌛ ", fmtstr, a...)
}

// InfoStatusEvent reports status information on an event.
func InfoStatusEvent(w io.Writer, fmtstr string, a ...any) {
	statusEvent(w, "info", "ℹ️  ", fmtstr, a...)
}

func statusEvent(w io.Writer, status, icon, fmtstr string, a ...any) {
	msg := fmt.Sprintf(fmtstr, a...)
	switch {
	case logAsJSON:
		logJSON(w, status, msg)
	case runtime.GOOS == windowsOS:
		fmt.Fprintf(w, "%s\n", msg)
	default:
		fmt.Fprintf(w, "%s %s\n", icon, msg)
	}
}

// Spinner is a spinner for long running tasks, like paging through every
// deployed function. The returned func stops it and prints the result.
func Spinner(w io.Writer, fmtstr string, a ...any) func(result Result) {
	msg := fmt.Sprintf(fmtstr, a...)
	var once sync.Once
	var s *spinner.Spinner

	if logAsJSON {
		logJSON(w, "pending", msg)
	} else if runtime.GOOS == windowsOS {
		fmt.Fprintf(w, "%s\n", msg)

		return func(Result) {}
	} else {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Writer = w
		_ = s.Color("cyan")
		s.Suffix = fmt.Sprintf("  %s", msg)
		s.Start()
	}

	return func(result Result) {
		once.Do(func() {
			if s != nil {
				s.Stop()
			}
			if result {
				SuccessStatusEvent(w, msg)
			} else {
				FailureStatusEvent(w, msg)
			}
		})
	}
}

func logJSON(w io.Writer, status, message string) {
	type jsonLog struct {
		Time    time.Time `json:"time"`
		Status  string    `json:"status"`
		Message string    `json:"msg"`
	}

	l := jsonLog{
		Time:    time.Now().UTC(),
		Status:  status,
		Message: message,
	}
	jsonBytes, err := json.Marshal(&l)
	if err != nil {
		fmt.Fprintln(w, message)
		return
	}

	fmt.Fprintf(w, "%s\n", string(jsonBytes))
}
