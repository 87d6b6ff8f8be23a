/*
Copyright 2018 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

/*
	This package is a FORK of https://github.com/kubernetes-sigs/kind/blob/master/pkg/log/status.go
	See above license
*/

// Package log contains logging related functionality
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/che-incubator/devworkspace-handler/pkg/log/fidget"
)

// Spacing for logging
const suffixSpacing = "  "

const (
	successSymbol = "✓"
	failureSymbol = "✗"
	warningSymbol = "⚠"
)

var (
	mu     sync.Mutex
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetStdout redirects the user-facing output, used by tests and by the commands
func SetStdout(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	stdout = w
}

// SetStderr redirects the error output
func SetStderr(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	stderr = w
}

// GetStdout returns the writer used for the user-facing output
func GetStdout() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return stdout
}

// GetStderr returns the writer used for the error output
func GetStderr() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return stderr
}

// Status is used to track ongoing status in a CLI, with a nice loading spinner
// when attached to a terminal
type Status struct {
	spinner *fidget.Spinner
	status  string
	writer  io.Writer
}

// NewStatus creates a new default Status
func NewStatus(w io.Writer) *Status {
	return &Status{
		spinner: fidget.NewSpinner(w),
		writer:  w,
	}
}

// IsTerminal returns true if the writer w is a terminal
func IsTerminal(w io.Writer) bool {
	if v, ok := (w).(*os.File); ok {
		return term.IsTerminal(int(v.Fd()))
	}
	return false
}

// Start starts a new phase of the status, if attached to a terminal
// there will be a loading spinner with this status
func (s *Status) Start(status string, debug bool) {
	s.End(true)
	s.status = status

	// If we are in debug mode, don't spin!
	if !IsTerminal(s.writer) || debug {
		fmt.Fprintf(s.writer, " •  %s  ...\n", s.status)
		return
	}
	s.spinner.SetSuffix(fmt.Sprintf("  %s", s.status))
	s.spinner.Start()
}

// End completes the current status, ending any previous spinning and
// marking the status as success or failure
func (s *Status) End(success bool) {
	if s.status == "" {
		return
	}

	if IsTerminal(s.writer) {
		s.spinner.Stop()
		fmt.Fprint(s.writer, "\r")
	}

	if success {
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(s.writer, " %s  %s [%s]\n", green(successSymbol), s.status, s.spinner.TimeSpent())
	} else {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(s.writer, " %s  %s [%s]\n", red(failureSymbol), s.status, s.spinner.TimeSpent())
	}

	s.status = ""
}

// Successf will output in an appropriate "success" manner
func Successf(format string, a ...interface{}) {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(GetStdout(), " %s%s%s\n", green(successSymbol), suffixSpacing, fmt.Sprintf(format, a...))
}

// Warningf will output in an appropriate "warning" manner
func Warningf(format string, a ...interface{}) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(GetStderr(), " %s%s%s\n", yellow(warningSymbol), suffixSpacing, fmt.Sprintf(format, a...))
}

// Warningbox outputs a warning surrounded by a box the width of its longest line
func Warningbox(message string) {
	if message == "" {
		return
	}
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintln(GetStderr(), yellow(wrapWarningMessage(message)))
}

// Errorf will output in an appropriate "progress" manner
func Errorf(format string, a ...interface{}) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(GetStderr(), " %s%s%s\n", red(failureSymbol), suffixSpacing, fmt.Sprintf(format, a...))
}

// Infof will simply print out information on a new (bolded) line
func Infof(format string, a ...interface{}) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(GetStdout(), "%s\n", bold(fmt.Sprintf(format, a...)))
}

// Spinnerf creates a spinner, sets the prefix then returns it.
// Remember to use .End(bool) to stop the spin / when you're done.
// For example: defer s.End(false)
func Spinnerf(format string, a ...interface{}) *Status {
	s := NewStatus(GetStdout())
	s.Start(fmt.Sprintf(format, a...), IsDebug())
	return s
}

// IsDebug returns true if we are debugging (-v is set to anything but 0)
func IsDebug() bool {
	flag := pflag.Lookup("v")
	if flag != nil {
		return !strings.Contains(flag.Value.String(), "0")
	}
	return false
}

func wrapWarningMessage(fullMessage string) string {
	if fullMessage == "" {
		return ""
	}
	width := 0
	for _, line := range strings.Split(fullMessage, "\n") {
		if len(line) > width {
			width = len(line)
		}
	}
	border := strings.Repeat("=", width)
	return fmt.Sprintf("%s\n%s\n%s", border, fullMessage, border)
}
