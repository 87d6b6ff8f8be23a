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

// Package fidget implements CLI functionality for bored users waiting for results
package fidget

import (
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"
)

var unicodeSpinnerFrames = []string{"◐", "◓", "◑", "◒"}

// Windows terminals don't support unicode by default
var asciiSpinnerFrames = []string{"<", "^", ">", "v"}

// Spinner is a simple CLI loading spinner.
// It assumes that the line length will not change.
type Spinner struct {
	frames []string
	stop   chan struct{}
	ticker *time.Ticker
	writer io.Writer
	mu     sync.Mutex
	// protected by mu
	suffix string
	start  time.Time
}

// NewSpinner initializes and returns a new Spinner that will write to w
func NewSpinner(w io.Writer) *Spinner {
	frames := unicodeSpinnerFrames
	if runtime.GOOS == "windows" {
		frames = asciiSpinnerFrames
	}
	return &Spinner{
		frames: frames,
		stop:   make(chan struct{}, 1),
		ticker: time.NewTicker(200 * time.Millisecond),
		writer: w,
		start:  time.Now(),
	}
}

// SetSuffix sets the suffix to print after the spinner
func (s *Spinner) SetSuffix(suffix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// clear the line when the new suffix is shorter
	if len(suffix) < len(s.suffix) {
		fmt.Fprintf(s.writer, "\r%*s", len(s.suffix)+1, "")
	}
	s.suffix = suffix
	fmt.Fprint(s.writer, "\r")
}

// Start starts the spinner running
func (s *Spinner) Start() {
	go func() {
		for {
			for _, frame := range s.frames {
				select {
				case <-s.stop:
					return
				case <-s.ticker.C:
					s.mu.Lock()
					fmt.Fprintf(s.writer, "\r%s%s", frame, s.suffix)
					s.mu.Unlock()
				}
			}
		}
	}()
}

// Stop signals the spinner to stop
func (s *Spinner) Stop() {
	s.stop <- struct{}{}
}

// TimeSpent returns the time spent since the spinner was created
func (s *Spinner) TimeSpent() string {
	elapsed := time.Since(s.start)
	switch {
	case elapsed > time.Minute:
		return fmt.Sprintf("%.0fm", elapsed.Minutes())
	case elapsed > time.Second:
		return fmt.Sprintf("%.0fs", elapsed.Seconds())
	case elapsed > time.Millisecond:
		return fmt.Sprintf("%dms", elapsed.Milliseconds())
	}
	return fmt.Sprintf("%dns", elapsed.Nanoseconds())
}
