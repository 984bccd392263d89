// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package progress provides an indicator that a long operation is taking place.
package progress

import (
	"fmt"
	"io"
	"time"

	spin "github.com/briandowns/spinner"
)

// Frames used to animate the spinner.
var charset = spin.CharSets[14]

type startStopper interface {
	Start()
	Stop()
}

// Spinner wraps a terminal spinner that is started with a label and stopped
// with a final message replacing it.
type Spinner struct {
	internal startStopper
}

// NewSpinner returns a Spinner that writes to the given writer.
func NewSpinner(w io.Writer) *Spinner {
	s := spin.New(charset, 125*time.Millisecond, spin.WithHiddenCursor(true))
	s.Writer = w
	return &Spinner{
		internal: s,
	}
}

// Start starts the spinner suffixed with a label.
func (s *Spinner) Start(label string) {
	if spinner, ok := s.internal.(*spin.Spinner); ok {
		spinner.Lock()
		spinner.Suffix = fmt.Sprintf(" %s", label)
		spinner.Unlock()
	}
	s.internal.Start()
}

// Stop stops the spinner and replaces it with a label.
func (s *Spinner) Stop(label string) {
	if spinner, ok := s.internal.(*spin.Spinner); ok {
		spinner.Lock()
		spinner.FinalMSG = fmt.Sprintln(label)
		spinner.Unlock()
	}
	s.internal.Stop()
}
