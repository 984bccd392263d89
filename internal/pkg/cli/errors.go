// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"strings"

	"github.com/aws-samples/hpx-cli/internal/pkg/term/color"
	"github.com/dustin/go-humanize/english"
)

// errNoChanges occurs when a staged change set turns out to be empty.
// The run is reported as a success since the deployed stack already matches
// the requested parameters.
type errNoChanges struct {
	parentErr error
}

func (e *errNoChanges) Error() string {
	return e.parentErr.Error()
}

func (e *errNoChanges) Unwrap() error {
	return e.parentErr
}

// ExitCode returns 0, an empty change set is not a failure.
// Implements main.exitCodeError interface.
func (e *errNoChanges) ExitCode() int {
	return 0
}

// errProfileNotFound occurs when the --profile value is not declared in the
// AWS shared configuration file.
type errProfileNotFound struct {
	name      string
	available []string
}

func (e *errProfileNotFound) Error() string {
	return fmt.Sprintf("profile %s not found in the AWS config file", e.name)
}

// RecommendActions returns recommended actions to be taken after the error.
// Implements main.actionRecommender interface.
func (e *errProfileNotFound) RecommendActions() string {
	if len(e.available) == 0 {
		return fmt.Sprintf("No named profiles are configured. Run %s to create one.", color.HighlightCode("aws configure"))
	}
	return fmt.Sprintf("Available %s: %s.",
		english.PluralWord(len(e.available), "profile", "profiles"),
		strings.Join(e.available, ", "))
}
