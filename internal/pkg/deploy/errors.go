// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package deploy

import (
	"errors"
	"fmt"

	"github.com/aws-samples/hpx-cli/internal/pkg/term/color"
)

// ErrPasswordUnset occurs when the required REDSHIFT_PASSWORD environment variable is missing.
var ErrPasswordUnset = errors.New("REDSHIFT_PASSWORD must be set")

// ErrInvalidValue occurs when a user-supplied field does not match its expected format.
type ErrInvalidValue struct {
	Field   string
	Value   string
	Pattern string
}

func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("invalid %s %s: value must match the pattern %s",
		e.Field, color.HighlightUserInput(fmt.Sprintf("%q", e.Value)), e.Pattern)
}

// ErrTemplateUnreachable occurs when the CloudFormation template cannot be found
// under the distribution location.
type ErrTemplateUnreachable struct {
	URI string
}

func (e *ErrTemplateUnreachable) Error() string {
	return fmt.Sprintf("distribution %s is not reachable", e.URI)
}

// RecommendActions returns recommended actions to be taken after the error.
// Implements main.actionRecommender interface.
func (e *ErrTemplateUnreachable) RecommendActions() string {
	return fmt.Sprintf(`The deployment template could not be found under %s.
- Check that the version has been released, or pass the artifact location explicitly with %s.`,
		color.HighlightResource(e.URI), color.HighlightCode("--custom <s3-uri>"))
}
