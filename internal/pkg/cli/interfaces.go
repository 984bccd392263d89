// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/aws-samples/hpx-cli/internal/pkg/archive"
	"github.com/aws-samples/hpx-cli/internal/pkg/aws/cloudformation"
	"github.com/aws-samples/hpx-cli/internal/pkg/aws/identity"
	"github.com/aws-samples/hpx-cli/internal/pkg/deploy"
	"github.com/aws-samples/hpx-cli/internal/pkg/term/prompt"
)

// stackDispatcher drives create-or-update for a deployment request.
type stackDispatcher interface {
	Deploy(req *deploy.Request, templateURL string) (deploy.Result, error)
}

// releaseStore reads release metadata and template locations out of the release bucket.
type releaseStore interface {
	LatestVersion() (string, error)
	DistributionURI(version string) string
	TemplateURL(dist deploy.DistributionURI) string
	TemplateExists(dist deploy.DistributionURI) (bool, error)
}

// identityService returns the caller identity tied to the configured credentials.
type identityService interface {
	Get() (identity.Caller, error)
}

// profileNames lists the named profiles in the AWS shared config file.
type profileNames interface {
	Names() []string
}

// stackDescriber is the read-only CloudFormation surface consumed by status.
type stackDescriber interface {
	Describe(name string) (*cloudformation.StackDescription, error)
	Outputs(name string) (map[string]string, error)
	StackResources(name string) ([]*cloudformation.StackResource, error)
	TemplateBody(name string) (string, error)
	Events(stackName string) ([]cloudformation.StackEvent, error)
	ErrorEvents(stackName string) ([]cloudformation.StackEvent, error)
}

// stackRemover tears down a stack and waits for the deletion to finish.
type stackRemover interface {
	Exists(name string) (bool, error)
	DeleteAndWait(name string) error
}

// distributionSyncer uploads a staged distribution directory to S3.
type distributionSyncer interface {
	Sync(dir, bucket, prefix string) ([]archive.Object, error)
}

type prompter interface {
	Confirm(message, help string, promptOpts ...prompt.Option) (bool, error)
}

type progress interface {
	Start(label string)
	Stop(label string)
}
