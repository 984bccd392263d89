// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package deploy

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go/aws"

	"github.com/aws-samples/hpx-cli/internal/pkg/aws/cloudformation"
)

const fmtChangeSetName = "%s-changeset-%s-%s"

// Change set names must match [a-zA-Z][-a-zA-Z0-9]*.
var changeSetNameDisallowed = regexp.MustCompile(`[^-a-zA-Z0-9]+`)

// stackManager is the CloudFormation surface consumed by the deployer.
type stackManager interface {
	Describe(name string) (*cloudformation.StackDescription, error)
	Create(stack *cloudformation.Stack) error
	StageChangeSet(stack *cloudformation.Stack, name string) error
	ExecuteChangeSet(stackName, name string) error
}

// Result describes which CloudFormation operations a deployment performed.
type Result struct {
	// Created is true when a new stack creation was started.
	Created bool
	// ChangeSetName is the name of the staged change set when the stack already existed.
	ChangeSetName string
	// Executed is true when the staged change set was applied.
	Executed bool
}

// StackDeployer dispatches a deployment request to CloudFormation.
type StackDeployer struct {
	cfn       stackManager
	region    string
	localUser string
}

// NewStackDeployer returns a StackDeployer for the local user against a region.
func NewStackDeployer(cfn stackManager, region, localUser string) *StackDeployer {
	return &StackDeployer{
		cfn:       cfn,
		region:    region,
		localUser: localUser,
	}
}

// Deploy creates the stack if it does not exist yet. Otherwise it stages a
// deterministically named change set, and applies it if the request asks for
// immediate execution. A stack that is still mutating cannot take a change
// set, so Deploy returns ErrStackUpdateInProgress instead of staging one.
// Each external call is attempted exactly once.
func (d *StackDeployer) Deploy(req *Request, templateURL string) (Result, error) {
	stack := cloudformation.NewStack(string(req.StackName), templateURL,
		cloudformation.WithParameters(req.Parameters()))

	descr, err := d.cfn.Describe(string(req.StackName))
	if err != nil {
		var notFound *cloudformation.ErrStackNotFound
		if !errors.As(err, &notFound) {
			return Result{}, err
		}
		if err := d.cfn.Create(stack); err != nil {
			return Result{}, fmt.Errorf("create stack %s: %w", req.StackName, err)
		}
		return Result{Created: true}, nil
	}
	if status := cloudformation.StackStatus(aws.StringValue(descr.StackStatus)); status.InProgress() {
		return Result{}, &cloudformation.ErrStackUpdateInProgress{Name: string(req.StackName)}
	}

	name := d.ChangeSetName(req.Prefix)
	if err := d.cfn.StageChangeSet(stack, name); err != nil {
		return Result{}, err
	}
	if !req.Execute {
		return Result{ChangeSetName: name}, nil
	}
	if err := d.cfn.ExecuteChangeSet(string(req.StackName), name); err != nil {
		return Result{}, err
	}
	return Result{ChangeSetName: name, Executed: true}, nil
}

// ChangeSetName returns the change set name for the local user and region.
// The name is stable so that repeated runs by the same user replace the
// previously staged change set instead of accumulating new ones.
func (d *StackDeployer) ChangeSetName(prefix Prefix) string {
	user := changeSetNameDisallowed.ReplaceAllString(d.localUser, "-")
	user = strings.Trim(user, "-")
	if user == "" {
		user = "unknown"
	}
	return fmt.Sprintf(fmtChangeSetName, prefix, user, d.region)
}
