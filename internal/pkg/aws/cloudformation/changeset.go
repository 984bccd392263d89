// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/cloudformation"
)

// Status reasons that can occur if the change set execution status is "FAILED".
const (
	noChangesReason = "NO_CHANGES_REASON"
	noUpdatesReason = "NO_UPDATES_REASON"
)

type changeSetAPI interface {
	CreateChangeSet(*cloudformation.CreateChangeSetInput) (*cloudformation.CreateChangeSetOutput, error)
	WaitUntilChangeSetCreateCompleteWithContext(aws.Context, *cloudformation.DescribeChangeSetInput, ...request.WaiterOption) error
	DescribeChangeSet(*cloudformation.DescribeChangeSetInput) (*cloudformation.DescribeChangeSetOutput, error)
	ExecuteChangeSet(*cloudformation.ExecuteChangeSetInput) (*cloudformation.ExecuteChangeSetOutput, error)
	DeleteChangeSet(*cloudformation.DeleteChangeSetInput) (*cloudformation.DeleteChangeSetOutput, error)
}

// changeSet is a named, staged set of changes against an existing stack.
// The name is picked by the caller so that repeated runs by the same user
// stage the same change set instead of accumulating new ones.
type changeSet struct {
	name      string
	stackName string
	client    changeSetAPI
}

type changeSetDescription struct {
	executionStatus string
	statusReason    string
	changes         []*cloudformation.Change
}

func (cs *changeSet) String() string {
	return fmt.Sprintf("change set %s for stack %s", cs.name, cs.stackName)
}

// StageChangeSet creates a change set of type UPDATE under the given name and
// waits until it is staged. If a change set with the same name already exists
// from a prior run, the stale one is deleted and the creation retried once.
// If the change set turns out to have no changes, it is deleted and
// ErrChangeSetEmpty is returned.
func (c *CloudFormation) StageChangeSet(stack *Stack, name string) error {
	cs := &changeSet{
		name:      name,
		stackName: stack.Name,
		client:    c.client,
	}
	if err := cs.create(stack); err != nil {
		if !changeSetAlreadyExists(err) {
			return err
		}
		if err := cs.delete(); err != nil {
			return err
		}
		if err := cs.create(stack); err != nil {
			return err
		}
	}
	descr, err := cs.describe()
	if err != nil {
		return err
	}
	if descr.isEmpty() {
		// The stack is already up to date; remove the useless change set.
		if err := cs.delete(); err != nil {
			return err
		}
		return &ErrChangeSetEmpty{name: cs.name, stackName: cs.stackName}
	}
	return nil
}

// ExecuteChangeSet applies a previously staged change set to the stack.
func (c *CloudFormation) ExecuteChangeSet(stackName, name string) error {
	cs := &changeSet{
		name:      name,
		stackName: stackName,
		client:    c.client,
	}
	return cs.execute()
}

// create creates the change set and waits until it's staged.
func (cs *changeSet) create(stack *Stack) error {
	_, err := cs.client.CreateChangeSet(&cloudformation.CreateChangeSetInput{
		ChangeSetName: aws.String(cs.name),
		StackName:     aws.String(cs.stackName),
		ChangeSetType: aws.String(cloudformation.ChangeSetTypeUpdate),
		TemplateURL:   aws.String(stack.TemplateURL),
		Parameters:    stack.parameters,
		Capabilities: aws.StringSlice([]string{
			cloudformation.CapabilityCapabilityIam,
			cloudformation.CapabilityCapabilityNamedIam,
		}),
	})
	if err != nil {
		return fmt.Errorf("create %s: %w", cs, err)
	}
	err = cs.client.WaitUntilChangeSetCreateCompleteWithContext(context.Background(), &cloudformation.DescribeChangeSetInput{
		ChangeSetName: aws.String(cs.name),
		StackName:     aws.String(cs.stackName),
	}, waiters...)
	if err != nil {
		// The waiter fails when the change set creation status is FAILED,
		// which is also how CloudFormation reports an empty change set.
		// Leave it to describe() to tell the two cases apart.
		descr, descrErr := cs.describe()
		if descrErr == nil && descr.isEmpty() {
			return nil
		}
		return fmt.Errorf("wait for creation of %s: %w", cs, err)
	}
	return nil
}

// describe collects all the changes and statuses that the change set will apply and returns them.
func (cs *changeSet) describe() (*changeSetDescription, error) {
	var executionStatus, statusReason string
	var changes []*cloudformation.Change
	var nextToken *string
	for {
		out, err := cs.client.DescribeChangeSet(&cloudformation.DescribeChangeSetInput{
			ChangeSetName: aws.String(cs.name),
			StackName:     aws.String(cs.stackName),
			NextToken:     nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("describe %s: %w", cs, err)
		}
		executionStatus = aws.StringValue(out.ExecutionStatus)
		statusReason = aws.StringValue(out.StatusReason)
		changes = append(changes, out.Changes...)
		nextToken = out.NextToken

		if nextToken == nil { // no more results left
			break
		}
	}
	return &changeSetDescription{
		executionStatus: executionStatus,
		statusReason:    statusReason,
		changes:         changes,
	}, nil
}

// execute executes a staged change set.
func (cs *changeSet) execute() error {
	descr, err := cs.describe()
	if err != nil {
		return err
	}
	if descr.executionStatus != cloudformation.ExecutionStatusAvailable {
		if descr.isEmpty() {
			return &ErrChangeSetEmpty{name: cs.name, stackName: cs.stackName}
		}
		return &errChangeSetNotExecutable{
			cs:    cs,
			descr: descr,
		}
	}
	_, err = cs.client.ExecuteChangeSet(&cloudformation.ExecuteChangeSetInput{
		ChangeSetName: aws.String(cs.name),
		StackName:     aws.String(cs.stackName),
	})
	if err != nil {
		return fmt.Errorf("execute %s: %w", cs, err)
	}
	return nil
}

// delete removes the change set.
func (cs *changeSet) delete() error {
	_, err := cs.client.DeleteChangeSet(&cloudformation.DeleteChangeSetInput{
		ChangeSetName: aws.String(cs.name),
		StackName:     aws.String(cs.stackName),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", cs, err)
	}
	return nil
}

func (d *changeSetDescription) isEmpty() bool {
	if len(d.changes) > 0 {
		return false
	}
	return d.statusReason == noChangesReason || d.statusReason == noUpdatesReason ||
		d.executionStatus == cloudformation.ExecutionStatusUnavailable
}
