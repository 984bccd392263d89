// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cloudformation provides a client to make API requests to AWS CloudFormation.
package cloudformation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/google/uuid"
)

type eventMatcher func(*cloudformation.StackEvent) bool

var eventErrorStates = []string{
	cloudformation.ResourceStatusCreateFailed,
	cloudformation.ResourceStatusDeleteFailed,
	cloudformation.ResourceStatusImportFailed,
	cloudformation.ResourceStatusUpdateFailed,
	cloudformation.ResourceStatusImportRollbackFailed,
}

var waiters = []request.WaiterOption{
	request.WithWaiterDelay(request.ConstantWaiterDelay(5 * time.Second)), // How long to wait in between poll cfn for updates.
	request.WithWaiterMaxAttempts(1080),                                   // Wait for at most 90 mins for any cfn action.
}

type api interface {
	DescribeStacks(*cloudformation.DescribeStacksInput) (*cloudformation.DescribeStacksOutput, error)
	CreateStack(*cloudformation.CreateStackInput) (*cloudformation.CreateStackOutput, error)
	DeleteStack(*cloudformation.DeleteStackInput) (*cloudformation.DeleteStackOutput, error)
	WaitUntilStackDeleteCompleteWithContext(aws.Context, *cloudformation.DescribeStacksInput, ...request.WaiterOption) error
	DescribeStackEvents(*cloudformation.DescribeStackEventsInput) (*cloudformation.DescribeStackEventsOutput, error)
	DescribeStackResources(*cloudformation.DescribeStackResourcesInput) (*cloudformation.DescribeStackResourcesOutput, error)
	GetTemplate(*cloudformation.GetTemplateInput) (*cloudformation.GetTemplateOutput, error)

	changeSetAPI
}

// CloudFormation represents a client to make requests to AWS CloudFormation.
type CloudFormation struct {
	client api
}

// New creates a new CloudFormation client.
func New(s *session.Session) *CloudFormation {
	return &CloudFormation{
		client: cloudformation.New(s),
	}
}

// Create deploys a new CloudFormation stack.
// If a stack with the same name already exists, returns ErrStackAlreadyExists.
func (c *CloudFormation) Create(stack *Stack) error {
	token, err := uuid.NewRandom()
	if err != nil {
		return fmt.Errorf("generate client request token: %w", err)
	}
	_, err = c.client.CreateStack(&cloudformation.CreateStackInput{
		StackName:          aws.String(stack.Name),
		TemplateURL:        aws.String(stack.TemplateURL),
		Parameters:         stack.parameters,
		ClientRequestToken: aws.String(token.String()),
		Capabilities: aws.StringSlice([]string{
			cloudformation.CapabilityCapabilityIam,
			cloudformation.CapabilityCapabilityNamedIam,
		}),
	})
	if err != nil {
		if stackAlreadyExists(err) {
			return &ErrStackAlreadyExists{Name: stack.Name}
		}
		return fmt.Errorf("create stack %s: %w", stack.Name, err)
	}
	return nil
}

// Describe returns a description of an existing stack.
// If the stack does not exist, returns ErrStackNotFound.
func (c *CloudFormation) Describe(name string) (*StackDescription, error) {
	out, err := c.client.DescribeStacks(&cloudformation.DescribeStacksInput{
		StackName: aws.String(name),
	})
	if err != nil {
		if stackDoesNotExist(err) {
			return nil, &ErrStackNotFound{name: name}
		}
		return nil, fmt.Errorf("describe stack %s: %w", name, err)
	}
	if len(out.Stacks) == 0 {
		return nil, &ErrStackNotFound{name: name}
	}
	descr := StackDescription(*out.Stacks[0])
	return &descr, nil
}

// Exists returns true if the CloudFormation stack exists, false otherwise.
// If an error occurs for another reason than ErrStackNotFound, then returns the error.
func (c *CloudFormation) Exists(name string) (bool, error) {
	if _, err := c.Describe(name); err != nil {
		var notFound *ErrStackNotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DeleteAndWait removes an existing CloudFormation stack and blocks until the
// deletion completes or until the max attempt window expires.
// If the stack doesn't exist then do nothing.
func (c *CloudFormation) DeleteAndWait(name string) error {
	_, err := c.client.DeleteStack(&cloudformation.DeleteStackInput{
		StackName: aws.String(name),
	})
	if err != nil {
		if !stackDoesNotExist(err) {
			return fmt.Errorf("delete stack %s: %w", name, err)
		}
		return nil // If the stack is already deleted, don't wait for it.
	}
	err = c.client.WaitUntilStackDeleteCompleteWithContext(context.Background(), &cloudformation.DescribeStacksInput{
		StackName: aws.String(name),
	}, waiters...)
	if err != nil {
		return fmt.Errorf("wait until stack %s delete is complete: %w", name, err)
	}
	return nil
}

// Outputs returns the outputs of an existing stack.
func (c *CloudFormation) Outputs(name string) (map[string]string, error) {
	descr, err := c.Describe(name)
	if err != nil {
		return nil, err
	}
	outputs := make(map[string]string)
	for _, output := range descr.Outputs {
		outputs[aws.StringValue(output.OutputKey)] = aws.StringValue(output.OutputValue)
	}
	return outputs, nil
}

// TemplateBody returns the template body of an existing stack.
// If the stack does not exist, returns ErrStackNotFound.
func (c *CloudFormation) TemplateBody(name string) (string, error) {
	out, err := c.client.GetTemplate(&cloudformation.GetTemplateInput{
		StackName: aws.String(name),
	})
	if err != nil {
		if stackDoesNotExist(err) {
			return "", &ErrStackNotFound{name: name}
		}
		return "", fmt.Errorf("get template %s: %w", name, err)
	}
	return aws.StringValue(out.TemplateBody), nil
}

// StackResources returns the list of resources created as part of a CloudFormation stack.
func (c *CloudFormation) StackResources(name string) ([]*StackResource, error) {
	out, err := c.client.DescribeStackResources(&cloudformation.DescribeStackResourcesInput{
		StackName: aws.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("describe resources for stack %s: %w", name, err)
	}
	var resources []*StackResource
	for _, r := range out.StackResources {
		if r == nil {
			continue
		}
		sr := StackResource(*r)
		resources = append(resources, &sr)
	}
	return resources, nil
}

// Events returns the list of stack events in **chronological** order.
func (c *CloudFormation) Events(stackName string) ([]StackEvent, error) {
	return c.events(stackName, func(in *cloudformation.StackEvent) bool { return true })
}

// ErrorEvents returns the list of events with "failed" status in **chronological** order.
func (c *CloudFormation) ErrorEvents(stackName string) ([]StackEvent, error) {
	return c.events(stackName, func(in *cloudformation.StackEvent) bool {
		for _, status := range eventErrorStates {
			if aws.StringValue(in.ResourceStatus) == status {
				return true
			}
		}
		return false
	})
}

func (c *CloudFormation) events(stackName string, match eventMatcher) ([]StackEvent, error) {
	var nextToken *string
	var events []StackEvent
	for {
		out, err := c.client.DescribeStackEvents(&cloudformation.DescribeStackEventsInput{
			NextToken: nextToken,
			StackName: aws.String(stackName),
		})
		if err != nil {
			return nil, fmt.Errorf("describe stack events for stack %s: %w", stackName, err)
		}
		for _, event := range out.StackEvents {
			if match(event) {
				events = append(events, StackEvent(*event))
			}
		}
		nextToken = out.NextToken
		if nextToken == nil {
			break
		}
	}
	// Reverse the events so that they're returned in chronological order.
	// Taken from https://github.com/golang/go/wiki/SliceTricks#reversing.
	for i := len(events)/2 - 1; i >= 0; i-- {
		opp := len(events) - 1 - i
		events[i], events[opp] = events[opp], events[i]
	}
	return events, nil
}
