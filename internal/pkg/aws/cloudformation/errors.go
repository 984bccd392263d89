// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws/awserr"
)

// ErrStackNotFound occurs when a CloudFormation stack does not exist.
type ErrStackNotFound struct {
	name string
}

func (e *ErrStackNotFound) Error() string {
	return fmt.Sprintf("stack named %s cannot be found", e.name)
}

// ErrStackAlreadyExists occurs when a CloudFormation stack with the same name already exists.
type ErrStackAlreadyExists struct {
	Name string
}

func (e *ErrStackAlreadyExists) Error() string {
	return fmt.Sprintf("stack %s already exists", e.Name)
}

// ErrStackUpdateInProgress occurs when a CloudFormation stack is undergoing an update.
type ErrStackUpdateInProgress struct {
	Name string
}

func (e *ErrStackUpdateInProgress) Error() string {
	return fmt.Sprintf("stack %s is currently being updated and cannot be deployed to", e.Name)
}

// ErrChangeSetEmpty occurs when the change set does not contain any new or updated resources.
type ErrChangeSetEmpty struct {
	name      string
	stackName string
}

func (e *ErrChangeSetEmpty) Error() string {
	return fmt.Sprintf("change set %s for stack %s has no changes", e.name, e.stackName)
}

// errChangeSetNotExecutable occurs when the change set cannot be executed.
type errChangeSetNotExecutable struct {
	cs    *changeSet
	descr *changeSetDescription
}

func (e *errChangeSetNotExecutable) Error() string {
	return fmt.Sprintf("execute %s because status is %s with reason %s", e.cs, e.descr.executionStatus, e.descr.statusReason)
}

// stackDoesNotExist returns true if the underlying error is a stack doesn't exist.
func stackDoesNotExist(err error) bool {
	var aerr awserr.Error
	if !errors.As(err, &aerr) {
		return false
	}
	if aerr.Code() != "ValidationError" {
		return false
	}
	// A ValidationError is thrown when a stack does not exist, we check the message to determine that it's
	// truly a non-existent stack error.
	return strings.Contains(aerr.Message(), "does not exist")
}

// stackAlreadyExists returns true if the underlying error is a stack already exists.
func stackAlreadyExists(err error) bool {
	var aerr awserr.Error
	if !errors.As(err, &aerr) {
		return false
	}
	return aerr.Code() == "AlreadyExistsException"
}

// changeSetAlreadyExists returns true if the underlying error is a change set with the same name already exists.
func changeSetAlreadyExists(err error) bool {
	return stackAlreadyExists(err)
}
