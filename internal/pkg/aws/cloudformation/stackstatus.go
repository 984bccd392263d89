// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"strings"

	"github.com/aws/aws-sdk-go/service/cloudformation"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	successStackStatuses = []string{
		cloudformation.StackStatusCreateComplete,
		cloudformation.StackStatusDeleteComplete,
		cloudformation.StackStatusUpdateComplete,
		cloudformation.StackStatusUpdateCompleteCleanupInProgress,
		cloudformation.StackStatusImportComplete,
	}

	failureStackStatuses = []string{
		cloudformation.StackStatusCreateFailed,
		cloudformation.StackStatusDeleteFailed,
		cloudformation.StackStatusRollbackInProgress,
		cloudformation.StackStatusRollbackComplete,
		cloudformation.StackStatusRollbackFailed,
		cloudformation.StackStatusUpdateRollbackComplete,
		cloudformation.StackStatusUpdateRollbackCompleteCleanupInProgress,
		cloudformation.StackStatusUpdateRollbackInProgress,
		cloudformation.StackStatusUpdateRollbackFailed,
	}
)

// StackStatus represents the status of a stack.
type StackStatus string

// InProgress returns true if the stack is currently being updated.
func (ss StackStatus) InProgress() bool {
	return strings.HasSuffix(string(ss), "IN_PROGRESS")
}

// IsSuccess returns true if the stack mutated successfully.
func (ss StackStatus) IsSuccess() bool {
	for _, success := range successStackStatuses {
		if string(ss) == success {
			return true
		}
	}
	return false
}

// IsFailure returns true if the stack failed to mutate.
func (ss StackStatus) IsFailure() bool {
	for _, failure := range failureStackStatuses {
		if string(ss) == failure {
			return true
		}
	}
	return false
}

// HumanString returns the status in a human readable format,
// e.g. "UPDATE_COMPLETE" becomes "Update Complete".
func (ss StackStatus) HumanString() string {
	words := strings.Split(strings.ToLower(string(ss)), "_")
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// String implements the fmt.Stringer interface.
func (ss StackStatus) String() string {
	return string(ss)
}
