// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudformation"
)

// Stack represents an AWS CloudFormation stack to be applied from a template
// stored in S3.
type Stack struct {
	Name        string
	TemplateURL string

	parameters []*cloudformation.Parameter
}

// StackOption allows you to initialize a Stack with additional properties.
type StackOption func(s *Stack)

// NewStack creates a stack with the given name and S3 template location.
func NewStack(name, templateURL string, opts ...StackOption) *Stack {
	s := &Stack{
		Name:        name,
		TemplateURL: templateURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithParameters passes parameters to a stack.
func WithParameters(params map[string]string) StackOption {
	return func(s *Stack) {
		var flatParams []*cloudformation.Parameter
		for k, v := range params {
			flatParams = append(flatParams, &cloudformation.Parameter{
				ParameterKey:   aws.String(k),
				ParameterValue: aws.String(v),
			})
		}
		s.parameters = flatParams
	}
}

// StackDescription is an alias for the SDK's description of a stack.
type StackDescription cloudformation.Stack

// StackEvent is an alias for the SDK's stack event type.
type StackEvent cloudformation.StackEvent

// StackResource is an alias for the SDK's stack resource type.
type StackResource cloudformation.StackResource
