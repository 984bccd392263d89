// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package prompt provides functionality to retrieve free-form text and
// confirmation input from the user via a terminal.
package prompt

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
)

// Prompt abstracts the survey.AskOne function.
type Prompt func(prompt survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// New returns a Prompt with default configuration.
func New() Prompt {
	return survey.AskOne
}

type prompter interface {
	Prompt(config *survey.PromptConfig) (interface{}, error)
	Cleanup(*survey.PromptConfig, interface{}) error
	Error(*survey.PromptConfig, error) error
}

type prompt struct {
	prompter
	finalMessage string // Text to display after the user enters an answer.
}

// Cleanup does a final render with the user's chosen value.
// This method overrides survey.Prompt's Cleanup method by assigning the prompt's message to the final message.
func (p *prompt) Cleanup(config *survey.PromptConfig, val interface{}) error {
	if p.finalMessage == "" {
		return p.prompter.Cleanup(config, val)
	}
	// Move the cursor up to the question line, and erase it before re-rendering.
	fmt.Fprintf(os.Stderr, "\x1b[%dA", 1)
	fmt.Fprint(os.Stderr, "\x1b[0G")
	fmt.Fprint(os.Stderr, "\x1b[2K")

	switch typedPrompt := p.prompter.(type) {
	case *survey.Confirm:
		typedPrompt.Message = p.finalMessage
	case *survey.Input:
		typedPrompt.Message = p.finalMessage
	}
	return p.prompter.Cleanup(config, val)
}

type promptConfig struct {
	defaultTrue  bool
	finalMessage string
}

// Option is a functional option to modify a prompt.
type Option func(*promptConfig)

// WithTrueDefault sets the default for a confirmation prompt to true.
func WithTrueDefault() Option {
	return func(c *promptConfig) {
		c.defaultTrue = true
	}
}

// WithFinalMessage sets a message that replaces the question once the user enters an answer.
func WithFinalMessage(msg string) Option {
	return func(c *promptConfig) {
		c.finalMessage = msg
	}
}

// Confirm prompts the user with a yes/no question.
func (p Prompt) Confirm(message, help string, opts ...Option) (bool, error) {
	config := &promptConfig{}
	for _, opt := range opts {
		opt(config)
	}
	confirm := &survey.Confirm{
		Message: message,
		Help:    help,
		Default: config.defaultTrue,
	}
	var result bool
	err := p(&prompt{prompter: confirm, finalMessage: config.finalMessage}, &result,
		survey.WithStdio(os.Stdin, os.Stderr, os.Stderr))
	return result, err
}

// Get prompts the user for free-form text input.
func (p Prompt) Get(message, help, defaultValue string, opts ...Option) (string, error) {
	config := &promptConfig{}
	for _, opt := range opts {
		opt(config)
	}
	input := &survey.Input{
		Message: message,
		Help:    help,
		Default: defaultValue,
	}
	var result string
	err := p(&prompt{prompter: input, finalMessage: config.finalMessage}, &result,
		survey.WithStdio(os.Stdin, os.Stderr, os.Stderr))
	return result, err
}
