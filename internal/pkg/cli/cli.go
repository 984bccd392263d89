// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cli contains the hpx subcommands.
package cli

import (
	"os"
	"os/user"

	"github.com/spf13/cobra"
)

// actionCommand is the interface that every command that mutates a resource implements.
type actionCommand interface {
	// Validate returns an error if a flag's value is invalid.
	Validate() error

	// Ask prompts for required fields that are not passed in.
	Ask() error

	// Execute runs the command after collecting all required options.
	Execute() error

	// RecommendActions logs follow-up actions users can take after the command executes successfully.
	RecommendActions() error
}

// run executes a command's stages in order and returns the first failure.
func run(cmd actionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Ask(); err != nil {
		return err
	}
	if err := cmd.Execute(); err != nil {
		return err
	}
	return cmd.RecommendActions()
}

// runCmdE wraps one of the run error methods, PreRunE, RunE, of a cobra command so that if a user
// types "help" in the arguments the usage string is printed instead of running the command.
func runCmdE(f func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && args[0] == "help" {
			_ = cmd.Help() // Help always returns nil.
			os.Exit(0)
		}
		return f(cmd, args)
	}
}

// localUserName returns the name of the OS user running the command,
// or an empty string when it cannot be determined.
func localUserName() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	return u.Username
}
