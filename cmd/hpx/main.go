// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package main contains the root command.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/aws-samples/hpx-cli/cmd/hpx/template"
	"github.com/aws-samples/hpx-cli/internal/pkg/cli"
	"github.com/aws-samples/hpx-cli/internal/pkg/term/color"
	"github.com/aws-samples/hpx-cli/internal/pkg/term/log"
	"github.com/aws-samples/hpx-cli/internal/pkg/version"
)

type actionRecommender interface {
	RecommendActions() string
}

type exitCodeError interface {
	ExitCode() int
}

func init() {
	color.DisableColorBasedOnEnvVar()
	cobra.EnableCommandSorting = false // Maintain the order in which we add commands.
}

func main() {
	cmd := buildRootCmd()
	if err := cmd.Execute(); err != nil {
		var ac actionRecommender
		var exitCodeErr exitCodeError

		if errors.As(err, &ac) {
			log.Infoln(ac.RecommendActions())
		}
		if errors.As(err, &exitCodeErr) {
			log.Infoln(err.Error())
			os.Exit(exitCodeErr.ExitCode())
		}
		log.Errorln(err.Error())
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hpx",
		Short: "Launch and manage HPx deployments on AWS.",
		Example: `
  Displays the help menu for the "deploy" command.
  /code $ hpx deploy --help`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If we don't set a Run() function the help menu doesn't show up.
			// See https://github.com/spf13/cobra/issues/790
		},
		SilenceErrors: true,
	}

	cmd.SetOut(log.OutputWriter)
	cmd.SetErr(log.DiagnosticWriter)

	// Sets version for --version flag. Version command gives more detailed
	// version information.
	cmd.Version = version.Version
	cmd.SetVersionTemplate("hpx version: {{.Version}}\n")

	// NOTE: Order for each grouping below is significant in that it affects help menu output ordering.
	// "Release" command group.
	cmd.AddCommand(cli.BuildDeployCmd())
	cmd.AddCommand(cli.BuildPackageCmd())

	// "Operate" command group.
	cmd.AddCommand(cli.BuildStatusCmd())
	cmd.AddCommand(cli.BuildDeleteCmd())

	// "Settings" command group.
	cmd.AddCommand(cli.BuildVersionCmd())
	cmd.AddCommand(cli.BuildCompletionCmd(cmd))

	cmd.SetUsageTemplate(template.RootUsage)
	return cmd
}
