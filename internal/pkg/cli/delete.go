// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/spf13/cobra"

	"github.com/aws-samples/hpx-cli/cmd/hpx/template"
	"github.com/aws-samples/hpx-cli/internal/pkg/aws/cloudformation"
	"github.com/aws-samples/hpx-cli/internal/pkg/aws/sessions"
	"github.com/aws-samples/hpx-cli/internal/pkg/cli/group"
	"github.com/aws-samples/hpx-cli/internal/pkg/deploy"
	"github.com/aws-samples/hpx-cli/internal/pkg/term/color"
	"github.com/aws-samples/hpx-cli/internal/pkg/term/log"
	termprogress "github.com/aws-samples/hpx-cli/internal/pkg/term/progress"
	"github.com/aws-samples/hpx-cli/internal/pkg/term/prompt"
)

var errDeleteCancelled = errors.New("operation cancelled")

type deleteVars struct {
	stackName        string
	skipConfirmation bool
	profile          string
	region           string
}

type deleteOpts struct {
	deleteVars

	prompt  prompter
	spinner progress

	initClients func() error
	cfn         stackRemover
	region      string
}

func newDeleteOpts(vars deleteVars) (*deleteOpts, error) {
	opts := &deleteOpts{
		deleteVars: vars,
		prompt:     prompt.New(),
		spinner:    termprogress.NewSpinner(log.DiagnosticWriter),
	}
	opts.initClients = func() error {
		sess, err := newSession(sessions.ImmutableProvider(sessions.UserAgentExtras("delete")), vars.profile, vars.region)
		if err != nil {
			return err
		}
		opts.cfn = cloudformation.New(sess)
		opts.region = aws.StringValue(sess.Config.Region)
		return nil
	}
	return opts, nil
}

// Validate is a no-op, the stack name is resolved against CloudFormation in Ask.
func (o *deleteOpts) Validate() error {
	return nil
}

// Ask confirms the deletion with the user unless --yes is passed.
func (o *deleteOpts) Ask() error {
	if err := o.initClients(); err != nil {
		return err
	}
	if o.stackName == "" {
		prefix := os.Getenv(prefixEnv)
		if prefix == "" {
			prefix = deploy.DefaultPrefix
		}
		o.stackName = fmt.Sprintf("%s-%s", prefix, o.region)
	}
	if o.skipConfirmation {
		return nil
	}
	confirmed, err := o.prompt.Confirm(
		fmt.Sprintf("Are you sure you want to delete stack %s?", o.stackName),
		"This removes every resource provisioned by the deployment, including the Redshift cluster.")
	if err != nil {
		return fmt.Errorf("confirm stack deletion: %w", err)
	}
	if !confirmed {
		return errDeleteCancelled
	}
	return nil
}

// Execute deletes the stack and waits until the deletion finishes.
func (o *deleteOpts) Execute() error {
	exists, err := o.cfn.Exists(o.stackName)
	if err != nil {
		return err
	}
	name := color.HighlightResource(o.stackName)
	if !exists {
		log.Infof("Stack %s does not exist, nothing to delete.\n", name)
		return nil
	}
	o.spinner.Start(fmt.Sprintf("Deleting stack %s.", name))
	if err := o.cfn.DeleteAndWait(o.stackName); err != nil {
		o.spinner.Stop(log.Serrorf("Failed to delete stack %s.\n", name))
		return err
	}
	o.spinner.Stop(log.Ssuccessf("Deleted stack %s.\n", name))
	return nil
}

// RecommendActions is a no-op for delete.
func (o *deleteOpts) RecommendActions() error {
	return nil
}

// BuildDeleteCmd is the delete top level command.
func BuildDeleteCmd() *cobra.Command {
	vars := deleteVars{}
	cmd := &cobra.Command{
		Use:   "delete [stack-name]",
		Short: "Delete a deployment stack and all of its resources.",
		Example: `
  Deletes the default stack.
  /code $ hpx delete
  Deletes a named stack without confirmation.
  /code $ hpx delete my-stack --yes`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				vars.stackName = args[0]
			}
			opts, err := newDeleteOpts(vars)
			if err != nil {
				return err
			}
			return run(opts)
		}),
	}
	cmd.Flags().BoolVar(&vars.skipConfirmation, yesFlag, false, yesFlagDescription)
	cmd.Flags().StringVar(&vars.profile, profileFlag, "", profileFlagDescription)
	cmd.Flags().StringVar(&vars.region, regionFlag, "", regionFlagDescription)
	cmd.MarkFlagsMutuallyExclusive(profileFlag, regionFlag)
	cmd.SetUsageTemplate(template.Usage)
	cmd.Annotations = map[string]string{
		"group": group.Operate,
	}
	return cmd
}
