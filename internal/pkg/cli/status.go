// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/aws-samples/hpx-cli/cmd/hpx/template"
	"github.com/aws-samples/hpx-cli/internal/pkg/aws/cloudformation"
	"github.com/aws-samples/hpx-cli/internal/pkg/aws/sessions"
	"github.com/aws-samples/hpx-cli/internal/pkg/cli/group"
	"github.com/aws-samples/hpx-cli/internal/pkg/deploy"
	"github.com/aws-samples/hpx-cli/internal/pkg/term/color"
	"github.com/aws-samples/hpx-cli/internal/pkg/term/log"
)

// minCellWidth and friends configure the tabwriter columns of the outputs table.
const (
	minCellWidth           = 20
	tabWidth               = 4
	cellPaddingWidth       = 2
	paddingChar            = ' '
	noAdditionalFormatting = 0
)

// maxRecentEvents caps the number of events shown for a stack that is still mutating.
const maxRecentEvents = 10

type statusVars struct {
	stackName string
	profile   string
	region    string
}

type statusOpts struct {
	statusVars

	w io.Writer

	initClients func() error
	cfn         stackDescriber
	region      string
}

func newStatusOpts(vars statusVars) (*statusOpts, error) {
	opts := &statusOpts{
		statusVars: vars,
		w:          log.OutputWriter,
	}
	opts.initClients = func() error {
		sess, err := newSession(sessions.ImmutableProvider(sessions.UserAgentExtras("status")), vars.profile, vars.region)
		if err != nil {
			return err
		}
		opts.cfn = cloudformation.New(sess)
		opts.region = aws.StringValue(sess.Config.Region)
		return nil
	}
	return opts, nil
}

// Validate is a no-op, the stack name is validated by CloudFormation on read.
func (o *statusOpts) Validate() error {
	return nil
}

// Ask is a no-op, every input is either a flag or defaulted.
func (o *statusOpts) Ask() error {
	return nil
}

// Execute prints the stack's status, outputs, resources, and recent failures.
// While the stack is still mutating it also prints the latest stack events.
func (o *statusOpts) Execute() error {
	if err := o.initClients(); err != nil {
		return err
	}
	name := o.stackName
	if name == "" {
		prefix := os.Getenv(prefixEnv)
		if prefix == "" {
			prefix = deploy.DefaultPrefix
		}
		name = fmt.Sprintf("%s-%s", prefix, o.region)
	}

	descr, err := o.cfn.Describe(name)
	if err != nil {
		return err
	}
	status := cloudformation.StackStatus(aws.StringValue(descr.StackStatus))
	updated := aws.TimeValue(descr.CreationTime)
	if descr.LastUpdatedTime != nil {
		updated = aws.TimeValue(descr.LastUpdatedTime)
	}
	fmt.Fprintf(o.w, "About\n\n")
	fmt.Fprintf(o.w, "  Stack     %s\n", color.HighlightResource(name))
	fmt.Fprintf(o.w, "  Status    %s, %s\n", o.colorStatus(status), humanize.Time(updated))
	if reason := aws.StringValue(descr.StackStatusReason); reason != "" {
		fmt.Fprintf(o.w, "  Reason    %s\n", reason)
	}

	if status.InProgress() {
		if err := o.writeRecentEvents(name); err != nil {
			return err
		}
	}
	if err := o.writeOutputs(name); err != nil {
		return err
	}
	if err := o.writeResources(name); err != nil {
		return err
	}
	if status.IsFailure() {
		if err := o.writeFailures(name); err != nil {
			return err
		}
	}
	return nil
}

// RecommendActions is a no-op for a read-only command.
func (o *statusOpts) RecommendActions() error {
	return nil
}

func (o *statusOpts) writeRecentEvents(name string) error {
	events, err := o.cfn.Events(name)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}
	if len(events) > maxRecentEvents {
		events = events[len(events)-maxRecentEvents:]
	}
	fmt.Fprintf(o.w, "\nRecent Events\n\n")
	for _, event := range events {
		status := cloudformation.StackStatus(aws.StringValue(event.ResourceStatus))
		fmt.Fprintf(o.w, "  %s  %s: %s\n",
			humanize.Time(aws.TimeValue(event.Timestamp)),
			aws.StringValue(event.LogicalResourceId),
			o.colorStatus(status))
	}
	return nil
}

func (o *statusOpts) writeOutputs(name string) error {
	outputs, err := o.cfn.Outputs(name)
	if err != nil {
		return err
	}
	if len(outputs) == 0 {
		return nil
	}
	fmt.Fprintf(o.w, "\nOutputs\n\n")
	writer := tabwriter.NewWriter(o.w, minCellWidth, tabWidth, cellPaddingWidth, paddingChar, noAdditionalFormatting)
	for key, value := range outputs {
		fmt.Fprintf(writer, "  %s\t%s\n", key, value)
	}
	return writer.Flush()
}

func (o *statusOpts) writeResources(name string) error {
	resources, err := o.cfn.StackResources(name)
	if err != nil {
		return err
	}
	if len(resources) == 0 {
		return nil
	}
	// Descriptions are an annotation, a template that cannot be parsed is not fatal.
	descriptions := make(map[string]string)
	if body, err := o.cfn.TemplateBody(name); err == nil {
		if parsed, err := cloudformation.ParseTemplateDescriptions(body); err == nil {
			descriptions = parsed
		} else {
			log.Debugf("parse template descriptions: %v\n", err)
		}
	}

	tree := treeprint.New()
	tree.SetValue(color.HighlightResource(name))
	for _, resource := range resources {
		logicalID := aws.StringValue(resource.LogicalResourceId)
		label := logicalID
		if description, ok := descriptions[logicalID]; ok {
			label = fmt.Sprintf("%s (%s)", description, logicalID)
		}
		status := cloudformation.StackStatus(aws.StringValue(resource.ResourceStatus))
		tree.AddMetaBranch(o.colorStatus(status), label)
	}
	fmt.Fprintf(o.w, "\nResources\n\n%s", tree.String())
	return nil
}

func (o *statusOpts) writeFailures(name string) error {
	events, err := o.cfn.ErrorEvents(name)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}
	fmt.Fprintf(o.w, "\nFailures\n\n")
	for _, event := range events {
		fmt.Fprintf(o.w, "  %s  %s: %s\n",
			humanize.Time(aws.TimeValue(event.Timestamp)),
			aws.StringValue(event.LogicalResourceId),
			aws.StringValue(event.ResourceStatusReason))
	}
	return nil
}

func (o *statusOpts) colorStatus(status cloudformation.StackStatus) string {
	human := status.HumanString()
	switch {
	case status.IsSuccess():
		return log.Ssuccess(human)
	case status.IsFailure():
		return log.Serror(human)
	default:
		return human
	}
}

// BuildStatusCmd is the status top level command.
func BuildStatusCmd() *cobra.Command {
	vars := statusVars{}
	cmd := &cobra.Command{
		Use:   "status [stack-name]",
		Short: "Show the status of a deployment stack.",
		Example: `
  Shows the status of the default stack.
  /code $ hpx status
  Shows the status of a named stack.
  /code $ hpx status my-stack`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				vars.stackName = args[0]
			}
			opts, err := newStatusOpts(vars)
			if err != nil {
				return err
			}
			return run(opts)
		}),
	}
	cmd.Flags().StringVar(&vars.profile, profileFlag, "", profileFlagDescription)
	cmd.Flags().StringVar(&vars.region, regionFlag, "", regionFlagDescription)
	cmd.MarkFlagsMutuallyExclusive(profileFlag, regionFlag)
	cmd.SetUsageTemplate(template.Usage)
	cmd.Annotations = map[string]string{
		"group": group.Operate,
	}
	return cmd
}
