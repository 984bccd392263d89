// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/aws-samples/hpx-cli/cmd/hpx/template"
	"github.com/aws-samples/hpx-cli/internal/pkg/archive"
	"github.com/aws-samples/hpx-cli/internal/pkg/aws/s3"
	"github.com/aws-samples/hpx-cli/internal/pkg/aws/sessions"
	"github.com/aws-samples/hpx-cli/internal/pkg/cli/group"
	"github.com/aws-samples/hpx-cli/internal/pkg/release"
	"github.com/aws-samples/hpx-cli/internal/pkg/term/color"
	"github.com/aws-samples/hpx-cli/internal/pkg/term/log"
	termprogress "github.com/aws-samples/hpx-cli/internal/pkg/term/progress"
)

type packageVars struct {
	bucket  string
	profile string
	region  string
}

type packageOpts struct {
	packageVars

	fs       afero.Fs
	repoRoot string
	spinner  progress

	initClients func() error
	syncer      distributionSyncer

	// Outcome cached for RecommendActions.
	branch string
}

func newPackageOpts(vars packageVars) (*packageOpts, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	opts := &packageOpts{
		packageVars: vars,
		fs:          afero.NewOsFs(),
		repoRoot:    wd,
		spinner:     termprogress.NewSpinner(log.DiagnosticWriter),
	}
	opts.initClients = func() error {
		sess, err := newSession(sessions.ImmutableProvider(sessions.UserAgentExtras("package")), vars.profile, vars.region)
		if err != nil {
			return err
		}
		opts.syncer = archive.NewSyncer(opts.fs, s3.New(sess))
		return nil
	}
	return opts, nil
}

// Validate returns an error if the repository cannot be packaged.
func (o *packageOpts) Validate() error {
	if o.bucket == "" {
		return fmt.Errorf("bucket name cannot be empty")
	}
	if _, err := archive.Branch(o.fs, o.repoRoot); err != nil {
		return fmt.Errorf("%s does not look like a git checkout: %w", o.repoRoot, err)
	}
	return nil
}

// Ask is a no-op, every input is either a flag or defaulted.
func (o *packageOpts) Ask() error {
	return nil
}

// Execute stages the distribution and syncs it to the bucket under the branch prefix.
func (o *packageOpts) Execute() error {
	branch, err := archive.Branch(o.fs, o.repoRoot)
	if err != nil {
		return err
	}
	outputDir := filepath.Join(o.repoRoot, archive.DefaultOutputDir)

	o.spinner.Start("Packaging repository.")
	if err := archive.Stage(o.fs, o.repoRoot, outputDir); err != nil {
		o.spinner.Stop(log.Serrorln("Failed to package repository."))
		return err
	}
	o.spinner.Stop(log.Ssuccessln("Packaged repository."))

	if err := o.initClients(); err != nil {
		return err
	}
	o.spinner.Start(fmt.Sprintf("Syncing distribution to %s.", o.destination(branch)))
	uploaded, err := o.syncer.Sync(outputDir, o.bucket, branch)
	if err != nil {
		o.spinner.Stop(log.Serrorln("Failed to sync distribution."))
		return fmt.Errorf("sync distribution to %s: %w", o.destination(branch), err)
	}
	var total int64
	for _, obj := range uploaded {
		total += obj.Size
	}
	o.spinner.Stop(log.Ssuccessf("Synced %s (%s) to %s.\n",
		english.Plural(len(uploaded), "file", ""),
		humanize.Bytes(uint64(total)),
		color.HighlightResource(o.destination(branch))))
	o.branch = branch
	return nil
}

// RecommendActions suggests deploying the packaged distribution.
func (o *packageOpts) RecommendActions() error {
	if o.branch == "" {
		return nil
	}
	log.Infof("Run %s to deploy this distribution.\n",
		color.HighlightCode(fmt.Sprintf("hpx deploy --%s %s", customFlag, o.destination(o.branch))))
	return nil
}

func (o *packageOpts) destination(branch string) string {
	return fmt.Sprintf("s3://%s/%s", o.bucket, branch)
}

// BuildPackageCmd is the package top level command.
func BuildPackageCmd() *cobra.Command {
	vars := packageVars{}
	cmd := &cobra.Command{
		Use:   "package",
		Short: "Package the repository and upload it as a distribution.",
		Long: `Package the repository and upload it as a distribution.
Zips the working tree next to the CloudFormation templates and syncs the
result to the release bucket under the current git branch.`,
		Example: `
  Packages the checkout and uploads it under the current branch.
  /code $ hpx package
  Uploads to a personal bucket instead.
  /code $ hpx package --bucket my-builds`,
		Args: cobra.NoArgs,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			opts, err := newPackageOpts(vars)
			if err != nil {
				return err
			}
			return run(opts)
		}),
	}
	cmd.Flags().StringVar(&vars.bucket, bucketFlag, release.Bucket, bucketFlagDescription)
	cmd.Flags().StringVar(&vars.profile, profileFlag, "", profileFlagDescription)
	cmd.Flags().StringVar(&vars.region, regionFlag, "", regionFlagDescription)
	cmd.MarkFlagsMutuallyExclusive(profileFlag, regionFlag)
	cmd.SetUsageTemplate(template.Usage)
	cmd.Annotations = map[string]string{
		"group": group.Release,
	}
	return cmd
}
