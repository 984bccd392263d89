// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/aws-samples/hpx-cli/cmd/hpx/template"
	"github.com/aws-samples/hpx-cli/internal/pkg/aws/cloudformation"
	"github.com/aws-samples/hpx-cli/internal/pkg/aws/identity"
	"github.com/aws-samples/hpx-cli/internal/pkg/aws/profile"
	"github.com/aws-samples/hpx-cli/internal/pkg/aws/s3"
	"github.com/aws-samples/hpx-cli/internal/pkg/aws/sessions"
	"github.com/aws-samples/hpx-cli/internal/pkg/cli/group"
	"github.com/aws-samples/hpx-cli/internal/pkg/deploy"
	"github.com/aws-samples/hpx-cli/internal/pkg/release"
	"github.com/aws-samples/hpx-cli/internal/pkg/term/color"
	"github.com/aws-samples/hpx-cli/internal/pkg/term/log"
)

type deployVars struct {
	stackName string
	version   string
	custom    string
	execute   bool
	profile   string
	region    string
}

type deployOpts struct {
	deployVars

	env deploy.Env

	newProfiles func() (profileNames, error)

	// Clients below are created by initClients once the flags are validated.
	initClients func() error
	identity    identityService
	store       releaseStore
	deployer    stackDispatcher
	region      string

	// Outcome cached for RecommendActions.
	req    *deploy.Request
	result deploy.Result
}

func newDeployOpts(vars deployVars) (*deployOpts, error) {
	opts := &deployOpts{
		deployVars: vars,
		env: deploy.Env{
			RedshiftPassword: os.Getenv(redshiftPasswordEnv),
			RedshiftUser:     os.Getenv(redshiftUserEnv),
			Prefix:           os.Getenv(prefixEnv),
			VPCCIDR:          os.Getenv(vpcCIDREnv),
		},
		newProfiles: func() (profileNames, error) {
			return profile.NewConfig(afero.NewOsFs())
		},
	}
	opts.initClients = func() error {
		sess, err := newSession(sessions.ImmutableProvider(sessions.UserAgentExtras("deploy")), vars.profile, vars.region)
		if err != nil {
			return err
		}
		region := aws.StringValue(sess.Config.Region)
		opts.identity = identity.New(sess)
		opts.store = release.NewStore(s3.New(sess), region)
		opts.deployer = deploy.NewStackDeployer(cloudformation.New(sess), region, localUserName())
		opts.region = region
		return nil
	}
	return opts, nil
}

// newSession returns a session for the profile and region flags.
// The flags are mutually exclusive; without either the default chain applies.
func newSession(provider *sessions.Provider, profileName, region string) (*session.Session, error) {
	switch {
	case profileName != "":
		return provider.FromProfile(profileName)
	case region != "":
		return provider.DefaultWithRegion(region)
	default:
		return provider.Default()
	}
}

// Validate returns an error if the flag or environment values are invalid.
func (o *deployOpts) Validate() error {
	if o.env.RedshiftPassword == "" {
		return deploy.ErrPasswordUnset
	}
	if o.profile != "" {
		profiles, err := o.newProfiles()
		if err != nil {
			return fmt.Errorf("read AWS config file: %w", err)
		}
		names := profiles.Names()
		for _, name := range names {
			if name == o.profile {
				return nil
			}
		}
		return &errProfileNotFound{name: o.profile, available: names}
	}
	return nil
}

// Ask is a no-op, every input is either a flag or defaulted.
func (o *deployOpts) Ask() error {
	return nil
}

// Execute assembles the deployment request and dispatches it to CloudFormation.
func (o *deployOpts) Execute() error {
	if err := o.initClients(); err != nil {
		return err
	}
	if _, err := o.identity.Get(); err != nil {
		return fmt.Errorf("get identity: %w", err)
	}
	req, err := deploy.NewRequest(deploy.Input{
		StackName:       o.stackName,
		Version:         o.version,
		DistributionURI: o.custom,
		Execute:         o.execute,
	}, o.env, o.region, o.store)
	if err != nil {
		return err
	}
	o.warnOlderVersion(req)
	reachable, err := o.store.TemplateExists(req.Distribution)
	if err != nil {
		return fmt.Errorf("check distribution %s: %w", req.Distribution, err)
	}
	if !reachable {
		return &deploy.ErrTemplateUnreachable{URI: string(req.Distribution)}
	}

	result, err := o.deployer.Deploy(req, o.store.TemplateURL(req.Distribution))
	if err != nil {
		var empty *cloudformation.ErrChangeSetEmpty
		if errors.As(err, &empty) {
			log.Infof("Stack %s is already up to date with version %s.\n",
				color.HighlightResource(string(req.StackName)), color.HighlightUserInput(string(req.Version)))
			return &errNoChanges{parentErr: err}
		}
		var inProgress *cloudformation.ErrStackUpdateInProgress
		if errors.As(err, &inProgress) {
			log.Infof("Run %s to follow the update that is already in flight, then retry.\n",
				color.HighlightCode(fmt.Sprintf("hpx status %s", req.StackName)))
		}
		return err
	}
	o.req = req
	o.result = result

	name := color.HighlightResource(string(req.StackName))
	switch {
	case result.Created:
		log.Successf("Started creation of stack %s with version %s.\n", name, color.HighlightUserInput(string(req.Version)))
	case result.Executed:
		log.Successf("Executing change set %s for stack %s.\n", color.HighlightResource(result.ChangeSetName), name)
	default:
		log.Successf("Staged change set %s for stack %s.\n", color.HighlightResource(result.ChangeSetName), name)
	}
	return nil
}

// RecommendActions suggests follow-up commands for the performed operation.
func (o *deployOpts) RecommendActions() error {
	if o.req == nil {
		return nil
	}
	name := string(o.req.StackName)
	if o.result.Created || o.result.Executed {
		log.Infof("Run %s to follow the stack's progress.\n",
			color.HighlightCode(fmt.Sprintf("hpx status %s", name)))
		return nil
	}
	log.Infof("Review the change set in the CloudFormation console, or run %s to apply it.\n",
		color.HighlightCode(fmt.Sprintf("hpx deploy --%s %s", executeFlag, name)))
	return nil
}

// warnOlderVersion notes when an explicitly pinned version lags the latest release.
func (o *deployOpts) warnOlderVersion(req *deploy.Request) {
	if o.version == "" {
		return
	}
	latest, err := o.store.LatestVersion()
	if err != nil || latest == "" {
		return
	}
	if semver.Compare("v"+string(req.Version), "v"+latest) < 0 {
		log.Warningf("Version %s is older than the latest release %s.\n",
			color.HighlightUserInput(string(req.Version)), color.HighlightResource(latest))
	}
}

// BuildDeployCmd is the deploy top level command.
func BuildDeployCmd() *cobra.Command {
	vars := deployVars{}
	cmd := &cobra.Command{
		Use:   "deploy [stack-name]",
		Short: "Create or update a deployment stack.",
		Long: `Create or update a deployment stack.
Validates the requested version, distribution, and Redshift settings, then
creates the CloudFormation stack or stages a change set when it already exists.`,
		Example: `
  Deploys the latest release to the default stack.
  /code $ hpx deploy
  Stages an update to version 1.2.0 and applies it immediately.
  /code $ hpx deploy --version 1.2.0 --execute
  Deploys a custom distribution to a named stack.
  /code $ hpx deploy --custom s3://my-builds/snapshot my-stack`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				vars.stackName = args[0]
			}
			opts, err := newDeployOpts(vars)
			if err != nil {
				return err
			}
			if err := run(opts); err != nil {
				var noChanges *errNoChanges
				if errors.As(err, &noChanges) {
					cmd.SilenceUsage = true // Not a failure, skip the usage dump.
				}
				return err
			}
			return nil
		}),
	}
	cmd.Flags().StringVarP(&vars.version, versionFlag, versionFlagShort, "", versionFlagDescription)
	cmd.Flags().StringVarP(&vars.custom, customFlag, customFlagShort, "", customFlagDescription)
	cmd.Flags().BoolVarP(&vars.execute, executeFlag, executeFlagShort, false, executeFlagDescription)
	cmd.Flags().StringVar(&vars.profile, profileFlag, "", profileFlagDescription)
	cmd.Flags().StringVar(&vars.region, regionFlag, "", regionFlagDescription)
	cmd.MarkFlagsMutuallyExclusive(profileFlag, regionFlag)
	cmd.SetUsageTemplate(template.Usage)
	cmd.Annotations = map[string]string{
		"group": group.Release,
	}
	return cmd
}
