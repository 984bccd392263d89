// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"testing"

	"github.com/aws-samples/hpx-cli/internal/pkg/aws/cloudformation"
	"github.com/aws-samples/hpx-cli/internal/pkg/aws/identity"
	"github.com/aws-samples/hpx-cli/internal/pkg/cli/mocks"
	"github.com/aws-samples/hpx-cli/internal/pkg/deploy"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestDeployOpts_Validate(t *testing.T) {
	testCases := map[string]struct {
		vars     deployVars
		env      deploy.Env
		profiles []string

		wantedErr string
	}{
		"fails immediately when the password is unset": {
			vars:      deployVars{},
			env:       deploy.Env{},
			wantedErr: "REDSHIFT_PASSWORD must be set",
		},
		"succeeds without a profile flag": {
			vars: deployVars{},
			env:  deploy.Env{RedshiftPassword: "s3cret"},
		},
		"succeeds when the profile is configured": {
			vars:     deployVars{profile: "dev"},
			env:      deploy.Env{RedshiftPassword: "s3cret"},
			profiles: []string{"dev", "prod"},
		},
		"fails when the profile is unknown": {
			vars:      deployVars{profile: "staging"},
			env:       deploy.Env{RedshiftPassword: "s3cret"},
			profiles:  []string{"dev", "prod"},
			wantedErr: "profile staging not found in the AWS config file",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			opts := &deployOpts{
				deployVars: tc.vars,
				env:        tc.env,
				newProfiles: func() (profileNames, error) {
					m := mocks.NewMockprofileNames(ctrl)
					m.EXPECT().Names().Return(tc.profiles)
					return m, nil
				},
			}

			// WHEN
			err := opts.Validate()

			// THEN
			if tc.wantedErr != "" {
				require.EqualError(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDeployOpts_Execute(t *testing.T) {
	const templateURL = "https://hpx-release.s3.us-west-2.amazonaws.com/1.0.0/cloudformation/hpx.yaml"

	testCases := map[string]struct {
		vars       deployVars
		setupMocks func(store *mocks.MockreleaseStore, deployer *mocks.MockstackDispatcher, id *mocks.MockidentityService)

		wantedErr       string
		wantedExitCode  int
		wantedNoChanges bool
	}{
		"creates the stack for a pinned version": {
			vars: deployVars{version: "1.0.0"},
			setupMocks: func(store *mocks.MockreleaseStore, deployer *mocks.MockstackDispatcher, id *mocks.MockidentityService) {
				id.EXPECT().Get().Return(identity.Caller{Account: "1234"}, nil)
				store.EXPECT().DistributionURI("1.0.0").Return("s3://hpx-release/1.0.0")
				store.EXPECT().LatestVersion().Return("1.0.0", nil)
				store.EXPECT().TemplateExists(deploy.DistributionURI("s3://hpx-release/1.0.0")).Return(true, nil)
				store.EXPECT().TemplateURL(deploy.DistributionURI("s3://hpx-release/1.0.0")).Return(templateURL)
				deployer.EXPECT().Deploy(gomock.Any(), templateURL).Return(deploy.Result{Created: true}, nil)
			},
		},
		"fails before any deployment call when the credentials are invalid": {
			vars: deployVars{version: "1.0.0"},
			setupMocks: func(store *mocks.MockreleaseStore, deployer *mocks.MockstackDispatcher, id *mocks.MockidentityService) {
				id.EXPECT().Get().Return(identity.Caller{}, errors.New("some error"))
				deployer.EXPECT().Deploy(gomock.Any(), gomock.Any()).Times(0)
			},
			wantedErr: "get identity: some error",
		},
		"fails when the version does not match the expected format": {
			vars: deployVars{version: "v1.0"},
			setupMocks: func(store *mocks.MockreleaseStore, deployer *mocks.MockstackDispatcher, id *mocks.MockidentityService) {
				id.EXPECT().Get().Return(identity.Caller{}, nil)
				deployer.EXPECT().Deploy(gomock.Any(), gomock.Any()).Times(0)
			},
			wantedErr: `invalid version "v1.0": value must match the pattern ^\d+\.\d+(\.\d+)*$`,
		},
		"fails when the distribution is unreachable": {
			vars: deployVars{version: "1.0.0"},
			setupMocks: func(store *mocks.MockreleaseStore, deployer *mocks.MockstackDispatcher, id *mocks.MockidentityService) {
				id.EXPECT().Get().Return(identity.Caller{}, nil)
				store.EXPECT().DistributionURI("1.0.0").Return("s3://hpx-release/1.0.0")
				store.EXPECT().LatestVersion().Return("1.0.0", nil)
				store.EXPECT().TemplateExists(deploy.DistributionURI("s3://hpx-release/1.0.0")).Return(false, nil)
				deployer.EXPECT().Deploy(gomock.Any(), gomock.Any()).Times(0)
			},
			wantedErr: "distribution s3://hpx-release/1.0.0 is not reachable",
		},
		"reports an empty change set as a success": {
			vars: deployVars{version: "1.0.0"},
			setupMocks: func(store *mocks.MockreleaseStore, deployer *mocks.MockstackDispatcher, id *mocks.MockidentityService) {
				id.EXPECT().Get().Return(identity.Caller{}, nil)
				store.EXPECT().DistributionURI("1.0.0").Return("s3://hpx-release/1.0.0")
				store.EXPECT().LatestVersion().Return("1.0.0", nil)
				store.EXPECT().TemplateExists(deploy.DistributionURI("s3://hpx-release/1.0.0")).Return(true, nil)
				store.EXPECT().TemplateURL(deploy.DistributionURI("s3://hpx-release/1.0.0")).Return(templateURL)
				deployer.EXPECT().Deploy(gomock.Any(), templateURL).
					Return(deploy.Result{}, &cloudformation.ErrChangeSetEmpty{})
			},
			wantedNoChanges: true,
		},
		"surfaces a stack that is still mutating as a failure": {
			vars: deployVars{version: "1.0.0"},
			setupMocks: func(store *mocks.MockreleaseStore, deployer *mocks.MockstackDispatcher, id *mocks.MockidentityService) {
				id.EXPECT().Get().Return(identity.Caller{}, nil)
				store.EXPECT().DistributionURI("1.0.0").Return("s3://hpx-release/1.0.0")
				store.EXPECT().LatestVersion().Return("1.0.0", nil)
				store.EXPECT().TemplateExists(deploy.DistributionURI("s3://hpx-release/1.0.0")).Return(true, nil)
				store.EXPECT().TemplateURL(deploy.DistributionURI("s3://hpx-release/1.0.0")).Return(templateURL)
				deployer.EXPECT().Deploy(gomock.Any(), templateURL).
					Return(deploy.Result{}, &cloudformation.ErrStackUpdateInProgress{Name: "hpx-us-west-2"})
			},
			wantedErr: "stack hpx-us-west-2 is currently being updated and cannot be deployed to",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			store := mocks.NewMockreleaseStore(ctrl)
			deployer := mocks.NewMockstackDispatcher(ctrl)
			id := mocks.NewMockidentityService(ctrl)
			tc.setupMocks(store, deployer, id)

			opts := &deployOpts{
				deployVars: tc.vars,
				env:        deploy.Env{RedshiftPassword: "s3cret"},
			}
			opts.initClients = func() error {
				opts.identity = id
				opts.store = store
				opts.deployer = deployer
				opts.region = "us-west-2"
				return nil
			}

			// WHEN
			err := opts.Execute()

			// THEN
			if tc.wantedNoChanges {
				var noChanges *errNoChanges
				require.ErrorAs(t, err, &noChanges)
				require.Equal(t, 0, noChanges.ExitCode())
				return
			}
			if tc.wantedErr != "" {
				require.EqualError(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
