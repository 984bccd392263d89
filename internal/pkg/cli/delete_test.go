// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"testing"

	"github.com/aws-samples/hpx-cli/internal/pkg/cli/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOpts_Ask(t *testing.T) {
	testCases := map[string]struct {
		vars       deleteVars
		setupMocks func(prompt *mocks.Mockprompter)

		wantedStackName string
		wantedErr       string
	}{
		"defaults the stack name and confirms": {
			vars: deleteVars{},
			setupMocks: func(prompt *mocks.Mockprompter) {
				prompt.EXPECT().
					Confirm("Are you sure you want to delete stack hpx-us-west-2?", gomock.Any()).
					Return(true, nil)
			},
			wantedStackName: "hpx-us-west-2",
		},
		"keeps an explicit stack name": {
			vars: deleteVars{stackName: "my-stack"},
			setupMocks: func(prompt *mocks.Mockprompter) {
				prompt.EXPECT().
					Confirm("Are you sure you want to delete stack my-stack?", gomock.Any()).
					Return(true, nil)
			},
			wantedStackName: "my-stack",
		},
		"skips the prompt with --yes": {
			vars:            deleteVars{stackName: "my-stack", skipConfirmation: true},
			setupMocks:      func(prompt *mocks.Mockprompter) {},
			wantedStackName: "my-stack",
		},
		"aborts when the user declines": {
			vars: deleteVars{stackName: "my-stack"},
			setupMocks: func(prompt *mocks.Mockprompter) {
				prompt.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantedErr: "operation cancelled",
		},
		"wraps prompt failures": {
			vars: deleteVars{stackName: "my-stack"},
			setupMocks: func(prompt *mocks.Mockprompter) {
				prompt.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(false, errors.New("some error"))
			},
			wantedErr: "confirm stack deletion: some error",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			t.Setenv(prefixEnv, "")
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			prompt := mocks.NewMockprompter(ctrl)
			tc.setupMocks(prompt)
			opts := &deleteOpts{
				deleteVars: tc.vars,
				prompt:     prompt,
			}
			opts.initClients = func() error {
				opts.region = "us-west-2"
				return nil
			}

			// WHEN
			err := opts.Ask()

			// THEN
			if tc.wantedErr != "" {
				require.EqualError(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantedStackName, opts.stackName)
		})
	}
}

func TestDeleteOpts_Execute(t *testing.T) {
	mockError := errors.New("some error")

	testCases := map[string]struct {
		setupMocks func(cfn *mocks.MockstackRemover, spinner *mocks.Mockprogress)

		wantedErr string
	}{
		"deletes an existing stack": {
			setupMocks: func(cfn *mocks.MockstackRemover, spinner *mocks.Mockprogress) {
				cfn.EXPECT().Exists("my-stack").Return(true, nil)
				spinner.EXPECT().Start(gomock.Any())
				cfn.EXPECT().DeleteAndWait("my-stack").Return(nil)
				spinner.EXPECT().Stop(gomock.Any())
			},
		},
		"does nothing when the stack is absent": {
			setupMocks: func(cfn *mocks.MockstackRemover, spinner *mocks.Mockprogress) {
				cfn.EXPECT().Exists("my-stack").Return(false, nil)
				cfn.EXPECT().DeleteAndWait(gomock.Any()).Times(0)
			},
		},
		"surfaces deletion failures": {
			setupMocks: func(cfn *mocks.MockstackRemover, spinner *mocks.Mockprogress) {
				cfn.EXPECT().Exists("my-stack").Return(true, nil)
				spinner.EXPECT().Start(gomock.Any())
				cfn.EXPECT().DeleteAndWait("my-stack").Return(mockError)
				spinner.EXPECT().Stop(gomock.Any())
			},
			wantedErr: "some error",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			cfn := mocks.NewMockstackRemover(ctrl)
			spinner := mocks.NewMockprogress(ctrl)
			tc.setupMocks(cfn, spinner)
			opts := &deleteOpts{
				deleteVars: deleteVars{stackName: "my-stack"},
				spinner:    spinner,
				cfn:        cfn,
			}

			// WHEN
			err := opts.Execute()

			// THEN
			if tc.wantedErr != "" {
				require.EqualError(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
