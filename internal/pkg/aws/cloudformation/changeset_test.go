// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"errors"
	"testing"

	"github.com/aws-samples/hpx-cli/internal/pkg/aws/cloudformation/mocks"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const mockChangeSetName = "hpx-changeset-jsmith-us-west-2"

func mockDeployStack() *Stack {
	return NewStack(mockStackName, "https://hpx-release.s3.us-west-2.amazonaws.com/1.0.0/cloudformation/hpx.yaml",
		WithParameters(map[string]string{"Version": "1.0.0"}))
}

func available(changes int) *cloudformation.DescribeChangeSetOutput {
	out := &cloudformation.DescribeChangeSetOutput{
		ExecutionStatus: aws.String(cloudformation.ExecutionStatusAvailable),
	}
	for i := 0; i < changes; i++ {
		out.Changes = append(out.Changes, &cloudformation.Change{})
	}
	return out
}

func TestCloudFormation_StageChangeSet(t *testing.T) {
	testCases := map[string]struct {
		createMock func(ctrl *gomock.Controller) api

		wantedErr      string
		wantedEmptyErr bool
	}{
		"stage a change set of type UPDATE": {
			createMock: func(ctrl *gomock.Controller) api {
				m := mocks.NewMockapi(ctrl)
				m.EXPECT().CreateChangeSet(gomock.Any()).DoAndReturn(
					func(in *cloudformation.CreateChangeSetInput) (*cloudformation.CreateChangeSetOutput, error) {
						require.Equal(t, mockChangeSetName, aws.StringValue(in.ChangeSetName))
						require.Equal(t, cloudformation.ChangeSetTypeUpdate, aws.StringValue(in.ChangeSetType))
						return &cloudformation.CreateChangeSetOutput{}, nil
					})
				m.EXPECT().WaitUntilChangeSetCreateCompleteWithContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.EXPECT().DescribeChangeSet(gomock.Any()).Return(available(1), nil)
				return m
			},
		},
		"delete the stale change set and retry when the name is taken": {
			createMock: func(ctrl *gomock.Controller) api {
				m := mocks.NewMockapi(ctrl)
				gomock.InOrder(
					m.EXPECT().CreateChangeSet(gomock.Any()).
						Return(nil, awserr.New("AlreadyExistsException", "already exists", nil)),
					m.EXPECT().DeleteChangeSet(&cloudformation.DeleteChangeSetInput{
						ChangeSetName: aws.String(mockChangeSetName),
						StackName:     aws.String(mockStackName),
					}).Return(&cloudformation.DeleteChangeSetOutput{}, nil),
					m.EXPECT().CreateChangeSet(gomock.Any()).Return(&cloudformation.CreateChangeSetOutput{}, nil),
					m.EXPECT().WaitUntilChangeSetCreateCompleteWithContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
					m.EXPECT().DescribeChangeSet(gomock.Any()).Return(available(1), nil),
				)
				return m
			},
		},
		"return ErrChangeSetEmpty and clean up when there are no changes": {
			createMock: func(ctrl *gomock.Controller) api {
				m := mocks.NewMockapi(ctrl)
				m.EXPECT().CreateChangeSet(gomock.Any()).Return(&cloudformation.CreateChangeSetOutput{}, nil)
				m.EXPECT().WaitUntilChangeSetCreateCompleteWithContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.EXPECT().DescribeChangeSet(gomock.Any()).Return(&cloudformation.DescribeChangeSetOutput{
					ExecutionStatus: aws.String(cloudformation.ExecutionStatusUnavailable),
					StatusReason:    aws.String(noChangesReason),
				}, nil)
				m.EXPECT().DeleteChangeSet(gomock.Any()).Return(&cloudformation.DeleteChangeSetOutput{}, nil)
				return m
			},
			wantedEmptyErr: true,
			wantedErr:      "change set hpx-changeset-jsmith-us-west-2 for stack hpx-us-west-2 has no changes",
		},
		"wrap creation errors": {
			createMock: func(ctrl *gomock.Controller) api {
				m := mocks.NewMockapi(ctrl)
				m.EXPECT().CreateChangeSet(gomock.Any()).Return(nil, errors.New("some error"))
				return m
			},
			wantedErr: "create change set hpx-changeset-jsmith-us-west-2 for stack hpx-us-west-2: some error",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c := &CloudFormation{client: tc.createMock(ctrl)}

			// WHEN
			err := c.StageChangeSet(mockDeployStack(), mockChangeSetName)

			// THEN
			if tc.wantedErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tc.wantedErr)
			if tc.wantedEmptyErr {
				var empty *ErrChangeSetEmpty
				require.True(t, errors.As(err, &empty), "expected ErrChangeSetEmpty")
			}
		})
	}
}

func TestCloudFormation_ExecuteChangeSet(t *testing.T) {
	testCases := map[string]struct {
		createMock func(ctrl *gomock.Controller) api

		wantedErr string
	}{
		"execute an available change set": {
			createMock: func(ctrl *gomock.Controller) api {
				m := mocks.NewMockapi(ctrl)
				m.EXPECT().DescribeChangeSet(gomock.Any()).Return(available(1), nil)
				m.EXPECT().ExecuteChangeSet(&cloudformation.ExecuteChangeSetInput{
					ChangeSetName: aws.String(mockChangeSetName),
					StackName:     aws.String(mockStackName),
				}).Return(&cloudformation.ExecuteChangeSetOutput{}, nil)
				return m
			},
		},
		"return ErrChangeSetEmpty when the staged set has no changes": {
			createMock: func(ctrl *gomock.Controller) api {
				m := mocks.NewMockapi(ctrl)
				m.EXPECT().DescribeChangeSet(gomock.Any()).Return(&cloudformation.DescribeChangeSetOutput{
					ExecutionStatus: aws.String(cloudformation.ExecutionStatusUnavailable),
					StatusReason:    aws.String(noUpdatesReason),
				}, nil)
				return m
			},
			wantedErr: "change set hpx-changeset-jsmith-us-west-2 for stack hpx-us-west-2 has no changes",
		},
		"return an error when the change set is not executable": {
			createMock: func(ctrl *gomock.Controller) api {
				m := mocks.NewMockapi(ctrl)
				m.EXPECT().DescribeChangeSet(gomock.Any()).Return(&cloudformation.DescribeChangeSetOutput{
					ExecutionStatus: aws.String(cloudformation.ExecutionStatusObsolete),
					StatusReason:    aws.String("stack was updated"),
					Changes:         []*cloudformation.Change{{}},
				}, nil)
				return m
			},
			wantedErr: "execute change set hpx-changeset-jsmith-us-west-2 for stack hpx-us-west-2 because status is OBSOLETE with reason stack was updated",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c := &CloudFormation{client: tc.createMock(ctrl)}

			err := c.ExecuteChangeSet(mockStackName, mockChangeSetName)

			if tc.wantedErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tc.wantedErr)
		})
	}
}
