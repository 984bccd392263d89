// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/aws-samples/hpx-cli/internal/pkg/archive"
	"github.com/aws-samples/hpx-cli/internal/pkg/cli/mocks"
)

func newPackageFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"repo/.git/HEAD":                         "ref: refs/heads/main\n",
		"repo/bin/hpx.sh":                        "#!/bin/sh",
		"repo/templates/cloudformation/hpx.yaml": "Resources: {}",
	}
	for name, body := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(body), 0644))
	}
	return fs
}

func TestPackageOpts_Validate(t *testing.T) {
	testCases := map[string]struct {
		bucket string
		fs     func(t *testing.T) afero.Fs

		wantedErr string
	}{
		"accepts a git checkout": {
			bucket: "hpx-release",
			fs:     newPackageFs,
		},
		"rejects an empty bucket name": {
			bucket:    "",
			fs:        newPackageFs,
			wantedErr: "bucket name cannot be empty",
		},
		"rejects a directory that is not a git checkout": {
			bucket: "hpx-release",
			fs: func(t *testing.T) afero.Fs {
				return afero.NewMemMapFs()
			},
			wantedErr: "does not look like a git checkout",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			opts := &packageOpts{
				packageVars: packageVars{bucket: tc.bucket},
				fs:          tc.fs(t),
				repoRoot:    "repo",
			}

			err := opts.Validate()

			if tc.wantedErr != "" {
				require.ErrorContains(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPackageOpts_Execute(t *testing.T) {
	outputDir := filepath.Join("repo", archive.DefaultOutputDir)
	mockError := errors.New("some error")

	testCases := map[string]struct {
		setupMocks func(syncer *mocks.MockdistributionSyncer)

		wantedErr string
	}{
		"stages and syncs the distribution under the branch prefix": {
			setupMocks: func(syncer *mocks.MockdistributionSyncer) {
				syncer.EXPECT().Sync(outputDir, "hpx-release", "main").Return([]archive.Object{
					{Key: "main/hpx.zip", Size: 1024},
					{Key: "main/cloudformation/hpx.yaml", Size: 256},
				}, nil)
			},
		},
		"wraps sync failures": {
			setupMocks: func(syncer *mocks.MockdistributionSyncer) {
				syncer.EXPECT().Sync(outputDir, "hpx-release", "main").Return(nil, mockError)
			},
			wantedErr: "sync distribution to s3://hpx-release/main: some error",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			syncer := mocks.NewMockdistributionSyncer(ctrl)
			tc.setupMocks(syncer)
			spinner := mocks.NewMockprogress(ctrl)
			spinner.EXPECT().Start(gomock.Any()).AnyTimes()
			spinner.EXPECT().Stop(gomock.Any()).AnyTimes()

			fs := newPackageFs(t)
			opts := &packageOpts{
				packageVars: packageVars{bucket: "hpx-release"},
				fs:          fs,
				repoRoot:    "repo",
				spinner:     spinner,
			}
			opts.initClients = func() error {
				opts.syncer = syncer
				return nil
			}

			// WHEN
			err := opts.Execute()

			// THEN
			if tc.wantedErr != "" {
				require.EqualError(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)

			// The staged archive exists and the deploy hint names the branch.
			exists, err := afero.Exists(fs, filepath.Join(outputDir, archive.ArchiveName))
			require.NoError(t, err)
			require.True(t, exists)
			require.Equal(t, "main", opts.branch)
		})
	}
}
