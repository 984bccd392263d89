// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"archive/zip"
	"bytes"
	"sort"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()
	for name, body := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(body), 0644))
	}
}

func zipEntries(t *testing.T, fs afero.Fs, path string) []string {
	t.Helper()
	body, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	r, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	require.NoError(t, err)
	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

func TestZip(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"repo/bin/hpx.sh":                        "#!/bin/sh",
		"repo/templates/cloudformation/hpx.yaml": "Resources: {}",
		"repo/.git/HEAD":                         "ref: refs/heads/main",
		"repo/out/hpx.zip":                       "stale",
		"repo/src/out/schema.sql":                "create table events;",
		"repo/README.md":                         "hpx",
	})

	require.NoError(t, Zip(fs, "repo", "repo.zip", "out", ".git"))

	// Only the top-level out directory is excluded, not every directory
	// that happens to share its name.
	require.Equal(t, []string{
		"README.md",
		"bin/hpx.sh",
		"src/out/schema.sql",
		"templates/cloudformation/hpx.yaml",
	}, zipEntries(t, fs, "repo.zip"))
}

func TestStage(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"repo/bin/hpx.sh":                        "#!/bin/sh",
		"repo/templates/cloudformation/hpx.yaml": "Resources: {}",
		"repo/out/leftover.txt":                  "stale",
	})

	require.NoError(t, Stage(fs, "repo", "repo/out"))

	// The previous output contents are gone.
	exists, err := afero.Exists(fs, "repo/out/leftover.txt")
	require.NoError(t, err)
	require.False(t, exists)

	// The archive excludes the output dir itself.
	require.Equal(t, []string{
		"bin/hpx.sh",
		"templates/cloudformation/hpx.yaml",
	}, zipEntries(t, fs, "repo/out/hpx.zip"))

	// The templates are staged next to the archive.
	body, err := afero.ReadFile(fs, "repo/out/cloudformation/hpx.yaml")
	require.NoError(t, err)
	require.Equal(t, "Resources: {}", string(body))
}

func TestBranch(t *testing.T) {
	testCases := map[string]struct {
		head string

		wanted    string
		wantedErr string
	}{
		"branch checkout": {
			head:   "ref: refs/heads/feature/pkg\n",
			wanted: "feature/pkg",
		},
		"detached head": {
			head:   "0123456789abcdef0123456789abcdef01234567\n",
			wanted: "0123456",
		},
		"unparseable head": {
			head:      "junk",
			wantedErr: `cannot determine branch from git HEAD "junk"`,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeFiles(t, fs, map[string]string{"repo/.git/HEAD": tc.head})

			branch, err := Branch(fs, "repo")

			if tc.wantedErr != "" {
				require.EqualError(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wanted, branch)
		})
	}
}

func TestBranch_MissingRepo(t *testing.T) {
	_, err := Branch(afero.NewMemMapFs(), "repo")

	require.ErrorContains(t, err, "read git HEAD")
}
