// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ini

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gopkg.in/ini.v1"
)

func TestNew(t *testing.T) {
	t.Run("returns a wrapped error if the file cannot be read", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		_, err := New("/home/user/.aws/config", fs)

		require.ErrorContains(t, err, "read ini file /home/user/.aws/config")
	})
	t.Run("parses an existing file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/home/user/.aws/config", []byte(`[default]
region = us-west-2
`), 0644))

		cfg, err := New("/home/user/.aws/config", fs)

		require.NoError(t, err)
		require.Equal(t, []string{"default"}, cfg.Sections())
	})
}

func TestINI_Sections(t *testing.T) {
	// GIVEN
	content := `[paths]
data = /home/git/grafana

[server]
protocol = http

`
	cfg, _ := ini.Load([]byte(content))
	ini := &INI{cfg: cfg}

	// WHEN
	actualNames := ini.Sections()

	// THEN
	require.Equal(t, []string{"paths", "server"}, actualNames)
}
