// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package color

import (
	"testing"

	"github.com/AlecAivazis/survey/v2/core"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestColorEnvVarSetToFalse(t *testing.T) {
	env := env(t, "false")
	defer env.restore()

	DisableColorBasedOnEnvVar()

	require.True(t, core.DisableColor, "expected to be true when COLOR is disabled")
	require.True(t, color.NoColor, "expected to be true when COLOR is disabled")
}

func TestColorEnvVarSetToTrue(t *testing.T) {
	env := env(t, "true")
	defer env.restore()

	DisableColorBasedOnEnvVar()

	require.False(t, core.DisableColor, "expected to be false when COLOR is enabled")
	require.False(t, color.NoColor, "expected to be false when COLOR is enabled")
}

func TestColorEnvVarNotSet(t *testing.T) {
	env := env(t, "")
	defer env.restore()

	DisableColorBasedOnEnvVar()

	require.Equal(t, core.DisableColor, color.NoColor, "expected to be the same as color.NoColor")
}

type fakeEnv struct {
	prevDisableColor bool
	prevNoColor      bool
	prevLookupEnv    func(string) (string, bool)
}

func env(t *testing.T, value string) *fakeEnv {
	e := &fakeEnv{
		prevDisableColor: core.DisableColor,
		prevNoColor:      color.NoColor,
		prevLookupEnv:    lookupEnv,
	}
	lookupEnv = func(string) (string, bool) {
		if value == "" {
			return "", false
		}
		return value, true
	}
	return e
}

func (e *fakeEnv) restore() {
	core.DisableColor = e.prevDisableColor
	color.NoColor = e.prevNoColor
	lookupEnv = e.prevLookupEnv
}
