// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/stretchr/testify/require"
)

func TestPrompt_Confirm(t *testing.T) {
	testCases := map[string]struct {
		opts   []Option
		answer bool

		wantedDefault bool
	}{
		"defaults to no": {
			answer: false,
		},
		"with true default": {
			opts:          []Option{WithTrueDefault()},
			answer:        true,
			wantedDefault: true,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			var gotPrompt *survey.Confirm
			mockAsk := Prompt(func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
				internal, ok := p.(*prompt)
				require.True(t, ok, "expected prompt wrapper")
				confirm, ok := internal.prompter.(*survey.Confirm)
				require.True(t, ok, "expected a confirmation prompt")
				gotPrompt = confirm

				result, ok := response.(*bool)
				require.True(t, ok, "expected a boolean response")
				*result = tc.answer
				return nil
			})

			got, err := mockAsk.Confirm("Are you sure?", "helpful context", tc.opts...)

			require.NoError(t, err)
			require.Equal(t, tc.answer, got)
			require.Equal(t, "Are you sure?", gotPrompt.Message)
			require.Equal(t, "helpful context", gotPrompt.Help)
			require.Equal(t, tc.wantedDefault, gotPrompt.Default)
		})
	}
}

func TestPrompt_Get(t *testing.T) {
	mockAsk := Prompt(func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		internal, ok := p.(*prompt)
		require.True(t, ok, "expected prompt wrapper")
		input, ok := internal.prompter.(*survey.Input)
		require.True(t, ok, "expected an input prompt")
		require.Equal(t, "fallback", input.Default)

		result := response.(*string)
		*result = "typed"
		return nil
	})

	got, err := mockAsk.Get("Which one?", "", "fallback")

	require.NoError(t, err)
	require.Equal(t, "typed", got)
}
