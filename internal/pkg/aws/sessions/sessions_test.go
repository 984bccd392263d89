// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sessions

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/stretchr/testify/require"
)

func TestProvider_Default(t *testing.T) {
	t.Run("returns errMissingRegion if no region is configured", func(t *testing.T) {
		t.Setenv("AWS_REGION", "")
		t.Setenv("AWS_DEFAULT_REGION", "")
		t.Setenv("AWS_SDK_LOAD_CONFIG", "false")
		t.Setenv("AWS_CONFIG_FILE", "does-not-exist")
		t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "does-not-exist")

		_, err := ImmutableProvider().Default()

		require.EqualError(t, err, "missing region configuration")
	})
	t.Run("caches the session once created", func(t *testing.T) {
		t.Setenv("AWS_REGION", "us-west-2")

		p := ImmutableProvider()
		first, err := p.Default()
		require.NoError(t, err)
		second, err := p.Default()
		require.NoError(t, err)

		require.Same(t, first, second)
	})
}

func TestProvider_UserAgent(t *testing.T) {
	testCases := map[string]struct {
		extras []string

		wantedContains string
	}{
		"prepends the product name": {
			wantedContains: "hpx-cli/",
		},
		"includes command extras": {
			extras:         []string{"deploy"},
			wantedContains: "deploy",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			p := ImmutableProvider(UserAgentExtras(tc.extras...))
			handler := p.userAgentHandler()
			httpReq := httptest.NewRequest(http.MethodGet, "https://cloudformation.us-west-2.amazonaws.com", nil)
			req := &request.Request{HTTPRequest: httpReq}

			// WHEN
			handler.Fn(req)

			// THEN
			require.Contains(t, req.HTTPRequest.Header.Get("User-Agent"), tc.wantedContains)
		})
	}
}

func TestProvider_DefaultWithRegion(t *testing.T) {
	sess, err := ImmutableProvider().DefaultWithRegion("us-east-1")

	require.NoError(t, err)
	require.Equal(t, "us-east-1", aws.StringValue(sess.Config.Region))
}
