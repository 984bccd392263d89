// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package deploy_test

import (
	"path/filepath"

	"github.com/aws-samples/hpx-cli/e2e/internal/client"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// The specs below only exercise flag and environment validation, none of them
// reach AWS.
var _ = Describe("Deploy", func() {
	Context("missing Redshift password", func() {
		It("should fail before contacting AWS", func() {
			_, err := cli.Deploy(&client.DeployRequest{}, "REDSHIFT_PASSWORD=")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("REDSHIFT_PASSWORD must be set"))
		})
	})

	Context("unknown profile", func() {
		It("should list the available profiles", func() {
			configPath, pathErr := filepath.Abs(filepath.Join("testdata", "config"))
			Expect(pathErr).NotTo(HaveOccurred())
			_, err := cli.Deploy(&client.DeployRequest{Profile: "staging"},
				"REDSHIFT_PASSWORD=open-sesame",
				"AWS_CONFIG_FILE="+configPath)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("profile staging not found in the AWS config file"))
		})
	})

	Context("conflicting flags", func() {
		It("should reject --profile together with --region", func() {
			_, err := cli.Deploy(&client.DeployRequest{Profile: "dev", Region: "us-west-2"},
				"REDSHIFT_PASSWORD=open-sesame")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("profile"))
		})
	})
})
