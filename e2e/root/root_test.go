// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package root_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Root", func() {
	Context("--help", func() {
		It("should output help text", func() {
			output, err := cli.Help()
			Expect(err).NotTo(HaveOccurred())
			Expect(output).To(ContainSubstring("Launch and manage HPx deployments on AWS."))
			Expect(output).To(ContainSubstring("Release"))
			Expect(output).To(ContainSubstring("Operate"))
			Expect(output).To(ContainSubstring("Settings"))
		})
	})

	Context("--version", func() {
		It("should output a valid semantic version", func() {
			output, err := cli.Version()
			Expect(err).NotTo(HaveOccurred())
			// Versions look like hpx version: v1.2.0-12-g133b977
			// the extra bit at the end is if the build isn't a tagged release.
			Expect(output).To(MatchRegexp(`hpx version: .+`))
		})
	})

	Context("completion", func() {
		It("should generate a bash completion script", func() {
			output, err := cli.Completion("bash")
			Expect(err).NotTo(HaveOccurred())
			Expect(output).To(ContainSubstring("bash completion"))
		})

		It("should generate a zsh completion script", func() {
			output, err := cli.Completion("zsh")
			Expect(err).NotTo(HaveOccurred())
			Expect(output).To(ContainSubstring("compdef"))
		})

		It("should reject unknown shells", func() {
			_, err := cli.Completion("fish")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("shell must be bash or zsh"))
		})
	})
})
