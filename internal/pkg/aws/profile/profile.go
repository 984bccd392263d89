// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package profile provides functionality to parse AWS named profiles.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/aws-samples/hpx-cli/internal/pkg/ini"
)

const awsConfigFileEnvVar = "AWS_CONFIG_FILE"

type sectionsLister interface {
	Sections() []string
}

// Config represents the AWS config file under ~/.aws/config.
type Config struct {
	f sectionsLister
}

// NewConfig parses the file at the AWS_CONFIG_FILE path, defaulting to
// "~/.aws/config", and returns a Config.
func NewConfig(fs afero.Fs) (*Config, error) {
	path := os.Getenv(awsConfigFileEnvVar)
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get user home directory: %w", err)
		}
		path = filepath.Join(home, ".aws", "config")
	}
	f, err := ini.New(path, fs)
	if err != nil {
		return nil, err
	}
	return &Config{f: f}, nil
}

// Names returns a list of profile names available in the user's config file.
func (c *Config) Names() []string {
	var names []string
	for _, section := range c.f.Sections() {
		// Named profiles created with the AWS CLI are prefixed with "profile ".
		names = append(names, strings.TrimPrefix(section, "profile "))
	}
	return names
}
