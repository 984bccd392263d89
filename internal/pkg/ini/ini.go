// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package ini provides functionality to parse and read properties from INI files.
package ini

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

// INI represents a parsed INI file in memory.
type INI struct {
	cfg *ini.File
}

// New returns an INI file parsed from the file under the path.
func New(path string, fs afero.Fs) (*INI, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read ini file %s: %w", path, err)
	}
	cfg, err := ini.Load(content)
	if err != nil {
		return nil, fmt.Errorf("parse ini file %s: %w", path, err)
	}
	return &INI{cfg: cfg}, nil
}

// Sections returns the names of **non-default** sections in the file.
func (i *INI) Sections() []string {
	var names []string
	for _, section := range i.cfg.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		names = append(names, section.Name())
	}
	return names
}
