// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package archive stages a distribution of the repository and syncs it to S3.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const (
	// DefaultOutputDir is where a staged distribution is assembled.
	DefaultOutputDir = "out"

	// ArchiveName is the name of the zipped repository inside a distribution.
	ArchiveName = "hpx.zip"

	gitDirName   = ".git"
	templatesDir = "templates"
)

// Stage assembles a distribution under outputDir: the zipped repository tree
// next to a copy of the CloudFormation templates. Any previous contents of
// outputDir are discarded.
func Stage(fs afero.Fs, repoRoot, outputDir string) error {
	if err := fs.RemoveAll(outputDir); err != nil {
		return fmt.Errorf("clear output dir %s: %w", outputDir, err)
	}
	if err := fs.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir %s: %w", outputDir, err)
	}
	skipOut := outputDir
	if rel, err := filepath.Rel(repoRoot, outputDir); err == nil {
		skipOut = rel
	}
	if err := Zip(fs, repoRoot, filepath.Join(outputDir, ArchiveName), skipOut, gitDirName); err != nil {
		return err
	}
	return copyTree(fs, filepath.Join(repoRoot, templatesDir), outputDir)
}

// Zip writes the tree rooted at root into a zip archive at dest.
// Directories whose path relative to root appears in excluded are skipped
// entirely; a directory of the same name deeper in the tree is archived.
func Zip(fs afero.Fs, root, dest string, excluded ...string) error {
	skip := make(map[string]struct{}, len(excluded))
	for _, name := range excluded {
		skip[filepath.Clean(name)] = struct{}{}
	}
	out, err := fs.Create(dest)
	if err != nil {
		return fmt.Errorf("create archive %s: %w", dest, err)
	}
	defer out.Close()
	zw := zip.NewWriter(out)

	walkErr := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if info.IsDir() {
			if _, ok := skip[rel]; ok {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(rel)
		header.Method = zip.Deflate
		w, err := zw.CreateHeader(header)
		if err != nil {
			return err
		}
		f, err := fs.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(w, f)
		return err
	})
	if walkErr != nil {
		zw.Close()
		return fmt.Errorf("zip %s: %w", root, walkErr)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize archive %s: %w", dest, err)
	}
	return nil
}

// Branch returns the current git branch of the repository, or the short
// commit hash when HEAD is detached.
func Branch(fs afero.Fs, repoRoot string) (string, error) {
	head, err := afero.ReadFile(fs, filepath.Join(repoRoot, gitDirName, "HEAD"))
	if err != nil {
		return "", fmt.Errorf("read git HEAD: %w", err)
	}
	ref := strings.TrimSpace(string(head))
	if branch := strings.TrimPrefix(ref, "ref: refs/heads/"); branch != ref {
		return branch, nil
	}
	if len(ref) >= 7 {
		return ref[:7], nil
	}
	return "", fmt.Errorf("cannot determine branch from git HEAD %q", ref)
}

func copyTree(fs afero.Fs, src, dest string) error {
	return afero.Walk(fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)
		if info.IsDir() {
			return fs.MkdirAll(target, 0755)
		}
		body, err := afero.ReadFile(fs, path)
		if err != nil {
			return err
		}
		return afero.WriteFile(fs, target, body, info.Mode().Perm())
	})
}
