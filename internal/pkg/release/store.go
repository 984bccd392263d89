// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package release locates deployment artifacts in the public release bucket.
package release

import (
	"fmt"
	"strings"

	"github.com/aws-samples/hpx-cli/internal/pkg/aws/s3"
	"github.com/aws-samples/hpx-cli/internal/pkg/deploy"
)

const (
	// Bucket is the bucket official releases are published to.
	Bucket = "hpx-release"

	// latestKey is the marker object holding the most recent release version.
	latestKey = "LATEST"

	// templateKey is the CloudFormation template path inside a distribution.
	templateKey = "cloudformation/hpx.yaml"
)

type objectStore interface {
	ReadObject(bucket, key string) ([]byte, error)
	ObjectExists(bucket, key string) (bool, error)
}

// Store reads release metadata out of the release bucket.
type Store struct {
	s3     objectStore
	region string
}

// NewStore returns a Store against the release bucket in a region.
func NewStore(s3 objectStore, region string) *Store {
	return &Store{
		s3:     s3,
		region: region,
	}
}

// LatestVersion returns the version named by the bucket's LATEST marker.
func (s *Store) LatestVersion() (string, error) {
	body, err := s.s3.ReadObject(Bucket, latestKey)
	if err != nil {
		return "", fmt.Errorf("read %s marker: %w", latestKey, err)
	}
	return strings.TrimSpace(string(body)), nil
}

// DistributionURI returns the location of the official distribution for a version.
func (s *Store) DistributionURI(version string) string {
	return fmt.Sprintf("s3://%s/%s", Bucket, version)
}

// TemplateURL returns the https form of a distribution's CloudFormation
// template, the form accepted as a stack TemplateURL.
func (s *Store) TemplateURL(dist deploy.DistributionURI) string {
	return s3.URL(s.region, dist.Bucket(), TemplateKey(dist))
}

// TemplateExists returns true if the distribution holds a CloudFormation template.
func (s *Store) TemplateExists(dist deploy.DistributionURI) (bool, error) {
	return s.s3.ObjectExists(dist.Bucket(), TemplateKey(dist))
}

// TemplateKey returns the object key of a distribution's CloudFormation template.
func TemplateKey(dist deploy.DistributionURI) string {
	if prefix := dist.Key(); prefix != "" {
		return prefix + "/" + templateKey
	}
	return templateKey
}
