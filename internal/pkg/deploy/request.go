// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package deploy holds the deployment request for an HPX stack and the logic
// to dispatch it to AWS CloudFormation.
package deploy

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/structs"
	"github.com/imdario/mergo"

	"github.com/aws-samples/hpx-cli/internal/pkg/aws/s3"
)

// Defaults for fields that are not provided through flags or the environment.
const (
	DefaultPrefix       = "hpx"
	DefaultRedshiftUser = "hpx"
	DefaultVPCCIDR      = "172.31.0.0/16"
)

// Validation patterns for every user-supplied field.
var (
	stackNamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,255}$`)
	versionPattern   = regexp.MustCompile(`^\d+\.\d+(\.\d+)*$`)
	distURIPattern   = regexp.MustCompile(`^s3://[^/]{1,255}(/.*)?$`)
	prefixPattern    = regexp.MustCompile(`^[a-zA-Z0-9]{1,16}$`)
	dbUserPattern    = regexp.MustCompile(`^[a-z][a-z0-9]{0,127}$`)
	// Octets are matched as one to three digits on purpose: the historical
	// validator never range-checked them, so "999.1.1.1/16" is accepted.
	cidrPattern = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}(/(3[0-2]|[12]?\d))?$`)
)

// StackName is the name of the CloudFormation stack to create or update.
type StackName string

// NewStackName returns a validated StackName.
func NewStackName(value string) (StackName, error) {
	if !stackNamePattern.MatchString(value) {
		return "", &ErrInvalidValue{Field: "stack name", Value: value, Pattern: stackNamePattern.String()}
	}
	return StackName(value), nil
}

// Version is a dotted numeric release version, e.g. "1.0.0".
type Version string

// NewVersion returns a validated Version.
func NewVersion(value string) (Version, error) {
	if !versionPattern.MatchString(value) {
		return "", &ErrInvalidValue{Field: "version", Value: value, Pattern: versionPattern.String()}
	}
	return Version(value), nil
}

// DistributionURI is the S3 location deployment artifacts are read from.
type DistributionURI string

// NewDistributionURI returns a validated DistributionURI.
func NewDistributionURI(value string) (DistributionURI, error) {
	if !distURIPattern.MatchString(value) {
		return "", &ErrInvalidValue{Field: "distribution uri", Value: value, Pattern: distURIPattern.String()}
	}
	return DistributionURI(strings.TrimSuffix(value, "/")), nil
}

// Bucket returns the bucket name of the URI.
// A validated URI always parses, so the error is discarded.
func (u DistributionURI) Bucket() string {
	bucket, _, _ := s3.ParseURI(string(u))
	return bucket
}

// Key returns the object key prefix of the URI, which may be empty.
func (u DistributionURI) Key() string {
	_, key, _ := s3.ParseURI(string(u))
	return key
}

// Prefix is the short identifier prepended to provisioned resource names.
type Prefix string

// NewPrefix returns a validated Prefix.
func NewPrefix(value string) (Prefix, error) {
	if !prefixPattern.MatchString(value) {
		return "", &ErrInvalidValue{Field: "prefix", Value: value, Pattern: prefixPattern.String()}
	}
	return Prefix(value), nil
}

// DBUser is the master user name for the Redshift cluster.
type DBUser string

// NewDBUser returns a validated DBUser.
func NewDBUser(value string) (DBUser, error) {
	if !dbUserPattern.MatchString(value) {
		return "", &ErrInvalidValue{Field: "redshift user", Value: value, Pattern: dbUserPattern.String()}
	}
	return DBUser(value), nil
}

// CIDR is the IPv4 address range of the VPC, e.g. "172.31.0.0/16".
type CIDR string

// NewCIDR returns a validated CIDR.
func NewCIDR(value string) (CIDR, error) {
	if !cidrPattern.MatchString(value) {
		return "", &ErrInvalidValue{Field: "vpc cidr", Value: value, Pattern: cidrPattern.String()}
	}
	return CIDR(value), nil
}

// Input holds the raw values gathered from command line flags and arguments.
type Input struct {
	StackName       string
	Version         string
	DistributionURI string
	Execute         bool
}

// Env holds the raw values gathered from environment variables.
type Env struct {
	RedshiftPassword string
	RedshiftUser     string
	Prefix           string
	VPCCIDR          string
}

// releaseStore provides the defaults that live in the release bucket.
type releaseStore interface {
	// LatestVersion returns the contents of the "LATEST" marker object.
	LatestVersion() (string, error)
	// DistributionURI returns the default distribution location for a version.
	DistributionURI(version string) string
}

// Request is an immutable, fully validated deployment request.
// It is constructed once per invocation and consumed exactly once.
type Request struct {
	StackName        StackName
	Version          Version
	Distribution     DistributionURI
	Prefix           Prefix
	RedshiftUser     DBUser
	RedshiftPassword string
	VPCCIDR          CIDR
	Execute          bool
}

// NewRequest assembles and validates a Request from the raw inputs.
// Unset fields are defaulted first, then every field is passed through its
// validating constructor in order; the first invalid field aborts the build.
func NewRequest(in Input, env Env, region string, store releaseStore) (*Request, error) {
	defaults := Env{
		RedshiftUser: DefaultRedshiftUser,
		Prefix:       DefaultPrefix,
		VPCCIDR:      DefaultVPCCIDR,
	}
	if err := mergo.Merge(&env, defaults); err != nil {
		return nil, fmt.Errorf("merge default environment values: %w", err)
	}

	if env.RedshiftPassword == "" {
		return nil, ErrPasswordUnset
	}
	prefix, err := NewPrefix(env.Prefix)
	if err != nil {
		return nil, err
	}
	if in.StackName == "" {
		in.StackName = fmt.Sprintf("%s-%s", prefix, region)
	}
	name, err := NewStackName(in.StackName)
	if err != nil {
		return nil, err
	}
	if in.Version == "" {
		// A failed read surfaces as an empty version, which the version
		// validator then rejects; there is no separate store error kind.
		latest, _ := store.LatestVersion()
		in.Version = strings.TrimSpace(latest)
	}
	version, err := NewVersion(in.Version)
	if err != nil {
		return nil, err
	}
	if in.DistributionURI == "" {
		in.DistributionURI = store.DistributionURI(string(version))
	}
	dist, err := NewDistributionURI(in.DistributionURI)
	if err != nil {
		return nil, err
	}
	user, err := NewDBUser(env.RedshiftUser)
	if err != nil {
		return nil, err
	}
	cidr, err := NewCIDR(env.VPCCIDR)
	if err != nil {
		return nil, err
	}

	return &Request{
		StackName:        name,
		Version:          version,
		Distribution:     dist,
		Prefix:           prefix,
		RedshiftUser:     user,
		RedshiftPassword: env.RedshiftPassword,
		VPCCIDR:          cidr,
		Execute:          in.Execute,
	}, nil
}

// stackParams mirrors the parameter keys declared by the CloudFormation template.
type stackParams struct {
	Version          string `structs:"Version"`
	DistributionUri  string `structs:"DistributionUri"`
	Prefix           string `structs:"Prefix"`
	RedshiftUser     string `structs:"RedshiftUser"`
	RedshiftPassword string `structs:"RedshiftPassword"`
	VpcCidr          string `structs:"VpcCidr"`
}

// Parameters returns the CloudFormation parameter list for the request.
func (r *Request) Parameters() map[string]string {
	fields := structs.Map(stackParams{
		Version:          string(r.Version),
		DistributionUri:  string(r.Distribution),
		Prefix:           string(r.Prefix),
		RedshiftUser:     string(r.RedshiftUser),
		RedshiftPassword: r.RedshiftPassword,
		VpcCidr:          string(r.VPCCIDR),
	})
	params := make(map[string]string, len(fields))
	for key, value := range fields {
		params[key] = value.(string)
	}
	return params
}

// String returns a loggable description of the request with the password redacted.
func (r *Request) String() string {
	return fmt.Sprintf("stack %s (version %s from %s)", r.StackName, r.Version, r.Distribution)
}
