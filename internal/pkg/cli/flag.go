// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

// Long flag names.
const (
	// Common flags.
	profileFlag = "profile"
	regionFlag  = "region"
	yesFlag     = "yes"

	// Command specific flags.
	versionFlag = "version"
	customFlag  = "custom"
	executeFlag = "execute"
	bucketFlag  = "bucket"
)

// Short flag names.
const (
	versionFlagShort = "V"
	customFlagShort  = "c"
	executeFlagShort = "x"
)

// Descriptions for flags.
const (
	profileFlagDescription = "Name of the AWS profile to use."
	regionFlagDescription  = "AWS region to deploy to. Defaults to the region of the active profile."
	yesFlagDescription     = "Skips confirmation prompt."

	versionFlagDescription = `Optional. Release version to deploy. Defaults to the latest published release.`
	customFlagDescription  = `Optional. S3 location of a custom distribution, e.g. "s3://my-builds/snapshot".`
	executeFlagDescription = "Executes the staged change set immediately when the stack already exists."
	bucketFlagDescription  = "Optional. Bucket to sync the packaged distribution to."
)

// Environment variables read by the commands.
const (
	redshiftPasswordEnv = "REDSHIFT_PASSWORD"
	redshiftUserEnv     = "REDSHIFT_USER"
	prefixEnv           = "PREFIX"
	vpcCIDREnv          = "VPC_CIDR"
)
