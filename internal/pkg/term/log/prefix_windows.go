// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package log

// Log message prefixes.
// Windows terminals do not reliably render the check mark and cross mark glyphs.
const (
	successPrefix = "Success!"
	errorPrefix   = "Error!"
)
