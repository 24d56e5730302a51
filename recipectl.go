// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package recipectl provides the version and commit information for recipectl.
package recipectl

import "fmt"

var (
	// Version is set during the build process.
	Version = "dev"
	// Commit is set during the build process.
	Commit = "unknown"
)

// VersionString is the version shown by --version.
func VersionString() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
