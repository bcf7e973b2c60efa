/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

// Package version exposes build-time version information, overridable via
// -ldflags at release time.
package version

import "fmt"

var (
	// Version is the semantic version of the build.
	Version = "dev"

	// GitCommit is the commit the binary was built from.
	GitCommit = "unknown"
)

// String returns the full human-readable version line.
func String() string {
	return fmt.Sprintf("%s (commit %s)", Version, GitCommit)
}
