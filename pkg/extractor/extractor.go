/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

package extractor

// Extractor pulls an integer MTU value out of a typed configuration source.
// Failures are always classified *errors.ExtractionError values.
// Implementations are immutable after construction and safe for concurrent
// use.
type Extractor[T any] interface {
	// Extract returns the MTU value found in source.
	Extract(source T) (int, error)

	// Metadata describes the extractor. Purely informational; surfaced by
	// the CLI info command.
	Metadata() Metadata
}

// Metadata describes an extractor implementation.
type Metadata struct {
	Name               string   `json:"name" yaml:"name"`
	Description        string   `json:"description" yaml:"description"`
	Version            string   `json:"version" yaml:"version"`
	SourceType         string   `json:"sourceType" yaml:"sourceType"`
	SupportsAsync      bool     `json:"supportsAsync" yaml:"supportsAsync"`
	RequiresPrivileges bool     `json:"requiresPrivileges" yaml:"requiresPrivileges"`
	Platforms          []string `json:"platforms" yaml:"platforms"`
}

const metadataVersion = "1.0.0"

// allPlatforms marks extractors with no OS dependency.
var allPlatforms = []string{"linux", "darwin", "windows"}
