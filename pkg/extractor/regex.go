/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

package extractor

import (
	"fmt"
	"regexp"

	mtuerrors "github.com/netverify/mtuctl/pkg/errors"
)

// DefaultTextPattern matches MTU declarations in free-form configuration
// text, e.g. "mtu 1500", "mtu=1500" or "mtu: 1500".
const DefaultTextPattern = `mtu[\s=:]+([0-9]+)`

// Regex extracts an MTU value from raw text using a capture group.
// The pattern is compiled once at construction, case-insensitively.
type Regex struct {
	pattern    *regexp.Regexp
	groupIndex int
}

// NewRegex compiles pattern and returns a text extractor reading the given
// capture group. Patterns are case-insensitive; multiline additionally lets
// ^ and $ match at line boundaries.
func NewRegex(pattern string, groupIndex int, multiline bool) (*Regex, error) {
	if groupIndex < 0 {
		return nil, fmt.Errorf("group index must not be negative, got %d", groupIndex)
	}

	flags := "(?i)"
	if multiline {
		flags = "(?im)"
	}
	re, err := regexp.Compile(flags + pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid MTU pattern %q: %w", pattern, err)
	}

	return &Regex{pattern: re, groupIndex: groupIndex}, nil
}

func (r *Regex) Extract(source string) (int, error) {
	match := r.pattern.FindStringSubmatch(source)
	if match == nil {
		return 0, mtuerrors.Newf(mtuerrors.ErrCodeMTUNotFound, "no MTU match for pattern %q", r.pattern.String())
	}
	if r.groupIndex >= len(match) {
		return 0, mtuerrors.Newf(mtuerrors.ErrCodeInvalidFormat,
			"capture group %d out of range, pattern has %d groups", r.groupIndex, len(match)-1)
	}
	return parseMTU(match[r.groupIndex])
}

func (r *Regex) Metadata() Metadata {
	return Metadata{
		Name:        "regex",
		Description: "Extracts MTU from raw text via a regular expression capture group",
		Version:     metadataVersion,
		SourceType:  "string",
		Platforms:   allPlatforms,
	}
}
