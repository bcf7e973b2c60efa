/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

package extractor

import (
	"strings"

	mtuerrors "github.com/netverify/mtuctl/pkg/errors"
)

// Properties extracts an MTU value from a flat string-to-string property
// table, such as a parsed Java-style .properties file.
type Properties struct {
	// Key is the property name holding the MTU value.
	Key string

	// CaseInsensitive makes the lookup scan all keys with a fold-insensitive
	// compare; the winner between multiple matches is non-deterministic.
	CaseInsensitive bool

	// Default, when non-empty, is parsed and returned for a missing key.
	Default string
}

func (p *Properties) Extract(source map[string]string) (int, error) {
	value, ok := p.lookup(source)
	if !ok {
		if p.Default != "" {
			return parseMTU(p.Default)
		}
		return 0, mtuerrors.Newf(mtuerrors.ErrCodeMTUNotFound, "MTU property not found for key: %s", p.Key)
	}
	return parseMTU(value)
}

func (p *Properties) lookup(source map[string]string) (string, bool) {
	if !p.CaseInsensitive {
		v, ok := source[p.Key]
		return v, ok
	}
	for k, v := range source {
		if strings.EqualFold(k, p.Key) {
			return v, true
		}
	}
	return "", false
}

func (p *Properties) Metadata() Metadata {
	return Metadata{
		Name:        "properties",
		Description: "Extracts MTU from a flat string-to-string property table",
		Version:     metadataVersion,
		SourceType:  "map[string]string",
		Platforms:   allPlatforms,
	}
}

// ParseProperties parses Java-style .properties content into a flat table.
// Lines starting with '#' or '!' are comments; '=' and ':' both separate
// keys from values; surrounding whitespace is trimmed. Lines without a
// separator are ignored.
func ParseProperties(text string) map[string]string {
	props := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}

		sep := strings.IndexAny(line, "=:")
		if sep < 0 {
			continue
		}

		key := strings.TrimSpace(line[:sep])
		value := strings.TrimSpace(line[sep+1:])
		if key == "" {
			continue
		}
		props[key] = value
	}
	return props
}
