/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

package extractor

import (
	"fmt"
	"strconv"
	"strings"

	mtuerrors "github.com/netverify/mtuctl/pkg/errors"
)

// Map extracts an MTU value from a string-keyed map of arbitrary values.
// The value's string representation is parsed as a base-10 integer.
type Map struct {
	// Key is the map key holding the MTU value.
	Key string

	// CaseInsensitive makes the lookup scan all keys with a fold-insensitive
	// compare. When several keys match, the winner follows Go's randomized
	// map iteration order and is therefore non-deterministic.
	CaseInsensitive bool

	// Default, when non-nil, is returned for a missing key instead of an
	// MTU_NOT_FOUND error.
	Default *int
}

// IntDefault is a convenience for populating Map.Default inline.
func IntDefault(v int) *int {
	return &v
}

func (m *Map) Extract(source map[string]any) (int, error) {
	value, ok := m.lookup(source)
	if !ok {
		if m.Default != nil {
			return *m.Default, nil
		}
		return 0, mtuerrors.Newf(mtuerrors.ErrCodeMTUNotFound, "MTU value not found for key: %s", m.Key)
	}
	return parseMTU(fmt.Sprintf("%v", value))
}

func (m *Map) lookup(source map[string]any) (any, bool) {
	if !m.CaseInsensitive {
		v, ok := source[m.Key]
		return v, ok
	}
	for k, v := range source {
		if strings.EqualFold(k, m.Key) {
			return v, true
		}
	}
	return nil, false
}

func (m *Map) Metadata() Metadata {
	return Metadata{
		Name:        "map",
		Description: "Extracts MTU from a string-keyed map of arbitrary values",
		Version:     metadataVersion,
		SourceType:  "map[string]any",
		Platforms:   allPlatforms,
	}
}

// parseMTU parses the string form of an MTU value as a base-10 integer.
func parseMTU(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, mtuerrors.Wrap(mtuerrors.ErrCodeInvalidMTUFormat, "invalid MTU value format", err)
	}
	return v, nil
}
