/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

package extractor

import (
	"encoding/json"
	"strings"

	mtuerrors "github.com/netverify/mtuctl/pkg/errors"
)

// JSONPath extracts an MTU value from a JSON document by navigating
// dot-separated path segments into nested objects.
type JSONPath struct {
	// Path is the dot-separated path to the MTU value, e.g. "network.mtu".
	Path string
}

func (j *JSONPath) Extract(source string) (int, error) {
	if strings.TrimSpace(source) == "" {
		return 0, mtuerrors.New(mtuerrors.ErrCodeInvalidFormat, "empty JSON configuration")
	}

	dec := json.NewDecoder(strings.NewReader(source))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return 0, mtuerrors.Wrap(mtuerrors.ErrCodeInvalidFormat, "malformed JSON configuration", err)
	}

	leaf, err := walkPath(doc, j.Path)
	if err != nil {
		return 0, err
	}
	return leafToMTU(leaf)
}

func (j *JSONPath) Metadata() Metadata {
	return Metadata{
		Name:        "json",
		Description: "Extracts MTU from a JSON document by dot-separated path",
		Version:     metadataVersion,
		SourceType:  "string",
		Platforms:   allPlatforms,
	}
}

// walkPath navigates dot-separated segments into nested objects. A missing
// segment or a traversal through a non-object fails with MTU_NOT_FOUND.
func walkPath(doc any, path string) (any, error) {
	current := doc
	for _, segment := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, mtuerrors.Newf(mtuerrors.ErrCodeMTUNotFound,
				"path segment %q does not address an object", segment)
		}
		current, ok = obj[segment]
		if !ok {
			return nil, mtuerrors.Newf(mtuerrors.ErrCodeMTUNotFound, "path segment %q not found", segment)
		}
	}
	return current, nil
}

// leafToMTU converts a decoded document leaf into an MTU integer.
func leafToMTU(leaf any) (int, error) {
	switch v := leaf.(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, mtuerrors.Wrap(mtuerrors.ErrCodeInvalidMTUFormat, "MTU value is not an integer", err)
		}
		return int(n), nil
	case int:
		return v, nil
	case string:
		return parseMTU(v)
	case float64:
		n := int(v)
		if float64(n) != v {
			return 0, mtuerrors.Newf(mtuerrors.ErrCodeInvalidMTUFormat, "MTU value %v is not an integer", v)
		}
		return n, nil
	default:
		return 0, mtuerrors.Newf(mtuerrors.ErrCodeInvalidMTUFormat, "MTU value has non-numeric type %T", leaf)
	}
}
