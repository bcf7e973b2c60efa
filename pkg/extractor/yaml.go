/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

package extractor

import (
	"strings"

	"gopkg.in/yaml.v3"

	mtuerrors "github.com/netverify/mtuctl/pkg/errors"
)

// YAMLPath extracts an MTU value from a YAML document using the same
// dot-separated path semantics as JSONPath.
type YAMLPath struct {
	// Path is the dot-separated path to the MTU value, e.g. "network.mtu".
	Path string
}

func (y *YAMLPath) Extract(source string) (int, error) {
	if strings.TrimSpace(source) == "" {
		return 0, mtuerrors.New(mtuerrors.ErrCodeInvalidFormat, "empty YAML configuration")
	}

	var doc any
	if err := yaml.Unmarshal([]byte(source), &doc); err != nil {
		return 0, mtuerrors.Wrap(mtuerrors.ErrCodeInvalidFormat, "malformed YAML configuration", err)
	}

	leaf, err := walkPath(doc, y.Path)
	if err != nil {
		return 0, err
	}
	return leafToMTU(leaf)
}

func (y *YAMLPath) Metadata() Metadata {
	return Metadata{
		Name:        "yaml",
		Description: "Extracts MTU from a YAML document by dot-separated path",
		Version:     metadataVersion,
		SourceType:  "string",
		Platforms:   allPlatforms,
	}
}
