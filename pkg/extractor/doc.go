/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

// Package extractor locates and parses integer MTU values out of structured
// or textual configuration sources.
//
// # Overview
//
// Each extractor implements Extractor[T] for its source type: Map for
// string-keyed maps, Properties for flat property tables, Regex for raw
// text, and JSONPath/YAMLPath for serialized documents navigated by
// dot-separated path. Platform-specific extractors that shell out to OS
// tools live in the darwin subpackage.
//
// # Error Handling
//
// Extraction failures are *errors.ExtractionError values carrying one of
// the closed set of error codes. Extractors never recover internally;
// every failure bubbles up to the validator boundary, which converts it
// into a failed ValidationResult.
//
// # Usage
//
//	ex := &extractor.JSONPath{Path: "network.mtu"}
//	mtu, err := ex.Extract(`{"network": {"mtu": 1500}}`)
package extractor
