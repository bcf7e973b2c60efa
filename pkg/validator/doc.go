/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

// Package validator checks MTU values against protocol-specific ranges and
// produces rich, user-facing results.
//
// # Overview
//
// A Validator holds an inclusive [min, max] range, a protocol tag and an
// optional custom predicate. Validate never fails: a rejected value is a
// normal outcome (valid=false, no error code), distinct from an extraction
// failure (valid=false with the extractor's error code), which FromSource
// translates into a result at the extractor boundary.
//
// # Usage
//
// Direct value validation:
//
//	v := validator.ForEthernet()
//	result := v.Validate(1500)
//	fmt.Println(result.Valid, result.NetworkType)
//
// Extraction plus validation:
//
//	ex := &extractor.Map{Key: "mtu"}
//	result := validator.FromSource(v, map[string]any{"mtu": "1500"}, ex)
//
// # Concurrency
//
// Validators are immutable after construction; a single instance may be
// shared by any number of goroutines without locking.
package validator
