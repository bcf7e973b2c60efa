/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"time"

	"github.com/google/uuid"

	"github.com/netverify/mtuctl/pkg/errors"
	"github.com/netverify/mtuctl/pkg/mtu"
)

// ValidationResult describes the outcome of one validation. It is created
// once per Validate call and never mutated afterwards.
type ValidationResult struct {
	// ID uniquely identifies this validation run.
	ID string `json:"id" yaml:"id"`

	Valid   bool   `json:"valid" yaml:"valid"`
	Message string `json:"message" yaml:"message"`

	// MTUValue is the validated value; nil when extraction failed before
	// a value was produced.
	MTUValue *int `json:"mtuValue,omitempty" yaml:"mtuValue,omitempty"`

	// NetworkType classifies the value against well-known MTUs; empty when
	// no value was produced.
	NetworkType mtu.NetworkType `json:"networkType,omitempty" yaml:"networkType,omitempty"`

	// Recommendations are ordered user-facing hints; empty on acceptance.
	Recommendations []string `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`

	// Validator is the name of the validator that produced this result.
	Validator string `json:"validator" yaml:"validator"`

	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	// ErrorCode is set only for extraction failures. A rejected-range MTU
	// is a normal outcome and carries no code.
	ErrorCode errors.ErrorCode `json:"errorCode,omitempty" yaml:"errorCode,omitempty"`
}

func newResult(validatorName string) ValidationResult {
	return ValidationResult{
		ID:        uuid.New().String(),
		Validator: validatorName,
		Timestamp: time.Now().UTC(),
	}
}
