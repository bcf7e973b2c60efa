/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/netverify/mtuctl/pkg/errors"
	"github.com/netverify/mtuctl/pkg/extractor"
	"github.com/netverify/mtuctl/pkg/mtu"
)

const defaultName = "MTU Validator"

// Validator decides whether an integer MTU value is acceptable for a
// configured range and protocol. Immutable after construction and safe for
// concurrent use.
type Validator struct {
	minMTU   int
	maxMTU   int
	protocol mtu.Protocol
	custom   func(int) bool
	strict   bool
	name     string
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithProtocol tags the validator with a network protocol. It does not
// change the configured range.
func WithProtocol(p mtu.Protocol) Option {
	return func(v *Validator) {
		v.protocol = p
	}
}

// WithCustomCheck adds a predicate evaluated after the range check passes.
func WithCustomCheck(check func(int) bool) Option {
	return func(v *Validator) {
		v.custom = check
	}
}

// WithStrictMode additionally requires values to fall in the standard
// range (68..9000) regardless of the configured bounds.
func WithStrictMode() Option {
	return func(v *Validator) {
		v.strict = true
	}
}

// WithName sets the validator name reported in results.
func WithName(name string) Option {
	return func(v *Validator) {
		v.name = name
	}
}

// New creates a Validator for the inclusive range [minMTU, maxMTU].
// Both bounds must be positive and min must not exceed max; violations
// fail here, never at validate time.
func New(minMTU, maxMTU int, opts ...Option) (*Validator, error) {
	if minMTU <= 0 || maxMTU <= 0 {
		return nil, fmt.Errorf("invalid MTU range [%d, %d]: bounds must be positive", minMTU, maxMTU)
	}
	if minMTU > maxMTU {
		return nil, fmt.Errorf("invalid MTU range [%d, %d]: min exceeds max", minMTU, maxMTU)
	}

	v := &Validator{
		minMTU:   minMTU,
		maxMTU:   maxMTU,
		protocol: mtu.ProtocolAny,
		name:     defaultName,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// ForEthernet returns a validator for standard Ethernet frames.
func ForEthernet() *Validator {
	v, _ := New(64, mtu.EthernetMTU, WithProtocol(mtu.ProtocolEthernet), WithName("Ethernet Validator"))
	return v
}

// ForJumboFrames returns a validator for jumbo frame configurations.
func ForJumboFrames() *Validator {
	v, _ := New(mtu.EthernetMTU, mtu.JumboFrameMTU, WithProtocol(mtu.ProtocolEthernet), WithName("Jumbo Frame Validator"))
	return v
}

// ForIPv6 returns a validator enforcing the IPv6 minimum MTU.
func ForIPv6() *Validator {
	v, _ := New(mtu.IPv6MinimumMTU, mtu.MaxMTU, WithProtocol(mtu.ProtocolIPv6), WithName("IPv6 Validator"))
	return v
}

// ForProtocol returns a validator using the protocol's default bounds.
func ForProtocol(p mtu.Protocol) *Validator {
	min, max := p.Bounds()
	v, _ := New(min, max, WithProtocol(p), WithName(p.DisplayName()+" Validator"))
	return v
}

// Name returns the validator's reported name.
func (v *Validator) Name() string {
	return v.name
}

// Bounds returns the configured inclusive range.
func (v *Validator) Bounds() (min, max int) {
	return v.minMTU, v.maxMTU
}

// IsValid reports whether value is acceptable. The range check
// short-circuits before strict mode and the custom predicate are consulted.
func (v *Validator) IsValid(value int) bool {
	if value < v.minMTU || value > v.maxMTU {
		return false
	}
	if v.strict && !mtu.IsStandard(value) {
		return false
	}
	return v.custom == nil || v.custom(value)
}

// Validate checks value against the configured range and produces a
// detailed result. It never fails; rejection is a normal outcome.
func (v *Validator) Validate(value int) ValidationResult {
	start := time.Now()

	result := newResult(v.name)
	result.MTUValue = &value
	result.NetworkType = mtu.Classify(value)

	if v.IsValid(value) {
		result.Valid = true
		result.Message = fmt.Sprintf("MTU value %d is valid", value)
		observeValidation(statusValid, time.Since(start))
	} else {
		result.Valid = false
		result.Message = fmt.Sprintf("MTU value %d is invalid (range: %d-%d)", value, v.minMTU, v.maxMTU)
		result.Recommendations = []string{
			fmt.Sprintf("Use an MTU value within the range %d-%d", v.minMTU, v.maxMTU),
			"Check your network interface configuration",
			fmt.Sprintf("Verify %s protocol requirements", v.protocol.DisplayName()),
		}
		observeValidation(statusInvalid, time.Since(start))
	}

	slog.Debug("validation completed",
		"validator", v.name,
		"mtu", value,
		"valid", result.Valid,
		"networkType", result.NetworkType)

	return result
}

// FromSource extracts an MTU value from source and validates it. Extraction
// failures become failed results carrying the extractor's error code; the
// call itself never fails. Package-level because methods cannot have type
// parameters.
func FromSource[T any](v *Validator, source T, ex extractor.Extractor[T]) ValidationResult {
	start := time.Now()

	value, err := ex.Extract(source)
	if err != nil {
		slog.Debug("extraction failed",
			"validator", v.name,
			"extractor", ex.Metadata().Name,
			"error", err)

		result := newResult(v.name)
		result.Valid = false
		result.Message = fmt.Sprintf("Failed to validate MTU: %v", err)
		result.ErrorCode = errors.CodeOf(err)
		result.Recommendations = []string{
			"Check that the configuration source is present and readable",
			"Verify the configuration format matches the expected format",
			"Ensure the MTU value is a base-10 integer",
		}
		observeValidation(statusError, time.Since(start))
		return result
	}

	return v.Validate(value)
}
