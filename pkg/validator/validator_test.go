/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netverify/mtuctl/pkg/errors"
	"github.com/netverify/mtuctl/pkg/extractor"
	"github.com/netverify/mtuctl/pkg/mtu"
)

func TestNewRejectsInvalidRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{"min exceeds max", 2000, 1000},
		{"zero min", 0, 1500},
		{"negative min", -1, 1500},
		{"zero max", 1500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.min, tt.max)
			assert.Error(t, err, "construction must fail, not validation")
		})
	}
}

func TestValidateInRange(t *testing.T) {
	v, err := New(68, 9000)
	require.NoError(t, err)

	for _, value := range []int{68, 576, 1280, 1492, 1500, 9000} {
		result := v.Validate(value)
		assert.True(t, result.Valid, "value %d", value)
		require.NotNil(t, result.MTUValue)
		assert.Equal(t, value, *result.MTUValue)
		assert.Contains(t, result.Message, "is valid")
		assert.Empty(t, result.Recommendations)
		assert.Empty(t, result.ErrorCode)
	}
}

func TestValidateOutOfRange(t *testing.T) {
	v, err := New(68, 9000)
	require.NoError(t, err)

	for _, value := range []int{1, 67, 9001, 65535} {
		result := v.Validate(value)
		assert.False(t, result.Valid, "value %d", value)
		assert.Contains(t, result.Message, "68-9000", "message must contain the configured range")
		assert.Len(t, result.Recommendations, 3)
		assert.Empty(t, result.ErrorCode, "a rejected range is not an extraction failure")
	}
}

func TestValidateNetworkTypeClassification(t *testing.T) {
	tests := []struct {
		name      string
		validator *Validator
		value     int
		want      mtu.NetworkType
	}{
		{"ethernet preset", ForEthernet(), 1500, mtu.NetworkTypeStandardEthernet},
		{"jumbo preset", ForJumboFrames(), 9000, mtu.NetworkTypeJumboFrame},
		{"ipv6 preset", ForIPv6(), 1280, mtu.NetworkTypeIPv6Minimum},
		{"pppoe value", ForEthernet(), 1492, mtu.NetworkTypePPPoE},
		{"custom value", ForIPv6(), 4000, mtu.NetworkTypeCustom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.validator.Validate(tt.value)
			assert.Equal(t, tt.want, result.NetworkType)
		})
	}
}

func TestPresetBounds(t *testing.T) {
	min, max := ForEthernet().Bounds()
	assert.Equal(t, []int{64, 1500}, []int{min, max})

	min, max = ForJumboFrames().Bounds()
	assert.Equal(t, []int{1500, 9000}, []int{min, max})

	min, max = ForIPv6().Bounds()
	assert.Equal(t, []int{1280, 65535}, []int{min, max})
}

func TestCustomCheckEvaluatedAfterRange(t *testing.T) {
	calls := 0
	v, err := New(68, 9000, WithCustomCheck(func(value int) bool {
		calls++
		return value%2 == 0
	}))
	require.NoError(t, err)

	assert.False(t, v.IsValid(10), "below range")
	assert.Zero(t, calls, "range check must short-circuit before the predicate")

	assert.True(t, v.IsValid(1500))
	assert.False(t, v.IsValid(1501))
	assert.Equal(t, 2, calls)
}

func TestStrictModeRequiresStandardRange(t *testing.T) {
	v, err := New(1, 65535, WithStrictMode())
	require.NoError(t, err)

	assert.True(t, v.IsValid(1500))
	assert.False(t, v.IsValid(50), "below standard minimum")
	assert.False(t, v.IsValid(20000), "above standard maximum")
}

func TestValidateIdempotent(t *testing.T) {
	v := ForEthernet()

	first := v.Validate(1500)
	second := v.Validate(1500)

	assert.Equal(t, first.Valid, second.Valid)
	assert.Equal(t, *first.MTUValue, *second.MTUValue)
	assert.Equal(t, first.NetworkType, second.NetworkType)
	assert.Equal(t, first.Message, second.Message)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestFromSourceSuccess(t *testing.T) {
	v := ForEthernet()
	ex := &extractor.Map{Key: "mtu"}

	result := FromSource(v, map[string]any{"mtu": "1500"}, ex)

	assert.True(t, result.Valid)
	require.NotNil(t, result.MTUValue)
	assert.Equal(t, 1500, *result.MTUValue)
	assert.Equal(t, "Ethernet Validator", result.Validator)
}

func TestFromSourceExtractionFailure(t *testing.T) {
	v := ForEthernet()
	ex := &extractor.Map{Key: "mtu"}

	result := FromSource(v, map[string]any{"speed": "1000"}, ex)

	assert.False(t, result.Valid)
	assert.Equal(t, errors.ErrCodeMTUNotFound, result.ErrorCode)
	assert.Contains(t, result.Message, "Failed to validate MTU:")
	assert.Len(t, result.Recommendations, 3)
	assert.Nil(t, result.MTUValue)
}

func TestFromSourceNeverValidWithErrorCode(t *testing.T) {
	v := ForEthernet()

	sources := []map[string]any{
		{"mtu": "1500"},
		{"mtu": "junk"},
		{},
	}
	for _, src := range sources {
		result := FromSource(v, src, &extractor.Map{Key: "mtu"})
		if result.Valid {
			assert.Empty(t, result.ErrorCode)
		}
	}
}
