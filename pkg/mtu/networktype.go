/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

package mtu

// NetworkType classifies an MTU value by exact match against well-known
// typical values. Classification is a pure function of the integer value.
type NetworkType string

const (
	NetworkTypeStandardEthernet NetworkType = "Standard Ethernet"
	NetworkTypeJumboFrame       NetworkType = "Jumbo Frame"
	NetworkTypeIPv6Minimum      NetworkType = "IPv6 Minimum"
	NetworkTypePPPoE            NetworkType = "PPPoE"
	NetworkTypeCustom           NetworkType = "Custom"
)

var typicalValues = map[int]NetworkType{
	EthernetMTU:    NetworkTypeStandardEthernet,
	JumboFrameMTU:  NetworkTypeJumboFrame,
	IPv6MinimumMTU: NetworkTypeIPv6Minimum,
	PPPoEMTU:       NetworkTypePPPoE,
}

// Classify returns the network type for an MTU value. Anything that does
// not exactly match a well-known value is NetworkTypeCustom.
func Classify(mtu int) NetworkType {
	if t, ok := typicalValues[mtu]; ok {
		return t
	}
	return NetworkTypeCustom
}

// TypicalValue returns the canonical MTU for a network type, or -1 for
// NetworkTypeCustom and unknown types.
func TypicalValue(t NetworkType) int {
	for v, nt := range typicalValues {
		if nt == t {
			return v
		}
	}
	return -1
}

func (t NetworkType) String() string {
	return string(t)
}
