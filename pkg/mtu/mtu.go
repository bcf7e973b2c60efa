/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

package mtu

// Well-known MTU values.
const (
	// EthernetMTU is the standard Ethernet payload size (IEEE 802.3).
	EthernetMTU = 1500

	// JumboFrameMTU is the common jumbo frame implementation limit.
	JumboFrameMTU = 9000

	// IPv6MinimumMTU is the minimum MTU required by IPv6 (RFC 8200).
	IPv6MinimumMTU = 1280

	// PPPoEMTU is Ethernet minus the 8-byte PPPoE header.
	PPPoEMTU = 1492

	// IPv4MinimumMTU is the minimum MTU required by IPv4 (RFC 791).
	IPv4MinimumMTU = 68

	// MaxMTU is the theoretical maximum (16-bit length field).
	MaxMTU = 65535
)

// IsStandard reports whether mtu falls in the commonly deployed range,
// from the IPv4 minimum up to jumbo frames.
func IsStandard(mtu int) bool {
	return mtu >= IPv4MinimumMTU && mtu <= JumboFrameMTU
}
