/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

package mtu

import "strings"

// Protocol identifies the network-layer context a validation runs under.
// Each protocol carries fixed default MTU bounds.
type Protocol string

const (
	ProtocolIPv4     Protocol = "IPV4"
	ProtocolIPv6     Protocol = "IPV6"
	ProtocolEthernet Protocol = "ETHERNET"
	ProtocolPPP      Protocol = "PPP"
	ProtocolAny      Protocol = "ANY"
)

// bounds holds the inclusive default MTU range for a protocol.
type bounds struct {
	min, max int
}

var protocolBounds = map[Protocol]bounds{
	ProtocolIPv4:     {IPv4MinimumMTU, MaxMTU},
	ProtocolIPv6:     {IPv6MinimumMTU, MaxMTU},
	ProtocolEthernet: {64, EthernetMTU},
	ProtocolPPP:      {64, PPPoEMTU},
	ProtocolAny:      {1, MaxMTU},
}

var protocolDisplayNames = map[Protocol]string{
	ProtocolIPv4:     "IPv4",
	ProtocolIPv6:     "IPv6",
	ProtocolEthernet: "Ethernet",
	ProtocolPPP:      "PPP",
	ProtocolAny:      "Any",
}

// SupportedProtocols returns all known protocols in a stable order.
func SupportedProtocols() []Protocol {
	return []Protocol{ProtocolIPv4, ProtocolIPv6, ProtocolEthernet, ProtocolPPP, ProtocolAny}
}

// ParseProtocol parses a protocol name case-insensitively.
func ParseProtocol(s string) (Protocol, bool) {
	for _, p := range SupportedProtocols() {
		if strings.EqualFold(s, string(p)) {
			return p, true
		}
	}
	return "", false
}

// IsValid reports whether p is one of the known protocols.
func (p Protocol) IsValid() bool {
	_, ok := protocolBounds[p]
	return ok
}

// Bounds returns the inclusive default MTU range for the protocol.
// Unknown protocols get the ANY range.
func (p Protocol) Bounds() (min, max int) {
	b, ok := protocolBounds[p]
	if !ok {
		b = protocolBounds[ProtocolAny]
	}
	return b.min, b.max
}

// DisplayName returns the human-facing protocol name.
func (p Protocol) DisplayName() string {
	if name, ok := protocolDisplayNames[p]; ok {
		return name
	}
	return string(p)
}

func (p Protocol) String() string {
	return string(p)
}
