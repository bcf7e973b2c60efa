/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

// Package mtu defines the MTU domain model: well-known MTU constants,
// network protocols with their default valid ranges, and network type
// classification by exact match against typical values.
//
// Everything in this package is a compile-time constant or a pure function;
// there is no state to share or protect.
package mtu
