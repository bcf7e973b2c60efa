/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the mtuctl command-line interface on urfave/cli:
// validate (direct values and configuration files), info (static MTU
// reference tables) and interfaces (macOS service listing).
package cli
