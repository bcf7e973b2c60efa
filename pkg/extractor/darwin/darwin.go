/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

// Package darwin provides macOS MTU extractors that shell out to
// networksetup and ifconfig and parse their textual output. These are the
// only components in the module that touch the OS; everything else is a
// pure computation.
package darwin

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/netverify/mtuctl/pkg/extractor"

	mtuerrors "github.com/netverify/mtuctl/pkg/errors"
)

// DefaultTimeout bounds a single child process invocation.
const DefaultTimeout = 10 * time.Second

// mtuPattern matches the MTU declaration in networksetup and ifconfig
// output, e.g. "Active MTU: 1500" or "mtu 1500".
var mtuPattern = regexp.MustCompile(`(?i)mtu\s+(\d+)`)

// NetworksetupExtractor extracts the MTU of a macOS network service by
// running `networksetup -getMTU <service>`.
type NetworksetupExtractor struct {
	// Timeout bounds the child process; DefaultTimeout when zero.
	Timeout time.Duration

	// Commander runs the child process; the os/exec implementation when nil.
	Commander Commander
}

func (e *NetworksetupExtractor) Extract(service string) (int, error) {
	return e.ExtractContext(context.Background(), service)
}

// ExtractContext is Extract with caller-scoped cancellation on top of the
// configured timeout.
func (e *NetworksetupExtractor) ExtractContext(ctx context.Context, service string) (int, error) {
	service = strings.TrimSpace(service)
	if service == "" {
		return 0, mtuerrors.New(mtuerrors.ErrCodeInvalidFormat, "network service name cannot be empty")
	}

	out, err := runCommand(ctx, e.Commander, e.Timeout, "networksetup", "-getMTU", service)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return 0, mtuerrors.Wrap(mtuerrors.ErrCodePlatformError,
				"networksetup command failed for service "+service, err)
		}
		return 0, err
	}

	return parseMTUOutput(out, "networksetup output for service "+service)
}

func (e *NetworksetupExtractor) Metadata() extractor.Metadata {
	return extractor.Metadata{
		Name:          "networksetup",
		Description:   "Extracts MTU from a macOS network service via networksetup -getMTU",
		Version:       "1.0.0",
		SourceType:    "string",
		SupportsAsync: true,
		Platforms:     []string{"darwin"},
	}
}

// IfconfigExtractor extracts the MTU of a network interface by running
// `ifconfig <interface>`.
type IfconfigExtractor struct {
	// Timeout bounds the child process; DefaultTimeout when zero.
	Timeout time.Duration

	// Commander runs the child process; the os/exec implementation when nil.
	Commander Commander
}

func (e *IfconfigExtractor) Extract(iface string) (int, error) {
	return e.ExtractContext(context.Background(), iface)
}

// ExtractContext is Extract with caller-scoped cancellation on top of the
// configured timeout.
func (e *IfconfigExtractor) ExtractContext(ctx context.Context, iface string) (int, error) {
	iface = strings.TrimSpace(iface)
	if iface == "" {
		return 0, mtuerrors.New(mtuerrors.ErrCodeInvalidFormat, "interface name cannot be empty")
	}

	out, err := runCommand(ctx, e.Commander, e.Timeout, "ifconfig", iface)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return 0, mtuerrors.Wrap(mtuerrors.ErrCodeInterfaceNotFound,
				"interface not found or ifconfig failed: "+iface, err)
		}
		return 0, err
	}

	return parseMTUOutput(out, "ifconfig output for interface "+iface)
}

func (e *IfconfigExtractor) Metadata() extractor.Metadata {
	return extractor.Metadata{
		Name:          "ifconfig",
		Description:   "Extracts MTU from a network interface via ifconfig",
		Version:       "1.0.0",
		SourceType:    "string",
		SupportsAsync: true,
		Platforms:     []string{"darwin"},
	}
}

// runCommand launches a child process bounded by timeout and classifies
// the failure modes that are not tool-specific.
func runCommand(ctx context.Context, c Commander, timeout time.Duration, name string, args ...string) ([]byte, error) {
	if c == nil {
		c = execCommander{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	slog.Debug("running platform command", "command", name, "args", args, "timeout", timeout)

	out, err := c.CombinedOutput(ctx, name, args...)
	if ctx.Err() == context.DeadlineExceeded {
		return nil, mtuerrors.Newf(mtuerrors.ErrCodeTimeout, "timeout waiting for %s command", name)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Tool-specific classification happens at the caller.
			return nil, err
		}
		return nil, mtuerrors.Wrap(mtuerrors.ErrCodePlatformError, "failed to run "+name, err)
	}
	return out, nil
}

// parseMTUOutput applies the fixed MTU pattern to captured stdout.
func parseMTUOutput(out []byte, source string) (int, error) {
	match := mtuPattern.FindSubmatch(out)
	if match == nil {
		return 0, mtuerrors.Newf(mtuerrors.ErrCodeMTUNotFound,
			"MTU value not found in %s: %s", source, strings.TrimSpace(string(out)))
	}

	mtu, err := strconv.Atoi(string(match[1]))
	if err != nil {
		return 0, mtuerrors.Wrap(mtuerrors.ErrCodeInvalidMTUFormat, "invalid MTU value format", err)
	}
	return mtu, nil
}
