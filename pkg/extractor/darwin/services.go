/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

package darwin

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	mtuerrors "github.com/netverify/mtuctl/pkg/errors"
)

// ListServices returns the names of all macOS network services as reported
// by `networksetup -listallnetworkservices`. Disabled services, prefixed
// with '*' in the output, are returned without the marker.
func ListServices(ctx context.Context, c Commander) ([]string, error) {
	out, err := runCommand(ctx, c, DefaultTimeout, "networksetup", "-listallnetworkservices")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, mtuerrors.Wrap(mtuerrors.ErrCodePlatformError, "networksetup command failed", err)
		}
		return nil, err
	}

	var services []string
	for i, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// First line is the "An asterisk (*) denotes..." preamble.
		if i == 0 && strings.Contains(line, "asterisk") {
			continue
		}
		services = append(services, strings.TrimSpace(strings.TrimPrefix(line, "*")))
	}
	return services, nil
}
