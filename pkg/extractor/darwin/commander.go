/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

package darwin

import (
	"context"
	"os/exec"
)

// Commander abstracts child process execution so the parsing and timeout
// policy can be tested without launching real OS tools.
type Commander interface {
	CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execCommander is the production Commander backed by os/exec. The context
// deadline forcibly terminates the child process on expiry.
type execCommander struct{}

func (execCommander) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}
