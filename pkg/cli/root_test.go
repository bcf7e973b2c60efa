/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// newTestRoot builds the root command with exit-coder handling disabled so
// cli.Exit errors come back from Run instead of terminating the process.
func newTestRoot() *cli.Command {
	cmd := New()
	cmd.ExitErrHandler = func(context.Context, *cli.Command, error) {}
	return cmd
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return 0
	}
	var coder cli.ExitCoder
	require.ErrorAs(t, err, &coder, "command errors must carry an exit code")
	return coder.ExitCode()
}

func TestValidateExitCodes(t *testing.T) {
	dir := t.TempDir()

	noMTU := filepath.Join(dir, "nomtu.json")
	require.NoError(t, os.WriteFile(noMTU, []byte(`{"network": {"speed": 1000}}`), 0o600))

	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"mtu": 1500}`), 0o600))

	tests := []struct {
		name string
		args []string
		want int
	}{
		{
			name: "valid value exits 0",
			args: []string{"mtuctl", "validate", "--value", "1500"},
			want: 0,
		},
		{
			name: "out-of-range value exits 1",
			args: []string{"mtuctl", "validate", "--value", "50"},
			want: 1,
		},
		{
			name: "missing file exits 2",
			args: []string{"mtuctl", "validate", "--file", filepath.Join(dir, "missing.json")},
			want: 2,
		},
		{
			name: "extraction failure exits 2",
			args: []string{"mtuctl", "validate", "--file", noMTU, "--format", "json", "--path", "network.mtu"},
			want: 2,
		},
		{
			name: "valid file exits 0",
			args: []string{"mtuctl", "validate", "--file", good},
			want: 0,
		},
		{
			name: "value and file together exit 2",
			args: []string{"mtuctl", "validate", "--value", "1500", "--file", good},
			want: 2,
		},
		{
			name: "neither value nor file exits 2",
			args: []string{"mtuctl", "validate"},
			want: 2,
		},
		{
			name: "flags override default bounds",
			args: []string{"mtuctl", "validate", "--value", "50", "--min", "20", "--max", "100"},
			want: 0,
		},
		{
			name: "unknown protocol exits 2",
			args: []string{"mtuctl", "validate", "--value", "1500", "--protocol", "token-ring"},
			want: 2,
		},
		{
			name: "unknown output format exits 2",
			args: []string{"mtuctl", "--output", "xml", "validate", "--value", "1500"},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newTestRoot().Run(context.Background(), tt.args)
			assert.Equal(t, tt.want, exitCode(t, err))
		})
	}
}

func TestVersionCommand(t *testing.T) {
	err := newTestRoot().Run(context.Background(), []string{"mtuctl", "version"})
	assert.NoError(t, err)
}
