/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

package darwin

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mtuerrors "github.com/netverify/mtuctl/pkg/errors"
)

// fakeCommander lets us control CombinedOutput behavior.
type fakeCommander struct {
	wantName string
	wantArgs []string
	out      []byte
	err      error
	sleep    time.Duration
	called   bool
}

func (f *fakeCommander) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.called = true
	if f.wantName != "" && name != f.wantName {
		return nil, &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	if f.wantArgs != nil {
		if len(args) != len(f.wantArgs) {
			return nil, &exec.Error{Name: name, Err: exec.ErrNotFound}
		}
		for i := range args {
			if args[i] != f.wantArgs[i] {
				return nil, &exec.Error{Name: name, Err: exec.ErrNotFound}
			}
		}
	}
	if f.sleep > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.sleep):
		}
	}
	return f.out, f.err
}

func TestNetworksetupExtract(t *testing.T) {
	fc := &fakeCommander{
		wantName: "networksetup",
		wantArgs: []string{"-getMTU", "Wi-Fi"},
		out:      []byte("Active MTU: 1500 (Current Setting: 1500)\n"),
	}
	ex := &NetworksetupExtractor{Commander: fc}

	mtu, err := ex.Extract("Wi-Fi")
	require.NoError(t, err)
	assert.Equal(t, 1500, mtu)
	assert.True(t, fc.called)
}

func TestNetworksetupExtractEmptyService(t *testing.T) {
	ex := &NetworksetupExtractor{Commander: &fakeCommander{}}

	_, err := ex.Extract("   ")
	assert.Equal(t, mtuerrors.ErrCodeInvalidFormat, mtuerrors.CodeOf(err))
}

func TestNetworksetupExtractCommandFails(t *testing.T) {
	fc := &fakeCommander{
		out: []byte("** Error: The parameters were not valid.\n"),
		err: &exec.ExitError{},
	}
	ex := &NetworksetupExtractor{Commander: fc}

	_, err := ex.Extract("Nope")
	assert.Equal(t, mtuerrors.ErrCodePlatformError, mtuerrors.CodeOf(err))
}

func TestNetworksetupExtractNoMTUInOutput(t *testing.T) {
	fc := &fakeCommander{out: []byte("unexpected output\n")}
	ex := &NetworksetupExtractor{Commander: fc}

	_, err := ex.Extract("Wi-Fi")
	assert.Equal(t, mtuerrors.ErrCodeMTUNotFound, mtuerrors.CodeOf(err))
}

func TestNetworksetupExtractTimeout(t *testing.T) {
	fc := &fakeCommander{sleep: time.Second}
	ex := &NetworksetupExtractor{Timeout: 10 * time.Millisecond, Commander: fc}

	_, err := ex.Extract("Wi-Fi")
	assert.Equal(t, mtuerrors.ErrCodeTimeout, mtuerrors.CodeOf(err))
}

func TestIfconfigExtract(t *testing.T) {
	fc := &fakeCommander{
		wantName: "ifconfig",
		wantArgs: []string{"en0"},
		out: []byte("en0: flags=8863<UP,BROADCAST,SMART,RUNNING,SIMPLEX,MULTICAST> mtu 1500\n" +
			"\tether a4:83:e7:12:34:56\n"),
	}
	ex := &IfconfigExtractor{Commander: fc}

	mtu, err := ex.Extract("en0")
	require.NoError(t, err)
	assert.Equal(t, 1500, mtu)
}

func TestIfconfigExtractInterfaceNotFound(t *testing.T) {
	fc := &fakeCommander{
		out: []byte("ifconfig: interface en9 does not exist\n"),
		err: &exec.ExitError{},
	}
	ex := &IfconfigExtractor{Commander: fc}

	_, err := ex.Extract("en9")
	assert.Equal(t, mtuerrors.ErrCodeInterfaceNotFound, mtuerrors.CodeOf(err))
}

func TestListServices(t *testing.T) {
	fc := &fakeCommander{
		wantName: "networksetup",
		wantArgs: []string{"-listallnetworkservices"},
		out: []byte("An asterisk (*) denotes that a network service is disabled.\n" +
			"Wi-Fi\n" +
			"*Thunderbolt Bridge\n" +
			"USB 10/100/1000 LAN\n"),
	}

	services, err := ListServices(context.Background(), fc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Wi-Fi", "Thunderbolt Bridge", "USB 10/100/1000 LAN"}, services)
}

func TestListServicesCommandFails(t *testing.T) {
	fc := &fakeCommander{err: &exec.ExitError{}}

	_, err := ListServices(context.Background(), fc)
	assert.Equal(t, mtuerrors.ErrCodePlatformError, mtuerrors.CodeOf(err))
}
