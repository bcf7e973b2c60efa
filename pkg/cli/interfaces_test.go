/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netverify/mtuctl/pkg/serializer"
)

func serviceRows() []ServiceMTU {
	return []ServiceMTU{
		{Service: "Wi-Fi", MTU: 1500},
		{Service: "Thunderbolt Bridge", Error: "timeout waiting for networksetup command"},
	}
}

func TestWriteServiceMTUsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeServiceMTUs(serializer.FormatCSV, serviceRows(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"service", "mtu", "error"}, records[0])
	assert.Equal(t, []string{"Wi-Fi", "1500", ""}, records[1])
	assert.Equal(t, []string{"Thunderbolt Bridge", "", "timeout waiting for networksetup command"}, records[2])
}

func TestWriteServiceMTUsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeServiceMTUs(serializer.FormatJSON, serviceRows(), &buf))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Wi-Fi", decoded[0]["service"])
	assert.Equal(t, float64(1500), decoded[0]["mtu"])
	assert.NotContains(t, decoded[0], "error")
}

func TestWriteServiceMTUsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeServiceMTUs(serializer.FormatHuman, serviceRows(), &buf))

	out := buf.String()
	assert.Contains(t, out, "SERVICE")
	assert.Contains(t, out, "Wi-Fi")
	assert.Contains(t, out, "1500")
}
