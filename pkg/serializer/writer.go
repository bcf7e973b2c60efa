/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer renders validation results for the CLI in human, JSON,
// CSV and YAML forms.
package serializer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/netverify/mtuctl/pkg/validator"
)

// Format selects the output representation.
type Format string

const (
	FormatHuman Format = "human"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatYAML  Format = "yaml"
)

// SupportedFormats returns all output formats in a stable order.
func SupportedFormats() []Format {
	return []Format{FormatHuman, FormatJSON, FormatCSV, FormatYAML}
}

// IsUnknown reports whether f is not a supported output format.
func (f Format) IsUnknown() bool {
	for _, known := range SupportedFormats() {
		if f == known {
			return false
		}
	}
	return true
}

// Writer serializes validation results to an output stream.
type Writer struct {
	format  Format
	out     io.Writer
	verbose bool
}

// NewWriter creates a Writer for the given format. Unknown formats fall
// back to human output.
func NewWriter(format Format, out io.Writer) *Writer {
	if format.IsUnknown() {
		format = FormatHuman
	}
	return &Writer{format: format, out: out}
}

// WithVerbose enables the extra detail sections (validator name, timestamp,
// error code, CSV header row).
func (w *Writer) WithVerbose(verbose bool) *Writer {
	w.verbose = verbose
	return w
}

// Serialize writes one validation result in the configured format.
func (w *Writer) Serialize(result validator.ValidationResult) error {
	switch w.format {
	case FormatJSON:
		return w.writeJSON(result)
	case FormatCSV:
		return w.writeCSV(result)
	case FormatYAML:
		return w.writeYAML(result)
	default:
		return w.writeHuman(result)
	}
}

func (w *Writer) writeJSON(result validator.ValidationResult) error {
	j, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize to json: %w", err)
	}
	_, err = fmt.Fprintln(w.out, string(j))
	return err
}

func (w *Writer) writeYAML(result validator.ValidationResult) error {
	y, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to serialize to yaml: %w", err)
	}
	_, err = w.out.Write(y)
	return err
}

func (w *Writer) writeCSV(result validator.ValidationResult) error {
	cw := csv.NewWriter(w.out)
	if w.verbose {
		if err := cw.Write([]string{"valid", "mtuValue", "message", "networkType", "validator", "timestamp"}); err != nil {
			return err
		}
	}

	value := ""
	if result.MTUValue != nil {
		value = strconv.Itoa(*result.MTUValue)
	}
	record := []string{
		strconv.FormatBool(result.Valid),
		value,
		result.Message,
		string(result.NetworkType),
		result.Validator,
		result.Timestamp.Format(time.RFC3339),
	}
	if err := cw.Write(record); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

func (w *Writer) writeHuman(result validator.ValidationResult) error {
	status := "✗ INVALID"
	if result.Valid {
		status = "✓ VALID"
	}

	fmt.Fprintln(w.out, "=== MTU Validation Result ===")
	fmt.Fprintf(w.out, "Status: %s\n", status)
	if result.MTUValue != nil {
		fmt.Fprintf(w.out, "MTU Value: %d\n", *result.MTUValue)
	}
	fmt.Fprintf(w.out, "Message: %s\n", result.Message)
	if result.NetworkType != "" {
		fmt.Fprintf(w.out, "Network Type: %s\n", result.NetworkType)
	}

	if len(result.Recommendations) > 0 {
		fmt.Fprintln(w.out, "\nRecommendations:")
		for _, rec := range result.Recommendations {
			fmt.Fprintf(w.out, "  • %s\n", rec)
		}
	}

	if w.verbose {
		fmt.Fprintln(w.out, "\nDetails:")
		fmt.Fprintf(w.out, "  Validator: %s\n", result.Validator)
		fmt.Fprintf(w.out, "  Timestamp: %s\n", result.Timestamp.Format(time.RFC3339))
		if result.ErrorCode != "" {
			fmt.Fprintf(w.out, "  Error Code: %s\n", result.ErrorCode)
		}
	}

	return nil
}
