/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/netverify/mtuctl/pkg/config"
	"github.com/netverify/mtuctl/pkg/extractor"
	"github.com/netverify/mtuctl/pkg/serializer"
	"github.com/netverify/mtuctl/pkg/validator"
)

// Input file formats accepted by validate --format.
const (
	formatAuto       = "auto"
	formatJSON       = "json"
	formatYAML       = "yaml"
	formatProperties = "properties"
	formatRegex      = "regex"
)

func inputFormats() []string {
	return []string{formatAuto, formatJSON, formatYAML, formatProperties, formatRegex}
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Validate MTU values from different sources and formats",
		Description: `Validates an MTU value against a configurable range. The value comes
either directly from --value or is extracted from a configuration file.

# Examples

Validate a direct MTU value:
  mtuctl validate --value 1500

Validate MTU from a JSON file:
  mtuctl validate --file config.json --format json --path network.mtu

Validate with a custom range:
  mtuctl validate --value 9000 --min 1500 --max 9000

# Exit Codes

  0  the MTU value is valid
  1  the MTU value is out of range
  2  operational error (missing file, bad arguments, extraction failure)`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "value",
				Aliases: []string{"v"},
				Usage:   "Direct MTU value to validate",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Configuration file to read the MTU from",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: formatAuto,
				Usage: "Configuration format (auto, json, yaml, properties, regex)",
			},
			&cli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Value:   "mtu",
				Usage:   "Path to the MTU value in the configuration (dot-separated for JSON/YAML)",
			},
			&cli.IntFlag{
				Name:  "min",
				Usage: "Minimum allowed MTU value (default: from config, 68)",
			},
			&cli.IntFlag{
				Name:  "max",
				Usage: "Maximum allowed MTU value (default: from config, 9000)",
			},
			&cli.StringFlag{
				Name:  "protocol",
				Usage: "Network protocol (IPV4, IPV6, ETHERNET, PPP, ANY)",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Additionally require the value to be in the standard range 68-9000",
			},
			&cli.StringFlag{
				Name:  "name",
				Value: "CLI Validator",
				Usage: "Validator name reported in results",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := setup(cmd)
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
			}

			outFormat, err := parseOutputFormat(cmd, cfg)
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
			}

			v, err := buildValidator(cmd, cfg)
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
			}

			hasValue := cmd.IsSet("value")
			file := cmd.String("file")
			if hasValue == (file != "") {
				return cli.Exit("Error: exactly one of --value or --file must be specified", 2)
			}

			var result validator.ValidationResult
			if hasValue {
				result = v.Validate(int(cmd.Int("value")))
			} else {
				result, err = validateFromFile(v, file, cmd.String("format"), cmd.String("path"))
				if err != nil {
					return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
				}
			}

			w := serializer.NewWriter(outFormat, os.Stdout).WithVerbose(cmd.Bool("verbose"))
			if err := w.Serialize(result); err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
			}

			switch {
			case result.ErrorCode != "":
				return cli.Exit("", 2)
			case !result.Valid:
				return cli.Exit("", 1)
			default:
				return nil
			}
		},
	}
}

// buildValidator assembles the validator from flags with config-file
// defaults. Range violations fail here, before any validation runs.
func buildValidator(cmd *cli.Command, cfg *config.Config) (*validator.Validator, error) {
	protocol, err := parseProtocol(cmd, cfg)
	if err != nil {
		return nil, err
	}

	min := cfg.MinMTU
	if cmd.IsSet("min") {
		min = int(cmd.Int("min"))
	}
	max := cfg.MaxMTU
	if cmd.IsSet("max") {
		max = int(cmd.Int("max"))
	}

	opts := []validator.Option{
		validator.WithProtocol(protocol),
		validator.WithName(cmd.String("name")),
	}
	if cmd.Bool("strict") {
		opts = append(opts, validator.WithStrictMode())
	}

	return validator.New(min, max, opts...)
}

// validateFromFile reads the configuration file, picks the extractor for
// its format and runs extraction plus validation.
func validateFromFile(v *validator.Validator, path, format, valuePath string) (validator.ValidationResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return validator.ValidationResult{}, fmt.Errorf("configuration file not found: %s", path)
	}
	text := string(content)

	if format == "" || format == formatAuto {
		format = detectFormat(path, text)
	}

	switch format {
	case formatJSON:
		return validator.FromSource(v, text, &extractor.JSONPath{Path: valuePath}), nil
	case formatYAML:
		return validator.FromSource(v, text, &extractor.YAMLPath{Path: valuePath}), nil
	case formatProperties:
		props := extractor.ParseProperties(text)
		return validator.FromSource(v, props, &extractor.Properties{Key: valuePath}), nil
	case formatRegex:
		ex, err := extractor.NewRegex(extractor.DefaultTextPattern, 1, false)
		if err != nil {
			return validator.ValidationResult{}, err
		}
		return validator.FromSource(v, text, ex), nil
	default:
		return validator.ValidationResult{}, fmt.Errorf("unsupported format: %q, valid formats are: %s%s",
			format, strings.Join(inputFormats(), ", "), suggestion(format, inputFormats()))
	}
}

// detectFormat guesses the configuration format from the file extension,
// then from the content shape.
func detectFormat(path, content string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON
	case ".yaml", ".yml":
		return formatYAML
	case ".properties":
		return formatProperties
	}

	trimmed := strings.TrimSpace(content)
	switch {
	case strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "["):
		return formatJSON
	case strings.Contains(content, "=") && strings.Contains(strings.ToLower(content), "mtu"):
		return formatProperties
	default:
		return formatRegex
	}
}
