/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/urfave/cli/v3"

	"github.com/netverify/mtuctl/pkg/config"
	"github.com/netverify/mtuctl/pkg/mtu"
	"github.com/netverify/mtuctl/pkg/serializer"
)

// maxSuggestionDistance bounds how far a typo may be from a known name
// before we stop suggesting it.
const maxSuggestionDistance = 3

// setup loads the tool configuration and initializes logging from the
// root-level flags. Called at the top of every command action.
func setup(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if cmd.String("log-level") != "" {
		level = cmd.String("log-level")
	}
	initLogging(level)

	return cfg, nil
}

func initLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

// parseOutputFormat extracts and validates the output format, preferring
// the flag over the configured default.
func parseOutputFormat(cmd *cli.Command, cfg *config.Config) (serializer.Format, error) {
	name := cmd.String("output")
	if name == "" {
		name = cfg.Output
	}

	outFormat := serializer.Format(name)
	if outFormat.IsUnknown() {
		known := make([]string, 0, len(serializer.SupportedFormats()))
		for _, f := range serializer.SupportedFormats() {
			known = append(known, string(f))
		}
		return "", fmt.Errorf("unknown output format: %q, valid formats are: %s%s",
			name, strings.Join(known, ", "), suggestion(name, known))
	}
	return outFormat, nil
}

// parseProtocol resolves the protocol flag, falling back to the configured
// default.
func parseProtocol(cmd *cli.Command, cfg *config.Config) (mtu.Protocol, error) {
	name := cmd.String("protocol")
	if name == "" {
		name = cfg.Protocol
	}

	p, ok := mtu.ParseProtocol(name)
	if !ok {
		known := make([]string, 0, len(mtu.SupportedProtocols()))
		for _, sp := range mtu.SupportedProtocols() {
			known = append(known, string(sp))
		}
		return "", fmt.Errorf("unknown protocol: %q, valid protocols are: %s%s",
			name, strings.Join(known, ", "), suggestion(strings.ToUpper(name), known))
	}
	return p, nil
}

// suggestion returns a " (did you mean ...?)" hint when input is close to
// one of the candidates, or the empty string.
func suggestion(input string, candidates []string) string {
	best := ""
	bestDistance := maxSuggestionDistance + 1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(input, c); d < bestDistance {
			best = c
			bestDistance = d
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}
