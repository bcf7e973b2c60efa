/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/netverify/mtuctl/pkg/version"
)

// New builds the mtuctl root command.
func New() *cli.Command {
	return &cli.Command{
		Name:    "mtuctl",
		Usage:   "Validate Maximum Transmission Unit (MTU) values from various sources",
		Version: version.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to the mtuctl config file (default: user config dir)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format (human, json, csv, yaml)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Include validator name, timestamp and error code in output",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			validateCmd(),
			infoCmd(),
			interfacesCmd(),
			versionCmd(),
		},
	}
}

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the mtuctl version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Println(version.String())
			return nil
		},
	}
}
