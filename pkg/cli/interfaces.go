/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/netverify/mtuctl/pkg/extractor/darwin"
	"github.com/netverify/mtuctl/pkg/serializer"
)

// ServiceMTU is one row of the interfaces listing.
type ServiceMTU struct {
	Service string `json:"service" yaml:"service"`
	MTU     int    `json:"mtu,omitempty" yaml:"mtu,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

func interfacesCmd() *cli.Command {
	return &cli.Command{
		Name:  "interfaces",
		Usage: "List macOS network services and their current MTU values",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Per-service query timeout (default: from config, 10s)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := setup(cmd)
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
			}

			if runtime.GOOS != "darwin" {
				return cli.Exit("Error: the interfaces command requires macOS (networksetup)", 2)
			}

			outFormat, err := parseOutputFormat(cmd, cfg)
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
			}

			timeout := cfg.Timeout
			if cmd.IsSet("timeout") {
				timeout = cmd.Duration("timeout")
			}

			services, err := darwin.ListServices(ctx, nil)
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
			}

			rows, err := queryServiceMTUs(ctx, services, &darwin.NetworksetupExtractor{Timeout: timeout})
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
			}

			if err := writeServiceMTUs(outFormat, rows, os.Stdout); err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
			}
			return nil
		},
	}
}

// queryServiceMTUs queries every service concurrently. Per-service
// failures are recorded in the row rather than aborting the listing.
func queryServiceMTUs(ctx context.Context, services []string, ex *darwin.NetworksetupExtractor) ([]ServiceMTU, error) {
	rows := make([]ServiceMTU, len(services))

	g, ctx := errgroup.WithContext(ctx)
	for i, service := range services {
		i, service := i, service
		g.Go(func() error {
			rows[i] = ServiceMTU{Service: service}
			mtu, err := ex.ExtractContext(ctx, service)
			if err != nil {
				rows[i].Error = err.Error()
				return nil
			}
			rows[i].MTU = mtu
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func writeServiceMTUs(format serializer.Format, rows []ServiceMTU, out io.Writer) error {
	switch format {
	case serializer.FormatJSON:
		j, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(j))
	case serializer.FormatYAML:
		y, err := yaml.Marshal(rows)
		if err != nil {
			return err
		}
		fmt.Fprint(out, string(y))
	case serializer.FormatCSV:
		cw := csv.NewWriter(out)
		if err := cw.Write([]string{"service", "mtu", "error"}); err != nil {
			return err
		}
		for _, row := range rows {
			if err := cw.Write([]string{row.Service, serviceMTUString(row), row.Error}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	default:
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SERVICE\tMTU\tERROR")
		for _, row := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Service, serviceMTUString(row), row.Error)
		}
		return tw.Flush()
	}
	return nil
}

// serviceMTUString renders the MTU column, empty when the query failed.
func serviceMTUString(row ServiceMTU) string {
	if row.MTU > 0 {
		return strconv.Itoa(row.MTU)
	}
	return ""
}
