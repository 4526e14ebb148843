/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/version-buddy/pkg/api"
)

func serverCmd() *cli.Command {
	return &cli.Command{
		Name:                  "server",
		EnableShellCompletion: true,
		Usage:                 "Run the version parsing HTTP API server",
		Description: `Run the HTTP API daemon in-process.

This is the same entry point the vbd binary uses. The server exposes the
parse API under /v1, health and readiness probes, and Prometheus metrics,
and shuts down gracefully on SIGINT/SIGTERM.

Configuration is read from the environment (PORT, RATE_LIMIT,
SHUTDOWN_TIMEOUT_SECONDS); the --port flag overrides PORT for convenience.

# Examples

Run on the default port:
  vbctl server

Run on a custom port:
  vbctl server --port 9090`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Usage:   "HTTP port to listen on",
				Sources: cli.EnvVars("PORT"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.IsSet("port") {
				if err := os.Setenv("PORT", strconv.Itoa(int(cmd.Int("port")))); err != nil {
					return err
				}
			}
			return api.Serve(ctx)
		},
	}
}
