/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/version-buddy/pkg/semver"
)

// parseOutput is the envelope for a parsed version.
type parseOutput struct {
	Version semver.SemVer `json:"version" yaml:"version"`
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Parse a version string into its components",
		ArgsUsage:             "<version>",
		Description: `Parse a single version string against the Semantic Versioning 2.0.0 grammar.

The parser is strict: the numeric core must be exactly three dot-separated
components without leading zeros, pre-release and build sections must appear
in order, and identifiers are restricted to latin alphanumerics.
Invalid input fails with a diagnostic that names the offending offset,
counted in UTF-16 code units.

The result can be output in JSON, YAML, or table format.

# Examples

Parse a release version:
  vbctl parse 1.2.3

Parse a pre-release with build metadata:
  vbctl parse 2.0.0-rc.1+build.7

Compact JSON for piping:
  vbctl --json_indent 0 parse 1.2.3

Write the result to a file in YAML:
  vbctl parse --format yaml --output version.yaml 1.2.3`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			args := cmd.Args()
			if args.Len() != 1 {
				return fmt.Errorf("expected exactly one version string argument, got %d", args.Len())
			}
			raw := args.First()

			v, err := semver.Parse(raw)
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", raw, err)
			}

			w := outputWriter(cmd, outFormat)
			defer closeWriter(w)

			return w.Serialize(ctx, parseOutput{Version: v})
		},
	}
}
