/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/version-buddy/pkg/semver"
	"github.com/NVIDIA/version-buddy/pkg/serializer"
)

// defaultCheckConcurrency bounds the parse worker pool.
const defaultCheckConcurrency = 4

// checkResult pairs an input string with its parse outcome.
type checkResult struct {
	input string
	err   error
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Validate a batch of version strings",
		ArgsUsage:             "[version...]",
		Description: `Validate one or more version strings against the Semantic Versioning
2.0.0 grammar.

Each input is parsed independently and reported on its own line, valid
inputs as "ok" and invalid ones with the parser diagnostic including the
offending offset. The command exits with a non-zero status if any input
fails, which makes it usable as a CI gate.

# Examples

Check versions passed as arguments:
  vbctl check 1.2.3 2.0.0-rc.1 1.0

Check a version list from a file (format follows the extension):
  vbctl check --input versions.yaml

Mix arguments with a JSON array from stdin:
  echo '["1.2.3","oops"]' | vbctl check --input - 4.5.6`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"f"},
				Usage: `Path to a JSON or YAML file holding an array of version strings to check
	in addition to the positional arguments. Use "-" to read a JSON array from stdin.`,
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "Maximum number of versions checked in parallel",
				Value: defaultCheckConcurrency,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			inputs := cmd.Args().Slice()

			if path := cmd.String("input"); path != "" {
				loaded, err := loadVersionInputs(path)
				if err != nil {
					return err
				}
				inputs = append(inputs, loaded...)
			}

			if len(inputs) == 0 {
				return fmt.Errorf("no version strings to check, pass arguments or --input")
			}

			workers := int(cmd.Int("concurrency"))
			if workers < 1 {
				workers = 1
			}

			results, err := checkVersions(ctx, inputs, workers)
			if err != nil {
				return err
			}

			failed := 0
			out := stdoutWriter(cmd)
			for _, res := range results {
				if res.err != nil {
					failed++
					fmt.Fprintf(out, "%s: %v\n", res.input, res.err)
					continue
				}
				fmt.Fprintf(out, "%s: ok\n", res.input)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d versions failed validation", failed, len(results))
			}
			return nil
		},
	}
}

// checkVersions parses every input with a bounded worker pool, preserving
// input order in the results. Individual parse failures are recorded, not
// returned; the error return fires only when the context is canceled.
func checkVersions(ctx context.Context, inputs []string, workers int) ([]checkResult, error) {
	results := make([]checkResult, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, raw := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, parseErr := semver.Parse(raw)
			results[i] = checkResult{input: raw, err: parseErr}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// loadVersionInputs reads an array of version strings from a file, or from
// stdin when path is "-". The file format follows the extension; stdin is
// always JSON.
func loadVersionInputs(path string) ([]string, error) {
	if path == "-" {
		r, err := serializer.NewReader(serializer.FormatJSON, os.Stdin)
		if err != nil {
			return nil, err
		}
		var list []string
		if err := r.Deserialize(&list); err != nil {
			return nil, fmt.Errorf("failed to read versions from stdin: %w", err)
		}
		return list, nil
	}

	list, err := serializer.FromFile[[]string](path)
	if err != nil {
		return nil, err
	}
	return *list, nil
}
