/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/version-buddy/pkg/oci"
	"github.com/NVIDIA/version-buddy/pkg/semver"
)

// imageOutput is the envelope for an inspected image reference. Version is
// absent for untagged references when --require-tag is disabled.
type imageOutput struct {
	Image   *oci.Reference `json:"image" yaml:"image"`
	Version *semver.SemVer `json:"version,omitempty" yaml:"version,omitempty"`
}

func imageCmd() *cli.Command {
	return &cli.Command{
		Name:                  "image",
		EnableShellCompletion: true,
		Usage:                 "Parse the version tag of a container image reference",
		ArgsUsage:             "<reference>",
		Description: `Parse a container image reference and extract the semantic version
encoded in its tag.

The reference is resolved with Docker normalization rules, so short names
like "redis:7.2.4" resolve to "docker.io/library/redis:7.2.4". A single
leading "v" is stripped from the tag before parsing, matching the common
registry convention of tagging releases as "v1.2.3". The tag itself must
then satisfy the strict Semantic Versioning 2.0.0 grammar.

By default a reference without a tag is an error. With --require-tag=false
the image components are emitted without a version instead, which keeps
digest-pinned references usable in inspection pipelines.

# Examples

Read the version from a tagged image:
  vbctl image nvcr.io/nvidia/cuda:12.4.1

Tolerate digest-pinned references:
  vbctl image --require-tag=false ghcr.io/org/app@sha256:abc...

Emit YAML:
  vbctl image --format yaml ghcr.io/org/app:v2.0.0-rc.1`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "require-tag",
				Usage: "Fail when the reference carries no tag",
				Value: true,
			},
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
				return fmt.Errorf("expected exactly one image reference argument, got %d", args.Len())
			}

			ref, err := oci.ParseReference(args.First())
			if err != nil {
				return err
			}

			out := imageOutput{Image: ref}
			if ref.Tag == "" {
				if cmd.Bool("require-tag") {
					return fmt.Errorf("image reference %q has no tag (use --require-tag=false to allow)", ref)
				}
			} else {
				// A present but unparseable tag is always an error.
				v, err := ref.Version()
				if err != nil {
					return err
				}
				out.Version = &v
			}

			w := outputWriter(cmd, outFormat)
			defer closeWriter(w)

			return w.Serialize(ctx, out)
		},
	}
}
