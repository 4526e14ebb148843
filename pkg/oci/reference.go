// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package oci

import (
	"fmt"
	"strings"

	"github.com/distribution/reference"

	apperrors "github.com/NVIDIA/version-buddy/pkg/errors"
	"github.com/NVIDIA/version-buddy/pkg/semver"
)

// Reference is a parsed container image reference.
type Reference struct {
	// Registry is the registry host (e.g., "nvcr.io", "localhost:5000").
	Registry string `json:"registry" yaml:"registry"`
	// Repository is the image repository path (e.g., "nvidia/cuda").
	Repository string `json:"repository" yaml:"repository"`
	// Tag is the image tag, empty when the reference carries none.
	Tag string `json:"tag,omitempty" yaml:"tag,omitempty"`
	// Digest is the content digest, empty when the reference carries none.
	Digest string `json:"digest,omitempty" yaml:"digest,omitempty"`
}

// ParseReference parses a container image reference into its components.
// Short names are normalized the way Docker does, so "redis:7.2.4" becomes
// registry "docker.io" with repository "library/redis".
//
// Supported forms:
//   - registry/repository (e.g., "nvcr.io/nvidia/cuda")
//   - registry/repository:tag (e.g., "nvcr.io/nvidia/cuda:12.4.1")
//   - registry/repository@digest (e.g., "ghcr.io/org/app@sha256:...")
//   - registry/repository:tag@digest
func ParseReference(image string) (*Reference, error) {
	image = strings.TrimSpace(image)
	if image == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "image reference is required")
	}

	named, err := reference.ParseNormalizedNamed(image)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest, "invalid image reference", err,
			map[string]interface{}{"image": image})
	}

	ref := &Reference{
		Registry:   reference.Domain(named),
		Repository: reference.Path(named),
	}
	if tagged, ok := named.(reference.Tagged); ok {
		ref.Tag = tagged.Tag()
	}
	if digested, ok := named.(reference.Digested); ok {
		ref.Digest = digested.Digest().String()
	}
	return ref, nil
}

// String returns the Docker-style reference string:
// "registry/repository[:tag][@digest]".
func (r *Reference) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s/%s", r.Registry, r.Repository)
	if r.Tag != "" {
		fmt.Fprintf(&b, ":%s", r.Tag)
	}
	if r.Digest != "" {
		fmt.Fprintf(&b, "@%s", r.Digest)
	}
	return b.String()
}

// Version parses the reference tag as a strict semantic version. A single
// leading "v" is stripped before parsing, matching the common registry
// convention of tagging releases as "v1.2.3". References without a tag
// return an INVALID_REQUEST error; tags that do not parse return an
// INVALID_VERSION error wrapping the parser diagnostic.
func (r *Reference) Version() (semver.SemVer, error) {
	if r.Tag == "" {
		return semver.SemVer{}, apperrors.New(apperrors.ErrCodeInvalidRequest, "image reference has no tag")
	}

	v, err := semver.Parse(strings.TrimPrefix(r.Tag, "v"))
	if err != nil {
		return semver.SemVer{}, apperrors.WrapWithContext(apperrors.ErrCodeInvalidVersion, "image tag is not a semantic version", err,
			map[string]interface{}{"tag": r.Tag})
	}
	return v, nil
}

// TagVersion parses an image reference and returns the semantic version
// encoded in its tag. It is shorthand for ParseReference followed by Version.
func TagVersion(image string) (semver.SemVer, error) {
	ref, err := ParseReference(image)
	if err != nil {
		return semver.SemVer{}, err
	}
	return ref.Version()
}
