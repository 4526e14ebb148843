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

package semver

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Identifier is one dot-separated segment of a pre-release or build section,
// such as "alpha" or "001" in "1.0.0-alpha+001". Identifiers are immutable
// once constructed.
type Identifier struct {
	value string
}

// NewIdentifier constructs an Identifier, rejecting anything that is not a
// non-empty latin alphanumeric string.
func NewIdentifier(value string) (Identifier, error) {
	if value == "" || !allLatinAlphanumeric(value) {
		return Identifier{}, newParseError(-1, "An identifier must be a non-empty (latin) alphanumeric string")
	}
	return Identifier{value: value}, nil
}

// trustedIdentifier skips validation. The identifier-list rule classifies
// every character before consuming it, more precisely than NewIdentifier's
// combined check, so re-validation here would be redundant.
func trustedIdentifier(value string) Identifier {
	return Identifier{value: value}
}

// String returns the identifier text.
func (i Identifier) String() string {
	return i.value
}

// MarshalJSON encodes the identifier as an object with a single "value"
// field.
func (i Identifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(identifierValue{Value: i.value})
}

// MarshalYAML mirrors the JSON shape.
func (i Identifier) MarshalYAML() (any, error) {
	return identifierValue{Value: i.value}, nil
}

// identifierValue is the wire shape of an Identifier.
type identifierValue struct {
	Value string `json:"value" yaml:"value"`
}

func allLatinAlphanumeric(s string) bool {
	for _, r := range s {
		if !isLatinAlphanumeric(r) {
			return false
		}
	}
	return true
}

// SemVer is a parsed version: the numeric core plus ordered pre-release and
// build identifier lists. Field order matters to serialization and matches
// the canonical text form.
//
// Direct construction is not validated; a SemVer built by hand can hold
// identifier lists no grammar would produce. Only values returned by Parse
// are guaranteed valid.
type SemVer struct {
	Major uint64 `json:"major" yaml:"major"`
	Minor uint64 `json:"minor" yaml:"minor"`
	Patch uint64 `json:"patch" yaml:"patch"`

	PrereleaseIdentifiers []Identifier `json:"prerelease_identifiers" yaml:"prerelease_identifiers"`
	BuildIdentifiers      []Identifier `json:"build_identifiers" yaml:"build_identifiers"`
}

// String renders the canonical text form:
// "major.minor.patch", then "-" and the dot-joined pre-release identifiers if
// any, then "+" and the dot-joined build identifiers if any. For every value
// produced by Parse, parsing the result yields an equal value.
func (v SemVer) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", v.Major, v.Minor, v.Patch)
	if len(v.PrereleaseIdentifiers) > 0 {
		b.WriteByte('-')
		b.WriteString(joinIdentifiers(v.PrereleaseIdentifiers))
	}
	if len(v.BuildIdentifiers) > 0 {
		b.WriteByte('+')
		b.WriteString(joinIdentifiers(v.BuildIdentifiers))
	}
	return b.String()
}

// Equals reports whether v and other have the same numeric components and
// identifier lists.
func (v SemVer) Equals(other SemVer) bool {
	return v.Major == other.Major &&
		v.Minor == other.Minor &&
		v.Patch == other.Patch &&
		slices.Equal(v.PrereleaseIdentifiers, other.PrereleaseIdentifiers) &&
		slices.Equal(v.BuildIdentifiers, other.BuildIdentifiers)
}

// MarshalJSON encodes fields in declaration order and emits empty identifier
// lists as [] rather than null, so directly constructed values serialize the
// same as parsed ones.
func (v SemVer) MarshalJSON() ([]byte, error) {
	type semVerWire SemVer
	if v.PrereleaseIdentifiers == nil {
		v.PrereleaseIdentifiers = []Identifier{}
	}
	if v.BuildIdentifiers == nil {
		v.BuildIdentifiers = []Identifier{}
	}
	return json.Marshal(semVerWire(v))
}

// MarshalYAML mirrors the JSON field order and empty-list handling.
func (v SemVer) MarshalYAML() (any, error) {
	type semVerWire SemVer
	if v.PrereleaseIdentifiers == nil {
		v.PrereleaseIdentifiers = []Identifier{}
	}
	if v.BuildIdentifiers == nil {
		v.BuildIdentifiers = []Identifier{}
	}
	return semVerWire(v), nil
}

func joinIdentifiers(ids []Identifier) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.value
	}
	return strings.Join(parts, ".")
}
