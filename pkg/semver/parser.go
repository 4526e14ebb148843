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
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// MaxVersionStringCodeUnits is the longest input Parse will read, in UTF-16
// code units. Characters outside the Basic Multilingual Plane count as two
// units. Longer input fails before any character is inspected, which keeps
// the cost of probing untrusted input bounded.
const MaxVersionStringCodeUnits = 256

// ParseOption adjusts parser behavior. No options are currently defined; the
// hook is reserved for embedding the version grammar inside a larger one.
type ParseOption func(*parseConfig)

type parseConfig struct{}

// Parse parses s as a strict SemVer 2.0 version string.
//
// The grammar is applied in a single left-to-right pass: version core,
// optional pre-release section, optional build section, end of input. The
// section order is fixed; a "-" after the build section has started is not
// a pre-release marker. On failure the returned error is a *ParseError whose
// message names the failing rule and the offset of the first problematic
// code unit.
func Parse(s string, opts ...ParseOption) (SemVer, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// One UTF-16 unit never takes more than three UTF-8 bytes, so a byte
	// count over 3x the limit cannot fit without decoding anything.
	if len(s) > 3*MaxVersionStringCodeUnits {
		return SemVer{}, newParseError(-1, "Limit exceeded: MaxVersionStringCodeUnits")
	}
	units := utf16.Encode([]rune(s))
	if len(units) > MaxVersionStringCodeUnits {
		return SemVer{}, newParseError(-1, "Limit exceeded: MaxVersionStringCodeUnits")
	}

	c := &cursor{units: units}

	major, err := expectVersionComponent(c, "major")
	if err != nil {
		return SemVer{}, err
	}
	if err := expectDelimiter(c); err != nil {
		return SemVer{}, err
	}
	minor, err := expectVersionComponent(c, "minor")
	if err != nil {
		return SemVer{}, err
	}
	if err := expectDelimiter(c); err != nil {
		return SemVer{}, err
	}
	patch, err := expectVersionComponent(c, "patch")
	if err != nil {
		return SemVer{}, err
	}

	prerelease := []Identifier{}
	if c.peekAndThen(isPrereleaseStart) {
		c.advance()
		prerelease, err = expectIdentifiers(c, "pre-release")
		if err != nil {
			return SemVer{}, err
		}
	}

	build := []Identifier{}
	if c.peekAndThen(isBuildStart) {
		c.advance()
		build, err = expectIdentifiers(c, "build")
		if err != nil {
			return SemVer{}, err
		}
	}

	if !c.atEnd() {
		return SemVer{}, newParseError(c.offset, "Unexpected character at offset %d", c.offset)
	}

	return SemVer{
		Major:                 major,
		Minor:                 minor,
		Patch:                 patch,
		PrereleaseIdentifiers: prerelease,
		BuildIdentifiers:      build,
	}, nil
}

// ParseValue parses a value expected to hold a version string. Non-string
// input fails with an error wrapping ErrNotString, never a *ParseError, so
// callers handling untyped data (decoded JSON, reflection) can keep
// programmer errors distinguishable from malformed versions.
func ParseValue(v any, opts ...ParseOption) (SemVer, error) {
	s, ok := v.(string)
	if !ok {
		return SemVer{}, fmt.Errorf("%w, got %T", ErrNotString, v)
	}
	return Parse(s, opts...)
}

// MustParse parses s and panics if parsing fails. This is useful for
// initializing package-level values or test data where the version string is
// known to be valid at compile time.
//
// Only use this for hardcoded strings or in tests. For user input or runtime
// data, always use Parse and handle errors explicitly.
func MustParse(s string) SemVer {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// cursor walks the input one UTF-16 code unit at a time. The offset may point
// just past the last unit; that position is valid and is what end-of-input
// diagnostics report.
type cursor struct {
	units  []uint16
	offset int
}

// peek returns the code unit at the current offset without consuming it.
func (c *cursor) peek() (rune, bool) {
	if c.offset < len(c.units) {
		return rune(c.units[c.offset]), true
	}
	return 0, false
}

// peekAndThen applies f to the peeked code unit, or reports false at end of
// input. Look-ahead decisions go through here so nothing is consumed.
func (c *cursor) peekAndThen(f func(rune) bool) bool {
	u, ok := c.peek()
	if !ok {
		return false
	}
	return f(u)
}

// advance consumes and returns the code unit at the current offset. Grammar
// rules check peek or peekAndThen first, so running past the end is an
// internal invariant violation.
func (c *cursor) advance() rune {
	u, ok := c.peek()
	if !ok {
		panic("semver: advanced beyond input")
	}
	c.offset++
	return u
}

func (c *cursor) atEnd() bool {
	return c.offset == len(c.units)
}

// peekChar decodes the full character at the cursor, combining a surrogate
// pair into one rune. Only used to classify and quote characters that are
// never consumed.
func (c *cursor) peekChar() (rune, bool) {
	u, ok := c.peek()
	if !ok {
		return 0, false
	}
	if utf16.IsSurrogate(u) && c.offset+1 < len(c.units) {
		if r := utf16.DecodeRune(u, rune(c.units[c.offset+1])); r != utf8.RuneError {
			return r, true
		}
	}
	return u, true
}

// expectVersionComponent consumes one numeric component of the version core.
// The component must start with a digit and must not have a redundant leading
// zero. Digits are consumed greedily.
func expectVersionComponent(c *cursor, name string) (uint64, error) {
	if !c.peekAndThen(isDigit) {
		return 0, newParseError(c.offset, "Expected %s version number at offset %d", name, c.offset)
	}

	start := c.offset
	first := c.advance()

	if first == '0' && c.peekAndThen(isDigit) {
		return 0, newParseError(c.offset, "Unexpected digit at offset %d, numbers cannot start with zero", c.offset)
	}

	var digits strings.Builder
	digits.WriteByte(byte(first))
	for c.peekAndThen(isDigit) {
		digits.WriteByte(byte(c.advance()))
	}

	n, err := strconv.ParseUint(digits.String(), 10, 64)
	if err != nil {
		// The grammar has no numeric bound, only the input length limit. A
		// digit run that fits the limit can still overflow uint64.
		return 0, newParseError(start, "Number too large at offset %d, value must fit in 64 bits", start)
	}
	return n, nil
}

// expectDelimiter consumes the "." between version core components.
func expectDelimiter(c *cursor) error {
	if !c.peekAndThen(isDot) {
		return newParseError(c.offset, "Expected delimiter at offset %d", c.offset)
	}
	c.advance()
	return nil
}

// expectIdentifiers consumes a non-empty dot-separated identifier list. The
// name parameter ("pre-release" or "build") only tags diagnostics; both
// sections share one rule.
func expectIdentifiers(c *cursor, name string) ([]Identifier, error) {
	var identifiers []Identifier

	for {
		ok, err := nextIsAlphanumeric(c)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, newParseError(c.offset, "Expected %s identifier at offset %d", name, c.offset)
		}

		var current strings.Builder
		current.WriteByte(byte(c.advance()))
		for {
			ok, err := nextIsAlphanumeric(c)
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
			current.WriteByte(byte(c.advance()))
		}
		identifiers = append(identifiers, trustedIdentifier(current.String()))

		if !c.peekAndThen(isDot) {
			break
		}
		c.advance()
	}

	return identifiers, nil
}

// nextIsAlphanumeric reports whether the character at the cursor can extend
// the current identifier. An alphanumeric character outside the latin block
// is rejected outright rather than ending the identifier, so the mistake is
// reported at the character instead of surfacing as a confusing delimiter
// error later.
func nextIsAlphanumeric(c *cursor) (bool, error) {
	u, ok := c.peek()
	if !ok {
		return false, nil
	}
	if isLatinAlphanumeric(u) {
		return true, nil
	}
	if r, ok := c.peekChar(); ok && isUnicodeAlphanumeric(r) {
		return false, newParseError(c.offset,
			"Unexpected alphanumeric character %q at offset %d (SemVer is latin alphabet only)",
			string(r), c.offset)
	}
	return false, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isDot(r rune) bool {
	return r == '.'
}

func isPrereleaseStart(r rune) bool {
	return r == '-'
}

func isBuildStart(r rune) bool {
	return r == '+'
}

func isLatinAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// isUnicodeAlphanumeric matches the letter and number general categories
// (Lu, Ll, Lt, Lm, Lo, Nd, Nl, No) from Unicode TR44.
func isUnicodeAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
