package semver

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected SemVer
	}{
		{
			name:     "all zeros",
			input:    "0.0.0",
			expected: SemVer{Major: 0, Minor: 0, Patch: 0},
		},
		{
			name:     "major only set",
			input:    "1.0.0",
			expected: SemVer{Major: 1, Minor: 0, Patch: 0},
		},
		{
			name:     "minor only set",
			input:    "0.1.0",
			expected: SemVer{Major: 0, Minor: 1, Patch: 0},
		},
		{
			name:     "patch only set",
			input:    "0.0.1",
			expected: SemVer{Major: 0, Minor: 0, Patch: 1},
		},
		{
			name:     "multi digit components",
			input:    "200.3000.40000",
			expected: SemVer{Major: 200, Minor: 3000, Patch: 40000},
		},
		{
			name:  "single prerelease identifier",
			input: "1.0.0-123",
			expected: SemVer{
				Major:                 1,
				PrereleaseIdentifiers: identifiers(t, "123"),
			},
		},
		{
			name:  "multiple prerelease identifiers",
			input: "1.0.0-123.abc123",
			expected: SemVer{
				Major:                 1,
				PrereleaseIdentifiers: identifiers(t, "123", "abc123"),
			},
		},
		{
			name:  "single build identifier",
			input: "1.0.0+456",
			expected: SemVer{
				Major:            1,
				BuildIdentifiers: identifiers(t, "456"),
			},
		},
		{
			name:  "multiple build identifiers",
			input: "1.0.0+456.def456",
			expected: SemVer{
				Major:            1,
				BuildIdentifiers: identifiers(t, "456", "def456"),
			},
		},
		{
			name:  "prerelease and build",
			input: "1.0.0-123.abc123+456.def456",
			expected: SemVer{
				Major:                 1,
				PrereleaseIdentifiers: identifiers(t, "123", "abc123"),
				BuildIdentifiers:      identifiers(t, "456", "def456"),
			},
		},
		{
			name:  "zero prerelease identifier",
			input: "1.0.0-0",
			expected: SemVer{
				Major:                 1,
				PrereleaseIdentifiers: identifiers(t, "0"),
			},
		},
		{
			name:  "max uint64 components",
			input: "18446744073709551615.18446744073709551615.18446744073709551615",
			expected: SemVer{
				Major: 18446744073709551615,
				Minor: 18446744073709551615,
				Patch: 18446744073709551615,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !result.Equals(tt.expected) {
				t.Errorf("got %+v, want %+v", result, tt.expected)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
		offset  int
	}{
		{
			name:    "empty string",
			input:   "",
			message: "Expected major version number at offset 0",
			offset:  0,
		},
		{
			name:    "letter instead of major",
			input:   "a",
			message: "Expected major version number at offset 0",
			offset:  0,
		},
		{
			name:    "dot instead of major",
			input:   ".",
			message: "Expected major version number at offset 0",
			offset:  0,
		},
		{
			name:    "missing first delimiter",
			input:   "1",
			message: "Expected delimiter at offset 1",
			offset:  1,
		},
		{
			name:    "missing minor",
			input:   "1.",
			message: "Expected minor version number at offset 2",
			offset:  2,
		},
		{
			name:    "missing second delimiter",
			input:   "1.1",
			message: "Expected delimiter at offset 3",
			offset:  3,
		},
		{
			name:    "missing patch",
			input:   "1.1.",
			message: "Expected patch version number at offset 4",
			offset:  4,
		},
		{
			name:    "empty prerelease section",
			input:   "1.1.1-",
			message: "Expected pre-release identifier at offset 6",
			offset:  6,
		},
		{
			name:    "trailing dot in prerelease",
			input:   "1.1.1-a.",
			message: "Expected pre-release identifier at offset 8",
			offset:  8,
		},
		{
			name:    "empty build section",
			input:   "1.1.1+",
			message: "Expected build identifier at offset 6",
			offset:  6,
		},
		{
			name:    "trailing dot in build",
			input:   "1.1.1+a.",
			message: "Expected build identifier at offset 8",
			offset:  8,
		},
		{
			name:    "empty build after prerelease",
			input:   "1.1.1-a+",
			message: "Expected build identifier at offset 8",
			offset:  8,
		},
		{
			name:    "trailing dot in build after prerelease",
			input:   "1.1.1-a+b.",
			message: "Expected build identifier at offset 10",
			offset:  10,
		},
		{
			name:    "trailing space",
			input:   "1.1.1-a+b.c ",
			message: "Unexpected character at offset 11",
			offset:  11,
		},
		{
			name:    "leading zero in major",
			input:   "01.0.0",
			message: "Unexpected digit at offset 1, numbers cannot start with zero",
			offset:  1,
		},
		{
			name:    "leading zero in minor",
			input:   "0.01.0",
			message: "Unexpected digit at offset 3, numbers cannot start with zero",
			offset:  3,
		},
		{
			name:    "leading zero in patch",
			input:   "0.0.01",
			message: "Unexpected digit at offset 5, numbers cannot start with zero",
			offset:  5,
		},
		{
			name:    "non-latin letter in prerelease",
			input:   "1.0.0-123.abcঅ",
			message: "Unexpected alphanumeric character \"অ\" at offset 13 (SemVer is latin alphabet only)",
			offset:  13,
		},
		{
			name:    "non-latin digit in prerelease",
			input:   "1.0.0-a৩",
			message: "Unexpected alphanumeric character \"৩\" at offset 7 (SemVer is latin alphabet only)",
			offset:  7,
		},
		{
			name:    "prerelease marker after build section",
			input:   "1.0.0+b-p",
			message: "Unexpected character at offset 7",
			offset:  7,
		},
		{
			name:    "hyphen inside prerelease identifier",
			input:   "1.0.0-a-b",
			message: "Unexpected character at offset 7",
			offset:  7,
		},
		{
			name:    "major too large for uint64",
			input:   "18446744073709551616.0.0",
			message: "Number too large at offset 0, value must fit in 64 bits",
			offset:  0,
		},
		{
			name:    "minor too large for uint64",
			input:   "0.18446744073709551616.0",
			message: "Number too large at offset 2, value must fit in 64 bits",
			offset:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if err.Error() != tt.message {
				t.Errorf("message: got %q, want %q", err.Error(), tt.message)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if perr.Offset != tt.offset {
				t.Errorf("Offset: got %d, want %d", perr.Offset, tt.offset)
			}
			if errors.Is(err, ErrNotString) {
				t.Error("parse error must not match ErrNotString")
			}
		})
	}
}

func TestParseOffsetsCountCodeUnits(t *testing.T) {
	// The fraktur letter sits outside the Basic Multilingual Plane and
	// occupies two UTF-16 units, so everything after it shifts by two.
	tests := []struct {
		name    string
		input   string
		message string
		offset  int
	}{
		{
			name:    "non-BMP letter rejected at its first unit",
			input:   "1.0.0-a\U0001d51e",
			message: "Unexpected alphanumeric character \"\U0001d51e\" at offset 7 (SemVer is latin alphabet only)",
			offset:  7,
		},
		{
			name:    "cuneiform sign rejected as identifier start",
			input:   "1.0.0-\U00012000",
			message: "Unexpected alphanumeric character \"\U00012000\" at offset 6 (SemVer is latin alphabet only)",
			offset:  6,
		},
		{
			name:    "non-alphanumeric symbol ends the version",
			input:   "1.0.0-a\U0001f4a5",
			message: "Unexpected character at offset 7",
			offset:  7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if err.Error() != tt.message {
				t.Errorf("message: got %q, want %q", err.Error(), tt.message)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if perr.Offset != tt.offset {
				t.Errorf("Offset: got %d, want %d", perr.Offset, tt.offset)
			}
		})
	}
}

func TestParseInputTooLong(t *testing.T) {
	// The cuneiform sign takes two UTF-16 units and four UTF-8 bytes, which
	// catches a limit that counts bytes or codepoints instead of units.
	const cuneiformSignA = "\U00012000"

	tooLong := strings.Repeat(cuneiformSignA, MaxVersionStringCodeUnits+1)
	_, err := Parse(tooLong)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "Limit exceeded") {
		t.Errorf("got %q, want a limit error", err.Error())
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Offset != -1 {
		t.Errorf("Offset: got %d, want -1", perr.Offset)
	}
}

func TestParseLimitBoundary(t *testing.T) {
	// Exactly at the limit the parser must still run the grammar.
	atLimit := "1.0.0-" + strings.Repeat("a", MaxVersionStringCodeUnits-6)
	if _, err := Parse(atLimit); err != nil {
		t.Errorf("input at the limit failed: %v", err)
	}

	overLimit := strings.Repeat("a", MaxVersionStringCodeUnits+1)
	_, err := Parse(overLimit)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "Limit exceeded") {
		t.Errorf("got %q, want a limit error", err.Error())
	}
}

func TestParseValue(t *testing.T) {
	for _, input := range []any{nil, 123, []int{1, 2, 3}} {
		_, err := ParseValue(input)
		if err == nil {
			t.Errorf("ParseValue(%v) did not fail", input)
			continue
		}
		if !errors.Is(err, ErrNotString) {
			t.Errorf("ParseValue(%v): got %v, want ErrNotString", input, err)
		}
		var perr *ParseError
		if errors.As(err, &perr) {
			t.Errorf("ParseValue(%v) returned a parse error, want a type error", input)
		}
	}

	v, err := ParseValue("1.2.3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Major != 1 || v.Minor != 2 || v.Patch != 3 {
		t.Errorf("got %+v, want 1.2.3", v)
	}

	// A malformed string is a parse error, never a type error.
	_, err = ParseValue("not-a-version")
	if errors.Is(err, ErrNotString) {
		t.Errorf("got type error for string input: %v", err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("expected *ParseError, got %T", err)
	}
}

func TestParseEmptyIdentifierLists(t *testing.T) {
	v, err := Parse("1.2.3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.PrereleaseIdentifiers == nil {
		t.Error("PrereleaseIdentifiers is nil, want empty slice")
	}
	if v.BuildIdentifiers == nil {
		t.Error("BuildIdentifiers is nil, want empty slice")
	}
}

func TestParseRoundTrip(t *testing.T) {
	tests := []string{
		"0.0.0",
		"1.2.3",
		"200.3000.40000",
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0+20130313144700",
		"1.0.0-beta+exp.sha.5114f85",
		"1.0.0-123.abc123+456.def456",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			v, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if v.String() != input {
				t.Errorf("String: got %q, want %q", v.String(), input)
			}
			v2, err := Parse(v.String())
			if err != nil {
				t.Fatalf("round-trip parse failed: %v", err)
			}
			if !v.Equals(v2) {
				t.Errorf("round-trip mismatch: %+v != %+v", v, v2)
			}
		})
	}
}

func TestParseIdempotence(t *testing.T) {
	const input = "1.0.0-123.abc123+456.def456"

	first, err := Parse(input)
	if err != nil {
		t.Fatalf("first parse failed: %v", err)
	}
	second, err := Parse(input)
	if err != nil {
		t.Fatalf("second parse failed: %v", err)
	}
	if !first.Equals(second) {
		t.Errorf("parses of the same input differ: %+v != %+v", first, second)
	}
}

func TestMustParse(t *testing.T) {
	// Should not panic on valid input
	v := MustParse("1.2.3")
	if v.Major != 1 || v.Minor != 2 || v.Patch != 3 {
		t.Errorf("MustParse failed: got %+v", v)
	}

	// Should panic on invalid input
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse did not panic on invalid input")
		}
	}()
	MustParse("invalid")
}

func TestCursorAdvancePastEnd(t *testing.T) {
	c := &cursor{}
	defer func() {
		if r := recover(); r == nil {
			t.Error("advance past end did not panic")
		}
	}()
	c.advance()
}

// identifiers builds an identifier list for expected values.
func identifiers(t *testing.T, values ...string) []Identifier {
	t.Helper()
	ids := make([]Identifier, 0, len(values))
	for _, v := range values {
		id, err := NewIdentifier(v)
		if err != nil {
			t.Fatalf("NewIdentifier(%q) failed: %v", v, err)
		}
		ids = append(ids, id)
	}
	return ids
}

// ExampleParse demonstrates parsing a full version string
func ExampleParse() {
	v, _ := Parse("1.0.0-alpha.1+build.5")
	fmt.Println(v.Major, v.Minor, v.Patch)
	fmt.Println(v.PrereleaseIdentifiers[0])
	fmt.Println(v.String())
	// Output:
	// 1 0 0
	// alpha
	// 1.0.0-alpha.1+build.5
}

// ExampleParse_error demonstrates the offset-annotated diagnostics
func ExampleParse_error() {
	_, err := Parse("01.0.0")
	fmt.Println(err)

	var perr *ParseError
	errors.As(err, &perr)
	fmt.Println(perr.Offset)
	// Output:
	// Unexpected digit at offset 1, numbers cannot start with zero
	// 1
}

// ExampleMustParse demonstrates initializing package-level values
func ExampleMustParse() {
	v := MustParse("2.1.0")
	fmt.Println(v.String())
	// Output:
	// 2.1.0
}
