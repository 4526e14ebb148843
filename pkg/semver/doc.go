// Package semver provides strict SemVer 2.0 parsing with offset-annotated
// diagnostics.
//
// # Overview
//
// This package implements the full SemVer 2.0 grammar (semver.org):
//
//	<valid semver> ::= <version core>
//	                 | <version core> "-" <pre-release>
//	                 | <version core> "+" <build>
//	                 | <version core> "-" <pre-release> "+" <build>
//
// The parser is intentionally strict. It accepts nothing the grammar does not
// name: no "v" prefix, no surrounding whitespace, no partial versions, and no
// alphanumeric characters outside the latin block. Every rejection carries the
// offset of the first problematic position, measured in UTF-16 code units so
// diagnostics line up across implementations regardless of how the host
// language indexes strings.
//
// # Usage
//
// Parse a version string:
//
//	v, err := semver.Parse("1.0.0-alpha.1+build.5")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: 1.0.0-alpha.1+build.5
//
// Inspect a failure:
//
//	_, err := semver.Parse("01.0.0")
//	var perr *semver.ParseError
//	if errors.As(err, &perr) {
//	    fmt.Println(perr.Offset) // Output: 1
//	}
//
// For constant initialization, use MustParse which panics on error:
//
//	var minSupported = semver.MustParse("1.2.0")
//
// # Error Handling
//
// Two disjoint failure kinds exist and never mix:
//
//   - ErrNotString: the input to ParseValue was not a string. This signals
//     programmer misuse, not malformed data.
//   - ParseError: the input is a string but violates the grammar, the length
//     limit, or the leading-zero/alphabet constraints.
//
// Errors are never wrapped or translated inside the package; a failure aborts
// the parse immediately and propagates to the caller verbatim.
//
// # Limits
//
// Input longer than MaxVersionStringCodeUnits fails with "Limit exceeded"
// before any character is inspected. The bound exists to catch bugs and to
// discourage denial of service when the version comes from an untrusted
// stream.
//
// # Concurrency
//
// Parsing holds no shared state. All functions are safe for concurrent use.
package semver
