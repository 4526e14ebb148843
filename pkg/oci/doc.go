// Package oci parses container image references and extracts the semantic
// version encoded in their tags.
//
// References are resolved with the distribution/reference library, so short
// names follow the Docker normalization rules ("redis:7.2.4" resolves to
// "docker.io/library/redis:7.2.4"). Tags are parsed with the strict semver
// parser after stripping a single leading "v", matching the common registry
// convention of tagging releases as "v1.2.3".
//
// # Core Types
//
//   - Reference: Parsed image reference (registry, repository, tag, digest)
//
// # Usage
//
// Parse a reference and read the version from its tag:
//
//	ref, err := oci.ParseReference("nvcr.io/nvidia/cuda:12.4.1")
//	if err != nil {
//	    return err
//	}
//	v, err := ref.Version()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(v.Major, v.Minor, v.Patch) // 12 4 1
//
// Or in one step:
//
//	v, err := oci.TagVersion("ghcr.io/org/app:v2.0.0-rc.1")
//
// # Error Handling
//
// Malformed references return INVALID_REQUEST errors, as do references
// without a tag. Tags that are not strict semantic versions return
// INVALID_VERSION errors wrapping the parser diagnostic, offset included.
package oci
