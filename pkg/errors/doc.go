// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidVersion,
//	    "failed to parse version",
//	    parseErr,
//	    map[string]interface{}{
//	        "input": input,
//	        "offset": parseErr.Offset,
//	    },
//	)
package errors
