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
	"errors"
	"fmt"
)

// ErrNotString reports that a value handed to ParseValue was not a string.
// It marks programmer misuse rather than malformed data; retrying with the
// same input can never succeed.
var ErrNotString = errors.New("input must be a string")

// ParseError describes a grammar, limit, or alphabet violation found while
// parsing a version string. The message text is part of the package contract
// and identifies the failing rule; Offset is the position of the first
// problematic code unit, or -1 when the failure is not tied to a position
// (the input length limit and identifier construction).
type ParseError struct {
	Offset int

	msg string
}

// Error returns the diagnostic message.
func (e *ParseError) Error() string {
	return e.msg
}

func newParseError(offset int, format string, args ...any) *ParseError {
	return &ParseError{
		Offset: offset,
		msg:    fmt.Sprintf(format, args...),
	}
}
