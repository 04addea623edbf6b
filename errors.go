// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package servicebus

import "fmt"

// InvalidArgumentError indicates that the user has provided an invalid value
// for a connection-string field or filter expression. It may wrap an
// underlying error using Go standard error wrapping.
type InvalidArgumentError struct {
	wrapped error
	message string
}

func (e *InvalidArgumentError) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.message, e.wrapped)
	}
	return e.message
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.wrapped
}

// MalformedSegmentError indicates that a connection-string segment could not
// be split into a key and a value.
type MalformedSegmentError struct {
	Segment string
}

func (e *MalformedSegmentError) Error() string {
	return fmt.Sprintf(
		"connection string segment %q does not contain '='",
		e.Segment,
	)
}
