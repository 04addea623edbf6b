// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package servicebus

import (
	"fmt"
	"unicode/utf8"

	"github.com/Azure/servicebus-connections-go/internal"
)

// Maximum length of a filter expression, in characters.
const maxFilterExpressionLength = 1024

// Filter holds a subscription filter expression together with its named
// parameters. The expression is validated for presence and length only; it
// is not parsed or evaluated here, the service does that.
type Filter struct {
	expression string
	parameters Properties
}

// NewFilter validates and stores a filter expression. The expression is
// trimmed, must be non-empty, and must not exceed 1024 characters.
func NewFilter(expression string) (*Filter, error) {
	trimmed := internal.NormalizeField(expression)
	if trimmed == "" {
		return nil, &InvalidArgumentError{
			message: "filter expression must not be empty",
		}
	}
	if utf8.RuneCountInString(trimmed) > maxFilterExpressionLength {
		return nil, &InvalidArgumentError{
			message: fmt.Sprintf(
				"filter expression cannot be more than %d characters",
				maxFilterExpressionLength,
			),
		}
	}
	return &Filter{expression: trimmed}, nil
}

// Expression returns the validated filter expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Parameters returns the named-parameter bag for the expression.
func (f *Filter) Parameters() *Properties {
	return &f.parameters
}
