// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package servicebus_test

import (
	"strings"
	"testing"

	servicebus "github.com/Azure/servicebus-connections-go"
	"github.com/stretchr/testify/require"
)

func TestNewFilter(t *testing.T) {
	filter, err := servicebus.NewFilter("  sys.Label = 'important'  ")
	require.NoError(t, err)
	require.Equal(t, "sys.Label = 'important'", filter.Expression())

	filter.Parameters().Set("@label", "important")
	value, ok := filter.Parameters().Get("@label")
	require.True(t, ok)
	require.Equal(t, "important", value)
}

func TestNewFilterEmptyExpression(t *testing.T) {
	var invalid *servicebus.InvalidArgumentError

	_, err := servicebus.NewFilter("")
	require.ErrorAs(t, err, &invalid)

	_, err = servicebus.NewFilter("   ")
	require.ErrorAs(t, err, &invalid)
}

func TestNewFilterExpressionLength(t *testing.T) {
	atLimit := strings.Repeat("x", 1024)
	_, err := servicebus.NewFilter(atLimit)
	require.NoError(t, err)

	overLimit := strings.Repeat("x", 1025)
	var invalid *servicebus.InvalidArgumentError
	_, err = servicebus.NewFilter(overLimit)
	require.ErrorAs(t, err, &invalid)
}
