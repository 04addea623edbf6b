// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package internal_test

import (
	"testing"

	"github.com/Azure/servicebus-connections-go/internal"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		invalid  bool
	}{
		{
			input:    "contoso.servicebus.windows.net",
			expected: "amqps://contoso.servicebus.windows.net",
		},
		{
			input:    "sb://contoso.servicebus.windows.net",
			expected: "sb://contoso.servicebus.windows.net",
		},
		{
			input:    "  contoso.servicebus.windows.net  ",
			expected: "amqps://contoso.servicebus.windows.net",
		},
		{
			input:    "https://contoso.servicebus.windows.net/path?query#f",
			expected: "https://contoso.servicebus.windows.net",
		},
		{
			input:    "sb://Contoso.ServiceBus.Windows.Net",
			expected: "sb://Contoso.ServiceBus.Windows.Net",
		},
		{input: "", invalid: true},
		{input: "   ", invalid: true},
		{input: "localhost", invalid: true},
		{input: "sb://localhost", invalid: true},
	}

	for _, test := range tests {
		endpoint, err := internal.NormalizeEndpoint(test.input)
		if test.invalid {
			require.Error(t, err, "input: %q", test.input)
		} else {
			require.NoError(t, err, "input: %q", test.input)
			require.Equal(
				t,
				test.expected,
				endpoint,
				"input: %q",
				test.input,
			)
		}
	}
}

// Normalization is a fixed point on its own output.
func TestNormalizeEndpointIdempotent(t *testing.T) {
	inputs := []string{
		"contoso.servicebus.windows.net",
		"sb://contoso.servicebus.windows.net",
		"https://contoso.servicebus.windows.net/path",
	}

	for _, input := range inputs {
		once, err := internal.NormalizeEndpoint(input)
		require.NoError(t, err)
		twice, err := internal.NormalizeEndpoint(once)
		require.NoError(t, err)
		require.Equal(t, once, twice, "input: %q", input)
	}
}

func TestNormalizeField(t *testing.T) {
	require.Equal(t, "value", internal.NormalizeField("  value  "))
	require.Equal(t, "value", internal.NormalizeField("value"))
	require.Equal(t, "", internal.NormalizeField("   "))
	require.Equal(t, "a = b", internal.NormalizeField(" a = b "))
}
