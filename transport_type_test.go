// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package servicebus_test

import (
	"testing"

	servicebus "github.com/Azure/servicebus-connections-go"
	"github.com/stretchr/testify/require"
)

func TestParseTransportType(t *testing.T) {
	tests := []struct {
		input    string
		expected servicebus.TransportType
		invalid  bool
	}{
		{input: "Amqp", expected: servicebus.TransportTypeAmqp},
		{input: "amqp", expected: servicebus.TransportTypeAmqp},
		{input: "AMQP", expected: servicebus.TransportTypeAmqp},
		{
			input:    "AmqpWebSockets",
			expected: servicebus.TransportTypeAmqpWebSockets,
		},
		{
			input:    "amqpwebsockets",
			expected: servicebus.TransportTypeAmqpWebSockets,
		},
		{input: "NotARealValue", invalid: true},
		{input: "", invalid: true},
	}

	for _, test := range tests {
		parsed, err := servicebus.ParseTransportType(test.input)
		if test.invalid {
			require.Error(t, err, "input: %s", test.input)
		} else {
			require.NoError(t, err, "input: %s", test.input)
			require.Equal(t, test.expected, parsed, "input: %s", test.input)
		}
	}
}

func TestTransportTypeString(t *testing.T) {
	require.Equal(t, "Amqp", servicebus.TransportTypeAmqp.String())
	require.Equal(
		t,
		"AmqpWebSockets",
		servicebus.TransportTypeAmqpWebSockets.String(),
	)
}
