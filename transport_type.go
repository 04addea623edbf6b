// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package servicebus

import "strings"

// TransportType selects the wire transport used to reach the namespace.
type TransportType byte

const (
	// AMQP over TCP. This is the default transport.
	TransportTypeAmqp TransportType = iota

	// AMQP over WebSockets, for environments where the AMQP ports are
	// blocked.
	TransportTypeAmqpWebSockets
)

// String returns the textual form used in the TransportType= pair of a
// connection string.
func (t TransportType) String() string {
	switch t {
	case TransportTypeAmqp:
		return "Amqp"
	case TransportTypeAmqpWebSockets:
		return "AmqpWebSockets"
	default:
		// It should not be possible to get here.
		return ""
	}
}

// ParseTransportType parses the textual form of a transport type. Names are
// matched case-insensitively.
func ParseTransportType(s string) (TransportType, error) {
	switch {
	case strings.EqualFold(s, TransportTypeAmqp.String()):
		return TransportTypeAmqp, nil
	case strings.EqualFold(s, TransportTypeAmqpWebSockets.String()):
		return TransportTypeAmqpWebSockets, nil
	default:
		return TransportTypeAmqp, &InvalidArgumentError{
			message: "unknown transport type " + s,
		}
	}
}
