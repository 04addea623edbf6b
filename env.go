// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package servicebus

import (
	"os"
	"strings"
)

// ConnectionStringFromEnv builds a connection string from well-known
// environment variables. SERVICEBUS_CONNECTION_STRING supplies the textual
// form; SERVICEBUS_ENTITY_PATH and SERVICEBUS_TRANSPORT_TYPE, when present,
// override the values carried in the string. Note that this returns
// (nil, nil) when no connection string is configured, so callers can treat
// environment configuration as optional.
//
// Unlike the in-string parse, an unknown transport name from the environment
// is an error; it is explicit configuration rather than a forward-compatible
// extension field.
func ConnectionStringFromEnv() (*ConnectionString, error) {
	var connStr, entityPath, transport string
	var haveConnStr, haveEntityPath, haveTransport bool

	for _, env := range os.Environ() {
		idx := strings.IndexByte(env, '=')
		key := env[:idx]
		val := env[idx+1:]
		switch key {
		case "SERVICEBUS_CONNECTION_STRING":
			connStr = val
			haveConnStr = true

		case "SERVICEBUS_ENTITY_PATH":
			entityPath = val
			haveEntityPath = true

		case "SERVICEBUS_TRANSPORT_TYPE":
			transport = val
			haveTransport = true
		}
	}

	if !haveConnStr {
		return nil, nil
	}

	cs, err := ParseConnectionString(connStr)
	if err != nil {
		return nil, err
	}

	if haveEntityPath {
		cs.SetEntityPath(entityPath)
	}

	if haveTransport {
		t, err := ParseTransportType(transport)
		if err != nil {
			return nil, &InvalidArgumentError{
				message: "could not parse transport type from environment",
				wrapped: err,
			}
		}
		cs.SetTransportType(t)
	}

	return cs, nil
}
