// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package internal

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Scheme used when the endpoint is given as a bare host name.
const defaultEndpointScheme = "amqps"

// NormalizeEndpoint canonicalizes an endpoint value to "scheme://host". The
// input may be a bare host name, in which case the default scheme is used, or
// a full URI, in which case its scheme is kept and any path, query, or
// fragment is discarded. The host must be fully qualified (contain at least
// one dot). NormalizeEndpoint is idempotent on its own output.
func NormalizeEndpoint(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.New("endpoint must not be empty")
	}
	if !strings.Contains(trimmed, ".") {
		return "", fmt.Errorf(
			"endpoint %q is not a fully qualified host name",
			trimmed,
		)
	}

	scheme := defaultEndpointScheme
	host := trimmed
	if strings.Contains(trimmed, "://") {
		u, err := url.Parse(trimmed)
		if err != nil {
			return "", fmt.Errorf("endpoint %q is not a valid URI: %w",
				trimmed, err)
		}
		scheme = u.Scheme
		host = u.Host
	}
	if host == "" {
		return "", fmt.Errorf("endpoint %q has no host", trimmed)
	}

	return scheme + "://" + host, nil
}

// NormalizeField trims surrounding whitespace from a scalar field value so
// that no field is ever stored with whitespace padding.
func NormalizeField(raw string) string {
	return strings.TrimSpace(raw)
}
