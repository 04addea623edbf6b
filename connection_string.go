// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package servicebus

import (
	"strings"

	"github.com/Azure/servicebus-connections-go/internal"
)

// Recognized connection-string keys. All other keys are routed to the
// extension-property bag.
const (
	endpointKey            = "Endpoint"
	sharedAccessKeyNameKey = "SharedAccessKeyName"
	sharedAccessKeyKey     = "SharedAccessKey"
	entityPathKey          = "EntityPath"
	transportTypeKey       = "TransportType"
)

// ConnectionString describes how a client connects to a messaging namespace.
// Fields are normalized when assigned, so a record built field-by-field and a
// record produced by ParseConnectionString hold identical values for the same
// logical input.
//
// A ConnectionString is not safe for concurrent mutation; concurrent reads
// are fine.
type ConnectionString struct {
	endpoint            string
	sharedAccessKeyName string
	sharedAccessKey     string
	entityPath          string
	transportType       TransportType
	properties          Properties
}

// Dispatch from lower-cased recognized key to the corresponding setter.
// Matching via this table keeps key routing case-insensitive with
// last-write-wins behavior on duplicates.
var fieldSetters = map[string]func(*ConnectionString, string) error{
	strings.ToLower(endpointKey): (*ConnectionString).SetEndpoint,
	strings.ToLower(sharedAccessKeyNameKey): func(
		cs *ConnectionString,
		value string,
	) error {
		cs.SetSharedAccessKeyName(value)
		return nil
	},
	strings.ToLower(sharedAccessKeyKey): func(
		cs *ConnectionString,
		value string,
	) error {
		cs.SetSharedAccessKey(value)
		return nil
	},
	strings.ToLower(entityPathKey): func(
		cs *ConnectionString,
		value string,
	) error {
		cs.SetEntityPath(value)
		return nil
	},
	strings.ToLower(transportTypeKey): func(
		cs *ConnectionString,
		value string,
	) error {
		// An unknown transport name is ignored rather than failing the
		// parse, so newer transport values do not break older consumers.
		if t, err := ParseTransportType(value); err == nil {
			cs.SetTransportType(t)
		}
		return nil
	},
}

// ParseConnectionString parses the textual connection-string form, e.g.
//
//	Endpoint=sb://contoso.servicebus.windows.net;SharedAccessKeyName=key;SharedAccessKey=secret;EntityPath=queue
//
// Empty segments are skipped, so stray or doubled semicolons are tolerated.
// Each segment is split on its first '=' only; values are free to contain
// '='. A segment with no '=' fails with MalformedSegmentError, and an
// invalid Endpoint value fails with InvalidArgumentError; in either case no
// partial record is returned.
func ParseConnectionString(connStr string) (*ConnectionString, error) {
	cs := &ConnectionString{}
	for _, segment := range strings.Split(connStr, ";") {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		idx := strings.IndexByte(segment, '=')
		if idx < 0 {
			return nil, &MalformedSegmentError{
				Segment: strings.TrimSpace(segment),
			}
		}
		key := strings.TrimSpace(segment[:idx])
		value := strings.TrimSpace(segment[idx+1:])
		if set, ok := fieldSetters[strings.ToLower(key)]; ok {
			if err := set(cs, value); err != nil {
				return nil, err
			}
		} else {
			cs.properties.Set(key, value)
		}
	}
	return cs, nil
}

// SetEndpoint canonicalizes and stores the namespace endpoint. The value may
// be a bare fully-qualified host name, which gets the default amqps scheme,
// or a URI, whose scheme is kept. It returns an InvalidArgumentError when the
// value is empty or does not look like a fully qualified host.
func (cs *ConnectionString) SetEndpoint(raw string) error {
	endpoint, err := internal.NormalizeEndpoint(raw)
	if err != nil {
		return &InvalidArgumentError{
			message: "invalid endpoint",
			wrapped: err,
		}
	}
	cs.endpoint = endpoint
	return nil
}

// Endpoint returns the canonical "scheme://host" endpoint, or the empty
// string when unset.
func (cs *ConnectionString) Endpoint() string {
	return cs.endpoint
}

// SetSharedAccessKeyName stores the credential name, trimmed.
func (cs *ConnectionString) SetSharedAccessKeyName(name string) {
	cs.sharedAccessKeyName = internal.NormalizeField(name)
}

// SharedAccessKeyName returns the credential name.
func (cs *ConnectionString) SharedAccessKeyName() string {
	return cs.sharedAccessKeyName
}

// SetSharedAccessKey stores the credential key, trimmed.
func (cs *ConnectionString) SetSharedAccessKey(key string) {
	cs.sharedAccessKey = internal.NormalizeField(key)
}

// SharedAccessKey returns the credential key.
func (cs *ConnectionString) SharedAccessKey() string {
	return cs.sharedAccessKey
}

// SetEntityPath stores the entity path, trimmed.
func (cs *ConnectionString) SetEntityPath(path string) {
	cs.entityPath = internal.NormalizeField(path)
}

// EntityPath returns the entity path.
func (cs *ConnectionString) EntityPath() string {
	return cs.entityPath
}

// SetTransportType selects the wire transport.
func (cs *ConnectionString) SetTransportType(t TransportType) {
	cs.transportType = t
}

// TransportType returns the selected wire transport.
func (cs *ConnectionString) TransportType() TransportType {
	return cs.transportType
}

// Properties returns the extension-property bag holding every parsed key
// that is not one of the five recognized names. The bag is never emitted by
// serialization.
func (cs *ConnectionString) Properties() *Properties {
	return &cs.properties
}

// namespacePairs collects the serialized key=value pairs in canonical order,
// omitting unset fields and the default transport.
func (cs *ConnectionString) namespacePairs() []string {
	var pairs []string
	if cs.endpoint != "" {
		pairs = append(pairs, endpointKey+"="+cs.endpoint)
	}
	if cs.sharedAccessKeyName != "" {
		pairs = append(pairs,
			sharedAccessKeyNameKey+"="+cs.sharedAccessKeyName)
	}
	if cs.sharedAccessKey != "" {
		pairs = append(pairs, sharedAccessKeyKey+"="+cs.sharedAccessKey)
	}
	if cs.transportType != TransportTypeAmqp {
		pairs = append(pairs,
			transportTypeKey+"="+cs.transportType.String())
	}
	return pairs
}

// NamespaceString serializes the namespace-level fields in canonical order:
// Endpoint, SharedAccessKeyName, SharedAccessKey, TransportType. Each is
// emitted only when set, non-empty, or (for the transport) non-default. The
// entity path and extension properties are not included.
func (cs *ConnectionString) NamespaceString() string {
	return strings.Join(cs.namespacePairs(), ";")
}

// EntityString serializes the namespace-level fields followed by the
// EntityPath pair. It returns an InvalidArgumentError when the entity path
// is empty.
func (cs *ConnectionString) EntityString() (string, error) {
	if cs.entityPath == "" {
		return "", &InvalidArgumentError{
			message: "entity path must not be empty",
		}
	}
	pairs := append(cs.namespacePairs(), entityPathKey+"="+cs.entityPath)
	return strings.Join(pairs, ";"), nil
}

// String serializes the record: the entity form when an entity path is set,
// the namespace form otherwise. Extension properties are accepted by
// ParseConnectionString but never re-emitted, so serialization is lossy with
// respect to unrecognized keys.
func (cs *ConnectionString) String() string {
	if cs.entityPath == "" {
		return cs.NamespaceString()
	}
	entityStr, _ := cs.EntityString()
	return entityStr
}
