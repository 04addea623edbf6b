// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package servicebus

import "strings"

// Properties is an ordered string map with case-insensitive keys. Keys keep
// the casing and position of their first occurrence; setting an existing key
// overwrites its value only. Properties is not safe for concurrent mutation.
//
// The zero value is an empty map ready for use.
type Properties struct {
	keys   []string
	values map[string]string
}

// Set stores a value, overwriting any value stored under a key that matches
// case-insensitively.
func (p *Properties) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	lower := strings.ToLower(key)
	if _, exists := p.values[lower]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[lower] = value
}

// Get looks up a value by key, matching case-insensitively.
func (p *Properties) Get(key string) (string, bool) {
	value, ok := p.values[strings.ToLower(key)]
	return value, ok
}

// Len returns the number of stored keys.
func (p *Properties) Len() int {
	return len(p.keys)
}

// Keys returns the keys in insertion order, with their original casing.
func (p *Properties) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Range calls f for each key/value pair in insertion order until f returns
// false.
func (p *Properties) Range(f func(key, value string) bool) {
	for _, key := range p.keys {
		if !f(key, p.values[strings.ToLower(key)]) {
			return
		}
	}
}
