// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import "fmt"

// marshalEnum returns the text form of an enum value from its name map.
func marshalEnum[T comparable](v T, names map[T]string, what string) ([]byte, error) {
	n, ok := names[v]
	if !ok {
		return nil, fmt.Errorf("element: invalid %s %v", what, v)
	}
	return []byte(n), nil
}

// unmarshalEnum sets an enum value from its text form using the value map.
func unmarshalEnum[T any](text []byte, values map[string]T, dst *T, what string) error {
	v, ok := values[string(text)]
	if !ok {
		return fmt.Errorf("element: unknown %s %q", what, string(text))
	}
	*dst = v
	return nil
}

// enumValues inverts an enum name map.
func enumValues[T comparable](names map[T]string) map[string]T {
	m := make(map[string]T, len(names))
	for t, n := range names {
		m[n] = t
	}
	return m
}
