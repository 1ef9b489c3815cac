// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metadata provides a map of named any elements
// with generic support for type-safe Get and nil-safe Set.
// Metadata keys often function as optional fields in a struct,
// such as the named attributes of a shared plotting model.
package metadata

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// Data is metadata as a map of named any elements
// with generic support for type-safe Get and nil-safe Set.
// In general it is good practice to provide access functions
// that establish standard key names, to avoid issues with typos.
type Data map[string]any

func (md *Data) init() {
	if *md == nil {
		*md = make(map[string]any)
	}
}

// Set sets key to given value, ensuring that
// the map is created if not previously.
// It returns whether the stored value changed,
// using [reflect.DeepEqual] for the comparison.
func (md *Data) Set(key string, value any) bool {
	md.init()
	old, has := (*md)[key]
	(*md)[key] = value
	return !has || !reflect.DeepEqual(old, value)
}

// Has returns whether the key is present.
func (md Data) Has(key string) bool {
	_, ok := md[key]
	return ok
}

// Keys returns the keys in sorted order.
func (md Data) Keys() []string {
	return slices.Sorted(maps.Keys(md))
}

// Get gets metadata value of given type.
// returns error if not present or item is a different type.
func Get[T any](md Data, key string) (T, error) {
	var z T
	x, ok := md[key]
	if !ok {
		return z, fmt.Errorf("key %q not found in metadata", key)
	}
	v, ok := x.(T)
	if !ok {
		return z, fmt.Errorf("key %q has a different type than expected %T: is %T", key, z, x)
	}
	return v, nil
}

// GetOr returns the metadata value of given type,
// or the given default if it is missing or of a different type.
func GetOr[T any](md Data, key string, def T) T {
	v, err := Get[T](md, key)
	if err != nil {
		return def
	}
	return v
}

// Copy does a shallow copy of metadata from source.
// Any pointer-based values will still point to the same
// underlying data as the source, but the two maps remain
// distinct.  It uses [maps.Copy].
func (md *Data) Copy(src Data) {
	if src == nil {
		return
	}
	md.init()
	maps.Copy(*md, src)
}
