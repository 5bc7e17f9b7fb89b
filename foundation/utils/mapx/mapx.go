// File: mapx.go
// Title: Map Utilities
// Description: Generic helpers for reading and combining maps: key
//              extraction in stable order and merging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive map utilities
// - 2026-10-16 v0.2.0: Reduced to key listing and merge

// Package mapx provides generic map helpers.
package mapx

import (
	"cmp"
	"slices"
)

// Keys returns a slice of all keys from the map in unspecified order
func Keys[K comparable, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys of m in ascending order. It never returns nil.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Merge creates a new map by merging multiple maps.
// Later maps override values from earlier maps for duplicate keys.
func Merge[K comparable, V any](maps ...map[K]V) map[K]V {
	totalSize := 0
	for _, m := range maps {
		totalSize += len(m)
	}

	result := make(map[K]V, totalSize)
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}
