// File: slicex.go
// Title: Core Slice Utilities
// Description: Generic slice helpers: order-preserving de-duplication,
//              copying and stable sorting by key.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-16 v0.2.0: Reduced to de-duplication and stable keyed sorting

package slicex

import (
	"slices"
)

// Unique returns a new slice with duplicate elements removed.
// The first occurrence of each element is kept, in its original position.
func Unique[T comparable](slice []T) []T {
	if slice == nil {
		return nil
	}

	seen := make(map[T]struct{}, len(slice))
	result := make([]T, 0, len(slice))

	for _, item := range slice {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}

// RemoveDuplicates is an alias for Unique.
func RemoveDuplicates[T comparable](slice []T) []T {
	return Unique(slice)
}

// UniqueBy returns a new slice keeping the first element for each key
func UniqueBy[T any, K comparable](slice []T, keyFunc func(T) K) []T {
	if slice == nil || keyFunc == nil {
		return nil
	}

	seen := make(map[K]struct{}, len(slice))
	result := make([]T, 0, len(slice))

	for _, item := range slice {
		key := keyFunc(item)
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}

// Clone returns a shallow copy of the slice
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}
	return slices.Clone(slice)
}

// SortStableBy sorts slice in place by a key computed once per element.
// Elements with equal keys keep their relative order.
func SortStableBy[T, K any](slice []T, key func(T) K, compare func(a, b K) int) {
	if len(slice) < 2 {
		return
	}

	type keyed struct {
		key  K
		item T
	}
	pairs := make([]keyed, len(slice))
	for i, item := range slice {
		pairs[i] = keyed{key: key(item), item: item}
	}

	slices.SortStableFunc(pairs, func(a, b keyed) int {
		return compare(a.key, b.key)
	})

	for i := range pairs {
		slice[i] = pairs[i].item
	}
}

// SortedStableBy returns a sorted copy; see SortStableBy.
func SortedStableBy[T, K any](slice []T, key func(T) K, compare func(a, b K) int) []T {
	result := Clone(slice)
	SortStableBy(result, key, compare)
	return result
}
