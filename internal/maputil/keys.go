// Package maputil provides small helpers for working with maps.
package maputil

import "sort"

// SortedKeys returns the keys of m in lexicographic order.
// A nil or empty map returns an empty (non-nil) slice.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SortedUnionKeys returns the union of the keys of a and b in lexicographic
// order, each key appearing exactly once.
func SortedUnionKeys[V any](a, b map[string]V) []string {
	union := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		union[k] = struct{}{}
	}
	for k := range b {
		union[k] = struct{}{}
	}
	return SortedKeys(union)
}
