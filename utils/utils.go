package utils

import (
	"maps"
	"slices"
)

// SortKeys returns the keys of m in ascending order.
func SortKeys[T any](m map[string]T) []string {
	return slices.Sorted(maps.Keys(m))
}
