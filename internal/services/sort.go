package services

import (
	"sort"
	"strings"

	"flightops360/hangar/internal/store"
)

// sortByKey orders items case-insensitively by a string key.
func sortByKey[T any](items []T, key func(*T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(key(&items[i])) < strings.ToLower(key(&items[j]))
	})
}

// byParent builds the optional parent-id equality filter of a list call.
func byParent(field, id string) []store.Filter {
	if id == "" {
		return nil
	}
	return []store.Filter{store.Eq(field, id)}
}
