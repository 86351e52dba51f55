package data

import (
	"strings"

	"golang.org/x/exp/slices"
)

// KeySet is a set of resource keys
type KeySet map[string]struct{}

func NewKeySet(keys ...string) KeySet {
	set := make(KeySet, len(keys))
	for _, key := range keys {
		set.Add(key)
	}
	return set
}

func (s KeySet) Add(key string) {
	s[key] = struct{}{}
}

func (s KeySet) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

func (s KeySet) Len() int {
	return len(s)
}

func (s KeySet) IsEmpty() bool {
	return len(s) == 0
}

// Subtract returns a new set containing all keys of s that are not in other.
// Neither s nor other is modified.
func (s KeySet) Subtract(other KeySet) KeySet {
	result := KeySet{}
	for key := range s {
		if !other.Contains(key) {
			result.Add(key)
		}
	}
	return result
}

// Sorted returns the keys ordered case-insensitively,
// keys that only differ in case are ordered by their exact value.
func (s KeySet) Sorted() []string {
	result := make([]string, 0, len(s))
	for key := range s {
		result = append(result, key)
	}
	SortKeys(result)
	return result
}

// SortKeys sorts keys in place, see KeySet.Sorted
func SortKeys(keys []string) {
	slices.SortFunc(keys, CompareKeys)
}

func CompareKeys(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
