// Package refdata maintains the small reference lists of the book:
// bank names and category names, kept as sorted unique string sets.
package refdata

import (
	"sort"
	"strings"
)

// Set is a sorted set of unique non-empty strings.
type Set struct {
	items []string
}

// NewSet builds a Set from existing values, trimming, deduplicating and
// sorting them.
func NewSet(values []string) Set {
	var s Set
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts a trimmed value, keeping the set sorted. Returns false for
// empty strings and duplicates.
func (s *Set) Add(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" || s.Contains(value) {
		return false
	}
	s.items = append(s.items, value)
	sort.Strings(s.items)
	return true
}

// Remove deletes a value. Returns false when the value is not present.
func (s *Set) Remove(value string) bool {
	for i, v := range s.items {
		if v == value {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value string) bool {
	i := sort.SearchStrings(s.items, value)
	return i < len(s.items) && s.items[i] == value
}

// All returns the values in sorted order. The returned slice is a copy.
func (s *Set) All() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of values in the set.
func (s *Set) Len() int {
	return len(s.items)
}
