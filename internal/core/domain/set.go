package domain

import (
	"cmp"
	"maps"
	"slices"
)

// Set is an unordered collection of distinct values.
// The zero value is an empty set ready for reads; use NewSet before Add.
type Set[T cmp.Ordered] map[T]struct{}

// NameSet is a set of package names.
type NameSet = Set[string]

// FileSet is a set of absolute, cleaned file paths.
type FileSet = Set[string]

// NewSet returns a set holding the given values.
func NewSet[T cmp.Ordered](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s Set[T]) Add(v T) bool {
	if _, ok := s[v]; ok {
		return false
	}
	s[v] = struct{}{}
	return true
}

// Contains reports whether v is in the set.
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of values in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// Clone returns a copy of the set.
func (s Set[T]) Clone() Set[T] {
	out := make(Set[T], len(s))
	maps.Copy(out, s)
	return out
}

// Union returns the values present in s or other.
func (s Set[T]) Union(other Set[T]) Set[T] {
	out := s.Clone()
	maps.Copy(out, other)
	return out
}

// Intersect returns the values present in both s and other.
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	out := make(Set[T])
	for v := range s {
		if other.Contains(v) {
			out[v] = struct{}{}
		}
	}
	return out
}

// Difference returns the values of s that are not in other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	out := make(Set[T])
	for v := range s {
		if !other.Contains(v) {
			out[v] = struct{}{}
		}
	}
	return out
}

// Sorted returns the values in ascending order. It never returns nil.
func (s Set[T]) Sorted() []T {
	out := slices.Collect(maps.Keys(s))
	if out == nil {
		out = []T{}
	}
	slices.Sort(out)
	return out
}
