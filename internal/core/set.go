package core

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Set is an immutable set of ordered values. The zero value is an empty set.
// Operations never modify the receiver, so a Set can be shared between
// contact snapshots.
type Set[T cmp.Ordered] struct {
	items map[T]struct{}
}

// NewSet returns a set holding the given items; duplicates collapse.
func NewSet[T cmp.Ordered](items ...T) Set[T] {
	m := make(map[T]struct{}, len(items))
	for _, v := range items {
		m[v] = struct{}{}
	}
	return Set[T]{items: m}
}

func (s Set[T]) Len() int {
	return len(s.items)
}

func (s Set[T]) Contains(v T) bool {
	_, ok := s.items[v]
	return ok
}

// Union returns a new set with the members of both s and other.
func (s Set[T]) Union(other Set[T]) Set[T] {
	m := make(map[T]struct{}, len(s.items)+len(other.items))
	maps.Copy(m, s.items)
	maps.Copy(m, other.items)
	return Set[T]{items: m}
}

// Equal reports whether both sets hold exactly the same members.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	for v := range s.items {
		if _, ok := other.items[v]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the members in ascending order.
func (s Set[T]) Sorted() []T {
	return slices.Sorted(maps.Keys(s.items))
}

// String renders the members in ascending order, e.g. "[2024-01, 2024-02]".
func (s Set[T]) String() string {
	parts := make([]string, 0, len(s.items))
	for _, v := range s.Sorted() {
		parts = append(parts, fmt.Sprint(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
