package container

import (
	"golang.org/x/exp/constraints"
	"iter"
	"slices"
)

// Sorted is a set kept in ascending order.
type Sorted[T constraints.Ordered] struct {
	items []T
}

func NewSorted[T constraints.Ordered](items ...T) *Sorted[T] {
	s := &Sorted[T]{}
	s.InsertMany(items...)
	return s
}

// Insert adds v and reports whether it was absent.
func (s *Sorted[T]) Insert(v T) bool {
	n := len(s.items)
	if n == 0 || s.items[n-1] < v {
		s.items = append(s.items, v)
		return true
	}
	i, found := slices.BinarySearch(s.items, v)
	if found {
		return false
	}
	s.items = slices.Insert(s.items, i, v)
	return true
}

// InsertMany adds every item in O((n+m) log(n+m)) regardless of input order.
func (s *Sorted[T]) InsertMany(items ...T) {
	if len(items) == 0 {
		return
	}
	s.items = append(s.items, items...)
	slices.Sort(s.items)
	s.items = slices.Compact(s.items)
}

func (s *Sorted[T]) Contains(v T) bool {
	if s == nil {
		return false
	}
	_, found := slices.BinarySearch(s.items, v)
	return found
}

func (s *Sorted[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

func (s *Sorted[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Slice returns a copy of the members in ascending order.
func (s *Sorted[T]) Slice() []T {
	if s == nil {
		return nil
	}
	return slices.Clone(s.items)
}
