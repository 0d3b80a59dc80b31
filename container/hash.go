package container

import "iter"

// Hash is an unordered set.
type Hash[T comparable] map[T]struct{}

func NewHash[T comparable](items ...T) Hash[T] {
	h := make(Hash[T], len(items))
	for _, item := range items {
		h.Insert(item)
	}
	return h
}

func (h Hash[T]) Insert(v T) bool {
	if _, ok := h[v]; ok {
		return false
	}
	h[v] = struct{}{}
	return true
}

func (h Hash[T]) Contains(v T) bool {
	_, ok := h[v]
	return ok
}

func (h Hash[T]) Len() int {
	return len(h)
}

func (h Hash[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range h {
			if !yield(item) {
				return
			}
		}
	}
}
