package container

import (
	"github.com/elliotchance/orderedmap/v2"
	"iter"
)

// Linked is a set that iterates in first-insertion order.
type Linked[T comparable] struct {
	m *orderedmap.OrderedMap[T, struct{}]
}

func NewLinked[T comparable](items ...T) *Linked[T] {
	l := &Linked[T]{
		m: orderedmap.NewOrderedMap[T, struct{}](),
	}
	for _, item := range items {
		l.Insert(item)
	}
	return l
}

// Insert adds v and reports whether it was absent. Re-inserting a member
// does not move it.
func (l *Linked[T]) Insert(v T) bool {
	if _, ok := l.m.Get(v); ok {
		return false
	}
	l.m.Set(v, struct{}{})
	return true
}

func (l *Linked[T]) Contains(v T) bool {
	if l == nil {
		return false
	}
	_, ok := l.m.Get(v)
	return ok
}

func (l *Linked[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.m.Len()
}

func (l *Linked[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for el := l.m.Front(); el != nil; el = el.Next() {
			if !yield(el.Key) {
				return
			}
		}
	}
}
