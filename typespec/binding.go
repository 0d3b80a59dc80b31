package typespec

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"iter"
	"nop/codec"
	"nop/container"
	"slices"
)

type binder interface {
	marshal(args []string) ([]byte, error)
	write(w codec.Writer, args []string) error
	unmarshal(data []byte) ([]string, error)
	read(r codec.Reader) ([]string, error)
}

// binding ties a codec for V to the conversions between V and its textual
// arguments.
type binding[V any] struct {
	c      codec.Codec[V]
	build  func(args []string) (V, error)
	render func(V) []string
}

func (b *binding[V]) marshal(args []string) ([]byte, error) {
	v, err := b.build(args)
	if err != nil {
		return nil, err
	}
	return codec.Marshal(b.c, v)
}

func (b *binding[V]) write(w codec.Writer, args []string) error {
	v, err := b.build(args)
	if err != nil {
		return err
	}
	return codec.Write(b.c, v, w)
}

func (b *binding[V]) unmarshal(data []byte) ([]string, error) {
	var v V
	if err := codec.Unmarshal(b.c, data, &v); err != nil {
		return nil, err
	}
	return b.render(v), nil
}

func (b *binding[V]) read(r codec.Reader) ([]string, error) {
	var v V
	if err := codec.Read(b.c, &v, r); err != nil {
		return nil, err
	}
	return b.render(v), nil
}

// elem is a scalar type with its codec and text conversions.
type elem[T any] struct {
	c      codec.Codec[T]
	parse  func(string) (T, error)
	format func(T) string
}

func (e elem[T]) parseAll(args []string) ([]T, error) {
	out := make([]T, 0, len(args))
	for i, arg := range args {
		v, err := e.parse(arg)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidValue, "value %d %q: %v", i, arg, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (e elem[T]) formatAll(values iter.Seq[T]) []string {
	out := []string{}
	for v := range values {
		out = append(out, e.format(v))
	}
	return out
}

func bindScalar[T any](e elem[T]) binder {
	return &binding[T]{
		c: e.c,
		build: func(args []string) (T, error) {
			var zero T
			if len(args) != 1 {
				return zero, errors.Wrapf(ErrArity, "scalar takes one value, got %d", len(args))
			}
			vals, err := e.parseAll(args)
			if err != nil {
				return zero, err
			}
			return vals[0], nil
		},
		render: func(v T) []string {
			return []string{e.format(v)}
		},
	}
}

func bindList[T any](e elem[T]) binder {
	return &binding[[]T]{
		c:     codec.List(e.c),
		build: e.parseAll,
		render: func(v []T) []string {
			return e.formatAll(slices.Values(v))
		},
	}
}

func bindSorted[T constraints.Ordered](e elem[T]) binder {
	return &binding[*container.Sorted[T]]{
		c: codec.SortedSet(e.c),
		build: func(args []string) (*container.Sorted[T], error) {
			vals, err := e.parseAll(args)
			if err != nil {
				return nil, err
			}
			return container.NewSorted(vals...), nil
		},
		render: func(v *container.Sorted[T]) []string {
			return e.formatAll(v.All())
		},
	}
}

func bindHash[T comparable](e elem[T]) binder {
	return &binding[container.Hash[T]]{
		c: codec.HashSet(e.c),
		build: func(args []string) (container.Hash[T], error) {
			vals, err := e.parseAll(args)
			if err != nil {
				return nil, err
			}
			return container.NewHash(vals...), nil
		},
		render: func(v container.Hash[T]) []string {
			return e.formatAll(v.All())
		},
	}
}

func bindLinked[T comparable](e elem[T]) binder {
	return &binding[*container.Linked[T]]{
		c: codec.LinkedSet(e.c),
		build: func(args []string) (*container.Linked[T], error) {
			vals, err := e.parseAll(args)
			if err != nil {
				return nil, err
			}
			return container.NewLinked(vals...), nil
		},
		render: func(v *container.Linked[T]) []string {
			return e.formatAll(v.All())
		},
	}
}
