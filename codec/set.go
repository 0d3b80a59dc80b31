package codec

import (
	"golang.org/x/exp/constraints"
	"iter"
	"nop/container"
)

// Set is a destination container for the set codecs. Insert must absorb
// members that are already present.
type Set[T any] interface {
	Insert(value T) bool
	Len() int
	All() iter.Seq[T]
}

// manyInserter is implemented by sets that can absorb a batch faster than
// one Insert at a time.
type manyInserter[T any] interface {
	InsertMany(items ...T)
}

// SetCodec encodes sets. The wire format is the same for every set type;
// element order on the wire is whatever order the encoded set iterates in,
// and the decoded set orders its members by its own rule.
type SetCodec[T any, S Set[T]] struct {
	elem   Codec[T]
	scalar Scalar[T]
	fresh  func() S
}

// NewSet returns a codec for sets of type S, built with fresh on decode.
func NewSet[T any, S Set[T]](elem Codec[T], fresh func() S) *SetCodec[T, S] {
	c := &SetCodec[T, S]{
		elem:  elem,
		fresh: fresh,
	}
	if s, ok := elem.(Scalar[T]); ok {
		c.scalar = s
	}
	return c
}

func SortedSet[T constraints.Ordered](elem Codec[T]) *SetCodec[T, *container.Sorted[T]] {
	return NewSet(elem, func() *container.Sorted[T] {
		return container.NewSorted[T]()
	})
}

func HashSet[T comparable](elem Codec[T]) *SetCodec[T, container.Hash[T]] {
	return NewSet(elem, func() container.Hash[T] {
		return container.NewHash[T]()
	})
}

func LinkedSet[T comparable](elem Codec[T]) *SetCodec[T, *container.Linked[T]] {
	return NewSet(elem, func() *container.Linked[T] {
		return container.NewLinked[T]()
	})
}

// New returns an empty set of the codec's container type.
func (c *SetCodec[T, S]) New() S {
	return c.fresh()
}

func (c *SetCodec[T, S]) Raw() bool {
	return c.scalar != nil
}

func (c *SetCodec[T, S]) Prefix(S) EncodingByte {
	if c.Raw() {
		return Binary
	}
	return Array
}

func (c *SetCodec[T, S]) Size(value S) uint64 {
	if c.Raw() {
		return rawSize(c.scalar.Width(), value.Len())
	}
	return structuredSize(c.elem, value.Len(), value.All())
}

func (c *SetCodec[T, S]) Match(prefix EncodingByte) bool {
	if c.Raw() {
		return prefix == Binary
	}
	return prefix == Array
}

func (c *SetCodec[T, S]) WritePayload(_ EncodingByte, value S, w Writer) error {
	if c.Raw() {
		return writeRaw(w, c.scalar, value.Len(), value.All())
	}
	return writeStructured(w, c.elem, value.Len(), value.All())
}

// ReadPayload decodes into a fresh set and replaces *value only on success.
// Repeated members are absorbed, not rejected.
func (c *SetCodec[T, S]) ReadPayload(_ EncodingByte, value *S, r Reader) error {
	out := c.fresh()

	var batch []T
	add := out.Insert
	bulk, ok := any(out).(manyInserter[T])
	if ok {
		add = func(item T) bool {
			batch = append(batch, item)
			return true
		}
	}
	insert := func(item T) {
		add(item)
	}

	var err error
	if c.Raw() {
		err = readRaw(r, c.scalar, insert)
	} else {
		err = readStructured(r, c.elem, insert)
	}
	if err != nil {
		return err
	}
	if ok {
		bulk.InsertMany(batch...)
	}
	*value = out
	return nil
}
