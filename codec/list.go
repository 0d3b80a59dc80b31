package codec

import "slices"

// ListCodec encodes ordered sequences. Duplicates and order are preserved.
type ListCodec[T any] struct {
	elem   Codec[T]
	scalar Scalar[T]
}

// List returns the codec for []T. The raw-block strategy is selected here,
// once, when elem is a Scalar; every other element codec gets the structured
// strategy.
func List[T any](elem Codec[T]) *ListCodec[T] {
	c := &ListCodec[T]{
		elem: elem,
	}
	if s, ok := elem.(Scalar[T]); ok {
		c.scalar = s
	}
	return c
}

// Raw reports whether the list uses the raw-block strategy.
func (c *ListCodec[T]) Raw() bool {
	return c.scalar != nil
}

func (c *ListCodec[T]) Prefix([]T) EncodingByte {
	if c.Raw() {
		return Binary
	}
	return Array
}

func (c *ListCodec[T]) Size(value []T) uint64 {
	if c.Raw() {
		return rawSize(c.scalar.Width(), len(value))
	}
	return structuredSize(c.elem, len(value), slices.Values(value))
}

func (c *ListCodec[T]) Match(prefix EncodingByte) bool {
	return prefix == c.Prefix(nil)
}

func (c *ListCodec[T]) WritePayload(_ EncodingByte, value []T, w Writer) error {
	if c.Raw() {
		return writeRaw(w, c.scalar, len(value), slices.Values(value))
	}
	return writeStructured(w, c.elem, len(value), slices.Values(value))
}

// ReadPayload clears value before appending so decoded elements land in
// order even when value is reused. On error value is left unspecified.
func (c *ListCodec[T]) ReadPayload(_ EncodingByte, value *[]T, r Reader) error {
	out := (*value)[:0]
	add := func(item T) {
		out = append(out, item)
	}

	var err error
	if c.Raw() {
		err = readRaw(r, c.scalar, add)
	} else {
		err = readStructured(r, c.elem, add)
	}
	if err != nil {
		return err
	}
	if out == nil {
		out = []T{}
	}
	*value = out
	return nil
}
