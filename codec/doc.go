/*
Package codec implements the nop binary encoding: a compact, self-describing,
little-endian format in which every value is framed by a single encoding byte
(its tag) followed by a payload whose shape the tag determines.

Fundamental types:

	- unsigned integers: values below 0x80 are encoded as the tag itself
	  (positive fixint). Larger values use the smallest of U8, U16, U32 or
	  U64 followed by that many little-endian bytes.
	- signed integers: values in -64..127 are encoded as the tag itself
	  (positive or negative fixint). Others use the smallest of I8, I16, I32
	  or I64 followed by little-endian two's complement bytes.
	- bool: False (0x00) or True (0x01), no payload.
	- float32/float64: F32 or F64 followed by IEEE-754 little-endian bits.
	- string: String, a size, then that many UTF-8 bytes.

Sizes and counts are always written as a uint64 through the unsigned integer
encoding above.

Containers ([]T and the sets in package container) choose one of two
strategies once per element codec:

	structured:  [Array]  [size N] [elem 1] ... [elem N]
	raw block:   [Binary] [size L] [L bytes]          L = N * width(T)

The raw-block form is used when the element codec is a Scalar, that is a
fixed-width integer whose values can be packed back to back. Every other
element type is written in structured form, each element carrying its own
tag and payload.

A Codec describes one type family. Callers use the Write and Read entry
points (or Marshal and Unmarshal), which frame the value with its tag and
check the tag on the way back in:

	list := codec.List(codec.Uint16)
	b, err := codec.Marshal(list, []uint16{1, 2, 3})

	var out []uint16
	err = codec.Unmarshal(list, b, &out)

Codecs hold no mutable state and may be shared between goroutines. Readers
and writers may not.
*/
package codec
