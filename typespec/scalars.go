package typespec

import (
	"golang.org/x/exp/constraints"
	"nop/codec"
	"strconv"
)

type entry struct {
	scalar func() binder
	list   func() binder
	sorted func() binder
	hash   func() binder
	linked func() binder
}

var scalars = map[string]entry{
	"u8":     orderedEntry(unsigned[uint8](codec.Uint8, 8)),
	"u16":    orderedEntry(unsigned[uint16](codec.Uint16, 16)),
	"u32":    orderedEntry(unsigned[uint32](codec.Uint32, 32)),
	"u64":    orderedEntry(unsigned[uint64](codec.Uint64, 64)),
	"i8":     orderedEntry(signed[int8](codec.Int8, 8)),
	"i16":    orderedEntry(signed[int16](codec.Int16, 16)),
	"i32":    orderedEntry(signed[int32](codec.Int32, 32)),
	"i64":    orderedEntry(signed[int64](codec.Int64, 64)),
	"string": orderedEntry(elem[string]{c: codec.Text, parse: parseString, format: formatString}),
	"bool":   comparableEntry(elem[bool]{c: codec.Bool, parse: strconv.ParseBool, format: strconv.FormatBool}),
	"f32":    plainEntry(float[float32](codec.Float32, 32)),
	"f64":    plainEntry(float[float64](codec.Float64, 64)),
}

// orderedEntry binds every container kind.
func orderedEntry[T constraints.Ordered](e elem[T]) entry {
	out := comparableEntry(e)
	out.sorted = func() binder { return bindSorted(e) }
	return out
}

// comparableEntry binds everything but the sorted set.
func comparableEntry[T comparable](e elem[T]) entry {
	out := plainEntry(e)
	out.hash = func() binder { return bindHash(e) }
	out.linked = func() binder { return bindLinked(e) }
	return out
}

// plainEntry binds scalars and lists only.
func plainEntry[T any](e elem[T]) entry {
	return entry{
		scalar: func() binder { return bindScalar(e) },
		list:   func() binder { return bindList(e) },
	}
}

func unsigned[T constraints.Unsigned](c codec.Codec[T], bits int) elem[T] {
	return elem[T]{
		c: c,
		parse: func(s string) (T, error) {
			u, err := strconv.ParseUint(s, 0, bits)
			return T(u), err
		},
		format: func(v T) string {
			return strconv.FormatUint(uint64(v), 10)
		},
	}
}

func signed[T constraints.Signed](c codec.Codec[T], bits int) elem[T] {
	return elem[T]{
		c: c,
		parse: func(s string) (T, error) {
			i, err := strconv.ParseInt(s, 0, bits)
			return T(i), err
		},
		format: func(v T) string {
			return strconv.FormatInt(int64(v), 10)
		},
	}
}

func float[T constraints.Float](c codec.Codec[T], bits int) elem[T] {
	return elem[T]{
		c: c,
		parse: func(s string) (T, error) {
			f, err := strconv.ParseFloat(s, bits)
			return T(f), err
		},
		format: func(v T) string {
			return strconv.FormatFloat(float64(v), 'g', -1, bits)
		},
	}
}

func parseString(s string) (string, error) {
	return s, nil
}

func formatString(s string) string {
	return s
}
