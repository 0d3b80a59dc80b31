package codec

import (
	"github.com/pkg/errors"
	"iter"
)

// chunkSize bounds how many bytes a raw-block read allocates ahead of data
// actually received, and how many bytes a raw-block write buffers.
const chunkSize = 4096

// The structured strategy frames every element with its own tag.

func structuredSize[T any](elem Codec[T], n int, items iter.Seq[T]) uint64 {
	size := BaseEncodingSize(Array) + sizeCodec.Size(SizeType(n))
	for item := range items {
		size += elem.Size(item)
	}
	return size
}

func writeStructured[T any](w Writer, elem Codec[T], n int, items iter.Seq[T]) error {
	if err := Write[SizeType](sizeCodec, SizeType(n), w); err != nil {
		return err
	}
	for item := range items {
		if err := Write(elem, item, w); err != nil {
			return err
		}
	}
	return nil
}

// readStructured does not pre-allocate from the declared count: the data
// actually present bounds the work, and a count larger than the input fails
// on the first element that cannot be read.
func readStructured[T any](r Reader, elem Codec[T], add func(T)) error {
	var count SizeType
	if err := Read[SizeType](sizeCodec, &count, r); err != nil {
		return err
	}
	for i := SizeType(0); i < count; i++ {
		var item T
		if err := Read(elem, &item, r); err != nil {
			return errors.Wrapf(err, "element %d of %d", i, count)
		}
		add(item)
	}
	return nil
}

// The raw-block strategy packs fixed-width elements back to back under one
// byte length.

func rawSize(width, n int) uint64 {
	l := SizeType(n) * SizeType(width)
	return BaseEncodingSize(Binary) + sizeCodec.Size(l) + l
}

func writeRaw[T any](w Writer, s Scalar[T], n int, items iter.Seq[T]) error {
	width := s.Width()
	if err := Write[SizeType](sizeCodec, SizeType(n)*SizeType(width), w); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	buf := make([]byte, min(n*width, chunkSize))
	off := 0
	for item := range items {
		s.PutRaw(buf[off:], item)
		off += width
		if off == len(buf) {
			if err := writeAll(w, buf); err != nil {
				return err
			}
			off = 0
		}
	}
	if off > 0 {
		return writeAll(w, buf[:off])
	}
	return nil
}

func readRaw[T any](r Reader, s Scalar[T], add func(T)) error {
	width := SizeType(s.Width())
	var size SizeType
	if err := Read[SizeType](sizeCodec, &size, r); err != nil {
		return err
	}
	if size%width != 0 {
		return errors.Wrapf(ErrInvalidContainerLength, "%d bytes is not a multiple of %d", size, width)
	}
	count := size / width
	if err := r.Ensure(count, width); err != nil {
		return err
	}

	buf := make([]byte, min(size, chunkSize))
	for size > 0 {
		chunk := buf[:min(size, SizeType(len(buf)))]
		if err := readFull(r, chunk); err != nil {
			return err
		}
		for off := 0; off < len(chunk); off += int(width) {
			add(s.Raw(chunk[off:]))
		}
		size -= SizeType(len(chunk))
	}
	return nil
}

// readBlock reads l bytes in bounded chunks so that a declared length larger
// than the input cannot force a large allocation up front.
func readBlock(r Reader, l SizeType) ([]byte, error) {
	out := make([]byte, 0, min(l, chunkSize))
	for l > 0 {
		n := min(l, chunkSize)
		start := len(out)
		out = append(out, make([]byte, n)...)
		if err := readFull(r, out[start:]); err != nil {
			return nil, err
		}
		l -= n
	}
	return out, nil
}
