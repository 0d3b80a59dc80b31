package wireio

// BufferReader is a source over an in-memory byte slice. Reads are
// all-or-nothing: a read that cannot be satisfied consumes nothing.
type BufferReader struct {
	b   []byte
	off int
}

func NewBufferReader(b []byte) *BufferReader {
	return &BufferReader{
		b: b,
	}
}

func (r *BufferReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if len(p) > r.Remaining() {
		return 0, ErrEndOfInput
	}
	n := copy(p, r.b[r.off:])
	r.off += n
	return n, nil
}

// Ensure checks that count elements of width bytes remain unread.
func (r *BufferReader) Ensure(count, width uint64) error {
	avail := uint64(r.Remaining())
	if !fits(count, width, avail) {
		return insufficient(count, width, avail)
	}
	return nil
}

// Skip advances past n bytes without copying them.
func (r *BufferReader) Skip(n uint64) error {
	if n > uint64(r.Remaining()) {
		return ErrEndOfInput
	}
	r.off += int(n)
	return nil
}

// Offset returns the number of bytes consumed so far.
func (r *BufferReader) Offset() int {
	return r.off
}

// Remaining returns the number of unread bytes.
func (r *BufferReader) Remaining() int {
	return len(r.b) - r.off
}
