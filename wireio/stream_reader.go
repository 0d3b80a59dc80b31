package wireio

import (
	"io"
	"sync/atomic"
)

type lener interface {
	Len() int
}

// StreamReader adapts an io.Reader into a source. When constructed with a
// limit, the limit is the declared length of the message and bounds both
// reads and Ensure. Without a limit, Ensure consults the underlying reader's
// Len method if it has one and otherwise passes.
type StreamReader struct {
	r     io.Reader
	limit int64
	count uint64
}

func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{
		r:     r,
		limit: -1,
	}
}

func NewLimitedStreamReader(r io.Reader, limit int64) *StreamReader {
	if limit < 0 {
		limit = 0
	}
	return &StreamReader{
		r:     r,
		limit: limit,
	}
}

func (s *StreamReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if s.limit >= 0 && uint64(len(p)) > s.remaining() {
		return 0, ErrEndOfInput
	}
	n, err := io.ReadFull(s.r, p)
	atomic.AddUint64(&s.count, uint64(n))
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return n, ErrEndOfInput
	}
	return n, err
}

func (s *StreamReader) Ensure(count, width uint64) error {
	var avail uint64
	switch {
	case s.limit >= 0:
		avail = s.remaining()
	default:
		l, ok := s.r.(lener)
		if !ok {
			return nil
		}
		avail = uint64(l.Len())
	}
	if !fits(count, width, avail) {
		return insufficient(count, width, avail)
	}
	return nil
}

// Count returns the number of bytes consumed from the underlying reader.
func (s *StreamReader) Count() uint64 {
	return atomic.LoadUint64(&s.count)
}

func (s *StreamReader) remaining() uint64 {
	consumed := s.Count()
	if consumed >= uint64(s.limit) {
		return 0
	}
	return uint64(s.limit) - consumed
}
