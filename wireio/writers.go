package wireio

import (
	"github.com/valyala/bytebufferpool"
	"io"
	"sync/atomic"
)

// BufferWriter is a growable sink backed by a pooled buffer. Call Release
// once the bytes are no longer needed; Bytes must not be used afterwards.
type BufferWriter struct {
	buf *bytebufferpool.ByteBuffer
}

func NewBufferWriter() *BufferWriter {
	return &BufferWriter{
		buf: bytebufferpool.Get(),
	}
}

func (w *BufferWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *BufferWriter) Bytes() []byte {
	return w.buf.Bytes()
}

func (w *BufferWriter) Len() int {
	return w.buf.Len()
}

func (w *BufferWriter) Reset() {
	w.buf.Reset()
}

func (w *BufferWriter) Release() {
	if w.buf == nil {
		return
	}
	bytebufferpool.Put(w.buf)
	w.buf = nil
}

// FixedWriter writes into a caller-provided slice and never grows it.
type FixedWriter struct {
	b   []byte
	off int
}

func NewFixedWriter(b []byte) *FixedWriter {
	return &FixedWriter{
		b: b,
	}
}

func (w *FixedWriter) Write(p []byte) (int, error) {
	if len(p) > len(w.b)-w.off {
		return 0, ErrWriteLimitReached
	}
	n := copy(w.b[w.off:], p)
	w.off += n
	return n, nil
}

// Bytes returns the written prefix of the underlying slice.
func (w *FixedWriter) Bytes() []byte {
	return w.b[:w.off]
}

func (w *FixedWriter) Len() int {
	return w.off
}

// StreamWriter adapts an io.Writer into a sink and counts the bytes it
// forwards.
type StreamWriter struct {
	w     io.Writer
	count uint64
}

func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{
		w: w,
	}
}

func (s *StreamWriter) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	atomic.AddUint64(&s.count, uint64(n))
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

func (s *StreamWriter) Count() uint64 {
	return atomic.LoadUint64(&s.count)
}

func (s *StreamWriter) Reset() {
	atomic.StoreUint64(&s.count, 0)
}
