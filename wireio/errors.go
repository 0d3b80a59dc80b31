package wireio

import "github.com/pkg/errors"

var (
	// ErrEndOfInput is returned when a source is exhausted before the
	// requested bytes could be read.
	ErrEndOfInput = errors.New("end of input")

	// ErrInsufficientData is returned by Ensure when the source cannot
	// supply the declared number of elements.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrWriteLimitReached is returned by fixed-capacity sinks that have no
	// room left for the bytes being written.
	ErrWriteLimitReached = errors.New("write limit reached")
)

// fits reports whether count elements of width bytes fit in avail bytes
// without overflowing the multiplication.
func fits(count, width, avail uint64) bool {
	if width == 0 || count == 0 {
		return true
	}
	return count <= avail/width
}

func insufficient(count, width, avail uint64) error {
	return errors.Wrapf(
		ErrInsufficientData,
		"need %d elements of %d bytes, %d bytes available",
		count,
		width,
		avail,
	)
}
