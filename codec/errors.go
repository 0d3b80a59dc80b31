package codec

import (
	"github.com/pkg/errors"
	"nop/wireio"
)

var (
	// ErrUnexpectedEncodingType is returned when a decoded tag is not a
	// valid encoding of the target type.
	ErrUnexpectedEncodingType = errors.New("unexpected encoding type")

	// ErrInvalidContainerLength is returned when a raw-block byte length is
	// not a multiple of the element width.
	ErrInvalidContainerLength = errors.New("invalid container length")

	// ErrInvalidStringLength is returned when a declared string length
	// cannot be represented on this platform.
	ErrInvalidStringLength = errors.New("invalid string length")

	// ErrTrailingData is returned by Unmarshal when bytes remain after the
	// value has been decoded.
	ErrTrailingData = errors.New("trailing data after value")

	ErrEndOfInput        = wireio.ErrEndOfInput
	ErrInsufficientData  = wireio.ErrInsufficientData
	ErrWriteLimitReached = wireio.ErrWriteLimitReached
)

func unexpected(prefix EncodingByte) error {
	return errors.Wrapf(ErrUnexpectedEncodingType, "got %s", prefix)
}
