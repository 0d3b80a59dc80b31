/*
Package wireio provides the byte sinks and byte sources nop encodings are
written to and read from.

Sinks are plain io.Writers. Sources are io.Readers that additionally
implement Ensure, a non-consuming check that a given number of fixed-width
elements is actually available before a decoder commits to a read loop:

	r := wireio.NewBufferReader(data)
	if err := r.Ensure(count, 2); err != nil {
		return err // errors.Is(err, wireio.ErrInsufficientData)
	}

Readers fill the requested buffer completely or fail with ErrEndOfInput.
None of the types in this package are safe for concurrent use; give each
encode or decode call its own reader or writer.
*/
package wireio
