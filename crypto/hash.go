package crypto

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
	"hash"
)

type Hash [32]byte

var ZeroHash Hash

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h Hash) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("\"%x\"", h[:])), nil
}

func (h *Hash) UnmarshalJSON(b []byte) error {
	var hashStr string
	if err := json.Unmarshal(b, &hashStr); err != nil {
		return err
	}
	out, err := NewHashFromHex(hashStr)
	if err != nil {
		return err
	}
	*h = out
	return nil
}

func Blake2B256(data ...[]byte) Hash {
	w := NewWriter()
	for _, chunk := range data {
		w.Write(chunk)
	}
	return w.Sum()
}

func NewHashFromBytes(b []byte) (Hash, error) {
	if len(b) != 32 {
		return ZeroHash, errors.New("hash must be 32 bytes")
	}
	var h Hash
	copy(h[:], b)
	return h, nil
}

func NewHashFromHex(in string) (Hash, error) {
	b, err := hex.DecodeString(in)
	if err != nil {
		return ZeroHash, errors.Wrap(err, "error decoding hash hex")
	}
	return NewHashFromBytes(b)
}

// Writer is a byte sink that digests everything written to it, so an
// encoder can hash a value without buffering its encoding.
type Writer struct {
	h hash.Hash
	n uint64
}

func NewWriter() *Writer {
	// never returns an error if key is nil
	h, _ := blake2b.New256(nil)
	return &Writer{
		h: h,
	}
}

func (w *Writer) Write(p []byte) (int, error) {
	w.n += uint64(len(p))
	return w.h.Write(p)
}

// Len returns the number of bytes digested so far.
func (w *Writer) Len() uint64 {
	return w.n
}

func (w *Writer) Sum() Hash {
	var out Hash
	copy(out[:], w.h.Sum(nil))
	return out
}
