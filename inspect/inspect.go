// Package inspect walks an encoded stream using nothing but its tags, so
// that any payload can be listed without knowing the type it was encoded
// from.
package inspect

import (
	"encoding/hex"
	"github.com/pkg/errors"
	"nop/codec"
	"nop/wireio"
	"strconv"
)

const (
	// MaxDepth bounds container nesting.
	MaxDepth = 64

	previewLen = 16
)

var ErrTooDeep = errors.New("nesting too deep")

// Node is one encoded value. Length is the element count of Array and
// Structure, the pair count of Map, and the byte length of Binary and
// String. Value renders scalars and a preview of byte payloads.
type Node struct {
	Offset int
	Depth  int
	Prefix codec.EncodingByte
	Length uint64
	Value  string
}

// Walk calls fn for every value in data in encoding order, parents before
// their children. data may hold several top-level values back to back.
func Walk(data []byte, fn func(Node) error) error {
	w := &walker{
		r:  wireio.NewBufferReader(data),
		fn: fn,
	}
	for w.r.Remaining() > 0 {
		if err := w.value(0); err != nil {
			return err
		}
	}
	return nil
}

// Parse collects the nodes Walk visits.
func Parse(data []byte) ([]Node, error) {
	var nodes []Node
	err := Walk(data, func(n Node) error {
		nodes = append(nodes, n)
		return nil
	})
	return nodes, err
}

type walker struct {
	r  *wireio.BufferReader
	fn func(Node) error
}

func (w *walker) value(depth int) error {
	if depth > MaxDepth {
		return errors.Wrapf(ErrTooDeep, "offset %d", w.r.Offset())
	}

	n := Node{
		Offset: w.r.Offset(),
		Depth:  depth,
	}
	var b [1]byte
	if _, err := w.r.Read(b[:]); err != nil {
		return err
	}
	n.Prefix = codec.EncodingByte(b[0])

	var children uint64
	var err error
	switch p := n.Prefix; {
	case p.IsPositiveFixInt():
		n.Value = strconv.FormatUint(uint64(p), 10)
	case p.IsNegativeFixInt():
		n.Value = strconv.FormatInt(int64(int8(p)), 10)
	case p >= codec.U8 && p <= codec.U64:
		var u uint64
		err = codec.Uint64.ReadPayload(p, &u, w.r)
		n.Value = strconv.FormatUint(u, 10)
	case p >= codec.I8 && p <= codec.I64:
		var i int64
		err = codec.Int64.ReadPayload(p, &i, w.r)
		n.Value = strconv.FormatInt(i, 10)
	case p == codec.F32:
		var f float32
		err = codec.Float32.ReadPayload(p, &f, w.r)
		n.Value = strconv.FormatFloat(float64(f), 'g', -1, 32)
	case p == codec.F64:
		var f float64
		err = codec.Float64.ReadPayload(p, &f, w.r)
		n.Value = strconv.FormatFloat(f, 'g', -1, 64)
	case p == codec.Nil:
		n.Value = "nil"
	case p == codec.String || p == codec.Binary:
		err = w.block(&n)
	case p == codec.Array || p == codec.Structure:
		n.Length, err = w.count(1)
		children = n.Length
	case p == codec.Map:
		n.Length, err = w.count(2)
		children = n.Length * 2
	default:
		return errors.Wrapf(codec.ErrUnexpectedEncodingType, "got %s at offset %d", p, n.Offset)
	}
	if err != nil {
		return errors.Wrapf(err, "%s at offset %d", n.Prefix, n.Offset)
	}

	if err := w.fn(n); err != nil {
		return err
	}
	for i := uint64(0); i < children; i++ {
		if err := w.value(depth + 1); err != nil {
			return err
		}
	}
	return nil
}

// count reads a container size and checks that the stream can hold that
// many children of at least minWidth bytes each.
func (w *walker) count(minWidth uint64) (uint64, error) {
	var n codec.SizeType
	if err := codec.Read[codec.SizeType](codec.Uint64, &n, w.r); err != nil {
		return 0, err
	}
	if err := w.r.Ensure(n, minWidth); err != nil {
		return 0, err
	}
	return n, nil
}

func (w *walker) block(n *Node) error {
	l, err := w.count(1)
	if err != nil {
		return err
	}
	n.Length = l

	preview := make([]byte, min(l, previewLen))
	if _, err := w.r.Read(preview); err != nil {
		return err
	}
	if err := w.r.Skip(l - uint64(len(preview))); err != nil {
		return err
	}

	if n.Prefix == codec.String {
		n.Value = strconv.Quote(string(preview))
	} else {
		n.Value = hex.EncodeToString(preview)
	}
	if l > previewLen {
		n.Value += "..."
	}
	return nil
}
