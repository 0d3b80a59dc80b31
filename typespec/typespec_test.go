package typespec

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"nop/codec"
	"nop/wireio"
	"sort"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
		str  string
	}{
		{"u8", KindScalar, "u8"},
		{" list<u16> ", KindList, "list<u16>"},
		{"list< string >", KindList, "list<string>"},
		{"set<i64>", KindSet, "set<i64>"},
		{"hashset<bool>", KindHashSet, "hashset<bool>"},
		{"linkedset<string>", KindLinkedSet, "linkedset<string>"},
		{"list<f64>", KindList, "list<f64>"},
	}
	for _, tt := range tests {
		typ, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.kind, typ.Kind())
		require.Equal(t, tt.str, typ.String())
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"list<u8", "list<list<u8>>", "<u8>"} {
		_, err := Parse(in)
		require.True(t, errors.Is(err, ErrInvalidDescriptor), in)
	}
	for _, in := range []string{"u128", "map<u8>", "set<f32>", "set<bool>", "hashset<f64>", ""} {
		_, err := Parse(in)
		require.True(t, errors.Is(err, ErrUnknownType), in)
	}
}

func TestEncode_WireBytes(t *testing.T) {
	tests := []struct {
		desc string
		args []string
		out  []byte
	}{
		{"list<u8>", []string{"1", "2", "3"}, []byte{0xbc, 0x03, 0x01, 0x02, 0x03}},
		{"list<string>", []string{"a", "bb"}, []byte{0xba, 0x02, 0xbd, 0x01, 'a', 0xbd, 0x02, 'b', 'b'}},
		{"set<u8>", []string{"5", "5"}, []byte{0xbc, 0x01, 0x05}},
		{"u16", []string{"0x100"}, []byte{0x81, 0x00, 0x01}},
		{"i8", []string{"-1"}, []byte{0xff}},
		{"bool", []string{"true"}, []byte{0x01}},
		{"list<bool>", []string{"true", "false"}, []byte{0xba, 0x02, 0x01, 0x00}},
		{"linkedset<u8>", []string{"3", "1", "3"}, []byte{0xbc, 0x02, 0x03, 0x01}},
		{"list<u8>", nil, []byte{0xbc, 0x00}},
	}
	for _, tt := range tests {
		out, err := MustParse(tt.desc).Encode(tt.args)
		require.NoError(t, err, tt.desc)
		require.Equal(t, tt.out, out, tt.desc)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		desc string
		args []string
		out  []string
	}{
		{"u64", []string{"18446744073709551615"}, []string{"18446744073709551615"}},
		{"i32", []string{"-7"}, []string{"-7"}},
		{"f32", []string{"1.5"}, []string{"1.5"}},
		{"f64", []string{"0.1"}, []string{"0.1"}},
		{"string", []string{"hello world"}, []string{"hello world"}},
		{"list<i16>", []string{"-1", "300", "-1"}, []string{"-1", "300", "-1"}},
		{"set<string>", []string{"pear", "apple", "pear"}, []string{"apple", "pear"}},
		{"set<u32>", []string{"30", "10", "20"}, []string{"10", "20", "30"}},
		{"linkedset<i64>", []string{"30", "10", "30"}, []string{"30", "10"}},
		{"list<f64>", []string{"1", "-2.5"}, []string{"1", "-2.5"}},
		{"list<string>", nil, []string{}},
	}
	for _, tt := range tests {
		typ := MustParse(tt.desc)
		b, err := typ.Encode(tt.args)
		require.NoError(t, err, tt.desc)
		out, err := typ.Decode(b)
		require.NoError(t, err, tt.desc)
		require.Equal(t, tt.out, out, tt.desc)
	}
}

func TestHashSet_RoundTrip(t *testing.T) {
	typ := MustParse("hashset<u16>")
	b, err := typ.Encode([]string{"7", "3", "7", "5"})
	require.NoError(t, err)
	out, err := typ.Decode(b)
	require.NoError(t, err)
	sort.Strings(out)
	require.Equal(t, []string{"3", "5", "7"}, out)
}

func TestEncode_Errors(t *testing.T) {
	_, err := MustParse("u8").Encode([]string{"256"})
	require.True(t, errors.Is(err, ErrInvalidValue))
	_, err = MustParse("list<i8>").Encode([]string{"1", "x"})
	require.True(t, errors.Is(err, ErrInvalidValue))
	require.Contains(t, err.Error(), "value 1")
	_, err = MustParse("u8").Encode(nil)
	require.True(t, errors.Is(err, ErrArity))
	_, err = MustParse("bool").Encode([]string{"true", "false"})
	require.True(t, errors.Is(err, ErrArity))
}

func TestDecode_Errors(t *testing.T) {
	_, err := MustParse("list<u16>").Decode([]byte{0xbc, 0x05, 1, 2, 3, 4, 5})
	require.True(t, errors.Is(err, codec.ErrInvalidContainerLength))

	_, err = MustParse("list<string>").Decode([]byte{0xbc, 0x00})
	require.True(t, errors.Is(err, codec.ErrUnexpectedEncodingType))

	_, err = MustParse("u8").Decode([]byte{0x01, 0x01})
	require.True(t, errors.Is(err, codec.ErrTrailingData))
}

func TestEncodeTo_DecodeFrom(t *testing.T) {
	typ := MustParse("list<u32>")
	w := wireio.NewBufferWriter()
	defer w.Release()
	require.NoError(t, typ.EncodeTo(w, []string{"1", "2"}))
	require.NoError(t, typ.EncodeTo(w, []string{"3"}))

	r := wireio.NewBufferReader(w.Bytes())
	first, err := typ.DecodeFrom(r)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2"}, first)
	second, err := typ.DecodeFrom(r)
	require.NoError(t, err)
	require.Equal(t, []string{"3"}, second)
	require.Zero(t, r.Remaining())
}

func TestNames(t *testing.T) {
	names := Names()
	require.Contains(t, names, "u8")
	require.Contains(t, names, "set<string>")
	require.Contains(t, names, "hashset<bool>")
	require.NotContains(t, names, "set<f64>")
	for _, name := range names {
		_, err := Parse(name)
		require.NoError(t, err, name)
	}
}
