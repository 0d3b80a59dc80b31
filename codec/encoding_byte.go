package codec

import "fmt"

// EncodingByte is the tag that precedes every encoded value.
type EncodingByte uint8

const (
	PositiveFixIntMin EncodingByte = 0x00
	PositiveFixIntMax EncodingByte = 0x7f

	U8  EncodingByte = 0x80
	U16 EncodingByte = 0x81
	U32 EncodingByte = 0x82
	U64 EncodingByte = 0x83
	I8  EncodingByte = 0x84
	I16 EncodingByte = 0x85
	I32 EncodingByte = 0x86
	I64 EncodingByte = 0x87
	F32 EncodingByte = 0x88
	F64 EncodingByte = 0x89

	ReservedMin EncodingByte = 0x8a
	ReservedMax EncodingByte = 0xb4

	Table     EncodingByte = 0xb5
	Error     EncodingByte = 0xb6
	Handle    EncodingByte = 0xb7
	Variant   EncodingByte = 0xb8
	Structure EncodingByte = 0xb9
	Array     EncodingByte = 0xba
	Map       EncodingByte = 0xbb
	Binary    EncodingByte = 0xbc
	String    EncodingByte = 0xbd
	Nil       EncodingByte = 0xbe
	Extension EncodingByte = 0xbf

	NegativeFixIntMin EncodingByte = 0xc0
	NegativeFixIntMax EncodingByte = 0xff

	False = PositiveFixIntMin
	True  EncodingByte = 0x01
)

func (e EncodingByte) IsPositiveFixInt() bool {
	return e <= PositiveFixIntMax
}

func (e EncodingByte) IsNegativeFixInt() bool {
	return e >= NegativeFixIntMin
}

func (e EncodingByte) IsFixInt() bool {
	return e.IsPositiveFixInt() || e.IsNegativeFixInt()
}

func (e EncodingByte) IsReserved() bool {
	return e >= ReservedMin && e <= ReservedMax
}

// PayloadWidth returns the number of fixed payload bytes that follow a
// numeric tag, or zero for tags that carry no fixed-width payload.
func (e EncodingByte) PayloadWidth() int {
	switch e {
	case U8, I8:
		return 1
	case U16, I16:
		return 2
	case U32, I32, F32:
		return 4
	case U64, I64, F64:
		return 8
	default:
		return 0
	}
}

var tagNames = map[EncodingByte]string{
	U8:        "U8",
	U16:       "U16",
	U32:       "U32",
	U64:       "U64",
	I8:        "I8",
	I16:       "I16",
	I32:       "I32",
	I64:       "I64",
	F32:       "F32",
	F64:       "F64",
	Table:     "Table",
	Error:     "Error",
	Handle:    "Handle",
	Variant:   "Variant",
	Structure: "Structure",
	Array:     "Array",
	Map:       "Map",
	Binary:    "Binary",
	String:    "String",
	Nil:       "Nil",
	Extension: "Extension",
}

func (e EncodingByte) String() string {
	switch {
	case e.IsPositiveFixInt():
		return fmt.Sprintf("FixInt(%d)", uint8(e))
	case e.IsNegativeFixInt():
		return fmt.Sprintf("FixInt(%d)", int8(e))
	case e.IsReserved():
		return fmt.Sprintf("Reserved(0x%02x)", uint8(e))
	}
	return tagNames[e]
}
