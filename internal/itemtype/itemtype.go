// Package itemtype defines the element types a record field can hold:
// their format codes, byte widths, value codecs, and the directional
// conversion matrix between them.
package itemtype

import "encoding/binary"

// Type identifies one element type. The order is fixed: format parsing
// scans codes from Complex64 down to String, and the cast matrix is
// indexed by these values.
type Type int

const (
	String Type = iota // byte string, width set per field
	Char8              // single character
	UInt8
	SInt8
	UInt16
	SInt16
	UInt32
	SInt32
	Float32
	Float64
	Complex32 // two float32 values, real then imaginary
	Complex64 // two float64 values, real then imaginary
	NumTypes
)

// codes are the canonical format codes. A field spec in a format string
// may be any prefix of a code; capital I is unsigned, capital F complex.
var codes = [NumTypes]string{
	String:    "s",
	Char8:     "c8",
	UInt8:     "I8",
	SInt8:     "i8",
	UInt16:    "I16",
	SInt16:    "i16",
	UInt32:    "I32",
	SInt32:    "i32",
	Float32:   "f32",
	Float64:   "f64",
	Complex32: "F32",
	Complex64: "F64",
}

// sizes are the fixed byte widths. String is 1 per character; the field
// width comes from the format string.
var sizes = [NumTypes]int{
	String:    1,
	Char8:     1,
	UInt8:     1,
	SInt8:     1,
	UInt16:    2,
	SInt16:    2,
	UInt32:    4,
	SInt32:    4,
	Float32:   4,
	Float64:   8,
	Complex32: 8,
	Complex64: 16,
}

// CodeOf returns the canonical format code for t.
func CodeOf(t Type) string { return codes[t] }

// SizeOf returns the byte width of t (per character for String).
func SizeOf(t Type) int { return sizes[t] }

func (t Type) String() string {
	if t >= 0 && t < NumTypes {
		return codes[t]
	}
	return "?"
}

var hostLittle = func() bool {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 1)
	return b[0] == 1
}()

// HostLittleEndian reports whether the host stores integers
// least-significant byte first.
func HostLittleEndian() bool { return hostLittle }

// Order returns the byte order a field with the given swap flag is
// stored in.
func Order(swap bool) binary.ByteOrder {
	if !swap {
		return binary.NativeEndian
	}
	if hostLittle {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// SwapFor reports whether fields under the given endian tag are stored
// opposite to host order. Tags are '=' (native), '<' (little), and
// '>' or '!' (big/network).
func SwapFor(endian byte) bool {
	switch endian {
	case '<':
		return !hostLittle
	case '>', '!':
		return hostLittle
	default:
		return false
	}
}

// ValidEndian reports whether c is a recognized endian tag.
func ValidEndian(c byte) bool {
	return c == '=' || c == '<' || c == '>' || c == '!'
}
