package itemtype

import (
	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-recarray/internal/rerr"
)

// CastFunc converts one field's bytes into another field's bytes. Both
// slices are exactly their field widths; each side carries its own swap
// flag.
type CastFunc func(dst, src []byte, dstSwap, srcSwap bool)

// casts is the conversion matrix, indexed [destination][source]. It is
// sparse and directional: a nil entry means the conversion is not
// defined. Integers accept any integer of equal or narrower width
// regardless of signedness, floats accept integers and floats, complex
// types accept integers, floats (imaginary part zeroed) and complexes.
// There is no float or complex to integer entry and no string to
// numeric entry.
var casts = [NumTypes][NumTypes]CastFunc{
	String: {
		String: castStringString,
		Char8:  castStringChar,
	},
	Char8: {
		String: castCharByte,
		Char8:  castCharByte,
	},
	UInt8:     intRow(UInt8, UInt8, SInt8),
	SInt8:     intRow(SInt8, UInt8, SInt8),
	UInt16:    intRow(UInt16, UInt8, SInt8, UInt16, SInt16),
	SInt16:    intRow(SInt16, UInt8, SInt8, UInt16, SInt16),
	UInt32:    intRow(UInt32, UInt8, SInt8, UInt16, SInt16, UInt32, SInt32),
	SInt32:    intRow(SInt32, UInt8, SInt8, UInt16, SInt16, UInt32, SInt32),
	Float32:   floatRow(Float32),
	Float64:   floatRow(Float64),
	Complex32: complexRow(Complex32),
	Complex64: complexRow(Complex64),
}

var allInts = []Type{UInt8, SInt8, UInt16, SInt16, UInt32, SInt32}

func intRow(dt Type, srcs ...Type) (row [NumTypes]CastFunc) {
	for _, st := range srcs {
		row[st] = intFromInt(dt, st)
	}
	return row
}

func floatRow(dt Type) (row [NumTypes]CastFunc) {
	for _, st := range allInts {
		row[st] = floatFromInt(dt, st)
	}
	row[Float32] = floatFromFloat(dt, Float32)
	row[Float64] = floatFromFloat(dt, Float64)
	return row
}

func complexRow(dt Type) (row [NumTypes]CastFunc) {
	for _, st := range allInts {
		row[st] = complexFromInt(dt, st)
	}
	row[Float32] = complexFromFloat(dt, Float32)
	row[Float64] = complexFromFloat(dt, Float64)
	row[Complex32] = complexFromComplex(dt, Complex32)
	row[Complex64] = complexFromComplex(dt, Complex64)
	return row
}

func intFromInt(dt, st Type) CastFunc {
	return func(dst, src []byte, dsw, ssw bool) {
		writeInt(dt, dst, dsw, readInt(st, src, ssw))
	}
}

func floatFromInt(dt, st Type) CastFunc {
	return func(dst, src []byte, dsw, ssw bool) {
		writeFloat(dt, dst, dsw, float64(readInt(st, src, ssw)))
	}
}

func floatFromFloat(dt, st Type) CastFunc {
	return func(dst, src []byte, dsw, ssw bool) {
		writeFloat(dt, dst, dsw, readFloat(st, src, ssw))
	}
}

func complexFromInt(dt, st Type) CastFunc {
	return func(dst, src []byte, dsw, ssw bool) {
		writeComplex(dt, dst, dsw, float64(readInt(st, src, ssw)), 0)
	}
}

func complexFromFloat(dt, st Type) CastFunc {
	return func(dst, src []byte, dsw, ssw bool) {
		writeComplex(dt, dst, dsw, readFloat(st, src, ssw), 0)
	}
}

func complexFromComplex(dt, st Type) CastFunc {
	return func(dst, src []byte, dsw, ssw bool) {
		re, im := readComplex(st, src, ssw)
		writeComplex(dt, dst, dsw, re, im)
	}
}

// castStringString copies the overlapping width and space-pads the rest
// of the destination.
func castStringString(dst, src []byte, _, _ bool) {
	n := copy(dst, src)
	for i := n; i < len(dst); i++ {
		dst[i] = ' '
	}
}

func castStringChar(dst, src []byte, _, _ bool) {
	dst[0] = src[0]
	for i := 1; i < len(dst); i++ {
		dst[i] = ' '
	}
}

func castCharByte(dst, src []byte, _, _ bool) {
	dst[0] = src[0]
}

// CanCast reports whether the matrix defines a conversion into dst from
// src.
func CanCast(dst, src Type) bool {
	return casts[dst][src] != nil
}

// Cast converts the src field bytes into the dst field bytes.
func Cast(dst Type, db []byte, dstSwap bool, src Type, sb []byte, srcSwap bool) error {
	fn := casts[dst][src]
	if fn == nil {
		return errors.Wrapf(rerr.ErrType, "cannot cast items (%s from %s)", codes[dst], codes[src])
	}
	fn(db, sb, dstSwap, srcSwap)
	return nil
}
