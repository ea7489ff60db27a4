package itemtype

import (
	"math"

	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-recarray/internal/rerr"
)

// Get decodes the field bytes b (exactly the field width) into the
// value form for t: int64 for integers, float64 for floats, complex128
// for complex types, and the full untrimmed width as string for String
// and Char8.
func Get(t Type, b []byte, swap bool) any {
	switch t {
	case String, Char8:
		return string(b)
	case UInt8, SInt8, UInt16, SInt16, UInt32, SInt32:
		return readInt(t, b, swap)
	case Float32, Float64:
		return readFloat(t, b, swap)
	case Complex32, Complex64:
		re, im := readComplex(t, b, swap)
		return complex(re, im)
	}
	return nil
}

// Set encodes v into the field bytes b, coercing across the value kinds
// the type accepts. Narrowing integer writes truncate two's-complement
// style; string writes are space-padded to the field width.
func Set(t Type, b []byte, swap bool, v any) error {
	switch t {
	case String:
		s, err := asString(t, v)
		if err != nil {
			return err
		}
		n := copy(b, s)
		for i := n; i < len(b); i++ {
			b[i] = ' '
		}
		return nil
	case Char8:
		s, err := asString(t, v)
		if err != nil {
			return err
		}
		if len(s) == 0 {
			b[0] = ' '
			return nil
		}
		b[0] = s[0]
		return nil
	case UInt8, SInt8, UInt16, SInt16, UInt32, SInt32:
		n, err := asInt64(t, v)
		if err != nil {
			return err
		}
		writeInt(t, b, swap, n)
		return nil
	case Float32, Float64:
		f, err := asFloat64(t, v)
		if err != nil {
			return err
		}
		writeFloat(t, b, swap, f)
		return nil
	case Complex32, Complex64:
		c, err := asComplex128(t, v)
		if err != nil {
			return err
		}
		writeComplex(t, b, swap, real(c), imag(c))
		return nil
	}
	return errors.Wrapf(rerr.ErrInternal, "set on unknown type %d", t)
}

func readInt(t Type, b []byte, swap bool) int64 {
	order := Order(swap)
	switch t {
	case UInt8:
		return int64(b[0])
	case SInt8:
		return int64(int8(b[0]))
	case UInt16:
		return int64(order.Uint16(b))
	case SInt16:
		return int64(int16(order.Uint16(b)))
	case UInt32:
		return int64(order.Uint32(b))
	case SInt32:
		return int64(int32(order.Uint32(b)))
	}
	return 0
}

func writeInt(t Type, b []byte, swap bool, v int64) {
	order := Order(swap)
	switch t {
	case UInt8, SInt8:
		b[0] = byte(v)
	case UInt16, SInt16:
		order.PutUint16(b, uint16(v))
	case UInt32, SInt32:
		order.PutUint32(b, uint32(v))
	}
}

func readFloat(t Type, b []byte, swap bool) float64 {
	order := Order(swap)
	if t == Float32 {
		return float64(math.Float32frombits(order.Uint32(b)))
	}
	return math.Float64frombits(order.Uint64(b))
}

func writeFloat(t Type, b []byte, swap bool, f float64) {
	order := Order(swap)
	if t == Float32 {
		order.PutUint32(b, math.Float32bits(float32(f)))
		return
	}
	order.PutUint64(b, math.Float64bits(f))
}

// readComplex decodes the two component floats, each carrying the swap
// flag independently.
func readComplex(t Type, b []byte, swap bool) (re, im float64) {
	if t == Complex32 {
		return readFloat(Float32, b[:4], swap), readFloat(Float32, b[4:8], swap)
	}
	return readFloat(Float64, b[:8], swap), readFloat(Float64, b[8:16], swap)
}

func writeComplex(t Type, b []byte, swap bool, re, im float64) {
	if t == Complex32 {
		writeFloat(Float32, b[:4], swap, re)
		writeFloat(Float32, b[4:8], swap, im)
		return
	}
	writeFloat(Float64, b[:8], swap, re)
	writeFloat(Float64, b[8:16], swap, im)
}

func asInt64(t Type, v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case float32:
		return int64(n), nil
	case float64:
		return int64(n), nil
	}
	return 0, errors.Wrapf(rerr.ErrType, "cannot store %T in %s field", v, codes[t])
}

func asFloat64(t Type, v any) (float64, error) {
	switch f := v.(type) {
	case float32:
		return float64(f), nil
	case float64:
		return f, nil
	}
	if n, err := asInt64(t, v); err == nil {
		return float64(n), nil
	}
	return 0, errors.Wrapf(rerr.ErrType, "cannot store %T in %s field", v, codes[t])
}

func asComplex128(t Type, v any) (complex128, error) {
	switch c := v.(type) {
	case complex64:
		return complex128(c), nil
	case complex128:
		return c, nil
	}
	if f, err := asFloat64(t, v); err == nil {
		return complex(f, 0), nil
	}
	return 0, errors.Wrapf(rerr.ErrType, "cannot store %T in %s field", v, codes[t])
}

func asString(t Type, v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	}
	return "", errors.Wrapf(rerr.ErrType, "cannot store %T in %s field", v, codes[t])
}
