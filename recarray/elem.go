package recarray

import (
	"bytes"
	"math"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-recarray/internal/itemtype"
	"github.com/robert-malhotra/go-recarray/internal/layout"
	"github.com/robert-malhotra/go-recarray/internal/rerr"
)

// ElemAdapter exposes one element type to a host array runtime as a
// quartet of byte-level primitives plus min/max reducers over packed
// runs of elements. GetItem and SetItem use the same value forms as
// record marshaling; Compare orders two elements with NaN sorting
// after every number; Min and Max skip NaN and return nil for an
// empty run.
type ElemAdapter struct {
	Code    string
	Size    int
	GetItem func(b []byte) any
	SetItem func(b []byte, v any) error
	Compare func(a, b []byte) int
	Min     func(buf []byte) any
	Max     func(buf []byte) any
}

// AdapterFor builds the adapter for a single type code under the given
// byte order.
func AdapterFor(code string, endian Endian) (*ElemAdapter, error) {
	if !itemtype.ValidEndian(byte(endian)) {
		return nil, errors.Wrap(rerr.ErrFormat, "unknown endian type")
	}
	lay, _, err := layout.Parse(string([]byte{byte(endian)}) + code)
	if err != nil {
		return nil, err
	}
	if lay.NumFields() != 1 {
		return nil, errors.Wrapf(rerr.ErrFormat, "expected a single type code, got %q", code)
	}
	f := lay.Field(0)

	a := &ElemAdapter{
		Code: lay.FormatString(byte(endian), nil)[1:],
		Size: f.Size,
		GetItem: func(b []byte) any {
			return itemtype.Get(f.Type, b[:f.Size], f.Swap)
		},
		SetItem: func(b []byte, v any) error {
			return itemtype.Set(f.Type, b[:f.Size], f.Swap, v)
		},
	}
	a.Compare = compareFunc(f)
	a.Min = reduceFunc(f, a.Compare, -1)
	a.Max = reduceFunc(f, a.Compare, 1)
	return a, nil
}

func compareFunc(f layout.Field) func(a, b []byte) int {
	switch f.Type {
	case itemtype.String, itemtype.Char8:
		return func(a, b []byte) int {
			return bytes.Compare(a[:f.Size], b[:f.Size])
		}
	case itemtype.Float32:
		return func(a, b []byte) int {
			av := float32(itemtype.Get(f.Type, a[:f.Size], f.Swap).(float64))
			bv := float32(itemtype.Get(f.Type, b[:f.Size], f.Swap).(float64))
			return compareFloat32(av, bv)
		}
	case itemtype.Float64:
		return func(a, b []byte) int {
			av := itemtype.Get(f.Type, a[:f.Size], f.Swap).(float64)
			bv := itemtype.Get(f.Type, b[:f.Size], f.Swap).(float64)
			return compareFloat64(av, bv)
		}
	case itemtype.Complex32, itemtype.Complex64:
		return func(a, b []byte) int {
			av := itemtype.Get(f.Type, a[:f.Size], f.Swap).(complex128)
			bv := itemtype.Get(f.Type, b[:f.Size], f.Swap).(complex128)
			if c := compareFloat64(real(av), real(bv)); c != 0 {
				return c
			}
			return compareFloat64(imag(av), imag(bv))
		}
	default:
		return func(a, b []byte) int {
			av := itemtype.Get(f.Type, a[:f.Size], f.Swap).(int64)
			bv := itemtype.Get(f.Type, b[:f.Size], f.Swap).(int64)
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	}
}

// reduceFunc builds a min or max reducer. want is the Compare result
// the candidate must beat: -1 selects minima, 1 maxima. Floats reduce
// through their NaN-aware helpers instead of Compare so NaN elements
// are skipped rather than sorted.
func reduceFunc(f layout.Field, cmp func(a, b []byte) int, want int) func(buf []byte) any {
	switch f.Type {
	case itemtype.Float32:
		return func(buf []byte) any {
			found := false
			var best float32
			for p := 0; p+f.Size <= len(buf); p += f.Size {
				v := float32(itemtype.Get(f.Type, buf[p:p+f.Size], f.Swap).(float64))
				if math32.IsNaN(v) {
					continue
				}
				switch {
				case !found:
					best, found = v, true
				case want > 0:
					best = math32.Max(best, v)
				default:
					best = math32.Min(best, v)
				}
			}
			if !found {
				if len(buf) < f.Size {
					return nil
				}
				return float64(math32.NaN())
			}
			return float64(best)
		}
	case itemtype.Float64:
		return func(buf []byte) any {
			found := false
			var best float64
			for p := 0; p+f.Size <= len(buf); p += f.Size {
				v := itemtype.Get(f.Type, buf[p:p+f.Size], f.Swap).(float64)
				if math.IsNaN(v) {
					continue
				}
				switch {
				case !found:
					best, found = v, true
				case want > 0:
					best = math.Max(best, v)
				default:
					best = math.Min(best, v)
				}
			}
			if !found {
				if len(buf) < f.Size {
					return nil
				}
				return math.NaN()
			}
			return best
		}
	default:
		return func(buf []byte) any {
			var best []byte
			for p := 0; p+f.Size <= len(buf); p += f.Size {
				cur := buf[p : p+f.Size]
				if best == nil || cmp(cur, best) == want {
					best = cur
				}
			}
			if best == nil {
				return nil
			}
			return itemtype.Get(f.Type, best, f.Swap)
		}
	}
}

func compareFloat32(a, b float32) int {
	switch {
	case math32.IsNaN(a) && math32.IsNaN(b):
		return 0
	case math32.IsNaN(a):
		return 1
	case math32.IsNaN(b):
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat64(a, b float64) int {
	switch {
	case math.IsNaN(a) && math.IsNaN(b):
		return 0
	case math.IsNaN(a):
		return 1
	case math.IsNaN(b):
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
