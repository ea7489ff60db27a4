package recarray

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-recarray/internal/itemtype"
	"github.com/robert-malhotra/go-recarray/internal/rerr"
)

// fieldSpec accumulates the inferred type of one field position. A
// position holds either strings (the widest observed width wins) or
// numerics (the widest of Complex64 > Float64 > SInt32 wins); mixing
// the two kinds is an error, since no cast connects them.
type fieldSpec struct {
	typ   itemtype.Type // -1 until something is observed
	width int           // widest string seen
}

type shapeWalker struct {
	outer      []int
	fields     []fieldSpec
	tupleDepth int
}

// inferShape walks nested data and returns the array-axis lengths
// (outermost first) and the per-position field observations. Lists
// must nest uniformly with a Tuple per record at the deepest level.
func inferShape(v any) ([]int, []fieldSpec, error) {
	w := &shapeWalker{tupleDepth: -1}
	if err := w.walk(0, v); err != nil {
		return nil, nil, err
	}
	if w.tupleDepth < 0 {
		return nil, nil, errors.Wrap(rerr.ErrShape, "cannot determine shape of data")
	}
	return w.outer, w.fields, nil
}

func (w *shapeWalker) walk(depth int, v any) error {
	switch x := v.(type) {
	case Tuple:
		if w.tupleDepth < 0 {
			if depth != len(w.outer) {
				return errors.Wrap(rerr.ErrShape, "cannot determine shape of data")
			}
			w.tupleDepth = depth
			w.fields = make([]fieldSpec, len(x))
			for j := range w.fields {
				w.fields[j].typ = -1
			}
		} else if depth != w.tupleDepth || len(x) != len(w.fields) {
			return errors.Wrap(rerr.ErrShape, "cannot determine shape of data")
		}
		for j, el := range x {
			if err := w.observe(j, el); err != nil {
				return err
			}
		}
		return nil
	case []any:
		if w.tupleDepth >= 0 && depth >= w.tupleDepth {
			return errors.Wrap(rerr.ErrShape, "cannot determine shape of data")
		}
		if depth == len(w.outer) {
			w.outer = append(w.outer, len(x))
		} else if w.outer[depth] != len(x) {
			return errors.Wrap(rerr.ErrShape, "cannot determine shape of data")
		}
		for _, el := range x {
			if err := w.walk(depth+1, el); err != nil {
				return err
			}
		}
		return nil
	}
	return errors.Wrapf(rerr.ErrShape, "cannot determine shape of data from %T", v)
}

func (w *shapeWalker) observe(j int, v any) error {
	s := &w.fields[j]
	switch x := v.(type) {
	case string:
		return s.observeString(j, len(x))
	case []byte:
		return s.observeString(j, len(x))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return s.observeNumeric(j, itemtype.SInt32)
	case float32, float64:
		return s.observeNumeric(j, itemtype.Float64)
	case complex64, complex128:
		return s.observeNumeric(j, itemtype.Complex64)
	}
	return errors.Wrapf(rerr.ErrType, "cannot infer a field type from %T", v)
}

func (s *fieldSpec) observeString(j, width int) error {
	if s.typ > itemtype.String {
		return errors.Wrapf(rerr.ErrType, "cannot mix string and numeric values in field %d", j)
	}
	s.typ = itemtype.String
	if width > s.width {
		s.width = width
	}
	return nil
}

func (s *fieldSpec) observeNumeric(j int, typ itemtype.Type) error {
	if s.typ == itemtype.String {
		return errors.Wrapf(rerr.ErrType, "cannot mix string and numeric values in field %d", j)
	}
	if s.typ < typ {
		s.typ = typ
	}
	return nil
}

// buildFormat renders the inferred field types as a native-order
// format string.
func buildFormat(fields []fieldSpec) (string, error) {
	if len(fields) == 0 {
		return "", errors.Wrap(rerr.ErrShape, "cannot determine shape of data")
	}
	var b strings.Builder
	for j, f := range fields {
		if j > 0 {
			b.WriteByte(',')
		}
		switch f.typ {
		case itemtype.Complex64:
			b.WriteString("F64")
		case itemtype.Float64:
			b.WriteString("f64")
		case itemtype.SInt32:
			b.WriteString("i32")
		case itemtype.String:
			fmt.Fprintf(&b, "s%d", f.width)
		default:
			return "", errors.Wrapf(rerr.ErrType, "unknown format type for field %d", j)
		}
	}
	return b.String(), nil
}
