// Package recarray provides views over packed binary record arrays:
// fixed-width heterogeneous records repeated along array axes over a
// shared byte buffer. Views are cheap: indexing and slicing never copy
// the buffer, only the bookkeeping, so writes through one view are
// visible through every overlapping view.
package recarray

import (
	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-recarray/internal/dims"
	"github.com/robert-malhotra/go-recarray/internal/itemtype"
	"github.com/robert-malhotra/go-recarray/internal/layout"
	"github.com/robert-malhotra/go-recarray/internal/rerr"
)

// Endian tags a byte order in format strings and conversions.
type Endian byte

const (
	Native  Endian = '='
	Little  Endian = '<'
	Big     Endian = '>'
	Network Endian = '!'
)

// Layout is a parsed record format: the ordered field table with
// offsets, widths, and byte order.
type Layout struct {
	inner  *layout.Layout
	endian Endian
}

// ParseFormat parses a format string into a record layout. The grammar
// is an optional endian tag ('=', '<', '>', '!') followed by
// comma-separated field codes; see the package types: s<width>, c8,
// I8, i8, I16, i16, I32, i32, f32, f64, F32, F64. A code may be
// shortened to any unambiguous prefix ("i" is i32, "f" is f64).
func ParseFormat(format string) (*Layout, error) {
	inner, endian, err := layout.Parse(format)
	if err != nil {
		return nil, err
	}
	return &Layout{inner: inner, endian: Endian(endian)}, nil
}

// NumFields returns the field count.
func (l *Layout) NumFields() int { return l.inner.NumFields() }

// Size returns the record width in bytes.
func (l *Layout) Size() int { return l.inner.Size() }

// Endian returns the layout's byte-order tag.
func (l *Layout) Endian() Endian { return l.endian }

// Format returns the canonical form of the format string.
func (l *Layout) Format() string {
	return l.inner.FormatString(byte(l.endian), nil)
}

// Record is a view over a record array: a shared byte buffer plus an
// exclusively owned field layout and axis model. Derived views (from
// Get with a partial key) alias the same buffer.
type Record struct {
	endian Endian
	lay    *layout.Layout
	dim    *dims.Model
	data   []byte
}

// FromSequence builds a record array from nested data: lists ([]any)
// for the array axes around a Tuple per record. Sibling lists must
// have equal lengths and all tuples equal arity. Without WithFormat
// the field types are inferred per position (complex over float over
// integer over string; the widest observed string wins) and the byte
// order is native.
func FromSequence(v any, opts ...Option) (*Record, error) {
	o := applyOptions(opts)

	outer, fields, err := inferShape(v)
	if err != nil {
		return nil, err
	}
	format := o.format
	if format == "" {
		if format, err = buildFormat(fields); err != nil {
			return nil, err
		}
	}
	lay, endian, err := layout.Parse(format)
	if err != nil {
		return nil, err
	}

	lengths := make([]int, 0, len(outer)+1)
	lengths = append(lengths, lay.NumFields())
	for j := len(outer) - 1; j >= 0; j-- {
		lengths = append(lengths, outer[j])
	}
	m := dims.FromShape(lengths, lay.Size())

	r := &Record{endian: Endian(endian), lay: lay, dim: m, data: make([]byte, m.Total)}
	if err := setValue(m, lay, r.data, m.NumAxes()-1, 0, v); err != nil {
		return nil, err
	}
	return r, nil
}

// FromBytes wraps a byte buffer as a record array without copying it.
// The view has one array axis. With WithCount the buffer must hold at
// least that many records and the view covers the leading ones;
// without it the buffer size must be an exact multiple of the record
// size. The format defaults to "c", one character per record.
func FromBytes(data []byte, opts ...Option) (*Record, error) {
	o := applyOptions(opts)

	format := o.format
	if format == "" {
		format = "c"
	}
	lay, endian, err := layout.Parse(format)
	if err != nil {
		return nil, err
	}

	count := o.count
	if !o.hasCount || count < 0 {
		if len(data)%lay.Size() != 0 {
			return nil, errors.Wrap(rerr.ErrValue, "buffer size not a multiple of the record size")
		}
		count = len(data) / lay.Size()
	} else if len(data) < count*lay.Size() {
		return nil, errors.Wrap(rerr.ErrValue, "buffer size is less than the requested size")
	}

	m := dims.FromShape([]int{lay.NumFields(), count}, lay.Size())
	return &Record{endian: Endian(endian), lay: lay, dim: m, data: data}, nil
}

// Len returns the length of the outermost expanded axis, or 1 for a
// fully collapsed view so that Get(0) is always legal.
func (r *Record) Len() int { return r.dim.LenOuter() }

// Shape returns the expanded axis lengths, outermost first. The field
// axis counts while it stays expanded.
func (r *Record) Shape() []int { return r.dim.Shape() }

// NumFields returns the number of currently selected fields.
func (r *Record) NumFields() int { return r.dim.Len(0) }

// Size returns the full record width in bytes in the underlying
// buffer, independent of any field selection.
func (r *Record) Size() int { return r.lay.Size() }

// Endian returns the view's byte-order tag.
func (r *Record) Endian() Endian { return r.endian }

// Format returns the canonical format of the selected fields,
// including the endian tag.
func (r *Record) Format() string {
	return r.lay.FormatString(byte(r.endian), r.dim.Selection(0))
}

// Bytes returns the shared underlying buffer. Mutating it is visible
// through every view over it.
func (r *Record) Bytes() []byte { return r.data }

// Value marshals the whole view: a Tuple per record (or a bare scalar
// where the field axis is collapsed), wrapped in a []any per expanded
// array axis.
func (r *Record) Value() any {
	return getValue(r.dim, r.lay, r.data, r.dim.NumAxes()-1, 0)
}

// SetValue unmarshals nested data into the whole view. Arity must
// match the selection exactly at every level; on failure sibling
// elements already written stay written.
func (r *Record) SetValue(v any) error {
	if v == nil {
		return errors.Wrap(rerr.ErrValue, "cannot delete record items")
	}
	return setValue(r.dim, r.lay, r.data, r.dim.NumAxes()-1, 0, v)
}

// Copy returns a compacted deep copy of the selection: only selected
// fields, collapsed axes dropped, a freshly allocated buffer, and an
// optional byte-order conversion.
func (r *Record) Copy(endian ...Endian) (*Record, error) {
	e := r.endian
	if len(endian) > 0 {
		e = endian[0]
		if !itemtype.ValidEndian(byte(e)) {
			return nil, errors.Wrap(rerr.ErrFormat, "unknown endian type")
		}
	}

	lay := r.lay.Select(r.dim.Selection(0), byte(e))
	m := r.dim.Compact(lay.Size())
	dst := &Record{endian: e, lay: lay, dim: m, data: make([]byte, m.Total)}
	if err := compareRecords(dst, r); err != nil {
		return nil, err
	}
	if err := castRecords(dst, r); err != nil {
		return nil, err
	}
	return dst, nil
}

// ToBytes packs the selection into a new byte slice, optionally
// converting byte order. The result is Copy's buffer.
func (r *Record) ToBytes(endian ...Endian) ([]byte, error) {
	c, err := r.Copy(endian...)
	if err != nil {
		return nil, err
	}
	return c.data, nil
}

// SetShape reshapes the view in place. The shape is given outermost
// first and must end with the field count; the total byte size cannot
// change. Any prior index or slice selection is discarded.
func (r *Record) SetShape(shape ...int) error {
	if len(shape) == 0 {
		return errors.Wrap(rerr.ErrShape, "expecting at least one axis")
	}
	if shape[len(shape)-1] != r.lay.NumFields() {
		return errors.Wrap(rerr.ErrShape, "innermost axis must equal the field count")
	}
	lengths := make([]int, 0, len(shape))
	for j := len(shape) - 1; j >= 0; j-- {
		lengths = append(lengths, shape[j])
	}
	m := dims.FromShape(lengths, r.lay.Size())
	if m.Total != r.dim.Total {
		return errors.Wrap(rerr.ErrShape, "array shapes not equal")
	}
	r.dim = m
	return nil
}

// SetFormat reinterprets the record bytes under a new format. The new
// record size must equal the old, and the field axis must be unsliced:
// a field selection holds absolute positions into the layout it was
// made against, which mean nothing under the replacement.
func (r *Record) SetFormat(format string) error {
	lay, endian, err := layout.Parse(format)
	if err != nil {
		return err
	}
	if lay.Size() != r.lay.Size() {
		return errors.Wrap(rerr.ErrShape, "format string sizes not equal")
	}
	ax := r.dim.Axes[0]
	if !ax.Expanded || ax.Start != 0 || ax.Step != 1 || ax.Stop != ax.Leng {
		return errors.Wrap(rerr.ErrValue, "cannot change format of a non-contiguous selection")
	}
	r.dim.Axes[0].Stop = lay.NumFields()
	r.dim.Axes[0].Leng = lay.NumFields()
	r.lay = lay
	r.endian = Endian(endian)
	return nil
}
