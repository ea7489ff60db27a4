package recarray

import (
	"math"

	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-recarray/internal/dims"
	"github.com/robert-malhotra/go-recarray/internal/rerr"
)

// Tuple holds one record's field values in marshaled form.
type Tuple []any

// Key is a multi-axis index: its components bind expanded axes from
// the outermost inward.
type Key []any

// Span selects a range on one axis. Start, Stop, and Step follow
// slice semantics: negative bounds count from the end of the axis,
// out-of-range bounds clamp, and a zero Step means 1. Use End for "to
// the end" (or "from the last element" when stepping backward) and
// Begin as the Stop of a backward span that runs through element 0.
type Span struct {
	Start, Stop, Step int
}

// End and Begin are the open-bound markers for Span.
const (
	End   = math.MaxInt
	Begin = math.MinInt
)

// NewSpan returns a forward span over [start, stop).
func NewSpan(start, stop int) Span { return Span{Start: start, Stop: stop, Step: 1} }

// By returns the span with the given step.
func (s Span) By(step int) Span {
	s.Step = step
	return s
}

// All spans an entire axis.
func All() Span { return Span{Stop: End, Step: 1} }

// Get reads through the view. The key is an int, a Span, or a Key of
// those; Key components bind expanded axes outermost first. While any
// axis stays expanded the result is a derived *Record sharing the
// buffer; once every axis is bound the result is the selected field's
// scalar value.
func (r *Record) Get(key any) (any, error) {
	m, err := r.view(key)
	if err != nil {
		return nil, err
	}
	if m.AnyExpanded() {
		return &Record{
			endian: r.endian,
			lay:    r.lay.Clone(byte(r.endian)),
			dim:    m,
			data:   r.data,
		}, nil
	}
	return getValue(m, r.lay, r.data, m.NumAxes()-1, 0), nil
}

// Set writes through the view under the same keys Get accepts. The
// value is another *Record (converted field by field through the cast
// matrix), or nested data as for SetValue. A nil value is a deletion
// attempt and always fails.
func (r *Record) Set(key, value any) error {
	if value == nil {
		return errors.Wrap(rerr.ErrValue, "cannot delete record items")
	}
	m, err := r.view(key)
	if err != nil {
		return err
	}
	if src, ok := value.(*Record); ok {
		dst := &Record{endian: r.endian, lay: r.lay, dim: m, data: r.data}
		if err := compareRecords(dst, src); err != nil {
			return err
		}
		return castRecords(dst, src)
	}
	return setValue(m, r.lay, r.data, m.NumAxes()-1, 0, value)
}

// view clones the axis model and binds the key onto it.
func (r *Record) view(key any) (*dims.Model, error) {
	m := r.dim.Clone()
	if k, ok := key.(Key); ok {
		valid := m.Expanded()
		if len(k) > len(valid) {
			return nil, errors.Wrap(rerr.ErrShape, "too many indices")
		}
		for j, sub := range k {
			if err := bindAxis(m, valid[len(valid)-1-j], sub); err != nil {
				return nil, err
			}
		}
		return m, nil
	}

	ax := m.OutermostExpanded()
	if ax < 0 {
		// a fully collapsed view still answers index 0
		if n, ok := key.(int); ok && (n == 0 || n == -1) {
			return m, nil
		}
		return nil, errors.Wrap(rerr.ErrShape, "record index out of range")
	}
	if err := bindAxis(m, ax, key); err != nil {
		return nil, err
	}
	return m, nil
}

func bindAxis(m *dims.Model, axis int, key any) error {
	switch k := key.(type) {
	case int:
		if k < 0 {
			k += m.Len(axis)
		}
		return m.SetIndex(axis, k)
	case Span:
		start, stop, step := normalizeSpan(k, m.Len(axis))
		m.SetSlice(axis, start, stop, step)
		return nil
	}
	return errors.Wrapf(rerr.ErrShape, "bad index type %T", key)
}

// normalizeSpan resolves a span against an axis length the way slices
// do: negative bounds count from the end and everything clamps into
// range.
func normalizeSpan(s Span, length int) (start, stop, step int) {
	step = s.Step
	if step == 0 {
		step = 1
	}
	start = resolveBound(s.Start, length, step)
	stop = resolveBound(s.Stop, length, step)
	return start, stop, step
}

func resolveBound(v, length, step int) int {
	switch v {
	case End:
		if step < 0 {
			return length - 1
		}
		return length
	case Begin:
		if step < 0 {
			return -1
		}
		return 0
	}
	if v < 0 {
		v += length
	}
	if v < 0 {
		if step < 0 {
			return -1
		}
		return 0
	}
	if v >= length {
		if step < 0 {
			return length - 1
		}
		return length
	}
	return v
}
