package recarray

import (
	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-recarray/internal/dims"
	"github.com/robert-malhotra/go-recarray/internal/itemtype"
	"github.com/robert-malhotra/go-recarray/internal/layout"
	"github.com/robert-malhotra/go-recarray/internal/rerr"
)

// getValue marshals the selection under axis d at byte offset off.
// Collapsed axes fold into the offset without adding nesting; the
// expanded field axis yields a Tuple, expanded array axes yield []any.
func getValue(m *dims.Model, lay *layout.Layout, data []byte, d, off int) any {
	ax := m.Axes[d]
	if d == 0 {
		if !ax.Expanded {
			return getField(lay.Field(ax.Start), data, off)
		}
		sel := m.Selection(0)
		out := make(Tuple, len(sel))
		for j, k := range sel {
			out[j] = getField(lay.Field(k), data, off)
		}
		return out
	}
	if !ax.Expanded {
		return getValue(m, lay, data, d-1, off+ax.Size*ax.Start)
	}
	sel := m.Selection(d)
	out := make([]any, len(sel))
	for j, k := range sel {
		out[j] = getValue(m, lay, data, d-1, off+ax.Size*k)
	}
	return out
}

// setValue is the structural inverse of getValue. Arity must match the
// selection exactly at every level. A bare scalar stands in for a
// one-element sequence. Writes are not rolled back on failure.
func setValue(m *dims.Model, lay *layout.Layout, data []byte, d, off int, v any) error {
	ax := m.Axes[d]
	if d == 0 {
		sel := m.Selection(0)
		if tup, ok := v.(Tuple); ok {
			if len(tup) != len(sel) {
				return errors.Wrap(rerr.ErrShape, "unequal sequence lengths")
			}
			for j, k := range sel {
				if err := setField(lay.Field(k), data, off, tup[j]); err != nil {
					return err
				}
			}
			return nil
		}
		if len(sel) != 1 {
			return errors.Wrapf(rerr.ErrShape, "expected a %d-field tuple, got %T", len(sel), v)
		}
		return setField(lay.Field(sel[0]), data, off, v)
	}

	sel := m.Selection(d)
	if list, ok := v.([]any); ok {
		if len(list) != len(sel) {
			return errors.Wrap(rerr.ErrShape, "unequal sequence lengths")
		}
		for j, k := range sel {
			if err := setValue(m, lay, data, d-1, off+ax.Size*k, list[j]); err != nil {
				return err
			}
		}
		return nil
	}
	if len(sel) != 1 {
		return errors.Wrapf(rerr.ErrShape, "expected a %d-element sequence, got %T", len(sel), v)
	}
	return setValue(m, lay, data, d-1, off+ax.Size*sel[0], v)
}

func getField(f layout.Field, data []byte, off int) any {
	p := off + f.Offset
	return itemtype.Get(f.Type, data[p:p+f.Size], f.Swap)
}

func setField(f layout.Field, data []byte, off int, v any) error {
	p := off + f.Offset
	return itemtype.Set(f.Type, data[p:p+f.Size], f.Swap, v)
}
