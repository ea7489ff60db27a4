package recarray

import (
	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-recarray/internal/dims"
	"github.com/robert-malhotra/go-recarray/internal/itemtype"
	"github.com/robert-malhotra/go-recarray/internal/layout"
	"github.com/robert-malhotra/go-recarray/internal/rerr"
)

// compareRecords verifies that src can be cast into dst: both must
// have the same number of expanded axes with pairwise equal selection
// lengths, and every paired field position must have an entry in the
// cast matrix.
func compareRecords(dst, src *Record) error {
	d1 := dst.dim.Expanded()
	d2 := src.dim.Expanded()
	if len(d1) != len(d2) {
		return errors.Wrap(rerr.ErrShape, "array shapes are not equal")
	}
	for j := range d1 {
		if dst.dim.Len(d1[j]) != src.dim.Len(d2[j]) {
			return errors.Wrap(rerr.ErrShape, "unequal sequence lengths")
		}
	}

	s1 := dst.dim.Selection(0)
	s2 := src.dim.Selection(0)
	n := len(s1)
	if len(s2) < n {
		n = len(s2)
	}
	for j := 0; j < n; j++ {
		f1 := dst.lay.Field(s1[j])
		f2 := src.lay.Field(s2[j])
		if !itemtype.CanCast(f1.Type, f2.Type) {
			return errors.Wrapf(rerr.ErrType, "cannot cast items (%s from %s)",
				itemtype.CodeOf(f1.Type), itemtype.CodeOf(f2.Type))
		}
	}
	return nil
}

// castRecords converts src's selection into dst's, element pair by
// element pair. compareRecords must have accepted the pair first.
func castRecords(dst, src *Record) error {
	return castWalk(
		dst.dim, dst.lay, dst.data, dst.dim.NumAxes()-1, 0,
		src.dim, src.lay, src.data, src.dim.NumAxes()-1, 0,
	)
}

// castWalk descends both axis models in lockstep. Collapsed axes fold
// into the byte offsets; paired expanded axes recurse element by
// element; at the field axes every paired field converts in place.
func castWalk(
	m1 *dims.Model, l1 *layout.Layout, b1 []byte, d1, off1 int,
	m2 *dims.Model, l2 *layout.Layout, b2 []byte, d2, off2 int,
) error {
	for d1 > 0 && !m1.Axes[d1].Expanded {
		off1 += m1.Axes[d1].Size * m1.Axes[d1].Start
		d1--
	}
	for d2 > 0 && !m2.Axes[d2].Expanded {
		off2 += m2.Axes[d2].Size * m2.Axes[d2].Start
		d2--
	}

	if d1 == 0 && d2 == 0 {
		s1 := m1.Selection(0)
		s2 := m2.Selection(0)
		n := len(s1)
		if len(s2) < n {
			n = len(s2)
		}
		for j := 0; j < n; j++ {
			f1 := l1.Field(s1[j])
			f2 := l2.Field(s2[j])
			p1 := off1 + f1.Offset
			p2 := off2 + f2.Offset
			if err := itemtype.Cast(f1.Type, b1[p1:p1+f1.Size], f1.Swap,
				f2.Type, b2[p2:p2+f2.Size], f2.Swap); err != nil {
				return err
			}
		}
		return nil
	}

	if d1 > 0 && d2 > 0 {
		s1 := m1.Selection(d1)
		s2 := m2.Selection(d2)
		n := len(s1)
		if len(s2) < n {
			n = len(s2)
		}
		size1 := m1.Axes[d1].Size
		size2 := m2.Axes[d2].Size
		for j := 0; j < n; j++ {
			if err := castWalk(
				m1, l1, b1, d1-1, off1+size1*s1[j],
				m2, l2, b2, d2-1, off2+size2*s2[j],
			); err != nil {
				return err
			}
		}
		return nil
	}

	return errors.Wrap(rerr.ErrInternal, "axis depth mismatch while casting")
}
