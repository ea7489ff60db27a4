// Package dims models the axes of a record view. Axes are stored
// innermost first: axis 0 is the item (field) axis and the last axis
// is the outermost array axis. Each axis keeps its pre-slice length
// and byte stride alongside the current start/stop/step selection, so
// views derived by indexing and slicing keep addressing the original
// buffer.
package dims

import (
	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-recarray/internal/rerr"
)

// Axis holds the selection state of one dimension. Start, stop, and
// step are absolute positions in pre-slice coordinates. Expanded
// axes contribute to the view's shape; collapsed axes (bound by an
// integer index) do not.
type Axis struct {
	Start, Stop, Step int
	Leng              int // pre-slice length
	Size              int // byte stride; zero on the item axis
	Expanded          bool
}

// Model is the full axis set of a view plus the total byte size of the
// underlying allocation.
type Model struct {
	Axes  []Axis
	Total int
}

// FromShape builds a fully expanded model. Lengths are given innermost
// first, with the field count at index 0. Strides follow from the
// record byte size: the first outer axis strides by itemSize, each
// further axis by the product of the lengths inside it.
func FromShape(lengths []int, itemSize int) *Model {
	m := &Model{Axes: make([]Axis, len(lengths))}
	for j, n := range lengths {
		m.Axes[j] = Axis{Stop: n, Step: 1, Leng: n, Expanded: true}
	}
	m.Total = itemSize
	for j := 1; j < len(m.Axes); j++ {
		m.Axes[j].Size = m.Total
		m.Total *= m.Axes[j].Leng
	}
	return m
}

// Clone returns an independent copy.
func (m *Model) Clone() *Model {
	out := &Model{Axes: make([]Axis, len(m.Axes)), Total: m.Total}
	copy(out.Axes, m.Axes)
	return out
}

// NumAxes returns the axis count, item axis included.
func (m *Model) NumAxes() int { return len(m.Axes) }

// Len returns the current selection length of axis k.
func (m *Model) Len(k int) int {
	ax := m.Axes[k]
	n := 0
	for j := ax.Start; forward(ax.Step, j, ax.Stop); j += ax.Step {
		n++
	}
	return n
}

// Selection returns the absolute positions axis k currently selects.
func (m *Model) Selection(k int) []int {
	ax := m.Axes[k]
	out := make([]int, 0, m.Len(k))
	for j := ax.Start; forward(ax.Step, j, ax.Stop); j += ax.Step {
		out = append(out, j)
	}
	return out
}

// Expanded returns the indices of expanded axes, innermost first.
func (m *Model) Expanded() []int {
	var out []int
	for j := range m.Axes {
		if m.Axes[j].Expanded {
			out = append(out, j)
		}
	}
	return out
}

// AnyExpanded reports whether any axis is still expanded.
func (m *Model) AnyExpanded() bool {
	for j := range m.Axes {
		if m.Axes[j].Expanded {
			return true
		}
	}
	return false
}

// OutermostExpanded returns the highest expanded axis index, or -1
// when every axis is collapsed.
func (m *Model) OutermostExpanded() int {
	for j := len(m.Axes) - 1; j >= 0; j-- {
		if m.Axes[j].Expanded {
			return j
		}
	}
	return -1
}

// LenOuter returns the length of the outermost expanded axis. A fully
// collapsed view has length 1 so that element 0 is always addressable.
func (m *Model) LenOuter() int {
	k := m.OutermostExpanded()
	if k < 0 {
		return 1
	}
	return m.Len(k)
}

// Shape returns the expanded axis lengths, outermost first.
func (m *Model) Shape() []int {
	exp := m.Expanded()
	out := make([]int, len(exp))
	for j, k := range exp {
		out[len(exp)-1-j] = m.Len(k)
	}
	return out
}

// SetIndex binds axis k to a single element. The index is checked
// against the current selection length but stored as an absolute
// position, and the axis collapses.
func (m *Model) SetIndex(k, ndx int) error {
	if ndx < 0 || ndx >= m.Len(k) {
		return errors.Wrap(rerr.ErrShape, "record index out of range")
	}
	m.Axes[k].Start = ndx
	m.Axes[k].Stop = ndx + 1
	m.Axes[k].Step = 1
	m.Axes[k].Expanded = false
	return nil
}

// SetSlice stores an already normalized start/stop/step selection on
// axis k. The axis stays expanded.
func (m *Model) SetSlice(k, start, stop, step int) {
	m.Axes[k].Start = start
	m.Axes[k].Stop = stop
	m.Axes[k].Step = step
	m.Axes[k].Expanded = true
}

// Compact rebuilds the model for a packed copy of the current
// selection: the item axis keeps its expanded flag and shrinks to the
// selection count (or 1 when collapsed), collapsed outer axes vanish,
// and surviving outer axes restart at zero with fresh strides computed
// from itemSize.
func (m *Model) Compact(itemSize int) *Model {
	itemLen := 1
	if m.Axes[0].Expanded {
		itemLen = m.Len(0)
	}
	lengths := []int{itemLen}
	for j := 1; j < len(m.Axes); j++ {
		if m.Axes[j].Expanded {
			lengths = append(lengths, m.Len(j))
		}
	}
	out := FromShape(lengths, itemSize)
	out.Axes[0].Expanded = m.Axes[0].Expanded
	return out
}

func forward(step, j, stop int) bool {
	if step < 0 {
		return j > stop
	}
	return j < stop
}
