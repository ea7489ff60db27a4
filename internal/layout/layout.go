// Package layout maps a record's fields onto bytes: each field has a
// type, a byte offset, a width, and a swap flag. Fields pack at
// increasing offsets with no padding.
package layout

import (
	"strconv"
	"strings"

	"github.com/robert-malhotra/go-recarray/internal/itemtype"
)

// Field locates one field within a record.
type Field struct {
	Type   itemtype.Type
	Offset int
	Size   int
	Swap   bool
}

// Layout is the ordered field table of one record. It does not own an
// endian tag; the owning view carries that and supplies it when the
// layout is cloned or rendered.
type Layout struct {
	fields []Field
	size   int
}

// NumFields returns the number of fields.
func (l *Layout) NumFields() int { return len(l.fields) }

// Size returns the record width in bytes.
func (l *Layout) Size() int { return l.size }

// Field returns field k.
func (l *Layout) Field(k int) Field { return l.fields[k] }

// Clone returns a copy with swap flags recomputed for the given endian
// tag.
func (l *Layout) Clone(endian byte) *Layout {
	idx := make([]int, len(l.fields))
	for j := range idx {
		idx[j] = j
	}
	return l.Select(idx, endian)
}

// Select returns a new layout holding the chosen fields in order, with
// fresh packed offsets and swap flags for the given endian tag.
func (l *Layout) Select(idx []int, endian byte) *Layout {
	swap := itemtype.SwapFor(endian)
	out := &Layout{fields: make([]Field, 0, len(idx))}
	for _, k := range idx {
		f := l.fields[k]
		out.fields = append(out.fields, Field{
			Type:   f.Type,
			Offset: out.size,
			Size:   f.Size,
			Swap:   swap,
		})
		out.size += f.Size
	}
	return out
}

// FormatString renders the canonical format of the chosen fields: the
// endian tag followed by comma-joined canonical codes, width appended
// for string fields. A nil idx selects every field.
func (l *Layout) FormatString(endian byte, idx []int) string {
	var b strings.Builder
	b.WriteByte(endian)
	if idx == nil {
		idx = make([]int, len(l.fields))
		for j := range idx {
			idx[j] = j
		}
	}
	for j, k := range idx {
		if j > 0 {
			b.WriteByte(',')
		}
		f := l.fields[k]
		b.WriteString(itemtype.CodeOf(f.Type))
		if f.Type == itemtype.String {
			b.WriteString(strconv.Itoa(f.Size))
		}
	}
	return b.String()
}
