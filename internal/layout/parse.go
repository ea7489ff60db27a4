package layout

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-recarray/internal/itemtype"
	"github.com/robert-malhotra/go-recarray/internal/rerr"
)

// Parse builds a layout from a format string and returns it with the
// endian tag. The grammar is an optional endian tag ('=', '<', '>',
// '!') followed by comma-separated field specs; spaces before a spec
// are skipped. A field spec may be any prefix of a canonical type code
// (codes are tried from Complex64 down, so "i" means i32 and "f" means
// f64); digits after the first character are consumed and, for string
// fields, give the mandatory width. Text between a parsed spec and the
// next comma is ignored.
func Parse(format string) (*Layout, byte, error) {
	s := skipSpace(format)
	endian := byte('=')
	if len(s) > 0 && itemtype.ValidEndian(s[0]) {
		endian = s[0]
		s = s[1:]
	}

	if strings.TrimSpace(s) == "" {
		return nil, 0, errors.Wrap(rerr.ErrFormat, "empty format string")
	}

	swap := itemtype.SwapFor(endian)
	l := &Layout{}
	for {
		spec := skipSpace(s)
		typ, size, n, err := parseField(spec)
		if err != nil {
			return nil, 0, err
		}
		l.fields = append(l.fields, Field{Type: typ, Offset: l.size, Size: size, Swap: swap})
		l.size += size

		rest := spec[n:]
		comma := strings.IndexByte(rest, ',')
		if comma < 0 {
			break
		}
		s = rest[comma+1:]
	}
	return l, endian, nil
}

// parseField matches one field spec at the start of s, returning the
// type, the field byte width, and the number of bytes consumed.
func parseField(s string) (itemtype.Type, int, int, error) {
	typ := itemtype.Type(-1)
	for t := itemtype.NumTypes - 1; t >= itemtype.String; t-- {
		code := itemtype.CodeOf(t)
		if typeCheck(s, code) || (len(s) > 0 && t == itemtype.String && s[0] == code[0]) {
			typ = t
			break
		}
	}
	if typ < 0 {
		return 0, 0, 0, errors.Wrap(rerr.ErrFormat, "bad format type")
	}

	// digits follow the first character; only string fields use them
	n, width := 1, 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		width = width*10 + int(s[n]-'0')
		n++
	}
	size := itemtype.SizeOf(typ)
	if typ == itemtype.String {
		if width == 0 {
			return 0, 0, 0, errors.Wrap(rerr.ErrFormat, "string field requires a width")
		}
		size = width
	}
	return typ, size, n, nil
}

// typeCheck reports whether s begins with a prefix of code terminated
// by a space, comma, or end of string.
func typeCheck(s, code string) bool {
	if len(s) == 0 || len(code) == 0 || s[0] != code[0] {
		return false
	}
	if len(s) == 1 || s[1] == ' ' || s[1] == ',' {
		return true
	}
	return typeCheck(s[1:], code[1:])
}

func skipSpace(s string) string {
	for len(s) > 0 && s[0] == ' ' {
		s = s[1:]
	}
	return s
}
