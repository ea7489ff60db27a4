package recarray

import "github.com/robert-malhotra/go-recarray/internal/rerr"

// Error classes. Every error returned by this package wraps exactly
// one of these, so callers can classify failures with errors.Is.
var (
	// ErrFormat reports an unparseable format string or endian tag.
	ErrFormat = rerr.ErrFormat
	// ErrShape reports an out-of-range index or slice, mismatched
	// sequence lengths, or unequal array shapes.
	ErrShape = rerr.ErrShape
	// ErrType reports a value of the wrong kind for a field, or a
	// field conversion the cast matrix does not define.
	ErrType = rerr.ErrType
	// ErrValue reports a well-typed but unusable value, such as a
	// byte buffer whose size does not cover the requested records.
	ErrValue = rerr.ErrValue
	// ErrInternal reports a broken invariant inside the cast engine.
	ErrInternal = rerr.ErrInternal
)
