// Package rerr defines the error classes shared by every record-array
// package. They live in a leaf package so that internal packages can
// return the same sentinels the public API re-exports.
package rerr

import "github.com/pkg/errors"

var (
	// ErrFormat reports an unparseable format string or endian tag.
	ErrFormat = errors.New("bad format")
	// ErrShape reports an out-of-range index, an invalid slice, or
	// mismatched array/sequence shapes.
	ErrShape = errors.New("shape mismatch")
	// ErrType reports a value of the wrong kind or a field conversion
	// the cast matrix does not define.
	ErrType = errors.New("incompatible type")
	// ErrValue reports a well-typed but unusable value or buffer.
	ErrValue = errors.New("invalid value")
	// ErrInternal reports a broken invariant inside the engine.
	ErrInternal = errors.New("internal record error")
)
