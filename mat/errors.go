// Package mat: sentinel error set. All fallible operations return these
// sentinels and callers match them via errors.Is; no operation panics on
// user input.
package mat

import "errors"

var (
	// ErrSingular is returned by Inverse when the determinant is exactly
	// zero. The test is strict equality, not an epsilon band: a
	// near-singular matrix inverts without error (and without accuracy
	// guarantees).
	ErrSingular = errors.New("mat: singular matrix")

	// ErrOutOfRange indicates that a row or column index passed to At or
	// Set is outside the matrix shape.
	ErrOutOfRange = errors.New("mat: index out of range")
)
