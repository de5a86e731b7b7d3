// 14 Oct 2026

package xtal

type Error string

func (e Error) Error() string { return string(e) }

// Configuration errors. They come back before any searching is done.
const (
	ErrCutoff     = Error("cutoff must be a positive distance")
	ErrNumCells   = Error("number of neighbour cells cannot be negative")
	ErrPad        = Error("box padding must be a finite distance, zero or more")
	ErrNoXtalInfo = Error("crystallographic structure without a usable cell and space group")
)
