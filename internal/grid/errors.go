package grid

import "errors"

// Configuration errors. Every drawing operation validates its arguments
// before touching the buffer, so returning one of these means that no cell
// was changed.
var (
	// ErrInvalidSize is returned when a buffer would have a non-positive
	// dimension, or would not fit within the terminal.
	ErrInvalidSize = errors.New("invalid size")
	// ErrInvalidCharacter is returned for anything that is not a single
	// printable character, or for character sets containing non-printable
	// characters.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrOutOfBounds is returned when a caller-provided coordinate lies
	// outside of the buffer.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrInvalidStyle is returned when a box style does not have 1, 2, 3, 4,
	// 5 or 8 characters.
	ErrInvalidStyle = errors.New("invalid style")
	// ErrInvalidOption is returned for option values outside of their
	// allowed set.
	ErrInvalidOption = errors.New("invalid option")
	// ErrInvalidWidth is returned when a wrapping width is not positive.
	ErrInvalidWidth = errors.New("invalid width")
	// ErrDivideByZero is returned when dividing a Point by zero.
	ErrDivideByZero = errors.New("divide by zero")
)
