package invariant

import "errors"

var (
	ErrTickOutOfBounds   = errors.New("tick over bounds")
	ErrOverflow          = errors.New("overflow")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrNegativeValue     = errors.New("negative value")
	ErrInvalidPriceRange = errors.New("lower sqrt price must be below upper sqrt price")
	ErrPriceOutOfRange   = errors.New("current sqrt price outside the range for this token")
)
