package lines

import "errors"

var (
	// ErrNegativeCount indicates a generation request for fewer than zero segments.
	ErrNegativeCount = errors.New("lines: segment count must not be negative")

	// ErrInvalidRange indicates a range whose minimum exceeds its maximum.
	ErrInvalidRange = errors.New("lines: range minimum exceeds maximum")

	// ErrNegativeLength indicates a negative segment length.
	ErrNegativeLength = errors.New("lines: segment length must not be negative")

	// ErrLengthTooLarge indicates a length that cannot fit inside the generation range.
	ErrLengthTooLarge = errors.New("lines: segment length exceeds generation range")

	// ErrNonFinite indicates a NaN or Inf coordinate.
	ErrNonFinite = errors.New("lines: non-finite coordinate")
)
