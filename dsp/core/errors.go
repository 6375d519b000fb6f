package core

import "errors"

// Error taxonomy shared by every package in the module. Packages wrap these
// sentinels with context via fmt.Errorf("...: %w", ...), so callers test
// with errors.Is.
var (
	// ErrInvalidLength reports a zero-length or otherwise malformed buffer length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrDimensionMismatch reports operands whose lengths do not agree.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrInvalidSpecification reports a parameter outside its valid domain,
	// such as a filter cutoff outside (0, Nyquist).
	ErrInvalidSpecification = errors.New("invalid specification")

	// ErrNumericInstability reports a design whose poles lie on or outside
	// the unit circle. It is only returned when stability validation is
	// explicitly requested.
	ErrNumericInstability = errors.New("numeric instability")
)
