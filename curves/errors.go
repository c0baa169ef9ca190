package curves

import "errors"

var (
	// ErrInvalidCoefficientCount is returned when a coefficient vector does not match its family.
	ErrInvalidCoefficientCount = errors.New("invalid coefficient count")
	// ErrInvalidInputCount is returned when a curve is evaluated with the wrong number of variables.
	ErrInvalidInputCount = errors.New("invalid input count")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrUnknownFamily     = errors.New("unknown curve family")
	ErrNilFunction       = errors.New("curve function is nil")

	ErrNotLinearInCoefficients = errors.New("curve family is not linear in its coefficients")
	ErrTooFewSamples           = errors.New("too few samples")
)
