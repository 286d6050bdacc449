package natural

import "errors"

// Sentinel errors returned by Natural operations.
var (
	// ErrNegative is returned when a natural number would be built from a negative value.
	ErrNegative = errors.New("natural number cannot be negative")
	// ErrNegativeResult is returned by Subtract when the subtrahend is larger.
	ErrNegativeResult = errors.New("subtraction result would be negative")
	// ErrDivideByZero is returned by Divide when the divisor is zero.
	ErrDivideByZero = errors.New("division by zero")
	// ErrInvalidDigit is returned by MultiplyBy10 for digits outside 0-9.
	ErrInvalidDigit = errors.New("digit must be between 0 and 9")
	// ErrNegativeExponent is returned by Power for exponents below zero.
	ErrNegativeExponent = errors.New("exponent cannot be negative")
	// ErrInvalidRootIndex is returned by Root for indices below two.
	ErrInvalidRootIndex = errors.New("root index must be at least 2")
	// ErrExponentOutOfRange is returned by ToInt when the value exceeds MaxInt.
	ErrExponentOutOfRange = errors.New("value exceeds native integer range")
	// ErrSyntax is returned by Parse for input that is not a decimal natural number.
	ErrSyntax = errors.New("invalid natural number syntax")
)
