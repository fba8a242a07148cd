package factor

import "errors"

var (
	// ErrInvalidRange is returned when a sieve window or an integer to
	// factor lies outside the domain the operation accepts.
	ErrInvalidRange = errors.New("invalid range")

	// ErrOutOfRange is returned by sieve queries for integers outside the
	// sieved window.
	ErrOutOfRange = errors.New("out of range")

	// ErrNotPrime is returned when a value proposed as a Prime is not prime.
	ErrNotPrime = errors.New("not prime")
)
