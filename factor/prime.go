package factor

import (
	"cmp"
	"fmt"
	"strconv"
)

// Prime is a prime number. The zero value is not a valid Prime.
//
// Primes are comparable, so they can be used as map keys, and ordered by
// value.
type Prime struct {
	value uint64
}

// newUnchecked wraps value without verifying that it is prime. Callers
// must have proven primality already, as the sieve and trial division do.
func newUnchecked(value uint64) Prime {
	return Prime{value: value}
}

// New returns value as a Prime after checking it by trial division.
// It returns an error wrapping ErrNotPrime if value is not prime.
func New(value uint64) (Prime, error) {
	if !IsPrime(value) {
		return Prime{}, fmt.Errorf("%w: %d", ErrNotPrime, value)
	}
	return newUnchecked(value), nil
}

// Value returns the wrapped integer.
func (p Prime) Value() uint64 {
	return p.value
}

// Compare returns -1, 0 or +1 depending on whether p is less than, equal
// to or greater than other.
func (p Prime) Compare(other Prime) int {
	return cmp.Compare(p.value, other.value)
}

// Less reports whether p is smaller than other.
func (p Prime) Less(other Prime) bool {
	return p.value < other.value
}

func (p Prime) String() string {
	return strconv.FormatUint(p.value, 10)
}
