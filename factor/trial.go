package factor

import "fmt"

// IsPrime reports whether n is prime, using trial division by 2 and by odd
// candidates up to floor(sqrt(n)).
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for i := uint64(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Factorize computes the prime factorization of n by trial division.
// Factorize(1) is the empty factorization. It returns an error wrapping
// ErrInvalidRange for n == 0, which has no factorization.
func Factorize(n uint64) (Factorization, error) {
	if n == 0 {
		return Factorization{}, fmt.Errorf("%w: cannot factorize 0", ErrInvalidRange)
	}
	factors := make(map[Prime]uint64)
	trialDivide(n, 2, factors)
	return Factorization{factors: factors}, nil
}

// trialDivide adds the prime factors of n to factors. Every prime factor
// of n must be at least from, which lets callers resume after dividing out
// smaller primes.
func trialDivide(n, from uint64, factors map[Prime]uint64) {
	if from <= 2 {
		// Even factors
		for n%2 == 0 && n > 1 {
			factors[newUnchecked(2)]++
			n /= 2
		}
		from = 3
	}

	// Odd factors
	i := from | 1
	for ; i <= n/i; i += 2 {
		for n%i == 0 {
			factors[newUnchecked(i)]++
			n /= i
		}
	}

	// Prime factor
	if n > 1 {
		factors[newUnchecked(n)]++
	}
}
