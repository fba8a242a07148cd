// Package factor computes least prime factors, primality and prime
// factorizations of 64-bit integers.
//
// # Overview
//
// The centerpiece is LinearSieve, a segmented sieve over an arbitrary window
// [left, right] with 2 <= left <= right. It never allocates an array
// proportional to right: the small primes up to floor(sqrt(right)) are
// found first with a classical sieve, then each window slot receives its
// least prime factor from the first small prime that divides it. Memory is
// O(right-left + sqrt(right)).
//
//	s, err := factor.NewLinearSieve(1_000_000_000, 1_000_100_000)
//	if err != nil {
//		return err
//	}
//	result := s.Run()
//	p, err := result.LPF(1_000_000_021)
//
// # Primes
//
// A Prime wraps a value that is known to be prime. Values obtained from a
// LinearSieveResult or from New are verified; there is no way to build a
// Prime from an unverified integer outside this package.
//
// # Factorizations
//
// Factorization maps primes to exponents. Absent primes have exponent
// zero and zero exponents are never stored. Factorizations combine with
// Mul, which adds exponents and leaves both operands untouched.
//
// # Errors
//
// Constructors and queries report failures by wrapping ErrInvalidRange,
// ErrOutOfRange or ErrNotPrime; match them with errors.Is.
package factor
