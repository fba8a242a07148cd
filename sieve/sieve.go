/*
Package sieve provides an implementation of the Sieve of Eratosthenes
algorithm to compute prime numbers up to a specified limit.

Composite marks are kept in a bitset, one bit per integer in [0, limit],
so the auxiliary memory is limit/8 bytes.
*/
package sieve

import "github.com/chirprush/dedekind/bitset"

/*
Sieve computes all prime numbers up to and including limit using the
Sieve of Eratosthenes algorithm. The primes are returned in ascending order.

Limits below 2 yield an empty slice.
*/
func Sieve(limit uint64) []uint64 {
	if limit < 2 {
		return []uint64{}
	}

	composite := bitset.New(limit + 1)
	composite.Set(0)
	composite.Set(1)
	for i := uint64(2); i <= limit/i; i++ {
		if composite.Test(i) {
			continue
		}
		for j := i * i; j <= limit; j += i {
			composite.Set(j)
			if j > limit-i {
				break
			}
		}
	}

	result := make([]uint64, 0, composite.Len()-composite.Count())
	for i := uint64(2); i <= limit; i++ {
		if !composite.Test(i) {
			result = append(result, i)
		}
	}

	return result
}
