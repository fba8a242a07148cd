/*
Package isqrt computes integer square roots of unsigned 64-bit values.
*/
package isqrt

import "math"

// maxRoot is the largest value whose square fits in a uint64.
const maxRoot = math.MaxUint32

/*
Floor returns the largest r such that r*r <= n.

The estimate comes from math.Sqrt, which can be off by one in either
direction once float64 can no longer represent n exactly, so it is
corrected against n using integer arithmetic.
*/
func Floor(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	if r > maxRoot {
		r = maxRoot
	}
	for r*r > n {
		r--
	}
	for r < maxRoot && (r+1)*(r+1) <= n {
		r++
	}
	return r
}
