package factor

import (
	"math/bits"
	"slices"
	"strconv"
	"strings"
)

// Factorization maps primes to their exponents in an integer. A prime
// that is not a key has exponent zero. The zero value is the empty
// factorization of 1.
type Factorization struct {
	factors map[Prime]uint64
}

// NewFactorization builds a factorization from a prime-to-exponent map.
// The map is copied and zero exponents are dropped.
func NewFactorization(factors map[Prime]uint64) Factorization {
	copied := make(map[Prime]uint64, len(factors))
	for p, e := range factors {
		if e != 0 {
			copied[p] = e
		}
	}
	return Factorization{factors: copied}
}

// Vp returns the exponent of p, which is 0 if p does not divide the
// factored integer.
func (f Factorization) Vp(p Prime) uint64 {
	return f.factors[p]
}

// Bases returns the primes with a nonzero exponent, in no particular order.
// The slice is freshly allocated on every call.
func (f Factorization) Bases() []Prime {
	bases := make([]Prime, 0, len(f.factors))
	for p := range f.factors {
		bases = append(bases, p)
	}
	return bases
}

// Len returns the number of distinct prime bases.
func (f Factorization) Len() int {
	return len(f.factors)
}

// Mul returns the factorization of the product of the integers factored
// by f and other, adding exponents prime by prime. Neither operand is
// modified.
func (f Factorization) Mul(other Factorization) Factorization {
	product := make(map[Prime]uint64, len(f.factors)+len(other.factors))
	for _, p := range f.Bases() {
		product[p] += f.Vp(p)
	}
	for _, p := range other.Bases() {
		product[p] += other.Vp(p)
	}
	return Factorization{factors: product}
}

// Value returns the integer the factorization denotes. ok is false if the
// integer does not fit in a uint64.
func (f Factorization) Value() (value uint64, ok bool) {
	value = 1
	for p, e := range f.factors {
		for ; e > 0; e-- {
			hi, lo := bits.Mul64(value, p.value)
			if hi != 0 {
				return 0, false
			}
			value = lo
		}
	}
	return value, true
}

// String renders the factorization with ascending bases, for example
// "2^3 * 5". The empty factorization renders as "1".
func (f Factorization) String() string {
	if len(f.factors) == 0 {
		return "1"
	}

	bases := f.Bases()
	slices.SortFunc(bases, Prime.Compare)

	var sb strings.Builder
	for i, p := range bases {
		if i > 0 {
			sb.WriteString(" * ")
		}
		sb.WriteString(p.String())
		if e := f.factors[p]; e > 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.FormatUint(e, 10))
		}
	}
	return sb.String()
}
