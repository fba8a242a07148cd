package factor

import (
	"fmt"
	"slices"

	"github.com/chirprush/dedekind/isqrt"
	"github.com/chirprush/dedekind/sieve"
)

// window is a closed interval [left, right] with 2 <= left <= right.
type window struct {
	left  uint64
	right uint64
}

func newWindow(left, right uint64) (window, error) {
	if left < 2 || left > right {
		return window{}, fmt.Errorf("%w: window [%d, %d] must satisfy 2 <= left <= right", ErrInvalidRange, left, right)
	}
	return window{left: left, right: right}, nil
}

func (w window) contains(n uint64) bool {
	return w.left <= n && n <= w.right
}

func (w window) size() uint64 {
	return w.right - w.left + 1
}

func (w window) check(n uint64) error {
	if !w.contains(n) {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, n, w.left, w.right)
	}
	return nil
}

// LinearSieve computes least prime factors for every integer of a window
// [left, right] without sieving from zero.
type LinearSieve struct {
	bounds window
}

// NewLinearSieve prepares a sieve over [left, right]. It returns an error
// wrapping ErrInvalidRange unless 2 <= left <= right.
func NewLinearSieve(left, right uint64) (*LinearSieve, error) {
	bounds, err := newWindow(left, right)
	if err != nil {
		return nil, err
	}
	return &LinearSieve{bounds: bounds}, nil
}

// Left returns the smallest integer of the window.
func (s *LinearSieve) Left() uint64 {
	return s.bounds.left
}

// Right returns the largest integer of the window.
func (s *LinearSieve) Right() uint64 {
	return s.bounds.right
}

// Run sieves the window and returns the result. Each call allocates a
// fresh result and shares no state with previous calls.
func (s *LinearSieve) Run() *LinearSieveResult {
	left, right := s.bounds.left, s.bounds.right
	size := s.bounds.size()

	// Every composite n <= right has a prime factor <= floor(sqrt(right)).
	small := sieve.Sieve(isqrt.Floor(right))

	// A zero slot has no factor recorded yet. Primes are visited in
	// ascending order, so the first write to a slot is its least prime
	// factor.
	lpf := make([]Prime, size)
	for _, p := range small {
		start := left / p
		if left%p != 0 {
			start++
		}
		end := right / p
		for j := start; j <= end; j++ {
			slot := &lpf[j*p-left]
			if slot.value == 0 {
				*slot = newUnchecked(p)
			}
		}
	}

	primes := make([]Prime, 0)
	for i := uint64(0); i < size; i++ {
		n := left + i
		if least := lpf[i].value; least == 0 || least == n {
			lpf[i] = newUnchecked(n)
			primes = append(primes, lpf[i])
		}
	}

	return &LinearSieveResult{
		bounds: s.bounds,
		lpf:    lpf,
		primes: primes,
	}
}

// LinearSieveResult holds the least prime factor of every integer in a
// sieved window. It is read-only.
type LinearSieveResult struct {
	bounds window
	lpf    []Prime
	primes []Prime
}

// Left returns the smallest integer of the window.
func (r *LinearSieveResult) Left() uint64 {
	return r.bounds.left
}

// Right returns the largest integer of the window.
func (r *LinearSieveResult) Right() uint64 {
	return r.bounds.right
}

// Contains reports whether n lies in the window.
func (r *LinearSieveResult) Contains(n uint64) bool {
	return r.bounds.contains(n)
}

// LPF returns the least prime factor of n. It returns an error wrapping
// ErrOutOfRange if n is outside the window.
func (r *LinearSieveResult) LPF(n uint64) (Prime, error) {
	if err := r.bounds.check(n); err != nil {
		return Prime{}, err
	}
	return r.lpf[n-r.bounds.left], nil
}

// IsPrime reports whether n is prime. It returns an error wrapping
// ErrOutOfRange if n is outside the window.
func (r *LinearSieveResult) IsPrime(n uint64) (bool, error) {
	p, err := r.LPF(n)
	if err != nil {
		return false, err
	}
	return p.value == n, nil
}

// Primes returns the primes of the window in ascending order. The slice is
// a copy and may be modified by the caller.
func (r *LinearSieveResult) Primes() []Prime {
	return slices.Clone(r.primes)
}

// Prime returns n as a Prime if the sieve found it to be prime. It returns
// an error wrapping ErrOutOfRange or ErrNotPrime otherwise.
func (r *LinearSieveResult) Prime(n uint64) (Prime, error) {
	p, err := r.LPF(n)
	if err != nil {
		return Prime{}, err
	}
	if p.value != n {
		return Prime{}, fmt.Errorf("%w: %d has factor %d", ErrNotPrime, n, p.value)
	}
	return p, nil
}

// Factorize returns the prime factorization of n by repeatedly dividing
// out least prime factors. Once the cofactor drops below the window the
// remaining factors are found by trial division, starting from the last
// prime divided out. It returns an error wrapping ErrOutOfRange if n is
// outside the window.
func (r *LinearSieveResult) Factorize(n uint64) (Factorization, error) {
	if err := r.bounds.check(n); err != nil {
		return Factorization{}, err
	}

	factors := make(map[Prime]uint64)
	for r.bounds.contains(n) {
		p := r.lpf[n-r.bounds.left]
		factors[p]++
		n /= p.value
		if n < r.bounds.left && n > 1 {
			trialDivide(n, p.value, factors)
			break
		}
	}
	return Factorization{factors: factors}, nil
}
