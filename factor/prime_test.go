package factor_test

import (
	"testing"

	"github.com/chirprush/dedekind/factor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrime(t *testing.T, value uint64) factor.Prime {
	t.Helper()
	p, err := factor.New(value)
	require.NoError(t, err)
	return p
}

func TestNewAcceptsPrimes(t *testing.T) {
	for _, value := range []uint64{2, 3, 5, 7, 97, 7919, 1_000_000_007, 4294967311} {
		p, err := factor.New(value)
		require.NoError(t, err, "New(%d)", value)
		assert.Equal(t, value, p.Value())
	}
}

func TestNewRejectsNonPrimes(t *testing.T) {
	for _, value := range []uint64{0, 1, 4, 9, 91, 7917, 1_000_000_001} {
		_, err := factor.New(value)
		assert.ErrorIs(t, err, factor.ErrNotPrime, "New(%d)", value)
	}
}

func TestPrimeOrdering(t *testing.T) {
	two := mustPrime(t, 2)
	three := mustPrime(t, 3)

	assert.True(t, two.Less(three))
	assert.False(t, three.Less(two))
	assert.False(t, two.Less(two))
	assert.Equal(t, -1, two.Compare(three))
	assert.Equal(t, 1, three.Compare(two))
	assert.Equal(t, 0, two.Compare(mustPrime(t, 2)))
}

func TestPrimeEqualityAndHashing(t *testing.T) {
	seen := map[factor.Prime]int{}
	seen[mustPrime(t, 13)]++
	seen[mustPrime(t, 13)]++
	seen[mustPrime(t, 17)]++

	assert.Equal(t, mustPrime(t, 13), mustPrime(t, 13))
	assert.Len(t, seen, 2)
	assert.Equal(t, 2, seen[mustPrime(t, 13)])
}

func TestPrimeString(t *testing.T) {
	assert.Equal(t, "1000000007", mustPrime(t, 1_000_000_007).String())
}

func TestIsPrime(t *testing.T) {
	testCases := []struct {
		n        uint64
		expected bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{25, false},
		{29, true},
		{4294967291, true},
		{4294967297, false}, // 641 * 6700417
		{18446744073709551615, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, factor.IsPrime(tc.n), "IsPrime(%d)", tc.n)
	}
}
