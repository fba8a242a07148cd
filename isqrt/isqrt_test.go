package isqrt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorSmall(t *testing.T) {
	testCases := []struct {
		n        uint64
		expected uint64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{5, 2},
		{6, 2},
		{7, 2},
		{8, 2},
		{9, 3},
		{99, 9},
		{100, 10},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Floor(tc.n), "Floor(%d)", tc.n)
	}
}

func TestFloorAroundSquares(t *testing.T) {
	// Pseudo-random roots below 2^32 so that k*k never overflows.
	state := uint64(639907)
	modulus := uint64(1) << 32
	for i := 0; i < 1000; i++ {
		k := (state*893051+963793)%(modulus-1) + 1
		assert.Equal(t, k, Floor(k*k), "Floor(%d^2)", k)
		assert.Equal(t, k-1, Floor(k*k-1), "Floor(%d^2-1)", k)
		state = k
	}
}

func TestFloorLargeValues(t *testing.T) {
	const maxRoot = uint64(math.MaxUint32)

	assert.Equal(t, maxRoot, Floor(math.MaxUint64))
	assert.Equal(t, maxRoot, Floor(maxRoot*maxRoot))
	assert.Equal(t, maxRoot-1, Floor(maxRoot*maxRoot-1))
	assert.Equal(t, uint64(1)<<31, Floor(uint64(1)<<62))
	assert.Equal(t, uint64(1)<<31-1, Floor(uint64(1)<<62-1))
}
