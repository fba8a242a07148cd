/*
Package bitset provides a fixed-size bitset backed by a slice of uint64 words.

Positions are uint64 so that a bitset can address every integer up to a
sieving bound. Like slice indexing, accessing a position outside the
bitset panics; callers are expected to stay within [0, Len()).
*/
package bitset

import (
	"fmt"
	"math/bits"
)

// BitSet represents a bitset using a slice of uint64 values.
type BitSet struct {
	size uint64
	bits []uint64
}

// New creates a BitSet holding size bits, all cleared.
func New(size uint64) *BitSet {
	return &BitSet{
		size: size,
		bits: make([]uint64, (size+63)/64),
	}
}

// Len returns the number of bits in the bitset.
func (bs *BitSet) Len() uint64 {
	return bs.size
}

func (bs *BitSet) locate(pos uint64) (uint64, uint64) {
	if pos >= bs.size {
		panic(fmt.Sprintf("bitset: position %d out of range [0, %d)", pos, bs.size))
	}
	return pos / 64, pos % 64
}

// Set sets the bit at the specified position to 1.
func (bs *BitSet) Set(pos uint64) {
	index, offset := bs.locate(pos)
	bs.bits[index] |= 1 << offset
}

// Clear resets the bit at the specified position to 0.
func (bs *BitSet) Clear(pos uint64) {
	index, offset := bs.locate(pos)
	bs.bits[index] &^= 1 << offset
}

// Test returns true if the bit at the specified position is set to 1.
func (bs *BitSet) Test(pos uint64) bool {
	index, offset := bs.locate(pos)
	return bs.bits[index]&(1<<offset) != 0
}

// Count returns the number of bits set to 1.
func (bs *BitSet) Count() uint64 {
	var count uint64
	for _, word := range bs.bits {
		count += uint64(bits.OnesCount64(word))
	}
	return count
}
