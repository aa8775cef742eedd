// Package bitset implements a small fixed-size bitset used to index into
// the NIB's statically allocated pools (off-link entries, 6LoWPAN
// contexts) without any dynamic allocation.
package bitset

import (
	"fmt"
	"iter"
	"math/bits"
)

// Words is the number of 64-bit words backing the bitset. 4 words (256
// bits) comfortably covers OFFL_NUMOF and the 6LoWPAN context space on a
// constrained host.
const Words = 4

// Set is a constant-length bitset over pool indices.
//
// Unlike a map[uint32]struct{}, a Set never allocates: it is a plain
// array of words, safe to embed by value inside an ABR record.
type Set struct {
	words [Words]uint64
}

// Count returns the number of bits set.
func (m *Set) Count() uint {
	count := uint(0)
	for _, word := range m.words {
		count += uint(bits.OnesCount64(word))
	}
	return count
}

// Empty reports whether no bit is set.
func (m *Set) Empty() bool {
	for _, word := range m.words {
		if word != 0 {
			return false
		}
	}
	return true
}

// Insert sets the bit at idx.
func (m *Set) Insert(idx uint32) {
	if idx >= 64*Words {
		panic(fmt.Sprintf("bitset: index %d is too big: must be less than %d", idx, 64*Words))
	}
	m.words[idx/64] |= 1 << (idx % 64)
}

// Remove clears the bit at idx. It is a no-op if the bit was not set.
func (m *Set) Remove(idx uint32) {
	if idx >= 64*Words {
		panic(fmt.Sprintf("bitset: index %d is too big: must be less than %d", idx, 64*Words))
	}
	m.words[idx/64] &^= 1 << (idx % 64)
}

// Has reports whether the bit at idx is set.
func (m *Set) Has(idx uint32) bool {
	if idx >= 64*Words {
		return false
	}
	return m.words[idx/64]&(1<<(idx%64)) != 0
}

// Clear resets every bit.
func (m *Set) Clear() {
	for i := range m.words {
		m.words[i] = 0
	}
}

// Traverse calls fn for every set bit, from least to most significant.
// Traversal stops early if fn returns false.
func (m *Set) Traverse(fn func(uint32) bool) {
	for wordIdx, word := range m.words {
		cont := traverseWord(word, func(r uint32) bool {
			return fn(64*uint32(wordIdx) + r)
		})
		if !cont {
			return
		}
	}
}

// Iter returns an iterator over the indices of the set bits.
func (m *Set) Iter() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		m.Traverse(yield)
	}
}

func traverseWord(word uint64, fn func(uint32) bool) bool {
	for word > 0 {
		r := bits.TrailingZeros64(word)
		t := word & -word
		word ^= t

		if !fn(uint32(r)) {
			return false
		}
	}
	return true
}
