// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bitvec implements a packed bit vector and a succinct rank/select
// index over it.
//
// A Vector stores bit j in word j>>6 under the mask 1<<(j&63); that is,
// bits are packed into 64-bit words in LSB-first order. The word slice is
// the unit of serialization, so the layout here is part of the on-disk
// format of any structure built on top of this package.
package bitvec

import "math/bits"

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "bitvec: " + string(e) }

var (
	ErrInvalid error = Error("mismatched word count")
	ErrPadding error = Error("non-zero padding bits")
)

// Vector is an append-only sequence of bits packed into 64-bit words.
//
// The zero value is an empty vector ready for use. A Vector is mutable
// until an Index is built over it; afterwards it must be treated as
// immutable, and it is then safe for concurrent readers.
type Vector struct {
	words []uint64
	nbits int
}

// Push appends a single bit.
func (v *Vector) Push(b bool) {
	if v.nbits&63 == 0 {
		v.words = append(v.words, 0)
	}
	if b {
		v.words[v.nbits>>6] |= 1 << uint(v.nbits&63)
	}
	v.nbits++
}

// Get reports whether bit i is set.
// It panics if i is out of range; the caller keeps the bounds invariant.
func (v *Vector) Get(i int) bool {
	if i < 0 || i >= v.nbits {
		panic(Error("bit index out of range"))
	}
	return v.words[i>>6]&(1<<uint(i&63)) != 0
}

// Len returns the number of bits.
func (v *Vector) Len() int { return v.nbits }

// Count returns the number of set bits.
func (v *Vector) Count() (n int) {
	for _, w := range v.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Words returns the backing words. Bits past Len in the last word are zero.
// The slice aliases the vector and must not be modified.
func (v *Vector) Words() []uint64 { return v.words }

// Equal reports whether two vectors hold the same bit sequence.
func (v *Vector) Equal(o *Vector) bool {
	if v.nbits != o.nbits {
		return false
	}
	for i, w := range v.words {
		if w != o.words[i] {
			return false
		}
	}
	return true
}

// FromWords reconstructs a vector of nbits bits from its backing words,
// taking ownership of the slice. It fails if the word count does not match
// nbits or if padding bits past nbits are non-zero, since either breaks the
// popcount arithmetic that rank and Equal rely on.
func FromWords(nbits int, words []uint64) (*Vector, error) {
	if nbits < 0 || len(words) != (nbits+63)/64 {
		return nil, ErrInvalid
	}
	if nbits&63 != 0 && words[len(words)-1]>>uint(nbits&63) != 0 {
		return nil, ErrPadding
	}
	return &Vector{words: words, nbits: nbits}, nil
}
