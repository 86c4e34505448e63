// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil is a collection of testing helper methods.
package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand implements a deterministic pseudo-random number generator.
// This differs from math/rand in that the exact output will be consistent
// across different versions of Go.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

func (r *Rand) Int() (x int) {
	r.Encrypt(r.blk[:], r.blk[:])
	x |= int(r.blk[0]) << 0
	x |= int(r.blk[1]) << 8
	x |= int(r.blk[2]) << 16
	x |= int(r.blk[3]) << 24
	x |= int(r.blk[4]) << 32
	x |= int(r.blk[5]) << 40
	x |= int(r.blk[6]) << 48
	x |= int(r.blk[7]&0x3f) << 56
	return x
}

func (r *Rand) Intn(n int) int {
	return r.Int() % n
}

// Keys generates cnt keys of exactly length units drawn from an alphabet
// of alpha distinct letters starting at 'a'. Keys may repeat; the sequence
// is a pure function of the seed.
func Keys(seed, cnt, length, alpha int) [][]uint32 {
	r := NewRand(seed)
	keys := make([][]uint32, cnt)
	for i := range keys {
		k := make([]uint32, length)
		for j := range k {
			k[j] = uint32('a' + r.Intn(alpha))
		}
		keys[i] = k
	}
	return keys
}

// Bits renders a bit vector literal such as "10 1110 0100" into a bool
// slice, ignoring spaces. It keeps LOUDS sequences in tests legible.
func Bits(s string) []bool {
	var bs []bool
	for _, c := range s {
		switch c {
		case '0':
			bs = append(bs, false)
		case '1':
			bs = append(bs, true)
		}
	}
	return bs
}
