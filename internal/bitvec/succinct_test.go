// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitvec

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/dsnet/louds/internal/testutil"
)

// naiveRank1 counts set bits in [0, i) one bit at a time.
func naiveRank1(v *Vector, i int) (n int) {
	for j := 0; j < i; j++ {
		if v.Get(j) {
			n++
		}
	}
	return n
}

// naiveSelect scans for the position of the k-th (0-indexed) bit with
// value b, returning -1 if there is none.
func naiveSelect(v *Vector, k int, b bool) int {
	if k < 0 {
		return -1
	}
	for j := 0; j < v.Len(); j++ {
		if v.Get(j) == b {
			if k == 0 {
				return j
			}
			k--
		}
	}
	return -1
}

func TestIndex(t *testing.T) {
	var vectors = []string{
		"",
		"0",
		"1",
		"10",
		"10 10 10 110 0 10 0", // LOUDS sequence for {cat, car, cart}
		"1111 1111",
		"0000 0000",
		"10 1110 0100 1101",
	}

	for i, s := range vectors {
		var v Vector
		for _, b := range testutil.Bits(s) {
			v.Push(b)
		}
		x := NewIndex(&v)

		if got, want := x.Count1(), v.Count(); got != want {
			t.Errorf("test %d, Count1() = %d, want %d", i, got, want)
		}
		for j := 0; j <= v.Len(); j++ {
			if got, want := x.Rank1(j), naiveRank1(&v, j); got != want {
				t.Errorf("test %d, Rank1(%d) = %d, want %d", i, j, got, want)
			}
			if got, want := x.Rank0(j), j-naiveRank1(&v, j); got != want {
				t.Errorf("test %d, Rank0(%d) = %d, want %d", i, j, got, want)
			}
		}
		for k := -1; k <= v.Len(); k++ {
			if got, want := x.Select1(k), naiveSelect(&v, k, true); got != want {
				t.Errorf("test %d, Select1(%d) = %d, want %d", i, k, got, want)
			}
			if got, want := x.Select0(k), naiveSelect(&v, k, false); got != want {
				t.Errorf("test %d, Select0(%d) = %d, want %d", i, k, got, want)
			}
		}
	}
}

// TestIndexLarge exercises every block boundary case: full blocks, a
// partial trailing word, and runs of all-zero and all-one words.
func TestIndexLarge(t *testing.T) {
	r := testutil.NewRand(1)
	var v Vector
	ref := bitset.New(5000)
	n := 0
	push := func(b bool) {
		v.Push(b)
		if b {
			ref.Set(uint(n))
		}
		n++
	}
	for i := 0; i < 2500; i++ {
		push(r.Intn(4) == 0)
	}
	for i := 0; i < 640; i++ {
		push(true)
	}
	for i := 0; i < 640; i++ {
		push(false)
	}
	for i := 0; i < 1221; i++ { // leave the last word partial
		push(r.Intn(2) == 0)
	}

	x := NewIndex(&v)
	if got, want := x.Count1(), int(ref.Count()); got != want {
		t.Fatalf("Count1() = %d, want %d", got, want)
	}

	// The bitset Rank is inclusive of its index; shift by one to compare.
	for i := 1; i <= v.Len(); i++ {
		if got, want := x.Rank1(i), int(ref.Rank(uint(i-1))); got != want {
			t.Fatalf("Rank1(%d) = %d, want %d", i, got, want)
		}
	}
	if x.Rank1(0) != 0 {
		t.Errorf("Rank1(0) = %d, want 0", x.Rank1(0))
	}

	// Select is the inverse of rank on every present bit.
	ones, zeros := 0, 0
	for i := 0; i < v.Len(); i++ {
		if v.Get(i) {
			if got := x.Select1(ones); got != i {
				t.Fatalf("Select1(%d) = %d, want %d", ones, got, i)
			}
			ones++
		} else {
			if got := x.Select0(zeros); got != i {
				t.Fatalf("Select0(%d) = %d, want %d", zeros, got, i)
			}
			zeros++
		}
	}
	if got := x.Select1(ones); got != -1 {
		t.Errorf("Select1(%d) = %d, want -1", ones, got)
	}
	if got := x.Select0(zeros); got != -1 {
		t.Errorf("Select0(%d) = %d, want -1", zeros, got)
	}
}

func TestRankFault(t *testing.T) {
	var v Vector
	v.Push(true)
	x := NewIndex(&v)

	defer func() {
		if recover() == nil {
			t.Errorf("Rank1(2): expected panic on out-of-range index")
		}
	}()
	x.Rank1(2)
}
