// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package louds

import "github.com/dsnet/louds/internal/bitvec"

// TermDict is the term-id dictionary variant. It extends the plain layout
// with a dense side array of term-ids in leaf-encounter order and a rank
// index over the leaf bits to address it.
//
// A TermDict is immutable and safe for concurrent readers.
type TermDict[U Unit] struct {
	dict[U]
	leafRank *bitvec.Index
	termIDs  []int32
}

// TermID returns the term-id of the stored key whose node sits at pos,
// or -1 if pos is out of range or not a stored key.
//
// The i-th leaf encountered by the level-order walk owns termIDs[i], so
// the index of a leaf at pos is the number of leaf bits before it.
func (d *TermDict[U]) TermID(pos int) int32 {
	if pos < 0 || pos >= d.leaf.Len() || !d.leaf.Get(pos) {
		return -1
	}
	i := d.leafRank.Rank1(pos)
	if i >= len(d.termIDs) {
		return -1
	}
	return d.termIDs[i]
}

// TermIDOf is a convenience for TermID(Lookup(key)).
func (d *TermDict[U]) TermIDOf(key []U) int32 {
	return d.TermID(d.Lookup(key))
}

// Equal reports whether two dictionaries hold identical encodings,
// including their term-id arrays.
func (d *TermDict[U]) Equal(o *TermDict[U]) bool {
	if !d.equal(&o.dict) || len(d.termIDs) != len(o.termIDs) {
		return false
	}
	for i, id := range d.termIDs {
		if id != o.termIDs[i] {
			return false
		}
	}
	return true
}
