// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package louds

import "github.com/dsnet/louds/internal/bitvec"

// Dict is the plain dictionary variant: it answers prefix and membership
// queries but carries no term-ids.
//
// A Dict is immutable and safe for concurrent readers.
type Dict[U Unit] struct {
	dict[U]
}

// dict holds the LOUDS arrays and the navigation shared by both variants.
//
// A position is an index into the LBS; a node is entered at the position of
// its 1-bit inside its parent's child block. Positions 0 and 1 are the
// super-root sentinels: the true root is entered at position 0, and its
// own child block starts at position 2. With
// Rank1 counting [0, i) and 0-indexed Select, the navigation equations are
//
//	firstChild(p) = Select0(Rank1(p)) + 1
//	parent(p)     = Select1(Rank0(p) - 1)
//	label index   = Rank1(p) + 1
//	node id       = Rank0(p)
//
// and the sibling of p, if any, sits at p+1.
type dict[U Unit] struct {
	lbs    *bitvec.Index
	leaf   *bitvec.Vector
	labels []U
}

// Keys returns the number of distinct keys stored.
func (d *dict[U]) Keys() int { return d.leaf.Count() }

// firstChild returns the position of the first child of the node at pos,
// or -1 if it has none.
func (d *dict[U]) firstChild(pos int) int {
	y := d.lbs.Select0(d.lbs.Rank1(pos)) + 1
	if y <= 0 || y >= d.lbs.Vector().Len() || !d.lbs.Vector().Get(y) {
		return -1
	}
	return y
}

// traverse descends from the node at pos along the edge labeled u,
// scanning the child block left to right. It returns -1 if no child
// carries u.
func (d *dict[U]) traverse(pos int, u U) int {
	c := d.firstChild(pos)
	if c < 0 {
		return -1
	}
	v := d.lbs.Vector()
	for c < v.Len() && v.Get(c) {
		if d.labels[d.lbs.Rank1(c)+1] == u {
			return c
		}
		c++
	}
	return -1
}

// CommonPrefixSearch returns every stored key that is a prefix of key, in
// ascending length order. The result is empty when no prefix is stored.
func (d *dict[U]) CommonPrefixSearch(key []U) [][]U {
	var hits [][]U
	acc := make([]U, 0, len(key))
	pos := 0
	for _, u := range key {
		pos = d.traverse(pos, u)
		if pos < 0 {
			break
		}
		acc = append(acc, d.labels[d.lbs.Rank1(pos)+1])
		if d.leaf.Get(pos) {
			hits = append(hits, append([]U(nil), acc...))
		}
	}
	return hits
}

// Lookup returns the position of the node reached by key, or -1 if the key
// is empty or not present as a path. The node need not be a stored key;
// use the leaf bit (or TermID on the variant) to tell.
func (d *dict[U]) Lookup(key []U) int {
	if len(key) == 0 {
		return -1
	}
	v := d.lbs.Vector()
	pos := rootPos
	for i, u := range key {
		for {
			if pos < 0 || pos >= v.Len() || !v.Get(pos) {
				return -1
			}
			if d.labels[d.lbs.Rank1(pos)+1] == u {
				break
			}
			pos++ // next sibling
		}
		if i+1 == len(key) {
			return pos
		}
		pos = d.lbs.Select0(d.lbs.Rank1(pos)) + 1
	}
	return -1
}

// Contains reports whether key is a stored key.
func (d *dict[U]) Contains(key []U) bool {
	pos := d.Lookup(key)
	return pos >= 0 && d.leaf.Get(pos)
}

// KeyAt reconstructs the label path from the root to the node at pos.
// It returns nil if pos is out of range or not a node position.
func (d *dict[U]) KeyAt(pos int) []U {
	if pos < 0 || pos >= d.lbs.Vector().Len() || !d.lbs.Vector().Get(pos) {
		return nil
	}
	var out []U
	for cur := pos; d.lbs.Rank0(cur) > 0; { // rank0 is 0 only at the super-root
		out = append(out, d.labels[d.lbs.Rank1(cur)+1])
		cur = d.lbs.Select1(d.lbs.Rank0(cur) - 1)
		if cur < 0 {
			break
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// NodeID returns the dense integer identifier of the node at pos
// (the rank0 of its position), or -1 if pos is out of range.
func (d *dict[U]) NodeID(pos int) int {
	if pos < 0 || pos >= d.lbs.Vector().Len() {
		return -1
	}
	return d.lbs.Rank0(pos)
}

// equal reports deep equality of the encoded arrays.
func (d *dict[U]) equal(o *dict[U]) bool {
	if !d.lbs.Vector().Equal(o.lbs.Vector()) || !d.leaf.Equal(o.leaf) {
		return false
	}
	if len(d.labels) != len(o.labels) {
		return false
	}
	for i, u := range d.labels {
		if u != o.labels[i] {
			return false
		}
	}
	return true
}

// Equal reports whether two dictionaries hold identical encodings.
func (d *Dict[U]) Equal(o *Dict[U]) bool { return d.equal(&o.dict) }
