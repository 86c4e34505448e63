// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package louds

import "github.com/dsnet/louds/internal/bitvec"

// encoding is the product of the level-order walk: the three parallel
// streams plus the term-id side array in leaf-encounter order.
type encoding[U Unit] struct {
	lbs     *bitvec.Vector
	leaf    *bitvec.Vector
	labels  []U
	termIDs []int32
}

// encode walks the trie breadth-first. Every node contributes one 1-bit
// per child followed by a 0-bit; the label and leaf streams advance with
// each 1-bit. The [1,0] prefix and the two sentinel entries stand for the
// super-root's single edge into the true root.
func (b *Builder[U]) encode() encoding[U] {
	var lbs, leaf bitvec.Vector
	lbs.Push(true)
	lbs.Push(false)
	leaf.Push(false)
	leaf.Push(false)

	labels := make([]U, 2, b.numNodes+2)
	labels[0], labels[1] = sentinelLabel, sentinelLabel
	var termIDs []int32

	queue := make([]*node[U], 0, 64)
	queue = append(queue, &b.root)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, c := range n.order {
			lbs.Push(true)
			leaf.Push(c.isWord)
			labels = append(labels, c.label)
			if c.isWord {
				termIDs = append(termIDs, c.termID)
			}
			queue = append(queue, c)
		}
		lbs.Push(false)
		leaf.Push(false)
	}
	return encoding[U]{lbs: &lbs, leaf: &leaf, labels: labels, termIDs: termIDs}
}

// Dict converts the accumulated keys to the plain dictionary variant.
// The builder remains usable afterwards.
func (b *Builder[U]) Dict() *Dict[U] {
	e := b.encode()
	return &Dict[U]{dict[U]{
		lbs:    bitvec.NewIndex(e.lbs),
		leaf:   e.leaf,
		labels: e.labels,
	}}
}

// TermDict converts the accumulated keys to the term-id dictionary
// variant. The builder remains usable afterwards.
func (b *Builder[U]) TermDict() *TermDict[U] {
	e := b.encode()
	return &TermDict[U]{
		dict: dict[U]{
			lbs:    bitvec.NewIndex(e.lbs),
			leaf:   e.leaf,
			labels: e.labels,
		},
		leafRank: bitvec.NewIndex(e.leaf),
		termIDs:  e.termIDs,
	}
}
