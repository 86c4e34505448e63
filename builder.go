// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package louds

// A Builder accumulates keys in a pointer-based trie and converts the
// result to its LOUDS form. It is a build-time scratchpad only; the
// dictionaries returned by Dict and TermDict do not retain it.
//
// Children are kept in first-seen order, so two builds over the same key
// sequence produce byte-identical artifacts. A Builder is not safe for
// concurrent use.
type Builder[U Unit] struct {
	root       node[U]
	numNodes   int
	numKeys    int
	nextTermID int32
}

type node[U Unit] struct {
	label  U
	isWord bool
	termID int32

	// order preserves first-seen child order for the level-order walk;
	// index exists only to make Insert O(1) per unit.
	order []*node[U]
	index map[U]*node[U]
}

func (n *node[U]) child(u U) *node[U] { return n.index[u] }

func (n *node[U]) addChild(c *node[U]) {
	if n.index == nil {
		n.index = make(map[U]*node[U])
	}
	n.index[c.label] = c
	n.order = append(n.order, c)
}

// NewBuilder returns an empty builder. Term-ids start at 1.
func NewBuilder[U Unit]() *Builder[U] {
	return &Builder[U]{nextTermID: 1}
}

// Insert adds a key. The key is assigned the next term-id; the counter
// advances on every call, so re-inserting an existing key burns an id and
// overwrites the id stored for that key.
func (b *Builder[U]) Insert(key []U) {
	id := b.nextTermID
	b.nextTermID++
	b.numKeys++

	cur := &b.root
	for _, u := range key {
		next := cur.child(u)
		if next == nil {
			next = &node[U]{label: u, termID: -1}
			cur.addChild(next)
			b.numNodes++
		}
		cur = next
	}
	cur.isWord = true
	cur.termID = id
}

// Keys returns the number of Insert calls so far.
func (b *Builder[U]) Keys() int { return b.numKeys }

// Nodes returns the number of trie nodes, excluding the root.
func (b *Builder[U]) Nodes() int { return b.numNodes }
