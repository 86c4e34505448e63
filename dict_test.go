// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package louds

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func build32(keys ...string) *Dict[uint32] {
	b := NewBuilder[uint32]()
	insertAll(b, keys...)
	return b.Dict()
}

func search32(d *Dict[uint32], query string) []string {
	var hits []string
	for _, h := range d.CommonPrefixSearch(Units32(query)) {
		hits = append(hits, String32(h))
	}
	return hits
}

func TestCommonPrefixSearch(t *testing.T) {
	var vectors = []struct {
		keys  []string
		query string
		hits  []string
	}{{
		keys:  []string{"a", "ab", "abc"},
		query: "abcd",
		hits:  []string{"a", "ab", "abc"},
	}, {
		keys:  []string{"a", "ab", "abc"},
		query: "abc",
		hits:  []string{"a", "ab", "abc"},
	}, {
		keys:  []string{"a", "ab", "abc"},
		query: "ax",
		hits:  []string{"a"},
	}, {
		keys:  []string{"a", "ab", "abc"},
		query: "",
		hits:  nil, // empty query matches nothing
	}, {
		keys:  []string{"a", "ab", "abc"},
		query: "xabc",
		hits:  nil, // no edge at the root
	}, {
		keys:  []string{"cat", "car", "cart"},
		query: "cart",
		hits:  []string{"car", "cart"}, // sibling scan must reach 'r'
	}, {
		keys:  []string{"cat", "car", "cart"},
		query: "cat",
		hits:  []string{"cat"},
	}, {
		keys:  []string{"cat", "car", "cart"},
		query: "ca",
		hits:  nil, // interior node, not a stored key
	}, {
		keys:  []string{"す", "すみ", "すみれ"},
		query: "すみれいろ",
		hits:  []string{"す", "すみ", "すみれ"},
	}, {
		keys:  []string{"k"},
		query: "k",
		hits:  []string{"k"},
	}, {
		keys:  []string{"k"},
		query: "kx",
		hits:  []string{"k"},
	}, {
		keys:  []string{},
		query: "anything",
		hits:  nil,
	}}

	for i, v := range vectors {
		d := build32(v.keys...)
		if diff := cmp.Diff(v.hits, search32(d, v.query)); diff != "" {
			t.Errorf("test %d, CommonPrefixSearch(%q) mismatch (-want +got):\n%s", i, v.query, diff)
		}
	}
}

// TestCommonPrefixSearch16 runs the UTF-16 instantiation over keys that
// exercise multi-unit queries.
func TestCommonPrefixSearch16(t *testing.T) {
	b := NewBuilder[uint16]()
	for _, k := range []string{"す", "すみ", "すみれ"} {
		b.Insert(Units16(k))
	}
	d := b.Dict()

	var hits []string
	for _, h := range d.CommonPrefixSearch(Units16("すみれいろ")) {
		hits = append(hits, String16(h))
	}
	want := []string{"す", "すみ", "すみれ"}
	if diff := cmp.Diff(want, hits); diff != "" {
		t.Errorf("CommonPrefixSearch mismatch (-want +got):\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	d := build32("cat", "car", "cart")

	var vectors = []struct {
		key      string
		found    bool
		contains bool
	}{
		{key: "cat", found: true, contains: true},
		{key: "car", found: true, contains: true},
		{key: "cart", found: true, contains: true},
		{key: "ca", found: true, contains: false}, // path exists, key not stored
		{key: "c", found: true, contains: false},
		{key: "", found: false, contains: false},
		{key: "dog", found: false, contains: false},
		{key: "carts", found: false, contains: false},
	}

	for i, v := range vectors {
		pos := d.Lookup(Units32(v.key))
		if got := pos >= 0; got != v.found {
			t.Errorf("test %d, Lookup(%q) = %d, want found=%v", i, v.key, pos, v.found)
		}
		if got := d.Contains(Units32(v.key)); got != v.contains {
			t.Errorf("test %d, Contains(%q) = %v, want %v", i, v.key, got, v.contains)
		}
		if v.found {
			if got := String32(d.KeyAt(pos)); got != v.key {
				t.Errorf("test %d, KeyAt(Lookup(%q)) = %q, want %q", i, v.key, got, v.key)
			}
		}
	}
}

// TestKeyAtSpace makes sure that a space inside a key survives path
// reconstruction; only the depth-0 sentinel means "no character".
func TestKeyAtSpace(t *testing.T) {
	d := build32("a b", "a")
	pos := d.Lookup(Units32("a b"))
	if pos < 0 {
		t.Fatalf(`Lookup("a b") = %d, want a valid position`, pos)
	}
	if got := String32(d.KeyAt(pos)); got != "a b" {
		t.Errorf(`KeyAt(Lookup("a b")) = %q, want "a b"`, got)
	}
}

func TestNodeID(t *testing.T) {
	d := build32("cat", "car", "cart")

	// Dense ids: every node on the stored paths maps to a distinct
	// non-zero id, and
	// out-of-range positions map to -1.
	seen := map[int]string{}
	for _, k := range []string{"c", "ca", "cat", "car", "cart"} {
		id := d.NodeID(d.Lookup(Units32(k)))
		if id <= 0 {
			t.Errorf("NodeID(Lookup(%q)) = %d, want > 0", k, id)
		}
		if prev, ok := seen[id]; ok {
			t.Errorf("NodeID collision: %q and %q both map to %d", prev, k, id)
		}
		seen[id] = k
	}
	if got := d.NodeID(-1); got != -1 {
		t.Errorf("NodeID(-1) = %d, want -1", got)
	}
	if got := d.NodeID(1 << 20); got != -1 {
		t.Errorf("NodeID(1<<20) = %d, want -1", got)
	}
}

func TestKeys(t *testing.T) {
	if got := build32().Keys(); got != 0 {
		t.Errorf("Keys() = %d, want 0", got)
	}
	if got := build32("cat", "car", "cart").Keys(); got != 3 {
		t.Errorf("Keys() = %d, want 3", got)
	}
	// Duplicates collapse onto one node.
	if got := build32("a", "a", "ab").Keys(); got != 2 {
		t.Errorf("Keys() = %d, want 2", got)
	}
}
