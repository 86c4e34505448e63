// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package louds implements a static dictionary over short textual keys,
// represented as a trie in the Level-Order Unary Degree Sequence (LOUDS)
// succinct encoding.
//
// A dictionary is produced by feeding keys to a Builder and is then
// immutable: it answers common-prefix searches (every stored key that is a
// prefix of a query) and, in the term-id variant, maps a stored key to the
// integer identifier assigned at insertion time. Dictionaries persist to a
// compact binary artifact and load back bit-identically.
//
// The encoding uses three parallel streams indexed by position in the LOUDS
// bit sequence (LBS). Every node contributes one 1-bit per child followed by
// a terminating 0-bit, in breadth-first order, with two sentinel bits [1,0]
// up front standing for the edge from a synthetic super-root to the true
// root. The label stream carries one entry per child edge, with two
// sentinel entries for the reserved positions; the leaf stream holds one
// bit per LBS position, set where a stored key ends. All navigation reduces to
// rank and select on the LBS.
//
// Keys are sequences of code units; both 16-bit (UTF-16) and 32-bit
// (UTF-32) instantiations are supported and the unit width is baked into
// the artifact.
package louds

import "unicode/utf16"

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "louds: " + string(e) }

var (
	// ErrCorrupt indicates that a dictionary stream is truncated,
	// internally inconsistent, or fails its checksum.
	ErrCorrupt error = Error("dictionary stream is corrupted")

	// ErrHeader indicates that a dictionary stream carries a header whose
	// version, unit width, or variant does not match the reader.
	ErrHeader error = Error("unsupported dictionary header")
)

// Unit is the alphabet of a dictionary: a UTF-16 code unit or a UTF-32
// scalar value.
type Unit interface {
	uint16 | uint32
}

const (
	// The two reserved LBS positions hold a space as sentinel label.
	sentinelLabel = 0x20

	// rootPos is the LBS position where the true root's child block
	// begins; positions 0 and 1 are the super-root sentinels.
	rootPos = 2
)

// The on-disk artifact is little-endian throughout:
//
//	magic[8] "LOUDSdic", version u32, flags u32      (header)
//	u64 nbits, u64 nwords, nwords x u64              (LBS)
//	u64 nbits, u64 nwords, nwords x u64              (isLeaf)
//	u64 n, n x u16|u32                               (labels)
//	u64 n, n x i32                                   (term ids, variant only)
//	u32 CRC-32/IEEE of header and payload            (trailer)
//
// Streams that start directly at the LBS section, with no header and no
// trailing checksum, are accepted for compatibility with artifacts written
// before the header existed.
var magic = [8]byte{'L', 'O', 'U', 'D', 'S', 'd', 'i', 'c'}

const (
	formatVersion = 1

	flagTermIDs   = 1 << 0 // term-id side array present
	flagWidthMask = 0xff00 // unit width in bytes, bits 8..15
	flagWidthLsb  = 8
)

// unitWidth returns the byte width of the unit type.
func unitWidth[U Unit]() int {
	var u U
	if _, ok := any(u).(uint16); ok {
		return 2
	}
	return 4
}

// Units16 converts a string to UTF-16 code units.
func Units16(s string) []uint16 { return utf16.Encode([]rune(s)) }

// String16 converts UTF-16 code units back to a string.
func String16(us []uint16) string { return string(utf16.Decode(us)) }

// Units32 converts a string to UTF-32 scalar values.
func Units32(s string) []uint32 {
	rs := []rune(s)
	us := make([]uint32, len(rs))
	for i, r := range rs {
		us[i] = uint32(r)
	}
	return us
}

// String32 converts UTF-32 scalar values back to a string.
func String32(us []uint32) string {
	rs := make([]rune, len(us))
	for i, u := range us {
		rs[i] = rune(u)
	}
	return string(rs)
}
