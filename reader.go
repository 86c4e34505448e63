// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package louds

import (
	"bufio"
	"encoding/binary"
	"hash/crc32"
	"io"
	"os"

	"github.com/dsnet/golib/errs"
	"github.com/dsnet/louds/internal/bitvec"
)

// An artifact must describe fewer bits than this in any one vector.
// Length fields beyond it are treated as corruption rather than handed
// to the allocator.
const maxVectorBits = 1 << 36

// ReadDict parses a plain dictionary artifact from r. The stream may be
// either the headered format written by this package (validated against
// its CRC) or a bare legacy payload. Any truncation, inconsistency, or
// checksum failure yields ErrCorrupt; a header for the wrong unit width
// or variant yields ErrHeader.
func ReadDict[U Unit](r io.Reader) (*Dict[U], error) {
	e, err := readEncoding[U](r, false)
	if err != nil {
		return nil, err
	}
	return &Dict[U]{dict[U]{
		lbs:    bitvec.NewIndex(e.lbs),
		leaf:   e.leaf,
		labels: e.labels,
	}}, nil
}

// ReadTermDict parses a term-id dictionary artifact from r.
// It behaves as ReadDict otherwise.
func ReadTermDict[U Unit](r io.Reader) (*TermDict[U], error) {
	e, err := readEncoding[U](r, true)
	if err != nil {
		return nil, err
	}
	return &TermDict[U]{
		dict: dict[U]{
			lbs:    bitvec.NewIndex(e.lbs),
			leaf:   e.leaf,
			labels: e.labels,
		},
		leafRank: bitvec.NewIndex(e.leaf),
		termIDs:  e.termIDs,
	}, nil
}

// LoadDict reads a plain dictionary artifact from path.
func LoadDict[U Unit](path string) (*Dict[U], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDict[U](bufio.NewReader(f))
}

// LoadTermDict reads a term-id dictionary artifact from path.
func LoadTermDict[U Unit](path string) (*TermDict[U], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTermDict[U](bufio.NewReader(f))
}

// parser reads the binary stream while maintaining the running CRC.
// Its methods panic with a typed error on failure; readEncoding recovers
// at the boundary.
type parser struct {
	r   io.Reader
	crc uint32
	buf [512]byte // scratch for section decoding
}

func (p *parser) read(b []byte) {
	if _, err := io.ReadFull(p.r, b); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = ErrCorrupt
		}
		errs.Panic(err)
	}
	p.crc = crc32.Update(p.crc, crc32.IEEETable, b)
}

func (p *parser) u32() uint32 {
	var b [4]byte
	p.read(b[:])
	return binary.LittleEndian.Uint32(b[:])
}

func (p *parser) u64() uint64 {
	var b [8]byte
	p.read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// vectorTail parses a bit vector section whose leading bit count has
// already been consumed.
func (p *parser) vectorTail(nbits uint64) *bitvec.Vector {
	nwords := p.u64()
	errs.Assert(nbits < maxVectorBits, ErrCorrupt)
	errs.Assert(nwords == (nbits+63)/64, ErrCorrupt)

	words := make([]uint64, nwords)
	for i := 0; i < len(words); {
		n := min(len(words)-i, len(p.buf)/8)
		p.read(p.buf[:8*n])
		for j := 0; j < n; j++ {
			words[i+j] = binary.LittleEndian.Uint64(p.buf[8*j:])
		}
		i += n
	}
	v, err := bitvec.FromWords(int(nbits), words)
	if err != nil {
		errs.Panic(ErrCorrupt)
	}
	return v
}

func (p *parser) vector() *bitvec.Vector { return p.vectorTail(p.u64()) }

// units parses n fixed-width little-endian values.
func units[U Unit](p *parser, n uint64) []U {
	w := unitWidth[U]()
	out := make([]U, n)
	for i := 0; i < len(out); {
		c := min(len(out)-i, len(p.buf)/w)
		p.read(p.buf[:w*c])
		for j := 0; j < c; j++ {
			if w == 2 {
				out[i+j] = U(binary.LittleEndian.Uint16(p.buf[2*j:]))
			} else {
				out[i+j] = U(binary.LittleEndian.Uint32(p.buf[4*j:]))
			}
		}
		i += c
	}
	return out
}

func readEncoding[U Unit](r io.Reader, wantTerm bool) (e encoding[U], err error) {
	defer errs.Recover(&err)
	p := &parser{r: r}

	var first [8]byte
	p.read(first[:])

	legacy := first != magic
	var lbs *bitvec.Vector
	if legacy {
		// The stream starts directly at the LBS section; the bytes just
		// consumed are its bit count.
		lbs = p.vectorTail(binary.LittleEndian.Uint64(first[:]))
	} else {
		errs.Assert(p.u32() == formatVersion, ErrHeader)
		flags := p.u32()
		errs.Assert(flags&^uint32(flagTermIDs|flagWidthMask) == 0, ErrHeader)
		errs.Assert(int(flags>>flagWidthLsb)&0xff == unitWidth[U](), ErrHeader)
		errs.Assert((flags&flagTermIDs != 0) == wantTerm, ErrHeader)
		lbs = p.vector()
	}
	leaf := p.vector()

	// Structural invariants tying the streams together.
	ones := lbs.Count()
	zeros := lbs.Len() - ones
	errs.Assert(leaf.Len() == lbs.Len(), ErrCorrupt)
	errs.Assert(lbs.Len() >= 2 && lbs.Get(0) && !lbs.Get(1), ErrCorrupt)
	errs.Assert(zeros == ones+1, ErrCorrupt)
	errs.Assert(!leaf.Get(0) && !leaf.Get(1), ErrCorrupt)
	for i, w := range leaf.Words() {
		errs.Assert(w&^lbs.Words()[i] == 0, ErrCorrupt) // every leaf is a node
	}

	// Label section: one unit per set LBS bit, plus one extra sentinel
	// (the set bit at position 0 pairs with the sentinel at labels[1]).
	nlabels := p.u64()
	errs.Assert(nlabels == uint64(ones)+1, ErrCorrupt)
	labels := units[U](p, nlabels)

	var termIDs []int32
	if wantTerm {
		nterm := p.u64()
		errs.Assert(nterm == uint64(leaf.Count()), ErrCorrupt)
		raw := units[uint32](p, nterm)
		termIDs = make([]int32, len(raw))
		for i, v := range raw {
			termIDs[i] = int32(v)
		}
	}

	if !legacy {
		want := p.crc
		var b [4]byte
		if _, err := io.ReadFull(p.r, b[:]); err != nil {
			errs.Panic(ErrCorrupt)
		}
		errs.Assert(binary.LittleEndian.Uint32(b[:]) == want, ErrCorrupt)
	}

	// The artifact is one dictionary; trailing bytes mean the stream was
	// spliced or the counts lied.
	var b [1]byte
	if _, err := io.ReadFull(p.r, b[:]); err != io.EOF {
		errs.Panic(ErrCorrupt)
	}

	return encoding[U]{lbs: lbs, leaf: leaf, labels: labels, termIDs: termIDs}, nil
}
