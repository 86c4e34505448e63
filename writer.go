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

	"github.com/dsnet/louds/internal/bitvec"
)

// crcWriter tracks the running CRC-32 and count of all bytes written
// through it.
type crcWriter struct {
	w   io.Writer
	crc uint32
	n   int64
}

func (cw *crcWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.crc = crc32.Update(cw.crc, crc32.IEEETable, p[:n])
	cw.n += int64(n)
	return n, err
}

// WriteTo writes the dictionary artifact: header, payload, CRC trailer.
// The output is deterministic; identical dictionaries serialize to
// identical bytes.
func (d *Dict[U]) WriteTo(w io.Writer) (int64, error) {
	cw := &crcWriter{w: w}
	err := writeHeader(cw, uint32(unitWidth[U]())<<flagWidthLsb)
	if err == nil {
		err = d.writePayload(cw)
	}
	if err == nil {
		err = binary.Write(cw, binary.LittleEndian, cw.crc)
	}
	return cw.n, err
}

// WriteTo writes the dictionary artifact: header, payload including the
// term-id array, CRC trailer.
func (d *TermDict[U]) WriteTo(w io.Writer) (int64, error) {
	cw := &crcWriter{w: w}
	err := writeHeader(cw, uint32(unitWidth[U]())<<flagWidthLsb|flagTermIDs)
	if err == nil {
		err = d.writePayload(cw)
	}
	if err == nil {
		err = binary.Write(cw, binary.LittleEndian, uint64(len(d.termIDs)))
	}
	if err == nil {
		err = binary.Write(cw, binary.LittleEndian, d.termIDs)
	}
	if err == nil {
		err = binary.Write(cw, binary.LittleEndian, cw.crc)
	}
	return cw.n, err
}

// Save writes the artifact to path, creating or truncating it.
func (d *Dict[U]) Save(path string) error { return save(path, d) }

// Save writes the artifact to path, creating or truncating it.
func (d *TermDict[U]) Save(path string) error { return save(path, d) }

func save(path string, d io.WriterTo) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	bw := bufio.NewWriter(f)
	if _, err := d.WriteTo(bw); err != nil {
		return err
	}
	return bw.Flush()
}

func writeHeader(w io.Writer, flags uint32) error {
	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(formatVersion)); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, flags)
}

// writePayload writes the sections shared by both variants: the two bit
// vectors and the label array.
func (d *dict[U]) writePayload(w io.Writer) error {
	if err := writeVector(w, d.lbs.Vector()); err != nil {
		return err
	}
	if err := writeVector(w, d.leaf); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(d.labels))); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, d.labels)
}

func writeVector(w io.Writer, v *bitvec.Vector) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(v.Len())); err != nil {
		return err
	}
	words := v.Words()
	if err := binary.Write(w, binary.LittleEndian, uint64(len(words))); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, words)
}
