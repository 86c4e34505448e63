// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Build tool to convert a compressed, newline-delimited list of titles
// into LOUDS dictionary artifacts.
//
// Example usage:
//
//	$ go build -o louds-build .
//	$ ./louds-build \
//		-input   jawiki-latest-all-titles-in-ns0.gz \
//		-out-dir out                                \
//		-prefix  jawiki_latest                      \
//		-limit   0
//
// The input is gzip-compressed UTF-8 text with one key per line; a file
// with an .xz extension is decompressed as xz instead. Trailing carriage
// returns are stripped, empty lines are skipped, and lines that fail
// UTF-8 validation are skipped without aborting the build.
//
// Three files are written to the output directory:
//
//	<prefix>.louds.bin         plain dictionary
//	<prefix>.louds_termid.bin  term-id dictionary
//	metrics.json               flat object with build statistics
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dsnet/golib/strconv"
	"github.com/dsnet/louds"
	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
)

var (
	input  = flag.String("input", "", "compressed titles file (.gz or .xz), one key per line")
	outDir = flag.String("out-dir", ".", "output directory, created if missing")
	prefix = flag.String("prefix", "titles", "output filename prefix")
	limit  = flag.Uint64("limit", 0, "maximum number of keys to insert (0 = unlimited)")
)

type metrics struct {
	WordCount                     uint64  `json:"word_count"`
	CharCount                     uint64  `json:"char_count"`
	InputGzBytes                  uint64  `json:"input_gz_bytes"`
	InputUTF8BytesTotal           uint64  `json:"input_utf8_bytes_total"`
	SecondsTotal                  float64 `json:"seconds_total"`
	SecondsConvertLouds           float64 `json:"seconds_convert_louds"`
	SecondsConvertLoudsWithTermID float64 `json:"seconds_convert_louds_with_term_id"`
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -input <titles.gz> [-out-dir <dir>] [-prefix <name>] [-limit N]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *input == "" || flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	start := time.Now()
	if err := os.MkdirAll(*outDir, 0775); err != nil {
		return err
	}

	f, err := os.Open(*input)
	if err != nil {
		return err
	}
	defer f.Close()

	var m metrics
	if fi, err := f.Stat(); err == nil {
		m.InputGzBytes = uint64(fi.Size())
	}

	zr, err := newDecompressor(f, *input)
	if err != nil {
		return err
	}

	b := louds.NewBuilder[uint32]()
	sc := bufio.NewScanner(zr)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		if *limit != 0 && m.WordCount >= *limit {
			break
		}
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		m.InputUTF8BytesTotal += uint64(len(line))
		if !utf8.ValidString(line) {
			continue
		}
		key := louds.Units32(line)
		b.Insert(key)
		m.WordCount++
		m.CharCount += uint64(len(key))
	}
	if err := sc.Err(); err != nil {
		return err
	}

	outLouds := filepath.Join(*outDir, *prefix+".louds.bin")
	outTermID := filepath.Join(*outDir, *prefix+".louds_termid.bin")

	t := time.Now()
	if err := b.Dict().Save(outLouds); err != nil {
		return err
	}
	m.SecondsConvertLouds = time.Since(t).Seconds()

	t = time.Now()
	if err := b.TermDict().Save(outTermID); err != nil {
		return err
	}
	m.SecondsConvertLoudsWithTermID = time.Since(t).Seconds()
	m.SecondsTotal = time.Since(start).Seconds()

	if err := writeMetrics(filepath.Join(*outDir, "metrics.json"), m); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%d keys, %d nodes (%sB compressed input, %sB text) in %.2fs\n",
		m.WordCount, b.Nodes(),
		strconv.FormatPrefix(float64(m.InputGzBytes), strconv.Base1024, 2),
		strconv.FormatPrefix(float64(m.InputUTF8BytesTotal), strconv.Base1024, 2),
		m.SecondsTotal)
	return nil
}

// newDecompressor picks the decompressor from the file extension.
// Wikipedia title dumps are gzip; xz is accepted as a convenience.
func newDecompressor(f *os.File, name string) (io.Reader, error) {
	br := bufio.NewReader(f)
	if strings.HasSuffix(name, ".xz") {
		return xz.NewReader(br)
	}
	return gzip.NewReader(br)
}

func writeMetrics(path string, m metrics) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}
