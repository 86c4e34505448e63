// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Query tool to run a common-prefix search against a LOUDS dictionary
// artifact.
//
// Example usage:
//
//	$ go build -o louds-query .
//	$ ./louds-query out/jawiki_latest.louds.bin 東京都庁
//	dict=out/jawiki_latest.louds.bin
//	query=東京都庁
//	hit=3
//	東京
//	東京都
//	東京都庁
//
// An artifact named *.louds_termid.bin is loaded as the term-id variant;
// the hits themselves are printed the same way for both.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dsnet/louds"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <dict.louds.bin> <query-utf8>\n", os.Args[0])
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(path, query string) error {
	hits, err := search(path, louds.Units32(query))
	if err != nil {
		return err
	}
	fmt.Printf("dict=%s\n", path)
	fmt.Printf("query=%s\n", query)
	fmt.Printf("hit=%d\n", len(hits))
	for _, h := range hits {
		fmt.Println(louds.String32(h))
	}
	return nil
}

func search(path string, query []uint32) ([][]uint32, error) {
	if strings.HasSuffix(path, ".louds_termid.bin") {
		d, err := louds.LoadTermDict[uint32](path)
		if err != nil {
			return nil, err
		}
		return d.CommonPrefixSearch(query), nil
	}
	d, err := louds.LoadDict[uint32](path)
	if err != nil {
		return nil, err
	}
	return d.CommonPrefixSearch(query), nil
}
