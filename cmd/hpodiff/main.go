// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// hpodiff compares two text reports, such as the JSON output of two
// hpoquery runs or two TSV enrichment exports, printing a unified text
// diff to stdout (colorized unless -color=false). It is meant
// for regression triage between two HPO data releases or two enrichment
// runs over the same query set.
package main

import (
	"flag"
	"io/ioutil"
	"log"
	"os"

	"github.com/pkg/diff"
	"github.com/pkg/diff/write"
)

func main() {
	var (
		a      = flag.String("a", "", "path to the first TSV report (required)")
		b      = flag.String("b", "", "path to the second TSV report (required)")
		color  = flag.Bool("color", true, "colorize the diff output for a terminal")
		help   = flag.Bool("help", false, "print help text")
	)
	flag.Parse()

	if *help || *a == "" || *b == "" {
		flag.Usage()
		os.Exit(2)
	}

	aText, err := readFile(*a)
	if err != nil {
		log.Fatalf("hpodiff: %v", err)
	}
	bText, err := readFile(*b)
	if err != nil {
		log.Fatalf("hpodiff: %v", err)
	}

	var opts []write.Option
	if *color {
		opts = append(opts, write.TerminalColor())
	}
	if err := diff.Text(*a, *b, aText, bText, os.Stdout, opts...); err != nil {
		log.Fatalf("hpodiff: %v", err)
	}
}

func readFile(path string) (string, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
