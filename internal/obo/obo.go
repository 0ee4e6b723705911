// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obo parses the OBO flat-file format used by hp.obo, in the
// narrow subset this library requires: [Term] stanzas separated by
// blank lines, with a fixed set of recognized tag-value keys. [Typedef]
// stanzas and any other stanza type are skipped.
package obo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is a single parsed [Term] stanza.
type Record struct {
	ID         string
	Name       string
	Def        string
	Comment    string
	Synonyms   []string
	AltIDs     []string
	IsA        []string
	IsObsolete bool
	ReplacedBy string
}

// ReadFile reads and parses path as an OBO file.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obo: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses r as an OBO file.
func Read(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var records []Record
	var cur *Record
	inTerm := false

	flush := func() {
		if cur != nil {
			records = append(records, *cur)
			cur = nil
		}
	}

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		if trimmed == "" {
			flush()
			inTerm = false
			continue
		}
		if trimmed == "[Term]" {
			flush()
			cur = &Record{}
			inTerm = true
			continue
		}
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			flush()
			inTerm = false
			continue
		}
		if !inTerm || cur == nil {
			continue
		}

		key, value, ok := splitTag(trimmed)
		if !ok {
			continue
		}
		switch key {
		case "id":
			cur.ID = value
		case "name":
			cur.Name = value
		case "def":
			cur.Def = quotedPortion(value)
		case "comment":
			cur.Comment = value
		case "synonym":
			cur.Synonyms = append(cur.Synonyms, quotedPortion(value))
		case "alt_id":
			cur.AltIDs = append(cur.AltIDs, value)
		case "is_a":
			cur.IsA = append(cur.IsA, stripTrailingComment(value))
		case "is_obsolete":
			cur.IsObsolete = value == "true"
		case "replaced_by":
			if cur.ReplacedBy == "" {
				cur.ReplacedBy = value
			}
		}
	}
	flush()

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("obo: line %d: %w", lineNo, err)
	}
	return records, nil
}

// splitTag splits a "key: value" stanza line.
func splitTag(line string) (key, value string, ok bool) {
	i := strings.Index(line, ":")
	if i < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]), true
}

// quotedPortion extracts the double-quoted substring from a value such as
// `"Abnormality of the eye" [HPO:probinson]`, returning the raw value
// unchanged if it contains no quotes.
func quotedPortion(value string) string {
	start := strings.IndexByte(value, '"')
	if start < 0 {
		return value
	}
	end := strings.IndexByte(value[start+1:], '"')
	if end < 0 {
		return value
	}
	return value[start+1 : start+1+end]
}

// stripTrailingComment removes a trailing "! name" annotation from an is_a
// value, leaving only the id.
func stripTrailingComment(value string) string {
	if i := strings.IndexByte(value, '!'); i >= 0 {
		return strings.TrimSpace(value[:i])
	}
	return value
}
