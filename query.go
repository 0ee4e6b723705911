// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hpo

import (
	"sort"
	"strconv"
	"strings"
)

// Get resolves query, which may be an integer index, a canonical id string
// (e.g. "HP:0000118"), or an exact term name, to its Term. It returns a
// *NotFoundError if no term matches (no silent nulls).
func (o *Ontology) Get(query string) (*Term, error) {
	if idx, err := strconv.Atoi(query); err == nil {
		if t, ok := o.store.Term(idx); ok {
			return t, nil
		}
		return nil, &NotFoundError{Kind: "term index", Query: query}
	}
	if t, ok := o.store.ByID(query); ok {
		return t, nil
	}
	if t, ok := o.store.ByName(query); ok {
		return t, nil
	}
	return nil, &NotFoundError{Kind: "term", Query: query}
}

// TermIter is a lazy, index-ordered sequence of Terms produced by a search
// operation. Its zero value iterates nothing.
type TermIter struct {
	terms []*Term
	pos   int
}

// Next advances the iterator and returns the next Term, or (nil, false)
// once exhausted.
func (it *TermIter) Next() (*Term, bool) {
	if it == nil || it.pos >= len(it.terms) {
		return nil, false
	}
	t := it.terms[it.pos]
	it.pos++
	return t, true
}

// All drains the remaining terms of the iterator into a slice.
func (it *TermIter) All() []*Term {
	if it == nil {
		return nil
	}
	out := append([]*Term(nil), it.terms[it.pos:]...)
	it.pos = len(it.terms)
	return out
}

func newTermIter(terms []*Term) *TermIter {
	sort.Slice(terms, func(i, j int) bool { return terms[i].index < terms[j].index })
	return &TermIter{terms: terms}
}

// Search returns a lazy, index-ordered sequence over every term whose name
// contains substr, case-insensitive.
func (o *Ontology) Search(substr string) *TermIter {
	needle := strings.ToLower(substr)
	var out []*Term
	for _, t := range o.store.All() {
		if strings.Contains(strings.ToLower(t.name), needle) {
			out = append(out, t)
		}
	}
	return newTermIter(out)
}

// SynonymSearch is like Search but also matches against each term's
// synonyms.
func (o *Ontology) SynonymSearch(substr string) *TermIter {
	needle := strings.ToLower(substr)
	var out []*Term
	for _, t := range o.store.All() {
		if strings.Contains(strings.ToLower(t.name), needle) {
			out = append(out, t)
			continue
		}
		for _, syn := range t.synonyms {
			if strings.Contains(strings.ToLower(syn), needle) {
				out = append(out, t)
				break
			}
		}
	}
	return newTermIter(out)
}

// SynonymMatch returns the first term, in ascending index order, whose
// name or synonym exactly matches s (case-insensitive).
func (o *Ontology) SynonymMatch(s string) (*Term, error) {
	needle := strings.ToLower(s)
	for _, t := range o.store.All() {
		if strings.ToLower(t.name) == needle {
			return t, nil
		}
		for _, syn := range t.synonyms {
			if strings.ToLower(syn) == needle {
				return t, nil
			}
		}
	}
	return nil, &NotFoundError{Kind: "synonym", Query: s}
}

// Match returns the unique term with the exact name s (case-insensitive).
func (o *Ontology) Match(s string) (*Term, error) {
	if t, ok := o.store.ByName(s); ok {
		return t, nil
	}
	return nil, &NotFoundError{Kind: "term name", Query: s}
}

// AllTerms returns a lazy, index-ordered sequence over every term in the
// ontology.
func (o *Ontology) AllTerms() *TermIter {
	return newTermIter(append([]*Term(nil), o.store.All()...))
}

// Path returns the is-a chain between a and b, via their shortest path
// through a common ancestor.
func (o *Ontology) Path(a, b *Term) (length int, path []int, up, down int, err error) {
	return o.graph.ShortestPath(a, b)
}
