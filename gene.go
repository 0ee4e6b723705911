// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hpo

// Gene is a single HGNC gene record. Identity is by ID; Symbol is a
// uniqueness hint only.
type Gene struct {
	id     int
	symbol string

	// hpo holds only the terms this gene was directly linked to; per the
	// asymmetric annotation-side propagation rule, propagated ancestor
	// terms are never added here.
	hpo map[int]struct{}
}

// ID returns the gene's HGNC (or, failing that, NCBI) integer id.
func (g *Gene) ID() int { return g.id }

// Symbol returns the gene's HUGO symbol.
func (g *Gene) Symbol() string { return g.symbol }

// Name is an alias for Symbol, matching pyhpo's Gene.name accessor.
func (g *Gene) Name() string { return g.symbol }

// HPO returns the set of term indices this gene is directly linked to.
func (g *Gene) HPO() map[int]struct{} { return g.hpo }

// GeneRegistry is a get-or-insert-by-id singleton registry of Genes.
type GeneRegistry struct {
	byID map[int]*Gene
}

// NewGeneRegistry returns a new, empty GeneRegistry.
func NewGeneRegistry() *GeneRegistry {
	return &GeneRegistry{byID: make(map[int]*Gene)}
}

// GetOrCreate returns the existing Gene for id if one exists, otherwise
// creates one with the given symbol. Supplying a different symbol for an
// existing id is idempotent: the existing record's symbol is never
// overwritten.
func (r *GeneRegistry) GetOrCreate(id int, symbol string) *Gene {
	if g, ok := r.byID[id]; ok {
		return g
	}
	g := &Gene{id: id, symbol: symbol, hpo: make(map[int]struct{})}
	r.byID[id] = g
	return g
}

// Get returns the gene with the given id, if any.
func (r *GeneRegistry) Get(id int) (*Gene, bool) {
	g, ok := r.byID[id]
	return g, ok
}

// Len returns the number of distinct genes in the registry.
func (r *GeneRegistry) Len() int { return len(r.byID) }

// All returns every gene in the registry, in no particular order.
func (r *GeneRegistry) All() []*Gene {
	out := make([]*Gene, 0, len(r.byID))
	for _, g := range r.byID {
		out = append(out, g)
	}
	return out
}
