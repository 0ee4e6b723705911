// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hpo

// Disease is a single disease record from one of the three rare-disease
// sources. Each source maintains an independent integer id space, and
// positive and negative qualifiers are tracked as distinct registries.
type Disease struct {
	source DiseaseSource
	id     int
	name   string

	// hpo holds only the terms this disease was directly linked to, per
	// the asymmetric annotation-side propagation rule.
	hpo map[int]struct{}
}

// Source returns the disease's record family.
func (d *Disease) Source() DiseaseSource { return d.source }

// ID returns the disease's integer id within its source's id space.
func (d *Disease) ID() int { return d.id }

// Name returns the disease's display name.
func (d *Disease) Name() string { return d.name }

// HPO returns the set of term indices this disease is directly linked to.
func (d *Disease) HPO() map[int]struct{} { return d.hpo }

// DiseaseRegistry is a get-or-insert-by-id singleton registry of Diseases
// for one source and qualifier (positive or negative).
type DiseaseRegistry struct {
	source DiseaseSource
	byID   map[int]*Disease
}

// NewDiseaseRegistry returns a new, empty DiseaseRegistry for src.
func NewDiseaseRegistry(src DiseaseSource) *DiseaseRegistry {
	return &DiseaseRegistry{source: src, byID: make(map[int]*Disease)}
}

// GetOrCreate returns the existing Disease for id if one exists, otherwise
// creates one with the given name. As with GeneRegistry, a later call with
// a different name for an existing id is idempotent.
func (r *DiseaseRegistry) GetOrCreate(id int, name string) *Disease {
	if d, ok := r.byID[id]; ok {
		return d
	}
	d := &Disease{source: r.source, id: id, name: name, hpo: make(map[int]struct{})}
	r.byID[id] = d
	return d
}

// Get returns the disease with the given id, if any.
func (r *DiseaseRegistry) Get(id int) (*Disease, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// Len returns the number of distinct diseases in the registry.
func (r *DiseaseRegistry) Len() int { return len(r.byID) }

// All returns every disease in the registry, in no particular order.
func (r *DiseaseRegistry) All() []*Disease {
	out := make([]*Disease, 0, len(r.byID))
	for _, d := range r.byID {
		out = append(out, d)
	}
	return out
}
