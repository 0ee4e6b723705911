// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hpo

import "math"

// ComputeIC fills in the built-in information content of every term in
// store, for every Kind, following:
//
//	IC_k(t) = -ln(n_k(t) / N_k)
//
// where n_k(t) is the number of kind-k annotations reachable at t (already
// propagated onto t.genes/t.diseases by annotate.go) and N_k is the total
// population size for kind k, given by totals. A term with n_k(t) == 0, or
// a kind with N_k == 0, has no defined IC for that kind; its value is left
// at the 0 sentinel with icSet left false, marking it "unknown" rather
// than a real zero.
func ComputeIC(store *Store, totals [numKinds]int) {
	for _, t := range store.All() {
		n := [numKinds]int{
			KindGene:     len(t.genes),
			KindOmim:     len(t.diseases[OMIM]),
			KindOrpha:    len(t.diseases[Orpha]),
			KindDecipher: len(t.diseases[Decipher]),
		}
		for k := Kind(0); k < numKinds; k++ {
			N := totals[k]
			if N == 0 || n[k] == 0 {
				continue
			}
			t.ic[k] = -math.Log(float64(n[k]) / float64(N))
			t.icSet[k] = true
		}
	}
}

// IC returns the term's built-in information content for kind k, and
// whether one is defined. A custom IC table on an Ontology takes priority
// over this value; see Ontology.IC.
func (t *Term) IC(k Kind) (float64, bool) {
	return t.ic[k], t.icSet[k]
}

// CustomICTable is a copy-on-write, index-keyed table of user-supplied
// information content values that overrides the built-in per-Kind IC for
// specific terms, so that a caller can substitute externally computed IC
// values without mutating the Store.
// The zero value is an empty table. A CustomICTable is immutable once
// published; With returns a new table rather than mutating the receiver, so
// that an *Ontology can swap its pointer to one atomically.
type CustomICTable struct {
	values map[int]float64
}

// Get returns the custom IC value for the given term index, if one has
// been set.
func (c *CustomICTable) Get(index int) (float64, bool) {
	if c == nil {
		return 0, false
	}
	v, ok := c.values[index]
	return v, ok
}

// With returns a new CustomICTable equal to c but with index's value set to
// ic, leaving c itself untouched.
func (c *CustomICTable) With(index int, ic float64) *CustomICTable {
	out := &CustomICTable{values: make(map[int]float64, c.Len()+1)}
	if c != nil {
		for k, v := range c.values {
			out.values[k] = v
		}
	}
	out.values[index] = ic
	return out
}

// Len reports the number of terms with an overridden IC value.
func (c *CustomICTable) Len() int {
	if c == nil {
		return 0
	}
	return len(c.values)
}
