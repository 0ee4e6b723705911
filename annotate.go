// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hpo

// LinkGene records a direct annotation between gene and term in store, then
// propagates it to every ancestor of term. Gene.hpo itself is left
// direct-only, per the asymmetric annotation-side rule. Load links every
// row of phenotype_to_genes.txt through this function, and it is the only
// code that adds to Term.genes.
func LinkGene(store *Store, gene *Gene, term *Term) {
	gene.hpo[term.index] = struct{}{}
	term.genes[gene.id] = struct{}{}
	for a := range term.ancestors {
		at, ok := store.Term(a)
		if !ok {
			continue
		}
		at.genes[gene.id] = struct{}{}
	}
}

// LinkDisease records a direct annotation between disease and term in
// store. If positive is true, the link is propagated to every ancestor of
// term; if false (a "NOT" qualifier in phenotype.hpoa), the link is
// recorded only on term itself and never propagated, per the negative-
// association rule.
func LinkDisease(store *Store, disease *Disease, term *Term, positive bool) {
	disease.hpo[term.index] = struct{}{}
	if !positive {
		term.diseasesNegative[disease.source][disease.id] = struct{}{}
		return
	}
	term.diseases[disease.source][disease.id] = struct{}{}
	for a := range term.ancestors {
		at, ok := store.Term(a)
		if !ok {
			continue
		}
		at.diseases[disease.source][disease.id] = struct{}{}
	}
}
