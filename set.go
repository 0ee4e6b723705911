// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hpo

import (
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// HPOSet is an unordered collection of terms drawn from one Ontology.
// BasicHPOSet additionally normalizes its membership at construction time;
// see NewBasicHPOSet.
type HPOSet struct {
	ontology *Ontology
	terms    map[int]*Term
}

// NewHPOSet returns a new, empty HPOSet over o.
func NewHPOSet(o *Ontology) *HPOSet {
	return &HPOSet{ontology: o, terms: make(map[int]*Term)}
}

// Add inserts t into the set.
func (s *HPOSet) Add(t *Term) { s.terms[t.index] = t }

// Len returns the number of terms in the set.
func (s *HPOSet) Len() int { return len(s.terms) }

// Terms returns the set's members in ascending index order.
func (s *HPOSet) Terms() []*Term {
	out := make([]*Term, 0, len(s.terms))
	for _, t := range s.terms {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].index < out[j].index })
	return out
}

// FromQueries builds an HPOSet by resolving each query through
// Ontology.Get.
func FromQueries(o *Ontology, queries []string) (*HPOSet, error) {
	s := NewHPOSet(o)
	for _, q := range queries {
		t, err := o.Get(q)
		if err != nil {
			return nil, err
		}
		s.Add(t)
	}
	return s, nil
}

// FromSerialized builds an HPOSet from a plus-separated list of term
// indices such as "12+34+56"; order is irrelevant.
func FromSerialized(o *Ontology, serialized string) (*HPOSet, error) {
	s := NewHPOSet(o)
	if strings.TrimSpace(serialized) == "" {
		return s, nil
	}
	for _, part := range strings.Split(serialized, "+") {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, &ParseError{Source: "serialized HPOSet", Msg: "non-numeric index: " + part, Err: err}
		}
		t, ok := o.store.Term(idx)
		if !ok {
			return nil, &NotFoundError{Kind: "term index", Query: part}
		}
		s.Add(t)
	}
	return s, nil
}

// Serialize emits the set's member indices as "i1+i2+..." in ascending
// order.
func (s *HPOSet) Serialize() string {
	terms := s.Terms()
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = strconv.Itoa(t.index)
	}
	return strings.Join(parts, "+")
}

// ChildNodes returns the subset of s with no descendant also present in s:
// a member that is an ancestor of another member is dropped.
func (s *HPOSet) ChildNodes() *HPOSet {
	out := NewHPOSet(s.ontology)
	for _, t := range s.terms {
		isAncestorOfAnother := false
		for _, other := range s.terms {
			if other.index == t.index {
				continue
			}
			if _, ok := other.ancestors[t.index]; ok {
				isAncestorOfAnother = true
				break
			}
		}
		if !isAncestorOfAnother {
			out.Add(t)
		}
	}
	return out
}

// RemoveModifier drops every member that is the clinical-modifier root or
// one of its descendants.
func (s *HPOSet) RemoveModifier() *HPOSet {
	modRoot, hasModRoot := s.ontology.store.ByID(ModifierRootID)
	out := NewHPOSet(s.ontology)
	for _, t := range s.terms {
		if hasModRoot {
			if t.index == modRoot.index {
				continue
			}
			if _, ok := t.ancestors[modRoot.index]; ok {
				continue
			}
		}
		out.Add(t)
	}
	return out
}

// ReplaceObsolete replaces every obsolete member with the term named by
// its replaced_by tag, dropping any member whose replacement cannot be
// resolved.
func (s *HPOSet) ReplaceObsolete() *HPOSet {
	out := NewHPOSet(s.ontology)
	for _, t := range s.terms {
		if !t.obsolete {
			out.Add(t)
			continue
		}
		repl, ok := t.ReplacedBy()
		if !ok {
			continue
		}
		rt, ok := s.ontology.store.ByID(repl)
		if !ok {
			continue
		}
		out.Add(rt)
	}
	return out
}

// NewBasicHPOSet builds an HPOSet from queries and normalizes it: obsolete
// terms are replaced, modifier terms are removed, and the result is
// reduced to child nodes.
func NewBasicHPOSet(o *Ontology, queries []string) (*HPOSet, error) {
	s, err := FromQueries(o, queries)
	if err != nil {
		return nil, err
	}
	return s.ReplaceObsolete().RemoveModifier().ChildNodes(), nil
}

// AllGenes returns the union of every member's Genes(), resolved to Gene
// records.
func (s *HPOSet) AllGenes() []*Gene {
	seen := make(map[int]struct{})
	var out []*Gene
	for _, t := range s.terms {
		for id := range t.genes {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			if g, ok := s.ontology.Gene(id); ok {
				out = append(out, g)
			}
		}
	}
	return out
}

func (s *HPOSet) diseasesFor(src DiseaseSource) []*Disease {
	seen := make(map[int]struct{})
	var out []*Disease
	for _, t := range s.terms {
		for id := range t.diseases[src] {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			if d, ok := s.ontology.Disease(src, id); ok {
				out = append(out, d)
			}
		}
	}
	return out
}

// OmimDiseases returns the union of every member's OMIM disease links.
func (s *HPOSet) OmimDiseases() []*Disease { return s.diseasesFor(OMIM) }

// OrphaDiseases returns the union of every member's Orphanet disease links.
func (s *HPOSet) OrphaDiseases() []*Disease { return s.diseasesFor(Orpha) }

// DecipherDiseases returns the union of every member's DECIPHER disease
// links.
func (s *HPOSet) DecipherDiseases() []*Disease { return s.diseasesFor(Decipher) }

// ICStats summarizes a set's per-member information content for one kind.
type ICStats struct {
	Mean  float64
	Total float64
	Max   float64
	All   []float64
}

// InformationContent returns {mean, total, max, all} over the set's
// members' IC values for kind k.
func (s *HPOSet) InformationContent(k Kind) ICStats {
	terms := s.Terms()
	all := make([]float64, len(terms))
	var total, max float64
	for i, t := range terms {
		v := s.ontology.IC(t, k)
		all[i] = v
		total += v
		if i == 0 || v > max {
			max = v
		}
	}
	mean := 0.0
	if len(terms) > 0 {
		mean = total / float64(len(terms))
	}
	return ICStats{Mean: mean, Total: total, Max: max, All: all}
}

// Combinations yields every ordered pair of members, including self-pairs.
func (s *HPOSet) Combinations() [][2]*Term {
	terms := s.Terms()
	out := make([][2]*Term, 0, len(terms)*len(terms))
	for _, a := range terms {
		for _, b := range terms {
			out = append(out, [2]*Term{a, b})
		}
	}
	return out
}

// CombinationsOneWay yields every unordered pair of distinct members
// (i < j).
func (s *HPOSet) CombinationsOneWay() [][2]*Term {
	terms := s.Terms()
	var out [][2]*Term
	for i := 0; i < len(terms); i++ {
		for j := i + 1; j < len(terms); j++ {
			out = append(out, [2]*Term{terms[i], terms[j]})
		}
	}
	return out
}

// Variance returns the mean and variance of the pairwise is-a path
// distance across the set's one-way combinations, using
// gonum.org/v1/gonum/stat "mean-pairwise-distance
// statistics".
func (s *HPOSet) Variance() (mean, variance float64) {
	pairs := s.CombinationsOneWay()
	if len(pairs) == 0 {
		return 0, 0
	}
	distances := make([]float64, len(pairs))
	for i, p := range pairs {
		d, ok := s.ontology.ShortestPathLength(p[0], p[1])
		if !ok {
			continue
		}
		distances[i] = float64(d)
	}
	mean = stat.Mean(distances, nil)
	variance = stat.Variance(distances, nil)
	return mean, variance
}

// Similarity computes the set-level similarity between s and other using
// the named pairwise kernel over kind k, aggregated by the named combiner.
// An empty set on either side yields 0.0 without error.
func (s *HPOSet) Similarity(other *HPOSet, k Kind, kernelName, combinerName string) (float64, error) {
	a := s.Terms()
	b := other.Terms()
	if len(a) == 0 || len(b) == 0 {
		return 0.0, nil
	}

	kernel, ok := kernelRegistry[kernelName]
	if !ok {
		return 0, &NotFoundError{Kind: "kernel", Query: kernelName}
	}

	buf := make([]float64, len(a)*len(b))
	rowIC := make([]float64, len(a))
	colIC := make([]float64, len(b))
	for i, ta := range a {
		rowIC[i] = s.ontology.IC(ta, k)
		for j, tb := range b {
			buf[i*len(b)+j] = kernel(s.ontology, ta, tb, k)
			if i == 0 {
				colIC[j] = other.ontology.IC(tb, k)
			}
		}
	}
	m := NewMatrix(len(a), len(b), buf)
	return Combine(combinerName, m, rowIC, colIC)
}

// Enrich computes the hypergeometric enrichment of every kind-k annotation
// record against s's propagated term population, population(s) = s ∪
// descendants(s). For each record r of kind k, M is the total number of
// records of kind k, K is r's own direct annotation count, and x is the
// size of the intersection between r's direct terms and population(s); n
// is the number of records with a nonempty intersection. Results are
// sorted ascending by enrichment, ties broken by ascending record id. It
// returns nil if k has no corresponding registry (it always has one: gene
// or one of the three disease sources).
func (s *HPOSet) Enrich(k Kind) []EnrichmentResult {
	population := make(map[int]struct{})
	for _, t := range s.terms {
		population[t.index] = struct{}{}
		for idx := range t.descendants {
			population[idx] = struct{}{}
		}
	}

	var hpoSets []map[int]struct{}
	var ids []int
	if k == KindGene {
		for _, g := range s.ontology.genes.All() {
			ids = append(ids, g.id)
			hpoSets = append(hpoSets, g.hpo)
		}
	} else {
		src, ok := diseaseSourceForKind(k)
		if !ok {
			return nil
		}
		for _, d := range s.ontology.diseases[src].All() {
			ids = append(ids, d.id)
			hpoSets = append(hpoSets, d.hpo)
		}
	}

	records := make(map[int]struct{ K, X int }, len(ids))
	n := 0
	for i, id := range ids {
		x := 0
		for idx := range hpoSets[i] {
			if _, ok := population[idx]; ok {
				x++
			}
		}
		if x > 0 {
			n++
		}
		records[id] = struct{ K, X int }{K: len(hpoSets[i]), X: x}
	}

	return EnrichKind(s.ontology.totals[k], n, records)
}
