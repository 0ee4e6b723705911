// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hpo

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// RootID is the canonical id of the single HPO root term, "All".
const RootID = "HP:0000001"

// ModifierRootID is the canonical id of the "Clinical modifier" term; its
// descendants are treated as modifier terms by BasicHPOSet.
const ModifierRootID = "HP:0012823"

// Term is a single node of the HPO graph. A Term is only ever constructed
// by a Store during Ontology loading; after Load returns, every field
// reachable from a Term is read-only for the remainder of the process (or
// until the singleton Ontology is replaced), per the immutability contract
// of load.
type Term struct {
	index int

	id         string
	name       string
	definition string
	comment    string
	synonyms   []string
	altIDs     []string
	obsolete   bool
	replacedBy string

	parents  map[int]struct{}
	children map[int]struct{}

	// genes holds every gene annotated directly to this term or to any
	// descendant of it, via term-side propagation.
	genes map[int]struct{}

	// diseases[src] holds the positive, propagated annotation set for
	// disease source src. diseasesNegative[src] holds direct-only links;
	// negative annotations are never propagated.
	diseases         [numDiseaseSources]map[int]struct{}
	diseasesNegative [numDiseaseSources]map[int]struct{}

	// ancestors and descendants are the transitive is-a closures,
	// excluding the term itself. Computed once by Graph.build.
	ancestors   map[int]struct{}
	descendants map[int]struct{}

	// longestToRoot and shortestToRoot are the longest/shortest path
	// lengths (in edges) from this term up to the ontology root,
	// computed once by Graph.build.
	longestToRoot  int
	shortestToRoot int

	// ic holds the built-in information content values, keyed by Kind.
	// Custom IC tables supplied via Ontology.SetIC live on the Ontology,
	// not here, since they may be added after the term is built.
	ic [numKinds]float64
	// icSet[k] is true once ic[k] has been computed, distinguishing a
	// real value of 0 from "not yet computed" during the build pipeline.
	icSet [numKinds]bool
}

// ID implements gonum.org/v1/gonum/graph.Node so that a Term can be used
// directly as a graph node by Graph's gonum-compatible traversal methods.
func (t *Term) ID() int64 { return int64(t.index) }

// Index returns the term's stable dense integer index.
func (t *Term) Index() int { return t.index }

// HPOID returns the term's canonical id, e.g. "HP:0002650".
func (t *Term) HPOID() string { return t.id }

// Name returns the term's display name.
func (t *Term) Name() string { return t.name }

// Definition returns the term's long definition text.
func (t *Term) Definition() string { return t.definition }

// Comment returns the term's free-text comment, if any.
func (t *Term) Comment() string { return t.comment }

// Synonyms returns the term's parsed synonym strings, in the order the OBO
// stanza listed them.
func (t *Term) Synonyms() []string { return t.synonyms }

// SynonymString returns the term's synonyms joined as a single
// comma-separated string, matching pyhpo's Term.synonyms_string accessor.
func (t *Term) SynonymString() string { return strings.Join(t.synonyms, ", ") }

// AltIDs returns the term's alternate ids.
func (t *Term) AltIDs() []string { return t.altIDs }

// IsObsolete reports whether the term is marked obsolete.
func (t *Term) IsObsolete() bool { return t.obsolete }

// ReplacedBy returns the id this term was replaced by, and whether one was
// recorded. Only the first replaced_by tag seen during parsing is kept.
func (t *Term) ReplacedBy() (string, bool) { return t.replacedBy, t.replacedBy != "" }

// Parents returns the indices of the term's direct is-a parents.
func (t *Term) Parents() []int { return keys(t.parents) }

// Children returns the indices of the term's direct is-a children.
func (t *Term) Children() []int { return keys(t.children) }

// Ancestors returns the indices of every term reachable by following is-a
// edges upward, excluding the term itself.
func (t *Term) Ancestors() map[int]struct{} { return t.ancestors }

// Descendants returns the indices of every term reachable by following is-a
// edges downward, excluding the term itself.
func (t *Term) Descendants() map[int]struct{} { return t.descendants }

// IsAncestorOf reports whether t is an ancestor of other.
func (t *Term) IsAncestorOf(other *Term) bool {
	_, ok := other.ancestors[t.index]
	return ok
}

// IsDescendantOf reports whether t is a descendant of other.
func (t *Term) IsDescendantOf(other *Term) bool {
	_, ok := t.ancestors[other.index]
	return ok
}

// Genes returns the set of gene ids annotated, directly or through
// propagation from a descendant, to this term.
func (t *Term) Genes() map[int]struct{} { return t.genes }

// Diseases returns the propagated, positive annotation set for the given
// disease source.
func (t *Term) Diseases(src DiseaseSource) map[int]struct{} { return t.diseases[src] }

// NegativeDiseases returns the direct-only, non-propagated negative
// annotation set for the given disease source.
func (t *Term) NegativeDiseases(src DiseaseSource) map[int]struct{} { return t.diseasesNegative[src] }

// LongestPathToRoot returns the length, in edges, of the longest is-a chain
// from t up to the ontology root.
func (t *Term) LongestPathToRoot() int { return t.longestToRoot }

// ShortestPathToRoot returns the length, in edges, of the shortest is-a
// chain from t up to the ontology root.
func (t *Term) ShortestPathToRoot() int { return t.shortestToRoot }

func keys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// parseIndex extracts the dense integer index from a canonical HPO id of
// the form "HP:0007600".
func parseIndex(id string) (int, error) {
	const prefix = "HP:"
	if !strings.HasPrefix(id, prefix) {
		return 0, fmt.Errorf("id %q does not have the %q prefix", id, prefix)
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
	if err != nil {
		return 0, fmt.Errorf("id %q has a non-numeric suffix: %w", id, err)
	}
	return n, nil
}

// formatID formats a dense integer index as a canonical HPO id.
func formatID(index int) string {
	return fmt.Sprintf("HP:%07d", index)
}

// Record is the parsed representation of a single OBO [Term] stanza,
// produced by internal/obo and consumed by Store to build Terms. It is the
// external-collaborator interface of the OBO reader.
type Record struct {
	ID          string
	Name        string
	Def         string
	Comment     string
	Synonyms    []string
	AltIDs      []string
	IsA         []string
	IsObsolete  bool
	ReplacedBy  string
}

// Store owns every Term in an Ontology and assigns stable dense integer
// indices. A Store is built once by Load and is read-only afterward.
type Store struct {
	byIndex map[int]*Term
	byID    map[string]*Term // canonical id and alt-ids, both map here
	byName  map[string]*Term // lowercased exact name -> term (first writer wins)

	// order holds term indices in ascending order, computed once all
	// terms are added, to support stable, index-ordered iteration.
	order []int
}

// NewStore returns a new, empty Store.
func NewStore() *Store {
	return &Store{
		byIndex: make(map[int]*Term),
		byID:    make(map[string]*Term),
		byName:  make(map[string]*Term),
	}
}

// Add inserts a term parsed from rec into the store. It returns a
// *ParseError if rec.ID is malformed, or an *InvariantViolationError if
// its dense index is already present.
func (s *Store) Add(rec Record) (*Term, error) {
	idx, err := parseIndex(rec.ID)
	if err != nil {
		return nil, &ParseError{Source: "hp.obo", Msg: err.Error(), Err: err}
	}
	if _, exists := s.byIndex[idx]; exists {
		return nil, &InvariantViolationError{Msg: fmt.Sprintf("duplicate dense index for id %s", rec.ID)}
	}

	t := &Term{
		index:      idx,
		id:         rec.ID,
		name:       rec.Name,
		definition: rec.Def,
		comment:    rec.Comment,
		synonyms:   append([]string(nil), rec.Synonyms...),
		altIDs:     append([]string(nil), rec.AltIDs...),
		obsolete:   rec.IsObsolete,
		replacedBy: rec.ReplacedBy,
		parents:    make(map[int]struct{}),
		children:   make(map[int]struct{}),
		genes:      make(map[int]struct{}),
	}
	for k := range t.diseases {
		t.diseases[k] = make(map[int]struct{})
		t.diseasesNegative[k] = make(map[int]struct{})
	}

	s.byIndex[idx] = t
	s.byID[rec.ID] = t
	for _, alt := range rec.AltIDs {
		if _, taken := s.byID[alt]; !taken {
			s.byID[alt] = t
		}
	}
	if _, taken := s.byName[strings.ToLower(rec.Name)]; !taken {
		s.byName[strings.ToLower(rec.Name)] = t
	}
	s.order = append(s.order, idx)
	return t, nil
}

// Term returns the term with the given dense index, if any.
func (s *Store) Term(index int) (*Term, bool) {
	t, ok := s.byIndex[index]
	return t, ok
}

// ByID returns the term with the given canonical or alt id, if any.
func (s *Store) ByID(id string) (*Term, bool) {
	t, ok := s.byID[id]
	return t, ok
}

// ByName returns the term with the given exact, case-insensitive name, if
// any.
func (s *Store) ByName(name string) (*Term, bool) {
	t, ok := s.byName[strings.ToLower(name)]
	return t, ok
}

// Len returns the number of terms in the store.
func (s *Store) Len() int { return len(s.byIndex) }

// All returns every term, ordered by ascending index.
func (s *Store) All() []*Term {
	sort.Ints(s.order)
	terms := make([]*Term, 0, len(s.order))
	for _, idx := range s.order {
		terms = append(terms, s.byIndex[idx])
	}
	return terms
}
