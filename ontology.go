// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hpo

import (
	"sync/atomic"

	"github.com/anergictcell/gohpo/internal/hpoa"
	"github.com/anergictcell/gohpo/internal/obo"
)

// Ontology is the immutable, process-wide snapshot of the HPO graph,
// annotation registries and information content tables . It is
// only ever constructed by Load; once built, every field it exposes is
// read-only for the remainder of the process, except for its custom IC
// table, which is replaced wholesale via copy-on-write (see SetIC).
type Ontology struct {
	store *Store
	graph *Graph

	genes    *GeneRegistry
	diseases [numDiseaseSources]*DiseaseRegistry
	negative [numDiseaseSources]*DiseaseRegistry

	totals [numKinds]int

	customIC atomic.Pointer[CustomICTable]
}

var current atomic.Pointer[Ontology]

// Current returns the process-wide Ontology singleton, or nil if Load has
// never succeeded.
func Current() *Ontology {
	return current.Load()
}

// Load parses hp.obo, phenotype_to_genes.txt and phenotype.hpoa from dir,
// builds a new Ontology, and atomically installs it as the process-wide
// singleton . In-flight readers of a prior Ontology
// continue to observe that prior value; they are unaffected by Load
// replacing the singleton.
func Load(dir string) (*Ontology, error) {
	o, err := build(dir)
	if err != nil {
		return nil, err
	}
	current.Store(o)
	return o, nil
}

// MustLoad is like Load but panics on error, for use in package-level
// initialization and examples where there is no sensible recovery path.
func MustLoad(dir string) *Ontology {
	o, err := Load(dir)
	if err != nil {
		panic(err)
	}
	return o
}

func build(dir string) (*Ontology, error) {
	records, err := obo.ReadFile(dir + "/hp.obo")
	if err != nil {
		return nil, err
	}

	store := NewStore()
	for _, rec := range records {
		if _, err := store.Add(Record{
			ID:         rec.ID,
			Name:       rec.Name,
			Def:        rec.Def,
			Comment:    rec.Comment,
			Synonyms:   rec.Synonyms,
			AltIDs:     rec.AltIDs,
			IsA:        rec.IsA,
			IsObsolete: rec.IsObsolete,
			ReplacedBy: rec.ReplacedBy,
		}); err != nil {
			return nil, err
		}
	}

	g := newGraph(store)
	for _, t := range store.All() {
		for _, parentID := range parentIDsOf(records, t.id) {
			parent, ok := store.ByID(parentID)
			if !ok {
				return nil, &ParseError{Source: "hp.obo", Msg: "is_a references unknown id " + parentID}
			}
			g.addEdge(t, parent)
		}
	}
	if err := g.build(); err != nil {
		return nil, err
	}

	o := &Ontology{
		store: store,
		graph: g,
		genes: NewGeneRegistry(),
	}
	for i := range o.diseases {
		o.diseases[i] = NewDiseaseRegistry(DiseaseSource(i))
		o.negative[i] = NewDiseaseRegistry(DiseaseSource(i))
	}

	geneRows, err := hpoa.ReadGeneFile(dir + "/phenotype_to_genes.txt")
	if err != nil {
		return nil, err
	}
	for _, row := range geneRows {
		t, ok := store.ByID(row.HPOID)
		if !ok {
			continue
		}
		g := o.genes.GetOrCreate(row.GeneID, row.GeneSymbol)
		LinkGene(store, g, t)
	}

	diseaseRows, err := hpoa.ReadAnnotationFile(dir + "/phenotype.hpoa")
	if err != nil {
		return nil, err
	}
	for _, row := range diseaseRows {
		t, ok := store.ByID(row.HPOID)
		if !ok {
			continue
		}
		src, id, ok := parseDiseaseID(row.DatabaseID)
		if !ok {
			continue
		}
		reg := o.diseases[src]
		if !row.Positive {
			reg = o.negative[src]
		}
		d := reg.GetOrCreate(id, row.DiseaseName)
		LinkDisease(store, d, t, row.Positive)
	}

	o.totals[KindGene] = o.genes.Len()
	o.totals[KindOmim] = o.diseases[OMIM].Len()
	o.totals[KindOrpha] = o.diseases[Orpha].Len()
	o.totals[KindDecipher] = o.diseases[Decipher].Len()
	ComputeIC(store, o.totals)

	return o, nil
}

// parentIDsOf looks up the raw is_a ids recorded for the obo record with
// the given canonical id. It is a small linear re-lookup rather than a
// second index, since it only runs once per term during Load.
func parentIDsOf(records []obo.Record, id string) []string {
	for _, r := range records {
		if r.ID == id {
			return r.IsA
		}
	}
	return nil
}

// parseDiseaseID splits a phenotype.hpoa database_id column value such as
// "OMIM:123456" into its source and integer id.
func parseDiseaseID(raw string) (DiseaseSource, int, bool) {
	for i := 0; i < len(raw); i++ {
		if raw[i] == ':' {
			prefix, numeric := raw[:i], raw[i+1:]
			src, ok := diseaseSourceFor(prefix)
			if !ok {
				return 0, 0, false
			}
			n, err := atoiSimple(numeric)
			if err != nil {
				return 0, 0, false
			}
			return src, n, true
		}
	}
	return 0, 0, false
}

func diseaseSourceFor(prefix string) (DiseaseSource, bool) {
	switch prefix {
	case "OMIM":
		return OMIM, true
	case "ORPHA":
		return Orpha, true
	case "DECIPHER":
		return Decipher, true
	default:
		return 0, false
	}
}

func atoiSimple(s string) (int, error) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, &ParseError{Source: "phenotype.hpoa", Msg: "non-numeric disease id: " + s}
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}

// TermAt resolves a dense term index to its *Term, implementing ICSource.
func (o *Ontology) TermAt(index int) (*Term, bool) {
	return o.store.Term(index)
}

// IC returns t's information content for kind k: a custom override if one
// has been set via SetIC, otherwise the built-in value computed at Load
// time. It implements ICSource.
func (o *Ontology) IC(t *Term, k Kind) float64 {
	if tbl := o.customIC.Load(); tbl != nil {
		if v, ok := tbl.Get(t.index); ok {
			return v
		}
	}
	v, _ := t.IC(k)
	return v
}

// SetIC installs a custom information content value for the term with the
// given index, replacing the Ontology's custom IC table with a new one via
// copy-on-write: concurrent readers that already loaded the prior table
// continue to see it.
func (o *Ontology) SetIC(index int, value float64) {
	for {
		old := o.customIC.Load()
		next := old.With(index, value)
		if o.customIC.CompareAndSwap(old, next) {
			return
		}
	}
}

// ShortestPathLength returns the length, in edges, of the shortest is-a
// path between a and b via any common ancestor. It implements ICSource.
func (o *Ontology) ShortestPathLength(a, b *Term) (int, bool) {
	length, _, _, _, err := o.graph.ShortestPath(a, b)
	if err != nil {
		return 0, false
	}
	return length, true
}

// Gene returns the gene with the given id, if any.
func (o *Ontology) Gene(id int) (*Gene, bool) { return o.genes.Get(id) }

// Disease returns the positive-registry disease with the given source and
// id, if any.
func (o *Ontology) Disease(src DiseaseSource, id int) (*Disease, bool) {
	return o.diseases[src].Get(id)
}

// NegativeDisease returns the negative-registry disease with the given
// source and id, if any.
func (o *Ontology) NegativeDisease(src DiseaseSource, id int) (*Disease, bool) {
	return o.negative[src].Get(id)
}

// Stats summarizes the size of an Ontology, a cheap introspection surface
// a caller can log or expose over an API.
type Stats struct {
	Terms            int
	ObsoleteTerms    int
	Genes            int
	OmimDiseases     int
	OrphaDiseases    int
	DecipherDiseases int
}

// Stats computes a Stats summary of o.
func (o *Ontology) Stats() Stats {
	s := Stats{
		Terms:            o.store.Len(),
		Genes:            o.genes.Len(),
		OmimDiseases:     o.diseases[OMIM].Len(),
		OrphaDiseases:    o.diseases[Orpha].Len(),
		DecipherDiseases: o.diseases[Decipher].Len(),
	}
	for _, t := range o.store.All() {
		if t.obsolete {
			s.ObsoleteTerms++
		}
	}
	return s
}
