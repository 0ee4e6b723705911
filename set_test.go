// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hpo_test

import (
	"testing"

	"github.com/anergictcell/gohpo"
)

func TestBasicHPOSetChildNodes(t *testing.T) {
	ont := loadFixture(t)

	s, err := hpo.NewBasicHPOSet(ont, []string{"HP:0002650", "HP:0010674"})
	if err != nil {
		t.Fatalf("NewBasicHPOSet: %v", err)
	}

	terms := s.Terms()
	if len(terms) != 1 {
		t.Fatalf("child_nodes() returned %d terms, want 1", len(terms))
	}
	if terms[0].HPOID() != "HP:0002650" {
		t.Errorf("child_nodes() = %s, want HP:0002650", terms[0].HPOID())
	}
}

func TestBasicHPOSetRemovesModifiers(t *testing.T) {
	ont := loadFixture(t)
	s, err := hpo.FromQueries(ont, []string{"HP:0002650", "HP:0012824"})
	if err != nil {
		t.Fatal(err)
	}
	filtered := s.RemoveModifier()
	if filtered.Len() != 1 {
		t.Fatalf("RemoveModifier() left %d terms, want 1", filtered.Len())
	}
	if filtered.Terms()[0].HPOID() != "HP:0002650" {
		t.Errorf("RemoveModifier() kept %s, want HP:0002650", filtered.Terms()[0].HPOID())
	}
}

func TestBasicHPOSetReplacesObsolete(t *testing.T) {
	ont := loadFixture(t)
	s, err := hpo.FromQueries(ont, []string{"HP:0009999"})
	if err != nil {
		t.Fatal(err)
	}
	replaced := s.ReplaceObsolete()
	if replaced.Len() != 1 {
		t.Fatalf("ReplaceObsolete() left %d terms, want 1", replaced.Len())
	}
	if replaced.Terms()[0].HPOID() != "HP:0002650" {
		t.Errorf("ReplaceObsolete() = %s, want HP:0002650", replaced.Terms()[0].HPOID())
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	ont := loadFixture(t)
	s, err := hpo.FromQueries(ont, []string{"HP:0002650", "HP:0010674", "HP:0009121"})
	if err != nil {
		t.Fatal(err)
	}
	serialized := s.Serialize()

	restored, err := hpo.FromSerialized(ont, serialized)
	if err != nil {
		t.Fatalf("FromSerialized(%q): %v", serialized, err)
	}
	if restored.Len() != s.Len() {
		t.Fatalf("restored.Len() = %d, want %d", restored.Len(), s.Len())
	}
	for i, term := range s.Terms() {
		if restored.Terms()[i].Index() != term.Index() {
			t.Errorf("restored.Terms()[%d] = %d, want %d", i, restored.Terms()[i].Index(), term.Index())
		}
	}
}

func TestSetSimilaritySelfIsOne(t *testing.T) {
	ont := loadFixture(t)
	s, err := hpo.FromQueries(ont, []string{"HP:0002650", "HP:0010674", "HP:0009121"})
	if err != nil {
		t.Fatal(err)
	}
	score, err := s.Similarity(s, hpo.KindGene, "graphic", "funSimAvg")
	if err != nil {
		t.Fatalf("Similarity: %v", err)
	}
	if score != 1.0 {
		t.Errorf("Similarity(s, s) under graphic/funSimAvg = %v, want 1.0", score)
	}
}

func TestSetSimilarityEmptySetIsZero(t *testing.T) {
	ont := loadFixture(t)
	s, err := hpo.FromQueries(ont, []string{"HP:0002650"})
	if err != nil {
		t.Fatal(err)
	}
	empty := hpo.NewHPOSet(ont)
	score, err := s.Similarity(empty, hpo.KindGene, "graphic", "funSimAvg")
	if err != nil {
		t.Fatalf("Similarity: %v", err)
	}
	if score != 0.0 {
		t.Errorf("Similarity with an empty set = %v, want 0.0", score)
	}
}

func TestHPOSetAllGenes(t *testing.T) {
	ont := loadFixture(t)
	s, err := hpo.FromQueries(ont, []string{"HP:0002650"})
	if err != nil {
		t.Fatal(err)
	}
	genes := s.AllGenes()
	if len(genes) != 2 {
		t.Fatalf("AllGenes() returned %d genes, want 2 (COL1A1 direct, FBN1 propagated)", len(genes))
	}
}

func TestHPOSetEnrichRanksGenesAgainstPopulation(t *testing.T) {
	ont := loadFixture(t)
	s, err := hpo.FromQueries(ont, []string{"HP:0002650"})
	if err != nil {
		t.Fatal(err)
	}
	results := s.Enrich(hpo.KindGene)
	if len(results) != 3 {
		t.Fatalf("Enrich() returned %d results, want 3", len(results))
	}

	// COL1A1 (direct) and FBN1 (linked through descendant Thoracic
	// scoliosis) both fall inside Scoliosis's propagated population and
	// tie; ties break by ascending gene id, so COL1A1 (100) precedes
	// FBN1 (200).
	if results[0].ItemID != 100 || results[1].ItemID != 200 {
		t.Errorf("top two results = %+v, want ids 100 then 200 (tied, ascending id)", results[:2])
	}
	if results[0].Enrichment != results[1].Enrichment {
		t.Errorf("tied genes scored differently: %+v", results[:2])
	}

	// SOX9 is linked only to HP:0009121, outside Scoliosis's population,
	// so it has zero overlap and ranks last with the trivial P(X>=0)=1.0
	// tail probability.
	if results[2].ItemID != 300 {
		t.Errorf("results[2].ItemID = %d, want 300 (SOX9, unrelated)", results[2].ItemID)
	}
	if results[2].Enrichment != 1.0 {
		t.Errorf("results[2].Enrichment = %v, want 1.0 (no overlap with population)", results[2].Enrichment)
	}
	if results[0].Enrichment >= results[2].Enrichment {
		t.Errorf("enriched genes should score below the unrelated one: %+v", results)
	}
}

func TestHPOSetCombinations(t *testing.T) {
	ont := loadFixture(t)
	s, err := hpo.FromQueries(ont, []string{"HP:0002650", "HP:0010674"})
	if err != nil {
		t.Fatal(err)
	}
	if got := len(s.Combinations()); got != 4 {
		t.Errorf("len(Combinations()) = %d, want 4", got)
	}
	if got := len(s.CombinationsOneWay()); got != 1 {
		t.Errorf("len(CombinationsOneWay()) = %d, want 1", got)
	}
}
