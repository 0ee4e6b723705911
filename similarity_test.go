// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hpo_test

import (
	"math"
	"testing"

	"github.com/anergictcell/gohpo"
)

func TestSimilarityReflexiveKernels(t *testing.T) {
	ont := loadFixture(t)
	term, err := ont.Get("HP:0002650")
	if err != nil {
		t.Fatal(err)
	}

	graphic, err := hpo.Similarity(ont, term, term, hpo.KindGene, "graphic")
	if err != nil {
		t.Fatal(err)
	}
	if graphic != 1.0 {
		t.Errorf("graphic(a,a) = %v, want 1.0", graphic)
	}

	equal, err := hpo.Similarity(ont, term, term, hpo.KindGene, "equal")
	if err != nil {
		t.Fatal(err)
	}
	if equal != 1.0 {
		t.Errorf("equal(a,a) = %v, want 1.0", equal)
	}

	resnik, err := hpo.Similarity(ont, term, term, hpo.KindGene, "resnik")
	if err != nil {
		t.Fatal(err)
	}
	ic := ont.IC(term, hpo.KindGene)
	if math.Abs(resnik-ic) > 1e-9 {
		t.Errorf("resnik(a,a) = %v, want IC(a) = %v", resnik, ic)
	}
}

func TestSimilarityUnknownKernel(t *testing.T) {
	ont := loadFixture(t)
	term, err := ont.Get("HP:0002650")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := hpo.Similarity(ont, term, term, hpo.KindGene, "not-a-kernel"); err == nil {
		t.Error("Similarity with an unknown kernel succeeded, want an error")
	}
}

func TestCommonAncestorsVariants(t *testing.T) {
	ont := loadFixture(t)
	scoliosis, err := ont.Get("HP:0002650")
	if err != nil {
		t.Fatal(err)
	}

	strict := hpo.CommonAncestorsStrict(scoliosis, scoliosis)
	if _, ok := strict[scoliosis.Index()]; ok {
		t.Error("CommonAncestorsStrict(a,a) includes a itself, want excluded")
	}

	shared := hpo.CommonAncestorsShared(scoliosis, scoliosis)
	if _, ok := shared[scoliosis.Index()]; !ok {
		t.Error("CommonAncestorsShared(a,a) excludes a itself, want included")
	}
}

func TestRegisterKernel(t *testing.T) {
	ont := loadFixture(t)
	term, err := ont.Get("HP:0002650")
	if err != nil {
		t.Fatal(err)
	}

	hpo.RegisterKernel("always-one", func(hpo.ICSource, *hpo.Term, *hpo.Term, hpo.Kind) float64 {
		return 1
	})

	score, err := hpo.Similarity(ont, term, term, hpo.KindGene, "always-one")
	if err != nil {
		t.Fatal(err)
	}
	if score != 1 {
		t.Errorf("custom kernel score = %v, want 1", score)
	}
}
