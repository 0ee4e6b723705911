// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hpoa

import (
	"strings"
	"testing"
)

func TestReadGenes(t *testing.T) {
	const fixture = "hpo_id\thpo_name\tncbi_gene_id\tgene_symbol\n" +
		"HP:0002650\tScoliosis\t100\tCOL1A1\n" +
		"HP:0002943\tThoracic scoliosis\t200\tFBN1\n"

	rows, err := ReadGenes(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("ReadGenes: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].HPOID != "HP:0002650" || rows[0].GeneID != 100 || rows[0].GeneSymbol != "COL1A1" {
		t.Errorf("rows[0] = %+v", rows[0])
	}
}

func TestReadGenesPrefersHGNC(t *testing.T) {
	const fixture = "hpo_id\thgnc_id\tncbi_gene_id\tgene_symbol\n" +
		"HP:0002650\t999\t100\tCOL1A1\n"

	rows, err := ReadGenes(strings.NewReader(fixture))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].GeneID != 999 {
		t.Errorf("rows = %+v, want GeneID 999 (hgnc_id, the authoritative column)", rows)
	}
}

func TestReadAnnotationsRoutesQualifier(t *testing.T) {
	const fixture = "database_id\tdisease_name\tqualifier\thpo_id\n" +
		"OMIM:100800\tFixture disease\t\tHP:0002650\n" +
		"OMIM:100800\tFixture disease\tNOT\tHP:0008458\n"

	rows, err := ReadAnnotations(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("ReadAnnotations: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if !rows[0].Positive {
		t.Error("rows[0].Positive = false, want true (empty qualifier)")
	}
	if rows[1].Positive {
		t.Error("rows[1].Positive = true, want false (NOT qualifier)")
	}
}

func TestReadSkipsCommentLines(t *testing.T) {
	const fixture = "#description: fixture\n" +
		"database_id\tdisease_name\tqualifier\thpo_id\n" +
		"OMIM:100800\tFixture disease\t\tHP:0002650\n"

	rows, err := ReadAnnotations(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("ReadAnnotations: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
}
