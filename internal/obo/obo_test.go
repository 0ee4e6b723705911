// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obo

import (
	"strings"
	"testing"
)

const fixture = `format-version: 1.2

[Term]
id: HP:0000001
name: All

[Term]
id: HP:0000118
name: Phenotypic abnormality
def: "A deviation from normal." [HPO:test]
synonym: "Abnormal phenotype" EXACT []
is_a: HP:0000001 ! All

[Term]
id: HP:0009999
name: obsolete example
is_a: HP:0000118 ! Phenotypic abnormality ! trailing junk
is_obsolete: true
replaced_by: HP:0000118

[Typedef]
id: is_a
name: is_a

# a trailing comment line
`

func TestReadStanzas(t *testing.T) {
	recs, err := Read(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("len(recs) = %d, want 3", len(recs))
	}

	root := recs[0]
	if root.ID != "HP:0000001" || root.Name != "All" {
		t.Errorf("recs[0] = %+v", root)
	}

	pheno := recs[1]
	if pheno.Def != "A deviation from normal." {
		t.Errorf("Def = %q, want the quoted portion only", pheno.Def)
	}
	if len(pheno.Synonyms) != 1 || pheno.Synonyms[0] != "Abnormal phenotype" {
		t.Errorf("Synonyms = %v", pheno.Synonyms)
	}
	if len(pheno.IsA) != 1 || pheno.IsA[0] != "HP:0000001" {
		t.Errorf("IsA = %v, want [HP:0000001]", pheno.IsA)
	}

	obsolete := recs[2]
	if !obsolete.IsObsolete {
		t.Error("IsObsolete = false, want true")
	}
	if obsolete.ReplacedBy != "HP:0000118" {
		t.Errorf("ReplacedBy = %q, want HP:0000118", obsolete.ReplacedBy)
	}
	if len(obsolete.IsA) != 1 || obsolete.IsA[0] != "HP:0000118" {
		t.Errorf("IsA with trailing comment stripped = %v, want [HP:0000118]", obsolete.IsA)
	}
}

func TestReadIgnoresTypedefStanzas(t *testing.T) {
	recs, err := Read(strings.NewReader(fixture))
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range recs {
		if r.ID == "is_a" {
			t.Error("a [Typedef] stanza leaked into the Term records")
		}
	}
}
