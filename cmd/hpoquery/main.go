// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// hpoquery loads an HPO data directory (hp.obo, phenotype_to_genes.txt and
// phenotype.hpoa) and runs a single lookup, similarity or enrichment query
// against it, printing the result as JSON to stdout.
//
// The data directory must contain the three canonical HPO release files
// under their standard names; see hpo.Load.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/anergictcell/gohpo"
)

func main() {
	var (
		data   = flag.String("data", "", "HPO data directory containing hp.obo, phenotype_to_genes.txt, phenotype.hpoa (required)")
		term   = flag.String("term", "", "term id, index or exact name to look up")
		other  = flag.String("other", "", "second term id, index or exact name for a similarity query")
		set    = flag.String("set", "", "comma-separated term ids/indices/names for an enrichment query")
		enrich = flag.Bool("enrich", false, "run an enrichment query against -set for -kind")
		kind   = flag.String("kind", "gene", "annotation kind: gene, omim, orpha, decipher")
		kernel = flag.String("kernel", "resnik", "similarity kernel: resnik, lin, jc, jc2, rel, ic, graphic, dist, equal")
		help   = flag.Bool("help", false, "print help text")
	)
	flag.Parse()

	if *help || *data == "" || (!*enrich && *term == "") || (*enrich && *set == "") {
		flag.Usage()
		os.Exit(2)
	}

	ont, err := hpo.Load(*data)
	if err != nil {
		log.Fatalf("hpoquery: loading %s: %v", *data, err)
	}

	k, err := parseKind(*kind)
	if err != nil {
		log.Fatalf("hpoquery: %v", err)
	}

	if *enrich {
		printJSON(enrichmentReport(ont, k, *set))
		return
	}

	t, err := ont.Get(*term)
	if err != nil {
		log.Fatalf("hpoquery: %v", err)
	}

	if *other == "" {
		printJSON(termReport(ont, t, k))
		return
	}

	o, err := ont.Get(*other)
	if err != nil {
		log.Fatalf("hpoquery: %v", err)
	}
	score, err := hpo.Similarity(ont, t, o, k, *kernel)
	if err != nil {
		log.Fatalf("hpoquery: %v", err)
	}
	printJSON(similarityReport{
		A:      t.HPOID(),
		B:      o.HPOID(),
		Kind:   k.String(),
		Kernel: *kernel,
		Score:  score,
	})
}

type termReportDoc struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	IC          float64  `json:"ic"`
	Genes       int      `json:"gene_count"`
	Ancestors   int      `json:"ancestor_count"`
	Descendants int      `json:"descendant_count"`
	Synonyms    []string `json:"synonyms,omitempty"`
}

func termReport(ont *hpo.Ontology, t *hpo.Term, k hpo.Kind) termReportDoc {
	return termReportDoc{
		ID:          t.HPOID(),
		Name:        t.Name(),
		IC:          ont.IC(t, k),
		Genes:       len(t.Genes()),
		Ancestors:   len(t.Ancestors()),
		Descendants: len(t.Descendants()),
		Synonyms:    t.Synonyms(),
	}
}

type similarityReport struct {
	A      string  `json:"a"`
	B      string  `json:"b"`
	Kind   string  `json:"kind"`
	Kernel string  `json:"kernel"`
	Score  float64 `json:"score"`
}

type enrichmentDoc struct {
	Kind    string             `json:"kind"`
	Set     string             `json:"set"`
	Results []enrichmentRecord `json:"results"`
}

type enrichmentRecord struct {
	ID         int     `json:"id"`
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Enrichment float64 `json:"enrichment"`
}

// enrichmentReport resolves query into a BasicHPOSet and runs Enrich for
// kind k, labeling each result with the matching gene symbol or disease
// name.
func enrichmentReport(ont *hpo.Ontology, k hpo.Kind, query string) enrichmentDoc {
	var queries []string
	for _, q := range strings.Split(query, ",") {
		q = strings.TrimSpace(q)
		if q != "" {
			queries = append(queries, q)
		}
	}
	s, err := hpo.NewBasicHPOSet(ont, queries)
	if err != nil {
		log.Fatalf("hpoquery: %v", err)
	}
	results := s.Enrich(k)
	out := enrichmentDoc{Kind: k.String(), Set: s.Serialize(), Results: make([]enrichmentRecord, len(results))}
	for i, r := range results {
		out.Results[i] = enrichmentRecord{
			ID:         r.ItemID,
			Label:      enrichmentLabel(ont, k, r.ItemID),
			Count:      r.Count,
			Enrichment: r.Enrichment,
		}
	}
	return out
}

func enrichmentLabel(ont *hpo.Ontology, k hpo.Kind, id int) string {
	if k == hpo.KindGene {
		if g, ok := ont.Gene(id); ok {
			return g.Symbol()
		}
		return ""
	}
	src, ok := diseaseSourceFor(k)
	if !ok {
		return ""
	}
	if d, ok := ont.Disease(src, id); ok {
		return d.Name()
	}
	return ""
}

func diseaseSourceFor(k hpo.Kind) (hpo.DiseaseSource, bool) {
	switch k {
	case hpo.KindOmim:
		return hpo.OMIM, true
	case hpo.KindOrpha:
		return hpo.Orpha, true
	case hpo.KindDecipher:
		return hpo.Decipher, true
	default:
		return 0, false
	}
}

func parseKind(s string) (hpo.Kind, error) {
	switch s {
	case "gene":
		return hpo.KindGene, nil
	case "omim":
		return hpo.KindOmim, nil
	case "orpha":
		return hpo.KindOrpha, nil
	case "decipher":
		return hpo.KindDecipher, nil
	default:
		return 0, fmt.Errorf("unknown kind %q", s)
	}
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("hpoquery: encoding output: %v", err)
	}
}
