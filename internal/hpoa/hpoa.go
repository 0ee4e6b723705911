// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hpoa parses the tab-separated gene and disease annotation files
// distributed alongside hp.obo: phenotype_to_genes.txt and phenotype.hpoa.
// Both formats are read with encoding/csv configured for tabs and '#'
// comment lines.
package hpoa

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// GeneRow is one parsed row of phenotype_to_genes.txt.
type GeneRow struct {
	HPOID      string
	GeneID     int
	GeneSymbol string
}

// ReadGeneFile reads and parses path as phenotype_to_genes.txt.
func ReadGeneFile(path string) ([]GeneRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hpoa: %w", err)
	}
	defer f.Close()
	return ReadGenes(f)
}

// ReadGenes parses r as phenotype_to_genes.txt. The parser tolerates
// appended columns and recognizes either ncbi_gene_id or hgnc_id as the
// gene identifier column; hgnc_id is preferred over ncbi_gene_id when
// both are present.
func ReadGenes(r io.Reader) ([]GeneRow, error) {
	rows, header, err := readTSV(r)
	if err != nil {
		return nil, err
	}

	hpoCol := columnIndex(header, "hpo_id")
	symbolCol := columnIndex(header, "gene_symbol")
	hgncCol := columnIndex(header, "hgnc_id")
	ncbiCol := columnIndex(header, "ncbi_gene_id")
	if hpoCol < 0 || symbolCol < 0 || (hgncCol < 0 && ncbiCol < 0) {
		return nil, fmt.Errorf("hpoa: phenotype_to_genes.txt missing required columns")
	}

	out := make([]GeneRow, 0, len(rows))
	for _, rec := range rows {
		idCol := hgncCol
		if idCol < 0 {
			idCol = ncbiCol
		}
		if idCol >= len(rec) || hpoCol >= len(rec) || symbolCol >= len(rec) {
			continue
		}
		id, err := parseGeneID(rec[idCol])
		if err != nil {
			continue
		}
		out = append(out, GeneRow{
			HPOID:      rec[hpoCol],
			GeneID:     id,
			GeneSymbol: rec[symbolCol],
		})
	}
	return out, nil
}

// AnnotationRow is one parsed row of phenotype.hpoa.
type AnnotationRow struct {
	DatabaseID  string
	DiseaseName string
	HPOID       string
	Positive    bool
}

// ReadAnnotationFile reads and parses path as phenotype.hpoa.
func ReadAnnotationFile(path string) ([]AnnotationRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hpoa: %w", err)
	}
	defer f.Close()
	return ReadAnnotations(f)
}

// ReadAnnotations parses r as phenotype.hpoa.
func ReadAnnotations(r io.Reader) ([]AnnotationRow, error) {
	rows, header, err := readTSV(r)
	if err != nil {
		return nil, err
	}

	dbCol := columnIndex(header, "database_id")
	nameCol := columnIndex(header, "disease_name")
	qualCol := columnIndex(header, "qualifier")
	hpoCol := columnIndex(header, "hpo_id")
	if dbCol < 0 || hpoCol < 0 {
		return nil, fmt.Errorf("hpoa: phenotype.hpoa missing required columns")
	}

	out := make([]AnnotationRow, 0, len(rows))
	for _, rec := range rows {
		if dbCol >= len(rec) || hpoCol >= len(rec) {
			continue
		}
		row := AnnotationRow{
			DatabaseID: rec[dbCol],
			HPOID:      rec[hpoCol],
			Positive:   true,
		}
		if nameCol >= 0 && nameCol < len(rec) {
			row.DiseaseName = rec[nameCol]
		}
		if qualCol >= 0 && qualCol < len(rec) && strings.EqualFold(strings.TrimSpace(rec[qualCol]), "NOT") {
			row.Positive = false
		}
		out = append(out, row)
	}
	return out, nil
}

// readTSV reads a '#'-comment-tolerant, tab-separated file whose first
// non-comment line is a header row.
func readTSV(r io.Reader) (rows [][]string, header []string, err error) {
	c := csv.NewReader(r)
	c.Comma = '\t'
	c.Comment = '#'
	c.FieldsPerRecord = -1
	c.LazyQuotes = true

	all, err := c.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("hpoa: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[1:], all[0], nil
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

func parseGeneID(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
