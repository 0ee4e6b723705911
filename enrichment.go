// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hpo

import (
	"math"
	"sort"
)

// EnrichmentResult is one record's hypergeometric enrichment score against
// a query term set.
type EnrichmentResult struct {
	ItemID     int
	Count      int
	Enrichment float64
}

// logChoose returns log(C(n, k)), or math.Inf(-1) if k is outside [0, n].
func logChoose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	ln1, _ := math.Lgamma(float64(n) + 1)
	ln2, _ := math.Lgamma(float64(k) + 1)
	ln3, _ := math.Lgamma(float64(n-k) + 1)
	return ln1 - ln2 - ln3
}

// hypergeomSF returns P(X >= x) for X drawn from a Hypergeometric
// distribution modeling an urn of M total items, n of which are "in the
// query population" and K of which are drawn (r's own annotation count).
// It is isolated behind this single function because no hypergeometric
// distribution exists anywhere in the example corpus (see DESIGN.md); the
// computation itself is a direct log-space summation of the pmf to avoid
// overflow for large M.
func hypergeomSF(x, M, n, K int) float64 {
	if x <= 0 {
		return 1.0
	}
	lo := x
	hi := K
	if n < hi {
		hi = n
	}
	if lo > hi {
		return 0.0
	}
	denom := logChoose(M, K)
	var sum float64
	for i := lo; i <= hi; i++ {
		logP := logChoose(n, i) + logChoose(M-n, K-i) - denom
		if math.IsInf(logP, -1) {
			continue
		}
		sum += math.Exp(logP)
	}
	if sum > 1 {
		sum = 1
	}
	return sum
}

// EnrichKind computes the enrichment of every record in records, with M
// the total number of records and n the number of records in the query
// population. records maps each record's id to its own direct-link term
// count (K) and its overlap with the query population (x); both are counts
// the caller derives from an Ontology before calling EnrichKind. Results
// are sorted ascending by enrichment, ties broken by ascending id.
func EnrichKind(M int, n int, records map[int]struct{ K, X int }) []EnrichmentResult {
	out := make([]EnrichmentResult, 0, len(records))
	for id, rec := range records {
		p := hypergeomSF(rec.X, M, n, rec.K)
		out = append(out, EnrichmentResult{ItemID: id, Count: rec.X, Enrichment: p})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Enrichment != out[j].Enrichment {
			return out[i].Enrichment < out[j].Enrichment
		}
		return out[i].ItemID < out[j].ItemID
	})
	return out
}
