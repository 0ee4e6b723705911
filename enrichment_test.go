// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hpo

import (
	"math"
	"testing"
)

func TestHypergeomSFBoundary(t *testing.T) {
	// P(X >= 0) is always 1.
	if got := hypergeomSF(0, 100, 20, 10); got != 1.0 {
		t.Errorf("hypergeomSF(0,...) = %v, want 1.0", got)
	}
	// Drawing more successes than exist in the population is impossible.
	if got := hypergeomSF(6, 20, 5, 10); got != 0.0 {
		t.Errorf("hypergeomSF(6,20,5,10) = %v, want 0.0 (only 5 successes exist)", got)
	}
}

func TestHypergeomSFMonotonicallyDecreasing(t *testing.T) {
	const M, n, K = 1000, 50, 30
	prev := 1.0
	for x := 1; x <= 10; x++ {
		p := hypergeomSF(x, M, n, K)
		if p > prev+1e-9 {
			t.Fatalf("hypergeomSF(%d,...) = %v > previous %v; tail probability must be non-increasing in x", x, p, prev)
		}
		prev = p
	}
}

func TestHypergeomSFMatchesDirectSum(t *testing.T) {
	// For small parameters, cross-check the log-space summation against a
	// direct (non-log) computation of the same pmf.
	const M, n, K = 20, 8, 6
	for x := 0; x <= 6; x++ {
		got := hypergeomSF(x, M, n, K)
		want := directHypergeomSF(x, M, n, K)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("hypergeomSF(%d,%d,%d,%d) = %v, want %v", x, M, n, K, got, want)
		}
	}
}

func directHypergeomSF(x, M, n, K int) float64 {
	choose := func(a, b int) float64 {
		if b < 0 || b > a {
			return 0
		}
		result := 1.0
		for i := 0; i < b; i++ {
			result *= float64(a-i) / float64(i+1)
		}
		return result
	}
	denom := choose(M, K)
	var sum float64
	hi := K
	if n < hi {
		hi = n
	}
	for i := x; i <= hi; i++ {
		sum += choose(n, i) * choose(M-n, K-i)
	}
	return sum / denom
}

func TestEnrichKindOrdersAscendingByEnrichmentThenID(t *testing.T) {
	records := map[int]struct{ K, X int }{
		10: {K: 5, X: 3},
		20: {K: 5, X: 3}, // same K,X as 10: must tie-break by ascending id
		30: {K: 5, X: 1},
	}
	results := EnrichKind(100, 20, records)
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Enrichment < results[i-1].Enrichment {
			t.Fatalf("results not sorted ascending by enrichment: %+v", results)
		}
	}
	// 10 and 20 are tied; 10 must sort first.
	tiedIdx := -1
	for i, r := range results {
		if r.ItemID == 10 {
			tiedIdx = i
		}
	}
	if tiedIdx < 0 || results[tiedIdx+1].ItemID != 20 {
		t.Errorf("tie-break by ascending id failed: %+v", results)
	}
}
