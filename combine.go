// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hpo

import "gonum.org/v1/gonum/floats"

// Combiner reduces an |A|x|B| pairwise-similarity Matrix to a single
// set-similarity score. rowIC and colIC carry the information content of
// each row/column term, for combiners (BMWA) that weight by it; combiners
// that ignore weighting accept them unused.
type Combiner func(m *Matrix, rowIC, colIC []float64) (float64, error)

var combinerRegistry = map[string]Combiner{
	"funSimAvg": funSimAvg,
	"funSimMax": funSimMax,
	"BMA":       bma,
	"BMWA":      bmwa,
}

// RegisterCombiner adds or replaces a named set-similarity combiner.
func RegisterCombiner(name string, c Combiner) {
	combinerRegistry[name] = c
}

// Combine reduces m using the named combiner. It returns a *NotFoundError
// if name is not registered.
func Combine(name string, m *Matrix, rowIC, colIC []float64) (float64, error) {
	c, ok := combinerRegistry[name]
	if !ok {
		return 0, &NotFoundError{Kind: "combiner", Query: name}
	}
	return c(m, rowIC, colIC)
}

func rowMaxima(m *Matrix) ([]float64, error) {
	rows, _ := m.Dims()
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		r, err := m.Row(i)
		if err != nil {
			return nil, err
		}
		out[i] = floats.Max(r)
	}
	return out, nil
}

func colMaxima(m *Matrix) ([]float64, error) {
	_, cols := m.Dims()
	out := make([]float64, cols)
	for j := 0; j < cols; j++ {
		c, err := m.Col(j)
		if err != nil {
			return nil, err
		}
		out[j] = floats.Max(c)
	}
	return out, nil
}

func meanOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return floats.Sum(xs) / float64(len(xs))
}

// funSimAvg returns the mean of (mean row maxima, mean column maxima).
func funSimAvg(m *Matrix, _, _ []float64) (float64, error) {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return 0, nil
	}
	rm, err := rowMaxima(m)
	if err != nil {
		return 0, err
	}
	cm, err := colMaxima(m)
	if err != nil {
		return 0, err
	}
	return (meanOf(rm) + meanOf(cm)) / 2, nil
}

// funSimMax returns the larger of mean row maxima and mean column maxima.
func funSimMax(m *Matrix, _, _ []float64) (float64, error) {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return 0, nil
	}
	rm, err := rowMaxima(m)
	if err != nil {
		return 0, err
	}
	cm, err := colMaxima(m)
	if err != nil {
		return 0, err
	}
	return Max(meanOf(rm), meanOf(cm)), nil
}

// bma (best-match average) returns the mean of row maxima concatenated with
// column maxima.
func bma(m *Matrix, _, _ []float64) (float64, error) {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return 0, nil
	}
	rm, err := rowMaxima(m)
	if err != nil {
		return 0, err
	}
	cm, err := colMaxima(m)
	if err != nil {
		return 0, err
	}
	all := append(append([]float64(nil), rm...), cm...)
	return meanOf(all), nil
}

// bmwa is the IC-weighted best-match average: each row/column maximum is
// weighted by the information content of the term that produced it, then
// normalized by the sum of weights. rowIC and colIC must have the same
// length as the matrix's row/column count.
func bmwa(m *Matrix, rowIC, colIC []float64) (float64, error) {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return 0, nil
	}
	rm, err := rowMaxima(m)
	if err != nil {
		return 0, err
	}
	cm, err := colMaxima(m)
	if err != nil {
		return 0, err
	}

	var weightedSum, weightSum float64
	for i, v := range rm {
		w := 1.0
		if i < len(rowIC) {
			w = rowIC[i]
		}
		weightedSum += v * w
		weightSum += w
	}
	for j, v := range cm {
		w := 1.0
		if j < len(colIC) {
			w = colIC[j]
		}
		weightedSum += v * w
		weightSum += w
	}
	if weightSum == 0 {
		return 0, nil
	}
	return weightedSum / weightSum, nil
}
