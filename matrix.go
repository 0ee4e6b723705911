// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hpo

import "gonum.org/v1/gonum/mat"

// Matrix is a dense, fixed-size row-major matrix used exclusively by
// set-similarity combiners. It wraps a *mat.Dense rather than
// reimplementing dense storage, but bounds-checks before delegating since
// mat.Dense panics on out-of-range access and callers need an index error
// instead.
type Matrix struct {
	dense *mat.Dense
	rows  int
	cols  int
}

// NewMatrix constructs a Matrix from a flat, row-major buffer of length
// rows*cols. It panics if len(data) != rows*cols, matching mat.NewDense's
// own contract for malformed construction (a programmer error, not a
// runtime data error).
func NewMatrix(rows, cols int, data []float64) *Matrix {
	return &Matrix{dense: mat.NewDense(rows, cols, data), rows: rows, cols: cols}
}

// Dims returns the matrix's row and column counts.
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// Cell returns the value at (i, j), or an *IndexError if either index is
// out of range.
func (m *Matrix) Cell(i, j int) (float64, error) {
	if i < 0 || i >= m.rows {
		return 0, &IndexError{Dim: "row", Index: i, Len: m.rows}
	}
	if j < 0 || j >= m.cols {
		return 0, &IndexError{Dim: "col", Index: j, Len: m.cols}
	}
	return m.dense.At(i, j), nil
}

// Row returns a copy of row i, or an *IndexError if i is out of range.
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.rows {
		return nil, &IndexError{Dim: "row", Index: i, Len: m.rows}
	}
	out := make([]float64, m.cols)
	for j := 0; j < m.cols; j++ {
		out[j] = m.dense.At(i, j)
	}
	return out, nil
}

// Col returns a copy of column j, or an *IndexError if j is out of range.
func (m *Matrix) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.cols {
		return nil, &IndexError{Dim: "col", Index: j, Len: m.cols}
	}
	out := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = m.dense.At(i, j)
	}
	return out, nil
}
