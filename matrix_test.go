// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hpo_test

import (
	"testing"

	"github.com/anergictcell/gohpo"
)

func TestMatrixCellAndBounds(t *testing.T) {
	m := hpo.NewMatrix(2, 3, []float64{1, 2, 3, 4, 5, 6})

	v, err := m.Cell(1, 2)
	if err != nil {
		t.Fatalf("Cell(1,2): %v", err)
	}
	if v != 6 {
		t.Errorf("Cell(1,2) = %v, want 6", v)
	}

	if _, err := m.Cell(2, 0); err == nil {
		t.Error("Cell(2,0) succeeded, want an *IndexError (row out of range)")
	} else if _, ok := err.(*hpo.IndexError); !ok {
		t.Errorf("Cell(2,0) error type = %T, want *hpo.IndexError", err)
	}

	if _, err := m.Cell(0, 3); err == nil {
		t.Error("Cell(0,3) succeeded, want an *IndexError (col out of range)")
	}
}

func TestMatrixRowCol(t *testing.T) {
	m := hpo.NewMatrix(2, 2, []float64{1, 2, 3, 4})

	row, err := m.Row(1)
	if err != nil {
		t.Fatal(err)
	}
	if row[0] != 3 || row[1] != 4 {
		t.Errorf("Row(1) = %v, want [3 4]", row)
	}

	col, err := m.Col(0)
	if err != nil {
		t.Fatal(err)
	}
	if col[0] != 1 || col[1] != 3 {
		t.Errorf("Col(0) = %v, want [1 3]", col)
	}
}
