// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package table

import (
	"fmt"
	"slices"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/valu3/valu3-go/value"
	"golang.org/x/xerrors"
)

// Table is a set of named columns of Values. Columns are expected to have the
// same length once the table is turned into a record batch.
//
// The zero value is an empty table ready for use.
type Table struct {
	headers []string
	cols    [][]value.Value
	record  arrow.Record
}

// New returns an empty table.
func New() *Table { return &Table{} }

// CountRows returns the length of the first column.
func (t *Table) CountRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0])
}

func (t *Table) CountCols() int { return len(t.cols) }

// AddCol appends a column without touching the headers.
func (t *Table) AddCol(col []value.Value) {
	t.cols = append(t.cols, col)
}

// AddHeader returns the index of the header called name, adding it along
// with an empty column when it does not exist yet.
func (t *Table) AddHeader(name string) int {
	if idx := slices.Index(t.headers, name); idx >= 0 {
		return idx
	}
	t.headers = append(t.headers, name)
	for len(t.cols) < len(t.headers) {
		t.cols = append(t.cols, nil)
	}
	return len(t.headers) - 1
}

// AddColToHeader appends the rows of col to the column called name, creating
// it when needed.
func (t *Table) AddColToHeader(name string, col []value.Value) {
	t.AddColToHeaderIndex(t.AddHeader(name), col)
}

// AddColToHeaderIndex appends the rows of col to column idx. An index one past
// the last column adds a new column.
func (t *Table) AddColToHeaderIndex(idx int, col []value.Value) error {
	switch {
	case idx >= 0 && idx < len(t.cols):
		t.cols[idx] = append(t.cols[idx], col...)
	case idx == len(t.cols):
		t.cols = append(t.cols, slices.Clone(col))
	default:
		return t.colOutOfRange(idx)
	}
	return nil
}

// PushItem appends v to column col.
func (t *Table) PushItem(col int, v value.Value) error {
	if col < 0 || col >= len(t.cols) {
		return t.colOutOfRange(col)
	}
	t.cols[col] = append(t.cols[col], v)
	return nil
}

// PushItemInHeader appends v to the column called name, creating it when
// needed.
func (t *Table) PushItemInHeader(name string, v value.Value) {
	idx := t.AddHeader(name)
	t.cols[idx] = append(t.cols[idx], v)
}

// ChangeValue replaces the value at col, row.
func (t *Table) ChangeValue(col, row int, v value.Value) error {
	if col < 0 || col >= len(t.cols) {
		return t.colOutOfRange(col)
	}
	if row < 0 || row >= len(t.cols[col]) {
		return xerrors.Errorf("row %d out of range [0, %d): %w", row, len(t.cols[col]), value.ErrIndex)
	}
	t.cols[col][row] = v
	return nil
}

// Add appends a new column under name, even when a column with that name
// already exists.
func (t *Table) Add(name string, col []value.Value) {
	t.headers = append(t.headers, name)
	t.cols = append(t.cols, col)
}

// Extend adds every column of other to t.
func (t *Table) Extend(other *Table) {
	for i, name := range other.headers {
		if i < len(other.cols) {
			t.Add(name, slices.Clone(other.cols[i]))
		}
	}
}

// Get returns the first column called name.
func (t *Table) Get(name string) ([]value.Value, bool) {
	idx := slices.Index(t.headers, name)
	if idx < 0 {
		return nil, false
	}
	return t.Col(idx)
}

func (t *Table) Header(idx int) (string, bool) {
	if idx < 0 || idx >= len(t.headers) {
		return "", false
	}
	return t.headers[idx], true
}

func (t *Table) Headers() []string { return t.headers }

func (t *Table) Cols() [][]value.Value { return t.cols }

func (t *Table) Col(idx int) ([]value.Value, bool) {
	if idx < 0 || idx >= len(t.cols) {
		return nil, false
	}
	return t.cols[idx], true
}

// Value returns the cell at col, row.
func (t *Table) Value(col, row int) (value.Value, bool) {
	c, ok := t.Col(col)
	if !ok || row < 0 || row >= len(c) {
		return value.Value{}, false
	}
	return c[row], true
}

// ToMap returns the columns keyed by header. Headers without a column are
// left out.
func (t *Table) ToMap() map[string][]value.Value {
	out := make(map[string][]value.Value, len(t.headers))
	for i, name := range t.headers {
		if i < len(t.cols) {
			out[name] = t.cols[i]
		}
	}
	return out
}

// ToValue returns an Object mapping every header to the Array of its column,
// in header order.
func (t *Table) ToValue() value.Value {
	obj := value.NewHashObject()
	for i, name := range t.headers {
		if i < len(t.cols) {
			obj.Insert(name, value.ArrayOf(slices.Clone(t.cols[i])...))
		}
	}
	return value.ObjectValue(obj)
}

// Rows returns an Array holding one Object per row. Cells missing from a
// shorter column are Null.
func (t *Table) Rows() value.Value {
	n := 0
	for _, c := range t.cols {
		n = max(n, len(c))
	}
	rows := make([]value.Value, n)
	for r := range rows {
		obj := value.NewHashObject()
		for i, name := range t.headers {
			cell := value.Null()
			if i < len(t.cols) && r < len(t.cols[i]) {
				cell = t.cols[i][r]
			}
			obj.Insert(name, cell)
		}
		rows[r] = value.ObjectValue(obj)
	}
	return value.ArrayOf(rows...)
}

// FromRows builds a table from an Array of row Objects. Headers are added in
// the order they are first seen; rows missing a header get Null there.
func FromRows(rows value.Value) (*Table, error) {
	arr, err := rows.AsArray()
	if err != nil {
		return nil, err
	}
	t := New()
	for r, row := range arr.All() {
		obj, err := row.AsObject()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r, err)
		}
		for k, cell := range obj.All() {
			idx := t.AddHeader(k.String())
			for len(t.cols[idx]) < r {
				t.cols[idx] = append(t.cols[idx], value.Null())
			}
			t.cols[idx] = append(t.cols[idx], cell.Clone())
		}
	}
	for i := range t.cols {
		for len(t.cols[i]) < arr.Len() {
			t.cols[i] = append(t.cols[i], value.Null())
		}
	}
	return t, nil
}

// FromColumns builds a table from an Object whose entries are column Arrays.
func FromColumns(cols value.Value) (*Table, error) {
	obj, err := cols.AsObject()
	if err != nil {
		return nil, err
	}
	t := New()
	for k, col := range obj.All() {
		arr, err := col.AsArray()
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", k.String(), err)
		}
		t.AddColToHeader(k.String(), arr.Clone().Values())
	}
	return t, nil
}

func (t *Table) colOutOfRange(idx int) error {
	return xerrors.Errorf("column %d out of range [0, %d): %w", idx, len(t.cols), value.ErrIndex)
}
