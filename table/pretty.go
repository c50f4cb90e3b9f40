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
	"io"

	"github.com/pterm/pterm"
	"github.com/valu3/valu3-go/value"
)

// tableData lays the table out as a header line followed by one line per row.
func (t *Table) tableData() pterm.TableData {
	data := pterm.TableData{append([]string(nil), t.headers...)}
	for row := range t.CountRows() {
		line := make([]string, len(t.headers))
		for col := range line {
			if v, ok := t.Value(col, row); ok {
				line[col] = cellText(v)
			}
		}
		data = append(data, line)
	}
	return data
}

func cellText(v value.Value) string {
	switch v.Kind() {
	case value.KindString:
		s, _ := v.AsString()
		return s
	case value.KindArray, value.KindObject:
		return v.ToJSON(value.JSONInline)
	}
	return v.String()
}

// String renders the table with pterm.
func (t *Table) String() string {
	s, err := pterm.DefaultTable.WithHasHeader(true).WithData(t.tableData()).Srender()
	if err != nil {
		return fmt.Sprintf("table: %v", err)
	}
	return s
}

// Print writes the rendered table to w.
func (t *Table) Print(w io.Writer) error {
	_, err := io.WriteString(w, t.String()+"\n")
	return err
}
