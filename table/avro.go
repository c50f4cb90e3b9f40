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
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	arrowavro "github.com/apache/arrow-go/v18/arrow/avro"
	"github.com/goccy/go-json"
	"github.com/hamba/avro/v2"
	"github.com/hamba/avro/v2/ocf"
	"github.com/stoewer/go-strcase"
	"github.com/valu3/valu3-go/value"
	"golang.org/x/xerrors"
)

// ReadAvro reads an Avro object container file into a new table. Column
// types follow the Arrow mapping of the writer schema: date, time-micros and
// timestamp-micros fields become Date, Time and DateTime values. Every datum
// becomes one row; a datum that does not match its field type is an error.
func ReadAvro(r io.Reader) (*Table, error) {
	dec, err := ocf.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArrow, err)
	}
	sc, err := arrowavro.ArrowSchemaFromAvro(dec.Schema())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArrow, err)
	}

	t := New()
	for _, f := range sc.Fields() {
		t.Add(f.Name, nil)
	}
	for row := 0; dec.HasNext(); row++ {
		var datum any
		if err := dec.Decode(&datum); err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrArrow, row, err)
		}
		rec, ok := datum.(map[string]any)
		if !ok {
			return nil, xerrors.Errorf("row %d is %T, not a record: %w", row, datum, ErrInvalidDataType)
		}
		for i, f := range sc.Fields() {
			v, err := avroValue(f.Type, rec[f.Name])
			if err != nil {
				return nil, xerrors.Errorf("column %q row %d: %w", f.Name, row, err)
			}
			t.cols[i] = append(t.cols[i], v)
		}
	}
	if err := dec.Error(); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrArrow, err)
	}
	return t, nil
}

// avroValue converts a datum decoded by hamba/avro into a Value of the kind
// matching dt. Nested records, arrays and maps go through value.From.
func avroValue(dt arrow.DataType, datum any) (value.Value, error) {
	// unions hamba could not resolve arrive as a single entry map
	if m, ok := datum.(map[string]any); ok && len(m) == 1 && dt.ID() != arrow.STRUCT && dt.ID() != arrow.MAP {
		for _, inner := range m {
			datum = inner
		}
	}
	if datum == nil {
		return value.Null(), nil
	}

	switch dt.ID() {
	case arrow.INT32:
		switch x := datum.(type) {
		case int:
			return value.Num(int32(x)), nil
		case int32:
			return value.Num(x), nil
		}
		return value.Value{}, avroMismatch(dt, datum)
	case arrow.INT64:
		switch x := datum.(type) {
		case int:
			return value.Num(int64(x)), nil
		case int64:
			return value.Num(x), nil
		}
		return value.Value{}, avroMismatch(dt, datum)
	case arrow.DATE32:
		if x, ok := datum.(time.Time); ok {
			return dateValue(x.UTC())
		}
		return value.Value{}, avroMismatch(dt, datum)
	case arrow.TIME32, arrow.TIME64:
		if x, ok := datum.(time.Duration); ok {
			return timeValue(time.Unix(0, 0).UTC().Add(x))
		}
		return value.Value{}, avroMismatch(dt, datum)
	case arrow.TIMESTAMP:
		if x, ok := datum.(time.Time); ok {
			return value.DateTimeValue(value.DateTimeFromTime(x)), nil
		}
		return value.Value{}, avroMismatch(dt, datum)
	}
	return value.From(datum)
}

func avroMismatch(dt arrow.DataType, datum any) error {
	return xerrors.Errorf("%T for %s: %w", datum, dt, ErrInvalidDataType)
}

// WriteAvro writes the loaded record to w as an Avro object container file.
// Every field is a union of null and the column type. Headers are turned
// into valid Avro names in snake case.
func (t *Table) WriteAvro(w io.Writer) error {
	rec, err := t.Record()
	if err != nil {
		return err
	}
	names, schema, err := avroSchema(rec.Schema())
	if err != nil {
		return err
	}

	enc, err := ocf.NewEncoder(schema.String(), w)
	if err != nil {
		return err
	}
	cols := rec.Columns()
	for row := range int(rec.NumRows()) {
		item := make(map[string]any, len(cols))
		for i, col := range cols {
			cell, err := avroCell(col, row)
			if err != nil {
				return xerrors.Errorf("column %q row %d: %w", rec.ColumnName(i), row, err)
			}
			item[names[i]] = cell
		}
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return enc.Close()
}

// avroName maps a header to a name matching [A-Za-z_][A-Za-z0-9_]*.
func avroName(header string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, strcase.SnakeCase(header))
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		name = "_" + name
	}
	return name
}

func avroType(dt arrow.DataType) (any, error) {
	switch dt.ID() {
	case arrow.BOOL:
		return "boolean", nil
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.UINT8, arrow.UINT16:
		return "int", nil
	case arrow.INT64, arrow.UINT32, arrow.UINT64:
		return "long", nil
	case arrow.FLOAT32:
		return "float", nil
	case arrow.FLOAT64:
		return "double", nil
	case arrow.STRING:
		return "string", nil
	case arrow.DATE32:
		return map[string]string{"type": "int", "logicalType": "date"}, nil
	case arrow.TIME64:
		return map[string]string{"type": "long", "logicalType": "time-micros"}, nil
	case arrow.TIMESTAMP:
		return map[string]string{"type": "long", "logicalType": "timestamp-micros"}, nil
	}
	return nil, xerrors.Errorf("no avro type for %s: %w", dt, ErrInvalidDataType)
}

func avroSchema(sc *arrow.Schema) ([]string, avro.Schema, error) {
	names := make([]string, sc.NumFields())
	seen := make(map[string]bool, sc.NumFields())
	fields := make([]map[string]any, sc.NumFields())
	for i, f := range sc.Fields() {
		typ, err := avroType(f.Type)
		if err != nil {
			return nil, nil, xerrors.Errorf("column %q: %w", f.Name, err)
		}
		names[i] = avroName(f.Name)
		if seen[names[i]] {
			return nil, nil, xerrors.Errorf("duplicate avro field %q: %w", names[i], ErrInvalidDataType)
		}
		seen[names[i]] = true
		fields[i] = map[string]any{"name": names[i], "type": []any{"null", typ}, "default": nil}
	}

	raw, err := json.Marshal(map[string]any{"type": "record", "name": "Row", "fields": fields})
	if err != nil {
		return nil, nil, err
	}
	schema, err := avro.ParseBytes(raw)
	if err != nil {
		return nil, nil, err
	}
	return names, schema, nil
}

// avroCell returns the Go value hamba/avro encodes for a single slot.
func avroCell(arr arrow.Array, i int) (any, error) {
	if arr.IsNull(i) {
		return nil, nil
	}
	switch a := arr.(type) {
	case *array.Boolean:
		return a.Value(i), nil
	case *array.Int8:
		return int32(a.Value(i)), nil
	case *array.Int16:
		return int32(a.Value(i)), nil
	case *array.Int32:
		return a.Value(i), nil
	case *array.Int64:
		return a.Value(i), nil
	case *array.Uint8:
		return int32(a.Value(i)), nil
	case *array.Uint16:
		return int32(a.Value(i)), nil
	case *array.Uint32:
		return int64(a.Value(i)), nil
	case *array.Uint64:
		u := a.Value(i)
		if u > math.MaxInt64 {
			return nil, xerrors.Errorf("%d overflows an avro long: %w", u, ErrInvalidDataType)
		}
		return int64(u), nil
	case *array.Float32:
		return a.Value(i), nil
	case *array.Float64:
		return a.Value(i), nil
	case *array.String:
		return a.Value(i), nil
	case *array.Date32:
		return a.Value(i).ToTime(), nil
	case *array.Time64:
		return time.Duration(a.Value(i)) * time.Microsecond, nil
	case *array.Timestamp:
		return a.Value(i).ToTime(a.DataType().(*arrow.TimestampType).Unit), nil
	}
	return nil, xerrors.Errorf("arrow type %s: %w", arr.DataType(), ErrInvalidDataType)
}
