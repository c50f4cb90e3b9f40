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
	"io"
	"math"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/valu3/valu3-go/value"
	"golang.org/x/xerrors"
)

// LoadRecordBatch builds an Arrow record from the columns of t, replacing any
// record loaded before. Every field is nullable; Null and Undefined cells
// become null slots. A nil allocator means memory.DefaultAllocator.
func (t *Table) LoadRecordBatch(mem memory.Allocator) error {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	if len(t.headers) != len(t.cols) {
		return xerrors.Errorf("%d headers for %d columns: %w", len(t.headers), len(t.cols), ErrCreateRecordBatch)
	}

	rows := t.CountRows()
	fields := make([]arrow.Field, len(t.cols))
	for i, col := range t.cols {
		if len(col) != rows {
			return xerrors.Errorf("column %q has %d rows, expected %d: %w", t.headers[i], len(col), rows, ErrCreateRecordBatch)
		}
		typ, err := inferColumn(col)
		if err != nil {
			return xerrors.Errorf("column %q: %w", t.headers[i], err)
		}
		fields[i] = arrow.Field{Name: t.headers[i], Type: typ, Nullable: true}
	}

	schema := arrow.NewSchema(fields, nil)
	bldr := array.NewRecordBuilder(mem, schema)
	defer bldr.Release()

	for i, col := range t.cols {
		fb := bldr.Field(i)
		fb.Reserve(rows)
		for row, v := range col {
			if err := appendCell(fb, v); err != nil {
				return xerrors.Errorf("column %q row %d: %w", t.headers[i], row, err)
			}
		}
	}

	t.Release()
	t.record = bldr.NewRecord()
	return nil
}

// Record returns the record built by LoadRecordBatch. The table keeps its
// reference; call Retain to hold on to it past Release.
func (t *Table) Record() (arrow.Record, error) {
	if t.record == nil {
		return nil, ErrRecordNotFound
	}
	return t.record, nil
}

func (t *Table) Schema() (*arrow.Schema, error) {
	if t.record == nil {
		return nil, ErrRecordNotFound
	}
	return t.record.Schema(), nil
}

// Release drops the loaded record, if any.
func (t *Table) Release() {
	if t.record != nil {
		t.record.Release()
		t.record = nil
	}
}

func appendCell(b array.Builder, v value.Value) error {
	if isNullCell(v) {
		b.AppendNull()
		return nil
	}
	switch b := b.(type) {
	case *array.BooleanBuilder:
		x, err := v.AsBool()
		if err != nil {
			return err
		}
		b.Append(x)
	case *array.Int8Builder:
		return appendInt[int8](b, v, math.MinInt8, math.MaxInt8)
	case *array.Int16Builder:
		return appendInt[int16](b, v, math.MinInt16, math.MaxInt16)
	case *array.Int32Builder:
		return appendInt[int32](b, v, math.MinInt32, math.MaxInt32)
	case *array.Int64Builder:
		return appendInt[int64](b, v, math.MinInt64, math.MaxInt64)
	case *array.Uint8Builder:
		return appendUint[uint8](b, v, math.MaxUint8)
	case *array.Uint16Builder:
		return appendUint[uint16](b, v, math.MaxUint16)
	case *array.Uint32Builder:
		return appendUint[uint32](b, v, math.MaxUint32)
	case *array.Uint64Builder:
		return appendUint[uint64](b, v, math.MaxUint64)
	case *array.Float32Builder:
		f, err := floatCell(v)
		if err != nil {
			return err
		}
		b.Append(float32(f))
	case *array.Float64Builder:
		f, err := floatCell(v)
		if err != nil {
			return err
		}
		b.Append(f)
	case *array.StringBuilder:
		b.Append(stringCell(v))
	case *array.Date32Builder:
		dt, err := v.AsDateTime()
		if err != nil {
			return err
		}
		b.Append(arrow.Date32FromTime(dt.Time()))
	case *array.Time64Builder:
		dt, err := v.AsDateTime()
		if err != nil {
			return err
		}
		b.Append(arrow.Time64(sinceMidnight(dt.Time()).Microseconds()))
	case *array.TimestampBuilder:
		dt, err := v.AsDateTime()
		if err != nil {
			return err
		}
		b.Append(arrow.Timestamp(dt.Time().UnixMicro()))
	default:
		return xerrors.Errorf("unsupported builder %T: %w", b, ErrInvalidDataType)
	}
	return nil
}

func appendInt[T int8 | int16 | int32 | int64](b interface{ Append(T) }, v value.Value, lo, hi int64) error {
	n, err := v.AsNumber()
	if err != nil {
		return err
	}
	i, ok := n.Int64()
	if !ok || i < lo || i > hi {
		return xerrors.Errorf("%s does not fit the column: %w", n, ErrInvalidDataType)
	}
	b.Append(T(i))
	return nil
}

func appendUint[T uint8 | uint16 | uint32 | uint64](b interface{ Append(T) }, v value.Value, hi uint64) error {
	n, err := v.AsNumber()
	if err != nil {
		return err
	}
	u, ok := n.Uint64()
	if !ok || u > hi {
		return xerrors.Errorf("%s does not fit the column: %w", n, ErrInvalidDataType)
	}
	b.Append(T(u))
	return nil
}

func floatCell(v value.Value) (float64, error) {
	n, err := v.AsNumber()
	if err != nil {
		return 0, err
	}
	f, _ := n.Float64()
	return f, nil
}

// stringCell renders cells of String columns: strings as is, wide numbers as
// decimal text and containers as inline JSON.
func stringCell(v value.Value) string {
	switch v.Kind() {
	case value.KindString:
		s, _ := v.AsString()
		return s
	case value.KindNumber:
		n, _ := v.AsNumber()
		return n.String()
	}
	return v.ToJSON(value.JSONInline)
}

func sinceMidnight(t time.Time) time.Duration {
	y, m, d := t.Date()
	return t.Sub(time.Date(y, m, d, 0, 0, 0, 0, t.Location()))
}

// FromRecord builds a table holding a copy of every cell of rec as a Value.
func FromRecord(rec arrow.Record) (*Table, error) {
	t := New()
	if err := t.appendRecord(rec); err != nil {
		return nil, err
	}
	return t, nil
}

// appendRecord appends the rows of rec. The first record fixes the headers;
// later ones must have the same number of columns.
func (t *Table) appendRecord(rec arrow.Record) error {
	schema := rec.Schema()
	if len(t.headers) == 0 && len(t.cols) == 0 {
		for _, f := range schema.Fields() {
			t.Add(f.Name, make([]value.Value, 0, rec.NumRows()))
		}
	}
	if int(rec.NumCols()) != len(t.cols) {
		return xerrors.Errorf("record has %d columns, table has %d: %w", rec.NumCols(), len(t.cols), ErrArrow)
	}
	for i, col := range rec.Columns() {
		for row := range col.Len() {
			v, err := cellValue(col, row)
			if err != nil {
				return xerrors.Errorf("column %q row %d: %w", schema.Field(i).Name, row, err)
			}
			t.cols[i] = append(t.cols[i], v)
		}
	}
	return nil
}

// recordReader is the iteration contract shared by the parquet, csv and avro
// readers.
type recordReader interface {
	Next() bool
	Record() arrow.Record
	Err() error
}

// readRecords appends every record of rr to t.
func (t *Table) readRecords(rr recordReader) error {
	for rr.Next() {
		if err := t.appendRecord(rr.Record()); err != nil {
			return err
		}
	}
	if err := rr.Err(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// cellValue converts a single Arrow slot.
func cellValue(arr arrow.Array, i int) (value.Value, error) {
	if arr.IsNull(i) {
		return value.Null(), nil
	}
	switch a := arr.(type) {
	case *array.Null:
		return value.Null(), nil
	case *array.Boolean:
		return value.Bool(a.Value(i)), nil
	case *array.Int8:
		return value.Num(a.Value(i)), nil
	case *array.Int16:
		return value.Num(a.Value(i)), nil
	case *array.Int32:
		return value.Num(a.Value(i)), nil
	case *array.Int64:
		return value.Num(a.Value(i)), nil
	case *array.Uint8:
		return value.Num(a.Value(i)), nil
	case *array.Uint16:
		return value.Num(a.Value(i)), nil
	case *array.Uint32:
		return value.Num(a.Value(i)), nil
	case *array.Uint64:
		return value.Num(a.Value(i)), nil
	case *array.Float32:
		return value.Num(a.Value(i)), nil
	case *array.Float64:
		return value.Num(a.Value(i)), nil
	case *array.String:
		return value.Str(a.Value(i)), nil
	case *array.LargeString:
		return value.Str(a.Value(i)), nil
	case *array.Binary:
		return value.Str(string(a.Value(i))), nil
	case *array.LargeBinary:
		return value.Str(string(a.Value(i))), nil
	case *array.Date32:
		return dateValue(a.Value(i).ToTime())
	case *array.Date64:
		return dateValue(a.Value(i).ToTime())
	case *array.Timestamp:
		unit := a.DataType().(*arrow.TimestampType).Unit
		return value.DateTimeValue(value.DateTimeFromTime(a.Value(i).ToTime(unit))), nil
	case *array.Time32:
		return timeValue(a.Value(i).ToTime(a.DataType().(*arrow.Time32Type).Unit))
	case *array.Time64:
		return timeValue(a.Value(i).ToTime(a.DataType().(*arrow.Time64Type).Unit))
	case *array.Dictionary:
		return cellValue(a.Dictionary(), a.GetValueIndex(i))
	}
	return value.Value{}, xerrors.Errorf("arrow type %s: %w", arr.DataType(), ErrInvalidDataType)
}

func dateValue(t time.Time) (value.Value, error) {
	d, err := value.DateFromYMD(t.Date())
	return value.DateTimeValue(d), err
}

func timeValue(t time.Time) (value.Value, error) {
	tod, err := value.TimeFromHMS(t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
	return value.DateTimeValue(tod), err
}
