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
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/valu3/valu3-go/value"
	"golang.org/x/xerrors"
)

// 128 bit numbers have no Arrow integer type wide enough and are stored as
// their decimal text.
var numberTypes = map[value.NumberType]arrow.DataType{
	value.NumberU8:   arrow.PrimitiveTypes.Uint8,
	value.NumberU16:  arrow.PrimitiveTypes.Uint16,
	value.NumberU32:  arrow.PrimitiveTypes.Uint32,
	value.NumberU64:  arrow.PrimitiveTypes.Uint64,
	value.NumberU128: arrow.BinaryTypes.String,
	value.NumberI8:   arrow.PrimitiveTypes.Int8,
	value.NumberI16:  arrow.PrimitiveTypes.Int16,
	value.NumberI32:  arrow.PrimitiveTypes.Int32,
	value.NumberI64:  arrow.PrimitiveTypes.Int64,
	value.NumberI128: arrow.BinaryTypes.String,
	value.NumberF32:  arrow.PrimitiveTypes.Float32,
	value.NumberF64:  arrow.PrimitiveTypes.Float64,
}

// isNullCell reports whether v is stored as a null slot.
func isNullCell(v value.Value) bool {
	return v.IsNullOrUndefined() || (v.IsNumber() && v.NumberType() == value.NumberUnknown)
}

// cellType returns the Arrow type of a single non-null cell. Arrays and
// Objects are stored as their inline JSON text.
func cellType(v value.Value) (arrow.DataType, error) {
	switch v.Kind() {
	case value.KindBoolean:
		return arrow.FixedWidthTypes.Boolean, nil
	case value.KindNumber:
		if dt, ok := numberTypes[v.NumberType()]; ok {
			return dt, nil
		}
	case value.KindString, value.KindArray, value.KindObject:
		return arrow.BinaryTypes.String, nil
	case value.KindDateTime:
		dt, _ := v.AsDateTime()
		switch dt.Kind() {
		case value.DateKind:
			return arrow.FixedWidthTypes.Date32, nil
		case value.TimeKind:
			return arrow.FixedWidthTypes.Time64us, nil
		}
		return arrow.FixedWidthTypes.Timestamp_us, nil
	}
	return nil, xerrors.Errorf("no arrow type for %s: %w", v.Kind(), ErrInvalidDataType)
}

// unifyTypes returns a type able to hold values of both a and b. Integers
// widen to the larger width, mixing signed and unsigned picks a signed type
// wider than the unsigned one, and any float turns the column into Float64.
func unifyTypes(a, b arrow.DataType) (arrow.DataType, bool) {
	if arrow.TypeEqual(a, b) {
		return a, true
	}
	aid, bid := a.ID(), b.ID()
	switch {
	case arrow.IsInteger(aid) && arrow.IsInteger(bid):
		return unifyIntegers(a, b), true
	case isNumeric(aid) && isNumeric(bid):
		return arrow.PrimitiveTypes.Float64, true
	}
	return nil, false
}

func isNumeric(id arrow.Type) bool { return arrow.IsInteger(id) || arrow.IsFloating(id) }

func bitWidth(dt arrow.DataType) int { return dt.(arrow.FixedWidthDataType).BitWidth() }

func unifyIntegers(a, b arrow.DataType) arrow.DataType {
	aSigned, bSigned := arrow.IsSignedInteger(a.ID()), arrow.IsSignedInteger(b.ID())
	if aSigned == bSigned {
		if bitWidth(a) >= bitWidth(b) {
			return a
		}
		return b
	}
	signed, unsigned := a, b
	if bSigned {
		signed, unsigned = b, a
	}
	if bitWidth(signed) > bitWidth(unsigned) {
		return signed
	}
	return signedOfWidth(min(2*bitWidth(unsigned), 64))
}

func signedOfWidth(bits int) arrow.DataType {
	switch bits {
	case 8:
		return arrow.PrimitiveTypes.Int8
	case 16:
		return arrow.PrimitiveTypes.Int16
	case 32:
		return arrow.PrimitiveTypes.Int32
	}
	return arrow.PrimitiveTypes.Int64
}

// inferColumn unifies the types of every non-null cell of col. A column with
// no values at all becomes an all-null String column.
func inferColumn(col []value.Value) (arrow.DataType, error) {
	var typ arrow.DataType
	for row, v := range col {
		if isNullCell(v) {
			continue
		}
		vt, err := cellType(v)
		if err != nil {
			return nil, err
		}
		if typ == nil {
			typ = vt
			continue
		}
		unified, ok := unifyTypes(typ, vt)
		if !ok {
			return nil, xerrors.Errorf("row %d: cannot store %s in a %s column: %w", row, vt, typ, ErrInvalidDataType)
		}
		typ = unified
	}
	if typ == nil {
		return arrow.BinaryTypes.String, nil
	}
	return typ, nil
}
