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
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valu3/valu3-go/value"
)

func TestUnifyTypes(t *testing.T) {
	tests := []struct {
		a, b arrow.DataType
		want arrow.DataType
	}{
		{arrow.PrimitiveTypes.Int8, arrow.PrimitiveTypes.Int64, arrow.PrimitiveTypes.Int64},
		{arrow.PrimitiveTypes.Uint32, arrow.PrimitiveTypes.Uint8, arrow.PrimitiveTypes.Uint32},
		{arrow.PrimitiveTypes.Int64, arrow.PrimitiveTypes.Uint8, arrow.PrimitiveTypes.Int64},
		{arrow.PrimitiveTypes.Uint32, arrow.PrimitiveTypes.Int16, arrow.PrimitiveTypes.Int64},
		{arrow.PrimitiveTypes.Uint64, arrow.PrimitiveTypes.Int8, arrow.PrimitiveTypes.Int64},
		{arrow.PrimitiveTypes.Float32, arrow.PrimitiveTypes.Int8, arrow.PrimitiveTypes.Float64},
		{arrow.PrimitiveTypes.Float32, arrow.PrimitiveTypes.Float64, arrow.PrimitiveTypes.Float64},
		{arrow.BinaryTypes.String, arrow.BinaryTypes.String, arrow.BinaryTypes.String},
	}
	for _, tt := range tests {
		t.Run(tt.a.String()+"+"+tt.b.String(), func(t *testing.T) {
			got, ok := unifyTypes(tt.a, tt.b)
			assert.True(t, ok)
			assert.Truef(t, arrow.TypeEqual(tt.want, got), "expected: %s\ngot: %s", tt.want, got)

			got, ok = unifyTypes(tt.b, tt.a)
			assert.True(t, ok)
			assert.Truef(t, arrow.TypeEqual(tt.want, got), "swapped, expected: %s\ngot: %s", tt.want, got)
		})
	}

	for _, pair := range [][2]arrow.DataType{
		{arrow.FixedWidthTypes.Boolean, arrow.PrimitiveTypes.Int32},
		{arrow.BinaryTypes.String, arrow.PrimitiveTypes.Float64},
		{arrow.FixedWidthTypes.Date32, arrow.FixedWidthTypes.Timestamp_us},
	} {
		_, ok := unifyTypes(pair[0], pair[1])
		assert.False(t, ok, "%s + %s", pair[0], pair[1])
	}
}

func TestAvroName(t *testing.T) {
	assert.Equal(t, "full_name", avroName("full name"))
	assert.Equal(t, "user_id", avroName("userID"))
	assert.Equal(t, "_2", avroName("2"))
	assert.Equal(t, "_", avroName(""))
}

func TestAvroValue(t *testing.T) {
	v, err := avroValue(arrow.PrimitiveTypes.Int32, map[string]any{"int": 7})
	require.NoError(t, err)
	assert.True(t, v.Equal(value.Num(int32(7))))

	v, err = avroValue(arrow.FixedWidthTypes.Date32, time.Date(2001, 2, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	dt, err := v.AsDateTime()
	require.NoError(t, err)
	assert.Equal(t, value.DateKind, dt.Kind())
	assert.Equal(t, "2001-02-03", dt.String())

	v, err = avroValue(arrow.FixedWidthTypes.Time64us, 90*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "01:30:00", v.String())

	v, err = avroValue(arrow.FixedWidthTypes.Date32, nil)
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	v, err = avroValue(arrow.BinaryTypes.String, "s")
	require.NoError(t, err)
	assert.True(t, v.Equal(value.Str("s")))

	_, err = avroValue(arrow.FixedWidthTypes.Date32, int32(3))
	assert.ErrorIs(t, err, ErrInvalidDataType)
	_, err = avroValue(arrow.PrimitiveTypes.Int64, "x")
	assert.ErrorIs(t, err, ErrInvalidDataType)
}
