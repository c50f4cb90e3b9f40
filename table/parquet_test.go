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

package table_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valu3/valu3-go/table"
	"github.com/valu3/valu3-go/value"
)

func TestParquetRoundTrip(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	defer mem.AssertSize(t, 0)

	day, _ := value.DateFromYMD(2023, time.April, 5)
	tod, _ := value.TimeFromHMS(12, 30, 15, 0)
	instant, _ := value.DateTimeFromYMDHMS(2023, time.April, 5, 12, 30, 15)

	tbl := sampleTable()
	tbl.Add("small", []value.Value{value.Num(uint8(1)), value.Null(), value.Num(uint8(255))})
	tbl.Add("when", []value.Value{value.DateTimeValue(day), value.DateTimeValue(day), value.Null()})
	tbl.Add("at", []value.Value{value.DateTimeValue(tod), value.Null(), value.DateTimeValue(tod)})
	tbl.Add("ts", []value.Value{value.Null(), value.DateTimeValue(instant), value.DateTimeValue(instant)})
	require.NoError(t, tbl.LoadRecordBatch(mem))
	defer tbl.Release()

	var buf bytes.Buffer
	require.NoError(t, tbl.WriteParquet(&buf, table.WithAllocator(mem)))

	back, err := table.ReadParquet(context.Background(), bytes.NewReader(buf.Bytes()), table.WithAllocator(mem))
	require.NoError(t, err)
	assert.Equal(t, tbl.Headers(), back.Headers())
	for i, col := range tbl.Cols() {
		assertColEqual(t, col, back.Cols()[i])
	}
}

func TestParquetBatches(t *testing.T) {
	tbl := table.New()
	tbl.Add("n", nums(1, 2, 3, 4, 5))
	require.NoError(t, tbl.LoadRecordBatch(nil))
	defer tbl.Release()

	path := filepath.Join(t.TempDir(), "batches.parquet")
	require.NoError(t, tbl.ToParquet(path,
		table.WithCompression(compress.Codecs.Zstd),
		table.WithRowGroupLength(2)))

	back, err := table.FromParquet(context.Background(), path, table.WithBatchSize(2))
	require.NoError(t, err)
	col, ok := back.Get("n")
	require.True(t, ok)
	assertColEqual(t, nums(1, 2, 3, 4, 5), col)
}

func TestParquetErrors(t *testing.T) {
	tbl := table.New()
	tbl.Add("n", nums(1))

	var buf bytes.Buffer
	assert.ErrorIs(t, tbl.WriteParquet(&buf), table.ErrRecordNotFound)
	assert.ErrorIs(t, tbl.ToParquet(filepath.Join(t.TempDir(), "x.parquet")), table.ErrRecordNotFound)

	_, err := table.ReadParquet(context.Background(), bytes.NewReader([]byte("not parquet")))
	assert.ErrorIs(t, err, table.ErrParquetRead)

	_, err = table.FromParquet(context.Background(), filepath.Join(t.TempDir(), "missing.parquet"))
	assert.Error(t, err)
}
