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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

// WriteParquet writes the loaded record to w as a Parquet file. The Arrow
// schema is stored in the file metadata so that reading it back restores
// the exact column types.
func (t *Table) WriteParquet(w io.Writer, opts ...Option) error {
	rec, err := t.Record()
	if err != nil {
		return err
	}
	cfg := newConfig(opts)

	props := parquet.NewWriterProperties(
		parquet.WithAllocator(cfg.mem),
		parquet.WithCompression(cfg.compression),
		parquet.WithMaxRowGroupLength(cfg.rowGroupLength),
	)
	arrProps := pqarrow.NewArrowWriterProperties(
		pqarrow.WithStoreSchema(),
		pqarrow.WithAllocator(cfg.mem),
	)

	fw, err := pqarrow.NewFileWriter(rec.Schema(), w, props, arrProps)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteParquet, err)
	}
	if err := fw.Write(rec); err != nil {
		fw.Close()
		return fmt.Errorf("%w: %w", ErrWriteParquet, err)
	}
	if err := fw.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrCloseParquet, err)
	}
	return nil
}

// ToParquet writes the loaded record to a new file at path.
func (t *Table) ToParquet(path string, opts ...Option) error {
	if _, err := t.Record(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	// the parquet writer closes f on success
	if err := t.WriteParquet(f, opts...); err != nil {
		f.Close()
		return err
	}
	return nil
}

// ReadParquet reads every row group of r into a new table, one record batch
// at a time.
func ReadParquet(ctx context.Context, r parquet.ReaderAtSeeker, opts ...Option) (*Table, error) {
	cfg := newConfig(opts)

	rdr, err := file.NewParquetReader(r, file.WithReadProps(parquet.NewReaderProperties(cfg.mem)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParquetRead, err)
	}
	defer rdr.Close()

	fr, err := pqarrow.NewFileReader(rdr, pqarrow.ArrowReadProperties{BatchSize: cfg.batchSize}, cfg.mem)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParquetRead, err)
	}

	rr, err := fr.GetRecordReader(ctx, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParquetRead, err)
	}
	defer rr.Release()

	t := New()
	for _, f := range rr.Schema().Fields() {
		t.Add(f.Name, nil)
	}
	if err := t.readRecords(rr); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParquetRead, err)
	}
	return t, nil
}

// FromParquet reads the Parquet file at path.
func FromParquet(ctx context.Context, path string, opts ...Option) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadParquet(ctx, f, opts...)
}
