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
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
)

// DefaultBatchSize is the number of rows read per record batch.
const DefaultBatchSize = 8192

type config struct {
	mem            memory.Allocator
	compression    compress.Compression
	rowGroupLength int64
	batchSize      int64
}

// Option configures reading and writing. Options that do not apply to an
// operation are ignored by it.
type Option func(*config)

// WithAllocator sets the allocator used for Arrow buffers.
func WithAllocator(mem memory.Allocator) Option {
	return func(c *config) { c.mem = mem }
}

// WithCompression sets the Parquet compression codec. Snappy by default.
func WithCompression(codec compress.Compression) Option {
	return func(c *config) { c.compression = codec }
}

// WithRowGroupLength caps the number of rows in each Parquet row group.
func WithRowGroupLength(n int64) Option {
	return func(c *config) { c.rowGroupLength = n }
}

// WithBatchSize sets how many rows are read per record batch.
func WithBatchSize(n int64) Option {
	return func(c *config) { c.batchSize = n }
}

func newConfig(opts []Option) config {
	cfg := config{
		mem:            memory.DefaultAllocator,
		compression:    compress.Codecs.Snappy,
		rowGroupLength: parquet.DefaultMaxRowGroupLen,
		batchSize:      DefaultBatchSize,
	}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}
