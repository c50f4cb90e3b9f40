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

	arrowcsv "github.com/apache/arrow-go/v18/arrow/csv"
)

// ReadCSV reads CSV text with a header line into a new table. Column types
// are inferred by the Arrow CSV reader; empty cells are null.
func ReadCSV(r io.Reader, opts ...Option) (*Table, error) {
	cfg := newConfig(opts)

	rdr := arrowcsv.NewInferringReader(r,
		arrowcsv.WithAllocator(cfg.mem),
		arrowcsv.WithHeader(true),
		arrowcsv.WithChunk(int(cfg.batchSize)),
		arrowcsv.WithNullReader(true, ""),
	)
	defer rdr.Release()

	t := New()
	if err := t.readRecords(rdr); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArrow, err)
	}
	return t, nil
}
