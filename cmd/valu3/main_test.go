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

package main

import (
	"testing"

	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valu3/valu3-go/value"
)

func TestParseCodec(t *testing.T) {
	c, err := parseCodec("ZSTD")
	require.NoError(t, err)
	assert.Equal(t, compress.Codecs.Zstd, c)

	_, err = parseCodec("lzo")
	assert.Error(t, err)
}

func TestJSONTable(t *testing.T) {
	rows, err := jsonTable(value.MustParse(`[{"a": 1}, {"a": 2, "b": "x"}]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, rows.Headers())
	assert.Equal(t, 2, rows.CountRows())

	cols, err := jsonTable(value.MustParse(`{"a": [1, 2, 3]}`))
	require.NoError(t, err)
	assert.Equal(t, 3, cols.CountRows())

	_, err = jsonTable(value.Str("nope"))
	assert.Error(t, err)
}
