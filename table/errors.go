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

import "golang.org/x/xerrors"

var (
	ErrInvalidDataType   = xerrors.New("table: invalid data type")
	ErrCreateRecordBatch = xerrors.New("table: cannot create record batch")
	ErrWriteParquet      = xerrors.New("table: cannot write parquet")
	ErrCloseParquet      = xerrors.New("table: cannot close parquet writer")
	ErrParquetRead       = xerrors.New("table: cannot read parquet")
	ErrArrow             = xerrors.New("table: arrow error")
	ErrRecordNotFound    = xerrors.New("table: record batch not loaded")
)
