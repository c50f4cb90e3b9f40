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

// Package table holds columns of value.Value under named headers and moves
// them in and out of Arrow record batches, Parquet, CSV and Avro files.
//
// A Table is filled column by column (Add, AddColToHeader, PushItemInHeader)
// or row by row from a Value (FromRows). LoadRecordBatch infers one Arrow
// type per column and builds a record that WriteParquet and WriteAvro
// serialize. ReadParquet, ReadCSV and ReadAvro go the other way, turning every
// Arrow cell back into a Value.
package table
