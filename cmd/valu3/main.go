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

// Command valu3 converts between JSON, YAML, CSV, Avro and Parquet through
// the valu3 value and table packages.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/pterm/pterm"
	"github.com/valu3/valu3-go/table"
	"github.com/valu3/valu3-go/value"
)

const usage = `valu3 - inspect and convert structured data.

Usage:
  valu3 json [--inline] <file>
  valu3 yaml <file>
  valu3 parquet cat [--limit=N] <file>
  valu3 parquet from-json [--compression=CODEC] <in> <out>
  valu3 parquet from-csv [--compression=CODEC] <in> <out>
  valu3 parquet from-avro [--compression=CODEC] <in> <out>
  valu3 -h | --help

Options:
  -h --help            Show this screen.
  --inline             Print JSON on a single line.
  --limit=N            Print at most N rows, 0 for all [default: 0].
  --compression=CODEC  Parquet codec: snappy, zstd, gzip, brotli, lz4, none [default: snappy].

A file name of "-" reads standard input.`

func main() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		log.Fatalf("error parsing arguments: %v", err)
	}

	flag := func(key string) bool {
		b, _ := opts.Bool(key)
		return b
	}
	arg := func(key string) string {
		s, _ := opts.String(key)
		return s
	}

	switch {
	case flag("json"):
		mode := value.JSONIndented
		if flag("--inline") {
			mode = value.JSONInline
		}
		fmt.Println(readValue(arg("<file>")).ToJSON(mode))
	case flag("yaml"):
		fmt.Print(readValue(arg("<file>")).ToYAML())
	case flag("cat"):
		limit, err := opts.Int("--limit")
		if err != nil {
			log.Fatalf("invalid --limit: %v", err)
		}
		catParquet(arg("<file>"), limit)
	default:
		in := arg("<in>")
		var tbl *table.Table
		switch {
		case flag("from-json"):
			tbl, err = jsonTable(readValue(in))
		case flag("from-csv"):
			tbl, err = table.ReadCSV(openInput(in))
		case flag("from-avro"):
			tbl, err = table.ReadAvro(openInput(in))
		}
		if err != nil {
			log.Fatalf("failed to read %s: %v", in, err)
		}
		writeParquet(tbl, arg("<out>"), arg("--compression"))
	}
}

func openInput(name string) io.Reader {
	if name == "-" {
		return os.Stdin
	}
	f, err := os.Open(name)
	if err != nil {
		log.Fatalf("failed to open %s: %v", name, err)
	}
	return f
}

func readAll(name string) []byte {
	data, err := io.ReadAll(openInput(name))
	if err != nil {
		log.Fatalf("failed to read %s: %v", name, err)
	}
	return data
}

func readValue(name string) value.Value {
	v, err := value.Parse(string(readAll(name)))
	if err != nil {
		log.Fatalf("%s: %v", name, err)
	}
	return v
}

// jsonTable accepts either an array of row objects or an object of columns.
func jsonTable(v value.Value) (*table.Table, error) {
	if v.IsArray() {
		return table.FromRows(v)
	}
	return table.FromColumns(v)
}

func catParquet(name string, limit int) {
	tbl, err := table.ReadParquet(context.Background(), bytes.NewReader(readAll(name)))
	if err != nil {
		log.Fatalf("failed to read %s: %v", name, err)
	}

	rows := tbl.CountRows()
	if limit > 0 && limit < rows {
		head := table.New()
		for i, h := range tbl.Headers() {
			col, _ := tbl.Col(i)
			head.Add(h, col[:limit])
		}
		tbl = head
	}
	if err := tbl.Print(os.Stdout); err != nil {
		log.Fatal(err)
	}
	pterm.Info.Printfln("%d rows, %d columns", rows, tbl.CountCols())
}

func writeParquet(tbl *table.Table, out, codec string) {
	compression, err := parseCodec(codec)
	if err != nil {
		log.Fatal(err)
	}
	if err := tbl.LoadRecordBatch(nil); err != nil {
		log.Fatalf("failed to build record batch: %v", err)
	}
	defer tbl.Release()

	if err := tbl.ToParquet(out, table.WithCompression(compression)); err != nil {
		log.Fatalf("failed to write %s: %v", out, err)
	}
	pterm.Success.Printfln("wrote %d rows to %s", tbl.CountRows(), out)
}
