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

package value_test

import (
	"fmt"
	"log"

	"github.com/valu3/valu3-go/value"
)

func Example() {
	v, err := value.Parse(`{"name": "valu3", "tags": [1, 2.5, null]}`)
	if err != nil {
		log.Fatal(err)
	}

	tags, err := v.GetMut("tags")
	if err != nil {
		log.Fatal(err)
	}
	if err := tags.Push(value.Str("new")); err != nil {
		log.Fatal(err)
	}

	fmt.Println(v.ToJSON(value.JSONInline))
	fmt.Print(v.ToYAML())

	// Output:
	// {"name": "valu3","tags": [1,2.5,null,"new"]}
	// name: "valu3"
	// tags:
	//   - 1
	//   - 2.5
	//   - null
	//   - "new"
}

func ExampleParseNumber() {
	for _, s := range []string{"42", "3000000000", "1.5"} {
		n, err := value.ParseNumber(s)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(s, n.Type())
	}

	// Output:
	// 42 I32
	// 3000000000 F64
	// 1.5 F64
}

func ExampleFrom() {
	type point struct {
		X     int32 `value:"x"`
		Y     int32 `value:"y"`
		Label string `value:",snake,omitempty"`
	}

	v, err := value.From(point{X: 1, Y: -2})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(v.ToJSON(value.JSONInline))

	p, err := value.To[point](value.MustParse(`{"x": 5, "y": 6, "label": "z"}`))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%+v\n", p)

	// Output:
	// {"x": 1,"y": -2}
	// {X:5 Y:6 Label:z}
}

func ExampleNewBuilder() {
	vb := value.NewBuilder(value.WithSortedObjects())
	obj, _ := vb.Object()
	_ = obj.Write("b", true)
	list, _ := obj.Array("a")
	_ = list.Write("x")
	_ = list.Build()

	v, err := vb.Build()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(v)

	// Output:
	// {
	// 	"a": [
	// 		"x"
	// 	],
	// 	"b": true
	// }
}
