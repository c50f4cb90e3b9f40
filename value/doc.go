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

// Package value provides a dynamically tagged Value type that can hold a string,
// a number of any width, a boolean, an array, an object, null, undefined or a
// date/time, along with conversions to and from JSON and YAML text and to and
// from native Go types.
//
// There are three main ways to create a Value:
//
//  1. Using the constructors (`value.Str`, `value.Num`, `value.ArrayOf`, ...).
//  2. Using `value.From()`. Simply pass in the Go value you'd like to convert and
//     all the type inference is done for you. Structs and string-keyed maps become
//     objects, slices become arrays and primitives become scalars. Struct keys are
//     either the exported field names or the contents of the `value` field tag.
//     This will feel like the JSON library's `Marshal()`.
//  3. Parsing JSON text with `value.Parse()`.
//
// To convert a Value back into a Go type, use `value.Decode()` or `value.To[T]()`.
// Like the JSON `Unmarshal()`, Decode takes a pointer to a value to fill up.
//
// Objects come in two flavors that share one contract: a sorted object keeps its
// keys ordered, a hash object does not promise any order. The flavor is fixed
// when the object is created.
//
// Calling a kind specific operation on the wrong kind of Value (for instance,
// Push on a Boolean) returns a *TypeMismatchError rather than panicking. The
// Must* accessors panic instead, for callers that have already checked.
package value
