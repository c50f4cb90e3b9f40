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

package value

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Array is an ordered sequence of Values.
//
// Pointers handed out by Get and GetMut stay valid until the array is next
// modified.
type Array struct {
	values []Value
}

func NewArray(vals ...Value) Array {
	return Array{values: slices.Clone(vals)}
}

// ArrayFromMap turns every entry of m into a single key object, in unspecified
// order.
func ArrayFromMap[V any](m map[string]V) (Array, error) {
	arr := Array{values: make([]Value, 0, len(m))}
	for k, v := range m {
		elem, err := From(v)
		if err != nil {
			return Array{}, err
		}
		obj := NewHashObject()
		obj.Insert(k, elem)
		arr.Push(ObjectValue(obj))
	}
	return arr, nil
}

// ArrayFromSortedMap is like ArrayFromMap with entries in key order, each
// wrapped in a sorted object.
func ArrayFromSortedMap[V any](m map[string]V) (Array, error) {
	arr := Array{values: make([]Value, 0, len(m))}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		elem, err := From(m[k])
		if err != nil {
			return Array{}, err
		}
		obj := NewSortedObject()
		obj.Insert(k, elem)
		arr.Push(ObjectValue(obj))
	}
	return arr, nil
}

// Get returns the element at i, or nil when i is out of range.
func (a Array) Get(i int) *Value {
	if i < 0 || i >= len(a.values) {
		return nil
	}
	return &a.values[i]
}

func (a *Array) GetMut(i int) *Value { return a.Get(i) }

func (a *Array) Push(v Value) { a.values = append(a.values, v) }

// Pop removes and returns the last element, or nil when the array is empty.
func (a *Array) Pop() *Value {
	if len(a.values) == 0 {
		return nil
	}
	last := a.values[len(a.values)-1]
	a.values[len(a.values)-1] = Value{}
	a.values = a.values[:len(a.values)-1]
	return &last
}

func (a Array) Len() int { return len(a.values) }

func (a Array) IsEmpty() bool { return len(a.values) == 0 }

func (a *Array) Clean() { a.values = nil }

// Values returns the backing slice.
func (a Array) Values() []Value { return a.values }

func (a Array) All() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		for i := range a.values {
			if !yield(i, &a.values[i]) {
				return
			}
		}
	}
}

func (a Array) Clone() Array {
	if a.values == nil {
		return Array{}
	}
	out := make([]Value, len(a.values))
	for i, v := range a.values {
		out[i] = v.Clone()
	}
	return Array{values: out}
}

func (a Array) Equal(other Array) bool {
	return slices.EqualFunc(a.values, other.values, Value.Equal)
}

// String lists the elements in brackets using their display form.
func (a Array) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a Array) ToValue() Value { return ArrayValue(a) }
