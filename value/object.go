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
	"slices"
)

// objectBacking is the storage strategy behind an Object. Both implementations
// honor the same contract and differ only in iteration order.
type objectBacking interface {
	get(k ValueKey) *Value
	insert(k ValueKey, v Value) (Value, bool)
	remove(k ValueKey) (Value, bool)
	len() int
	clear()
	all() iter.Seq2[ValueKey, *Value]
	clone() objectBacking
	sorted() bool
}

// Object maps ValueKeys to Values. It is backed either by a sorted store, which
// iterates in key order, or by a hash store, whose iteration order is not part
// of the contract. The backing is chosen when the object is built and never
// changes. The zero Object is an empty hash object.
//
// Keys passed as any must be a string, a StringB, a ValueKey, a Keyer or a non
// negative integer. Anything else panics.
type Object struct {
	backing objectBacking
}

func NewSortedObject() Object { return Object{backing: &sortedBacking{}} }

func NewHashObject() Object { return Object{backing: newHashBacking(0)} }

// ObjectFromSortedMap builds a sorted object.
func ObjectFromSortedMap[K comparable](m map[K]Value) Object {
	obj := NewSortedObject()
	for k, v := range m {
		obj.Insert(k, v)
	}
	return obj
}

// ObjectFromMap builds a hash object.
func ObjectFromMap[K comparable](m map[K]Value) Object {
	obj := Object{backing: newHashBacking(len(m))}
	for k, v := range m {
		obj.Insert(k, v)
	}
	return obj
}

// Pair is a single object entry.
type Pair struct {
	Key   ValueKey
	Value Value
}

// ObjectFromPairs builds a hash object; later pairs overwrite earlier ones.
func ObjectFromPairs(pairs ...Pair) Object {
	obj := Object{backing: newHashBacking(len(pairs))}
	for _, p := range pairs {
		obj.backing.insert(p.Key, p.Value)
	}
	return obj
}

func (o *Object) store() objectBacking {
	if o.backing == nil {
		o.backing = newHashBacking(0)
	}
	return o.backing
}

// IsSorted reports whether the object iterates in key order.
func (o Object) IsSorted() bool { return o.backing != nil && o.backing.sorted() }

// Get returns the value stored under key, or nil.
func (o Object) Get(key any) *Value {
	if o.backing == nil {
		return nil
	}
	return o.backing.get(mustKey(key))
}

func (o *Object) GetMut(key any) *Value { return o.store().get(mustKey(key)) }

// Insert stores v under key and returns the value it replaced, if any.
func (o *Object) Insert(key any, v Value) *Value {
	prev, ok := o.store().insert(mustKey(key), v)
	if !ok {
		return nil
	}
	return &prev
}

// Remove deletes key and returns its value, if any.
func (o *Object) Remove(key any) *Value {
	if o.backing == nil {
		return nil
	}
	prev, ok := o.backing.remove(mustKey(key))
	if !ok {
		return nil
	}
	return &prev
}

func (o Object) ContainsKey(key any) bool { return o.Get(key) != nil }

func (o Object) Len() int {
	if o.backing == nil {
		return 0
	}
	return o.backing.len()
}

func (o Object) IsEmpty() bool { return o.Len() == 0 }

func (o *Object) Clean() {
	if o.backing != nil {
		o.backing.clear()
	}
}

// All iterates over the entries in backing order. Each call starts a new pass.
func (o Object) All() iter.Seq2[ValueKey, *Value] {
	if o.backing == nil {
		return func(func(ValueKey, *Value) bool) {}
	}
	return o.backing.all()
}

func (o Object) Keys() []ValueKey {
	keys := make([]ValueKey, 0, o.Len())
	for k := range o.All() {
		keys = append(keys, k)
	}
	return keys
}

func (o Object) Values() []Value {
	vals := make([]Value, 0, o.Len())
	for _, v := range o.All() {
		vals = append(vals, *v)
	}
	return vals
}

// ToMap exports the entries into a Go map.
func (o Object) ToMap() map[ValueKey]Value {
	out := make(map[ValueKey]Value, o.Len())
	for k, v := range o.All() {
		out[k] = *v
	}
	return out
}

// Clone deep copies the object, keeping its backing.
func (o Object) Clone() Object {
	if o.backing == nil {
		return Object{}
	}
	out := Object{backing: o.backing.clone()}
	for _, v := range out.backing.all() {
		*v = v.Clone()
	}
	return out
}

// Equal compares entries only, so a sorted and a hash object holding the same
// entries are equal.
func (o Object) Equal(other Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	for k, v := range o.All() {
		ov := other.Get(k)
		if ov == nil || !v.Equal(*ov) {
			return false
		}
	}
	return true
}

func (o Object) String() string { return ObjectValue(o).ToJSON(JSONIndented) }

func (o Object) ToValue() Value { return ObjectValue(o) }

// sortedBacking keeps parallel key and value slices ordered by key.
type sortedBacking struct {
	keys []ValueKey
	vals []Value
}

func (s *sortedBacking) find(k ValueKey) (int, bool) {
	return slices.BinarySearchFunc(s.keys, k, ValueKey.Compare)
}

func (s *sortedBacking) get(k ValueKey) *Value {
	if i, ok := s.find(k); ok {
		return &s.vals[i]
	}
	return nil
}

func (s *sortedBacking) insert(k ValueKey, v Value) (Value, bool) {
	i, ok := s.find(k)
	if ok {
		prev := s.vals[i]
		s.vals[i] = v
		return prev, true
	}
	s.keys = slices.Insert(s.keys, i, k)
	s.vals = slices.Insert(s.vals, i, v)
	return Value{}, false
}

func (s *sortedBacking) remove(k ValueKey) (Value, bool) {
	i, ok := s.find(k)
	if !ok {
		return Value{}, false
	}
	prev := s.vals[i]
	s.keys = slices.Delete(s.keys, i, i+1)
	s.vals = slices.Delete(s.vals, i, i+1)
	return prev, true
}

func (s *sortedBacking) len() int { return len(s.keys) }

func (s *sortedBacking) clear() { s.keys, s.vals = nil, nil }

func (s *sortedBacking) all() iter.Seq2[ValueKey, *Value] {
	return func(yield func(ValueKey, *Value) bool) {
		for i := range s.keys {
			if !yield(s.keys[i], &s.vals[i]) {
				return
			}
		}
	}
}

func (s *sortedBacking) clone() objectBacking {
	return &sortedBacking{keys: slices.Clone(s.keys), vals: slices.Clone(s.vals)}
}

func (*sortedBacking) sorted() bool { return true }

// hashBacking indexes entries through a Go map. Entries are kept densely in
// slices so that iteration does not depend on map order.
type hashBacking struct {
	index map[ValueKey]int
	keys  []ValueKey
	vals  []Value
}

func newHashBacking(size int) *hashBacking {
	return &hashBacking{index: make(map[ValueKey]int, size)}
}

func (h *hashBacking) get(k ValueKey) *Value {
	if i, ok := h.index[k]; ok {
		return &h.vals[i]
	}
	return nil
}

func (h *hashBacking) insert(k ValueKey, v Value) (Value, bool) {
	if i, ok := h.index[k]; ok {
		prev := h.vals[i]
		h.vals[i] = v
		return prev, true
	}
	h.index[k] = len(h.keys)
	h.keys = append(h.keys, k)
	h.vals = append(h.vals, v)
	return Value{}, false
}

func (h *hashBacking) remove(k ValueKey) (Value, bool) {
	i, ok := h.index[k]
	if !ok {
		return Value{}, false
	}
	prev := h.vals[i]
	delete(h.index, k)
	h.keys = slices.Delete(h.keys, i, i+1)
	h.vals = slices.Delete(h.vals, i, i+1)
	for j := i; j < len(h.keys); j++ {
		h.index[h.keys[j]] = j
	}
	return prev, true
}

func (h *hashBacking) len() int { return len(h.keys) }

func (h *hashBacking) clear() {
	clear(h.index)
	h.keys, h.vals = nil, nil
}

func (h *hashBacking) all() iter.Seq2[ValueKey, *Value] {
	return func(yield func(ValueKey, *Value) bool) {
		for i := range h.keys {
			if !yield(h.keys[i], &h.vals[i]) {
				return
			}
		}
	}
}

func (h *hashBacking) clone() objectBacking {
	out := &hashBacking{
		index: make(map[ValueKey]int, len(h.index)),
		keys:  slices.Clone(h.keys),
		vals:  slices.Clone(h.vals),
	}
	for k, i := range h.index {
		out.index[k] = i
	}
	return out
}

func (*hashBacking) sorted() bool { return false }
