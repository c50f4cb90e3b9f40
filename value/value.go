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
	"fmt"
	"iter"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Value is a tagged union over the eight kinds listed in Kind. The zero Value
// is Undefined.
//
// Copying a Value copies containers by reference, the way copying a slice
// does. Use Clone for an independent copy.
type Value struct {
	kind Kind
	b    bool
	num  Number
	str  StringB
	arr  Array
	obj  Object
	dt   DateTime
}

func Null() Value { return Value{kind: KindNull} }

func Undefined() Value { return Value{} }

func Bool(b bool) Value { return Value{kind: KindBoolean, b: b} }

func Str(s string) Value { return Value{kind: KindString, str: NewStringB(s)} }

func StringBValue(s StringB) Value { return Value{kind: KindString, str: s} }

// Num wraps v in a Number Value, keeping its Go width.
func Num[T constraints.Integer | constraints.Float](v T) Value {
	return Value{kind: KindNumber, num: NumberFrom(v)}
}

func NumberValue(n Number) Value { return Value{kind: KindNumber, num: n} }

// ArrayOf builds an Array Value holding vals.
func ArrayOf(vals ...Value) Value { return Value{kind: KindArray, arr: NewArray(vals...)} }

func ArrayValue(a Array) Value { return Value{kind: KindArray, arr: a} }

func ObjectValue(o Object) Value {
	if o.backing == nil {
		o = NewHashObject()
	}
	return Value{kind: KindObject, obj: o}
}

func DateTimeValue(dt DateTime) Value { return Value{kind: KindDateTime, dt: dt} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) IsNullOrUndefined() bool { return v.kind == KindNull || v.kind == KindUndefined }

func (v Value) IsBoolean() bool { return v.kind == KindBoolean }

func (v Value) IsNumber() bool { return v.kind == KindNumber }

func (v Value) IsString() bool { return v.kind == KindString }

func (v Value) IsArray() bool { return v.kind == KindArray }

func (v Value) IsObject() bool { return v.kind == KindObject }

func (v Value) IsDateTime() bool { return v.kind == KindDateTime }

func (v Value) AsBool() (bool, error) {
	if v.kind != KindBoolean {
		return false, mismatch("AsBool", v.kind, KindBoolean)
	}
	return v.b, nil
}

func (v Value) AsNumber() (Number, error) {
	if v.kind != KindNumber {
		return Number{}, mismatch("AsNumber", v.kind, KindNumber)
	}
	return v.num, nil
}

func (v Value) AsStringB() (StringB, error) {
	if v.kind != KindString {
		return StringB{}, mismatch("AsStringB", v.kind, KindString)
	}
	return v.str, nil
}

func (v Value) AsString() (string, error) {
	s, err := v.AsStringB()
	return s.String(), err
}

func (v Value) AsArray() (Array, error) {
	if v.kind != KindArray {
		return Array{}, mismatch("AsArray", v.kind, KindArray)
	}
	return v.arr, nil
}

// ArrayMut gives in place access to the array held by v.
func (v *Value) ArrayMut() (*Array, error) {
	if v.kind != KindArray {
		return nil, mismatch("ArrayMut", v.kind, KindArray)
	}
	return &v.arr, nil
}

func (v Value) AsObject() (Object, error) {
	if v.kind != KindObject {
		return Object{}, mismatch("AsObject", v.kind, KindObject)
	}
	return v.obj, nil
}

// ObjectMut gives in place access to the object held by v.
func (v *Value) ObjectMut() (*Object, error) {
	if v.kind != KindObject {
		return nil, mismatch("ObjectMut", v.kind, KindObject)
	}
	return &v.obj, nil
}

func (v Value) AsDateTime() (DateTime, error) {
	if v.kind != KindDateTime {
		return DateTime{}, mismatch("AsDateTime", v.kind, KindDateTime)
	}
	return v.dt, nil
}

// Get looks key up in an Object, or uses it as an index into an Array. A
// missing key fails with ErrNotFound and a bad index with ErrIndex.
func (v Value) Get(key any) (*Value, error) {
	switch v.kind {
	case KindObject:
		k, err := KeyOf(key)
		if err != nil {
			return nil, err
		}
		if found := v.obj.Get(k); found != nil {
			return found, nil
		}
		return nil, fmt.Errorf("%w: key %q", ErrNotFound, k)
	case KindArray:
		i, err := indexOf(key)
		if err != nil {
			return nil, err
		}
		if found := v.arr.Get(i); found != nil {
			return found, nil
		}
		return nil, fmt.Errorf("%w: index %d with length %d", ErrIndex, i, v.arr.Len())
	}
	return nil, mismatch("Get", v.kind, KindObject, KindArray)
}

// GetMut is Get for callers that intend to modify the result in place.
func (v *Value) GetMut(key any) (*Value, error) { return v.Get(key) }

func indexOf(key any) (int, error) {
	k, err := KeyOf(key)
	if err != nil {
		return 0, err
	}
	if !k.IsNumber() {
		return 0, fmt.Errorf("%w: key %q is not an index", ErrIndex, k.String())
	}
	n, _ := k.AsUsize()
	if n > uint(int(^uint(0)>>1)) {
		return 0, fmt.Errorf("%w: index %d", ErrIndex, n)
	}
	return int(n), nil
}

// Insert stores val under key in an Object and returns the replaced value.
func (v *Value) Insert(key any, val Value) (*Value, error) {
	if v.kind != KindObject {
		return nil, mismatch("Insert", v.kind, KindObject)
	}
	k, err := KeyOf(key)
	if err != nil {
		return nil, err
	}
	return v.obj.Insert(k, val), nil
}

func (v *Value) Push(val Value) error {
	if v.kind != KindArray {
		return mismatch("Push", v.kind, KindArray)
	}
	v.arr.Push(val)
	return nil
}

// Pop removes the last array element. The result is nil for an empty array.
func (v *Value) Pop() (*Value, error) {
	if v.kind != KindArray {
		return nil, mismatch("Pop", v.kind, KindArray)
	}
	return v.arr.Pop(), nil
}

// Remove deletes key from an Object and returns its value, if any.
func (v *Value) Remove(key any) (*Value, error) {
	if v.kind != KindObject {
		return nil, mismatch("Remove", v.kind, KindObject)
	}
	k, err := KeyOf(key)
	if err != nil {
		return nil, err
	}
	return v.obj.Remove(k), nil
}

func (v Value) ContainsKey(key any) (bool, error) {
	if v.kind != KindObject {
		return false, mismatch("ContainsKey", v.kind, KindObject)
	}
	k, err := KeyOf(key)
	if err != nil {
		return false, err
	}
	return v.obj.ContainsKey(k), nil
}

func (v Value) Keys() ([]ValueKey, error) {
	if v.kind != KindObject {
		return nil, mismatch("Keys", v.kind, KindObject)
	}
	return v.obj.Keys(), nil
}

func (v Value) Values() ([]Value, error) {
	if v.kind != KindObject {
		return nil, mismatch("Values", v.kind, KindObject)
	}
	return v.obj.Values(), nil
}

// Len counts array elements, object entries or string bytes.
func (v Value) Len() (int, error) {
	switch v.kind {
	case KindArray:
		return v.arr.Len(), nil
	case KindObject:
		return v.obj.Len(), nil
	case KindString:
		return v.str.Len(), nil
	}
	return 0, mismatch("Len", v.kind, KindArray, KindObject, KindString)
}

func (v Value) IsEmpty() (bool, error) {
	n, err := v.Len()
	if err != nil {
		return false, mismatch("IsEmpty", v.kind, KindArray, KindObject, KindString)
	}
	return n == 0, nil
}

// Clean empties an Array or Object in place and clears a Number.
func (v *Value) Clean() error {
	switch v.kind {
	case KindArray:
		v.arr.Clean()
	case KindObject:
		v.obj.Clean()
	case KindNumber:
		v.num.Clean()
	default:
		return mismatch("Clean", v.kind, KindArray, KindObject, KindNumber)
	}
	return nil
}

// Iter walks the elements of an Array (keyed by index) or the entries of an
// Object.
func (v Value) Iter() (iter.Seq2[ValueKey, *Value], error) {
	switch v.kind {
	case KindArray:
		return func(yield func(ValueKey, *Value) bool) {
			for i, elem := range v.arr.All() {
				if !yield(NumberKey(uint(i)), elem) {
					return
				}
			}
		}, nil
	case KindObject:
		return v.obj.All(), nil
	}
	return nil, mismatch("Iter", v.kind, KindArray, KindObject)
}

// NumberType reports the held width, or NumberUnknown for non numbers.
func (v Value) NumberType() NumberType {
	if v.kind != KindNumber {
		return NumberUnknown
	}
	return v.num.Type()
}

func (v Value) IsInteger() bool { return v.kind == KindNumber && v.num.IsInteger() }

func (v Value) IsFloat() bool { return v.kind == KindNumber && v.num.IsFloat() }

func (v Value) IsSigned() bool { return v.kind == KindNumber && v.num.IsSigned() }

func (v Value) IsUnsigned() bool { return v.kind == KindNumber && v.num.IsUnsigned() }

func (v Value) IsZero() bool { return v.kind == KindNumber && v.num.IsZero() }

func (v Value) IsPositive() bool { return v.kind == KindNumber && v.num.IsPositive() }

func (v Value) IsNegative() bool { return v.kind == KindNumber && v.num.IsNegative() }

// Equal compares kind and payload recursively.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindBoolean:
		return v.b == other.b
	case KindNumber:
		return v.num.Equal(other.num)
	case KindString:
		return v.str == other.str
	case KindArray:
		return v.arr.Equal(other.arr)
	case KindObject:
		return v.obj.Equal(other.obj)
	case KindDateTime:
		return v.dt.Equal(other.dt)
	}
	return true
}

func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		v.arr = v.arr.Clone()
	case KindObject:
		v.obj = v.obj.Clone()
	}
	return v
}

// String renders strings, arrays and objects as indented JSON, and every other
// kind through its own display form.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return v.num.String()
	case KindDateTime:
		return v.dt.String()
	}
	return v.ToJSON(JSONIndented)
}

func (v Value) ToValue() Value { return v }
