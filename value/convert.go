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
	"math/big"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ToValuer is implemented by types that know their own Value form.
type ToValuer interface {
	ToValue() Value
}

// FromValuer is implemented by pointer types that can fill themselves from a
// Value. Decode prefers it over reflection.
type FromValuer interface {
	FromValue(Value) error
}

var (
	timeType     = reflect.TypeFor[time.Time]()
	durationType = reflect.TypeFor[time.Duration]()
	uuidType     = reflect.TypeFor[uuid.UUID]()
	valueType    = reflect.TypeFor[Value]()
	bigIntType   = reflect.TypeFor[big.Int]()
	stringerType = reflect.TypeFor[fmt.Stringer]()
	toValuerType = reflect.TypeFor[ToValuer]()
)

// From converts a Go value to a Value.
//
//   - nil and nil pointers become Null
//   - integers and floats keep their width, int and uint count as 64 bit
//   - string and []byte become String
//   - time.Time becomes a UTC DateTime and time.Duration an I64 of nanoseconds
//   - uuid.UUID becomes its canonical String
//   - named integers with a String method are enums and become that String
//   - slices and arrays become Arrays, maps with string or integer keys hash
//     Objects, and structs sorted Objects keyed through their `value` tags
//
// Types implementing ToValuer convert themselves.
func From(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case Number:
		return NumberValue(t), nil
	case bool:
		return Bool(t), nil
	case string:
		return Str(t), nil
	case []byte:
		return Str(string(t)), nil
	case int:
		return Num(t), nil
	case int64:
		return Num(t), nil
	case int32:
		return Num(t), nil
	case uint64:
		return Num(t), nil
	case float64:
		return Num(t), nil
	case time.Time:
		return DateTimeValue(DateTimeFromTime(t)), nil
	case time.Duration:
		return Num(int64(t)), nil
	case uuid.UUID:
		return Str(t.String()), nil
	case *big.Int:
		if t == nil {
			return Null(), nil
		}
		n, err := NumberFromBigInt(t)
		if err != nil {
			return Value{}, err
		}
		return NumberValue(n), nil
	}
	return fromReflect(reflect.ValueOf(x), 0)
}

// MustFrom is From that panics on error.
func MustFrom(x any) Value {
	v, err := From(x)
	if err != nil {
		panic(err)
	}
	return v
}

func FromSlice[T any](s []T) (Value, error) {
	arr := Array{values: make([]Value, 0, len(s))}
	for i, elem := range s {
		v, err := From(elem)
		if err != nil {
			return Value{}, wrapPath("["+strconv.Itoa(i)+"]", err)
		}
		arr.Push(v)
	}
	return ArrayValue(arr), nil
}

// FromMap builds a hash Object from m.
func FromMap[K comparable, V any](m map[K]V) (Value, error) {
	return fromGoMap(m, NewHashObject())
}

// FromSortedMap builds a sorted Object from m.
func FromSortedMap[K comparable, V any](m map[K]V) (Value, error) {
	return fromGoMap(m, NewSortedObject())
}

func fromGoMap[K comparable, V any](m map[K]V, obj Object) (Value, error) {
	for k, elem := range m {
		key, err := KeyOf(k)
		if err != nil {
			return Value{}, err
		}
		v, err := From(elem)
		if err != nil {
			return Value{}, wrapPath("."+key.String(), err)
		}
		obj.Insert(key, v)
	}
	return ObjectValue(obj), nil
}

func FromPairs(pairs ...Pair) Value { return ObjectValue(ObjectFromPairs(pairs...)) }

// Option converts the pointee of p, or returns Null when p is nil.
func Option[T any](p *T) (Value, error) {
	if p == nil {
		return Null(), nil
	}
	return From(*p)
}

func wrapPath(step string, err error) error {
	if pe, ok := err.(*PathError); ok {
		return &PathError{Path: step + pe.Path, Err: pe.Err}
	}
	return &PathError{Path: step, Err: err}
}

func isEnum(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return typ.PkgPath() != "" && typ != durationType && typ.Implements(stringerType)
	}
	return false
}

func fromReflect(rv reflect.Value, opts fieldOpts) (Value, error) {
	if !rv.IsValid() {
		return Null(), nil
	}
	typ := rv.Type()

	switch typ {
	case timeType:
		return fromTime(rv.Interface().(time.Time), opts)
	case durationType:
		return Num(rv.Int()), nil
	case uuidType:
		return Str(rv.Interface().(uuid.UUID).String()), nil
	case valueType:
		return rv.Interface().(Value), nil
	case bigIntType:
		bi := rv.Interface().(big.Int)
		return From(&bi)
	}
	if typ.Kind() != reflect.Pointer && typ.Kind() != reflect.Interface && typ.Implements(toValuerType) {
		return rv.Interface().(ToValuer).ToValue(), nil
	}
	if isEnum(typ) {
		return Str(rv.Interface().(fmt.Stringer).String()), nil
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		if rv.Kind() == reflect.Pointer && typ.Implements(toValuerType) {
			return rv.Interface().(ToValuer).ToValue(), nil
		}
		return fromReflect(rv.Elem(), opts)
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		n, _ := numberFromReflect(rv)
		return NumberValue(n), nil
	case reflect.String:
		if opts&optUUID != 0 {
			id, err := uuid.Parse(rv.String())
			if err != nil {
				return Value{}, fmt.Errorf("%w: %v", ErrInvalid, err)
			}
			return Str(id.String()), nil
		}
		return Str(rv.String()), nil
	case reflect.Slice:
		if rv.IsNil() && typ.Elem().Kind() != reflect.Uint8 {
			return ArrayValue(Array{}), nil
		}
		if typ.Elem().Kind() == reflect.Uint8 {
			return Str(string(rv.Bytes())), nil
		}
		return fromSequence(rv)
	case reflect.Array:
		if opts&optUUID != 0 && rv.Len() == 16 && typ.Elem().Kind() == reflect.Uint8 {
			var id uuid.UUID
			reflect.Copy(reflect.ValueOf(id[:]), rv)
			return Str(id.String()), nil
		}
		return fromSequence(rv)
	case reflect.Map:
		return fromReflectMap(rv)
	case reflect.Struct:
		return fromStruct(rv)
	}
	return Value{}, fmt.Errorf("%w: cannot convert %s", ErrType, typ)
}

func fromTime(t time.Time, opts fieldOpts) (Value, error) {
	switch {
	case opts&optDate != 0:
		d, err := DateFromYMD(t.Date())
		return DateTimeValue(d), err
	case opts&optTime != 0:
		tod, err := TimeFromHMS(t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
		return DateTimeValue(tod), err
	}
	return DateTimeValue(DateTimeFromTime(t)), nil
}

func fromSequence(rv reflect.Value) (Value, error) {
	arr := Array{values: make([]Value, 0, rv.Len())}
	for i := range rv.Len() {
		v, err := fromReflect(rv.Index(i), 0)
		if err != nil {
			return Value{}, wrapPath("["+strconv.Itoa(i)+"]", err)
		}
		arr.Push(v)
	}
	return ArrayValue(arr), nil
}

func fromReflectMap(rv reflect.Value) (Value, error) {
	obj := Object{backing: newHashBacking(rv.Len())}
	iter := rv.MapRange()
	for iter.Next() {
		key, err := KeyOf(iter.Key().Interface())
		if err != nil {
			return Value{}, err
		}
		v, err := fromReflect(iter.Value(), 0)
		if err != nil {
			return Value{}, wrapPath("."+key.String(), err)
		}
		obj.Insert(key, v)
	}
	return ObjectValue(obj), nil
}

// fromStruct builds a sorted Object so field output does not depend on
// declaration order.
func fromStruct(rv reflect.Value) (Value, error) {
	obj := NewSortedObject()
	for _, info := range structFields(rv.Type()) {
		fv := rv.Field(info.index)
		if info.has(optOmitEmpty) && fv.IsZero() {
			continue
		}
		v, err := fromReflect(fv, info.opts)
		if err != nil {
			return Value{}, wrapPath("."+info.key, err)
		}
		if info.has(optInline) {
			v = Str(v.ToJSON(JSONInline))
		}
		obj.Insert(info.key, v)
	}
	return ObjectValue(obj), nil
}
