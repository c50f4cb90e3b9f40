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
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"github.com/google/uuid"
)

// EnumValuer lists the names of an enum in the order of their integer values,
// starting at zero. Decode uses it to turn a name back into the integer.
type EnumValuer interface {
	EnumValues() []string
}

var (
	fromValuerType      = reflect.TypeFor[FromValuer]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	enumValuerType      = reflect.TypeFor[EnumValuer]()
	numberType          = reflect.TypeFor[Number]()
	dateTimeType        = reflect.TypeFor[DateTime]()
	stringBType         = reflect.TypeFor[StringB]()
	arrayType           = reflect.TypeFor[Array]()
	objectType          = reflect.TypeFor[Object]()
)

// To decodes v into a new T.
func To[T any](v Value) (T, error) {
	var out T
	err := Decode(v, &out)
	return out, err
}

// Decode stores v into the value dest points to. It is the inverse of From:
//
//   - Null and Undefined set pointers, interfaces, slices and maps to nil
//   - integers must fit the destination width, floats accept any number
//   - structs are filled from Objects by the same key names From produces,
//     fields without a matching key are zeroed and unknown keys ignored
//   - an empty interface receives the ToAny form of v
//
// A failure below the top level is reported as a *PathError naming where it
// happened.
func Decode(v Value, dest any) error {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: decode destination must be a non-nil pointer, got %T", ErrInvalid, dest)
	}
	return decodeInto(v, rv.Elem(), 0)
}

func decodeInto(v Value, rv reflect.Value, opts fieldOpts) error {
	typ := rv.Type()

	if rv.CanAddr() && reflect.PointerTo(typ).Implements(fromValuerType) {
		return rv.Addr().Interface().(FromValuer).FromValue(v)
	}

	switch typ {
	case valueType:
		rv.Set(reflect.ValueOf(v))
		return nil
	case numberType:
		n, err := v.AsNumber()
		if err == nil {
			rv.Set(reflect.ValueOf(n))
		}
		return err
	case dateTimeType:
		dt, err := decodeDateTime(v)
		if err == nil {
			rv.Set(reflect.ValueOf(dt))
		}
		return err
	case stringBType:
		s, err := v.AsStringB()
		if err == nil {
			rv.Set(reflect.ValueOf(s))
		}
		return err
	case arrayType:
		a, err := v.AsArray()
		if err == nil {
			rv.Set(reflect.ValueOf(a))
		}
		return err
	case objectType:
		o, err := v.AsObject()
		if err == nil {
			rv.Set(reflect.ValueOf(o))
		}
		return err
	case timeType:
		dt, err := decodeDateTime(v)
		if err == nil {
			rv.Set(reflect.ValueOf(dt.Time()))
		}
		return err
	case durationType:
		n, err := v.AsNumber()
		if err != nil {
			return err
		}
		i, ok := n.Int64()
		if !ok {
			return fmt.Errorf("%w: %s does not fit a duration", ErrInvalid, n)
		}
		rv.SetInt(i)
		return nil
	case uuidType:
		s, err := v.AsString()
		if err != nil {
			return err
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		rv.Set(reflect.ValueOf(id))
		return nil
	case bigIntType:
		n, err := v.AsNumber()
		if err != nil {
			return err
		}
		bi, ok := n.BigInt()
		if !ok {
			return fmt.Errorf("%w: %s is not an integer", ErrInvalid, n)
		}
		rv.Set(reflect.ValueOf(*bi))
		return nil
	}

	if opts&optInline != 0 && v.IsString() {
		parsed, err := Parse(v.str.String())
		if err != nil {
			return err
		}
		v = parsed
	}

	if v.IsNullOrUndefined() {
		switch rv.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
			rv.Set(reflect.Zero(typ))
			return nil
		}
	}

	if v.IsString() && isEnumTarget(typ) {
		return decodeEnum(v.str.String(), rv)
	}

	switch rv.Kind() {
	case reflect.Pointer:
		elem := reflect.New(typ.Elem())
		if err := decodeInto(v, elem.Elem(), opts); err != nil {
			return err
		}
		rv.Set(elem)
		return nil
	case reflect.Interface:
		if typ.NumMethod() != 0 {
			return fmt.Errorf("%w: cannot decode into non-empty interface %s", ErrType, typ)
		}
		if out := ToAny(v); out != nil {
			rv.Set(reflect.ValueOf(out))
		} else {
			rv.Set(reflect.Zero(typ))
		}
		return nil
	case reflect.Bool:
		b, err := v.AsBool()
		if err == nil {
			rv.SetBool(b)
		}
		return err
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := v.AsNumber()
		if err != nil {
			return err
		}
		i, ok := n.Int64()
		if !ok || rv.OverflowInt(i) {
			return fmt.Errorf("%w: %s overflows %s", ErrInvalid, n, typ)
		}
		rv.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := v.AsNumber()
		if err != nil {
			return err
		}
		u, ok := n.Uint64()
		if !ok || rv.OverflowUint(u) {
			return fmt.Errorf("%w: %s overflows %s", ErrInvalid, n, typ)
		}
		rv.SetUint(u)
		return nil
	case reflect.Float32, reflect.Float64:
		n, err := v.AsNumber()
		if err != nil {
			return err
		}
		f, ok := n.Float64()
		if !ok {
			return fmt.Errorf("%w: empty number", ErrInvalid)
		}
		rv.SetFloat(f)
		return nil
	case reflect.String:
		s, err := v.AsString()
		if err != nil {
			return err
		}
		if opts&optUUID != 0 {
			if _, err := uuid.Parse(s); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalid, err)
			}
		}
		rv.SetString(s)
		return nil
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.Uint8 && v.IsString() {
			rv.SetBytes([]byte(v.str.String()))
			return nil
		}
		arr, err := v.AsArray()
		if err != nil {
			return err
		}
		out := reflect.MakeSlice(typ, arr.Len(), arr.Len())
		for i, elem := range arr.All() {
			if err := decodeInto(*elem, out.Index(i), 0); err != nil {
				return wrapPath("["+strconv.Itoa(i)+"]", err)
			}
		}
		rv.Set(out)
		return nil
	case reflect.Array:
		if opts&optUUID != 0 && v.IsString() && typ.Len() == 16 && typ.Elem().Kind() == reflect.Uint8 {
			id, err := uuid.Parse(v.str.String())
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalid, err)
			}
			reflect.Copy(rv, reflect.ValueOf(id[:]))
			return nil
		}
		arr, err := v.AsArray()
		if err != nil {
			return err
		}
		if arr.Len() != typ.Len() {
			return fmt.Errorf("%w: %d elements for %s", ErrIndex, arr.Len(), typ)
		}
		for i, elem := range arr.All() {
			if err := decodeInto(*elem, rv.Index(i), 0); err != nil {
				return wrapPath("["+strconv.Itoa(i)+"]", err)
			}
		}
		return nil
	case reflect.Map:
		return decodeMap(v, rv)
	case reflect.Struct:
		return decodeStruct(v, rv)
	}
	return fmt.Errorf("%w: cannot decode into %s", ErrType, typ)
}

func decodeDateTime(v Value) (DateTime, error) {
	switch v.kind {
	case KindDateTime:
		return v.dt, nil
	case KindString:
		return ParseDateTime(v.str.String())
	}
	return DateTime{}, mismatch("Decode", v.kind, KindDateTime, KindString)
}

func isEnumTarget(typ reflect.Type) bool {
	if !isEnum(typ) && !typ.Implements(enumValuerType) {
		return false
	}
	ptr := reflect.PointerTo(typ)
	return ptr.Implements(textUnmarshalerType) || typ.Implements(enumValuerType)
}

func decodeEnum(name string, rv reflect.Value) error {
	if rv.CanAddr() {
		if tu, ok := rv.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return tu.UnmarshalText([]byte(name))
		}
	}
	names := rv.Interface().(EnumValuer).EnumValues()
	for i, n := range names {
		if n != name {
			continue
		}
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			rv.SetInt(int64(i))
		default:
			rv.SetUint(uint64(i))
		}
		return nil
	}
	return fmt.Errorf("%w: %q is not a %s", ErrInvalid, name, rv.Type())
}

func decodeMap(v Value, rv reflect.Value) error {
	obj, err := v.AsObject()
	if err != nil {
		return err
	}
	typ := rv.Type()
	out := reflect.MakeMapWithSize(typ, obj.Len())
	keyType := typ.Key()
	for k, elem := range obj.All() {
		key := reflect.New(keyType).Elem()
		if err := setMapKey(k, key); err != nil {
			return err
		}
		val := reflect.New(typ.Elem()).Elem()
		if err := decodeInto(*elem, val, 0); err != nil {
			return wrapPath("."+k.String(), err)
		}
		out.SetMapIndex(key, val)
	}
	rv.Set(out)
	return nil
}

func setMapKey(k ValueKey, key reflect.Value) error {
	switch key.Kind() {
	case reflect.String:
		key.SetString(k.String())
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := k.AsUsize()
		if err != nil {
			return err
		}
		if n > uint(1<<63-1) || key.OverflowInt(int64(n)) {
			return fmt.Errorf("%w: key %d overflows %s", ErrInvalid, n, key.Type())
		}
		key.SetInt(int64(n))
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := k.AsUsize()
		if err != nil {
			return err
		}
		if key.OverflowUint(uint64(n)) {
			return fmt.Errorf("%w: key %d overflows %s", ErrInvalid, n, key.Type())
		}
		key.SetUint(uint64(n))
		return nil
	}
	if key.Type() == reflect.TypeFor[ValueKey]() {
		key.Set(reflect.ValueOf(k))
		return nil
	}
	return fmt.Errorf("%w: map key %s", ErrType, key.Type())
}

func decodeStruct(v Value, rv reflect.Value) error {
	obj, err := v.AsObject()
	if err != nil {
		return err
	}
	rv.Set(reflect.Zero(rv.Type()))
	for _, info := range structFields(rv.Type()) {
		elem := obj.Get(info.key)
		if elem == nil {
			continue
		}
		if err := decodeInto(*elem, rv.Field(info.index), info.opts); err != nil {
			return wrapPath("."+info.key, err)
		}
	}
	return nil
}

// ToAny converts v to plain Go values: nil, bool, int64, uint64, float64,
// *big.Int for 128 bit numbers, string, time.Time, []any and map[string]any.
func ToAny(v Value) any {
	switch v.kind {
	case KindBoolean:
		return v.b
	case KindNumber:
		return numberToAny(v.num)
	case KindString:
		return v.str.String()
	case KindDateTime:
		return v.dt.Time()
	case KindArray:
		out := make([]any, 0, v.arr.Len())
		for _, elem := range v.arr.All() {
			out = append(out, ToAny(*elem))
		}
		return out
	case KindObject:
		out := make(map[string]any, v.obj.Len())
		for k, elem := range v.obj.All() {
			out[k.String()] = ToAny(*elem)
		}
		return out
	}
	return nil
}

func numberToAny(n Number) any {
	switch {
	case n.Type() == NumberU128 || n.Type() == NumberI128:
		bi, _ := n.BigInt()
		return bi
	case n.IsFloat():
		f, _ := n.Float64()
		return f
	case n.IsUnsigned():
		u, _ := n.Uint64()
		return u
	case n.IsInteger():
		i, _ := n.Int64()
		return i
	}
	return nil
}
