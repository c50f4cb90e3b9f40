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
	"cmp"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ValueKey is the key type of an Object: either a string or an unsigned
// number. It is comparable, so it can be used as a Go map key.
type ValueKey struct {
	isNum bool
	s     string
	n     uint
}

func StringKey(s string) ValueKey { return ValueKey{s: s} }

func NumberKey(n uint) ValueKey { return ValueKey{isNum: true, n: n} }

func (k ValueKey) IsString() bool { return !k.isNum }

func (k ValueKey) IsNumber() bool { return k.isNum }

// AsUsize returns the numeric form of the key. String keys are parsed as
// decimal and fail with ErrNotNumber when they are not numeric.
func (k ValueKey) AsUsize() (uint, error) {
	if k.isNum {
		return k.n, nil
	}
	n, err := strconv.ParseUint(k.s, 10, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("%w: key %q", ErrNotNumber, k.s)
	}
	return uint(n), nil
}

func (k ValueKey) String() string {
	if k.isNum {
		return strconv.FormatUint(uint64(k.n), 10)
	}
	return k.s
}

// Compare orders every string key before every number key, then strings
// lexically and numbers numerically.
func (k ValueKey) Compare(other ValueKey) int {
	switch {
	case k.isNum != other.isNum:
		if k.isNum {
			return 1
		}
		return -1
	case k.isNum:
		return cmp.Compare(k.n, other.n)
	}
	return strings.Compare(k.s, other.s)
}

func (k ValueKey) ValueKey() ValueKey { return k }

// Keyer is implemented by types that can act as an Object key.
type Keyer interface {
	ValueKey() ValueKey
}

// KeyOf resolves key to a ValueKey. Strings never become number keys, only
// integer typed keys do, and those must not be negative.
func KeyOf(key any) (ValueKey, error) {
	switch k := key.(type) {
	case string:
		return StringKey(k), nil
	case Keyer:
		return k.ValueKey(), nil
	case uint:
		return NumberKey(k), nil
	case int:
		if k < 0 {
			return ValueKey{}, fmt.Errorf("%w: negative key %d", ErrIndex, k)
		}
		return NumberKey(uint(k)), nil
	}

	rv := reflect.ValueOf(key)
	switch rv.Kind() {
	case reflect.String:
		return StringKey(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() < 0 {
			return ValueKey{}, fmt.Errorf("%w: negative key %d", ErrIndex, rv.Int())
		}
		return NumberKey(uint(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return NumberKey(uint(rv.Uint())), nil
	}
	return ValueKey{}, fmt.Errorf("%w: %T cannot be used as a key", ErrType, key)
}

func mustKey(key any) ValueKey {
	k, err := KeyOf(key)
	if err != nil {
		panic(err)
	}
	return k
}
