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
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// NumberType identifies the width held by a Number.
type NumberType int8

const (
	NumberUnknown NumberType = iota
	NumberU8
	NumberU16
	NumberU32
	NumberU64
	NumberU128
	NumberI8
	NumberI16
	NumberI32
	NumberI64
	NumberI128
	NumberF32
	NumberF64
)

func (nt NumberType) String() string {
	switch nt {
	case NumberU8:
		return "U8"
	case NumberU16:
		return "U16"
	case NumberU32:
		return "U32"
	case NumberU64:
		return "U64"
	case NumberU128:
		return "U128"
	case NumberI8:
		return "I8"
	case NumberI16:
		return "I16"
	case NumberI32:
		return "I32"
	case NumberI64:
		return "I64"
	case NumberI128:
		return "I128"
	case NumberF32:
		return "F32"
	case NumberF64:
		return "F64"
	}
	return "Unknown"
}

var (
	maxU128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	maxI128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minI128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// Number holds exactly one numeric width at a time. The zero Number holds no
// width at all and reports NumberUnknown.
//
// Widths up to 64 bits live in bits (floats as their IEEE 754 pattern, signed
// ints sign extended). The 128 bit widths live in wide.
type Number struct {
	typ  NumberType
	bits uint64
	wide *big.Int
}

// NumberFrom builds a Number keeping the Go width of v. int and uint are
// treated as their 64 bit counterparts.
func NumberFrom[T constraints.Integer | constraints.Float](v T) Number {
	n, _ := numberFromReflect(reflect.ValueOf(v))
	return n
}

func numberFromReflect(rv reflect.Value) (Number, bool) {
	var n Number
	switch rv.Kind() {
	case reflect.Int8:
		n.SetI8(int8(rv.Int()))
	case reflect.Int16:
		n.SetI16(int16(rv.Int()))
	case reflect.Int32:
		n.SetI32(int32(rv.Int()))
	case reflect.Int, reflect.Int64:
		n.SetI64(rv.Int())
	case reflect.Uint8:
		n.SetU8(uint8(rv.Uint()))
	case reflect.Uint16:
		n.SetU16(uint16(rv.Uint()))
	case reflect.Uint32:
		n.SetU32(uint32(rv.Uint()))
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		n.SetU64(rv.Uint())
	case reflect.Float32:
		n.SetF32(float32(rv.Float()))
	case reflect.Float64:
		n.SetF64(rv.Float())
	default:
		return Number{}, false
	}
	return n, true
}

// NumberFromUsize picks the narrowest unsigned width able to hold v.
func NumberFromUsize(v uint) Number {
	var n Number
	switch {
	case v <= math.MaxUint8:
		n.SetU8(uint8(v))
	case v <= math.MaxUint16:
		n.SetU16(uint16(v))
	case v <= math.MaxUint32:
		n.SetU32(uint32(v))
	default:
		n.SetU64(uint64(v))
	}
	return n
}

// NumberFromBigInt stores v as an I128, or as a U128 when v is positive and
// too large for I128.
func NumberFromBigInt(v *big.Int) (Number, error) {
	var n Number
	if fitsWide(NumberI128, v) {
		return n, n.SetI128(v)
	}
	return n, n.SetU128(v)
}

func fitsWide(nt NumberType, v *big.Int) bool {
	if v == nil {
		return false
	}
	switch nt {
	case NumberU128:
		return v.Sign() >= 0 && v.Cmp(maxU128) <= 0
	case NumberI128:
		return v.Cmp(minI128) >= 0 && v.Cmp(maxI128) <= 0
	}
	return false
}

// Type returns the held width.
func (n Number) Type() NumberType { return n.typ }

// Clean drops the held width.
func (n *Number) Clean() { *n = Number{} }

func (n Number) IsInteger() bool { return n.typ >= NumberU8 && n.typ <= NumberI128 }

func (n Number) IsFloat() bool { return n.typ == NumberF32 || n.typ == NumberF64 }

func (n Number) IsUnsigned() bool { return n.typ >= NumberU8 && n.typ <= NumberU128 }

// IsSigned reports whether the held value is below zero.
func (n Number) IsSigned() bool {
	switch n.typ {
	case NumberI8, NumberI16, NumberI32, NumberI64:
		return int64(n.bits) < 0
	case NumberI128:
		return n.wide.Sign() < 0
	case NumberF32:
		return math.Float32frombits(uint32(n.bits)) < 0
	case NumberF64:
		return math.Float64frombits(n.bits) < 0
	}
	return false
}

func (n Number) IsZero() bool {
	switch n.typ {
	case NumberUnknown:
		return false
	case NumberU128, NumberI128:
		return n.wide.Sign() == 0
	case NumberF32:
		return math.Float32frombits(uint32(n.bits)) == 0
	case NumberF64:
		return math.Float64frombits(n.bits) == 0
	}
	return n.bits == 0
}

func (n Number) IsPositive() bool {
	return n.typ != NumberUnknown && !n.IsSigned() && !n.IsZero()
}

func (n Number) IsNegative() bool { return n.IsSigned() && !n.IsZero() }

// Equal reports whether both numbers hold the same width and the same value.
// Floats compare by value: -0 equals 0 and NaN equals nothing.
func (n Number) Equal(other Number) bool {
	if n.typ != other.typ {
		return false
	}
	switch n.typ {
	case NumberU128, NumberI128:
		return n.wide.Cmp(other.wide) == 0
	case NumberF32:
		return math.Float32frombits(uint32(n.bits)) == math.Float32frombits(uint32(other.bits))
	case NumberF64:
		return math.Float64frombits(n.bits) == math.Float64frombits(other.bits)
	}
	return n.bits == other.bits
}

// Int64 widens any integer width to an int64. ok is false for floats and for
// values out of range.
func (n Number) Int64() (int64, bool) {
	switch n.typ {
	case NumberI8, NumberI16, NumberI32, NumberI64:
		return int64(n.bits), true
	case NumberU8, NumberU16, NumberU32:
		return int64(n.bits), true
	case NumberU64:
		return int64(n.bits), n.bits <= math.MaxInt64
	case NumberU128, NumberI128:
		if n.wide.IsInt64() {
			return n.wide.Int64(), true
		}
	}
	return 0, false
}

// Uint64 widens any non negative integer width to a uint64.
func (n Number) Uint64() (uint64, bool) {
	switch n.typ {
	case NumberU8, NumberU16, NumberU32, NumberU64:
		return n.bits, true
	case NumberI8, NumberI16, NumberI32, NumberI64:
		return n.bits, int64(n.bits) >= 0
	case NumberU128, NumberI128:
		if n.wide.IsUint64() {
			return n.wide.Uint64(), true
		}
	}
	return 0, false
}

// Float64 converts any width to a float64, possibly losing precision.
func (n Number) Float64() (float64, bool) {
	switch n.typ {
	case NumberUnknown:
		return 0, false
	case NumberF32:
		return float64(math.Float32frombits(uint32(n.bits))), true
	case NumberF64:
		return math.Float64frombits(n.bits), true
	case NumberU128, NumberI128:
		f, _ := new(big.Float).SetInt(n.wide).Float64()
		return f, true
	}
	if n.IsUnsigned() {
		return float64(n.bits), true
	}
	return float64(int64(n.bits)), true
}

// BigInt returns any integer width as a new big.Int.
func (n Number) BigInt() (*big.Int, bool) {
	switch {
	case n.typ == NumberU128 || n.typ == NumberI128:
		return new(big.Int).Set(n.wide), true
	case n.IsUnsigned():
		return new(big.Int).SetUint64(n.bits), true
	case n.IsInteger():
		return big.NewInt(int64(n.bits)), true
	}
	return nil, false
}

// String formats the held value, or "Unknown" when the Number is empty. Floats
// always carry a fractional part so that the text parses back as a float.
func (n Number) String() string {
	switch n.typ {
	case NumberUnknown:
		return "Unknown"
	case NumberU128, NumberI128:
		return n.wide.String()
	case NumberF32:
		return formatFloat(float64(math.Float32frombits(uint32(n.bits))), 32)
	case NumberF64:
		return formatFloat(math.Float64frombits(n.bits), 64)
	}
	if n.IsUnsigned() {
		return strconv.FormatUint(n.bits, 10)
	}
	return strconv.FormatInt(int64(n.bits), 10)
}

func formatFloat(f float64, bitSize int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, bitSize)
	}
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// parse order for textual numbers. The order decides which width a literal
// lands in: "300" is an I32 even though it would fit a U16, and any decimal
// literal that is not an i32 becomes an F64.
var parseOrder = [...]func(string) (Number, bool){
	parseSigned(NumberI32, 32),
	parseFloat(NumberF64, 64),
	parseSigned(NumberI8, 8),
	parseSigned(NumberI16, 16),
	parseSigned(NumberI64, 64),
	parseWide(NumberI128),
	parseUnsigned(NumberU8, 8),
	parseUnsigned(NumberU16, 16),
	parseUnsigned(NumberU32, 32),
	parseUnsigned(NumberU64, 64),
	parseWide(NumberU128),
	parseFloat(NumberF32, 32),
}

// ParseNumber parses s trying each width in turn and returns the first that
// succeeds. It fails with ErrNotNumber.
func ParseNumber(s string) (Number, error) {
	for _, parse := range parseOrder {
		if n, ok := parse(s); ok {
			return n, nil
		}
	}
	return Number{}, fmt.Errorf("%w: %q", ErrNotNumber, s)
}

func parseSigned(nt NumberType, bitSize int) func(string) (Number, bool) {
	return func(s string) (Number, bool) {
		v, err := strconv.ParseInt(s, 10, bitSize)
		if err != nil {
			return Number{}, false
		}
		return Number{typ: nt, bits: uint64(v)}, true
	}
}

func parseUnsigned(nt NumberType, bitSize int) func(string) (Number, bool) {
	return func(s string) (Number, bool) {
		v, err := strconv.ParseUint(s, 10, bitSize)
		if err != nil {
			return Number{}, false
		}
		return Number{typ: nt, bits: v}, true
	}
}

func parseFloat(nt NumberType, bitSize int) func(string) (Number, bool) {
	return func(s string) (Number, bool) {
		// out of range literals parse to ±Inf
		v, err := strconv.ParseFloat(s, bitSize)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Number{}, false
		}
		var n Number
		if nt == NumberF32 {
			n.SetF32(float32(v))
		} else {
			n.SetF64(v)
		}
		return n, true
	}
}

func parseWide(nt NumberType) func(string) (Number, bool) {
	return func(s string) (Number, bool) {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok || !fitsWide(nt, v) {
			return Number{}, false
		}
		return Number{typ: nt, wide: v}, true
	}
}
