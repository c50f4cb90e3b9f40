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
	"math"
	"math/big"
)

func (n *Number) SetU8(v uint8) { *n = Number{typ: NumberU8, bits: uint64(v)} }

func (n Number) GetU8() (uint8, bool) {
	if n.typ != NumberU8 {
		return 0, false
	}
	return uint8(n.bits), true
}

func (n Number) MustGetU8() uint8 {
	v, ok := n.GetU8()
	if !ok {
		panic(fmt.Errorf("%w: number holds %s, not %s", ErrType, n.typ, NumberU8))
	}
	return v
}

func (n Number) IsU8() bool { return n.typ == NumberU8 }

func (n *Number) SetU16(v uint16) { *n = Number{typ: NumberU16, bits: uint64(v)} }

func (n Number) GetU16() (uint16, bool) {
	if n.typ != NumberU16 {
		return 0, false
	}
	return uint16(n.bits), true
}

func (n Number) MustGetU16() uint16 {
	v, ok := n.GetU16()
	if !ok {
		panic(fmt.Errorf("%w: number holds %s, not %s", ErrType, n.typ, NumberU16))
	}
	return v
}

func (n Number) IsU16() bool { return n.typ == NumberU16 }

func (n *Number) SetU32(v uint32) { *n = Number{typ: NumberU32, bits: uint64(v)} }

func (n Number) GetU32() (uint32, bool) {
	if n.typ != NumberU32 {
		return 0, false
	}
	return uint32(n.bits), true
}

func (n Number) MustGetU32() uint32 {
	v, ok := n.GetU32()
	if !ok {
		panic(fmt.Errorf("%w: number holds %s, not %s", ErrType, n.typ, NumberU32))
	}
	return v
}

func (n Number) IsU32() bool { return n.typ == NumberU32 }

func (n *Number) SetU64(v uint64) { *n = Number{typ: NumberU64, bits: uint64(v)} }

func (n Number) GetU64() (uint64, bool) {
	if n.typ != NumberU64 {
		return 0, false
	}
	return uint64(n.bits), true
}

func (n Number) MustGetU64() uint64 {
	v, ok := n.GetU64()
	if !ok {
		panic(fmt.Errorf("%w: number holds %s, not %s", ErrType, n.typ, NumberU64))
	}
	return v
}

func (n Number) IsU64() bool { return n.typ == NumberU64 }

func (n *Number) SetI8(v int8) { *n = Number{typ: NumberI8, bits: uint64(int64(v))} }

func (n Number) GetI8() (int8, bool) {
	if n.typ != NumberI8 {
		return 0, false
	}
	return int8(int64(n.bits)), true
}

func (n Number) MustGetI8() int8 {
	v, ok := n.GetI8()
	if !ok {
		panic(fmt.Errorf("%w: number holds %s, not %s", ErrType, n.typ, NumberI8))
	}
	return v
}

func (n Number) IsI8() bool { return n.typ == NumberI8 }

func (n *Number) SetI16(v int16) { *n = Number{typ: NumberI16, bits: uint64(int64(v))} }

func (n Number) GetI16() (int16, bool) {
	if n.typ != NumberI16 {
		return 0, false
	}
	return int16(int64(n.bits)), true
}

func (n Number) MustGetI16() int16 {
	v, ok := n.GetI16()
	if !ok {
		panic(fmt.Errorf("%w: number holds %s, not %s", ErrType, n.typ, NumberI16))
	}
	return v
}

func (n Number) IsI16() bool { return n.typ == NumberI16 }

func (n *Number) SetI32(v int32) { *n = Number{typ: NumberI32, bits: uint64(int64(v))} }

func (n Number) GetI32() (int32, bool) {
	if n.typ != NumberI32 {
		return 0, false
	}
	return int32(int64(n.bits)), true
}

func (n Number) MustGetI32() int32 {
	v, ok := n.GetI32()
	if !ok {
		panic(fmt.Errorf("%w: number holds %s, not %s", ErrType, n.typ, NumberI32))
	}
	return v
}

func (n Number) IsI32() bool { return n.typ == NumberI32 }

func (n *Number) SetI64(v int64) { *n = Number{typ: NumberI64, bits: uint64(int64(v))} }

func (n Number) GetI64() (int64, bool) {
	if n.typ != NumberI64 {
		return 0, false
	}
	return int64(int64(n.bits)), true
}

func (n Number) MustGetI64() int64 {
	v, ok := n.GetI64()
	if !ok {
		panic(fmt.Errorf("%w: number holds %s, not %s", ErrType, n.typ, NumberI64))
	}
	return v
}

func (n Number) IsI64() bool { return n.typ == NumberI64 }

func (n *Number) SetF32(v float32) { *n = Number{typ: NumberF32, bits: uint64(math.Float32bits(v))} }

func (n Number) GetF32() (float32, bool) {
	if n.typ != NumberF32 {
		return 0, false
	}
	return math.Float32frombits(uint32(n.bits)), true
}

func (n Number) MustGetF32() float32 {
	v, ok := n.GetF32()
	if !ok {
		panic(fmt.Errorf("%w: number holds %s, not %s", ErrType, n.typ, NumberF32))
	}
	return v
}

func (n Number) IsF32() bool { return n.typ == NumberF32 }

func (n *Number) SetF64(v float64) { *n = Number{typ: NumberF64, bits: math.Float64bits(v)} }

func (n Number) GetF64() (float64, bool) {
	if n.typ != NumberF64 {
		return 0, false
	}
	return math.Float64frombits(n.bits), true
}

func (n Number) MustGetF64() float64 {
	v, ok := n.GetF64()
	if !ok {
		panic(fmt.Errorf("%w: number holds %s, not %s", ErrType, n.typ, NumberF64))
	}
	return v
}

func (n Number) IsF64() bool { return n.typ == NumberF64 }

// SetU128 stores a copy of v. It fails when v does not fit in the width.
func (n *Number) SetU128(v *big.Int) error {
	if !fitsWide(NumberU128, v) {
		return fmt.Errorf("%w: %s does not fit in %s", ErrInvalid, v, NumberU128)
	}
	*n = Number{typ: NumberU128, wide: new(big.Int).Set(v)}
	return nil
}

// GetU128 returns a copy of the held value.
func (n Number) GetU128() (*big.Int, bool) {
	if n.typ != NumberU128 {
		return nil, false
	}
	return new(big.Int).Set(n.wide), true
}

func (n Number) MustGetU128() *big.Int {
	v, ok := n.GetU128()
	if !ok {
		panic(fmt.Errorf("%w: number holds %s, not %s", ErrType, n.typ, NumberU128))
	}
	return v
}

func (n Number) IsU128() bool { return n.typ == NumberU128 }

// SetI128 stores a copy of v. It fails when v does not fit in the width.
func (n *Number) SetI128(v *big.Int) error {
	if !fitsWide(NumberI128, v) {
		return fmt.Errorf("%w: %s does not fit in %s", ErrInvalid, v, NumberI128)
	}
	*n = Number{typ: NumberI128, wide: new(big.Int).Set(v)}
	return nil
}

// GetI128 returns a copy of the held value.
func (n Number) GetI128() (*big.Int, bool) {
	if n.typ != NumberI128 {
		return nil, false
	}
	return new(big.Int).Set(n.wide), true
}

func (n Number) MustGetI128() *big.Int {
	v, ok := n.GetI128()
	if !ok {
		panic(fmt.Errorf("%w: number holds %s, not %s", ErrType, n.typ, NumberI128))
	}
	return v
}

func (n Number) IsI128() bool { return n.typ == NumberI128 }
