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

import "math/big"

// Width specific accessors. Each returns a *TypeMismatchError when the value is
// not a Number, and ok=false when the Number holds another width.

func (v Value) GetU8() (uint8, bool, error) {
	if v.kind != KindNumber {
		return 0, false, mismatch("GetU8", v.kind, KindNumber)
	}
	x, ok := v.num.GetU8()
	return x, ok, nil
}

func (v Value) GetU16() (uint16, bool, error) {
	if v.kind != KindNumber {
		return 0, false, mismatch("GetU16", v.kind, KindNumber)
	}
	x, ok := v.num.GetU16()
	return x, ok, nil
}

func (v Value) GetU32() (uint32, bool, error) {
	if v.kind != KindNumber {
		return 0, false, mismatch("GetU32", v.kind, KindNumber)
	}
	x, ok := v.num.GetU32()
	return x, ok, nil
}

func (v Value) GetU64() (uint64, bool, error) {
	if v.kind != KindNumber {
		return 0, false, mismatch("GetU64", v.kind, KindNumber)
	}
	x, ok := v.num.GetU64()
	return x, ok, nil
}

func (v Value) GetU128() (*big.Int, bool, error) {
	if v.kind != KindNumber {
		return nil, false, mismatch("GetU128", v.kind, KindNumber)
	}
	x, ok := v.num.GetU128()
	return x, ok, nil
}

func (v Value) GetI8() (int8, bool, error) {
	if v.kind != KindNumber {
		return 0, false, mismatch("GetI8", v.kind, KindNumber)
	}
	x, ok := v.num.GetI8()
	return x, ok, nil
}

func (v Value) GetI16() (int16, bool, error) {
	if v.kind != KindNumber {
		return 0, false, mismatch("GetI16", v.kind, KindNumber)
	}
	x, ok := v.num.GetI16()
	return x, ok, nil
}

func (v Value) GetI32() (int32, bool, error) {
	if v.kind != KindNumber {
		return 0, false, mismatch("GetI32", v.kind, KindNumber)
	}
	x, ok := v.num.GetI32()
	return x, ok, nil
}

func (v Value) GetI64() (int64, bool, error) {
	if v.kind != KindNumber {
		return 0, false, mismatch("GetI64", v.kind, KindNumber)
	}
	x, ok := v.num.GetI64()
	return x, ok, nil
}

func (v Value) GetI128() (*big.Int, bool, error) {
	if v.kind != KindNumber {
		return nil, false, mismatch("GetI128", v.kind, KindNumber)
	}
	x, ok := v.num.GetI128()
	return x, ok, nil
}

func (v Value) GetF32() (float32, bool, error) {
	if v.kind != KindNumber {
		return 0, false, mismatch("GetF32", v.kind, KindNumber)
	}
	x, ok := v.num.GetF32()
	return x, ok, nil
}

func (v Value) GetF64() (float64, bool, error) {
	if v.kind != KindNumber {
		return 0, false, mismatch("GetF64", v.kind, KindNumber)
	}
	x, ok := v.num.GetF64()
	return x, ok, nil
}

// The Must accessors panic when the value is not a Number holding the width.

func (v Value) MustGetU8() uint8 {
	if v.kind != KindNumber {
		panic(mismatch("MustGetU8", v.kind, KindNumber))
	}
	return v.num.MustGetU8()
}

func (v Value) MustGetU16() uint16 {
	if v.kind != KindNumber {
		panic(mismatch("MustGetU16", v.kind, KindNumber))
	}
	return v.num.MustGetU16()
}

func (v Value) MustGetU32() uint32 {
	if v.kind != KindNumber {
		panic(mismatch("MustGetU32", v.kind, KindNumber))
	}
	return v.num.MustGetU32()
}

func (v Value) MustGetU64() uint64 {
	if v.kind != KindNumber {
		panic(mismatch("MustGetU64", v.kind, KindNumber))
	}
	return v.num.MustGetU64()
}

func (v Value) MustGetU128() *big.Int {
	if v.kind != KindNumber {
		panic(mismatch("MustGetU128", v.kind, KindNumber))
	}
	return v.num.MustGetU128()
}

func (v Value) MustGetI8() int8 {
	if v.kind != KindNumber {
		panic(mismatch("MustGetI8", v.kind, KindNumber))
	}
	return v.num.MustGetI8()
}

func (v Value) MustGetI16() int16 {
	if v.kind != KindNumber {
		panic(mismatch("MustGetI16", v.kind, KindNumber))
	}
	return v.num.MustGetI16()
}

func (v Value) MustGetI32() int32 {
	if v.kind != KindNumber {
		panic(mismatch("MustGetI32", v.kind, KindNumber))
	}
	return v.num.MustGetI32()
}

func (v Value) MustGetI64() int64 {
	if v.kind != KindNumber {
		panic(mismatch("MustGetI64", v.kind, KindNumber))
	}
	return v.num.MustGetI64()
}

func (v Value) MustGetI128() *big.Int {
	if v.kind != KindNumber {
		panic(mismatch("MustGetI128", v.kind, KindNumber))
	}
	return v.num.MustGetI128()
}

func (v Value) MustGetF32() float32 {
	if v.kind != KindNumber {
		panic(mismatch("MustGetF32", v.kind, KindNumber))
	}
	return v.num.MustGetF32()
}

func (v Value) MustGetF64() float64 {
	if v.kind != KindNumber {
		panic(mismatch("MustGetF64", v.kind, KindNumber))
	}
	return v.num.MustGetF64()
}

func (v Value) IsU8() bool { return v.kind == KindNumber && v.num.IsU8() }
func (v Value) IsU16() bool { return v.kind == KindNumber && v.num.IsU16() }
func (v Value) IsU32() bool { return v.kind == KindNumber && v.num.IsU32() }
func (v Value) IsU64() bool { return v.kind == KindNumber && v.num.IsU64() }
func (v Value) IsU128() bool { return v.kind == KindNumber && v.num.IsU128() }
func (v Value) IsI8() bool { return v.kind == KindNumber && v.num.IsI8() }
func (v Value) IsI16() bool { return v.kind == KindNumber && v.num.IsI16() }
func (v Value) IsI32() bool { return v.kind == KindNumber && v.num.IsI32() }
func (v Value) IsI64() bool { return v.kind == KindNumber && v.num.IsI64() }
func (v Value) IsI128() bool { return v.kind == KindNumber && v.num.IsI128() }
func (v Value) IsF32() bool { return v.kind == KindNumber && v.num.IsF32() }
func (v Value) IsF64() bool { return v.kind == KindNumber && v.num.IsF64() }
