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

package value_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valu3/valu3-go/value"
)

func TestZeroValueIsUndefined(t *testing.T) {
	var v value.Value
	assert.True(t, v.IsUndefined())
	assert.True(t, v.IsNullOrUndefined())
	assert.Equal(t, value.KindUndefined, v.Kind())
	assert.Equal(t, "undefined", v.String())
	assert.True(t, value.Undefined().Equal(v))
	assert.False(t, value.Null().Equal(v))
}

func TestPushPop(t *testing.T) {
	v := value.MustFrom([]int{1, 2, 3})
	require.NoError(t, v.Push(value.Num(4)))

	last, err := v.Pop()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.True(t, last.Equal(value.Num(4)))

	n, err := v.Len()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	empty := value.ArrayOf()
	last, err = empty.Pop()
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestWrongKindReturnsTypeMismatch(t *testing.T) {
	v := value.Bool(true)

	_, err := v.Get("x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, value.ErrType))

	var tm *value.TypeMismatchError
	require.True(t, errors.As(err, &tm))
	assert.Equal(t, value.KindBoolean, tm.Actual)
	assert.Equal(t, []value.Kind{value.KindObject, value.KindArray}, tm.Expected)
	assert.Equal(t, "Get: type mismatch: expected Object or Array, got Boolean", err.Error())

	assert.ErrorIs(t, v.Push(value.Null()), value.ErrType)
	_, err = v.Insert("k", value.Null())
	assert.ErrorIs(t, err, value.ErrType)
	_, err = v.Len()
	assert.ErrorIs(t, err, value.ErrType)
	_, err = v.AsString()
	assert.ErrorIs(t, err, value.ErrType)
	assert.ErrorIs(t, v.Clean(), value.ErrType)
}

func TestNumberAccessorsOnValue(t *testing.T) {
	_, _, err := value.Null().GetI32()
	assert.ErrorIs(t, err, value.ErrType)
	assert.Panics(t, func() { value.Null().MustGetI32() })

	five := value.Num(int32(5))
	x, ok, err := five.GetI32()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.EqualValues(t, 5, x)

	_, ok, err = five.GetI64()
	require.NoError(t, err)
	assert.False(t, ok)

	assert.True(t, five.IsI32())
	assert.False(t, value.Str("5").IsI32())
	assert.Equal(t, value.NumberI32, five.NumberType())
	assert.Equal(t, value.NumberUnknown, value.Str("5").NumberType())
	assert.True(t, five.IsInteger())
	assert.True(t, five.IsPositive())
	assert.False(t, five.IsNegative())
	assert.False(t, value.Bool(true).IsZero())
}

func TestGetOnObjectAndArray(t *testing.T) {
	obj := value.ObjectValue(value.NewSortedObject())
	prev, err := obj.Insert("a", value.Num(1))
	require.NoError(t, err)
	assert.Nil(t, prev)

	prev, err = obj.Insert("a", value.Num(2))
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.True(t, prev.Equal(value.Num(1)))

	got, err := obj.Get("a")
	require.NoError(t, err)
	assert.True(t, got.Equal(value.Num(2)))

	_, err = obj.Get("missing")
	assert.ErrorIs(t, err, value.ErrNotFound)

	ok, err := obj.ContainsKey("a")
	require.NoError(t, err)
	assert.True(t, ok)

	removed, err := obj.Remove("a")
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.True(t, removed.Equal(value.Num(2)))

	empty, err := obj.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)

	arr := value.ArrayOf(value.Str("x"), value.Str("y"))
	got, err = arr.Get(1)
	require.NoError(t, err)
	assert.True(t, got.Equal(value.Str("y")))

	_, err = arr.Get(5)
	assert.ErrorIs(t, err, value.ErrIndex)
	_, err = arr.Get("1")
	assert.ErrorIs(t, err, value.ErrIndex)
	_, err = arr.Get(-1)
	assert.ErrorIs(t, err, value.ErrIndex)
}

func TestGetMutEditsInPlace(t *testing.T) {
	v := value.MustParse(`{"list": [1, 2]}`)
	list, err := v.GetMut("list")
	require.NoError(t, err)
	require.NoError(t, list.Push(value.Num(int32(3))))

	again, err := v.Get("list")
	require.NoError(t, err)
	n, err := again.Len()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestCloneIsDeep(t *testing.T) {
	orig := value.MustParse(`{"a": [1, {"b": "c"}]}`)
	clone := orig.Clone()
	require.True(t, orig.Equal(clone))

	inner, err := clone.GetMut("a")
	require.NoError(t, err)
	require.NoError(t, inner.Push(value.Null()))

	assert.False(t, orig.Equal(clone))
	a, err := orig.Get("a")
	require.NoError(t, err)
	n, _ := a.Len()
	assert.Equal(t, 2, n)
}

func TestEqualityComparesWidth(t *testing.T) {
	assert.True(t, value.Num(int32(1)).Equal(value.Num(int32(1))))
	assert.False(t, value.Num(int32(1)).Equal(value.Num(int64(1))))
	assert.False(t, value.Num(1.0).Equal(value.Num(float32(1.0))))
	assert.True(t, value.Str("a").Equal(value.StringBValue(value.NewStringB("a"))))
}

func TestIterKeysArraysByIndex(t *testing.T) {
	seq, err := value.ArrayOf(value.Str("a"), value.Str("b")).Iter()
	require.NoError(t, err)
	var keys []string
	for k, v := range seq {
		assert.True(t, k.IsNumber())
		keys = append(keys, k.String()+"="+v.String())
	}
	assert.Equal(t, []string{`0="a"`, `1="b"`}, keys)

	_, err = value.Num(1).Iter()
	assert.ErrorIs(t, err, value.ErrType)
}

func TestCleanNumber(t *testing.T) {
	v := value.Num(uint8(3))
	require.NoError(t, v.Clean())
	assert.True(t, v.IsNumber())
	assert.Equal(t, value.NumberUnknown, v.NumberType())
	assert.False(t, v.IsU8())
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "null", value.Null().String())
	assert.Equal(t, "true", value.Bool(true).String())
	assert.Equal(t, "1.5", value.Num(1.5).String())
	assert.Equal(t, "2.0", value.Num(2.0).String())
	assert.Equal(t, `"hi"`, value.Str("hi").String())
	assert.Equal(t, "[\n\t1,\n\t2\n]", value.ArrayOf(value.Num(1), value.Num(2)).String())
	assert.Equal(t, "[1, 2]", value.NewArray(value.Num(1), value.Num(2)).String())
}
