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
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valu3/valu3-go/value"
)

type Color int

const (
	Red Color = iota
	Green
	Blue
)

func (c Color) String() string { return c.EnumValues()[c] }

func (Color) EnumValues() []string { return []string{"Red", "Green", "Blue"} }

type Address struct {
	Street string
	Zip    uint32 `value:"zip_code"`
}

type User struct {
	ID        string    `value:"id,uuid"`
	FullName  string    `value:",snake"`
	Age       uint8     `value:"age"`
	Email     *string   `value:"email,omitempty"`
	Favorite  Color     `value:"color"`
	Born      time.Time `value:"born,date"`
	Addresses []Address `value:",camel"`
	Meta      map[string]int
	Secret    string `value:"-"`
	internal  int
}

func sampleUser() User {
	return User{
		ID:        "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		FullName:  "Ada Lovelace",
		Age:       36,
		Favorite:  Blue,
		Born:      time.Date(1815, time.December, 10, 0, 0, 0, 0, time.UTC),
		Addresses: []Address{{Street: "St James's Square", Zip: 1}},
		Meta:      map[string]int{"x": 1},
		Secret:    "hidden",
		internal:  7,
	}
}

func TestFromStruct(t *testing.T) {
	v, err := value.From(sampleUser())
	require.NoError(t, err)

	obj, err := v.AsObject()
	require.NoError(t, err)
	assert.True(t, obj.IsSorted())

	var keys []string
	for _, k := range obj.Keys() {
		keys = append(keys, k.String())
	}
	assert.Equal(t, []string{"Meta", "addresses", "age", "born", "color", "full_name", "id"}, keys)

	color, err := v.Get("color")
	require.NoError(t, err)
	assert.True(t, color.Equal(value.Str("Blue")))

	age, err := v.Get("age")
	require.NoError(t, err)
	assert.True(t, age.IsU8())

	born, err := v.Get("born")
	require.NoError(t, err)
	dt, err := born.AsDateTime()
	require.NoError(t, err)
	assert.Equal(t, value.DateKind, dt.Kind())

	addrs, err := v.Get("addresses")
	require.NoError(t, err)
	first, err := addrs.Get(0)
	require.NoError(t, err)
	gotZip, err := first.Get("zip_code")
	require.NoError(t, err)
	assert.True(t, gotZip.Equal(value.Num(uint32(1))))
}

func TestStructRoundTrip(t *testing.T) {
	in := sampleUser()
	email := "ada@example.com"
	in.Email = &email

	v, err := value.From(in)
	require.NoError(t, err)

	out, err := value.To[User](v)
	require.NoError(t, err)

	want := in
	want.Secret = ""
	want.internal = 0
	if diff := cmp.Diff(want, out, cmp.AllowUnexported(User{})); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}
}

func TestDecodeThroughJSONText(t *testing.T) {
	text, err := value.MarshalJSONValue(sampleUser(), value.JSONInline)
	require.NoError(t, err)

	var out User
	require.NoError(t, value.UnmarshalJSONValue(text, &out))
	assert.Equal(t, Blue, out.Favorite)
	assert.Equal(t, uint8(36), out.Age)
	assert.Equal(t, "Ada Lovelace", out.FullName)
	assert.Nil(t, out.Email)
	assert.Equal(t, 1815, out.Born.Year())
}

func TestFromPrimitives(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	tests := []struct {
		in   any
		want value.Value
	}{
		{nil, value.Null()},
		{(*int)(nil), value.Null()},
		{true, value.Bool(true)},
		{int8(-1), value.Num(int8(-1))},
		{uint16(9), value.Num(uint16(9))},
		{float32(1.5), value.Num(float32(1.5))},
		{"s", value.Str("s")},
		{[]byte("raw"), value.Str("raw")},
		{id, value.Str("6ba7b810-9dad-11d1-80b4-00c04fd430c8")},
		{time.Second, value.Num(int64(time.Second))},
		{Green, value.Str("Green")},
		{[2]bool{true, false}, value.ArrayOf(value.Bool(true), value.Bool(false))},
		{value.NewStringB("b"), value.Str("b")},
		{value.NumberFrom(uint64(3)), value.Num(uint64(3))},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%T", tt.in), func(t *testing.T) {
			got, err := value.From(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	_, err := value.From(make(chan int))
	assert.ErrorIs(t, err, value.ErrType)
}

func TestGenericHelpers(t *testing.T) {
	v, err := value.FromSlice([]string{"a", "b"})
	require.NoError(t, err)
	assert.True(t, v.Equal(value.ArrayOf(value.Str("a"), value.Str("b"))))

	v, err = value.FromSortedMap(map[uint]bool{2: true, 1: false})
	require.NoError(t, err)
	keys, err := v.Keys()
	require.NoError(t, err)
	assert.Equal(t, value.NumberKey(1), keys[0])

	v, err = value.FromMap(map[string]int{"k": 1})
	require.NoError(t, err)
	obj, _ := v.AsObject()
	assert.False(t, obj.IsSorted())

	v, err = value.Option[int](nil)
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	n := 4
	v, err = value.Option(&n)
	require.NoError(t, err)
	assert.True(t, v.Equal(value.Num(4)))

	v = value.FromPairs(value.Pair{Key: value.StringKey("p"), Value: value.Bool(true)})
	ok, err := v.ContainsKey("p")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDecodeErrors(t *testing.T) {
	_, err := value.To[int](value.Str("x"))
	var tm *value.TypeMismatchError
	require.True(t, errors.As(err, &tm))
	assert.Equal(t, value.KindString, tm.Actual)

	_, err = value.To[[]int](value.MustParse(`[1, "two", 3]`))
	var pe *value.PathError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "[1]", pe.Path)
	assert.ErrorIs(t, err, value.ErrType)

	_, err = value.To[map[string][]uint8](value.MustParse(`{"a": [1, 300]}`))
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, ".a[1]", pe.Path)
	assert.ErrorIs(t, err, value.ErrInvalid)

	_, err = value.To[User](value.MustParse(`{"color": "Purple"}`))
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, ".color", pe.Path)

	assert.ErrorIs(t, value.Decode(value.Null(), User{}), value.ErrInvalid)
}

func TestDecodeLoose(t *testing.T) {
	f, err := value.To[float64](value.Num(int32(3)))
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)

	p, err := value.To[*int](value.Null())
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = value.To[*int](value.Num(int32(8)))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 8, *p)

	anyv, err := value.To[any](value.MustParse(`{"a": [1, "b", null]}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": []any{int64(1), "b", nil}}, anyv)

	kept, err := value.To[value.Value](value.Undefined())
	require.NoError(t, err)
	assert.True(t, kept.IsUndefined())

	ts, err := value.To[time.Time](value.Str("2020-01-02T03:04:05Z"))
	require.NoError(t, err)
	assert.Equal(t, 2020, ts.Year())
}

type celsius float64

func (c celsius) ToValue() value.Value { return value.Str(fmt.Sprintf("%.1fC", float64(c))) }

func (c *celsius) FromValue(v value.Value) error {
	s, err := v.AsString()
	if err != nil {
		return err
	}
	_, err = fmt.Sscanf(s, "%fC", (*float64)(c))
	return err
}

func TestCustomConversions(t *testing.T) {
	v, err := value.From(celsius(21.5))
	require.NoError(t, err)
	assert.True(t, v.Equal(value.Str("21.5C")))

	type reading struct {
		Temp celsius `value:"temp"`
	}
	out, err := value.To[reading](value.MustParse(`{"temp": "19.0C"}`))
	require.NoError(t, err)
	assert.Equal(t, celsius(19), out.Temp)
}

func TestInlineOption(t *testing.T) {
	type doc struct {
		Payload map[string]int `value:"payload,inline"`
	}
	v, err := value.From(doc{Payload: map[string]int{"a": 1}})
	require.NoError(t, err)
	p, err := v.Get("payload")
	require.NoError(t, err)
	assert.True(t, p.Equal(value.Str(`{"a": 1}`)))

	out, err := value.To[doc](v)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1}, out.Payload)
}
