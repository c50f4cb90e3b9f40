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
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valu3/valu3-go/value"
)

func sortedDoc() value.Value {
	obj := value.NewSortedObject()
	obj.Insert("name", value.Str("valu3"))
	obj.Insert("tags", value.ArrayOf(value.Str("a"), value.Num(int32(1))))
	obj.Insert("nested", value.ObjectValue(value.ObjectFromSortedMap(map[string]value.Value{
		"ok": value.Bool(true),
	})))
	obj.Insert("none", value.Null())
	return value.ObjectValue(obj)
}

func TestToJSONIndented(t *testing.T) {
	want := "{\n" +
		"\t\"name\": \"valu3\",\n" +
		"\t\"nested\": {\n" +
		"\t\t\"ok\": true\n" +
		"\t},\n" +
		"\t\"none\": null,\n" +
		"\t\"tags\": [\n" +
		"\t\t\"a\",\n" +
		"\t\t1\n" +
		"\t]\n" +
		"}"
	assert.Equal(t, want, sortedDoc().ToJSON(value.JSONIndented))
}

func TestToJSONInline(t *testing.T) {
	want := `{"name": "valu3","nested": {"ok": true},"none": null,"tags": ["a",1]}`
	got := sortedDoc().ToJSON(value.JSONInline)
	assert.Equal(t, want, got)
	assert.Equal(t, got, value.InlineJSON(sortedDoc().ToJSON(value.JSONIndented)))
	assert.Equal(t, got, value.InlineJSON(got))
}

func TestToJSONEscaping(t *testing.T) {
	v := value.Str("tab\there \"quoted\" back\\slash\nnew \x01 é")
	assert.Equal(t, `"tab\there \"quoted\" back\\slash\nnew \u0001 é"`, v.ToJSON(value.JSONIndented))

	obj := value.NewHashObject()
	obj.Insert("we\"ird", value.Num(1))
	assert.Equal(t, `{"we\"ird": 1}`, value.ObjectValue(obj).ToJSON(value.JSONInline))
}

func TestToJSONSpecialValues(t *testing.T) {
	assert.Equal(t, "null", value.Undefined().ToJSON(value.JSONInline))
	assert.Equal(t, "{}", value.ObjectValue(value.NewHashObject()).ToJSON(value.JSONIndented))
	assert.Equal(t, "[]", value.ArrayOf().ToJSON(value.JSONIndented))
	assert.Equal(t, "null", value.Num(math.NaN()).ToJSON(value.JSONInline))
	assert.Equal(t, "2.0", value.Num(2.0).ToJSON(value.JSONInline))
}

func TestParseScenario(t *testing.T) {
	v, err := value.Parse(`{"a": true, "b": [0,1]}`)
	require.NoError(t, err)

	a, err := v.Get("a")
	require.NoError(t, err)
	assert.True(t, a.Equal(value.Bool(true)))

	b, err := v.Get("b")
	require.NoError(t, err)
	assert.True(t, b.Equal(value.ArrayOf(value.Num(int32(0)), value.Num(int32(1)))))

	obj, err := v.AsObject()
	require.NoError(t, err)
	assert.False(t, obj.IsSorted())
}

func TestParseRoundTrip(t *testing.T) {
	docs := []string{
		`{"a": 1, "b": [true, false, null], "c": {"d": "e\nf", "g": -2.5}}`,
		`[[], {}, "", 0, 1e2, "é😀"]`,
		`"plain"`,
		`42`,
		`{"deep": [[[[{"x": [1]}]]]]}`,
	}
	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			v, err := value.Parse(doc)
			require.NoError(t, err)
			again, err := value.Parse(v.ToJSON(value.JSONIndented))
			require.NoError(t, err)
			assert.True(t, v.Equal(again), v.ToJSON(value.JSONInline))
			inline, err := value.Parse(v.ToJSON(value.JSONInline))
			require.NoError(t, err)
			assert.True(t, v.Equal(inline))
		})
	}
}

func TestParseEscapes(t *testing.T) {
	v, err := value.Parse(`"a\"b\\c\/d\b\f\n\r\tA😀"`)
	require.NoError(t, err)
	s, err := v.AsString()
	require.NoError(t, err)
	assert.Equal(t, "a\"b\\c/d\b\f\n\r\tA😀", s)

	v, err = value.Parse(`"\ud83d"`)
	require.NoError(t, err)
	s, _ = v.AsString()
	assert.Equal(t, "�", s)
}

func TestParseDuplicateKeysLastWins(t *testing.T) {
	v, err := value.Parse(`{"k": 1, "k": 2}`)
	require.NoError(t, err)
	n, _ := v.Len()
	assert.Equal(t, 1, n)
	k, _ := v.Get("k")
	assert.True(t, k.Equal(value.Num(int32(2))))
}

func TestParseErrors(t *testing.T) {
	_, err := value.Parse("")
	assert.ErrorIs(t, err, value.ErrNonParseable)
	_, err = value.Parse("  \n\t ")
	assert.ErrorIs(t, err, value.ErrNonParseable)

	tests := []struct {
		in     string
		offset int
	}{
		{`{"a": }`, 6},
		{`[1, 2`, 5},
		{`tru`, 0},
		{`{"a" 1}`, 5},
		{`[1] x`, 4},
		{`"unterminated`, 13},
		{`01`, 1},
		{`-`, 1},
		{`{"a": "x` + "\x01" + `"}`, 8},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := value.Parse(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, value.ErrNonParseable)
			var pe *value.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.offset, pe.Offset)
			assert.True(t, strings.HasPrefix(err.Error(), "cannot parse JSON: "))
		})
	}
}

func TestParseMaxDepth(t *testing.T) {
	ok := strings.Repeat("[", value.MaxDepth) + strings.Repeat("]", value.MaxDepth)
	_, err := value.Parse(ok)
	require.NoError(t, err)

	tooDeep := strings.Repeat("[", value.MaxDepth+1) + strings.Repeat("]", value.MaxDepth+1)
	_, err = value.Parse(tooDeep)
	assert.ErrorIs(t, err, value.ErrNonParseable)
}
