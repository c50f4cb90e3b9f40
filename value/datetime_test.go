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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valu3/valu3-go/value"
)

func TestDateAddDuration(t *testing.T) {
	d, err := value.DateFromYMD(2023, time.April, 5)
	require.NoError(t, err)
	next, ok := d.AddDuration(24 * time.Hour)
	require.True(t, ok)

	want, err := value.DateFromYMD(2023, time.April, 6)
	require.NoError(t, err)
	assert.True(t, want.Equal(next))
	assert.Equal(t, "2023-04-06", next.String())

	back, ok := next.SubtractDuration(24 * time.Hour)
	require.True(t, ok)
	assert.True(t, back.Equal(d))

	between, ok := d.DurationBetween(next)
	require.True(t, ok)
	assert.Equal(t, 24*time.Hour, between)
}

func TestDateRejectsOverflow(t *testing.T) {
	_, err := value.DateFromYMD(2023, time.February, 30)
	assert.ErrorIs(t, err, value.ErrInvalid)
	_, err = value.TimeFromHMS(24, 0, 0, 0)
	assert.ErrorIs(t, err, value.ErrInvalid)
}

func TestTimeCannotMove(t *testing.T) {
	tod, err := value.TimeFromHMS(12, 30, 0, 0)
	require.NoError(t, err)
	_, ok := tod.AddDuration(time.Minute)
	assert.False(t, ok)
	_, ok = tod.Year()
	assert.False(t, ok)
	h, ok := tod.Hour()
	assert.True(t, ok)
	assert.Equal(t, 12, h)
	assert.Equal(t, "12:30:00", tod.ToISO8601())
	assert.Equal(t, "", tod.ToRFC3339())
}

func TestDateTimeFormatting(t *testing.T) {
	dt, err := value.DateTimeFromYMDHMS(2024, time.January, 2, 3, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, value.DateTimeKindFull, dt.Kind())
	assert.Equal(t, "2024-01-02T03:04:05", dt.ToISO8601())
	assert.Equal(t, "2024-01-02T03:04:05+00:00", dt.ToRFC3339())

	ts, ok := dt.Timestamp()
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC).Unix(), ts)

	loc, ok := dt.Timezone()
	require.True(t, ok)
	assert.Equal(t, time.UTC, loc)
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		in   string
		kind value.DateTimeKind
		out  string
	}{
		{"2023-04-05", value.DateKind, "2023-04-05"},
		{"08:15:00", value.TimeKind, "08:15:00"},
		{"2023-04-05T08:15:00Z", value.DateTimeKindFull, "2023-04-05T08:15:00+00:00"},
		{"2023-04-05T10:15:00+02:00", value.DateTimeKindFull, "2023-04-05T08:15:00+00:00"},
		{"2023-04-05 08:15:00", value.DateTimeKindFull, "2023-04-05T08:15:00+00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			dt, err := value.ParseDateTime(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, dt.Kind())
			assert.Equal(t, tt.out, dt.String())
		})
	}

	_, err := value.ParseDateTime("yesterday")
	assert.ErrorIs(t, err, value.ErrInvalid)
}

func TestDurationBetweenKinds(t *testing.T) {
	d, _ := value.DateFromYMD(2023, time.April, 5)
	dt := value.DateTimeFromTime(time.Date(2023, 4, 5, 0, 0, 0, 0, time.UTC))
	_, ok := d.DurationBetween(dt)
	assert.False(t, ok)
}

func TestStringB(t *testing.T) {
	s := value.NewStringB("hello").Concat("!")
	assert.Equal(t, "hello!", s.String())
	assert.Equal(t, "HELLO!", s.ToUpper().String())
	assert.Equal(t, "x", value.NewStringB("  x \n").Trim().String())
	assert.Equal(t, "b-b", value.NewStringB("a-a").Replace("a", "b").String())
	assert.Equal(t, 6, s.Len())
	assert.False(t, s.IsEmpty())

	_, err := value.StringBFromUTF8([]byte{0xff, 'a'})
	assert.ErrorIs(t, err, value.ErrInvalid)
	assert.Equal(t, "�a", value.NewStringB(string([]byte{0xff, 'a'})).Lossy())
}

func TestValueKeys(t *testing.T) {
	k, err := value.KeyOf("7")
	require.NoError(t, err)
	assert.True(t, k.IsString())
	_, err = k.AsUsize()
	require.NoError(t, err)

	k, err = value.KeyOf(uint(7))
	require.NoError(t, err)
	assert.True(t, k.IsNumber())

	_, err = value.StringKey("seven").AsUsize()
	assert.ErrorIs(t, err, value.ErrNotNumber)

	_, err = value.KeyOf(-3)
	assert.ErrorIs(t, err, value.ErrIndex)
	_, err = value.KeyOf(2.5)
	assert.ErrorIs(t, err, value.ErrType)

	assert.Negative(t, value.StringKey("z").Compare(value.NumberKey(0)))
	assert.Negative(t, value.NumberKey(2).Compare(value.NumberKey(10)))
}
