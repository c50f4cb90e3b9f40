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
	"time"
)

// DateTimeKind tells which part of a DateTime is meaningful.
type DateTimeKind int8

const (
	DateKind DateTimeKind = iota
	TimeKind
	DateTimeKindFull
)

func (k DateTimeKind) String() string {
	switch k {
	case DateKind:
		return "Date"
	case TimeKind:
		return "Time"
	case DateTimeKindFull:
		return "DateTime"
	}
	return "Invalid"
}

const (
	layoutDate     = "2006-01-02"
	layoutTime     = "15:04:05.999999999"
	layoutISO      = "2006-01-02T15:04:05"
	layoutRFC3339  = "2006-01-02T15:04:05.999999999-07:00"
	layoutSpaced   = "2006-01-02 15:04:05.999999999"
	layoutISOFract = "2006-01-02T15:04:05.999999999"
)

// DateTime is either a calendar date, a wall clock time or a UTC instant.
//
// A Date keeps midnight UTC in t, a Time keeps January 1st of year 0.
type DateTime struct {
	kind DateTimeKind
	t    time.Time
}

// DateFromYMD returns a Date. Out of range components are rejected rather than
// normalized.
func DateFromYMD(year int, month time.Month, day int) (DateTime, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return DateTime{}, fmt.Errorf("%w: date %04d-%02d-%02d", ErrInvalid, year, month, day)
	}
	return DateTime{kind: DateKind, t: t}, nil
}

// TimeFromHMS returns a Time of day.
func TimeFromHMS(hour, min, sec, nsec int) (DateTime, error) {
	if hour < 0 || hour > 23 || min < 0 || min > 59 || sec < 0 || sec > 59 || nsec < 0 || nsec > 999999999 {
		return DateTime{}, fmt.Errorf("%w: time %02d:%02d:%02d.%09d", ErrInvalid, hour, min, sec, nsec)
	}
	return DateTime{kind: TimeKind, t: time.Date(0, 1, 1, hour, min, sec, nsec, time.UTC)}, nil
}

// DateTimeFromYMDHMS returns a UTC instant.
func DateTimeFromYMDHMS(year int, month time.Month, day, hour, min, sec int) (DateTime, error) {
	d, err := DateFromYMD(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	tod, err := TimeFromHMS(hour, min, sec, 0)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{kind: DateTimeKindFull, t: d.t.Add(tod.sinceMidnight())}, nil
}

// DateTimeFromTime converts t to UTC.
func DateTimeFromTime(t time.Time) DateTime {
	return DateTime{kind: DateTimeKindFull, t: t.UTC()}
}

func Now() DateTime { return DateTimeFromTime(time.Now()) }

// ParseDateTime reads s as a date, then as a time of day, then as a date and
// time (RFC 3339 or without an offset, which is taken as UTC).
func ParseDateTime(s string) (DateTime, error) {
	if t, err := time.Parse(layoutDate, s); err == nil {
		return DateTime{kind: DateKind, t: t}, nil
	}
	if t, err := time.Parse(layoutTime, s); err == nil {
		return DateTime{kind: TimeKind, t: time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)}, nil
	}
	for _, layout := range []string{time.RFC3339Nano, layoutISOFract, layoutSpaced} {
		if t, err := time.Parse(layout, s); err == nil {
			return DateTimeFromTime(t), nil
		}
	}
	return DateTime{}, fmt.Errorf("%w: %q is not a date, time or date-time", ErrInvalid, s)
}

func (d DateTime) Kind() DateTimeKind { return d.kind }

func (d DateTime) sinceMidnight() time.Duration {
	return time.Duration(d.t.Hour())*time.Hour + time.Duration(d.t.Minute())*time.Minute +
		time.Duration(d.t.Second())*time.Second + time.Duration(d.t.Nanosecond())
}

// Time returns the underlying time.Time.
func (d DateTime) Time() time.Time { return d.t }

func (d DateTime) AsDate() (time.Time, bool) { return d.t, d.kind == DateKind }

func (d DateTime) AsTime() (time.Time, bool) { return d.t, d.kind == TimeKind }

func (d DateTime) AsDateTime() (time.Time, bool) { return d.t, d.kind == DateTimeKindFull }

func (d DateTime) hasDate() bool { return d.kind != TimeKind }

func (d DateTime) hasClock() bool { return d.kind != DateKind }

func (d DateTime) Year() (int, bool) { return d.t.Year(), d.hasDate() }

func (d DateTime) Month() (time.Month, bool) { return d.t.Month(), d.hasDate() }

func (d DateTime) Day() (int, bool) { return d.t.Day(), d.hasDate() }

func (d DateTime) Hour() (int, bool) { return d.t.Hour(), d.hasClock() }

func (d DateTime) Minute() (int, bool) { return d.t.Minute(), d.hasClock() }

func (d DateTime) Second() (int, bool) { return d.t.Second(), d.hasClock() }

// Timestamp is the Unix time in seconds, only for full date-times.
func (d DateTime) Timestamp() (int64, bool) {
	return d.t.Unix(), d.kind == DateTimeKindFull
}

func (d DateTime) Timezone() (*time.Location, bool) {
	if d.kind != DateTimeKindFull {
		return nil, false
	}
	return time.UTC, true
}

// AddDuration moves a Date by whole days of dur and a date-time by dur. A bare
// Time cannot be moved.
func (d DateTime) AddDuration(dur time.Duration) (DateTime, bool) {
	switch d.kind {
	case DateKind:
		return DateTime{kind: DateKind, t: d.t.AddDate(0, 0, int(dur/(24*time.Hour)))}, true
	case DateTimeKindFull:
		return DateTime{kind: DateTimeKindFull, t: d.t.Add(dur)}, true
	}
	return DateTime{}, false
}

func (d DateTime) SubtractDuration(dur time.Duration) (DateTime, bool) {
	return d.AddDuration(-dur)
}

// DurationBetween returns other minus d. Both must be of the same kind, and
// neither may be a bare Time. Dates are compared in whole days.
func (d DateTime) DurationBetween(other DateTime) (time.Duration, bool) {
	if d.kind != other.kind {
		return 0, false
	}
	switch d.kind {
	case DateKind:
		days := other.t.Sub(d.t) / (24 * time.Hour)
		return days * 24 * time.Hour, true
	case DateTimeKindFull:
		return other.t.Sub(d.t), true
	}
	return 0, false
}

func (d DateTime) ToISO8601() string {
	switch d.kind {
	case DateKind:
		return d.t.Format(layoutDate)
	case TimeKind:
		return d.t.Format(layoutTime)
	}
	return d.t.Format(layoutISO)
}

// ToRFC3339 is only defined for full date-times and returns "" otherwise.
func (d DateTime) ToRFC3339() string {
	if d.kind != DateTimeKindFull {
		return ""
	}
	return d.t.Format(layoutRFC3339)
}

func (d DateTime) Equal(other DateTime) bool {
	return d.kind == other.kind && d.t.Equal(other.t)
}

func (d DateTime) String() string {
	if d.kind == DateTimeKindFull {
		return d.ToRFC3339()
	}
	return d.ToISO8601()
}

func (d DateTime) ToValue() Value { return DateTimeValue(d) }
