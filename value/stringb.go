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
	"strings"
	"unicode/utf8"
)

// StringB is an immutable UTF-8 string with a few manipulation helpers. Every
// helper returns a new StringB.
type StringB struct {
	s string
}

func NewStringB(s string) StringB { return StringB{s: s} }

// StringBFromUTF8 validates b before wrapping it.
func StringBFromUTF8(b []byte) (StringB, error) {
	if !utf8.Valid(b) {
		return StringB{}, fmt.Errorf("%w: bytes are not valid UTF-8", ErrInvalid)
	}
	return StringB{s: string(b)}, nil
}

func (s StringB) Bytes() []byte { return []byte(s.s) }

func (s StringB) String() string { return s.s }

// Lossy returns the string with invalid UTF-8 sequences replaced by U+FFFD.
func (s StringB) Lossy() string { return strings.ToValidUTF8(s.s, "�") }

func (s StringB) ToUpper() StringB { return StringB{s: strings.ToUpper(s.s)} }

func (s StringB) ToLower() StringB { return StringB{s: strings.ToLower(s.s)} }

func (s StringB) Trim() StringB { return StringB{s: strings.TrimSpace(s.s)} }

func (s StringB) Replace(from, to string) StringB {
	return StringB{s: strings.ReplaceAll(s.s, from, to)}
}

func (s StringB) Concat(other string) StringB { return StringB{s: s.s + other} }

// Len is the length in bytes.
func (s StringB) Len() int { return len(s.s) }

func (s StringB) IsEmpty() bool { return len(s.s) == 0 }

// ValueKey makes StringB usable as an object key.
func (s StringB) ValueKey() ValueKey { return StringKey(s.s) }

// ToValue wraps s in a String Value.
func (s StringB) ToValue() Value { return StringBValue(s) }
