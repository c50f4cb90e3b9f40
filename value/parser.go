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
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// MaxDepth is the deepest nesting of arrays and objects Parse accepts.
const MaxDepth = 512

const maxTail = 32

// Parse reads a single JSON document. Numbers land in the first width of the
// ParseNumber cascade that holds them and objects are hash backed, with the
// last duplicate key winning.
//
// Empty input fails with ErrNonParseable, anything else that is not JSON with
// a *ParseError.
func Parse(s string) (Value, error) {
	s = skipWS(s)
	if len(s) == 0 {
		return Value{}, ErrNonParseable
	}
	p := parser{src: s}
	v, tail, err := p.value(s, 0)
	if err != nil {
		return Value{}, p.fail(tail, err)
	}
	if tail = skipWS(tail); len(tail) > 0 {
		return Value{}, p.fail(tail, errors.New("unexpected tail"))
	}
	return v, nil
}

func ParseBytes(b []byte) (Value, error) { return Parse(string(b)) }

// MustParse is Parse that panics on error.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

type parser struct {
	src string
}

func (p *parser) fail(tail string, err error) error {
	shown := tail
	if len(shown) > maxTail {
		shown = shown[:maxTail]
	}
	return &ParseError{Offset: len(p.src) - len(tail), Msg: err.Error(), Tail: shown}
}

func skipWS(s string) string {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
		default:
			return s[i:]
		}
	}
	return ""
}

func (p *parser) value(s string, depth int) (Value, string, error) {
	if len(s) == 0 {
		return Value{}, s, errors.New("unexpected end of input")
	}
	switch c := s[0]; {
	case c == '{':
		if depth+1 > MaxDepth {
			return Value{}, s, fmt.Errorf("nesting exceeds %d levels", MaxDepth)
		}
		v, tail, err := p.object(s[1:], depth+1)
		if err != nil {
			return Value{}, tail, fmt.Errorf("cannot parse object: %w", err)
		}
		return v, tail, nil
	case c == '[':
		if depth+1 > MaxDepth {
			return Value{}, s, fmt.Errorf("nesting exceeds %d levels", MaxDepth)
		}
		v, tail, err := p.array(s[1:], depth+1)
		if err != nil {
			return Value{}, tail, fmt.Errorf("cannot parse array: %w", err)
		}
		return v, tail, nil
	case c == '"':
		str, tail, err := parseString(s[1:])
		if err != nil {
			return Value{}, tail, fmt.Errorf("cannot parse string: %w", err)
		}
		return Str(str), tail, nil
	case c == 't':
		return literal(s, "true", Bool(true))
	case c == 'f':
		return literal(s, "false", Bool(false))
	case c == 'n':
		return literal(s, "null", Null())
	case c == '-' || (c >= '0' && c <= '9'):
		raw, tail, err := scanNumber(s)
		if err != nil {
			return Value{}, tail, fmt.Errorf("cannot parse number: %w", err)
		}
		n, err := ParseNumber(raw)
		if err != nil {
			return Value{}, s, err
		}
		return NumberValue(n), tail, nil
	}
	return Value{}, s, fmt.Errorf("unexpected character %q", s[0])
}

func literal(s, word string, v Value) (Value, string, error) {
	if !strings.HasPrefix(s, word) {
		return Value{}, s, fmt.Errorf("unexpected value found: %q", firstToken(s))
	}
	return v, s[len(word):], nil
}

func firstToken(s string) string {
	if i := strings.IndexAny(s, " \t\r\n,:]}"); i >= 0 {
		return s[:i]
	}
	return s
}

func (p *parser) array(s string, depth int) (Value, string, error) {
	arr := Array{}
	s = skipWS(s)
	if len(s) == 0 {
		return Value{}, s, errors.New("missing ']'")
	}
	if s[0] == ']' {
		return ArrayValue(arr), s[1:], nil
	}
	for {
		s = skipWS(s)
		v, tail, err := p.value(s, depth)
		if err != nil {
			return Value{}, tail, err
		}
		arr.Push(v)
		s = skipWS(tail)
		if len(s) == 0 {
			return Value{}, s, errors.New("unexpected end of array")
		}
		switch s[0] {
		case ',':
			s = s[1:]
		case ']':
			return ArrayValue(arr), s[1:], nil
		default:
			return Value{}, s, errors.New("missing ',' after array value")
		}
	}
}

func (p *parser) object(s string, depth int) (Value, string, error) {
	obj := NewHashObject()
	s = skipWS(s)
	if len(s) == 0 {
		return Value{}, s, errors.New("missing '}'")
	}
	if s[0] == '}' {
		return ObjectValue(obj), s[1:], nil
	}
	for {
		s = skipWS(s)
		if len(s) == 0 || s[0] != '"' {
			return Value{}, s, errors.New(`cannot find opening '"' for object key`)
		}
		key, tail, err := parseString(s[1:])
		if err != nil {
			return Value{}, tail, fmt.Errorf("cannot parse object key: %w", err)
		}
		s = skipWS(tail)
		if len(s) == 0 || s[0] != ':' {
			return Value{}, s, errors.New("missing ':' after object key")
		}
		v, tail, err := p.value(skipWS(s[1:]), depth)
		if err != nil {
			return Value{}, tail, fmt.Errorf("cannot parse object value: %w", err)
		}
		obj.Insert(key, v)
		s = skipWS(tail)
		if len(s) == 0 {
			return Value{}, s, errors.New("unexpected end of object")
		}
		switch s[0] {
		case ',':
			s = s[1:]
		case '}':
			return ObjectValue(obj), s[1:], nil
		default:
			return Value{}, s, errors.New("missing ',' after object value")
		}
	}
}

// scanNumber cuts a number token following the JSON grammar.
func scanNumber(s string) (string, string, error) {
	i := 0
	if s[i] == '-' {
		i++
	}
	digits := func() int {
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		return i - start
	}
	if i < len(s) && s[i] == '0' {
		i++
	} else if digits() == 0 {
		return "", s[i:], errors.New("missing digits")
	}
	if i < len(s) && s[i] == '.' {
		i++
		if digits() == 0 {
			return "", s[i:], errors.New("missing fraction digits")
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if digits() == 0 {
			return "", s[i:], errors.New("missing exponent digits")
		}
	}
	return s[:i], s[i:], nil
}

// parseString reads a string body up to and including the closing quote and
// decodes its escapes.
func parseString(s string) (string, string, error) {
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '"' {
			return s[:i], s[i+1:], nil
		}
		if c == '\\' || c < 0x20 {
			break
		}
		i++
	}
	if i == len(s) {
		return "", "", errors.New(`missing closing '"'`)
	}

	b := make([]byte, 0, len(s))
	b = append(b, s[:i]...)
	for i < len(s) {
		c := s[i]
		switch {
		case c == '"':
			return string(b), s[i+1:], nil
		case c < 0x20:
			return "", s[i:], fmt.Errorf("control character %q in string", c)
		case c != '\\':
			b = append(b, c)
			i++
			continue
		}
		i++
		if i >= len(s) {
			break
		}
		switch s[i] {
		case '"', '\\', '/':
			b = append(b, s[i])
		case 'b':
			b = append(b, '\b')
		case 'f':
			b = append(b, '\f')
		case 'n':
			b = append(b, '\n')
		case 'r':
			b = append(b, '\r')
		case 't':
			b = append(b, '\t')
		case 'u':
			r, n, ok := decodeU(s[i+1:])
			if !ok {
				return "", s[i-1:], errors.New(`invalid \u escape`)
			}
			i += n
			if utf16.IsSurrogate(r) {
				hi, next := r, s[i+1:]
				r = utf8.RuneError
				if strings.HasPrefix(next, `\u`) {
					if lo, m, ok := decodeU(next[2:]); ok {
						if dec := utf16.DecodeRune(hi, lo); dec != utf8.RuneError {
							r = dec
							i += m + 2
						}
					}
				}
			}
			b = utf8.AppendRune(b, r)
		default:
			return "", s[i-1:], fmt.Errorf("unknown escape %q", s[i-1:i+1])
		}
		i++
	}
	return "", "", errors.New(`missing closing '"'`)
}

// decodeU reads four hex digits.
func decodeU(s string) (rune, int, bool) {
	if len(s) < 4 {
		return 0, 0, false
	}
	var r rune
	for _, c := range []byte(s[:4]) {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			r |= rune(c - 'A' + 10)
		default:
			return 0, 0, false
		}
	}
	return r, 4, true
}
