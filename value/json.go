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
	"math"
	"strings"
	"unicode/utf8"
)

// JSONMode selects the layout of ToJSON.
type JSONMode int8

const (
	// JSONIndented puts each entry on its own line, indented with tabs.
	JSONIndented JSONMode = iota
	// JSONInline is JSONIndented with every newline and tab removed.
	JSONInline
)

// ToJSON renders v as JSON text. Undefined is written as null, DateTime as
// a quoted display string.
func (v Value) ToJSON(mode JSONMode) string {
	w := jsonWriter{inline: mode == JSONInline}
	w.value(v, 0)
	return w.sb.String()
}

// InlineJSON removes newlines and tabs that sit outside string literals. It is
// the transformation JSONInline applies to indented output.
func InlineJSON(s string) string {
	var (
		sb       strings.Builder
		inString bool
		escaped  bool
	)
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inString:
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
		case c == '"':
			inString = true
		case c == '\n' || c == '\t':
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

type jsonWriter struct {
	sb     strings.Builder
	inline bool
}

func (w *jsonWriter) newline(depth int) {
	if w.inline {
		return
	}
	w.sb.WriteByte('\n')
	for range depth {
		w.sb.WriteByte('\t')
	}
}

func (w *jsonWriter) value(v Value, depth int) {
	switch v.kind {
	case KindObject:
		if v.obj.IsEmpty() {
			w.sb.WriteString("{}")
			return
		}
		w.sb.WriteByte('{')
		first := true
		for k, elem := range v.obj.All() {
			if !first {
				w.sb.WriteByte(',')
			}
			first = false
			w.newline(depth + 1)
			w.sb.WriteString(quoteJSON(k.String()))
			w.sb.WriteString(": ")
			w.value(*elem, depth+1)
		}
		w.newline(depth)
		w.sb.WriteByte('}')
	case KindArray:
		if v.arr.IsEmpty() {
			w.sb.WriteString("[]")
			return
		}
		w.sb.WriteByte('[')
		for i, elem := range v.arr.All() {
			if i > 0 {
				w.sb.WriteByte(',')
			}
			w.newline(depth + 1)
			w.value(*elem, depth+1)
		}
		w.newline(depth)
		w.sb.WriteByte(']')
	case KindString:
		w.sb.WriteString(quoteJSON(v.str.String()))
	case KindNumber:
		w.sb.WriteString(numberJSON(v.num))
	case KindBoolean:
		if v.b {
			w.sb.WriteString("true")
		} else {
			w.sb.WriteString("false")
		}
	case KindDateTime:
		w.sb.WriteString(quoteJSON(v.dt.String()))
	default:
		w.sb.WriteString("null")
	}
}

// numberJSON writes non finite floats and empty numbers as null.
func numberJSON(n Number) string {
	if f, ok := n.Float64(); ok && n.IsFloat() && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return "null"
	}
	if n.Type() == NumberUnknown {
		return "null"
	}
	return n.String()
}

const hexDigits = "0123456789abcdef"

// quoteJSON quotes s following RFC 8259. Invalid UTF-8 is replaced by U+FFFD.
func quoteJSON(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if c >= 0x20 && c != '"' && c != '\\' {
				i++
				continue
			}
			sb.WriteString(s[start:i])
			switch c {
			case '"', '\\':
				sb.WriteByte('\\')
				sb.WriteByte(c)
			case '\n':
				sb.WriteString(`\n`)
			case '\r':
				sb.WriteString(`\r`)
			case '\t':
				sb.WriteString(`\t`)
			case '\b':
				sb.WriteString(`\b`)
			case '\f':
				sb.WriteString(`\f`)
			default:
				sb.WriteString(`\u00`)
				sb.WriteByte(hexDigits[c>>4])
				sb.WriteByte(hexDigits[c&0xF])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			sb.WriteString(s[start:i])
			sb.WriteString("�")
			i += size
			start = i
			continue
		}
		i += size
	}
	sb.WriteString(s[start:])
	sb.WriteByte('"')
	return sb.String()
}
