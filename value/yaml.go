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
	"strings"
)

// ToYAML renders v as a YAML document.
func (v Value) ToYAML() string { return v.ToYAMLWithIndent(0) }

// ToYAMLWithIndent renders v as the body of a YAML node nested indent spaces
// deep. Scalars come out as " <scalar>\n" so they can follow a "key:" or "-"
// marker directly.
func (v Value) ToYAMLWithIndent(indent int) string {
	var sb strings.Builder
	writeYAML(&sb, v, indent)
	return sb.String()
}

func writeYAML(sb *strings.Builder, v Value, indent int) {
	prefix := strings.Repeat(" ", indent)
	switch v.kind {
	case KindNull:
		sb.WriteString(" null\n")
	case KindUndefined:
		sb.WriteString(" ~\n")
	case KindBoolean, KindNumber, KindDateTime:
		sb.WriteByte(' ')
		sb.WriteString(v.String())
		sb.WriteByte('\n')
	case KindString:
		sb.WriteByte(' ')
		sb.WriteString(quoteJSON(v.str.String()))
		sb.WriteByte('\n')
	case KindArray:
		if v.arr.IsEmpty() {
			sb.WriteString(" []\n")
			return
		}
		if indent > 0 {
			sb.WriteByte('\n')
		}
		for _, elem := range v.arr.All() {
			sb.WriteString(prefix)
			sb.WriteByte('-')
			writeYAML(sb, *elem, indent+2)
		}
	case KindObject:
		if v.obj.IsEmpty() {
			sb.WriteString(" {}\n")
			return
		}
		if indent > 0 {
			sb.WriteByte('\n')
		}
		for k, elem := range v.obj.All() {
			sb.WriteString(prefix)
			sb.WriteString(yamlKey(k.String()))
			sb.WriteByte(':')
			writeYAML(sb, *elem, indent+2)
		}
	}
}

var yamlReserved = map[string]struct{}{
	"true": {}, "false": {}, "yes": {}, "no": {}, "on": {}, "off": {},
	"y": {}, "n": {}, "null": {}, "~": {},
}

// yamlKey leaves identifier-like keys bare and quotes everything else.
func yamlKey(k string) string {
	if k == "" {
		return `""`
	}
	if _, ok := yamlReserved[strings.ToLower(k)]; ok {
		return quoteJSON(k)
	}
	for i := 0; i < len(k); i++ {
		c := k[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case i > 0 && (c >= '0' && c <= '9' || c == '-' || c == '.'):
		default:
			return quoteJSON(k)
		}
	}
	return k
}
