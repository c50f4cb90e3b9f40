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
	"math"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

var (
	_ json.Marshaler   = Value{}
	_ json.Unmarshaler = (*Value)(nil)
	_ yaml.Marshaler   = Value{}
	_ yaml.Unmarshaler = (*Value)(nil)
)

// MarshalJSON writes v as compact JSON. Objects keep their iteration order,
// Undefined is written as null.
func (v Value) MarshalJSON() ([]byte, error) {
	return appendJSON(nil, v)
}

func appendJSON(dst []byte, v Value) ([]byte, error) {
	switch v.kind {
	case KindObject:
		dst = append(dst, '{')
		first := true
		for k, elem := range v.obj.All() {
			if !first {
				dst = append(dst, ',')
			}
			first = false
			key, err := json.Marshal(k.String())
			if err != nil {
				return nil, err
			}
			dst = append(append(dst, key...), ':')
			if dst, err = appendJSON(dst, *elem); err != nil {
				return nil, err
			}
		}
		return append(dst, '}'), nil
	case KindArray:
		dst = append(dst, '[')
		for i, elem := range v.arr.All() {
			if i > 0 {
				dst = append(dst, ',')
			}
			var err error
			if dst, err = appendJSON(dst, *elem); err != nil {
				return nil, err
			}
		}
		return append(dst, ']'), nil
	case KindString:
		s, err := json.Marshal(v.str.String())
		return append(dst, s...), err
	case KindDateTime:
		s, err := json.Marshal(v.dt.String())
		return append(dst, s...), err
	case KindNumber:
		return append(dst, numberJSON(v.num)...), nil
	case KindBoolean:
		if v.b {
			return append(dst, "true"...), nil
		}
		return append(dst, "false"...), nil
	}
	return append(dst, "null"...), nil
}

// UnmarshalJSON reads data with Parse, so numbers keep the widths of the
// ParseNumber cascade.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseBytes(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML lets a Value nest inside documents encoded with yaml.v3. The
// node keeps the iteration order of objects.
func (v Value) MarshalYAML() (any, error) {
	return toYAMLNode(v), nil
}

func scalarNode(tag, val string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: val}
}

func toYAMLNode(v Value) *yaml.Node {
	switch v.kind {
	case KindBoolean:
		if v.b {
			return scalarNode("!!bool", "true")
		}
		return scalarNode("!!bool", "false")
	case KindNumber:
		if v.num.IsFloat() {
			f, _ := v.num.Float64()
			switch {
			case math.IsNaN(f):
				return scalarNode("!!float", ".nan")
			case math.IsInf(f, 1):
				return scalarNode("!!float", ".inf")
			case math.IsInf(f, -1):
				return scalarNode("!!float", "-.inf")
			}
			return scalarNode("!!float", v.num.String())
		}
		if v.num.Type() == NumberUnknown {
			return scalarNode("!!null", "null")
		}
		return scalarNode("!!int", v.num.String())
	case KindString:
		return scalarNode("!!str", v.str.String())
	case KindDateTime:
		return scalarNode("!!str", v.dt.String())
	case KindArray:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, elem := range v.arr.All() {
			node.Content = append(node.Content, toYAMLNode(*elem))
		}
		return node
	case KindObject:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for k, elem := range v.obj.All() {
			node.Content = append(node.Content, scalarNode("!!str", k.String()), toYAMLNode(*elem))
		}
		return node
	}
	return scalarNode("!!null", "null")
}

// UnmarshalYAML builds a Value from a yaml.v3 node. Integers become I64 (U64
// or 128 bit when they do not fit), floats F64, timestamps DateTime and
// mappings hash Objects.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := fromYAMLNode(node, 0)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func fromYAMLNode(node *yaml.Node, depth int) (Value, error) {
	if depth > MaxDepth {
		return Value{}, fmt.Errorf("%w: yaml nesting exceeds %d levels", ErrInvalid, MaxDepth)
	}
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}
		return fromYAMLNode(node.Content[0], depth)
	case yaml.AliasNode:
		return fromYAMLNode(node.Alias, depth+1)
	case yaml.SequenceNode:
		arr := Array{values: make([]Value, 0, len(node.Content))}
		for _, child := range node.Content {
			elem, err := fromYAMLNode(child, depth+1)
			if err != nil {
				return Value{}, err
			}
			arr.Push(elem)
		}
		return ArrayValue(arr), nil
	case yaml.MappingNode:
		obj := Object{backing: newHashBacking(len(node.Content) / 2)}
		for i := 0; i+1 < len(node.Content); i += 2 {
			elem, err := fromYAMLNode(node.Content[i+1], depth+1)
			if err != nil {
				return Value{}, err
			}
			obj.Insert(node.Content[i].Value, elem)
		}
		return ObjectValue(obj), nil
	case yaml.ScalarNode:
		return fromYAMLScalar(node)
	}
	return Value{}, fmt.Errorf("%w: unknown yaml node kind %d", ErrInvalid, node.Kind)
}

func fromYAMLScalar(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err == nil {
			return Num(i), nil
		}
		var u uint64
		if err := node.Decode(&u); err == nil {
			return Num(u), nil
		}
		n, err := ParseNumber(node.Value)
		if err != nil {
			return Value{}, err
		}
		return NumberValue(n), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return Value{}, err
		}
		return Num(f), nil
	case "!!timestamp":
		var t time.Time
		if err := node.Decode(&t); err != nil {
			return Value{}, err
		}
		return DateTimeValue(DateTimeFromTime(t)), nil
	}
	return Str(node.Value), nil
}
