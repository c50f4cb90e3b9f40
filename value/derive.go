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
	"reflect"
	"strings"
	"sync"

	"github.com/stoewer/go-strcase"
)

// fieldOpts are the flags accepted after the key name in a `value` tag.
type fieldOpts uint8

const (
	optOmitEmpty fieldOpts = 1 << iota
	optUUID
	optDate
	optTime
	optInline
)

type fieldInfo struct {
	key   string
	index int
	opts  fieldOpts
}

func (f fieldInfo) has(o fieldOpts) bool { return f.opts&o != 0 }

// extractFieldInfo reads the key name and options of a struct field. The tag
// has the form `value:"name,opt,opt"`. Without a name the field name is used,
// optionally rewritten by one of the snake, camel, pascal or kebab options. A
// tag of "-" skips the field.
//
// The field is assumed to be exported.
func extractFieldInfo(field reflect.StructField) (fieldInfo, bool) {
	info := fieldInfo{key: field.Name, index: field.Index[0]}

	tag, ok := field.Tag.Lookup("value")
	if !ok || tag == "" {
		return info, true
	}
	if tag == "-" {
		return info, false
	}

	parts := strings.Split(tag, ",")
	explicit := parts[0] != ""
	if explicit {
		info.key = parts[0]
	}

	for _, opt := range parts[1:] {
		switch strings.ToLower(strings.TrimSpace(opt)) {
		case "omitempty":
			info.opts |= optOmitEmpty
		case "uuid":
			info.opts |= optUUID
		case "date":
			info.opts |= optDate
		case "time":
			info.opts |= optTime
		case "inline":
			info.opts |= optInline
		case "snake":
			if !explicit {
				info.key = strcase.SnakeCase(field.Name)
			}
		case "camel":
			if !explicit {
				info.key = strcase.LowerCamelCase(field.Name)
			}
		case "pascal":
			if !explicit {
				info.key = strcase.UpperCamelCase(field.Name)
			}
		case "kebab":
			if !explicit {
				info.key = strcase.KebabCase(field.Name)
			}
		}
	}
	return info, true
}

var fieldCache sync.Map // map[reflect.Type][]fieldInfo

// structFields lists the exported, non skipped fields of typ in declaration
// order.
func structFields(typ reflect.Type) []fieldInfo {
	if cached, ok := fieldCache.Load(typ); ok {
		return cached.([]fieldInfo)
	}
	fields := make([]fieldInfo, 0, typ.NumField())
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		if info, ok := extractFieldInfo(field); ok {
			fields = append(fields, info)
		}
	}
	actual, _ := fieldCache.LoadOrStore(typ, fields)
	return actual.([]fieldInfo)
}

// MarshalJSONValue converts x with From and prints it in the given mode.
func MarshalJSONValue(x any, mode JSONMode) (string, error) {
	v, err := From(x)
	if err != nil {
		return "", err
	}
	return v.ToJSON(mode), nil
}

// MarshalYAMLValue converts x with From and renders it as YAML.
func MarshalYAMLValue(x any) (string, error) {
	v, err := From(x)
	if err != nil {
		return "", err
	}
	return v.ToYAML(), nil
}

// UnmarshalJSONValue parses s and decodes the result into dest.
func UnmarshalJSONValue(s string, dest any) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	return Decode(v, dest)
}
