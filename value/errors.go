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
)

var (
	ErrType         = errors.New("type mismatch")
	ErrNotFound     = errors.New("not found")
	ErrIndex        = errors.New("index out of range")
	ErrInvalid      = errors.New("invalid")
	ErrNotNumber    = errors.New("not a number")
	ErrNonParseable = errors.New("non parseable")

	errAlreadyBuilt = errors.New("component already built")
)

// TypeMismatchError reports a kind specific operation that was called on a Value
// of another kind. It matches ErrType with errors.Is.
type TypeMismatchError struct {
	Op       string
	Expected []Kind
	Actual   Kind
}

func mismatch(op string, actual Kind, expected ...Kind) error {
	return &TypeMismatchError{Op: op, Expected: expected, Actual: actual}
}

func (e *TypeMismatchError) Error() string {
	names := make([]string, len(e.Expected))
	for i, k := range e.Expected {
		names[i] = k.String()
	}
	return fmt.Sprintf("%s: %s: expected %s, got %s",
		e.Op, ErrType, strings.Join(names, " or "), e.Actual)
}

func (e *TypeMismatchError) Unwrap() error { return ErrType }

// ParseError is returned when text could not be parsed as JSON. Offset is the
// byte position where parsing stopped. It matches ErrNonParseable with errors.Is.
type ParseError struct {
	Offset int
	Msg    string
	Tail   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse JSON: %s; unparsed tail: %q", e.Msg, e.Tail)
}

func (e *ParseError) Unwrap() error { return ErrNonParseable }

// PathError locates a conversion failure inside a nested value. Path uses
// ".key" for object entries and "[i]" for array elements.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string { return e.Path + ": " + e.Err.Error() }

func (e *PathError) Unwrap() error { return e.Err }
