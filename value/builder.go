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
)

// ArrayBuilder incrementally builds an Array.
type ArrayBuilder interface {
	Builder
	Write(val any) error
	Array() ArrayBuilder
	Object() ObjectBuilder
}

// ObjectBuilder incrementally builds an Object. Keys must be unique.
type ObjectBuilder interface {
	Builder
	Write(key string, val any) error
	Array(key string) (ArrayBuilder, error)
	Object(key string) (ObjectBuilder, error)
}

// Builder is a component that is committed to its parent by Build.
type Builder interface {
	Build() error
}

// Callback committing a finished child to its parent.
type doneCB func(Value)

// ValueBuilder builds a single Value from primitives or nested builders.
//
// Nested builders returned by Array and Object only become part of their
// parent once their own Build method is called, so children must be built
// before parents. ValueBuilder.Build builds the outermost component itself.
type ValueBuilder struct {
	root    Value
	builder Builder
	started bool
	built   bool
	sorted  bool
	gen     int
}

// BuilderOption configures a ValueBuilder.
type BuilderOption func(*ValueBuilder)

// WithSortedObjects makes every object of the builder sorted instead of hash
// backed.
func WithSortedObjects() BuilderOption {
	return func(vb *ValueBuilder) { vb.sorted = true }
}

func NewBuilder(opts ...BuilderOption) *ValueBuilder {
	vb := &ValueBuilder{}
	for _, o := range opts {
		o(vb)
	}
	return vb
}

func (vb *ValueBuilder) check() error {
	if vb.built {
		return errors.New("value has already been built")
	}
	if vb.started {
		return fmt.Errorf("value has already been started as %s", vb.root.Kind())
	}
	return nil
}

// Primitive sets the builder to the From conversion of val.
func (vb *ValueBuilder) Primitive(val any) error {
	if err := vb.check(); err != nil {
		return err
	}
	v, err := From(val)
	if err != nil {
		return err
	}
	vb.root, vb.started = v, true
	return nil
}

// Object starts the value as an Object and returns its builder.
func (vb *ValueBuilder) Object() (ObjectBuilder, error) {
	if err := vb.check(); err != nil {
		return nil, err
	}
	vb.root, vb.started = ObjectValue(NewHashObject()), true
	ob := newObjectBuilder(vb.sorted, vb.commit())
	vb.builder = ob
	return ob, nil
}

// Array starts the value as an Array and returns its builder.
func (vb *ValueBuilder) Array() (ArrayBuilder, error) {
	if err := vb.check(); err != nil {
		return nil, err
	}
	vb.root, vb.started = ArrayOf(), true
	ab := newArrayBuilder(vb.sorted, vb.commit())
	vb.builder = ab
	return ab, nil
}

// commit returns the callback of the current root builder. Builders handed
// out before a Reset no longer write into vb.
func (vb *ValueBuilder) commit() doneCB {
	gen := vb.gen
	return func(v Value) {
		if vb.gen == gen {
			vb.root = v
		}
	}
}

// Reset clears the builder so it can build another value. Options given to
// NewBuilder are kept.
func (vb *ValueBuilder) Reset() {
	*vb = ValueBuilder{sorted: vb.sorted, gen: vb.gen + 1}
}

// Build finishes the value. An unstarted builder yields Undefined.
func (vb *ValueBuilder) Build() (Value, error) {
	vb.built = true
	if vb.builder != nil {
		if err := vb.builder.Build(); err != nil && !errors.Is(err, errAlreadyBuilt) {
			return Value{}, err
		}
	}
	return vb.root, nil
}

type arrayBuilder struct {
	arr    Array
	sorted bool
	doneCB doneCB
	built  bool
}

func newArrayBuilder(sorted bool, cb doneCB) *arrayBuilder {
	return &arrayBuilder{sorted: sorted, doneCB: cb}
}

var _ ArrayBuilder = (*arrayBuilder)(nil)

// Write converts val with From and appends it.
func (a *arrayBuilder) Write(val any) error {
	if a.built {
		return errAlreadyBuilt
	}
	v, err := From(val)
	if err != nil {
		return err
	}
	a.arr.Push(v)
	return nil
}

// Array returns a builder whose result is appended to this array when built.
func (a *arrayBuilder) Array() ArrayBuilder {
	return newArrayBuilder(a.sorted, func(v Value) { a.arr.Push(v) })
}

// Object returns a builder whose result is appended to this array when built.
func (a *arrayBuilder) Object() ObjectBuilder {
	return newObjectBuilder(a.sorted, func(v Value) { a.arr.Push(v) })
}

func (a *arrayBuilder) Build() error {
	if a.built {
		return errAlreadyBuilt
	}
	a.built = true
	if a.doneCB != nil {
		a.doneCB(ArrayValue(a.arr))
	}
	return nil
}

type objectBuilder struct {
	obj    Object
	sorted bool
	keys   map[string]struct{}
	doneCB doneCB
	built  bool
}

func newObjectBuilder(sorted bool, cb doneCB) *objectBuilder {
	obj := NewHashObject()
	if sorted {
		obj = NewSortedObject()
	}
	return &objectBuilder{obj: obj, sorted: sorted, keys: make(map[string]struct{}), doneCB: cb}
}

var _ ObjectBuilder = (*objectBuilder)(nil)

// Keys within a given object must be unique. Pending nested builders reserve
// their key.
func (o *objectBuilder) checkKey(key string) error {
	if o.built {
		return errAlreadyBuilt
	}
	if _, ok := o.keys[key]; ok {
		return fmt.Errorf("multiple insertion of key %q in object", key)
	}
	o.keys[key] = struct{}{}
	return nil
}

// Write converts val with From and stores it under key.
func (o *objectBuilder) Write(key string, val any) error {
	if err := o.checkKey(key); err != nil {
		return err
	}
	v, err := From(val)
	if err != nil {
		delete(o.keys, key)
		return err
	}
	o.obj.Insert(key, v)
	return nil
}

// Array returns a builder whose result is stored under key when built.
func (o *objectBuilder) Array(key string) (ArrayBuilder, error) {
	if err := o.checkKey(key); err != nil {
		return nil, err
	}
	return newArrayBuilder(o.sorted, func(v Value) { o.obj.Insert(key, v) }), nil
}

// Object returns a builder whose result is stored under key when built. A
// nested object may reuse keys of its parent.
func (o *objectBuilder) Object(key string) (ObjectBuilder, error) {
	if err := o.checkKey(key); err != nil {
		return nil, err
	}
	return newObjectBuilder(o.sorted, func(v Value) { o.obj.Insert(key, v) }), nil
}

func (o *objectBuilder) Build() error {
	if o.built {
		return errAlreadyBuilt
	}
	o.built = true
	if o.doneCB != nil {
		o.doneCB(ObjectValue(o.obj))
	}
	return nil
}
