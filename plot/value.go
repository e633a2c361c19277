// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"reflect"

	"github.com/aclements/go-gg/table"
)

type valueKind int

const (
	undefinedValue valueKind = iota
	constantValue
	fieldValue
	arrayValue
	funcValue
)

// A Value defines a channel. It is exactly one of: undefined (the
// zero Value), a constant that applies to every row, the name of a
// column in the mark's table, a literal slice with one element per
// row, or a function computed per row.
//
// Most options accept any Go value and convert it to a Value (see
// the option documentation), but passing a Value directly bypasses
// that guessing. For example, Field("red") binds a column named
// "red" even though "red" is also a color.
type Value struct {
	kind     valueKind
	constant interface{}
	field    string
	array    reflect.Value
	fn       func(t *table.Table, i int) interface{}
}

// Const returns a constant Value.
func Const(v interface{}) Value {
	return Value{kind: constantValue, constant: v}
}

// Field returns a Value that reads column name of the mark's table.
func Field(name string) Value {
	return Value{kind: fieldValue, field: name}
}

// Array returns a Value whose i'th row is the i'th element of
// slice. It panics if slice is not a slice or array.
func Array(slice interface{}) Value {
	sv := reflect.ValueOf(slice)
	if k := sv.Kind(); k != reflect.Slice && k != reflect.Array {
		panic(fmt.Sprintf("Array of %T; not a slice", slice))
	}
	return Value{kind: arrayValue, array: sv}
}

// Func returns a Value computed by calling f for each row.
func Func(f func(t *table.Table, i int) interface{}) Value {
	return Value{kind: funcValue, fn: f}
}

// Index is a Value that yields each row's index.
var Index = Func(func(_ *table.Table, i int) interface{} { return i })

// Identity is a Value that yields each row's value in the first
// column of the mark's table. It is meant for single-column tables.
var Identity = Func(func(t *table.Table, i int) interface{} {
	if t == nil || len(t.Columns()) == 0 {
		return nil
	}
	return reflect.ValueOf(t.MustColumn(t.Columns()[0])).Index(i).Interface()
})

// Defined reports whether v is not the zero Value.
func (v Value) Defined() bool {
	return v.kind != undefinedValue
}

// IsConstant reports whether v is a constant.
func (v Value) IsConstant() bool {
	return v.kind == constantValue
}

// Constant returns the value of a constant Value, or nil.
func (v Value) Constant() interface{} {
	if v.kind != constantValue {
		return nil
	}
	return v.constant
}

// FieldName returns the column name of a field Value, or "".
func (v Value) FieldName() string {
	if v.kind != fieldValue {
		return ""
	}
	return v.field
}

func (v Value) String() string {
	switch v.kind {
	case constantValue:
		return fmt.Sprintf("const(%v)", v.constant)
	case fieldValue:
		return fmt.Sprintf("field(%s)", v.field)
	case arrayValue:
		return fmt.Sprintf("array[%d]", v.array.Len())
	case funcValue:
		return "func"
	}
	return "undefined"
}

// length returns the number of rows v implies on its own, or -1 if
// v doesn't determine a row count.
func (v Value) length() int {
	if v.kind == arrayValue {
		return v.array.Len()
	}
	return -1
}

// eval computes v for n rows of t. t may be nil. A field that t
// doesn't have evaluates to all nils, as do short arrays past their
// end.
func (v Value) eval(t *table.Table, n int) []interface{} {
	out := make([]interface{}, n)
	switch v.kind {
	case constantValue:
		for i := range out {
			out[i] = v.constant
		}
	case fieldValue:
		if t == nil {
			break
		}
		col := t.Column(v.field)
		if col == nil {
			Warning.Printf("missing field %q", v.field)
			break
		}
		cv := reflect.ValueOf(col)
		for i := 0; i < n && i < cv.Len(); i++ {
			out[i] = cv.Index(i).Interface()
		}
	case arrayValue:
		for i := 0; i < n && i < v.array.Len(); i++ {
			out[i] = v.array.Index(i).Interface()
		}
	case funcValue:
		for i := range out {
			out[i] = v.fn(t, i)
		}
	}
	return out
}
