// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ir

import (
	"fmt"

	"github.com/gx-org/shapeq/ir/irkind"
)

// Type of a variable, supplied by the host compiler's type inference.
type Type interface {
	Node

	// Kind of the type.
	Kind() irkind.Kind

	// String representation of the type.
	String() string
}

// ----------------------------------------------------------------------------
// Array and tuple types.
type (
	// ArrayType is an array of a given rank and element kind.
	ArrayType struct {
		DTyp irkind.Kind
		Rank int
	}

	// TupleType is a fixed-size tuple with a uniform element type.
	TupleType struct {
		Elem  Type
		Count int
	}
)

var _ Type = (*ArrayType)(nil)

func (*ArrayType) node() {}

// Kind of the type.
func (*ArrayType) Kind() irkind.Kind { return irkind.Array }

// String representation of the type.
func (t *ArrayType) String() string {
	return fmt.Sprintf("array(%s, %dd)", t.DTyp, t.Rank)
}

var _ Type = (*TupleType)(nil)

func (*TupleType) node() {}

// Kind of the type.
func (*TupleType) Kind() irkind.Kind { return irkind.Tuple }

// String representation of the type.
func (t *TupleType) String() string {
	return fmt.Sprintf("tuple(%s, %d)", t.Elem, t.Count)
}

// ----------------------------------------------------------------------------
// Scalar types.

type scalarType struct {
	knd irkind.Kind
}

func (*scalarType) node() {}

func (t *scalarType) Kind() irkind.Kind { return t.knd }

func (t *scalarType) String() string { return t.knd.String() }

var (
	boolT    = &scalarType{knd: irkind.Bool}
	int32T   = &scalarType{knd: irkind.Int32}
	int64T   = &scalarType{knd: irkind.Int64}
	uint32T  = &scalarType{knd: irkind.Uint32}
	uint64T  = &scalarType{knd: irkind.Uint64}
	float32T = &scalarType{knd: irkind.Float32}
	float64T = &scalarType{knd: irkind.Float64}
)

// BoolType returns the type for a boolean.
func BoolType() Type { return boolT }

// Int32Type returns the type for a int32.
func Int32Type() Type { return int32T }

// Int64Type returns the type for a int64.
func Int64Type() Type { return int64T }

// Uint32Type returns the type for a uint32.
func Uint32Type() Type { return uint32T }

// Uint64Type returns the type for a uint64.
func Uint64Type() Type { return uint64T }

// Float32Type returns the type for a float32.
func Float32Type() Type { return float32T }

// Float64Type returns the type for a float64.
func Float64Type() Type { return float64T }

// ----------------------------------------------------------------------------
// Opaque types. The analysis never looks inside these; they exist so the
// type map can be total over the function's variables.

type funcType struct{}

var funcT = &funcType{}

func (*funcType) node() {}

func (*funcType) Kind() irkind.Kind { return irkind.Func }

func (*funcType) String() string { return "func" }

// FuncType returns the type of a callable value.
func FuncType() Type { return funcT }

type moduleType struct {
	name string
}

func (*moduleType) node() {}

func (*moduleType) Kind() irkind.Kind { return irkind.Module }

func (t *moduleType) String() string { return "module(" + t.name + ")" }

// ModuleType returns the type of a reference to an imported module.
func ModuleType(name string) Type { return &moduleType{name: name} }

type unknownType struct{}

var unknownT = &unknownType{}

func (*unknownType) node() {}

func (*unknownType) Kind() irkind.Kind { return irkind.Unknown }

func (*unknownType) String() string { return "unknown" }

// UnknownType returns the type of a value the host compiler could not type.
func UnknownType() Type { return unknownT }

// ----------------------------------------------------------------------------
// Helpers.

// ArrayTypeOf returns the array type of a variable and true if the variable
// is array-typed.
func ArrayTypeOf(t Type) (*ArrayType, bool) {
	arr, ok := t.(*ArrayType)
	return arr, ok
}

// IsInteger returns true if the type is an integer scalar.
func IsInteger(t Type) bool {
	if t == nil {
		return false
	}
	return irkind.IsInteger(t.Kind())
}
