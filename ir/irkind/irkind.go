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

// Package irkind defines kinds for the instruction representation (IR)
// consumed by the shape equivalence analysis.
package irkind

import "github.com/gx-org/backend/dtype"

// Kind of a type.
type Kind uint

// DefaultInt is the kind used for synthesized size variables.
const DefaultInt = Int64

// Kind of data supported by the IR.
const (
	Invalid = Kind(dtype.Invalid)

	Bool     = Kind(dtype.Bool)
	Int32    = Kind(dtype.Int32)
	Int64    = Kind(dtype.Int64)
	Uint32   = Kind(dtype.Uint32)
	Uint64   = Kind(dtype.Uint64)
	Bfloat16 = Kind(dtype.Bfloat16)
	Float32  = Kind(dtype.Float32)
	Float64  = Kind(dtype.Float64)

	// Array is an array of some element kind.
	Array = Kind(iota + dtype.MaxDataType)
	// Tuple is a fixed-size tuple of a uniform element kind.
	Tuple
	// Func is a callable value.
	Func
	// Module is a reference to an imported module.
	Module
	// Unknown is the kind of values the host compiler could not type.
	Unknown

	// Max value for a Kind constant.
	Max
)

// String returns a string representation of a kind.
func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Bfloat16:
		return "bfloat16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Array:
		return "array"
	case Tuple:
		return "tuple"
	case Func:
		return "func"
	case Module:
		return "module"
	case Unknown:
		return "unknown"
	}
	return "invalid"
}

// DType converts a kind into an array data type.
func (k Kind) DType() dtype.DataType {
	if k >= Kind(dtype.MaxDataType) {
		return dtype.Invalid
	}
	return dtype.DataType(k)
}

// IsInteger returns true if kind is an integer.
func IsInteger(kind Kind) bool {
	switch kind {
	case Int32, Int64, Uint32, Uint64:
		return true
	}
	return false
}

// IsFloat returns true if kind is a float.
func IsFloat(kind Kind) bool {
	switch kind {
	case Bfloat16, Float32, Float64:
		return true
	}
	return false
}
