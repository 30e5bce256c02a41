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

// Package irhelper provides helper functions to build IR programmatically.
package irhelper

import (
	"github.com/gx-org/shapeq/ir"
	"github.com/gx-org/shapeq/ir/irkind"
)

// VarOf returns a reference to a variable.
func VarOf(name string) *ir.Var {
	return &ir.Var{Name: name}
}

// Vars returns references to variables given their names.
func Vars(names ...string) []*ir.Var {
	vars := make([]*ir.Var, len(names))
	for i, name := range names {
		vars[i] = VarOf(name)
	}
	return vars
}

// Assign returns an assignment of an expression to a target variable.
func Assign(target string, value ir.Expr) *ir.Assign {
	return &ir.Assign{Target: VarOf(target), Value: value}
}

// Block returns a block with a body of instructions.
func Block(id ir.BlockID, body ...ir.Instr) *ir.Block {
	return &ir.Block{ID: id, Body: body}
}

// Func returns a function with the given blocks and an empty type map.
func Func(name string, blocks ...*ir.Block) *ir.Func {
	fn := ir.NewFunc(name)
	for _, block := range blocks {
		fn.AddBlock(block)
	}
	return fn
}

// ArrayOf returns an array type.
func ArrayOf(dtyp irkind.Kind, rank int) *ir.ArrayType {
	return &ir.ArrayType{DTyp: dtyp, Rank: rank}
}

// TupleOf returns a fixed-size tuple type.
func TupleOf(elem ir.Type, count int) *ir.TupleType {
	return &ir.TupleType{Elem: elem, Count: count}
}

// SetType records the static type of a variable in a function's type map.
func SetType(fn *ir.Func, name string, typ ir.Type) {
	fn.TypeMap[name] = typ
}

// Call returns a call to the value held by a variable.
func Call(fun string, args ...string) *ir.Call {
	return &ir.Call{Func: VarOf(fun), Args: Vars(args...)}
}

// Getattr returns an attribute access.
func Getattr(x, attr string) *ir.Getattr {
	return &ir.Getattr{X: VarOf(x), Attr: attr}
}

// Global returns a global reference.
func Global(name string, gk ir.GlobalKind) *ir.Global {
	return &ir.Global{Name: name, GK: gk}
}

// IntConst returns an integer constant.
func IntConst(v int64) *ir.Const {
	return &ir.Const{Value: v}
}

// TupleConst returns a tuple constant of integers.
func TupleConst(vs ...int64) *ir.Const {
	tuple := make(ir.Tuple, len(vs))
	for i, v := range vs {
		tuple[i] = v
	}
	return &ir.Const{Value: tuple}
}

// BuildTuple returns a tuple construction from variables.
func BuildTuple(items ...string) *ir.BuildTuple {
	exprs := make([]ir.Expr, len(items))
	for i, item := range items {
		exprs[i] = VarOf(item)
	}
	return &ir.BuildTuple{Items: exprs}
}

// Binary returns a binary operation.
func Binary(op, x, y string) *ir.Binary {
	return &ir.Binary{Op: op, X: VarOf(x), Y: VarOf(y)}
}

// Unary returns a unary operation.
func Unary(op, x string) *ir.Unary {
	return &ir.Unary{Op: op, X: VarOf(x)}
}

// FusedVars returns a fused elementwise tree combining variables with one
// operator, associating to the left.
func FusedVars(op string, names ...string) *ir.Fused {
	if len(names) == 0 {
		return nil
	}
	node := ir.FusedNode(VarOf(names[0]))
	for _, name := range names[1:] {
		node = &ir.FusedOp{Op: op, Args: []ir.FusedNode{node, VarOf(name)}}
	}
	return &ir.Fused{X: node}
}
