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

// Package ir is the per-function instruction representation consumed by the
// shape equivalence analysis.
//
// A function is a set of basic blocks, each holding a flat list of
// instructions. Expressions are a closed set of variants: the host compiler
// lowers its bytecode into these nodes before running any analysis, so a
// semantic operation such as a library call appears as separate generic
// instructions (a global reference, an attribute access, then a call).
package ir

import (
	"github.com/gx-org/shapeq/base/ordered"
)

// ----------------------------------------------------------------------------
// Types of node in the tree.
type (
	// Node in the instruction tree.
	Node interface {
		// node marks a structure as a node structure.
		// It prevents external implementations of the interface.
		node()
	}

	// Instr is an instruction in a block body.
	Instr interface {
		Node

		// instr marks the closed set of instruction variants.
		instr()

		// String representation of the instruction.
		String() string
	}

	// Expr is the right-hand side of an assignment.
	Expr interface {
		Node

		// expr marks the closed set of expression variants.
		expr()

		// String representation of the expression.
		String() string
	}
)

// BlockID identifies a basic block within a function.
type BlockID int

// Block is a basic block: a flat list of instructions.
type Block struct {
	ID   BlockID
	Body []Instr
}

// Signature describes the type of a call-like expression.
type Signature struct {
	Params []Type
	Result Type
}

// Func is a function under analysis: its blocks, the static type of every
// variable, and the signature of every call-like expression.
//
// Blocks preserve the order in which the host compiler stored them. The
// analysis makes no assumption that this order follows control flow.
type Func struct {
	Name   string
	Blocks *ordered.Map[BlockID, *Block]

	// TypeMap gives the static type of every variable.
	// Analyses add entries for the variables they synthesize.
	TypeMap map[string]Type

	// CallTypes records the signature of call-like expressions.
	// A nil entry marks an expression whose signature is resolved by a
	// later lowering stage.
	CallTypes map[Expr]*Signature
}

// NewFunc returns an empty function.
func NewFunc(name string) *Func {
	return &Func{
		Name:      name,
		Blocks:    ordered.NewMap[BlockID, *Block](),
		TypeMap:   make(map[string]Type),
		CallTypes: make(map[Expr]*Signature),
	}
}

// AddBlock appends a block to the function.
func (f *Func) AddBlock(b *Block) *Block {
	f.Blocks.Store(b.ID, b)
	return b
}

// TypeOf returns the static type of a variable, or nil if the variable is
// not in the type map.
func (f *Func) TypeOf(name string) Type {
	return f.TypeMap[name]
}

// ----------------------------------------------------------------------------
// Instructions.
type (
	// Assign stores the value of an expression into a target variable.
	Assign struct {
		Target *Var
		Value  Expr
	}

	// Return terminates the function.
	Return struct {
		X *Var
	}

	// Jump transfers control to another block.
	Jump struct {
		To BlockID
	}

	// Branch transfers control to one of two blocks depending on a
	// condition variable.
	Branch struct {
		Cond        *Var
		True, False BlockID
	}
)

func (*Assign) node()  {}
func (*Assign) instr() {}

func (*Return) node()  {}
func (*Return) instr() {}

func (*Jump) node()  {}
func (*Jump) instr() {}

func (*Branch) node()  {}
func (*Branch) instr() {}

// ----------------------------------------------------------------------------
// Expressions.

// GlobalKind classifies what a global reference resolves to.
type GlobalKind int

const (
	// GlobalOther is a global the analysis does not recognize.
	GlobalOther GlobalKind = iota
	// GlobalModule is an imported module.
	GlobalModule
	// GlobalMapFunc is a function object known to apply elementwise,
	// such as a vectorized user function.
	GlobalMapFunc
)

type (
	// Var is a reference to a function-local variable.
	// It is an expression when it appears as the right-hand side of an
	// assignment on its own.
	Var struct {
		Name string
	}

	// Arg is a function parameter.
	Arg struct {
		Name  string
		Index int
	}

	// Global is a reference to a global value resolved at lowering time.
	Global struct {
		Name string
		GK   GlobalKind
	}

	// Getattr reads an attribute of a value.
	Getattr struct {
		X    *Var
		Attr string
	}

	// BuildTuple constructs a tuple from its elements.
	// Elements are variables or constants.
	BuildTuple struct {
		Items []Expr
	}

	// Const is a compile-time constant. Value holds an int64, float64,
	// bool, or a Tuple.
	Const struct {
		Value any
	}

	// Unary applies a unary operator to a value.
	Unary struct {
		Op string
		X  *Var
	}

	// Binary applies a binary operator to two values.
	Binary struct {
		Op   string
		X, Y *Var
	}

	// InplaceBinary applies an augmented binary operator, such as +=.
	// ImmutableOp is the equivalent non-mutating operator.
	InplaceBinary struct {
		Op          string
		ImmutableOp string
		X, Y        *Var
	}

	// Fused is an elementwise expression tree the host compiler collapsed
	// into a single node, combining several arrays and scalars.
	Fused struct {
		X FusedNode
	}

	// Cast converts a value to another type without changing its shape.
	Cast struct {
		X *Var
	}

	// Call invokes the value held by Func with positional arguments.
	Call struct {
		Func *Var
		Args []*Var
	}

	// StaticGetItem indexes a value with an index known at compile time.
	// IndexVar holds the same index as a runtime value for stages that
	// cannot use the static form.
	StaticGetItem struct {
		X        *Var
		Index    int
		IndexVar *Var
	}
)

// Tuple is a statically known tuple constant.
type Tuple []any

func (*Var) node() {}
func (*Var) expr() {}

func (*Arg) node() {}
func (*Arg) expr() {}

func (*Global) node() {}
func (*Global) expr() {}

func (*Getattr) node() {}
func (*Getattr) expr() {}

func (*BuildTuple) node() {}
func (*BuildTuple) expr() {}

func (*Const) node() {}
func (*Const) expr() {}

func (*Unary) node() {}
func (*Unary) expr() {}

func (*Binary) node() {}
func (*Binary) expr() {}

func (*InplaceBinary) node() {}
func (*InplaceBinary) expr() {}

func (*Fused) node() {}
func (*Fused) expr() {}

func (*Cast) node() {}
func (*Cast) expr() {}

func (*Call) node() {}
func (*Call) expr() {}

func (*StaticGetItem) node() {}
func (*StaticGetItem) expr() {}

// ----------------------------------------------------------------------------
// Fused expression trees.
type (
	// FusedNode is a node in a fused elementwise tree: an operator
	// application, a variable, or a constant.
	FusedNode interface {
		Node

		// fusedNode marks the closed set of fused tree nodes.
		fusedNode()
	}

	// FusedOp applies an elementwise operator to child nodes.
	FusedOp struct {
		Op   string
		Args []FusedNode
	}
)

func (*FusedOp) node()      {}
func (*FusedOp) fusedNode() {}

func (*Var) fusedNode()   {}
func (*Const) fusedNode() {}

// Vars returns every variable appearing in the tree, in preorder.
// Duplicates are preserved.
func (f *Fused) Vars() []*Var {
	var vars []*Var
	var walk func(FusedNode)
	walk = func(n FusedNode) {
		switch nT := n.(type) {
		case *Var:
			vars = append(vars, nT)
		case *FusedOp:
			for _, arg := range nT.Args {
				walk(arg)
			}
		}
	}
	walk(f.X)
	return vars
}
