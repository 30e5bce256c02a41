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

package analysis

import (
	"github.com/pkg/errors"

	"github.com/gx-org/shapeq/ir"
)

// inferShape returns the shape of the right-hand side of an assignment to
// an array variable, dispatching over the closed set of expression
// variants.
//
// Expressions with no rule yield an empty shape and a diagnostic; the
// returned error is reserved for internal invariant breaks.
func (a *Analysis) inferShape(rhs ir.Expr) (Shape, error) {
	switch rhsT := rhs.(type) {
	case *ir.Arg:
		if !a.isArray(rhsT.Name) {
			return nil, errors.Errorf("parameter %s assigned to an array variable is not array-typed", rhsT.Name)
		}
		return a.addParamShape(rhsT.Name)
	case *ir.Var:
		return a.shapeOf(rhsT.Name)
	case *ir.Unary:
		if !a.set.IsUnary(rhsT.Op) {
			a.unsupported(rhs)
			return Shape{}, nil
		}
		if !a.isArray(rhsT.X.Name) {
			return nil, errors.Errorf("operand %s of elementwise %s is not an array", rhsT.X.Name, rhsT.Op)
		}
		return a.shapeOf(rhsT.X.Name)
	case *ir.Binary:
		if !a.set.IsBinary(rhsT.Op) {
			a.unsupported(rhs)
			return Shape{}, nil
		}
		return a.broadcastVars(rhsT.X.Name, rhsT.Y.Name)
	case *ir.InplaceBinary:
		if !a.set.IsBinary(rhsT.ImmutableOp) {
			a.unsupported(rhs)
			return Shape{}, nil
		}
		return a.broadcastVars(rhsT.X.Name, rhsT.Y.Name)
	case *ir.Fused:
		return a.broadcastVars(dedupNames(rhsT.Vars())...)
	case *ir.Cast:
		return a.shapeOf(rhsT.X.Name)
	case *ir.Call:
		return a.inferCall(rhsT)
	case *ir.Getattr:
		// Matrix transpose is the one attribute producing an array.
		if a.isArray(rhsT.X.Name) && rhsT.Attr == "T" {
			return a.inferNamedCall("transpose", []*ir.Var{rhsT.X})
		}
	}
	a.unsupported(rhs)
	return Shape{}, nil
}

// inferCall resolves the target of a call through the symbol tables built
// while sweeping: a map-like global, a function fetched from the
// array-math module, or a method fetched from an array.
func (a *Analysis) inferCall(call *ir.Call) (Shape, error) {
	fname := call.Func.Name
	if a.mapCalls[fname] {
		if len(call.Args) == 0 {
			return nil, errors.Errorf("map-like call %s has no argument", fname)
		}
		return a.shapeOf(call.Args[0].Name)
	}
	if name, ok := a.moduleCalls[fname]; ok {
		return a.inferNamedCall(name, call.Args)
	}
	if ac, ok := a.attrCalls[fname]; ok {
		// A method call on an array is the named call with the
		// receiver as first argument.
		args := append([]*ir.Var{{Name: ac.arr}}, call.Args...)
		return a.inferNamedCall(ac.attr, args)
	}
	a.unsupported(call)
	return Shape{}, nil
}

// dedupNames returns the names of the variables, keeping the first
// occurrence of each.
func dedupNames(vars []*ir.Var) []string {
	seen := make(map[string]bool, len(vars))
	names := make([]string, 0, len(vars))
	for _, v := range vars {
		if seen[v.Name] {
			continue
		}
		seen[v.Name] = true
		names = append(names, v.Name)
	}
	return names
}
