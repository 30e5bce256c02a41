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
	"strconv"

	"github.com/gx-org/shapeq/ir"
)

// ensureSizes makes sure every dimension of a freshly assigned array is
// backed by a runtime size value. A dimension whose class already has a
// representative reuses it; otherwise instructions fetching the length
// from the array's shape metadata are generated and the result becomes the
// class's representative. The returned instructions are spliced right
// after the triggering assignment.
func (a *Analysis) ensureSizes(target *ir.Var, shape Shape) []ir.Instr {
	sizes := make([]ir.Expr, len(shape))
	var generated []ir.Instr
	for i, c := range shape {
		if c != ClassUnknown {
			if reps, ok := a.classSizes.Load(c); ok && len(reps) > 0 {
				sizes[i] = reps[0]
				continue
			}
		}
		instrs, sizeVar := a.genSizeCall(target, i, len(shape))
		generated = append(generated, instrs...)
		if c != ClassUnknown {
			a.classSizes.Store(c, []ir.Expr{sizeVar})
		}
		sizes[i] = sizeVar
	}
	a.sizeVars[target.Name] = sizes
	return generated
}

// genSizeCall builds the instructions fetching the length of dimension i
// of an array:
//
//	A_sh_attr0 = A.shape
//	$constA0 = const(0)
//	A_size0 = A_sh_attr0[0]
//
// The synthesized variables are typed in the function's type map and the
// static index access gets a call-type entry for later lowering stages.
func (a *Analysis) genSizeCall(v *ir.Var, i int, ndims int) ([]ir.Instr, *ir.Var) {
	dim := strconv.Itoa(i)
	out := make([]ir.Instr, 0, 3)

	attr := &ir.Var{Name: a.names.Name(v.Name + "_sh_attr" + dim)}
	a.fn.TypeMap[attr.Name] = &ir.TupleType{Elem: ir.Int64Type(), Count: ndims}
	out = append(out, &ir.Assign{Target: attr, Value: &ir.Getattr{X: v, Attr: "shape"}})

	cst := &ir.Var{Name: a.names.Name("$const" + v.Name + dim)}
	a.fn.TypeMap[cst.Name] = ir.Int64Type()
	out = append(out, &ir.Assign{Target: cst, Value: &ir.Const{Value: int64(i)}})

	size := &ir.Var{Name: a.names.Name(v.Name + "_size" + dim)}
	a.fn.TypeMap[size.Name] = ir.Int64Type()
	getitem := &ir.StaticGetItem{X: attr, Index: i, IndexVar: cst}
	a.fn.CallTypes[getitem] = nil
	out = append(out, &ir.Assign{Target: size, Value: getitem})
	return out, size
}
