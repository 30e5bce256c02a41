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
	"slices"

	"github.com/pkg/errors"

	"github.com/gx-org/shapeq/ir"
)

// inferNamedCall applies the shape rule of a recognized array-math
// function or array method. Unknown names yield a rank-1 unknown shape and
// a diagnostic.
func (a *Analysis) inferNamedCall(name string, args []*ir.Var) (Shape, error) {
	if len(args) == 0 {
		return nil, errors.Errorf("array-math call %s has no argument", name)
	}
	switch name {
	case "transpose":
		shape, err := a.shapeOf(args[0].Name)
		if err != nil {
			return nil, err
		}
		slices.Reverse(shape)
		return shape, nil
	case "empty", "zeros", "ones":
		return a.classesFromShapeArg(args[0])
	case "empty_like", "zeros_like", "ones_like":
		return a.shapeOf(args[0].Name)
	case "reshape":
		// The input shape is ignored entirely. A -1 placeholder
		// dimension in the shape argument is not inferred from the
		// input length; it gets a fresh class like any other element.
		if len(args) < 2 {
			return nil, errors.Errorf("reshape call with %d arguments", len(args))
		}
		return a.classesFromShapeArg(args[1])
	case "dot":
		return a.inferDot(args)
	}
	if a.set.IsUFunc(name) {
		names := make([]string, len(args))
		for i, arg := range args {
			names[i] = arg.Name
		}
		return a.broadcastVars(names...)
	}
	a.report(errors.Wrapf(ErrUnsupportedCall, "unknown %s call %s", a.set.Module, name))
	return Shape{ClassUnknown}, nil
}

// inferDot applies the matrix-product rule: the last dimension of the
// first operand is contracted against the only dimension of a rank-1
// second operand, or its second-to-last dimension otherwise. The contracted
// dimensions are merged, proving them equal, but the merged class is not
// part of the output shape. A third argument is an output buffer and does
// not take part in shape inference.
func (a *Analysis) inferDot(args []*ir.Var) (Shape, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, errors.Errorf("dot call with %d arguments", len(args))
	}
	in1, in2 := args[0].Name, args[1].Name
	s1, err := a.shapeOf(in1)
	if err != nil {
		return nil, err
	}
	s2, err := a.shapeOf(in2)
	if err != nil {
		return nil, err
	}
	ndims1, ndims2 := len(s1), len(s2)
	if ndims1 == 0 || ndims2 == 0 {
		return nil, errors.Errorf("dot operand of rank 0")
	}
	c1 := s1[ndims1-1]
	var c2 Class
	if ndims2 == 1 {
		c2 = s2[0]
	} else {
		c2 = s2[ndims2-2]
	}
	a.mergeClasses(c1, c2)

	// The merge renames classes through the recorded shapes, so the
	// output is built from fresh reads, not from the copies above.
	if s1, err = a.shapeOf(in1); err != nil {
		return nil, err
	}
	if s2, err = a.shapeOf(in2); err != nil {
		return nil, err
	}
	out := make(Shape, 0, ndims1+ndims2-2)
	out = append(out, s1[:ndims1-1]...)
	for i := 0; i < ndims2-2; i++ {
		out = append(out, s2[i])
	}
	if ndims2 > 1 {
		out = append(out, s2[ndims2-1])
	}
	return out, nil
}

// classesFromShapeArg allocates classes for an array-creation call from
// its shape argument: one fresh class backed by the argument itself if the
// argument is a scalar integer, or one fresh class per element of a static
// tuple, each backed by the corresponding element.
func (a *Analysis) classesFromShapeArg(arg *ir.Var) (Shape, error) {
	typ := a.fn.TypeOf(arg.Name)
	if ir.IsInteger(typ) {
		c := a.newClass()
		a.classSizes.Store(c, []ir.Expr{arg})
		return Shape{c}, nil
	}
	tup, ok := typ.(*ir.TupleType)
	if !ok {
		return nil, errors.Errorf("shape argument %s has type %v: want an integer or a tuple", arg.Name, typ)
	}
	elts, ok := a.tuples[arg.Name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownVariable, "no tuple recorded for shape argument %s", arg.Name)
	}
	if len(elts) != tup.Count {
		return nil, errors.Errorf("shape argument %s has %d elements but its type declares %d", arg.Name, len(elts), tup.Count)
	}
	shape := make(Shape, tup.Count)
	for i := range shape {
		c := a.newClass()
		a.classSizes.Store(c, []ir.Expr{elts[i]})
		shape[i] = c
	}
	return shape, nil
}
