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

import "github.com/pkg/errors"

// broadcastVars infers the shape of an elementwise operation over the
// named operands under the broadcasting rule: shapes align from their
// trailing dimension and a size-1 dimension is compatible with any size.
//
// Every dimension equality the rule relies on is recorded as a class
// merge, not only the final result: broadcasting a dimension of class c
// against one of class e proves the two lengths equal whenever neither is
// statically 1.
//
// At least one operand must be an array. Non-array operands are scalar
// constants and contribute an empty shape, which padding turns into
// size-1 dimensions.
func (a *Analysis) broadcastVars(names ...string) (Shape, error) {
	hasArray := false
	for _, name := range names {
		if a.isArray(name) {
			hasArray = true
			break
		}
	}
	if !hasArray {
		return nil, errors.Wrapf(ErrNoArrayOperand, "broadcast over %v", names)
	}
	shapes := make([]Shape, len(names))
	ndims := 0
	for i, name := range names {
		if !a.isArray(name) {
			shapes[i] = Shape{}
			continue
		}
		shape, err := a.shapeOf(name)
		if err != nil {
			return nil, err
		}
		shapes[i] = shape
		ndims = max(ndims, len(shape))
	}
	// Left-pad with class 0 so all shapes align on their last dimension.
	for i, shape := range shapes {
		if len(shape) == ndims {
			continue
		}
		padded := make(Shape, ndims)
		for j := range ndims - len(shape) {
			padded[j] = ClassSizeOne
		}
		copy(padded[ndims-len(shape):], shape)
		shapes[i] = padded
	}
	out := make(Shape, ndims)
	for i := range ndims {
		c := shapes[0][i]
		for _, shape := range shapes {
			e := shape[i]
			if e == ClassSizeOne || e == c {
				continue
			}
			if c == ClassSizeOne {
				c = e
				continue
			}
			c = a.mergeClasses(c, e)
		}
		out[i] = c
	}
	return out, nil
}
