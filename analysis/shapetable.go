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
)

// recordShape stores the shape inferred for a variable and returns true.
//
// If a different shape was already recorded from another block, the
// variable is downgraded: its shape becomes all-unknown for the remainder
// of the analysis, its size backing is discarded, and recordShape returns
// false. The pass visits blocks once in stored order, so this is the only
// treatment of control flow: no fixpoint is attempted.
func (a *Analysis) recordShape(name string, shape Shape) bool {
	prev, ok := a.shapes.Load(name)
	if ok && !slices.Equal(prev, shape) {
		unknown := make(Shape, len(prev))
		for i := range unknown {
			unknown[i] = ClassUnknown
		}
		a.shapes.Store(name, unknown)
		delete(a.sizeVars, name)
		a.report(errors.Wrapf(ErrShapeConflict, "incompatible shapes for %s in control flow", name))
		return false
	}
	a.shapes.Store(name, shape)
	return true
}

// shapeOf returns a copy of the recorded shape of a variable. The copy
// keeps callers from aliasing the stored vector, which class merges rename
// in place.
func (a *Analysis) shapeOf(name string) (Shape, error) {
	shape, ok := a.shapes.Load(name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownVariable, "no shape recorded for %s", name)
	}
	return slices.Clone(shape), nil
}

// addParamShape gives a fresh class to every dimension of an array-typed
// function parameter. The first use of the parameter establishes its
// dimension identities; later uses read them back.
func (a *Analysis) addParamShape(name string) (Shape, error) {
	if shape, ok := a.shapes.Load(name); ok {
		return slices.Clone(shape), nil
	}
	rank, err := a.rankOf(name)
	if err != nil {
		return nil, err
	}
	shape := make(Shape, rank)
	for i := range shape {
		shape[i] = a.newClass()
	}
	a.shapes.Store(name, shape)
	return slices.Clone(shape), nil
}
