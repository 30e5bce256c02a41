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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gx-org/shapeq/ir"
	"github.com/gx-org/shapeq/ir/irhelper"
	"github.com/gx-org/shapeq/ir/irkind"
	"github.com/gx-org/shapeq/opset"
)

func newTestAnalysis() *Analysis {
	return New(irhelper.Func("test"), opset.NumPy())
}

func TestNewClass(t *testing.T) {
	a := newTestAnalysis()
	c1, c2 := a.newClass(), a.newClass()
	if c1 == c2 {
		t.Errorf("got the same class %v twice", c1)
	}
	if c1 == ClassSizeOne || c1 == ClassUnknown || c2 == ClassSizeOne || c2 == ClassUnknown {
		t.Errorf("got reserved classes %v, %v", c1, c2)
	}
}

func TestMergeTransitivity(t *testing.T) {
	a := newTestAnalysis()
	cA, cB, cC := a.newClass(), a.newClass(), a.newClass()
	a.shapes.Store("x", Shape{cA, cB})
	a.shapes.Store("y", Shape{cC, cA})
	repA, repB, repC := irhelper.VarOf("nA"), irhelper.VarOf("nB"), irhelper.VarOf("nC")
	a.classSizes.Store(cA, []ir.Expr{repA})
	a.classSizes.Store(cB, []ir.Expr{repB})
	a.classSizes.Store(cC, []ir.Expr{repC})

	cAB := a.mergeClasses(cA, cB)
	final := a.mergeClasses(cAB, cC)

	for name, shape := range a.shapes.Iter() {
		for i, c := range shape {
			if c != final {
				t.Errorf("%s dimension %d: got class %v but want %v", name, i, c, final)
			}
		}
	}
	for _, old := range []Class{cA, cB, cC, cAB} {
		if _, ok := a.classSizes.Load(old); ok {
			t.Errorf("merged class %v still has a size entry", old)
		}
	}
	reps, ok := a.classSizes.Load(final)
	if !ok {
		t.Fatalf("final class %v has no size entry", final)
	}
	want := []ir.Expr{repA, repB, repC}
	if diff := cmp.Diff(want, reps); diff != "" {
		t.Errorf("representative mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeSameClass(t *testing.T) {
	a := newTestAnalysis()
	c := a.newClass()
	next := a.nextClass
	if got := a.mergeClasses(c, c); got != c {
		t.Errorf("got class %v but want %v", got, c)
	}
	if a.nextClass != next {
		t.Errorf("merging a class with itself allocated a class")
	}
}

func TestMergeUnknown(t *testing.T) {
	a := newTestAnalysis()
	c := a.newClass()
	a.shapes.Store("x", Shape{c})
	if got := a.mergeClasses(c, ClassUnknown); got != ClassUnknown {
		t.Errorf("got class %v but want %v", got, ClassUnknown)
	}
	shape, _ := a.shapes.Load("x")
	if shape[0] != c {
		t.Errorf("merging with the unknown class renamed class %v", c)
	}
}

func testArrayFunc(ranks map[string]int) *ir.Func {
	fn := irhelper.Func("test")
	for name, rank := range ranks {
		irhelper.SetType(fn, name, irhelper.ArrayOf(irkind.Float64, rank))
	}
	return fn
}
