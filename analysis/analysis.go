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

// Package analysis infers, for every array variable in a function, the
// equivalence class of each of its dimensions: two dimensions sharing a
// class are provably equal in length at runtime.
//
// The pass makes one forward sweep over every block, in stored order. For
// each assignment to an array variable it computes the result shape from
// the right-hand side, merging classes whenever an operation proves two
// dimensions equal (broadcasting, matrix products). It then splices size
// instructions into the stream so that every inferred dimension is backed
// by a runtime length value, reusing one value per class.
//
// The pass is not a dataflow fixpoint: a variable whose shape disagrees
// between blocks is downgraded to unknown for the rest of the analysis.
package analysis

import (
	"fmt"
	"io"
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/gx-org/shapeq/base/ordered"
	"github.com/gx-org/shapeq/base/uname"
	"github.com/gx-org/shapeq/ir"
	"github.com/gx-org/shapeq/opset"
)

// Class identifies an equivalence class of array dimensions. All dimensions
// sharing a class are provably equal in runtime length.
type Class int

const (
	// ClassSizeOne is the class of dimensions statically known to have
	// size 1: constants and synthetic broadcast dimensions.
	ClassSizeOne Class = 0

	// ClassUnknown marks a dimension for which no equivalence is known.
	// It is never merged and never backed by a representative.
	ClassUnknown Class = -1
)

// String representation of the class.
func (c Class) String() string {
	switch c {
	case ClassSizeOne:
		return "1"
	case ClassUnknown:
		return "?"
	}
	return fmt.Sprintf("c%d", int(c))
}

// Shape is the shape of an array variable: one class per dimension.
type Shape []Class

// attrCall is a method fetched from an array, such as A.sum.
type attrCall struct {
	attr string
	arr  string
}

// Analysis owns all the state of one run over one function.
// An Analysis must not be shared between goroutines; a host analyzing
// functions concurrently creates one Analysis per function.
type Analysis struct {
	fn  *ir.Func
	set *opset.Set

	nextClass Class

	// shapes assigns a class to each dimension of each array variable.
	shapes *ordered.Map[string, Shape]
	// classSizes lists the size values representing each class.
	classSizes *ordered.Map[Class, []ir.Expr]
	// sizeVars gives the size value chosen for each dimension of each
	// array variable.
	sizeVars map[string][]ir.Expr

	// moduleGlobals are variables bound to the array-math module.
	moduleGlobals map[string]bool
	// mapCalls are variables bound to globals known to apply elementwise.
	mapCalls map[string]bool
	// moduleCalls maps variables fetched from the array-math module to
	// the function name they hold.
	moduleCalls map[string]string
	// attrCalls maps variables fetched from an array to the method name
	// and the receiver array.
	attrCalls map[string]attrCall
	// tuples lists the elements of variables holding static tuples.
	tuples map[string][]ir.Expr

	names  *uname.Unique
	diags  error
	debugW io.Writer
	logf   func(format string, args ...any)
}

// Option configures an analysis.
type Option func(*Analysis)

// WithDebug dumps the function and the analysis tables to w after the run.
func WithDebug(w io.Writer) Option {
	return func(a *Analysis) { a.debugW = w }
}

// WithLogf sets the function receiving non-fatal diagnostics as they are
// reported. Diagnostics are accumulated regardless (see Diagnostics).
func WithLogf(logf func(format string, args ...any)) Option {
	return func(a *Analysis) { a.logf = logf }
}

// New returns an analysis of a function.
func New(fn *ir.Func, set *opset.Set, options ...Option) *Analysis {
	a := &Analysis{
		fn:            fn,
		set:           set,
		nextClass:     ClassSizeOne + 1,
		shapes:        ordered.NewMap[string, Shape](),
		classSizes:    ordered.NewMap[Class, []ir.Expr](),
		sizeVars:      make(map[string][]ir.Expr),
		moduleGlobals: make(map[string]bool),
		mapCalls:      make(map[string]bool),
		moduleCalls:   make(map[string]string),
		attrCalls:     make(map[string]attrCall),
		tuples:        make(map[string][]ir.Expr),
		names:         uname.New(),
		logf:          func(string, ...any) {},
	}
	// Class 0 is always backed by the constant 1.
	a.classSizes.Store(ClassSizeOne, []ir.Expr{&ir.Const{Value: int64(1)}})
	for name := range fn.TypeMap {
		a.names.Reserve(name)
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Run sweeps over every block of the function once, in stored order.
//
// Run only returns an error on an internal invariant break. Unsupported
// constructs and control-flow shape conflicts do not stop the sweep: the
// affected variables degrade to unknown shapes and the conditions are
// reported through Diagnostics.
func (a *Analysis) Run() error {
	if a.debugW != nil {
		fmt.Fprintf(a.debugW, "starting array analysis\n%s", a.fn)
	}
	for _, block := range a.fn.Blocks.Iter() {
		if err := a.analyzeBlock(block); err != nil {
			return errors.Wrapf(err, "array analysis of %s", a.fn.Name)
		}
	}
	if a.debugW != nil {
		a.dump(a.debugW)
	}
	return nil
}

// analyzeBlock rewrites the body of a block, splicing the size instructions
// generated for an assignment immediately after it. The new body is built
// aside and installed at the end so that the list being iterated is never
// mutated.
func (a *Analysis) analyzeBlock(block *ir.Block) error {
	body := make([]ir.Instr, 0, len(block.Body))
	for _, inst := range block.Body {
		generated, err := a.analyzeInstr(inst)
		if err != nil {
			return err
		}
		body = append(body, inst)
		body = append(body, generated...)
	}
	block.Body = body
	return nil
}

func (a *Analysis) analyzeInstr(inst ir.Instr) ([]ir.Instr, error) {
	assign, ok := inst.(*ir.Assign)
	if !ok {
		return nil, nil
	}
	return a.analyzeAssign(assign)
}

func (a *Analysis) analyzeAssign(assign *ir.Assign) ([]ir.Instr, error) {
	lhs := assign.Target.Name
	a.registerCalls(lhs, assign.Value)
	if !a.isArray(lhs) {
		return nil, nil
	}
	shape, err := a.inferShape(assign.Value)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot infer the shape of %s", lhs)
	}
	if !a.recordShape(lhs, shape) {
		// Conflicting shape across control flow: the variable has
		// been downgraded and keeps no size backing.
		return nil, nil
	}
	return a.ensureSizes(assign.Target, shape), nil
}

// registerCalls populates the symbol tables recognizing calls that the
// host compiler expresses as separate instructions: a module import, an
// attribute access on the module or on an array, a tuple construction.
func (a *Analysis) registerCalls(lhs string, rhs ir.Expr) {
	switch rhsT := rhs.(type) {
	case *ir.Global:
		switch rhsT.GK {
		case ir.GlobalMapFunc:
			a.mapCalls[lhs] = true
		case ir.GlobalModule:
			if rhsT.Name == a.set.Module {
				a.moduleGlobals[lhs] = true
			}
		}
	case *ir.Getattr:
		if a.moduleGlobals[rhsT.X.Name] {
			a.moduleCalls[lhs] = rhsT.Attr
		} else if a.isArray(rhsT.X.Name) {
			a.attrCalls[lhs] = attrCall{attr: rhsT.Attr, arr: rhsT.X.Name}
		}
	case *ir.BuildTuple:
		a.tuples[lhs] = slices.Clone(rhsT.Items)
	case *ir.Const:
		tuple, ok := rhsT.Value.(ir.Tuple)
		if !ok {
			return
		}
		items := make([]ir.Expr, len(tuple))
		for i, el := range tuple {
			items[i] = &ir.Const{Value: el}
		}
		a.tuples[lhs] = items
	}
}

func (a *Analysis) isArray(name string) bool {
	_, ok := ir.ArrayTypeOf(a.fn.TypeOf(name))
	return ok
}

// rankOf returns the static rank of an array variable from the type map.
func (a *Analysis) rankOf(name string) (int, error) {
	arr, ok := ir.ArrayTypeOf(a.fn.TypeOf(name))
	if !ok {
		return 0, errors.Wrapf(ErrUnknownVariable, "%s is not an array", name)
	}
	return arr.Rank, nil
}

// report accumulates a non-fatal diagnostic.
func (a *Analysis) report(err error) {
	a.diags = multierr.Append(a.diags, err)
	a.logf("%v", err)
}

func (a *Analysis) unsupported(e ir.Expr) {
	a.report(errors.Wrapf(ErrUnsupportedOperation, "no shape rule for expression %s", e))
}

// Diagnostics returns the non-fatal conditions reported during the run,
// or nil if the analysis was exact.
func (a *Analysis) Diagnostics() error {
	return a.diags
}

// ShapeOf returns the inferred shape of an array variable.
func (a *Analysis) ShapeOf(name string) (Shape, bool) {
	shape, ok := a.shapes.Load(name)
	if !ok {
		return nil, false
	}
	return slices.Clone(shape), true
}

// SizeVars returns the size value backing each dimension of an array
// variable.
func (a *Analysis) SizeVars(name string) ([]ir.Expr, bool) {
	sizes, ok := a.sizeVars[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(sizes), true
}

// ClassSizes returns the size values representing a class.
func (a *Analysis) ClassSizes(c Class) []ir.Expr {
	reps, _ := a.classSizes.Load(c)
	return slices.Clone(reps)
}

// EquivalentDims returns true if dimension i of array a1 and dimension j of
// array a2 are provably equal in runtime length.
func (a *Analysis) EquivalentDims(a1 string, i int, a2 string, j int) bool {
	s1, ok := a.shapes.Load(a1)
	if !ok || i >= len(s1) {
		return false
	}
	s2, ok := a.shapes.Load(a2)
	if !ok || j >= len(s2) {
		return false
	}
	if s1[i] == ClassUnknown || s2[j] == ClassUnknown {
		return false
	}
	return s1[i] == s2[j]
}
