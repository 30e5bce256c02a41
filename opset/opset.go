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

// Package opset declares which operators and function names the shape
// equivalence analysis recognizes as elementwise.
//
// The set is static configuration supplied by the host compiler, either
// built in (NumPy) or loaded from a YAML document.
package opset

import (
	"io"
	"os"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Set of recognized operators and function names.
type Set struct {
	// Module is the name of the array-math module whose imports the
	// analysis tracks.
	Module string `yaml:"module"`

	// Unary operators applying elementwise to an array.
	Unary []string `yaml:"unary"`

	// Binary operators applying elementwise to two operands.
	Binary []string `yaml:"binary"`

	// UFuncs are universal function names: calls broadcasting over all
	// their positional arguments.
	UFuncs []string `yaml:"ufuncs"`
}

// NumPy returns the default set: the NumPy module with its elementwise
// operators and supported universal functions.
func NumPy() *Set {
	return &Set{
		Module: "numpy",
		Unary:  []string{"+", "-", "~"},
		Binary: []string{
			"+", "-", "*", "/", "//", "%", "**",
			"&", "|", "^", "<<", ">>",
			"==", "!=", "<", "<=", ">", ">=",
		},
		UFuncs: []string{
			"add", "subtract", "multiply", "divide", "true_divide",
			"floor_divide", "mod", "power", "negative", "absolute",
			"sign", "conj", "exp", "exp2", "expm1", "log", "log2",
			"log10", "log1p", "sqrt", "square", "reciprocal", "sin",
			"cos", "tan", "arcsin", "arccos", "arctan", "arctan2",
			"sinh", "cosh", "tanh", "arcsinh", "arccosh", "arctanh",
			"floor", "ceil", "trunc", "rint", "maximum", "minimum",
			"fmax", "fmin", "hypot", "logical_and", "logical_or",
			"logical_xor", "logical_not", "greater", "greater_equal",
			"less", "less_equal", "equal", "not_equal", "copysign",
			"fmod", "remainder",
		},
	}
}

// Read decodes a set from a YAML document.
func Read(r io.Reader) (*Set, error) {
	set := &Set{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(set); err != nil {
		return nil, errors.Wrap(err, "cannot decode operator set")
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// Load reads a set from a YAML file.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open operator set %s", path)
	}
	defer f.Close()
	set, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read operator set %s", path)
	}
	return set, nil
}

// Validate returns an error if the set cannot be used by the analysis.
func (s *Set) Validate() error {
	if s.Module == "" {
		return errors.New("operator set has no module name")
	}
	return nil
}

// IsUnary returns true if op is a recognized elementwise unary operator.
func (s *Set) IsUnary(op string) bool {
	return slices.Contains(s.Unary, op)
}

// IsBinary returns true if op is a recognized elementwise binary operator.
func (s *Set) IsBinary(op string) bool {
	return slices.Contains(s.Binary, op)
}

// IsUFunc returns true if name is a recognized universal function.
func (s *Set) IsUFunc(name string) bool {
	return slices.Contains(s.UFuncs, name)
}
