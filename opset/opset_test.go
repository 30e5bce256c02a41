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

package opset_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gx-org/shapeq/opset"
)

func TestNumPy(t *testing.T) {
	set := opset.NumPy()
	if err := set.Validate(); err != nil {
		t.Fatalf("default set is invalid: %v", err)
	}
	if set.Module != "numpy" {
		t.Errorf("got module %q but want numpy", set.Module)
	}
	tests := []struct {
		check func(string) bool
		name  string
		want  bool
	}{
		{check: set.IsBinary, name: "+", want: true},
		{check: set.IsBinary, name: "@", want: false},
		{check: set.IsUnary, name: "-", want: true},
		{check: set.IsUnary, name: "*", want: false},
		{check: set.IsUFunc, name: "sqrt", want: true},
		{check: set.IsUFunc, name: "dot", want: false},
		{check: set.IsUFunc, name: "reshape", want: false},
	}
	for _, test := range tests {
		if got := test.check(test.name); got != test.want {
			t.Errorf("%s: got %v but want %v", test.name, got, test.want)
		}
	}
}

func TestRead(t *testing.T) {
	const doc = `
module: linalg
unary: ["-"]
binary: ["+", "*"]
ufuncs: [axpy, gemv]
`
	got, err := opset.Read(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("cannot read set: %v", err)
	}
	want := &opset.Set{
		Module: "linalg",
		Unary:  []string{"-"},
		Binary: []string{"+", "*"},
		UFuncs: []string{"axpy", "gemv"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("set mismatch (-want +got):\n%s", diff)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "no module", doc: `unary: ["-"]`},
		{name: "unknown field", doc: "module: numpy\nops: []"},
		{name: "not yaml", doc: "{"},
	}
	for _, test := range tests {
		if _, err := opset.Read(strings.NewReader(test.doc)); err == nil {
			t.Errorf("%s: no error reading %q", test.name, test.doc)
		}
	}
}
