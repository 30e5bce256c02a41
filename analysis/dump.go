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
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/gx-org/shapeq/ir"
)

// dump writes the analysis tables. Ordered tables print in insertion
// order; the call tables print sorted by name.
func (a *Analysis) dump(w io.Writer) {
	fmt.Fprintf(w, "array analysis of %s:\n", a.fn.Name)
	fmt.Fprintln(w, " shape classes:")
	for name, shape := range a.shapes.Iter() {
		fmt.Fprintf(w, "  %s: %v\n", name, shape)
	}
	fmt.Fprintln(w, " class sizes:")
	for c, reps := range a.classSizes.Iter() {
		fmt.Fprintf(w, "  %v: %s\n", c, exprsString(reps))
	}
	fmt.Fprintln(w, " module globals:")
	for _, name := range sortedKeys(a.moduleGlobals) {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w, " map calls:")
	for _, name := range sortedKeys(a.mapCalls) {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w, " module calls:")
	for _, name := range sortedKeys(a.moduleCalls) {
		fmt.Fprintf(w, "  %s: %s\n", name, a.moduleCalls[name])
	}
	fmt.Fprintln(w, " attr calls:")
	for _, name := range sortedKeys(a.attrCalls) {
		ac := a.attrCalls[name]
		fmt.Fprintf(w, "  %s: %s.%s\n", name, ac.arr, ac.attr)
	}
	fmt.Fprintln(w, " tuples:")
	for _, name := range sortedKeys(a.tuples) {
		fmt.Fprintf(w, "  %s: %s\n", name, exprsString(a.tuples[name]))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

func exprsString(exprs []ir.Expr) string {
	ss := make([]string, len(exprs))
	for i, e := range exprs {
		ss[i] = e.String()
	}
	return "[" + strings.Join(ss, ", ") + "]"
}
