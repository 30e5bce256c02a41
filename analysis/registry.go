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

import "slices"

// newClass allocates a fresh equivalence class.
func (a *Analysis) newClass() Class {
	c := a.nextClass
	a.nextClass++
	return c
}

// mergeClasses records the proof that two classes have equal length by
// folding both into a fresh class. The rename is applied eagerly through
// every recorded shape: later instructions in the same sweep read those
// shapes directly and must observe the merge.
//
// The representative size values of both classes are carried over to the
// new class, c1's first. ClassUnknown is never merged: merging with it
// yields ClassUnknown.
func (a *Analysis) mergeClasses(c1, c2 Class) Class {
	if c1 == c2 {
		return c1
	}
	if c1 == ClassUnknown || c2 == ClassUnknown {
		return ClassUnknown
	}
	merged := a.newClass()
	for _, shape := range a.shapes.Iter() {
		for i, c := range shape {
			if c == c1 || c == c2 {
				shape[i] = merged
			}
		}
	}
	reps1, _ := a.classSizes.Delete(c1)
	reps2, _ := a.classSizes.Delete(c2)
	a.classSizes.Store(merged, append(slices.Clone(reps1), reps2...))
	return merged
}
