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

var (
	// ErrUnsupportedOperation reports an expression with no shape rule.
	// Non-fatal: the target's shape is treated as unknown.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrUnsupportedCall reports a recognized array-math call with a name
	// that has no shape rule. Non-fatal.
	ErrUnsupportedCall = errors.New("unsupported call")

	// ErrShapeConflict reports two control-flow paths disagreeing on a
	// variable's shape. Non-fatal: the shape is downgraded to unknown.
	ErrShapeConflict = errors.New("shape conflict")

	// ErrUnknownVariable reports a shape lookup on a variable that was
	// never recorded. This is a defect in the pass's own dispatch and
	// aborts the analysis.
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrNoArrayOperand reports a broadcast over operands none of which
	// is an array. This is a defect in the pass's own dispatch and
	// aborts the analysis.
	ErrNoArrayOperand = errors.New("no array operand")
)
