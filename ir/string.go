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

package ir

import (
	"fmt"
	"strings"
)

// String representation of the variable reference.
func (v *Var) String() string { return v.Name }

// String representation of the parameter.
func (a *Arg) String() string {
	return fmt.Sprintf("arg(%d, %s)", a.Index, a.Name)
}

// String representation of the global reference.
func (g *Global) String() string {
	return fmt.Sprintf("global(%s)", g.Name)
}

// String representation of the attribute access.
func (g *Getattr) String() string {
	return fmt.Sprintf("%s.%s", g.X, g.Attr)
}

// String representation of the tuple construction.
func (b *BuildTuple) String() string {
	items := make([]string, len(b.Items))
	for i, item := range b.Items {
		items[i] = item.String()
	}
	return fmt.Sprintf("build_tuple(%s)", strings.Join(items, ", "))
}

// String representation of the constant.
func (c *Const) String() string {
	return fmt.Sprintf("const(%v)", c.Value)
}

// String representation of the unary operation.
func (u *Unary) String() string {
	return fmt.Sprintf("%s%s", u.Op, u.X)
}

// String representation of the binary operation.
func (b *Binary) String() string {
	return fmt.Sprintf("%s %s %s", b.X, b.Op, b.Y)
}

// String representation of the in-place binary operation.
func (b *InplaceBinary) String() string {
	return fmt.Sprintf("%s %s %s", b.X, b.Op, b.Y)
}

// String representation of the fused tree.
func (f *Fused) String() string {
	return fmt.Sprintf("fused(%s)", fusedString(f.X))
}

func fusedString(n FusedNode) string {
	switch nT := n.(type) {
	case *Var:
		return nT.String()
	case *Const:
		return nT.String()
	case *FusedOp:
		args := make([]string, len(nT.Args))
		for i, arg := range nT.Args {
			args[i] = fusedString(arg)
		}
		return "(" + strings.Join(args, " "+nT.Op+" ") + ")"
	}
	return fmt.Sprintf("<%T>", n)
}

// String representation of the cast.
func (c *Cast) String() string {
	return fmt.Sprintf("cast(%s)", c.X)
}

// String representation of the call.
func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", c.Func, strings.Join(args, ", "))
}

// String representation of the static index access.
func (g *StaticGetItem) String() string {
	return fmt.Sprintf("%s[%d]", g.X, g.Index)
}

// String representation of the assignment.
func (a *Assign) String() string {
	return fmt.Sprintf("%s = %s", a.Target, a.Value)
}

// String representation of the return.
func (r *Return) String() string {
	if r.X == nil {
		return "return"
	}
	return fmt.Sprintf("return %s", r.X)
}

// String representation of the jump.
func (j *Jump) String() string {
	return fmt.Sprintf("jump %d", j.To)
}

// String representation of the branch.
func (b *Branch) String() string {
	return fmt.Sprintf("branch %s, %d, %d", b.Cond, b.True, b.False)
}

// String representation of the block.
func (b *Block) String() string {
	var s strings.Builder
	fmt.Fprintf(&s, "block %d:\n", b.ID)
	for _, inst := range b.Body {
		fmt.Fprintf(&s, "  %s\n", inst)
	}
	return s.String()
}

// String representation of the function.
func (f *Func) String() string {
	var s strings.Builder
	fmt.Fprintf(&s, "func %s:\n", f.Name)
	for _, block := range f.Blocks.Iter() {
		s.WriteString(block.String())
	}
	return s.String()
}
