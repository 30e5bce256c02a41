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

// shapeqdump runs the shape equivalence analysis on a sample function and
// prints the rewritten instruction stream and the inferred shapes.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/gx-org/shapeq/analysis"
	"github.com/gx-org/shapeq/ir"
	"github.com/gx-org/shapeq/ir/irhelper"
	"github.com/gx-org/shapeq/ir/irkind"
	"github.com/gx-org/shapeq/opset"
)

var (
	noColor   = flag.Bool("no_color", false, "disable colored output")
	opsetPath = flag.String("opset", "", "path to a YAML operator set (default: built-in NumPy set)")
	debug     = flag.Bool("debug", false, "dump the analysis tables after the run")
)

// sample builds the function:
//
//	c = a + b
//	d = numpy.dot(c, m)
//
// where a, b are rank-1 parameters and m is a rank-2 parameter.
func sample() *ir.Func {
	fn := irhelper.Func("sample")
	for _, name := range []string{"a", "b", "c"} {
		irhelper.SetType(fn, name, irhelper.ArrayOf(irkind.Float64, 1))
	}
	irhelper.SetType(fn, "m", irhelper.ArrayOf(irkind.Float64, 2))
	irhelper.SetType(fn, "d", irhelper.ArrayOf(irkind.Float64, 1))
	irhelper.SetType(fn, "np", ir.ModuleType("numpy"))
	irhelper.SetType(fn, "fdot", ir.FuncType())
	fn.AddBlock(irhelper.Block(0,
		irhelper.Assign("np", irhelper.Global("numpy", ir.GlobalModule)),
		irhelper.Assign("fdot", irhelper.Getattr("np", "dot")),
		irhelper.Assign("a", &ir.Arg{Name: "a", Index: 0}),
		irhelper.Assign("b", &ir.Arg{Name: "b", Index: 1}),
		irhelper.Assign("m", &ir.Arg{Name: "m", Index: 2}),
		irhelper.Assign("c", irhelper.Binary("+", "a", "b")),
		irhelper.Assign("d", irhelper.Call("fdot", "m", "c")),
		&ir.Return{X: irhelper.VarOf("d")},
	))
	return fn
}

func run(w io.Writer) error {
	set := opset.NumPy()
	if *opsetPath != "" {
		var err error
		if set, err = opset.Load(*opsetPath); err != nil {
			return err
		}
	}
	fn := sample()
	known := make(map[string]bool, len(fn.TypeMap))
	for name := range fn.TypeMap {
		known[name] = true
	}

	var options []analysis.Option
	if *debug {
		options = append(options, analysis.WithDebug(w))
	}
	options = append(options, analysis.WithLogf(func(format string, args ...any) {
		color.New(color.FgYellow).Fprintf(os.Stderr, format+"\n", args...)
	}))
	an := analysis.New(fn, set, options...)
	if err := an.Run(); err != nil {
		return err
	}

	title := color.New(color.FgCyan, color.Bold)
	synth := color.New(color.FgGreen)
	title.Fprintf(w, "func %s after analysis:\n", fn.Name)
	for block := range fn.Blocks.Values() {
		fmt.Fprintf(w, "block %d:\n", block.ID)
		for _, inst := range block.Body {
			line := "  " + inst.String()
			assign, ok := inst.(*ir.Assign)
			if ok && !known[assign.Target.Name] {
				// An instruction spliced in by the analysis.
				synth.Fprintln(w, line)
				continue
			}
			fmt.Fprintln(w, line)
		}
	}

	title.Fprintln(w, "inferred shapes:")
	arrays := make([]string, 0, len(fn.TypeMap))
	for name := range fn.TypeMap {
		if _, ok := ir.ArrayTypeOf(fn.TypeOf(name)); ok {
			arrays = append(arrays, name)
		}
	}
	sort.Strings(arrays)
	for _, name := range arrays {
		shape, ok := an.ShapeOf(name)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %s: %v\n", name, shape)
	}
	return nil
}

func main() {
	flag.Parse()
	if *noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
