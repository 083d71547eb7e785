// Copyright 2025 Grad ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/grad-ml/grad/expr"
	"github.com/grad-ml/grad/tensor"
)

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the engine on a scalar and a tensor example",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if err := demoScalar(out); err != nil {
			return err
		}
		fmt.Fprintln(out)
		return demoTensor(out)
	},
}

// demoScalar builds f = xy, evaluates it fully and takes both partials.
func demoScalar(out io.Writer) error {
	fmt.Fprintln(out, blue("== scalar expressions =="))

	syms := expr.Symbols("x y")
	x, y := syms[0], syms[1]
	f := expr.NewMultiply(x, y)
	fmt.Fprintf(out, "f = %s\n", f)

	v, err := expr.Eval(f, expr.Values(map[string]float64{"x": 2, "y": 5}))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "f(x=2, y=5) = %s\n", green(v.String()))

	for _, wrt := range []*expr.Symbol{x, y} {
		d, err := expr.Diff(f, wrt)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "∂f/∂%s = %s, simplified %s\n", wrt, d, green(expr.Simplify(d).String()))
	}

	// A deferred operator: build d/dx first, apply it later.
	ddx := expr.NewDiffOp(x)
	p := ddx.Apply(expr.NewMultiply(x, x))
	v, err = expr.Eval(p, expr.Values(map[string]float64{"x": 3}))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s at x=3 = %s\n", p, green(v.String()))
	return nil
}

// demoTensor shows the gradient of kinetic energy and a matrix contraction.
func demoTensor(out io.Writer) error {
	fmt.Fprintln(out, blue("== tensor algebra =="))

	v, err := tensor.SymbolVector("v", 3)
	if err != nil {
		return err
	}
	dot, err := tensor.Inner(v, v)
	if err != nil {
		return err
	}
	energy := expr.NewMultiply(expr.NewNumber(0.5), dot)
	fmt.Fprintf(out, "T = %s\n", energy)

	grad, err := expr.Diff(energy, v)
	if err != nil {
		return err
	}
	bind := expr.Values(map[string]float64{"v0": 1, "v1": 2, "v2": 3})
	gv, err := expr.Eval(grad, bind)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "∇T at v=[1,2,3] = %s\n", green(gv.String()))

	m, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	if err != nil {
		return err
	}
	mv, err := tensor.Inner(m, v)
	if err != nil {
		return err
	}
	got, err := expr.Eval(mv, bind)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "M%s · v = %s\n", m.Shape(), green(got.String()))
	fmt.Fprintf(out, "Mᵀ has shape %s\n", tensor.Transpose(m).Shape())
	return nil
}
