// Copyright 2025 Grad ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package expr provides symbolic expressions for the Grad framework.
//
// # Overview
//
// Expressions are immutable trees built from a closed set of node kinds.
// This package provides:
//   - Typed constructors and the Express/Symbols coercion helpers
//   - Exact symbolic differentiation via the sum and product rules
//   - Evaluation under a typed symbol-binding environment
//   - Identity-eliminating simplification
//
// # Basic Usage
//
//	import "github.com/grad-ml/grad/expr"
//
//	func main() {
//	    syms := expr.Symbols("x y")
//	    x, y := syms[0], syms[1]
//
//	    f := expr.NewMultiply(x, y)
//
//	    // Full evaluation
//	    v, _ := expr.Eval(f, expr.Values(map[string]float64{"x": 2, "y": 5}))
//	    fmt.Println(v) // 10
//
//	    // Partial derivative, partially evaluated
//	    d, _ := expr.Diff(f, x)
//	    r, _ := expr.Eval(d, expr.Values(map[string]float64{"y": 5}))
//	    fmt.Println(r) // 5
//	}
//
// # Deferred Differential Operators
//
// A DiffOp is the operator d/dx before it has anything to act on. Apply
// supplies the argument; the derivative stays symbolic until Eval forces it:
//
//	ddx := expr.NewDiffOp(x)
//	p := ddx.Apply(f)      // the node d/dx f
//	v, _ := expr.Eval(p, bindings)
//
// # Residual Evaluation
//
// Eval never fails on missing bindings: unbound symbols evaluate to
// themselves and the resolved parts fold around them, so the result of a
// partial evaluation is a smaller expression that can be evaluated again
// later.
//
// Evaluation of incomplete tensor bindings, elementwise shape rules and the
// inner/outer/transpose operations live in the tensor package.
package expr
