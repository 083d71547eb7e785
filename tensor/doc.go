// Copyright 2025 Grad ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides symbolic tensor algebra for the Grad framework.
//
// # Overview
//
// Tensors hold expressions, not raw numbers: every element is a node from
// the expr package, so tensor algebra composes with symbolic evaluation and
// differentiation. This package provides:
//   - Constructors (New, FromSlice, Zeros, Ones, Full, Eye, SymbolVector)
//   - Elementwise Add/Sub with exact shape checking and scalar broadcasting
//   - Inner (contraction), Outer and Transpose
//
// # Basic Usage
//
//	import (
//	    "github.com/grad-ml/grad/expr"
//	    "github.com/grad-ml/grad/tensor"
//	)
//
//	func main() {
//	    v, _ := tensor.SymbolVector("v", 3)
//
//	    // Kinetic energy ½·v·v
//	    dot, _ := tensor.Inner(v, v)
//	    energy := expr.NewMultiply(expr.NewNumber(0.5), dot)
//
//	    // Its gradient with respect to v is v itself
//	    grad, _ := expr.Diff(energy, v)
//	}
//
// # Shape Rules
//
// Elementwise operations require exact shape equality between two tensors;
// a scalar operand broadcasts over every element. Multiplying two tensors
// elementwise is deliberately undefined — contraction goes through Inner,
// all-pairs products through Outer — so a shape accident can never produce
// a silently wrong result.
package tensor
