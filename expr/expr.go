// Copyright 2025 Grad ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package expr provides the public API for building, evaluating and
// differentiating symbolic expressions in the Grad framework.
//
// The package defines the closed set of expression node kinds:
//   - Number, Symbol: leaf nodes
//   - Negative, Add, Multiply: composite operator nodes
//   - DiffOp, Derivative: bare and applied partial-derivative operators
//   - Tensor: shape-homogeneous collections (see the tensor package)
//
// Example:
//
//	syms := expr.Symbols("x y")
//	x, y := syms[0], syms[1]
//	f := expr.NewMultiply(x, y)
//	v, _ := expr.Eval(f, expr.Values(map[string]float64{"x": 2, "y": 5}))
//	fmt.Println(v) // 10
package expr

import (
	"github.com/grad-ml/grad/internal/expr"
)

// Type aliases for public API

// Node is a symbolic expression tree node. The concrete variants are
// *Number, *Symbol, *Negative, *Add, *Multiply, *DiffOp, *Derivative and
// *Tensor; the set is closed.
type Node = expr.Node

// Number is a scalar constant node.
type Number = expr.Number

// Symbol is a named leaf standing for an unbound variable.
type Symbol = expr.Symbol

// Negative negates its single operand.
type Negative = expr.Negative

// Add is an n-ary sum node holding at least one operand.
type Add = expr.Add

// Multiply is an n-ary product node holding at least one operand.
type Multiply = expr.Multiply

// DiffOp is the bare differential operator d/dWrt, not yet applied.
type DiffOp = expr.DiffOp

// Derivative is the applied partial derivative of Arg with respect to Wrt.
type Derivative = expr.Derivative

// Tensor is an ordered, shape-homogeneous collection of sub-expressions.
type Tensor = expr.Tensor

// Shape represents the dimensions of a tensor node.
type Shape = expr.Shape

// Bindings maps symbol names to the values substituted during evaluation.
type Bindings = expr.Bindings

// ShapeError reports the two shapes an operation could not reconcile.
type ShapeError = expr.ShapeError

// Errors returned by the engine. All mark contract violations at the point
// of the offending call.
var (
	ErrUnsupportedType  = expr.ErrUnsupportedType
	ErrShapeMismatch    = expr.ErrShapeMismatch
	ErrInvalidOperation = expr.ErrInvalidOperation
	ErrEmptyTensor      = expr.ErrEmptyTensor
)

// Construction

// NewNumber creates a scalar constant node.
func NewNumber(value float64) *Number {
	return expr.NewNumber(value)
}

// NewSymbol creates a named variable node. Panics if name is empty.
func NewSymbol(name string) *Symbol {
	return expr.NewSymbol(name)
}

// NewNegative creates the negation of arg.
func NewNegative(arg Node) *Negative {
	return expr.NewNegative(arg)
}

// NewAdd creates an n-ary sum node.
func NewAdd(first Node, rest ...Node) *Add {
	return expr.NewAdd(first, rest...)
}

// NewMultiply creates an n-ary product node.
func NewMultiply(first Node, rest ...Node) *Multiply {
	return expr.NewMultiply(first, rest...)
}

// NewDiffOp creates the bare differential operator d/dwrt. Supplying the
// expression it acts on goes through its Apply method.
func NewDiffOp(wrt *Symbol) *DiffOp {
	return expr.NewDiffOp(wrt)
}

// Coercion

// Express normalizes a raw Go value into an expression node: nodes pass
// through, single-token strings become Symbols, slices become Tensors and
// numeric scalars become Numbers. Anything else fails with
// ErrUnsupportedType.
func Express(v any) (Node, error) {
	return expr.Express(v)
}

// MustExpress is Express that panics on error.
func MustExpress(v any) Node {
	return expr.MustExpress(v)
}

// Symbols creates one Symbol per whitespace-separated token in names.
func Symbols(names string) []*Symbol {
	return expr.Symbols(names)
}

// Evaluation and differentiation

// Values adapts a plain numeric environment into Bindings.
func Values(vals map[string]float64) Bindings {
	return expr.Values(vals)
}

// Eval reduces n under the given bindings. The result is numeric when every
// symbol resolves transitively, and a residual expression otherwise; an
// unbound Symbol evaluates to itself.
func Eval(n Node, b Bindings) (Node, error) {
	return expr.Eval(n, b)
}

// Diff computes the exact partial derivative of n with respect to wrt,
// a *Symbol or a *Tensor of symbols (the gradient case).
func Diff(n Node, wrt Node) (Node, error) {
	return expr.Diff(n, wrt)
}

// Grad builds the gradient vector of n with respect to the given symbols.
func Grad(n Node, syms ...*Symbol) (*Tensor, error) {
	return expr.Grad(n, syms...)
}

// FreeSymbols returns the sorted, deduplicated names of the symbols the
// evaluation of n can depend on.
func FreeSymbols(n Node) []string {
	return expr.FreeSymbols(n)
}

// Simplify rewrites n into a semantically equivalent tree with identity
// operands eliminated and singleton operand lists collapsed.
func Simplify(n Node) Node {
	return expr.Simplify(n)
}

// Inspection

// Numeric reports the value of a fully-reduced scalar node. It returns
// false for anything that is not a *Number.
func Numeric(n Node) (float64, bool) {
	return expr.Numeric(n)
}

// ShapeOf returns the shape of n; scalar nodes have an empty shape.
func ShapeOf(n Node) Shape {
	return expr.ShapeOf(n)
}

// OrderOf returns the tensor order of n: 0 for scalars, 1 for vectors,
// 2 for matrices, and so on.
func OrderOf(n Node) int {
	return expr.OrderOf(n)
}

// MarshalTree encodes an expression tree as tagged JSON objects with a
// "kind" discriminator per node. There is no decoder: parsing expressions
// back is out of scope for the engine.
func MarshalTree(n Node) ([]byte, error) {
	return expr.MarshalTree(n)
}
