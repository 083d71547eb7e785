// Copyright 2025 Grad ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for symbolic tensor algebra in the
// Grad framework.
//
// A Tensor is an ordered, shape-homogeneous collection of expression nodes:
// vectors, matrices and higher-order arrays of symbols, constants or whole
// sub-expressions. Elementwise arithmetic, contraction (Inner), outer
// products and transposition all stay symbolic and compose with
// expr.Eval/expr.Diff.
//
// Example:
//
//	v, _ := tensor.SymbolVector("v", 3)
//	dot, _ := tensor.Inner(v, v) // v0v0 + v1v1 + v2v2
package tensor

import (
	"github.com/grad-ml/grad/internal/expr"
)

// Type aliases for public API

// Tensor is an ordered, shape-homogeneous collection of sub-expressions.
type Tensor = expr.Tensor

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} is a matrix with 2 rows and 3 columns.
type Shape = expr.Shape

// Node is a symbolic expression tree node; see the expr package.
type Node = expr.Node

// ShapeError reports the two shapes an operation could not reconcile.
type ShapeError = expr.ShapeError

// Errors surfaced by tensor construction and algebra.
var (
	ErrShapeMismatch    = expr.ErrShapeMismatch
	ErrInvalidOperation = expr.ErrInvalidOperation
	ErrEmptyTensor      = expr.ErrEmptyTensor
)

// Construction

// New creates a tensor from one or more elements of identical shape.
func New(elems ...Node) (*Tensor, error) {
	return expr.NewTensor(elems...)
}

// FromSlice creates a tensor of constant nodes from a flat row-major slice.
//
// Example:
//
//	m, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	return expr.FromSlice(data, shape)
}

// Zeros creates a tensor of the given shape filled with the zero constant.
func Zeros(shape Shape) (*Tensor, error) {
	return expr.Zeros(shape)
}

// Ones creates a tensor of the given shape filled with the one constant.
func Ones(shape Shape) (*Tensor, error) {
	return expr.Ones(shape)
}

// Full creates a tensor of the given shape with every element set to value.
func Full(shape Shape, value float64) (*Tensor, error) {
	return expr.Full(shape, value)
}

// Eye creates an n-by-n identity matrix of constant nodes.
func Eye(n int) (*Tensor, error) {
	return expr.Eye(n)
}

// SymbolVector creates a vector of n symbols named name0 .. name{n-1}.
func SymbolVector(name string, n int) (*Tensor, error) {
	return expr.SymbolVector(name, n)
}

// Algebra

// Add adds two values elementwise. Two tensors must match shapes exactly; a
// tensor and a scalar broadcast the scalar over every element.
func Add(a, b Node) (Node, error) {
	return expr.TensorAdd(a, b)
}

// Sub subtracts b from a elementwise, under the same shape rules as Add.
func Sub(a, b Node) (Node, error) {
	return expr.TensorSub(a, b)
}

// ScalarMul multiplies a tensor by an order-0 value, broadcasting the scalar
// over every element. Multiplying two tensors is not defined and fails with
// ErrInvalidOperation: tensor-tensor combination goes through Inner or Outer.
func ScalarMul(s, t Node) (Node, error) {
	return expr.ScalarMul(s, t)
}

// Inner contracts two tensors over the last axis of the left operand and
// the first axis of the right, generalizing the dot product and
// matrix multiplication:
//
//	[n]   · [n]   → scalar
//	[m n] · [n]   → [m]
//	[m n] · [n p] → [m p]
func Inner(a, b *Tensor) (Node, error) {
	return expr.Inner(a, b)
}

// Outer builds the all-pairs product of two vectors: an order-2 tensor with
// element (i, j) = a[i] * b[j]. Operands of order above 1 fail with
// ErrInvalidOperation.
func Outer(a, b *Tensor) (*Tensor, error) {
	return expr.Outer(a, b)
}

// Transpose swaps the two axes of an order-2 tensor. Higher-order tensors
// transpose each element recursively; vectors and below are their own
// transpose.
func Transpose(t *Tensor) *Tensor {
	return expr.Transpose(t)
}
