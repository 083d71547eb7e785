package expr

import "fmt"

// TensorAdd adds two values elementwise.
//
// Two tensors must match shapes exactly; a tensor and an order-0 value
// broadcast the scalar over every element; two order-0 values degrade to a
// plain symbolic sum. Numeric pairs fold on the spot.
func TensorAdd(a, b Node) (Node, error) {
	return addValues(a, b)
}

// TensorSub subtracts b from a elementwise, under the same shape rules as
// TensorAdd.
func TensorSub(a, b Node) (Node, error) {
	return addValues(a, negValue(b))
}

// ScalarMul multiplies a tensor by an order-0 value, broadcasting the scalar
// over every element (either operand order). Multiplying two tensors is not
// defined and fails with ErrInvalidOperation: tensor-tensor combination must
// go through Inner or Outer.
func ScalarMul(s, t Node) (Node, error) {
	return mulValues(s, t)
}

// Inner contracts two tensors over the last axis of the left operand and
// the first axis of the right.
//
// Two vectors of equal length contract to the scalar sum of elementwise
// products. A higher-order left operand maps Inner across its leading axis,
// so matrix-vector and matrix-matrix products follow the standard
// contraction:
//
//	[m n] · [n]   → [m]
//	[m n] · [n p] → [m p]
//
// Mismatched contraction lengths fail with a ShapeError.
func Inner(a, b *Tensor) (Node, error) {
	if a.Order() > 1 {
		rows := make([]Node, len(a.elems))
		for i, e := range a.elems {
			row, err := Inner(e.(*Tensor), b)
			if err != nil {
				return nil, err
			}
			rows[i] = row
		}
		return newTensorOf(rows), nil
	}
	if b.Order() > 1 {
		// v · B contracts v against B's leading axis: the sum of B's
		// sub-tensors scaled by the matching element of v.
		if len(a.elems) != len(b.elems) {
			return nil, &ShapeError{Op: "inner", Left: a.shape, Right: b.shape}
		}
		var acc Node
		for k := range a.elems {
			term, err := ScalarMul(a.elems[k], b.elems[k])
			if err != nil {
				return nil, err
			}
			if k == 0 {
				acc = term
				continue
			}
			acc, err = TensorAdd(acc, term)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	}
	if len(a.elems) != len(b.elems) {
		return nil, &ShapeError{Op: "inner", Left: a.shape, Right: b.shape}
	}
	var acc Node
	for i := range a.elems {
		prod, err := mulValues(a.elems[i], b.elems[i])
		if err != nil {
			return nil, err
		}
		if i == 0 {
			acc = prod
			continue
		}
		acc, err = addValues(acc, prod)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// Outer builds the all-pairs product of two vectors: an order-2 tensor with
// element (i, j) = a[i] * b[j]. Higher-order operands are not implemented
// and fail explicitly with ErrInvalidOperation rather than producing a
// silently wrong result.
func Outer(a, b *Tensor) (*Tensor, error) {
	if a.Order() != 1 || b.Order() != 1 {
		return nil, fmt.Errorf("%w: outer product needs two order-1 tensors, got orders %d and %d",
			ErrInvalidOperation, a.Order(), b.Order())
	}
	rows := make([]Node, len(a.elems))
	for i, ai := range a.elems {
		row := make([]Node, len(b.elems))
		for j, bj := range b.elems {
			prod, err := mulValues(ai, bj)
			if err != nil {
				return nil, err
			}
			row[j] = prod
		}
		rows[i] = newTensorOf(row)
	}
	return newTensorOf(rows), nil
}

// Transpose swaps the two axes of an order-2 tensor. Higher-order tensors
// transpose each element recursively; vectors and below are their own
// transpose.
func Transpose(t *Tensor) *Tensor {
	switch {
	case t.Order() <= 1:
		return t
	case t.Order() == 2:
		rows, cols := t.shape[0], t.shape[1]
		flipped := make([]Node, cols)
		for j := 0; j < cols; j++ {
			col := make([]Node, rows)
			for i := 0; i < rows; i++ {
				col[i] = t.elems[i].(*Tensor).elems[j]
			}
			flipped[j] = newTensorOf(col)
		}
		return newTensorOf(flipped)
	default:
		elems := make([]Node, len(t.elems))
		for i, e := range t.elems {
			elems[i] = Transpose(e.(*Tensor))
		}
		return newTensorOf(elems)
	}
}
