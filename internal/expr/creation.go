package expr

import (
	"fmt"
	"strconv"
)

// FromSlice creates a tensor of Number nodes from a flat row-major slice.
//
// Example:
//
//	m, _ := expr.FromSlice([]float64{1, 2, 3, 4}, expr.Shape{2, 2})
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}
	return fromFlat(data, shape), nil
}

func fromFlat(data []float64, shape Shape) *Tensor {
	elems := make([]Node, shape[0])
	if len(shape) == 1 {
		for i := range elems {
			elems[i] = &Number{Value: data[i]}
		}
		return newTensorOf(elems)
	}
	stride := shape[1:].NumElements()
	for i := range elems {
		elems[i] = fromFlat(data[i*stride:(i+1)*stride], shape[1:])
	}
	return newTensorOf(elems)
}

// Zeros creates a tensor of the given shape filled with the zero constant.
func Zeros(shape Shape) (*Tensor, error) {
	return Full(shape, 0)
}

// Ones creates a tensor of the given shape filled with the one constant.
func Ones(shape Shape) (*Tensor, error) {
	return Full(shape, 1)
}

// Full creates a tensor of the given shape with every element set to value.
// The shape must have order >= 1 and only positive dimensions.
func Full(shape Shape, value float64) (*Tensor, error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	return fill(shape, value), nil
}

func fill(shape Shape, value float64) *Tensor {
	elems := make([]Node, shape[0])
	for i := range elems {
		if len(shape) == 1 {
			elems[i] = &Number{Value: value}
		} else {
			elems[i] = fill(shape[1:], value)
		}
	}
	return newTensorOf(elems)
}

// Eye creates an n-by-n identity matrix of Number nodes.
func Eye(n int) (*Tensor, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: identity matrix needs n >= 1, got %d", ErrEmptyTensor, n)
	}
	rows := make([]Node, n)
	for i := 0; i < n; i++ {
		row := make([]Node, n)
		for j := 0; j < n; j++ {
			if i == j {
				row[j] = &Number{Value: 1}
			} else {
				row[j] = &Number{Value: 0}
			}
		}
		rows[i] = newTensorOf(row)
	}
	return newTensorOf(rows), nil
}

// SymbolVector creates a vector of n symbols named name0 .. name{n-1}.
//
// Example:
//
//	v, _ := expr.SymbolVector("v", 3) // [v0, v1, v2]
func SymbolVector(name string, n int) (*Tensor, error) {
	if name == "" {
		panic("symbol name must not be empty")
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: symbol vector needs n >= 1, got %d", ErrEmptyTensor, n)
	}
	elems := make([]Node, n)
	for i := range elems {
		elems[i] = &Symbol{Name: name + strconv.Itoa(i)}
	}
	return newTensorOf(elems), nil
}

// checkShape rejects shapes that cannot describe a non-empty tensor.
func checkShape(shape Shape) error {
	if len(shape) == 0 {
		return fmt.Errorf("%w: an order-0 tensor is a scalar, use NewNumber", ErrInvalidOperation)
	}
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrEmptyTensor, err)
	}
	return nil
}
