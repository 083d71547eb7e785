package expr

import "fmt"

// Tensor is an ordered, shape-homogeneous collection of sub-expressions.
// Elements are themselves scalars or lower-order tensors, so vectors,
// matrices and higher-order arrays are all nested Tensors.
//
// The shape is computed once at construction and never changes: a Tensor of
// k elements of shape s has shape (k,) + s and order 1 + element order.
//
// Example:
//
//	v, _ := expr.NewTensor(x, y, expr.NewNumber(1)) // shape [3]
//	m, _ := expr.NewTensor(v, v)                    // shape [2 3]
type Tensor struct {
	elems []Node
	shape Shape
}

// NewTensor creates a tensor from one or more elements.
// All elements must share the same shape; construction is all-or-nothing.
// Returns ErrEmptyTensor for zero elements and a ShapeError (wrapping
// ErrShapeMismatch) for heterogeneous element shapes.
func NewTensor(elems ...Node) (*Tensor, error) {
	if len(elems) == 0 {
		return nil, fmt.Errorf("%w: got zero elements", ErrEmptyTensor)
	}
	elemShape := nodeShape(elems[0])
	for _, e := range elems[1:] {
		if s := nodeShape(e); !s.Equal(elemShape) {
			return nil, &ShapeError{Op: "tensor", Left: elemShape, Right: s}
		}
	}
	shape := make(Shape, 0, 1+len(elemShape))
	shape = append(shape, len(elems))
	shape = append(shape, elemShape...)
	held := make([]Node, len(elems))
	copy(held, elems)
	return &Tensor{elems: held, shape: shape}, nil
}

// newTensorOf rebuilds a tensor from elements already known to be
// shape-homogeneous (elementwise maps that preserve element shapes).
func newTensorOf(elems []Node) *Tensor {
	shape := make(Shape, 0, 4)
	shape = append(shape, len(elems))
	shape = append(shape, nodeShape(elems[0])...)
	return &Tensor{elems: elems, shape: shape}
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape.Clone()
}

// Order returns the tensor's nesting depth: 1 for vectors, 2 for matrices.
func (t *Tensor) Order() int {
	return len(t.shape)
}

// Len returns the extent of the leading axis.
func (t *Tensor) Len() int {
	return len(t.elems)
}

// NumElements returns the total number of scalar slots.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// Elems returns a copy of the element list. Elements along the leading
// axis appear in construction order.
func (t *Tensor) Elems() []Node {
	elems := make([]Node, len(t.elems))
	copy(elems, t.elems)
	return elems
}

// At returns the sub-expression at the given indices. Fewer indices than
// the order select a sub-tensor along the leading axes.
// Panics if no index is given, if more indices than the order are given,
// or if an index is out of bounds.
//
// Example:
//
//	m.At(1)    // row 1 (a vector)
//	m.At(1, 2) // row 1, column 2 (a scalar node)
func (t *Tensor) At(indices ...int) Node {
	if len(indices) == 0 || len(indices) > len(t.shape) {
		panic(fmt.Sprintf("expected between 1 and %d indices, got %d", len(t.shape), len(indices)))
	}
	var n Node = t
	for i, idx := range indices {
		cur := n.(*Tensor)
		if idx < 0 || idx >= len(cur.elems) {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, len(cur.elems)))
		}
		n = cur.elems[idx]
	}
	return n
}

// Item returns the value of a fully-numeric single-element tensor.
func (t *Tensor) Item() (float64, error) {
	if t.NumElements() != 1 {
		return 0, fmt.Errorf("%w: Item needs a single-element tensor, got shape %v", ErrInvalidOperation, t.shape)
	}
	data, err := t.Data()
	if err != nil {
		return 0, err
	}
	return data[0], nil
}

// Data flattens a fully-numeric tensor into a row-major []float64.
// Returns an error wrapping ErrInvalidOperation if any element is still
// symbolic.
func (t *Tensor) Data() ([]float64, error) {
	data := make([]float64, 0, t.NumElements())
	return t.appendData(data)
}

func (t *Tensor) appendData(data []float64) ([]float64, error) {
	for _, e := range t.elems {
		switch e := e.(type) {
		case *Number:
			data = append(data, e.Value)
		case *Tensor:
			var err error
			data, err = e.appendData(data)
			if err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: element %s is not a concrete number", ErrInvalidOperation, e)
		}
	}
	return data, nil
}
