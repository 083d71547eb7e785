package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTensorAdd(t *testing.T) {
	a := vec(t, 1, 2, 3)
	b := vec(t, 10, 20, 30)

	got, err := TensorAdd(a, b)
	require.NoError(t, err)
	data, err := got.(*Tensor).Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 22, 33}, data)
}

func TestTensorAdd_ScalarBroadcast(t *testing.T) {
	a := vec(t, 1, 2)

	got, err := TensorAdd(a, NewNumber(5))
	require.NoError(t, err)
	data, err := got.(*Tensor).Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 7}, data)

	// Either operand order, and symbolic scalars stay residual.
	got, err = TensorAdd(NewSymbol("c"), a)
	require.NoError(t, err)
	res, err := Eval(got, Values(map[string]float64{"c": 1}))
	require.NoError(t, err)
	data, err = res.(*Tensor).Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, data)
}

func TestTensorAdd_ScalarPair(t *testing.T) {
	// Two order-0 operands degrade to plain symbolic addition.
	got, err := TensorAdd(NewSymbol("x"), NewNumber(1))
	require.NoError(t, err)
	_, ok := got.(*Add)
	assert.True(t, ok)

	got, err = TensorAdd(NewNumber(2), NewNumber(3))
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.(*Number).Value)
}

func TestTensorAdd_ShapeMismatch(t *testing.T) {
	_, err := TensorAdd(vec(t, 1, 2), vec(t, 1, 2, 3))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	// Same order is not enough: every axis must agree.
	m1, err := NewTensor(vec(t, 1, 2), vec(t, 3, 4))
	require.NoError(t, err)
	m2, err := NewTensor(vec(t, 1, 2, 3), vec(t, 4, 5, 6))
	require.NoError(t, err)
	_, err = TensorAdd(m1, m2)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestTensorSub(t *testing.T) {
	got, err := TensorSub(vec(t, 5, 7), vec(t, 1, 2))
	require.NoError(t, err)
	data, err := got.(*Tensor).Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5}, data)

	got, err = TensorSub(vec(t, 5, 7), NewNumber(1))
	require.NoError(t, err)
	data, err = got.(*Tensor).Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6}, data)
}

func TestScalarMul(t *testing.T) {
	got, err := ScalarMul(NewNumber(3), vec(t, 1, 2))
	require.NoError(t, err)
	data, err := got.(*Tensor).Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, data)

	// Symbolic scalar over a matrix.
	m, err := NewTensor(vec(t, 1, 2), vec(t, 3, 4))
	require.NoError(t, err)
	got, err = ScalarMul(NewSymbol("k"), m)
	require.NoError(t, err)
	res, err := Eval(got, Values(map[string]float64{"k": 10}))
	require.NoError(t, err)
	data, err = res.(*Tensor).Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30, 40}, data)
}

func TestScalarMul_TensorTensorFails(t *testing.T) {
	_, err := ScalarMul(vec(t, 1, 2), vec(t, 3, 4))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOperation)
}

func TestInner_Vectors(t *testing.T) {
	got, err := Inner(vec(t, 1, 2, 3), vec(t, 4, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, 32.0, got.(*Number).Value)
}

func TestInner_SymbolicVectors(t *testing.T) {
	// [a,b,c]·[d,e,f] = a*d + b*e + c*f under any resolving binding.
	a, err := NewTensor(NewSymbol("a"), NewSymbol("b"), NewSymbol("c"))
	require.NoError(t, err)
	b, err := NewTensor(NewSymbol("d"), NewSymbol("e"), NewSymbol("f"))
	require.NoError(t, err)

	dot, err := Inner(a, b)
	require.NoError(t, err)
	bind := Values(map[string]float64{"a": 1, "b": 2, "c": 3, "d": 4, "e": 5, "f": 6})
	assert.Equal(t, 32.0, evalNum(t, dot, bind))
}

func TestInner_LengthMismatch(t *testing.T) {
	_, err := Inner(vec(t, 1, 2), vec(t, 1, 2, 3))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestInner_MatrixVector(t *testing.T) {
	m, err := NewTensor(vec(t, 1, 2), vec(t, 3, 4))
	require.NoError(t, err)

	// [2 2] · [2] → [2].
	got, err := Inner(m, vec(t, 10, 1))
	require.NoError(t, err)
	res, ok := got.(*Tensor)
	require.True(t, ok)
	assert.True(t, Shape{2}.Equal(res.Shape()))
	data, err := res.Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{12, 34}, data)
}

func TestInner_VectorMatrix(t *testing.T) {
	m, err := NewTensor(vec(t, 1, 2), vec(t, 3, 4))
	require.NoError(t, err)

	// [2] · [2 2] → [2]: row-vector times matrix.
	got, err := Inner(vec(t, 10, 1), m)
	require.NoError(t, err)
	data, err := got.(*Tensor).Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{13, 24}, data)
}

func TestInner_MatrixMatrix(t *testing.T) {
	a, err := NewTensor(vec(t, 1, 2), vec(t, 3, 4))
	require.NoError(t, err)
	id, err := Eye(2)
	require.NoError(t, err)

	// A · I = A.
	got, err := Inner(a, id)
	require.NoError(t, err)
	res := got.(*Tensor)
	assert.True(t, Shape{2, 2}.Equal(res.Shape()))
	data, err := res.Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, data)

	// Non-trivial product: [[1,2],[3,4]] · [[5,6],[7,8]].
	b, err := NewTensor(vec(t, 5, 6), vec(t, 7, 8))
	require.NoError(t, err)
	got, err = Inner(a, b)
	require.NoError(t, err)
	data, err = got.(*Tensor).Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{19, 22, 43, 50}, data)
}

func TestOuter(t *testing.T) {
	// [1,0] ⊗ [1,0] = [[1,0],[0,0]].
	got, err := Outer(vec(t, 1, 0), vec(t, 1, 0))
	require.NoError(t, err)
	assert.True(t, Shape{2, 2}.Equal(got.Shape()))
	res, err := Eval(got, nil)
	require.NoError(t, err)
	data, err := res.(*Tensor).Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 0}, data)
}

func TestOuter_Symbolic(t *testing.T) {
	a, err := NewTensor(NewSymbol("a"), NewSymbol("b"))
	require.NoError(t, err)
	b, err := NewTensor(NewSymbol("c"), NewSymbol("d"))
	require.NoError(t, err)

	got, err := Outer(a, b)
	require.NoError(t, err)
	res, err := Eval(got, Values(map[string]float64{"a": 1, "b": 2, "c": 3, "d": 4}))
	require.NoError(t, err)
	data, err := res.(*Tensor).Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 6, 8}, data)
}

func TestOuter_HigherOrderFails(t *testing.T) {
	m, err := NewTensor(vec(t, 1, 2), vec(t, 3, 4))
	require.NoError(t, err)

	_, err = Outer(m, vec(t, 1, 2))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOperation)

	_, err = Outer(vec(t, 1, 2), m)
	assert.ErrorIs(t, err, ErrInvalidOperation)
}

func TestTranspose(t *testing.T) {
	m, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	tr := Transpose(m)
	assert.True(t, Shape{3, 2}.Equal(tr.Shape()))
	data, err := tr.Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, data)
}

func TestTranspose_SelfInverse(t *testing.T) {
	m, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{3, 2})
	require.NoError(t, err)

	back := Transpose(Transpose(m))
	assert.Empty(t, treeDiff(Node(m), Node(back)))
}

func TestTranspose_LowOrder(t *testing.T) {
	v := vec(t, 1, 2, 3)
	assert.Same(t, v, Transpose(v))
}

func TestTranspose_HigherOrder(t *testing.T) {
	// Order 3 transposes each order-2 element.
	cube, err := FromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8}, Shape{2, 2, 2})
	require.NoError(t, err)

	tr := Transpose(cube)
	assert.True(t, Shape{2, 2, 2}.Equal(tr.Shape()))
	data, err := tr.Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 2, 4, 5, 7, 6, 8}, data)
}
