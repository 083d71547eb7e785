package expr

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalNum evaluates n and requires a fully-numeric scalar result.
func evalNum(t *testing.T, n Node, b Bindings) float64 {
	t.Helper()
	v, err := Eval(n, b)
	require.NoError(t, err)
	num, ok := v.(*Number)
	require.True(t, ok, "expected a numeric result, got %T (%s)", v, v)
	return num.Value
}

// treeDiff compares two expression trees structurally.
func treeDiff(a, b Node) string {
	return cmp.Diff(a, b, cmp.AllowUnexported(Tensor{}))
}

func TestEval_Number(t *testing.T) {
	assert.Equal(t, 4.5, evalNum(t, NewNumber(4.5), nil))
}

func TestEval_Symbol(t *testing.T) {
	x := NewSymbol("x")

	assert.Equal(t, 2.0, evalNum(t, x, Values(map[string]float64{"x": 2})))

	// An unbound symbol evaluates to itself.
	v, err := Eval(x, nil)
	require.NoError(t, err)
	assert.Same(t, Node(x), v)
}

func TestEval_SymbolBoundToExpression(t *testing.T) {
	x, y := NewSymbol("x"), NewSymbol("y")
	f := NewAdd(x, NewNumber(1))

	// x := y*y, then y := 3.
	v, err := Eval(f, Bindings{"x": NewMultiply(y, y)})
	require.NoError(t, err)
	assert.Equal(t, 10.0, evalNum(t, v, Values(map[string]float64{"y": 3})))
}

func TestEval_Negative(t *testing.T) {
	x := NewSymbol("x")
	assert.Equal(t, -3.0, evalNum(t, NewNegative(x), Values(map[string]float64{"x": 3})))

	// Residual negation stays wrapped.
	v, err := Eval(NewNegative(x), nil)
	require.NoError(t, err)
	neg, ok := v.(*Negative)
	require.True(t, ok)
	assert.Same(t, Node(x), neg.Arg)
}

func TestEval_AddMultiply(t *testing.T) {
	x, y := NewSymbol("x"), NewSymbol("y")
	b := Values(map[string]float64{"x": 2, "y": 5})

	assert.Equal(t, 7.0, evalNum(t, NewAdd(x, y), b))
	assert.Equal(t, 10.0, evalNum(t, NewMultiply(x, y), b))
	assert.Equal(t, 9.0, evalNum(t, NewAdd(x, y, NewNumber(2)), b))
	assert.Equal(t, 20.0, evalNum(t, NewMultiply(x, y, NewNumber(2)), b))
}

func TestEval_ResidualComposition(t *testing.T) {
	x, y := NewSymbol("x"), NewSymbol("y")

	// Only x resolves: (x + y) folds to (2 + y).
	v, err := Eval(NewAdd(x, y), Values(map[string]float64{"x": 2}))
	require.NoError(t, err)
	add, ok := v.(*Add)
	require.True(t, ok)
	require.Len(t, add.Args, 2)
	assert.Equal(t, 2.0, add.Args[0].(*Number).Value)
	assert.Same(t, Node(y), add.Args[1])

	// A leading symbolic operand carries through the accumulation.
	v, err = Eval(NewMultiply(y, x), Values(map[string]float64{"x": 2}))
	require.NoError(t, err)
	mul, ok := v.(*Multiply)
	require.True(t, ok)
	assert.Same(t, Node(y), mul.Args[0])
}

func TestEval_Idempotent(t *testing.T) {
	x, y := NewSymbol("x"), NewSymbol("y")
	b := Values(map[string]float64{"x": 2, "y": 5})
	f := NewAdd(NewMultiply(x, y), NewNegative(x))

	once, err := Eval(f, b)
	require.NoError(t, err)
	twice, err := Eval(once, b)
	require.NoError(t, err)
	assert.Empty(t, treeDiff(once, twice))
}

func TestEval_AppliedDerivative(t *testing.T) {
	x := NewSymbol("x")
	f := NewMultiply(x, x)

	// Eval of d/dx (x*x) forces the differentiation: 2x at x=3 is 6.
	d := NewDiffOp(x).Apply(f)
	assert.Equal(t, 6.0, evalNum(t, d, Values(map[string]float64{"x": 3})))
}

func TestEval_BareDiffOp(t *testing.T) {
	ddx := NewDiffOp(NewSymbol("x"))
	v, err := Eval(ddx, Values(map[string]float64{"x": 1}))
	require.NoError(t, err)
	assert.Same(t, Node(ddx), v)
}

func TestEval_Tensor(t *testing.T) {
	x, y := NewSymbol("x"), NewSymbol("y")
	v, err := NewTensor(x, y, NewNumber(1))
	require.NoError(t, err)

	got, err := Eval(v, Values(map[string]float64{"x": 2, "y": 5}))
	require.NoError(t, err)
	data, err := got.(*Tensor).Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5, 1}, data)

	// A partially-bound tensor stays a tensor of residuals.
	got, err = Eval(v, Values(map[string]float64{"x": 2}))
	require.NoError(t, err)
	_, err = got.(*Tensor).Data()
	assert.ErrorIs(t, err, ErrInvalidOperation)
}

func TestEval_TensorBoundIntoScalarSlot(t *testing.T) {
	x, y := NewSymbol("x"), NewSymbol("y")
	v, err := NewTensor(x, y)
	require.NoError(t, err)

	// Binding one element to a vector breaks shape homogeneity.
	w, err := NewTensor(NewNumber(1), NewNumber(2))
	require.NoError(t, err)
	_, err = Eval(v, Bindings{"x": w, "y": NewNumber(3)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	// Binding both keeps the tensor rectangular and lifts its order.
	_, err = Eval(v, Bindings{"x": w, "y": w})
	assert.NoError(t, err)
}

func TestEval_TensorScalarBroadcast(t *testing.T) {
	x := NewSymbol("x")
	v, err := NewTensor(NewNumber(1), NewNumber(2))
	require.NoError(t, err)

	got, err := Eval(NewAdd(v, x), Values(map[string]float64{"x": 10}))
	require.NoError(t, err)
	data, err := got.(*Tensor).Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 12}, data)

	got, err = Eval(NewMultiply(x, v), Values(map[string]float64{"x": 3}))
	require.NoError(t, err)
	data, err = got.(*Tensor).Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, data)
}

func TestEval_TensorTensorMultiplyFails(t *testing.T) {
	a, err := NewTensor(NewNumber(1), NewNumber(2))
	require.NoError(t, err)
	b, err := NewTensor(NewNumber(3), NewNumber(4))
	require.NoError(t, err)

	_, err = Eval(NewMultiply(a, b), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOperation)
}

func TestEval_TensorAddShapeMismatch(t *testing.T) {
	a, err := NewTensor(NewNumber(1), NewNumber(2))
	require.NoError(t, err)
	b, err := NewTensor(NewNumber(1), NewNumber(2), NewNumber(3))
	require.NoError(t, err)

	_, err = Eval(NewAdd(a, b), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.True(t, Shape{2}.Equal(shapeErr.Left))
	assert.True(t, Shape{3}.Equal(shapeErr.Right))
}

func TestEval_WideTensorParallel(t *testing.T) {
	// Enough elements to cross the fan-out threshold.
	x := NewSymbol("x")
	elems := make([]Node, 256)
	for i := range elems {
		elems[i] = NewMultiply(x, NewNumber(float64(i)))
	}
	v, err := NewTensor(elems...)
	require.NoError(t, err)

	got, err := Eval(v, Values(map[string]float64{"x": 2}))
	require.NoError(t, err)
	data, err := got.(*Tensor).Data()
	require.NoError(t, err)
	for i, d := range data {
		assert.Equal(t, float64(2*i), d)
	}
}

func TestEval_SharedTreeConcurrent(t *testing.T) {
	// The same immutable subtree is shared between parents and evaluated
	// from many goroutines at once; run with -race.
	x, y := NewSymbol("x"), NewSymbol("y")
	shared := NewMultiply(x, y)
	f := NewAdd(shared, shared, NewNegative(shared))
	b := Values(map[string]float64{"x": 2, "y": 5})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := Eval(f, b)
			assert.NoError(t, err)
			if num, ok := v.(*Number); assert.True(t, ok) {
				assert.Equal(t, 10.0, num.Value)
			}
		}()
	}
	wg.Wait()
}

func TestNumeric(t *testing.T) {
	v, ok := Numeric(NewNumber(2))
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)

	_, ok = Numeric(NewSymbol("x"))
	assert.False(t, ok)
}

func TestValues(t *testing.T) {
	b := Values(map[string]float64{"x": 1, "y": 2})
	require.Len(t, b, 2)
	assert.Equal(t, 1.0, b["x"].(*Number).Value)
	assert.Equal(t, 2.0, b["y"].(*Number).Value)
}
