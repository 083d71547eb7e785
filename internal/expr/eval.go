package expr

import (
	"fmt"

	"github.com/grad-ml/grad/internal/parallel"
)

// Bindings maps symbol names to the values substituted for them during
// evaluation. A value may be a Number, a Tensor, or any other expression;
// bound expressions are substituted as-is and composed by the surrounding
// operators.
type Bindings map[string]Node

// Values adapts a plain numeric environment into Bindings.
func Values(vals map[string]float64) Bindings {
	b := make(Bindings, len(vals))
	for name, v := range vals {
		b[name] = &Number{Value: v}
	}
	return b
}

// evalParallel controls the fan-out used for wide tensor evaluation.
// Elements are independent immutable subtrees, so evaluating them from
// worker goroutines needs no synchronization.
var evalParallel = parallel.DefaultConfig()

// Eval reduces n under the given bindings.
//
// The result is a *Number (or a Tensor whose elements are all Numbers) when
// every symbol in the tree resolves to a numeric value; otherwise it is a
// residual expression with the resolved parts folded. An unbound Symbol
// evaluates to itself, so Eval never fails on incomplete bindings.
//
// Per-variant semantics:
//   - Number evaluates to itself, Symbol to its bound value or itself
//   - Negative arithmetically negates its evaluated operand
//   - Add and Multiply accumulate evaluated operands left to right, starting
//     from the first operand's own value so symbolic residuals compose
//   - an applied Derivative evaluates as Eval(Diff(arg, wrt), b)
//   - a bare DiffOp has nothing to reduce and evaluates to itself
//   - a Tensor evaluates elementwise
//
// Errors surface only from tensor-shape violations introduced by the
// bindings or the tree itself (ErrShapeMismatch, ErrInvalidOperation).
func Eval(n Node, b Bindings) (Node, error) {
	switch n := n.(type) {
	case *Number:
		return n, nil
	case *Symbol:
		if v, ok := b[n.Name]; ok {
			return v, nil
		}
		return n, nil
	case *Negative:
		v, err := Eval(n.Arg, b)
		if err != nil {
			return nil, err
		}
		return negValue(v), nil
	case *Add:
		return evalAccum(n.Args, b, addValues)
	case *Multiply:
		return evalAccum(n.Args, b, mulValues)
	case *DiffOp:
		return n, nil
	case *Derivative:
		d, err := forceDiff(n)
		if err != nil {
			return nil, err
		}
		return Eval(d, b)
	case *Tensor:
		return evalTensor(n, b)
	default:
		panic(fmt.Sprintf("unexpected node type %T", n))
	}
}

// forceDiff expands an applied derivative into an ordinary expression.
// Diff keeps second partials symbolic by wrapping the inner derivative in a
// new Derivative node, so a nested argument must be expanded innermost-first
// here; expanding the outer level alone would rebuild the same node and
// never terminate.
func forceDiff(d *Derivative) (Node, error) {
	arg := d.Arg
	if inner, ok := arg.(*Derivative); ok {
		expanded, err := forceDiff(inner)
		if err != nil {
			return nil, err
		}
		arg = expanded
	}
	return Diff(arg, d.Wrt)
}

// evalAccum folds evaluated operands left to right. The accumulator starts
// from the first operand's value, not from a numeric identity, so a leading
// symbolic residual carries through combine unchanged.
func evalAccum(args []Node, b Bindings, combine func(a, b Node) (Node, error)) (Node, error) {
	acc, err := Eval(args[0], b)
	if err != nil {
		return nil, err
	}
	for _, arg := range args[1:] {
		v, err := Eval(arg, b)
		if err != nil {
			return nil, err
		}
		acc, err = combine(acc, v)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func evalTensor(t *Tensor, b Bindings) (Node, error) {
	elems := make([]Node, len(t.elems))
	errs := make([]error, len(t.elems))
	parallel.For(len(t.elems), func(i int) {
		elems[i], errs[i] = Eval(t.elems[i], b)
	}, evalParallel)
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	// Bindings may substitute tensors into scalar slots, so the result
	// shape must be re-validated.
	res, err := NewTensor(elems...)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// negValue arithmetically negates an evaluated value: numbers flip sign,
// tensors negate elementwise, and anything symbolic stays wrapped.
func negValue(n Node) Node {
	switch n := n.(type) {
	case *Number:
		return &Number{Value: -n.Value}
	case *Tensor:
		elems := make([]Node, len(n.elems))
		for i, e := range n.elems {
			elems[i] = negValue(e)
		}
		return newTensorOf(elems)
	default:
		return &Negative{Arg: n}
	}
}

// addValues combines two evaluated values as a sum.
//
// Two numbers fold arithmetically. Two tensors combine elementwise and must
// match shapes exactly. A tensor and an order-0 value broadcast the scalar
// over every element. Any other pair stays a residual Add node.
func addValues(a, b Node) (Node, error) {
	an, aNum := a.(*Number)
	bn, bNum := b.(*Number)
	if aNum && bNum {
		return &Number{Value: an.Value + bn.Value}, nil
	}
	at, aTen := a.(*Tensor)
	bt, bTen := b.(*Tensor)
	switch {
	case aTen && bTen:
		if !at.shape.Equal(bt.shape) {
			return nil, &ShapeError{Op: "add", Left: at.shape, Right: bt.shape}
		}
		return zipElems(at, bt, addValues)
	case aTen:
		return mapElems(at, func(e Node) (Node, error) { return addValues(e, b) })
	case bTen:
		return mapElems(bt, func(e Node) (Node, error) { return addValues(a, e) })
	default:
		return &Add{Args: []Node{a, b}}, nil
	}
}

// mulValues combines two evaluated values as a product.
//
// Two numbers fold arithmetically and an order-0 value broadcasts over a
// tensor. Two tensors never combine here: tensor-tensor products must go
// through Inner or Outer, so that pair fails with ErrInvalidOperation.
func mulValues(a, b Node) (Node, error) {
	an, aNum := a.(*Number)
	bn, bNum := b.(*Number)
	if aNum && bNum {
		return &Number{Value: an.Value * bn.Value}, nil
	}
	at, aTen := a.(*Tensor)
	bt, bTen := b.(*Tensor)
	switch {
	case aTen && bTen:
		return nil, fmt.Errorf("%w: tensor times tensor is ambiguous, use Inner or Outer", ErrInvalidOperation)
	case aTen:
		return mapElems(at, func(e Node) (Node, error) { return mulValues(e, b) })
	case bTen:
		return mapElems(bt, func(e Node) (Node, error) { return mulValues(a, e) })
	default:
		return &Multiply{Args: []Node{a, b}}, nil
	}
}

func mapElems(t *Tensor, f func(Node) (Node, error)) (Node, error) {
	elems := make([]Node, len(t.elems))
	for i, e := range t.elems {
		v, err := f(e)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return newTensorOf(elems), nil
}

func zipElems(a, b *Tensor, combine func(x, y Node) (Node, error)) (Node, error) {
	elems := make([]Node, len(a.elems))
	for i := range a.elems {
		v, err := combine(a.elems[i], b.elems[i])
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return newTensorOf(elems), nil
}

// Numeric reports the value of a fully-reduced scalar node.
// It returns false for anything that is not a *Number.
func Numeric(n Node) (float64, bool) {
	num, ok := n.(*Number)
	if !ok {
		return 0, false
	}
	return num.Value, true
}
