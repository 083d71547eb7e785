// Package expr implements the symbolic expression engine for the Grad framework.
//
// An expression is an immutable tree built from a closed set of Node variants:
//   - Number: a scalar constant
//   - Symbol: a named unbound variable
//   - Negative, Add, Multiply: composite operator nodes
//   - DiffOp, Derivative: a bare and an applied partial-derivative operator
//   - Tensor: a shape-homogeneous collection of sub-expressions
//
// Evaluation (Eval), differentiation (Diff), simplification (Simplify) and
// rendering dispatch over this set exhaustively; no variant can be added from
// outside the package. All nodes are immutable after construction, so the same
// subtree may be shared between parents and used from multiple goroutines
// without synchronization.
package expr

import "fmt"

// Node is a symbolic expression tree node.
//
// The concrete variants are *Number, *Symbol, *Negative, *Add, *Multiply,
// *DiffOp, *Derivative and *Tensor. The unexported marker method keeps the
// set closed.
type Node interface {
	fmt.Stringer
	isNode()
}

// Number is a scalar constant.
type Number struct {
	Value float64
}

// Symbol is a named leaf standing for an unbound variable.
// Two Symbols denote the same variable iff their names match.
type Symbol struct {
	Name string
}

// Negative negates its single operand.
type Negative struct {
	Arg Node
}

// Add is an n-ary sum. It always holds at least one operand; operand
// order is preserved for display but irrelevant to the evaluated result.
type Add struct {
	Args []Node
}

// Multiply is an n-ary product. It always holds at least one operand.
type Multiply struct {
	Args []Node
}

// DiffOp is the bare differential operator d/dWrt, not yet applied to
// an argument. Apply turns it into a Derivative.
type DiffOp struct {
	Wrt *Symbol
}

// Derivative is the applied partial derivative of Arg with respect to Wrt.
// It stays symbolic until Eval forces the differentiation.
type Derivative struct {
	Wrt *Symbol
	Arg Node
}

func (*Number) isNode()     {}
func (*Symbol) isNode()     {}
func (*Negative) isNode()   {}
func (*Add) isNode()        {}
func (*Multiply) isNode()   {}
func (*DiffOp) isNode()     {}
func (*Derivative) isNode() {}
func (*Tensor) isNode()     {}

// NewNumber creates a scalar constant node.
func NewNumber(value float64) *Number {
	return &Number{Value: value}
}

// NewSymbol creates a named variable node.
// Panics if name is empty.
func NewSymbol(name string) *Symbol {
	if name == "" {
		panic("symbol name must not be empty")
	}
	return &Symbol{Name: name}
}

// NewNegative creates the negation of arg.
func NewNegative(arg Node) *Negative {
	return &Negative{Arg: arg}
}

// NewAdd creates an n-ary sum node. The signature makes an empty
// operand list unrepresentable.
func NewAdd(first Node, rest ...Node) *Add {
	args := make([]Node, 0, 1+len(rest))
	args = append(args, first)
	args = append(args, rest...)
	return &Add{Args: args}
}

// NewMultiply creates an n-ary product node.
func NewMultiply(first Node, rest ...Node) *Multiply {
	args := make([]Node, 0, 1+len(rest))
	args = append(args, first)
	args = append(args, rest...)
	return &Multiply{Args: args}
}

// NewDiffOp creates the bare differential operator d/dwrt.
func NewDiffOp(wrt *Symbol) *DiffOp {
	return &DiffOp{Wrt: wrt}
}

// Apply supplies the operator with the expression it differentiates,
// producing an applied Derivative node. The derivative itself is not
// expanded until Eval forces it.
//
// Example:
//
//	ddx := expr.NewDiffOp(x)
//	p := ddx.Apply(f) // the symbolic node d/dx f
func (op *DiffOp) Apply(arg Node) *Derivative {
	return &Derivative{Wrt: op.Wrt, Arg: arg}
}

// nodeShape returns the shape of n without copying. Scalars have a nil shape.
func nodeShape(n Node) Shape {
	if t, ok := n.(*Tensor); ok {
		return t.shape
	}
	return nil
}

// ShapeOf returns the shape of n. Scalar nodes have an empty shape;
// a Tensor's shape is its element count followed by the element shape.
func ShapeOf(n Node) Shape {
	return nodeShape(n).Clone()
}

// OrderOf returns the tensor order of n: 0 for scalars, 1 for vectors,
// 2 for matrices, and so on.
func OrderOf(n Node) int {
	return len(nodeShape(n))
}

// isZero reports whether n is the additive identity constant.
// Only a *Number can compare equal to a bare numeric literal.
func isZero(n Node) bool {
	num, ok := n.(*Number)
	return ok && num.Value == 0
}

// isOne reports whether n is the multiplicative identity constant.
func isOne(n Node) bool {
	num, ok := n.(*Number)
	return ok && num.Value == 1
}
