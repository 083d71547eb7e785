package expr

import (
	"fmt"
	"sort"
)

// Diff computes the exact partial derivative of n with respect to wrt.
//
// wrt is a *Symbol, or a *Tensor of symbols: differentiating with respect
// to a tensor produces the tensor of per-symbol derivatives (the gradient),
// preserving the wrt tensor's shape. Anything else fails with
// ErrInvalidOperation.
//
// Derivative rules per variant:
//   - d(c)/dx = 0 for a constant c
//   - d(x)/dx = 1, d(y)/dx = 0 for distinct symbols
//   - d(-f)/dx = -(df/dx)
//   - d(f+g+...)/dx = df/dx + dg/dx + ... (sum rule)
//   - d(f*g*...)/dx replaces one factor at a time with its derivative and
//     sums the resulting terms (n-ary product rule)
//   - an applied Derivative composes symbolically: d(df/dx)/dy is a new
//     Derivative node and stays unexpanded until Eval forces it
//   - a bare DiffOp has no argument and differentiates like a constant
//   - a Tensor differentiates elementwise, order preserved
//
// Results always use typed constant nodes, never raw host literals, and the
// input tree is never mutated.
func Diff(n Node, wrt Node) (Node, error) {
	switch w := wrt.(type) {
	case *Symbol:
		return diffScalar(n, w), nil
	case *Tensor:
		elems := make([]Node, len(w.elems))
		for i, sym := range w.elems {
			d, err := Diff(n, sym)
			if err != nil {
				return nil, err
			}
			elems[i] = d
		}
		t, err := NewTensor(elems...)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("%w: cannot differentiate with respect to %T", ErrInvalidOperation, wrt)
	}
}

func diffScalar(n Node, wrt *Symbol) Node {
	switch n := n.(type) {
	case *Number:
		return &Number{Value: 0}
	case *Symbol:
		if n.Name == wrt.Name {
			return &Number{Value: 1}
		}
		return &Number{Value: 0}
	case *Negative:
		return &Negative{Arg: diffScalar(n.Arg, wrt)}
	case *Add:
		terms := make([]Node, len(n.Args))
		for i, arg := range n.Args {
			terms[i] = diffScalar(arg, wrt)
		}
		return sumOf(terms)
	case *Multiply:
		terms := make([]Node, len(n.Args))
		for i, arg := range n.Args {
			terms[i] = productRuleTerm(n.Args, i, diffScalar(arg, wrt))
		}
		return sumOf(terms)
	case *DiffOp:
		return &Number{Value: 0}
	case *Derivative:
		return &Derivative{Wrt: wrt, Arg: n}
	case *Tensor:
		elems := make([]Node, len(n.elems))
		for i, e := range n.elems {
			elems[i] = diffScalar(e, wrt)
		}
		return newTensorOf(elems)
	default:
		panic(fmt.Sprintf("unexpected node type %T", n))
	}
}

// productRuleTerm builds the product-rule term for factor i: the factor's
// derivative multiplied by every other factor unchanged, in operand order.
func productRuleTerm(factors []Node, i int, dFactor Node) Node {
	if len(factors) == 1 {
		return dFactor
	}
	args := make([]Node, 0, len(factors))
	args = append(args, dFactor)
	for j, f := range factors {
		if j != i {
			args = append(args, f)
		}
	}
	return &Multiply{Args: args}
}

// sumOf folds derivative terms into a single node. A single term is
// returned bare, so no spurious zero ever leads the result.
func sumOf(terms []Node) Node {
	if len(terms) == 1 {
		return terms[0]
	}
	return &Add{Args: terms}
}

// Grad builds the gradient vector of n with respect to the given symbols.
//
// Example:
//
//	g, _ := expr.Grad(f, x, y) // [df/dx, df/dy]
func Grad(n Node, syms ...*Symbol) (*Tensor, error) {
	if len(syms) == 0 {
		return nil, fmt.Errorf("%w: gradient needs at least one symbol", ErrEmptyTensor)
	}
	elems := make([]Node, len(syms))
	for i, s := range syms {
		elems[i] = diffScalar(n, s)
	}
	return NewTensor(elems...)
}

// FreeSymbols returns the sorted, deduplicated names of the symbols the
// evaluation of n can depend on. The wrt symbol of a derivative operator is
// operator metadata, not a value slot, so it is only reported when it also
// occurs inside the differentiated argument.
func FreeSymbols(n Node) []string {
	seen := make(map[string]struct{})
	collectSymbols(n, seen)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectSymbols(n Node, seen map[string]struct{}) {
	switch n := n.(type) {
	case *Number, *DiffOp:
	case *Symbol:
		seen[n.Name] = struct{}{}
	case *Negative:
		collectSymbols(n.Arg, seen)
	case *Add:
		for _, arg := range n.Args {
			collectSymbols(arg, seen)
		}
	case *Multiply:
		for _, arg := range n.Args {
			collectSymbols(arg, seen)
		}
	case *Derivative:
		collectSymbols(n.Arg, seen)
	case *Tensor:
		for _, e := range n.elems {
			collectSymbols(e, seen)
		}
	default:
		panic(fmt.Sprintf("unexpected node type %T", n))
	}
}
