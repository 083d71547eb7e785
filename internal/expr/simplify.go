package expr

import "fmt"

// Simplify rewrites n into a semantically equivalent, syntactically reduced
// tree. Operands are simplified recursively first, then:
//
//   - Add drops operands equal to the additive identity 0
//   - Multiply collapses to 0 when any operand equals 0, and drops
//     operands equal to the multiplicative identity 1
//   - either collapses to its single remaining operand, or to its identity
//     constant when no operands remain
//   - double negation cancels and a negated zero becomes zero
//
// Leaves simplify to themselves, a Derivative simplifies its argument and a
// Tensor simplifies elementwise. The evaluated result is unchanged under
// every binding.
func Simplify(n Node) Node {
	switch n := n.(type) {
	case *Number, *Symbol:
		return n
	case *Negative:
		arg := Simplify(n.Arg)
		if inner, ok := arg.(*Negative); ok {
			return inner.Arg
		}
		if isZero(arg) {
			return arg
		}
		return &Negative{Arg: arg}
	case *Add:
		kept := make([]Node, 0, len(n.Args))
		for _, arg := range n.Args {
			s := Simplify(arg)
			if isZero(s) {
				continue
			}
			kept = append(kept, s)
		}
		return collapse(kept, 0, func(args []Node) Node { return &Add{Args: args} })
	case *Multiply:
		kept := make([]Node, 0, len(n.Args))
		for _, arg := range n.Args {
			s := Simplify(arg)
			if isZero(s) {
				return &Number{Value: 0}
			}
			if isOne(s) {
				continue
			}
			kept = append(kept, s)
		}
		return collapse(kept, 1, func(args []Node) Node { return &Multiply{Args: args} })
	case *DiffOp:
		return n
	case *Derivative:
		return &Derivative{Wrt: n.Wrt, Arg: Simplify(n.Arg)}
	case *Tensor:
		elems := make([]Node, len(n.elems))
		for i, e := range n.elems {
			elems[i] = Simplify(e)
		}
		return newTensorOf(elems)
	default:
		panic(fmt.Sprintf("unexpected node type %T", n))
	}
}

// collapse resolves an operand list after identity elimination: the identity
// constant when nothing remains, the bare operand when one remains, and a
// rebuilt composite otherwise.
func collapse(kept []Node, identity float64, rebuild func([]Node) Node) Node {
	switch len(kept) {
	case 0:
		return &Number{Value: identity}
	case 1:
		return kept[0]
	default:
		return rebuild(kept)
	}
}
