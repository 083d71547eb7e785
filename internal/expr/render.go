package expr

import (
	"strconv"
	"strings"
)

// Canonical textual rendering, used for debugging and CLI output and never
// parsed back: literal value for Number, bare name for Symbol, -x for
// Negative, infix (a + b + ...) for Add, juxtaposition ab... for Multiply,
// ∂/∂w and ∂/∂w f for the derivative operators, [a, b, ...] for Tensor.

func (n *Number) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (s *Symbol) String() string {
	return s.Name
}

func (n *Negative) String() string {
	// A nested negation keeps its own sign readable.
	if _, ok := n.Arg.(*Negative); ok {
		return "-(" + n.Arg.String() + ")"
	}
	return "-" + n.Arg.String()
}

func (a *Add) String() string {
	parts := make([]string, len(a.Args))
	for i, arg := range a.Args {
		parts[i] = arg.String()
	}
	return "(" + strings.Join(parts, " + ") + ")"
}

func (m *Multiply) String() string {
	var sb strings.Builder
	for i, arg := range m.Args {
		if ambiguousFactor(arg, i) {
			sb.WriteString("(")
			sb.WriteString(arg.String())
			sb.WriteString(")")
			continue
		}
		sb.WriteString(arg.String())
	}
	return sb.String()
}

// ambiguousFactor reports whether a product operand would blur into its
// neighbors when juxtaposed: a number anywhere but the leading slot, a
// negation, or a derivative operator.
func ambiguousFactor(arg Node, i int) bool {
	switch arg.(type) {
	case *Number:
		return i > 0
	case *Negative, *DiffOp, *Derivative:
		return true
	default:
		return false
	}
}

func (op *DiffOp) String() string {
	return "∂/∂" + op.Wrt.Name
}

func (d *Derivative) String() string {
	return "∂/∂" + d.Wrt.Name + " " + d.Arg.String()
}

func (t *Tensor) String() string {
	parts := make([]string, len(t.elems))
	for i, e := range t.elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
