package expr

import (
	"encoding/json"
	"fmt"
)

// MarshalTree encodes an expression tree as tagged JSON objects, one object
// per node with a "kind" discriminator:
//
//	{"kind":"multiply","args":[{"kind":"symbol","name":"x"},{"kind":"symbol","name":"y"}]}
//
// The encoding is for exporting trees to host tooling; there is no decoder,
// since parsing expressions back is out of scope for the engine.
func MarshalTree(n Node) ([]byte, error) {
	return json.Marshal(treeValue(n))
}

func treeValue(n Node) map[string]any {
	switch n := n.(type) {
	case *Number:
		return map[string]any{"kind": "number", "value": n.Value}
	case *Symbol:
		return map[string]any{"kind": "symbol", "name": n.Name}
	case *Negative:
		return map[string]any{"kind": "negative", "arg": treeValue(n.Arg)}
	case *Add:
		return map[string]any{"kind": "add", "args": treeValues(n.Args)}
	case *Multiply:
		return map[string]any{"kind": "multiply", "args": treeValues(n.Args)}
	case *DiffOp:
		return map[string]any{"kind": "diffop", "wrt": n.Wrt.Name}
	case *Derivative:
		return map[string]any{"kind": "derivative", "wrt": n.Wrt.Name, "arg": treeValue(n.Arg)}
	case *Tensor:
		return map[string]any{"kind": "tensor", "elems": treeValues(n.elems)}
	default:
		panic(fmt.Sprintf("unexpected node type %T", n))
	}
}

func treeValues(nodes []Node) []any {
	vals := make([]any, len(nodes))
	for i, n := range nodes {
		vals[i] = treeValue(n)
	}
	return vals
}
