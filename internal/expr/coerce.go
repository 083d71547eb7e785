package expr

import (
	"fmt"
	"reflect"
	"strings"
)

// Express normalizes a raw Go value into an expression node.
//
// Rules, in priority order:
//   - a Node is returned unchanged
//   - a string holding exactly one whitespace-separated token becomes a Symbol
//   - a slice or array becomes a Tensor of coerced elements (recursively)
//   - a numeric scalar of any int, uint or float type becomes a Number
//
// Everything else returns an error wrapping ErrUnsupportedType, including
// multi-token strings: a statically typed function cannot return either a
// node or a list, so a string of several names goes through Symbols instead.
func Express(v any) (Node, error) {
	switch x := v.(type) {
	case Node:
		return x, nil
	case string:
		tokens := strings.Fields(x)
		if len(tokens) != 1 {
			return nil, fmt.Errorf("%w: string %q does not name exactly one symbol (use Symbols for lists)",
				ErrUnsupportedType, x)
		}
		return &Symbol{Name: tokens[0]}, nil
	case float64:
		return &Number{Value: x}, nil
	case int:
		return &Number{Value: float64(x)}, nil
	case []Node:
		return expressSlice(len(x), func(i int) any { return x[i] })
	case []float64:
		return expressSlice(len(x), func(i int) any { return x[i] })
	case []any:
		return expressSlice(len(x), func(i int) any { return x[i] })
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return expressSlice(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &Number{Value: float64(rv.Int())}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Number{Value: float64(rv.Uint())}, nil
	case reflect.Float32, reflect.Float64:
		return &Number{Value: rv.Float()}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

func expressSlice(n int, at func(i int) any) (Node, error) {
	elems := make([]Node, n)
	for i := 0; i < n; i++ {
		e, err := Express(at(i))
		if err != nil {
			return nil, err
		}
		elems[i] = e
	}
	t, err := NewTensor(elems...)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// MustExpress is Express that panics on error. Intended for fixed model
// definitions and tests.
func MustExpress(v any) Node {
	n, err := Express(v)
	if err != nil {
		panic(err)
	}
	return n
}

// Symbols creates one Symbol per whitespace-separated token in names.
//
// Example:
//
//	syms := expr.Symbols("x y z") // [x y z]
func Symbols(names string) []*Symbol {
	tokens := strings.Fields(names)
	syms := make([]*Symbol, len(tokens))
	for i, tok := range tokens {
		syms[i] = &Symbol{Name: tok}
	}
	return syms
}
