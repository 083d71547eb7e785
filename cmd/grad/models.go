// Copyright 2025 Grad ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/grad-ml/grad/expr"
	"github.com/grad-ml/grad/tensor"
)

// model is a named expression the eval and diff commands operate on.
type model struct {
	name string
	desc string
	node expr.Node
}

// registry holds the built-in models, keyed by name.
var registry = buildRegistry()

func buildRegistry() map[string]model {
	x, y := expr.NewSymbol("x"), expr.NewSymbol("y")

	ms := []model{
		{
			name: "product",
			desc: "xy, the canonical two-symbol product",
			node: expr.NewMultiply(x, y),
		},
		{
			name: "poly",
			desc: "x² + 3x + 1",
			node: expr.NewAdd(
				expr.NewMultiply(x, x),
				expr.NewMultiply(expr.NewNumber(3), x),
				expr.NewNumber(1),
			),
		},
		{
			name: "kinetic",
			desc: "½·m·(v·v), kinetic energy of a point mass",
			node: kineticEnergy(),
		},
		{
			name: "plane",
			desc: "a·x + b, an affine plane over x0..x2",
			node: affinePlane(),
		},
	}

	reg := make(map[string]model, len(ms))
	for _, m := range ms {
		reg[m.name] = m
	}
	return reg
}

func kineticEnergy() expr.Node {
	v, err := tensor.SymbolVector("v", 3)
	if err != nil {
		panic(err)
	}
	dot, err := tensor.Inner(v, v)
	if err != nil {
		panic(err)
	}
	return expr.NewMultiply(expr.NewNumber(0.5), expr.NewSymbol("m"), dot)
}

func affinePlane() expr.Node {
	a, err := tensor.SymbolVector("a", 3)
	if err != nil {
		panic(err)
	}
	x, err := tensor.SymbolVector("x", 3)
	if err != nil {
		panic(err)
	}
	dot, err := tensor.Inner(a, x)
	if err != nil {
		panic(err)
	}
	return expr.NewAdd(dot, expr.NewSymbol("b"))
}

// findModel resolves a registry name, listing the alternatives on a miss.
func findModel(name string) (model, error) {
	m, ok := registry[name]
	if !ok {
		return model{}, fmt.Errorf("unknown model %q (available: %s)", name, strings.Join(modelNames(), ", "))
	}
	return m, nil
}

func modelNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
