// Copyright 2025 Grad ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grad-ml/grad/expr"
)

// collectBindings assembles the evaluation environment from, in order of
// increasing precedence: the YAML binding file, --set pairs, and the
// interactive prompt for whatever is still unbound.
func collectBindings(n expr.Node) (expr.Bindings, error) {
	vals := make(map[string]float64)

	if flagBindingFile != "" {
		fileVals, err := loadBindingFile(flagBindingFile)
		if err != nil {
			return nil, err
		}
		for name, v := range fileVals {
			vals[name] = v
		}
	}

	if err := applySets(vals, flagSets); err != nil {
		return nil, err
	}

	if flagInteractive {
		if err := promptMissing(missingSymbols(n, vals), vals); err != nil {
			return nil, err
		}
	}

	return expr.Values(vals), nil
}

// loadBindingFile reads a YAML mapping from symbol names to numbers.
// Decoding is strict: anything but a flat name-to-number mapping fails.
func loadBindingFile(path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bindings: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var vals map[string]float64
	if err := dec.Decode(&vals); err != nil {
		return nil, fmt.Errorf("parse bindings %s: %w", path, err)
	}
	return vals, nil
}

// applySets folds --set name=value pairs into vals.
func applySets(vals map[string]float64, sets []string) error {
	for _, s := range sets {
		name, raw, ok := strings.Cut(s, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return fmt.Errorf("invalid --set %q, want name=value", s)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("invalid --set %q: %w", s, err)
		}
		vals[name] = v
	}
	return nil
}

// missingSymbols lists the free symbols of n that vals does not bind yet.
func missingSymbols(n expr.Node, vals map[string]float64) []string {
	var missing []string
	for _, name := range expr.FreeSymbols(n) {
		if _, ok := vals[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
