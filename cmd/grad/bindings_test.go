// Copyright 2025 Grad ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBindingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.yaml")
	if err := os.WriteFile(path, []byte("x: 2\ny: 5.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	vals, err := loadBindingFile(path)
	if err != nil {
		t.Fatalf("loadBindingFile failed: %v", err)
	}
	if vals["x"] != 2 || vals["y"] != 5.5 {
		t.Errorf("loadBindingFile = %v, want x:2 y:5.5", vals)
	}
}

func TestLoadBindingFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.yaml")
	if err := os.WriteFile(path, []byte("x:\n  nested: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadBindingFile(path); err == nil {
		t.Error("expected an error for a non-numeric binding value")
	}

	if _, err := loadBindingFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestApplySets(t *testing.T) {
	vals := map[string]float64{"x": 1}
	if err := applySets(vals, []string{"y=2", " z = 3.5 "}); err != nil {
		t.Fatalf("applySets failed: %v", err)
	}
	if vals["y"] != 2 || vals["z"] != 3.5 {
		t.Errorf("applySets = %v, want y:2 z:3.5", vals)
	}

	// Later pairs win over earlier ones.
	if err := applySets(vals, []string{"x=9"}); err != nil {
		t.Fatal(err)
	}
	if vals["x"] != 9 {
		t.Errorf("x = %v, want 9", vals["x"])
	}
}

func TestApplySets_Invalid(t *testing.T) {
	tests := []string{"novalue", "=3", "x=abc"}
	for _, s := range tests {
		if err := applySets(map[string]float64{}, []string{s}); err == nil {
			t.Errorf("applySets(%q) succeeded, want error", s)
		}
	}
}

func TestMissingSymbols(t *testing.T) {
	m, err := findModel("product")
	if err != nil {
		t.Fatal(err)
	}

	missing := missingSymbols(m.node, map[string]float64{"x": 1})
	if len(missing) != 1 || missing[0] != "y" {
		t.Errorf("missingSymbols = %v, want [y]", missing)
	}

	if got := missingSymbols(m.node, map[string]float64{"x": 1, "y": 2}); len(got) != 0 {
		t.Errorf("missingSymbols = %v, want none", got)
	}
}

func TestRegistryModels(t *testing.T) {
	for _, name := range modelNames() {
		m, err := findModel(name)
		if err != nil {
			t.Fatalf("findModel(%q) failed: %v", name, err)
		}
		if m.node == nil || m.desc == "" {
			t.Errorf("model %q is incomplete", name)
		}
	}

	if _, err := findModel("nope"); err == nil {
		t.Error("findModel of an unknown name succeeded")
	}
}
