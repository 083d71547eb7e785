// Copyright 2025 Grad ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grad-ml/grad/expr"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate a registry model under variable bindings",
	Long: "Evaluate a registry model under bindings from a YAML file and --set\n" +
		"pairs. Symbols left unbound stay symbolic in the result; with\n" +
		"--interactive, each one is prompted for first.",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := findModel(flagModel)
		if err != nil {
			return err
		}

		b, err := collectBindings(m.node)
		if err != nil {
			return err
		}

		result, err := expr.Eval(m.node, b)
		if err != nil {
			return err
		}

		if flagJSON {
			data, err := expr.MarshalTree(result)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s = %s\n", m.name, m.node)
		if free := missingFromResult(result); len(free) > 0 {
			fmt.Fprintf(out, "result = %s (unbound: %s)\n", result, strings.Join(free, ", "))
			return nil
		}
		fmt.Fprintf(out, "result = %s\n", result)
		return nil
	},
}

// missingFromResult lists the symbols a residual result still depends on.
func missingFromResult(n expr.Node) []string {
	if _, ok := expr.Numeric(n); ok {
		return nil
	}
	return expr.FreeSymbols(n)
}
