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

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the built-in model registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		names := modelNames()
		maxLen := 0
		for _, name := range names {
			if len(name) > maxLen {
				maxLen = len(name)
			}
		}

		for _, name := range names {
			m := registry[name]
			free := strings.Join(expr.FreeSymbols(m.node), " ")
			fmt.Fprintf(out, "%-*s  %s\n", maxLen, m.name, m.desc)
			fmt.Fprintf(out, "%-*s    %s   symbols: %s\n", maxLen, "", m.node, free)
		}
		return nil
	},
}
