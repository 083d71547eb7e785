// Copyright 2025 Grad ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grad-ml/grad/expr"
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Print the symbolic partial derivative of a registry model",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := findModel(flagModel)
		if err != nil {
			return err
		}

		d, err := expr.Diff(m.node, expr.NewSymbol(flagWrt))
		if err != nil {
			return err
		}
		if flagSimplify {
			d = expr.Simplify(d)
		}

		if flagJSON {
			data, err := expr.MarshalTree(d)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "∂/∂%s %s = %s\n", flagWrt, m.node, d)
		return nil
	},
}
