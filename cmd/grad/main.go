// Copyright 2025 Grad ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package main provides the Grad framework CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	appName = "grad"
	version = "v0.1.0-dev"
)

var (
	flagModel       string
	flagBindingFile string
	flagSets        []string
	flagInteractive bool
	flagJSON        bool
	flagWrt         string
	flagSimplify    bool
)

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Symbolic expression and tensor algebra toolkit",
	Long: "Grad builds symbolic expression trees, evaluates them under variable\n" +
		"bindings and computes exact derivatives. The eval and diff commands work\n" +
		"on the built-in model registry; see '" + appName + " models'.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Grad %s\n", version)
	},
}

func main() {
	rootCmd.AddCommand(demoCmd, modelsCmd, evalCmd, diffCmd, versionCmd)

	evalCmd.Flags().StringVar(&flagModel, "model", "", "registry model to evaluate (required)")
	evalCmd.Flags().StringVar(&flagBindingFile, "bindings", "", "YAML file mapping symbol names to numbers")
	evalCmd.Flags().StringArrayVar(&flagSets, "set", nil, "bind one symbol, as name=value (repeatable)")
	evalCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "prompt for unbound symbols")
	evalCmd.Flags().BoolVar(&flagJSON, "json", false, "print the result tree as JSON")
	_ = evalCmd.MarkFlagRequired("model")

	diffCmd.Flags().StringVar(&flagModel, "model", "", "registry model to differentiate (required)")
	diffCmd.Flags().StringVar(&flagWrt, "wrt", "", "symbol to differentiate with respect to (required)")
	diffCmd.Flags().BoolVar(&flagSimplify, "simplify", false, "eliminate identity operands in the result")
	diffCmd.Flags().BoolVar(&flagJSON, "json", false, "print the result tree as JSON")
	_ = diffCmd.MarkFlagRequired("model")
	_ = diffCmd.MarkFlagRequired("wrt")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}
}
