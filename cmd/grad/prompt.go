// Copyright 2025 Grad ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
)

const historyFile = ".grad_history"

// promptMissing asks for a numeric value for each unbound symbol.
// An empty answer leaves the symbol unbound, so the evaluation result stays
// a residual expression in it. Values are plain numbers; expression input
// is not parsed.
func promptMissing(names []string, vals map[string]float64) error {
	if len(names) == 0 {
		return nil
	}

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			f.Close()
		}
	}()

	for _, name := range names {
		v, bound, err := promptValue(ln, name)
		if err != nil {
			return err
		}
		if bound {
			vals[name] = v
		}
	}
	return nil
}

func promptValue(ln *liner.State, name string) (float64, bool, error) {
	for {
		line, err := ln.Prompt(name + " = ")
		switch {
		case errors.Is(err, liner.ErrPromptAborted), errors.Is(err, io.EOF):
			return 0, false, fmt.Errorf("aborted while binding %s", name)
		case err != nil:
			return 0, false, err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			return 0, false, nil // leave unbound
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Println(red("not a number: " + line))
			continue
		}
		ln.AppendHistory(line)
		return v, true, nil
	}
}
