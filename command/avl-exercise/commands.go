// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/workload"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--print] --config-file=FILE [[command|help] arguments...]\n", program)
		fmt.Printf("\n")
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n")
		fmt.Printf("  version                    (v)      - display version string\n")
		fmt.Printf("\n")
		fmt.Printf("  config                     (c)      - display the configuration as YAML\n")
		fmt.Printf("  operations                 (o)      - list the workload without running it\n")
		fmt.Printf("  run                                 - apply the workload and check the tree [default]\n")
		fmt.Printf("\n")
		fmt.Printf("the configuration file is Lua (.lua, .conf) or YAML (.yaml, .yml)\n")
		fmt.Printf("\n")

	default:
		return false
	}

	return true
}

// configuration command handler
//
// returns false for "run" so that the workload is applied
func processConfigCommand(program string, arguments []string, theConfiguration *Configuration) bool {

	command := arguments[0]

	switch command {
	case "config", "c":
		data, err := yaml.Marshal(theConfiguration)
		if nil != err {
			exitwithstatus.Message("%s: configuration encode error: %s", program, err)
		}
		os.Stdout.Write(data)

	case "operations", "o":
		operations, err := theConfiguration.Workload.operations()
		if nil != err {
			exitwithstatus.Message("%s: workload error: %s", program, err)
		}
		for _, op := range operations {
			fmt.Println(op)
		}

	case "run":
		return false

	default:
		exitwithstatus.Message("%s: no such command: %q", program, command)
	}

	return true
}

// the worst case height of an AVL tree with n nodes
func heightBound(n int) float64 {
	return 1.4405*math.Log2(float64(n+2)) - 0.3277
}

func printSummary(w io.Writer, tree *avl.Tree, result workload.Result) {
	fmt.Fprintf(w, "operations:  %d\n", result.Operations)
	fmt.Fprintf(w, "added:       %d\n", result.Added)
	fmt.Fprintf(w, "overwritten: %d\n", result.Overwritten)
	fmt.Fprintf(w, "deleted:     %d\n", result.Deleted)
	fmt.Fprintf(w, "missing:     %d\n", result.Missing)
	fmt.Fprintf(w, "found:       %d\n", result.Found)
	fmt.Fprintf(w, "not found:   %d\n", result.NotFound)
	fmt.Fprintf(w, "checks:      %d\n", result.Checks)
	fmt.Fprintf(w, "count:       %d\n", tree.Count())
	fmt.Fprintf(w, "height:      %d  (bound: %.2f)\n", tree.Height(), heightBound(tree.Count()))
}
