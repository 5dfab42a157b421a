// Copyright (c) 2024 John Millikin <john@john-millikin.com>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	lcmgen "go.lcm-lang.org/lcmgen"
)

type cmdCheck struct {
	werror bool
}

func (*cmdCheck) help() *commandHelp {
	return &commandHelp{
		usage:   "check [options] SCHEMA_FILES",
		summary: "Parse and resolve schema files without generating code.",
	}
}

func (cmd *cmdCheck) flags(flags *pflag.FlagSet) {
	flags.BoolVar(&cmd.werror, "werror", false,
		"Treat warnings as errors")
}

func (cmd *cmdCheck) run(ctx context.Context, argv []string) int {
	inputs, err := readInputs(argv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lcm-gen: %v\n", err)
		return 1
	}

	result, err := lcmgen.Compile(inputs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lcm-gen: %v\n", err)
		return 1
	}
	printWarnings(result)
	if cmd.werror && len(result.Warnings) > 0 {
		return 1
	}
	return 0
}
