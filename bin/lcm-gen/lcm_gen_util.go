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
	"fmt"
	"os"

	lcmgen "go.lcm-lang.org/lcmgen"
)

func readInputs(argv []string) ([]lcmgen.Input, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("no schema files given")
	}
	var inputs []lcmgen.Input
	for _, path := range argv {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, lcmgen.Input{
			Path: path,
			Src:  src,
		})
	}
	return inputs, nil
}

func printWarnings(result *lcmgen.Result) {
	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "%s:%d:%d: W%d: %s\n",
			warning.Path, warning.Line, warning.Column,
			warning.Code, warning.Message)
	}
}
