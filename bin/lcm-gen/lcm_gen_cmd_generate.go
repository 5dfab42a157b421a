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
	"path/filepath"
	"sort"

	"github.com/spf13/pflag"

	lcmgen "go.lcm-lang.org/lcmgen"
)

type cmdGenerate struct {
	outDir        string
	importPrefix  string
	runtimeImport string
}

func (*cmdGenerate) help() *commandHelp {
	return &commandHelp{
		usage:   "generate [options] SCHEMA_FILES",
		summary: "Compile schema files and write generated Go source.",
	}
}

func (cmd *cmdGenerate) flags(flags *pflag.FlagSet) {
	flags.StringVarP(&cmd.outDir, "out", "o", ".",
		"Directory to write generated files into")
	flags.StringVar(&cmd.importPrefix, "import-prefix", "",
		"Module path the generated packages will live under")
	flags.StringVar(&cmd.runtimeImport, "runtime-import", "",
		"Import path of the runtime package used by generated code")
}

func (cmd *cmdGenerate) run(ctx context.Context, argv []string) int {
	inputs, err := readInputs(argv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lcm-gen: %v\n", err)
		return 1
	}

	var opts []lcmgen.Option
	if cmd.importPrefix != "" {
		opts = append(opts, lcmgen.WithImportPrefix(cmd.importPrefix))
	}
	if cmd.runtimeImport != "" {
		opts = append(opts, lcmgen.WithRuntimeImport(cmd.runtimeImport))
	}

	result, err := lcmgen.Compile(inputs, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lcm-gen: %v\n", err)
		return 1
	}
	printWarnings(result)

	paths := make([]string, 0, len(result.Artifacts))
	for path := range result.Artifacts {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		fullPath := filepath.Join(cmd.outDir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o777); err != nil {
			fmt.Fprintf(os.Stderr, "lcm-gen: %v\n", err)
			return 1
		}
		if err := os.WriteFile(fullPath, []byte(result.Artifacts[path]), 0o666); err != nil {
			fmt.Fprintf(os.Stderr, "lcm-gen: %v\n", err)
			return 1
		}
	}
	return 0
}
