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

// Package lcmgen compiles message schema files into Go source. It drives
// the full pipeline: files are tokenized and parsed concurrently, resolved
// into a single schema, assigned wire fingerprints, and rendered into one
// generated file per type.
package lcmgen

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"go.lcm-lang.org/lcmgen/codegen"
	"go.lcm-lang.org/lcmgen/compiler"
	"go.lcm-lang.org/lcmgen/syntax"
)

// Input is one schema source file. Path is used only for diagnostics.
type Input struct {
	Path string
	Src  []byte
}

type Option func(*config)

type config struct {
	codegenOpts []codegen.Option
}

// WithImportPrefix sets the module path under which generated packages will
// live, so cross-package references import correctly.
func WithImportPrefix(prefix string) Option {
	return func(cfg *config) {
		cfg.codegenOpts = append(cfg.codegenOpts, codegen.WithImportPrefix(prefix))
	}
}

// WithRuntimeImport overrides the import path of the runtime package used
// by generated code.
func WithRuntimeImport(path string) Option {
	return func(cfg *config) {
		cfg.codegenOpts = append(cfg.codegenOpts, codegen.WithRuntimeImport(path))
	}
}

// Result is the output of a successful compilation.
type Result struct {
	// Artifacts maps generated file paths (relative to the output root)
	// to Go source.
	Artifacts map[string]string

	// Fingerprints maps each type's qualified schema name to its wire
	// fingerprint.
	Fingerprints map[string]uint64

	Warnings []*Diagnostic
}

// Diagnostic is an error or warning positioned in an input file. Line and
// column are 1-based.
type Diagnostic struct {
	Path    string
	Line    int
	Column  int
	Code    uint32
	Message string
}

var _ error = (*Diagnostic)(nil)

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d:%d: E%d: %s", d.Path, d.Line, d.Column, d.Code, d.Message)
}

// Compile runs the pipeline over the given inputs. Files are parsed
// concurrently; everything after parsing is deterministic, and a parse
// failure always reports the error from the earliest failing input, so the
// same inputs produce the same first *Diagnostic regardless of scheduling.
func Compile(inputs []Input, opts ...Option) (*Result, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	files := make([]*syntax.File, len(inputs))
	parseErrs := make([]error, len(inputs))
	var group errgroup.Group
	group.SetLimit(runtime.GOMAXPROCS(0))
	for ii := range inputs {
		ii := ii
		group.Go(func() error {
			files[ii], parseErrs[ii] = syntax.Parse(inputs[ii].Src)
			return nil
		})
	}
	group.Wait()
	for ii, err := range parseErrs {
		if err != nil {
			return nil, parseDiagnostic(&inputs[ii], err)
		}
	}

	compiled, err := compiler.Compile(files)
	if err != nil {
		return nil, compileDiagnostic(inputs, err)
	}

	result := &Result{
		Artifacts:    make(map[string]string),
		Fingerprints: make(map[string]uint64),
	}
	for _, decl := range compiled.Schema.Types() {
		result.Fingerprints[decl.QualifiedName()] = decl.Fingerprint()
	}
	for _, warning := range compiled.Warnings {
		input := &inputs[warning.File()]
		span := warning.Span()
		line, column := syntax.Position(input.Src, span.Start())
		result.Warnings = append(result.Warnings, &Diagnostic{
			Path:    input.Path,
			Line:    line,
			Column:  column,
			Code:    warning.Code(),
			Message: warning.Message(),
		})
	}
	artifacts, err := codegen.Generate(compiled.Schema, cfg.codegenOpts...)
	if err != nil {
		return nil, err
	}
	for _, artifact := range artifacts {
		result.Artifacts[artifact.Path] = artifact.Source
	}
	return result, nil
}

func parseDiagnostic(input *Input, err error) error {
	syntaxErr, ok := err.(*syntax.Error)
	if !ok {
		return err
	}
	span := syntaxErr.Span()
	line, column := syntax.Position(input.Src, span.Start())
	return &Diagnostic{
		Path:    input.Path,
		Line:    line,
		Column:  column,
		Code:    syntaxErr.Code(),
		Message: syntaxErr.Message(),
	}
}

func compileDiagnostic(inputs []Input, err error) error {
	compileErr, ok := err.(*compiler.Error)
	if !ok {
		return err
	}
	input := &inputs[compileErr.File()]
	span := compileErr.Span()
	line, column := syntax.Position(input.Src, span.Start())
	return &Diagnostic{
		Path:    input.Path,
		Line:    line,
		Column:  column,
		Code:    compileErr.Code(),
		Message: compileErr.Message(),
	}
}
