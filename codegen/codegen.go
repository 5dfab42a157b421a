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

// Package codegen emits Go source for a resolved schema: one file per type,
// grouped into directories by schema package. Generated structs and enums
// encode and decode themselves through the runtime package's cursors.
package codegen

import (
	"fmt"
	"sort"
	"strings"

	"go.lcm-lang.org/lcmgen/compiler"
)

const defaultRuntimeImport = "go.lcm-lang.org/lcmgen/lcm"

type Option func(*config)

type config struct {
	runtimeImport string
	importPrefix  string
}

// WithRuntimeImport overrides the import path of the runtime package used by
// generated code.
func WithRuntimeImport(path string) Option {
	return func(cfg *config) {
		cfg.runtimeImport = path
	}
}

// WithImportPrefix sets the module path under which the generated packages
// will live, so cross-package references import correctly.
func WithImportPrefix(prefix string) Option {
	return func(cfg *config) {
		cfg.importPrefix = prefix
	}
}

// Artifact is one generated source file. Path is relative to the output
// root, with one directory per schema package.
type Artifact struct {
	Path   string
	Source string
}

// NameCollisionError reports two schema types in the same package whose
// generated Go declarations would share one name; "foo" and "foo_t" both
// generate the type Foo.
type NameCollisionError struct {
	GoName string
	First  string
	Second string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf(
		"generated Go name collision: %q and %q both declare %s",
		e.First, e.Second, e.GoName)
}

// Generate emits Go source for every type in the schema, in schema order.
func Generate(schema *compiler.Schema, opts ...Option) ([]Artifact, error) {
	cfg := &config{
		runtimeImport: defaultRuntimeImport,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	goNames := make(map[string]compiler.Type)
	for _, decl := range schema.Types() {
		key := goPackageDir(decl.Package()) + "/" + goTypeName(decl.Name())
		if prev, ok := goNames[key]; ok {
			return nil, &NameCollisionError{
				GoName: goTypeName(decl.Name()),
				First:  prev.QualifiedName(),
				Second: decl.QualifiedName(),
			}
		}
		goNames[key] = decl
	}

	var artifacts []Artifact
	for _, decl := range schema.Types() {
		fg := &fileGen{
			cfg:     cfg,
			pkg:     decl.Package(),
			imports: make(map[string]bool),
		}
		switch decl := decl.(type) {
		case *compiler.StructType:
			fg.genStruct(decl)
		case *compiler.EnumType:
			fg.genEnum(decl)
		}
		artifacts = append(artifacts, Artifact{
			Path:   goPackageDir(decl.Package()) + "/" + decl.Name() + ".go",
			Source: fg.finish(decl),
		})
	}
	return artifacts, nil
}

// fileGen accumulates the body of one generated file; the package clause and
// import block are assembled afterward, once the needed imports are known.
type fileGen struct {
	buf     strings.Builder
	indent  int
	cfg     *config
	pkg     string
	imports map[string]bool
}

func (fg *fileGen) line(format string, args ...any) {
	if format == "" {
		fg.buf.WriteByte('\n')
		return
	}
	for ii := 0; ii < fg.indent; ii++ {
		fg.buf.WriteByte('\t')
	}
	fmt.Fprintf(&fg.buf, format, args...)
	fg.buf.WriteByte('\n')
}

func (fg *fileGen) push() {
	fg.indent++
}

func (fg *fileGen) pop() {
	fg.indent--
}

func (fg *fileGen) addImport(path string) {
	fg.imports[path] = true
}

func (fg *fileGen) finish(decl compiler.Type) string {
	var out strings.Builder
	out.WriteString("// Code generated by lcm-gen. DO NOT EDIT.\n")
	out.WriteString("//\n")
	fmt.Fprintf(&out, "// Source: %s\n\n", decl.QualifiedName())
	fmt.Fprintf(&out, "package %s\n\n", goPackageName(decl.Package()))

	var stdlib, other []string
	for path := range fg.imports {
		if strings.ContainsRune(strings.SplitN(path, "/", 2)[0], '.') {
			other = append(other, path)
		} else {
			stdlib = append(stdlib, path)
		}
	}
	sort.Strings(stdlib)
	sort.Strings(other)

	out.WriteString("import (\n")
	for _, path := range stdlib {
		fmt.Fprintf(&out, "\t%q\n", path)
	}
	if len(stdlib) > 0 && len(other) > 0 {
		out.WriteString("\n")
	}
	for _, path := range other {
		fmt.Fprintf(&out, "\t%q\n", path)
	}
	out.WriteString(")\n\n")

	out.WriteString(fg.buf.String())
	return out.String()
}

// refType returns the Go type expression for a referenced struct or enum,
// adding an import when the reference crosses packages.
func (fg *fileGen) refType(ref compiler.Type) string {
	if ref.Package() == fg.pkg {
		return goTypeName(ref.Name())
	}
	path := goPackageDir(ref.Package())
	if fg.cfg.importPrefix != "" {
		path = fg.cfg.importPrefix + "/" + path
	}
	fg.addImport(path)
	return goPackageName(ref.Package()) + "." + goTypeName(ref.Name())
}

func (fg *fileGen) valueType(fieldType compiler.FieldType) string {
	if fieldType.IsPrimitive() {
		return primitiveGoType(fieldType.Primitive())
	}
	return fg.refType(fieldType.Ref())
}

// memberType returns the member's full Go type, array dimensions included:
// fixed dimensions become Go arrays, dynamic ones become slices.
func (fg *fileGen) memberType(member *compiler.Member, fromDim int) string {
	var out strings.Builder
	for _, dim := range member.Dims()[fromDim:] {
		if dim.IsFixed() {
			fmt.Fprintf(&out, "[%d]", dim.Size())
		} else {
			out.WriteString("[]")
		}
	}
	out.WriteString(fg.valueType(member.Type()))
	return out.String()
}
