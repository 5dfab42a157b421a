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

package compiler_test

import (
	"testing"

	"go.lcm-lang.org/lcmgen/compiler"
	"go.lcm-lang.org/lcmgen/internal/testutil"
	"go.lcm-lang.org/lcmgen/syntax"
)

func compile(t *testing.T, srcs ...string) *compiler.CompileResult {
	t.Helper()
	result, err := tryCompile(srcs...)
	testutil.AssertNoError(t, err)
	return result
}

func tryCompile(srcs ...string) (*compiler.CompileResult, error) {
	var files []*syntax.File
	for _, src := range srcs {
		file, err := syntax.Parse([]uint8(src))
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return compiler.Compile(files)
}

func compileErr(t *testing.T, srcs ...string) *compiler.Error {
	t.Helper()
	_, err := tryCompile(srcs...)
	testutil.AssertError(t, err)
	compileErr, ok := err.(*compiler.Error)
	if !ok {
		t.Fatalf("Expected *compiler.Error, got: %T (%v)", err, err)
	}
	return compileErr
}

func structType(t *testing.T, schema *compiler.Schema, name string) *compiler.StructType {
	t.Helper()
	decl, ok := schema.TypeByName(name).(*compiler.StructType)
	if !ok {
		t.Fatalf("Expected struct %q in schema", name)
	}
	return decl
}

func fingerprint(t *testing.T, src, name string) uint64 {
	t.Helper()
	result := compile(t, src)
	fp, ok := result.Schema.Fingerprint(name)
	if !ok {
		t.Fatalf("Expected type %q in schema", name)
	}
	return fp
}

func TestCompileSimpleStruct(t *testing.T) {
	result := compile(t, `
package exlcm;

struct point_t {
	int32 x;
	int32 y;
}
`)
	decl := structType(t, result.Schema, "exlcm.point_t")
	testutil.ExpectEq(t, "exlcm", decl.Package())
	testutil.ExpectEq(t, "point_t", decl.Name())
	testutil.ExpectEq(t, 2, len(decl.Members()))
	testutil.ExpectTrue(t, decl.Fingerprint() != 0)
}

func TestCompileCrossPackageRef(t *testing.T) {
	result := compile(t, `
package geometry;

struct vec3_t {
	double x;
	double y;
	double z;
}
`, `
package robot;

struct state_t {
	geometry.vec3_t position;
}
`)
	decl := structType(t, result.Schema, "robot.state_t")
	ref := decl.Members()[0].Type().Ref()
	testutil.ExpectEq(t, "geometry.vec3_t", ref.QualifiedName())
}

func TestCompileSamePackageRefAcrossFiles(t *testing.T) {
	result := compile(t, `
package exlcm;

struct inner_t {
	int64 utime;
}
`, `
package exlcm;

struct outer_t {
	inner_t inner;
}
`)
	decl := structType(t, result.Schema, "exlcm.outer_t")
	ref := decl.Members()[0].Type().Ref()
	testutil.ExpectEq(t, "exlcm.inner_t", ref.QualifiedName())
}

func TestCompileUnpackagedFallback(t *testing.T) {
	result := compile(t, `
struct header_t {
	int64 utime;
}
`, `
package robot;

struct state_t {
	header_t header;
}
`)
	decl := structType(t, result.Schema, "robot.state_t")
	testutil.ExpectEq(t, "header_t", decl.Members()[0].Type().Ref().QualifiedName())
}

func TestCompileDuplicateDefinition(t *testing.T) {
	err := compileErr(t, `
package exlcm;

struct point_t { int32 x; }
struct point_t { int32 y; }
`)
	testutil.ExpectEq(t, 3000, err.Code())

	err = compileErr(t,
		"package exlcm;\nstruct point_t { int32 x; }",
		"package exlcm;\nenum point_t { A }",
	)
	testutil.ExpectEq(t, 3000, err.Code())
}

func TestCompileUnresolvedType(t *testing.T) {
	err := compileErr(t, `
package exlcm;

struct state_t {
	pose_t pose;
}
`)
	testutil.ExpectEq(t, 3001, err.Code())

	err = compileErr(t, `
struct state_t {
	other.pose_t pose;
}
`)
	testutil.ExpectEq(t, 3001, err.Code())
}

func TestCompileDynamicDim(t *testing.T) {
	result := compile(t, `
struct list_t {
	int32 n;
	double values[n];
}
`)
	decl := structType(t, result.Schema, "list_t")
	dims := decl.Members()[1].Dims()
	testutil.ExpectEq(t, 1, len(dims))
	testutil.ExpectFalse(t, dims[0].IsFixed())
	testutil.ExpectEq(t, 0, dims[0].LenMember())
	testutil.ExpectEq(t, "n", dims[0].LenName())
}

func TestCompileConstDim(t *testing.T) {
	result := compile(t, `
struct buffer_t {
	const int32 CAPACITY = 32;
	double values[CAPACITY];
}
`)
	decl := structType(t, result.Schema, "buffer_t")
	dims := decl.Members()[0].Dims()
	testutil.ExpectTrue(t, dims[0].IsFixed())
	testutil.ExpectEq(t, 32, dims[0].Size())
}

func TestCompileDimRefUnresolved(t *testing.T) {
	err := compileErr(t, `
struct bad_t {
	double values[count];
}
`)
	testutil.ExpectEq(t, 3002, err.Code())
}

func TestCompileDimRefNotEarlier(t *testing.T) {
	err := compileErr(t, `
struct bad_t {
	double values[n];
	int32 n;
}
`)
	testutil.ExpectEq(t, 3003, err.Code())
}

func TestCompileDimRefNotInteger(t *testing.T) {
	err := compileErr(t, `
struct bad_t {
	double n;
	double values[n];
}
`)
	testutil.ExpectEq(t, 3003, err.Code())
}

func TestCompileDimRefIsArray(t *testing.T) {
	err := compileErr(t, `
struct bad_t {
	int32 n[2];
	double values[n];
}
`)
	testutil.ExpectEq(t, 3003, err.Code())
}

func TestCompileDimConstNegative(t *testing.T) {
	err := compileErr(t, `
struct bad_t {
	const int32 SIZE = -4;
	double values[SIZE];
}
`)
	testutil.ExpectEq(t, 3004, err.Code())
}

func TestCompileSizeCycleSelf(t *testing.T) {
	err := compileErr(t, `
struct node_t {
	node_t next;
}
`)
	testutil.ExpectEq(t, 3005, err.Code())
}

func TestCompileSizeCycleMutual(t *testing.T) {
	err := compileErr(t, `
struct a_t { b_t b; }
struct b_t { a_t a; }
`)
	testutil.ExpectEq(t, 3005, err.Code())
}

func TestCompileRecursionThroughArrayLegal(t *testing.T) {
	result := compile(t, `
struct tree_t {
	int32 num_children;
	tree_t children[num_children];
}
`)
	decl := structType(t, result.Schema, "tree_t")
	testutil.ExpectTrue(t, decl.Fingerprint() != 0)
}

func TestCompileWarnings(t *testing.T) {
	result := compile(t, `
struct int32 { byte b; }
struct empty_t { }
enum hollow_t { }
`)
	testutil.ExpectEq(t, 3, len(result.Warnings))
	testutil.ExpectEq(t, 4000, result.Warnings[0].Code())
	testutil.ExpectEq(t, 4001, result.Warnings[1].Code())
	testutil.ExpectEq(t, 4002, result.Warnings[2].Code())
}

func TestCompileErrorLocation(t *testing.T) {
	src := "struct bad_t {\n\tpose_t pose;\n}\n"
	err := compileErr(t, src)
	testutil.ExpectEq(t, 0, err.File())
	span := err.Span()
	line, column := syntax.Position([]uint8(src), span.Start())
	testutil.ExpectEq(t, 2, line)
	testutil.ExpectEq(t, 2, column)
}
