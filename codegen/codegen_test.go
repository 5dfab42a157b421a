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

package codegen_test

import (
	"errors"
	"fmt"
	"testing"

	"go.lcm-lang.org/lcmgen/codegen"
	"go.lcm-lang.org/lcmgen/compiler"
	"go.lcm-lang.org/lcmgen/internal/testutil"
	"go.lcm-lang.org/lcmgen/syntax"
)

func generate(t *testing.T, opts []codegen.Option, srcs ...string) []codegen.Artifact {
	t.Helper()
	var files []*syntax.File
	for _, src := range srcs {
		file, err := syntax.Parse([]uint8(src))
		testutil.AssertNoError(t, err)
		files = append(files, file)
	}
	result, err := compiler.Compile(files)
	testutil.AssertNoError(t, err)
	artifacts, err := codegen.Generate(result.Schema, opts...)
	testutil.AssertNoError(t, err)
	return artifacts
}

func artifact(t *testing.T, artifacts []codegen.Artifact, path string) string {
	t.Helper()
	for _, a := range artifacts {
		if a.Path == path {
			return a.Source
		}
	}
	t.Fatalf("Expected artifact %q, got paths: %v", path, artifactPaths(artifacts))
	return ""
}

func artifactPaths(artifacts []codegen.Artifact) []string {
	var paths []string
	for _, a := range artifacts {
		paths = append(paths, a.Path)
	}
	return paths
}

func TestGenerateStruct(t *testing.T) {
	artifacts := generate(t, nil, `
package exlcm;

struct point_t {
	int32 x;
	int32 y;
}
`)
	src := artifact(t, artifacts, "exlcm/point_t.go")
	testutil.ExpectContains(t, src, "package exlcm\n")
	testutil.ExpectContains(t, src, "type Point struct {")
	testutil.ExpectContains(t, src, "X int32")
	testutil.ExpectContains(t, src, "Y int32")
	testutil.ExpectContains(t, src, "const PointFingerprint uint64 = 0x")
	testutil.ExpectContains(t, src, "func (m *Point) Encode(w io.Writer) error {")
	testutil.ExpectContains(t, src, "func (m *Point) EncodeBody(enc *lcm.Encoder) error {")
	testutil.ExpectContains(t, src, "enc.PutInt32(m.X)")
	testutil.ExpectContains(t, src, "func (m *Point) Decode(r io.Reader) error {")
	testutil.ExpectContains(t, src, "dec.CheckFingerprint(PointFingerprint)")
}

func TestGenerateUnpackagedFallsBackToLcmtypes(t *testing.T) {
	artifacts := generate(t, nil, "struct header_t { int64 utime; }")
	src := artifact(t, artifacts, "lcmtypes/header_t.go")
	testutil.ExpectContains(t, src, "package lcmtypes\n")
}

func TestGenerateFingerprintConstMatchesSchema(t *testing.T) {
	src := `
package exlcm;

struct point_t {
	int32 x;
	int32 y;
}
`
	file, err := syntax.Parse([]uint8(src))
	testutil.AssertNoError(t, err)
	result, err := compiler.Compile([]*syntax.File{file})
	testutil.AssertNoError(t, err)

	fingerprint := result.Schema.TypeByName("exlcm.point_t").Fingerprint()
	artifacts, err := codegen.Generate(result.Schema)
	testutil.AssertNoError(t, err)
	generated := artifact(t, artifacts, "exlcm/point_t.go")
	testutil.ExpectContains(t, generated,
		fmt.Sprintf("const PointFingerprint uint64 = 0x%016X", fingerprint))
}

// Stripping the "_t" suffix can make two distinct schema names generate the
// same Go type; that must be reported, not silently emitted.
func TestGenerateNameCollision(t *testing.T) {
	file, err := syntax.Parse([]uint8(`
package exlcm;

struct pose { double x; }
struct pose_t { double y; }
`))
	testutil.AssertNoError(t, err)
	result, err := compiler.Compile([]*syntax.File{file})
	testutil.AssertNoError(t, err)

	_, err = codegen.Generate(result.Schema)
	testutil.AssertError(t, err)
	var collision *codegen.NameCollisionError
	if !errors.As(err, &collision) {
		t.Fatalf("Expected *codegen.NameCollisionError, got: %T (%v)", err, err)
	}
	testutil.ExpectEq(t, "Pose", collision.GoName)
	testutil.ExpectEq(t, "exlcm.pose", collision.First)
	testutil.ExpectEq(t, "exlcm.pose_t", collision.Second)
}

func TestGenerateDynamicArray(t *testing.T) {
	artifacts := generate(t, nil, `
struct list_t {
	int32 n;
	double values[n];
}
`)
	src := artifact(t, artifacts, "lcmtypes/list_t.go")
	testutil.ExpectContains(t, src, "Values []float64")
	testutil.ExpectContains(t, src, `lcm.CheckArrayLen("values", int64(len(m.Values)), int64(m.N))`)
	testutil.ExpectContains(t, src, `lcm.ArrayLen("values", int64(m.N))`)
	testutil.ExpectContains(t, src, "make([]float64, n0)")
}

func TestGenerateFixedArray(t *testing.T) {
	artifacts := generate(t, nil, `
struct mat_t {
	double cells[4][4];
}
`)
	src := artifact(t, artifacts, "lcmtypes/mat_t.go")
	testutil.ExpectContains(t, src, "Cells [4][4]float64")
	testutil.ExpectContains(t, src, "for i0 := range m.Cells {")
	testutil.ExpectContains(t, src, "for i1 := range m.Cells[i0] {")
	testutil.ExpectContains(t, src, "enc.PutDouble(m.Cells[i0][i1])")
}

func TestGenerateMixedDims(t *testing.T) {
	artifacts := generate(t, nil, `
struct grid_t {
	int32 cols;
	double rows[4][cols];
}
`)
	src := artifact(t, artifacts, "lcmtypes/grid_t.go")
	testutil.ExpectContains(t, src, "Rows [4][]float64")
	testutil.ExpectContains(t, src, "make([]float64, n1)")
}

func TestGenerateNestedStruct(t *testing.T) {
	artifacts := generate(t, nil, `
package exlcm;

struct inner_t {
	int64 utime;
}

struct outer_t {
	inner_t inner;
}
`)
	src := artifact(t, artifacts, "exlcm/outer_t.go")
	testutil.ExpectContains(t, src, "Inner Inner")
	testutil.ExpectContains(t, src, "m.Inner.EncodeBody(enc)")
	testutil.ExpectContains(t, src, "m.Inner.DecodeBody(dec)")
}

func TestGenerateCrossPackageImport(t *testing.T) {
	artifacts := generate(t,
		[]codegen.Option{codegen.WithImportPrefix("example.com/msgs")},
		"package geometry;\nstruct vec3_t { double x; double y; double z; }",
		"package robot;\nstruct state_t { geometry.vec3_t position; }",
	)
	src := artifact(t, artifacts, "robot/state_t.go")
	testutil.ExpectContains(t, src, `"example.com/msgs/geometry"`)
	testutil.ExpectContains(t, src, "Position geometry.Vec3")
}

func TestGenerateConsts(t *testing.T) {
	artifacts := generate(t, nil, `
struct limits_t {
	const int32 MAX_ITEMS = 64;
	const double TIMEOUT = 2.5;
	int32 count;
}
`)
	src := artifact(t, artifacts, "lcmtypes/limits_t.go")
	testutil.ExpectContains(t, src, "LimitsMaxItems int32 = 64")
	testutil.ExpectContains(t, src, "LimitsTimeout float64 = 2.5")
}

func TestGenerateEnum(t *testing.T) {
	artifacts := generate(t, nil, `
package exlcm;

enum color_t {
	RED,
	GREEN = 5,
	BLUE,
}
`)
	src := artifact(t, artifacts, "exlcm/color_t.go")
	testutil.ExpectContains(t, src, "type Color int32")
	testutil.ExpectContains(t, src, "ColorRed Color = 0")
	testutil.ExpectContains(t, src, "ColorGreen Color = 5")
	testutil.ExpectContains(t, src, "ColorBlue Color = 6")
	testutil.ExpectContains(t, src, "func (v Color) Valid() bool {")
	testutil.ExpectContains(t, src, "lcm.InvalidEnumValueError")
	testutil.ExpectContains(t, src, `return "RED"`)
}

func TestGenerateEnumWidth(t *testing.T) {
	artifacts := generate(t, nil, "enum mode_t : int16 { OFF, ON }")
	src := artifact(t, artifacts, "lcmtypes/mode_t.go")
	testutil.ExpectContains(t, src, "type Mode int16")
	testutil.ExpectContains(t, src, "enc.PutInt16(int16(v))")
	testutil.ExpectContains(t, src, "raw, err := dec.Int16()")
}

func TestGenerateString(t *testing.T) {
	artifacts := generate(t, nil, "struct msg_t { string text; }")
	src := artifact(t, artifacts, "lcmtypes/msg_t.go")
	testutil.ExpectContains(t, src, "Text string")
	testutil.ExpectContains(t, src, "enc.PutString(m.Text)")
}

func TestGenerateRuntimeImportOverride(t *testing.T) {
	artifacts := generate(t,
		[]codegen.Option{codegen.WithRuntimeImport("example.com/runtime/lcm")},
		"struct p_t { int32 x; }",
	)
	src := artifact(t, artifacts, "lcmtypes/p_t.go")
	testutil.ExpectContains(t, src, `"example.com/runtime/lcm"`)
}

func TestGenerateDeterministic(t *testing.T) {
	src := `
package exlcm;

struct point_t { int32 x; int32 y; }
enum color_t { RED, GREEN }
`
	first := generate(t, nil, src)
	second := generate(t, nil, src)
	testutil.ExpectEq(t, len(first), len(second))
	for ii := range first {
		testutil.ExpectEq(t, first[ii].Path, second[ii].Path)
		testutil.ExpectNoDiff(t, first[ii].Source, second[ii].Source)
	}
}

func TestGenerateHeader(t *testing.T) {
	artifacts := generate(t, nil, "package exlcm;\nstruct point_t { int32 x; }")
	src := artifact(t, artifacts, "exlcm/point_t.go")
	testutil.ExpectContains(t, src, "// Code generated by lcm-gen. DO NOT EDIT.")
	testutil.ExpectContains(t, src, "// Source: exlcm.point_t")
}
