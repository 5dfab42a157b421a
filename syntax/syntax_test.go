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

package syntax_test

import (
	"testing"

	"go.lcm-lang.org/lcmgen/internal/testutil"
	"go.lcm-lang.org/lcmgen/syntax"
)

func parse(t *testing.T, src string) *syntax.File {
	t.Helper()
	file, err := syntax.Parse([]uint8(src))
	testutil.AssertNoError(t, err)
	return file
}

func parseErr(t *testing.T, src string) uint32 {
	t.Helper()
	_, err := syntax.Parse([]uint8(src))
	testutil.AssertError(t, err)
	return errCode(t, err)
}

func TestParseEmptyFile(t *testing.T) {
	file := parse(t, "")
	testutil.ExpectEq(t, "", file.PackageName())
	testutil.ExpectEq(t, 0, len(file.Structs))
	testutil.ExpectEq(t, 0, len(file.Enums))
}

func TestParsePackage(t *testing.T) {
	file := parse(t, "package exlcm;")
	testutil.ExpectEq(t, "exlcm", file.PackageName())

	file = parse(t, "package com.example.robot;")
	testutil.ExpectEq(t, "com.example.robot", file.PackageName())
}

func TestParseDuplicatePackage(t *testing.T) {
	testutil.ExpectEq(t, 2003, parseErr(t, "package a;\npackage b;"))
}

func TestParseStruct(t *testing.T) {
	file := parse(t, `
package exlcm;

struct point_t {
	int32 x;
	int32 y;
}
`)
	testutil.ExpectEq(t, 1, len(file.Structs))
	decl := file.Structs[0]
	testutil.ExpectEq(t, "point_t", decl.Name.Name)
	testutil.ExpectEq(t, 2, len(decl.Members))
	testutil.ExpectEq(t, "x", decl.Members[0].Name.Name)
	testutil.ExpectEq(t, syntax.P_INT32, decl.Members[0].Type.Primitive)
	testutil.ExpectEq(t, "y", decl.Members[1].Name.Name)
}

func TestParseMemberTypes(t *testing.T) {
	file := parse(t, `
struct mixed_t {
	double speed;
	string name;
	boolean valid;
	byte raw;
	pose_t pose;
	geometry.quaternion_t orient;
}
`)
	members := file.Structs[0].Members
	testutil.ExpectEq(t, syntax.P_DOUBLE, members[0].Type.Primitive)
	testutil.ExpectEq(t, syntax.P_STRING, members[1].Type.Primitive)
	testutil.ExpectEq(t, syntax.P_BOOLEAN, members[2].Type.Primitive)
	testutil.ExpectEq(t, syntax.P_BYTE, members[3].Type.Primitive)

	testutil.ExpectFalse(t, members[4].Type.IsPrimitive())
	testutil.ExpectEq(t, "", members[4].Type.Package)
	testutil.ExpectEq(t, "pose_t", members[4].Type.Name)

	testutil.ExpectEq(t, "geometry", members[5].Type.Package)
	testutil.ExpectEq(t, "quaternion_t", members[5].Type.Name)
}

func TestParseMemberGroup(t *testing.T) {
	file := parse(t, `
struct vector_t {
	double x, y, z;
}
`)
	members := file.Structs[0].Members
	testutil.ExpectEq(t, 3, len(members))
	for ii, want := range []string{"x", "y", "z"} {
		testutil.ExpectEq(t, want, members[ii].Name.Name)
		testutil.ExpectEq(t, syntax.P_DOUBLE, members[ii].Type.Primitive)
	}
}

// Each name in a member group carries its own array dimensions.
func TestParseMemberGroupDims(t *testing.T) {
	file := parse(t, `
struct mixed_t {
	int32 n;
	double samples[4], weight, history[n];
}
`)
	members := file.Structs[0].Members
	testutil.ExpectEq(t, 4, len(members))

	testutil.ExpectEq(t, "samples", members[1].Name.Name)
	testutil.ExpectEq(t, 1, len(members[1].Dims))
	testutil.ExpectEq(t, syntax.DIM_FIXED, members[1].Dims[0].Kind)

	testutil.ExpectEq(t, "weight", members[2].Name.Name)
	testutil.ExpectEq(t, 0, len(members[2].Dims))

	testutil.ExpectEq(t, "history", members[3].Name.Name)
	testutil.ExpectEq(t, syntax.DIM_DYNAMIC, members[3].Dims[0].Kind)
}

func TestParseMemberGroupDuplicateName(t *testing.T) {
	testutil.ExpectEq(t, 2010, parseErr(t, `
struct bad_t {
	double x, x;
}
`))
}

func TestParseMemberGroupTrailingComma(t *testing.T) {
	testutil.ExpectEq(t, 2001, parseErr(t, `
struct bad_t {
	double x, ;
}
`))
}

func TestParseArrayDims(t *testing.T) {
	file := parse(t, `
struct grid_t {
	int32 rows;
	double fixed[16];
	double dynamic[rows];
	double matrix[4][cols];
	int32 cols;
}
`)
	members := file.Structs[0].Members

	dims := members[1].Dims
	testutil.ExpectEq(t, 1, len(dims))
	testutil.ExpectEq(t, syntax.DIM_FIXED, dims[0].Kind)
	testutil.ExpectEq(t, 16, dims[0].Size)

	dims = members[2].Dims
	testutil.ExpectEq(t, syntax.DIM_DYNAMIC, dims[0].Kind)
	testutil.ExpectEq(t, "rows", dims[0].Ref)

	dims = members[3].Dims
	testutil.ExpectEq(t, 2, len(dims))
	testutil.ExpectEq(t, syntax.DIM_FIXED, dims[0].Kind)
	testutil.ExpectEq(t, 4, dims[0].Size)
	testutil.ExpectEq(t, syntax.DIM_DYNAMIC, dims[1].Kind)
	testutil.ExpectEq(t, "cols", dims[1].Ref)
}

func TestParseNegativeDim(t *testing.T) {
	testutil.ExpectEq(t, 2006, parseErr(t, `
struct bad_t {
	double v[-3];
}
`))
}

func TestParseConsts(t *testing.T) {
	file := parse(t, `
struct limits_t {
	const int32 MAX_ITEMS = 64, MIN_ITEMS = 1;
	const double TIMEOUT = 2.5;
	const int64 BIG = 0x7FFFFFFFFFFFFFFF;
	int32 count;
}
`)
	decl := file.Structs[0]
	testutil.ExpectEq(t, 4, len(decl.Consts))
	testutil.ExpectEq(t, "MAX_ITEMS", decl.Consts[0].Name.Name)
	testutil.ExpectEq(t, 64, decl.Consts[0].IntValue)
	testutil.ExpectEq(t, "MIN_ITEMS", decl.Consts[1].Name.Name)
	testutil.ExpectEq(t, 1, decl.Consts[1].IntValue)
	testutil.ExpectEq(t, syntax.P_DOUBLE, decl.Consts[2].Type)
	testutil.ExpectEq(t, "2.5", decl.Consts[2].Raw)
	testutil.ExpectEq(t, int64(0x7FFFFFFFFFFFFFFF), decl.Consts[3].IntValue)
}

func TestParseConstTypeInvalid(t *testing.T) {
	testutil.ExpectEq(t, 2008, parseErr(t, `
struct bad_t {
	const string NAME = 1;
}
`))
	testutil.ExpectEq(t, 2008, parseErr(t, `
struct bad_t {
	const boolean FLAG = 1;
}
`))
}

func TestParseConstValueOutOfRange(t *testing.T) {
	testutil.ExpectEq(t, 2009, parseErr(t, `
struct bad_t {
	const int8 TOO_BIG = 200;
}
`))
	testutil.ExpectEq(t, 2009, parseErr(t, `
struct bad_t {
	const int16 TOO_SMALL = -40000;
}
`))
}

func TestParseDuplicateMember(t *testing.T) {
	testutil.ExpectEq(t, 2010, parseErr(t, `
struct bad_t {
	int32 x;
	double x;
}
`))
}

func TestParseDuplicateConst(t *testing.T) {
	testutil.ExpectEq(t, 2011, parseErr(t, `
struct bad_t {
	const int32 A = 1;
	const int32 A = 2;
}
`))
}

func TestParseEnum(t *testing.T) {
	file := parse(t, `
enum color_t {
	RED,
	GREEN = 5,
	BLUE,
}
`)
	testutil.ExpectEq(t, 1, len(file.Enums))
	decl := file.Enums[0]
	testutil.ExpectEq(t, "color_t", decl.Name.Name)
	testutil.ExpectEq(t, syntax.P_INT32, decl.Width)
	testutil.ExpectEq(t, 3, len(decl.Items))
	testutil.ExpectEq(t, 0, decl.Items[0].Value)
	testutil.ExpectEq(t, 5, decl.Items[1].Value)
	testutil.ExpectEq(t, 6, decl.Items[2].Value)
}

func TestParseEnumWidth(t *testing.T) {
	file := parse(t, "enum mode_t : int16 { OFF, ON }")
	testutil.ExpectEq(t, syntax.P_INT16, file.Enums[0].Width)

	testutil.ExpectEq(t, 2014, parseErr(t, "enum bad_t : double { A }"))
}

func TestParseEnumWidthRange(t *testing.T) {
	testutil.ExpectEq(t, 2009, parseErr(t, "enum bad_t : int8 { A = 128 }"))
}

func TestParseEnumDuplicates(t *testing.T) {
	testutil.ExpectEq(t, 2012, parseErr(t, "enum bad_t { A, A }"))
	testutil.ExpectEq(t, 2013, parseErr(t, "enum bad_t { A = 1, B = 1 }"))
	testutil.ExpectEq(t, 2013, parseErr(t, "enum bad_t { A = 1, B = 0, C }"))
}

func TestParseKeywordAsName(t *testing.T) {
	testutil.ExpectEq(t, 2018, parseErr(t, "struct struct { }"))
	testutil.ExpectEq(t, 2018, parseErr(t, "enum package { }"))
}

func TestParseExpectedDeclaration(t *testing.T) {
	testutil.ExpectEq(t, 2002, parseErr(t, "int32 x;"))
}

func TestParseMissingSemicolon(t *testing.T) {
	testutil.ExpectEq(t, 2000, parseErr(t, `
struct bad_t {
	int32 x
}
`))
}

func TestParseComments(t *testing.T) {
	file := parse(t, `
// Leading comment.
package exlcm; /* trailing */

struct point_t {
	int32 x; // coordinate
	/* block */ int32 y;
}
`)
	testutil.ExpectEq(t, "exlcm", file.PackageName())
	testutil.ExpectEq(t, 2, len(file.Structs[0].Members))
}

func TestPosition(t *testing.T) {
	src := []uint8("abc\ndef\n")
	line, column := syntax.Position(src, 0)
	testutil.ExpectEq(t, 1, line)
	testutil.ExpectEq(t, 1, column)

	line, column = syntax.Position(src, 5)
	testutil.ExpectEq(t, 2, line)
	testutil.ExpectEq(t, 2, column)
}
