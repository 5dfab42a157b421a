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

package lcmgen_test

import (
	"errors"
	"testing"

	lcmgen "go.lcm-lang.org/lcmgen"
	"go.lcm-lang.org/lcmgen/internal/testutil"
)

func input(path, src string) lcmgen.Input {
	return lcmgen.Input{
		Path: path,
		Src:  []byte(src),
	}
}

func TestCompile(t *testing.T) {
	result, err := lcmgen.Compile([]lcmgen.Input{
		input("point_t.lcm", `
package exlcm;

struct point_t {
	int32 x;
	int32 y;
}
`),
		input("color_t.lcm", `
package exlcm;

enum color_t { RED, GREEN, BLUE }
`),
	})
	testutil.AssertNoError(t, err)

	testutil.ExpectEq(t, 2, len(result.Artifacts))
	testutil.ExpectContains(t, result.Artifacts["exlcm/point_t.go"], "type Point struct {")
	testutil.ExpectContains(t, result.Artifacts["exlcm/color_t.go"], "type Color int32")

	testutil.ExpectEq(t, 2, len(result.Fingerprints))
	testutil.ExpectTrue(t, result.Fingerprints["exlcm.point_t"] != 0)
	testutil.ExpectTrue(t, result.Fingerprints["exlcm.color_t"] != 0)
	testutil.ExpectEq(t, 0, len(result.Warnings))
}

func TestCompileManyFiles(t *testing.T) {
	var inputs []lcmgen.Input
	inputs = append(inputs, input("header_t.lcm", `
package msgs;

struct header_t {
	int64 utime;
}
`))
	inputs = append(inputs, input("state_t.lcm", `
package msgs;

struct state_t {
	header_t header;
	int32 n;
	double values[n];
}
`))
	result, err := lcmgen.Compile(inputs)
	testutil.AssertNoError(t, err)
	testutil.ExpectContains(t, result.Artifacts["msgs/state_t.go"], "Header Header")
}

func TestCompileParseDiagnostic(t *testing.T) {
	_, err := lcmgen.Compile([]lcmgen.Input{
		input("ok.lcm", "struct ok_t { int32 x; }"),
		input("bad.lcm", "struct bad_t {\n\tint32 x\n}"),
	})
	testutil.AssertError(t, err)

	var diag *lcmgen.Diagnostic
	testutil.ExpectTrue(t, errors.As(err, &diag))
	testutil.ExpectEq(t, "bad.lcm", diag.Path)
	testutil.ExpectEq(t, 3, diag.Line)
	testutil.ExpectEq(t, 2000, diag.Code)
}

// When several inputs fail to parse, the reported diagnostic is always from
// the earliest one, whatever order the parses finish in.
func TestCompileEarliestParseError(t *testing.T) {
	inputs := []lcmgen.Input{
		input("a.lcm", "struct a_t { int32 x }"),
		input("b.lcm", "struct b_t { int32 y }"),
	}
	for ii := 0; ii < 8; ii++ {
		_, err := lcmgen.Compile(inputs)
		var diag *lcmgen.Diagnostic
		testutil.ExpectTrue(t, errors.As(err, &diag))
		testutil.ExpectEq(t, "a.lcm", diag.Path)
	}
}

func TestCompileResolveDiagnostic(t *testing.T) {
	_, err := lcmgen.Compile([]lcmgen.Input{
		input("state_t.lcm", "struct state_t {\n\tpose_t pose;\n}"),
	})
	var diag *lcmgen.Diagnostic
	testutil.ExpectTrue(t, errors.As(err, &diag))
	testutil.ExpectEq(t, "state_t.lcm", diag.Path)
	testutil.ExpectEq(t, 2, diag.Line)
	testutil.ExpectEq(t, 3001, diag.Code)
}

func TestCompileWarnings(t *testing.T) {
	result, err := lcmgen.Compile([]lcmgen.Input{
		input("empty.lcm", "struct empty_t { }"),
	})
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 1, len(result.Warnings))
	testutil.ExpectEq(t, 4001, result.Warnings[0].Code)
	testutil.ExpectEq(t, "empty.lcm", result.Warnings[0].Path)
}

func TestCompileOptionsForwarded(t *testing.T) {
	result, err := lcmgen.Compile([]lcmgen.Input{
		input("a.lcm", "package a;\nstruct inner_t { int32 x; }"),
		input("b.lcm", "package b;\nstruct outer_t { a.inner_t inner; }"),
	}, lcmgen.WithImportPrefix("example.com/msgs"))
	testutil.AssertNoError(t, err)
	testutil.ExpectContains(t, result.Artifacts["b/outer_t.go"], `"example.com/msgs/a"`)
}

func TestCompileDiagnosticString(t *testing.T) {
	_, err := lcmgen.Compile([]lcmgen.Input{
		input("bad.lcm", "struct bad_t {\n\tint32 x\n}"),
	})
	var diag *lcmgen.Diagnostic
	testutil.ExpectTrue(t, errors.As(err, &diag))
	testutil.ExpectContains(t, diag.Error(), "bad.lcm:3:")
	testutil.ExpectContains(t, diag.Error(), "E2000")
}
