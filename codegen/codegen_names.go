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

package codegen

import (
	"strings"

	"go.lcm-lang.org/lcmgen/syntax"
)

// goTypeName converts a schema type name to an exported Go type name. A
// trailing "_t" suffix, conventional in schema files, is dropped:
// "camera_frame_t" becomes "CameraFrame".
func goTypeName(name string) string {
	name = strings.TrimSuffix(name, "_t")
	return goCamel(name)
}

// goFieldName converts a schema member or constant name to an exported Go
// identifier: "num_children" becomes "NumChildren", "MAX_ITEMS" becomes
// "MaxItems".
func goFieldName(name string) string {
	return goCamel(name)
}

func goCamel(name string) string {
	var out strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		if part == strings.ToUpper(part) {
			part = strings.ToLower(part)
		}
		out.WriteString(strings.ToUpper(part[:1]))
		out.WriteString(part[1:])
	}
	return out.String()
}

// goPackageName returns the Go package name for a dotted schema package, or
// the fallback package for types declared outside any package.
func goPackageName(pkg string) string {
	if pkg == "" {
		return "lcmtypes"
	}
	if idx := strings.LastIndexByte(pkg, '.'); idx >= 0 {
		return pkg[idx+1:]
	}
	return pkg
}

// goPackageDir returns the output directory for a schema package, with
// package segments as path segments.
func goPackageDir(pkg string) string {
	if pkg == "" {
		return "lcmtypes"
	}
	return strings.ReplaceAll(pkg, ".", "/")
}

func primitiveGoType(p syntax.Primitive) string {
	switch p {
	case syntax.P_INT8:
		return "int8"
	case syntax.P_INT16:
		return "int16"
	case syntax.P_INT32:
		return "int32"
	case syntax.P_INT64:
		return "int64"
	case syntax.P_FLOAT:
		return "float32"
	case syntax.P_DOUBLE:
		return "float64"
	case syntax.P_STRING:
		return "string"
	case syntax.P_BOOLEAN:
		return "bool"
	case syntax.P_BYTE:
		return "byte"
	}
	return ""
}

// primitiveMethod returns the Encoder/Decoder method name suffix for a
// primitive: the encoder method is "Put" + suffix, the decoder method is the
// suffix itself.
func primitiveMethod(p syntax.Primitive) string {
	switch p {
	case syntax.P_INT8:
		return "Int8"
	case syntax.P_INT16:
		return "Int16"
	case syntax.P_INT32:
		return "Int32"
	case syntax.P_INT64:
		return "Int64"
	case syntax.P_FLOAT:
		return "Float"
	case syntax.P_DOUBLE:
		return "Double"
	case syntax.P_STRING:
		return "String"
	case syntax.P_BOOLEAN:
		return "Boolean"
	case syntax.P_BYTE:
		return "Byte"
	}
	return ""
}
