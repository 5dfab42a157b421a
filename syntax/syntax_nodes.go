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

package syntax

type Span struct {
	start, len uint32
}

func NewSpan(start, len uint32) Span {
	return Span{start, len}
}

func (s *Span) Start() uint32 {
	return s.start
}

func (s *Span) End() uint32 {
	return s.start + s.len
}

func (s *Span) Len() uint32 {
	return s.len
}

// Position converts a byte offset into a 1-based line and column, counting
// columns in bytes. Offsets past the end of src map to the final position.
func Position(src []uint8, offset uint32) (line, column int) {
	line = 1
	column = 1
	for ii := uint32(0); ii < offset && ii < uint32(len(src)); ii++ {
		if src[ii] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}

// Primitive identifies one of the IDL's built-in field types. The zero value
// P_NONE marks a type reference that names a struct or enum instead.
type Primitive uint8

const (
	P_NONE Primitive = iota
	P_INT8
	P_INT16
	P_INT32
	P_INT64
	P_FLOAT
	P_DOUBLE
	P_STRING
	P_BOOLEAN
	P_BYTE
)

var primitivesByName = map[string]Primitive{
	"int8":    P_INT8,
	"int16":   P_INT16,
	"int32":   P_INT32,
	"int64":   P_INT64,
	"float":   P_FLOAT,
	"double":  P_DOUBLE,
	"string":  P_STRING,
	"boolean": P_BOOLEAN,
	"byte":    P_BYTE,
}

// PrimitiveByName returns the primitive named by an identifier, or P_NONE if
// the identifier is not a primitive type name.
func PrimitiveByName(name string) Primitive {
	return primitivesByName[name]
}

func (p Primitive) String() string {
	switch p {
	case P_INT8:
		return "int8"
	case P_INT16:
		return "int16"
	case P_INT32:
		return "int32"
	case P_INT64:
		return "int64"
	case P_FLOAT:
		return "float"
	case P_DOUBLE:
		return "double"
	case P_STRING:
		return "string"
	case P_BOOLEAN:
		return "boolean"
	case P_BYTE:
		return "byte"
	default:
		return "none"
	}
}

// IsInteger reports whether values of this primitive may supply a dynamic
// array dimension or an enum's underlying width.
func (p Primitive) IsInteger() bool {
	switch p {
	case P_INT8, P_INT16, P_INT32, P_INT64:
		return true
	}
	return false
}

// Size returns the encoded width in bytes, or 0 for variable-width types.
func (p Primitive) Size() int {
	switch p {
	case P_INT8, P_BOOLEAN, P_BYTE:
		return 1
	case P_INT16:
		return 2
	case P_INT32, P_FLOAT:
		return 4
	case P_INT64, P_DOUBLE:
		return 8
	}
	return 0
}

// File is the AST of a single schema source file. Nodes are immutable once
// parsing completes and are owned by the file that produced them.
type File struct {
	Package *PackageDecl
	Structs []*Struct
	Enums   []*Enum
}

// PackageName returns the file's dotted package name, or "" when the file
// declares no package.
func (f *File) PackageName() string {
	if f.Package == nil {
		return ""
	}
	return f.Package.Name
}

type PackageDecl struct {
	Name string
	Span Span
}

type Ident struct {
	Name string
	Span Span
}

type Struct struct {
	Name    Ident
	Members []*Member
	Consts  []*Const
	Span    Span
}

// Member is a single struct field: a type reference plus zero or more array
// dimensions, outermost first.
type Member struct {
	Name Ident
	Type TypeRef
	Dims []Dim
}

// TypeRef is either a primitive tag or an unresolved (optionally
// package-qualified) type name.
type TypeRef struct {
	Primitive Primitive
	Package   string
	Name      string
	Span      Span
}

func (r *TypeRef) IsPrimitive() bool {
	return r.Primitive != P_NONE
}

// DimKind distinguishes fixed array dimensions from ones whose length is the
// value of an earlier sibling member.
type DimKind uint8

const (
	DIM_FIXED DimKind = iota
	DIM_DYNAMIC
)

// Dim is one bracketed array dimension: a literal size, or an identifier
// naming either a const of the same struct (fixed) or an earlier integer
// member (dynamic). Name references are classified during resolution; at
// parse time every non-literal dimension has Kind DIM_DYNAMIC.
type Dim struct {
	Kind DimKind
	Size uint64
	Ref  string
	Span Span
}

type Const struct {
	Name     Ident
	Type     Primitive
	IntValue int64
	Raw      string
	Span     Span
}

type Enum struct {
	Name  Ident
	Width Primitive
	Items []*EnumItem
	Span  Span
}

type EnumItem struct {
	Name  Ident
	Value int64
}
