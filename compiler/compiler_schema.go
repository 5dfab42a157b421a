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

package compiler

import (
	"go.lcm-lang.org/lcmgen/syntax"
)

// Schema is the resolved form of one or more parsed schema files. Types are
// ordered by input file, then by declaration order within each file.
type Schema struct {
	types  []Type
	byName map[string]Type
}

func (s *Schema) Types() []Type {
	return s.types
}

// TypeByName looks up a type by its qualified name ("pkg.name", or just
// "name" for types declared outside any package).
func (s *Schema) TypeByName(qualifiedName string) Type {
	return s.byName[qualifiedName]
}

// Fingerprint returns the wire fingerprint of the named type.
func (s *Schema) Fingerprint(qualifiedName string) (uint64, bool) {
	decl, ok := s.byName[qualifiedName]
	if !ok {
		return 0, false
	}
	return decl.Fingerprint(), true
}

// Type is a resolved struct or enum declaration.
type Type interface {
	Package() string
	Name() string
	QualifiedName() string

	// Fingerprint returns the structural hash encoded ahead of every
	// top-level message of this type.
	Fingerprint() uint64

	isType()
}

type typeCommon struct {
	pkg  string
	name string
	file int
	span syntax.Span

	// hashRecursive is the pre-rotation hash summed into containing
	// structs; fingerprint is the rotated top-level form.
	hashRecursive int64
	fingerprint   uint64
}

func (t *typeCommon) Package() string {
	return t.pkg
}

func (t *typeCommon) Name() string {
	return t.name
}

func (t *typeCommon) QualifiedName() string {
	if t.pkg == "" {
		return t.name
	}
	return t.pkg + "." + t.name
}

func (t *typeCommon) Fingerprint() uint64 {
	return t.fingerprint
}

// File returns the index of the input file that declared this type.
func (t *typeCommon) File() int {
	return t.file
}

func (t *typeCommon) Span() syntax.Span {
	return t.span
}

type StructType struct {
	typeCommon
	members []*Member
	consts  []*Const
}

func (*StructType) isType() {}

func (t *StructType) Members() []*Member {
	return t.members
}

func (t *StructType) Consts() []*Const {
	return t.consts
}

// Member is a resolved struct field. Array dimensions are ordered outermost
// first; dynamic dimensions are bound to an earlier sibling member.
type Member struct {
	name      string
	fieldType FieldType
	dims      []Dim
}

func (m *Member) Name() string {
	return m.name
}

func (m *Member) Type() FieldType {
	return m.fieldType
}

func (m *Member) Dims() []Dim {
	return m.dims
}

// FieldType is either a primitive or a resolved reference to another type.
type FieldType struct {
	primitive syntax.Primitive
	ref       Type
}

func (t FieldType) IsPrimitive() bool {
	return t.primitive != syntax.P_NONE
}

func (t FieldType) Primitive() syntax.Primitive {
	return t.primitive
}

// Ref returns the referenced struct or enum, or nil for primitives.
func (t FieldType) Ref() Type {
	return t.ref
}

// Dim is one resolved array dimension. Fixed dimensions have a size known at
// compile time; dynamic dimensions take their length from an earlier integer
// member of the same struct.
type Dim struct {
	fixed     bool
	size      uint64
	lenMember int
	lenName   string

	// hashStr is the dimension's contribution to the fingerprint: the
	// decimal size for fixed dimensions, the member name for dynamic.
	hashStr string
}

func (d Dim) IsFixed() bool {
	return d.fixed
}

func (d Dim) Size() uint64 {
	return d.size
}

// LenMember returns the index of the member supplying a dynamic dimension's
// length. Only valid when IsFixed reports false.
func (d Dim) LenMember() int {
	return d.lenMember
}

func (d Dim) LenName() string {
	return d.lenName
}

type Const struct {
	name     string
	type_    syntax.Primitive
	intValue int64
	raw      string
}

func (c *Const) Name() string {
	return c.name
}

func (c *Const) Type() syntax.Primitive {
	return c.type_
}

// IntValue returns the constant's value for integer-typed constants.
func (c *Const) IntValue() int64 {
	return c.intValue
}

// Raw returns the constant's value as written in the source file.
func (c *Const) Raw() string {
	return c.raw
}

type EnumType struct {
	typeCommon
	width syntax.Primitive
	items []EnumItem
}

func (*EnumType) isType() {}

// Width returns the integer primitive that carries this enum on the wire.
func (t *EnumType) Width() syntax.Primitive {
	return t.width
}

func (t *EnumType) Items() []EnumItem {
	return t.items
}

type EnumItem struct {
	Name  string
	Value int64
}
