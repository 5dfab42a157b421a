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

// Package compiler resolves parsed schema files into a Schema: declarations
// are registered into a global namespace, type references and array
// dimensions are bound, illegal recursion is rejected, and every type is
// assigned its structural fingerprint.
//
// Resolution is deterministic: files are processed in input order and each
// stage runs to completion across all files before the next stage begins, so
// the same inputs always produce the same first error.
package compiler

import (
	"strconv"

	"go.lcm-lang.org/lcmgen/syntax"
)

type CompileResult struct {
	Schema   *Schema
	Warnings []*Warning
}

// Compile resolves parsed files into a schema. The returned error, if any,
// is a *compiler.Error identifying the input file and span at fault.
func Compile(files []*syntax.File) (*CompileResult, error) {
	c := &compileState{
		schema: &Schema{
			byName: make(map[string]Type),
		},
	}
	if err := c.registerDecls(files); err != nil {
		return nil, err
	}
	if err := c.resolveRefs(files); err != nil {
		return nil, err
	}
	if err := c.resolveDims(); err != nil {
		return nil, err
	}
	if err := c.checkSizeCycles(); err != nil {
		return nil, err
	}
	computeFingerprints(c.schema.types)
	return &CompileResult{
		Schema:   c.schema,
		Warnings: c.warnings,
	}, nil
}

type compileState struct {
	schema   *Schema
	warnings []*Warning
	structs  []structWork
}

type structWork struct {
	decl *StructType
	src  *syntax.Struct
}

func (c *compileState) register(t Type, common *typeCommon) error {
	qualifiedName := common.QualifiedName()
	if _, dupe := c.schema.byName[qualifiedName]; dupe {
		return errDuplicateDefinition(qualifiedName, common.file, common.span)
	}
	c.schema.byName[qualifiedName] = t
	c.schema.types = append(c.schema.types, t)
	if syntax.PrimitiveByName(common.name) != syntax.P_NONE {
		c.warnings = append(c.warnings, warnShadowsPrimitive(common.name, common.file, common.span))
	}
	return nil
}

func (c *compileState) registerDecls(files []*syntax.File) error {
	for fileIdx, file := range files {
		pkg := file.PackageName()
		for _, src := range file.Structs {
			decl := &StructType{
				typeCommon: typeCommon{
					pkg:  pkg,
					name: src.Name.Name,
					file: fileIdx,
					span: src.Name.Span,
				},
			}
			for _, srcConst := range src.Consts {
				decl.consts = append(decl.consts, &Const{
					name:     srcConst.Name.Name,
					type_:    srcConst.Type,
					intValue: srcConst.IntValue,
					raw:      srcConst.Raw,
				})
			}
			if err := c.register(decl, &decl.typeCommon); err != nil {
				return err
			}
			if len(src.Members) == 0 && len(src.Consts) == 0 {
				c.warnings = append(c.warnings, warnEmptyStruct(
					decl.QualifiedName(), fileIdx, src.Name.Span,
				))
			}
			c.structs = append(c.structs, structWork{
				decl: decl,
				src:  src,
			})
		}
		for _, src := range file.Enums {
			decl := &EnumType{
				typeCommon: typeCommon{
					pkg:  pkg,
					name: src.Name.Name,
					file: fileIdx,
					span: src.Name.Span,
				},
				width: src.Width,
			}
			for _, item := range src.Items {
				decl.items = append(decl.items, EnumItem{
					Name:  item.Name.Name,
					Value: item.Value,
				})
			}
			if err := c.register(decl, &decl.typeCommon); err != nil {
				return err
			}
			if len(src.Items) == 0 {
				c.warnings = append(c.warnings, warnEmptyEnum(
					decl.QualifiedName(), fileIdx, src.Name.Span,
				))
			}
		}
	}
	return nil
}

// resolveRefs binds every member's type. Qualified references are looked up
// directly; unqualified references try the declaring file's package first,
// then the unpackaged namespace.
func (c *compileState) resolveRefs(files []*syntax.File) error {
	for _, work := range c.structs {
		for _, srcMember := range work.src.Members {
			fieldType, err := c.resolveRef(work.decl.pkg, work.decl.file, &srcMember.Type)
			if err != nil {
				return err
			}
			work.decl.members = append(work.decl.members, &Member{
				name:      srcMember.Name.Name,
				fieldType: fieldType,
			})
		}
	}
	return nil
}

func (c *compileState) resolveRef(pkg string, fileIdx int, ref *syntax.TypeRef) (FieldType, error) {
	if ref.IsPrimitive() {
		return FieldType{primitive: ref.Primitive}, nil
	}
	if ref.Package != "" {
		if t := c.schema.byName[ref.Package+"."+ref.Name]; t != nil {
			return FieldType{ref: t}, nil
		}
		return FieldType{}, errUnresolvedType(ref.Package+"."+ref.Name, fileIdx, ref.Span)
	}
	if pkg != "" {
		if t := c.schema.byName[pkg+"."+ref.Name]; t != nil {
			return FieldType{ref: t}, nil
		}
	}
	if t := c.schema.byName[ref.Name]; t != nil {
		return FieldType{ref: t}, nil
	}
	return FieldType{}, errUnresolvedType(ref.Name, fileIdx, ref.Span)
}

// resolveDims binds every array dimension. A name in dimension position is
// first matched against the struct's integer constants (yielding a fixed
// dimension), then against earlier scalar integer members (yielding a
// dynamic one).
func (c *compileState) resolveDims() error {
	for _, work := range c.structs {
		constByName := make(map[string]*Const)
		for _, decl := range work.decl.consts {
			constByName[decl.name] = decl
		}
		memberIndex := make(map[string]int)
		for ii, member := range work.decl.members {
			memberIndex[member.name] = ii
		}

		for mi, srcMember := range work.src.Members {
			member := work.decl.members[mi]
			for _, srcDim := range srcMember.Dims {
				dim, err := c.resolveDim(work, mi, memberIndex, constByName, &srcDim)
				if err != nil {
					return err
				}
				member.dims = append(member.dims, dim)
			}
		}
	}
	return nil
}

func (c *compileState) resolveDim(
	work structWork,
	memberIdx int,
	memberIndex map[string]int,
	constByName map[string]*Const,
	src *syntax.Dim,
) (Dim, error) {
	if src.Kind == syntax.DIM_FIXED {
		return Dim{
			fixed:   true,
			size:    src.Size,
			hashStr: strconv.FormatUint(src.Size, 10),
		}, nil
	}

	fileIdx := work.decl.file
	if decl, ok := constByName[src.Ref]; ok {
		if !decl.type_.IsInteger() {
			return Dim{}, errDimRefNotEarlierInteger(src.Ref, fileIdx, src.Span)
		}
		if decl.intValue < 0 {
			return Dim{}, errDimConstNegative(src.Ref, decl.intValue, fileIdx, src.Span)
		}
		size := uint64(decl.intValue)
		return Dim{
			fixed:   true,
			size:    size,
			hashStr: strconv.FormatUint(size, 10),
		}, nil
	}

	lenIdx, ok := memberIndex[src.Ref]
	if !ok {
		return Dim{}, errDimRefUnresolved(src.Ref, fileIdx, src.Span)
	}
	lenMember := work.decl.members[lenIdx]
	if lenIdx >= memberIdx || !lenMember.fieldType.Primitive().IsInteger() {
		return Dim{}, errDimRefNotEarlierInteger(src.Ref, fileIdx, src.Span)
	}
	if len(work.src.Members[lenIdx].Dims) != 0 {
		return Dim{}, errDimRefNotEarlierInteger(src.Ref, fileIdx, src.Span)
	}
	return Dim{
		lenMember: lenIdx,
		lenName:   src.Ref,
		hashStr:   src.Ref,
	}, nil
}

// checkSizeCycles rejects structs that contain themselves through members
// with no array dimensions; such a struct would have unbounded encoded size.
// Recursion through an array member is legal.
func (c *compileState) checkSizeCycles() error {
	const (
		visitWhite = uint8(iota)
		visitGrey
		visitBlack
	)
	state := make(map[*StructType]uint8)

	var visit func(st *StructType) error
	visit = func(st *StructType) error {
		state[st] = visitGrey
		for _, member := range st.members {
			if len(member.dims) != 0 {
				continue
			}
			ref, ok := member.fieldType.ref.(*StructType)
			if !ok {
				continue
			}
			switch state[ref] {
			case visitGrey:
				return errRecursiveSizeCycle(ref.QualifiedName(), ref.file, ref.span)
			case visitWhite:
				if err := visit(ref); err != nil {
					return err
				}
			}
		}
		state[st] = visitBlack
		return nil
	}

	for _, work := range c.structs {
		if state[work.decl] == visitWhite {
			if err := visit(work.decl); err != nil {
				return err
			}
		}
	}
	return nil
}
