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

// Package syntax tokenizes and parses schema source files into per-file
// ASTs. Parsing fails fast: the first malformed construct is reported with
// its byte span and no partial AST is returned.
package syntax

import (
	"math"
	"strconv"
	"strings"
)

const (
	kwPackage = "package"
	kwStruct  = "struct"
	kwEnum    = "enum"
	kwConst   = "const"
)

func isKeyword(name string) bool {
	switch name {
	case kwPackage, kwStruct, kwEnum, kwConst:
		return true
	}
	return false
}

// Parse tokenizes and parses one schema source file.
func Parse(src []uint8) (*File, error) {
	tokens, err := NewTokens(src)
	if err != nil {
		return nil, err
	}
	p := &parser{
		rest:   src,
		tokens: tokens,
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.parseFile()
}

type parser struct {
	rest   []uint8
	tokens *Tokens
	tok    Token
	text   string
	start  uint32
	offset uint32
	prev   uint32 // end offset of the previously consumed token
}

// advance consumes the current token and reads the next one, skipping
// whitespace, newlines, and comments.
func (p *parser) advance() error {
	p.prev = p.start + uint32(p.tok.Len)
	for {
		if err := p.tokens.Next(&p.tok); err != nil {
			return err
		}
		p.start = p.offset
		p.text = string(p.rest[:p.tok.Len])
		p.rest = p.rest[p.tok.Len:]
		p.offset += uint32(p.tok.Len)
		switch p.tok.Kind {
		case T_SPACE, T_NEWLINE, T_COMMENT:
			continue
		}
		return nil
	}
}

func (p *parser) span() Span {
	return Span{
		start: p.start,
		len:   uint32(p.tok.Len),
	}
}

func (p *parser) sigil(want uint8, kind TokenKind) error {
	if p.tok.Kind != kind {
		return errExpectedSigil(want, p.tok.Kind, p.text, p.span())
	}
	return p.advance()
}

func (p *parser) trySigil(kind TokenKind) (bool, error) {
	if p.tok.Kind != kind {
		return false, nil
	}
	return true, p.advance()
}

func (p *parser) ident() (Ident, error) {
	if p.tok.Kind != T_IDENT {
		return Ident{}, errExpectedIdent(p.tok.Kind, p.text, p.span())
	}
	if isKeyword(p.text) {
		return Ident{}, errKeywordAsName(p.text, p.span())
	}
	ident := Ident{
		Name: p.text,
		Span: p.span(),
	}
	return ident, p.advance()
}

func (p *parser) atKeyword(keyword string) bool {
	return p.tok.Kind == T_IDENT && p.text == keyword
}

func (p *parser) parseFile() (*File, error) {
	file := &File{}

	if p.atKeyword(kwPackage) {
		pkg, err := p.parsePackage()
		if err != nil {
			return nil, err
		}
		file.Package = pkg
	}

	for {
		switch {
		case p.tok.Kind == T_EOF:
			return file, nil
		case p.atKeyword(kwStruct):
			decl, err := p.parseStruct()
			if err != nil {
				return nil, err
			}
			file.Structs = append(file.Structs, decl)
		case p.atKeyword(kwEnum):
			decl, err := p.parseEnum()
			if err != nil {
				return nil, err
			}
			file.Enums = append(file.Enums, decl)
		case p.atKeyword(kwPackage):
			// A package declaration is only legal before the first
			// type declaration.
			if file.Package != nil {
				return nil, errDuplicatePackageDecl(p.span())
			}
			return nil, errExpectedDeclaration(p.tok.Kind, p.text, p.span())
		default:
			return nil, errExpectedDeclaration(p.tok.Kind, p.text, p.span())
		}
	}
}

func (p *parser) parsePackage() (*PackageDecl, error) {
	startOff := p.start
	if err := p.advance(); err != nil {
		return nil, err
	}

	var segments []string
	for {
		if p.tok.Kind != T_IDENT || isKeyword(p.text) {
			return nil, errExpectedPackageName(p.tok.Kind, p.text, p.span())
		}
		segments = append(segments, p.text)
		if err := p.advance(); err != nil {
			return nil, err
		}
		if dot, err := p.trySigil(T_DOT); err != nil {
			return nil, err
		} else if !dot {
			break
		}
	}
	if err := p.sigil(';', T_SEMI); err != nil {
		return nil, err
	}

	return &PackageDecl{
		Name: strings.Join(segments, "."),
		Span: Span{startOff, p.prev - startOff},
	}, nil
}

func (p *parser) parseStruct() (*Struct, error) {
	startOff := p.start
	if err := p.advance(); err != nil {
		return nil, err
	}
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if err := p.sigil('{', T_OPEN_CURL); err != nil {
		return nil, err
	}

	decl := &Struct{
		Name: name,
	}
	names := make(map[string]struct{})
	for {
		if done, err := p.trySigil(T_CLOSE_CURL); err != nil {
			return nil, err
		} else if done {
			break
		}
		if p.atKeyword(kwConst) {
			if err := p.parseConstGroup(decl, names); err != nil {
				return nil, err
			}
			continue
		}
		members, err := p.parseMemberGroup()
		if err != nil {
			return nil, err
		}
		for _, member := range members {
			if _, dupe := names[member.Name.Name]; dupe {
				return nil, errDuplicateMemberName(member.Name.Name, member.Name.Span)
			}
			names[member.Name.Name] = struct{}{}
			decl.Members = append(decl.Members, member)
		}
	}

	decl.Span = Span{startOff, p.prev - startOff}
	return decl, nil
}

// parseMemberGroup parses one member declaration. Several members may share
// a type ("double x, y, z;"); each name carries its own array dimensions.
func (p *parser) parseMemberGroup() ([]*Member, error) {
	typeRef, err := p.parseTypeRef()
	if err != nil {
		return nil, err
	}

	var members []*Member
	for {
		name, err := p.ident()
		if err != nil {
			return nil, err
		}
		var dims []Dim
		for {
			if open, err := p.trySigil(T_OPEN_SQUARE); err != nil {
				return nil, err
			} else if !open {
				break
			}
			dim, err := p.parseDim()
			if err != nil {
				return nil, err
			}
			if err := p.sigil(']', T_CLOSE_SQUARE); err != nil {
				return nil, err
			}
			dims = append(dims, dim)
		}
		members = append(members, &Member{
			Name: name,
			Type: typeRef,
			Dims: dims,
		})
		if comma, err := p.trySigil(T_COMMA); err != nil {
			return nil, err
		} else if !comma {
			break
		}
	}
	if err := p.sigil(';', T_SEMI); err != nil {
		return nil, err
	}
	return members, nil
}

func (p *parser) parseTypeRef() (TypeRef, error) {
	if p.tok.Kind != T_IDENT || isKeyword(p.text) {
		return TypeRef{}, errExpectedTypeName(p.tok.Kind, p.text, p.span())
	}
	startOff := p.start
	segments := []string{p.text}
	if err := p.advance(); err != nil {
		return TypeRef{}, err
	}
	for {
		if dot, err := p.trySigil(T_DOT); err != nil {
			return TypeRef{}, err
		} else if !dot {
			break
		}
		if p.tok.Kind != T_IDENT || isKeyword(p.text) {
			return TypeRef{}, errExpectedTypeName(p.tok.Kind, p.text, p.span())
		}
		segments = append(segments, p.text)
		if err := p.advance(); err != nil {
			return TypeRef{}, err
		}
	}

	span := Span{startOff, p.prev - startOff}
	if len(segments) == 1 {
		if prim := PrimitiveByName(segments[0]); prim != P_NONE {
			return TypeRef{
				Primitive: prim,
				Span:      span,
			}, nil
		}
	}
	return TypeRef{
		Package: strings.Join(segments[:len(segments)-1], "."),
		Name:    segments[len(segments)-1],
		Span:    span,
	}, nil
}

func (p *parser) parseDim() (Dim, error) {
	switch p.tok.Kind {
	case T_INT_LIT, T_HEX_INT_LIT:
		if p.text[0] == '-' {
			return Dim{}, errDimensionNegative(p.text, p.span())
		}
		size, err := parseUint(p.text, p.tok.Kind)
		if err != nil {
			return Dim{}, errExpectedDimension(p.tok.Kind, p.text, p.span())
		}
		dim := Dim{
			Kind: DIM_FIXED,
			Size: size,
			Span: p.span(),
		}
		return dim, p.advance()
	case T_IDENT:
		if isKeyword(p.text) {
			return Dim{}, errExpectedDimension(p.tok.Kind, p.text, p.span())
		}
		dim := Dim{
			Kind: DIM_DYNAMIC,
			Ref:  p.text,
			Span: p.span(),
		}
		return dim, p.advance()
	default:
		return Dim{}, errExpectedDimension(p.tok.Kind, p.text, p.span())
	}
}

func (p *parser) parseConstGroup(decl *Struct, names map[string]struct{}) error {
	if err := p.advance(); err != nil {
		return err
	}

	if p.tok.Kind != T_IDENT {
		return errExpectedTypeName(p.tok.Kind, p.text, p.span())
	}
	constType := PrimitiveByName(p.text)
	switch constType {
	case P_INT8, P_INT16, P_INT32, P_INT64, P_FLOAT, P_DOUBLE:
	default:
		return errConstTypeInvalid(p.text, p.span())
	}
	if err := p.advance(); err != nil {
		return err
	}

	for {
		name, err := p.ident()
		if err != nil {
			return err
		}
		if _, dupe := names[name.Name]; dupe {
			return errDuplicateConstName(name.Name, name.Span)
		}
		names[name.Name] = struct{}{}

		if err := p.sigil('=', T_EQ); err != nil {
			return err
		}

		const_ := &Const{
			Name: name,
			Type: constType,
			Raw:  p.text,
			Span: p.span(),
		}
		switch constType {
		case P_FLOAT, P_DOUBLE:
			switch p.tok.Kind {
			case T_INT_LIT, T_FLOAT_LIT:
			default:
				return errExpectedConstValue(p.tok.Kind, p.text, p.span())
			}
			if _, err := strconv.ParseFloat(p.text, 64); err != nil {
				return errValueOutOfRange(constType, p.text, p.span())
			}
			if err := p.advance(); err != nil {
				return err
			}
		default:
			value, err := p.intLit(constType)
			if err != nil {
				return err
			}
			const_.IntValue = value
		}
		decl.Consts = append(decl.Consts, const_)

		if comma, err := p.trySigil(T_COMMA); err != nil {
			return err
		} else if comma {
			continue
		}
		return p.sigil(';', T_SEMI)
	}
}

func (p *parser) parseEnum() (*Enum, error) {
	startOff := p.start
	if err := p.advance(); err != nil {
		return nil, err
	}
	name, err := p.ident()
	if err != nil {
		return nil, err
	}

	width := P_INT32
	if colon, err := p.trySigil(T_COLON); err != nil {
		return nil, err
	} else if colon {
		if p.tok.Kind != T_IDENT {
			return nil, errEnumWidthInvalid(p.text, p.span())
		}
		width = PrimitiveByName(p.text)
		if !width.IsInteger() {
			return nil, errEnumWidthInvalid(p.text, p.span())
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if err := p.sigil('{', T_OPEN_CURL); err != nil {
		return nil, err
	}

	decl := &Enum{
		Name:  name,
		Width: width,
	}
	labels := make(map[string]struct{})
	values := make(map[int64]string)
	next := int64(0)
	for {
		if done, err := p.trySigil(T_CLOSE_CURL); err != nil {
			return nil, err
		} else if done {
			break
		}
		if p.tok.Kind != T_IDENT || isKeyword(p.text) {
			return nil, errExpectedEnumLabel(p.tok.Kind, p.text, p.span())
		}
		label, err := p.ident()
		if err != nil {
			return nil, err
		}
		if _, dupe := labels[label.Name]; dupe {
			return nil, errDuplicateEnumLabel(label.Name, label.Span)
		}
		labels[label.Name] = struct{}{}

		value := next
		if eq, err := p.trySigil(T_EQ); err != nil {
			return nil, err
		} else if eq {
			valueSpan := p.span()
			value, err = p.intLit(width)
			if err != nil {
				return nil, err
			}
			if _, dupe := values[value]; dupe {
				return nil, errDuplicateEnumValue(value, label.Name, valueSpan)
			}
		} else {
			if _, dupe := values[value]; dupe {
				return nil, errDuplicateEnumValue(value, label.Name, label.Span)
			}
			if min, max := intRange(width); value < min || value > max {
				return nil, errValueOutOfRange(width, label.Name, label.Span)
			}
		}
		values[value] = label.Name
		next = value + 1
		decl.Items = append(decl.Items, &EnumItem{
			Name:  label,
			Value: value,
		})

		if comma, err := p.trySigil(T_COMMA); err != nil {
			return nil, err
		} else if comma {
			continue
		}
		if err := p.sigil('}', T_CLOSE_CURL); err != nil {
			return nil, err
		}
		break
	}

	decl.Span = Span{startOff, p.prev - startOff}
	return decl, nil
}

// intLit consumes an integer literal token, range-checked against the given
// integer primitive type.
func (p *parser) intLit(type_ Primitive) (int64, error) {
	switch p.tok.Kind {
	case T_INT_LIT, T_HEX_INT_LIT:
	default:
		return 0, errExpectedIntLit(p.tok.Kind, p.text, p.span())
	}

	var value int64
	if p.tok.Kind == T_HEX_INT_LIT {
		u, err := strconv.ParseUint(p.text[2:], 16, 64)
		if err != nil || u > math.MaxInt64 {
			return 0, errValueOutOfRange(type_, p.text, p.span())
		}
		value = int64(u)
	} else {
		v, err := strconv.ParseInt(p.text, 10, 64)
		if err != nil {
			return 0, errValueOutOfRange(type_, p.text, p.span())
		}
		value = v
	}

	if min, max := intRange(type_); value < min || value > max {
		return 0, errValueOutOfRange(type_, p.text, p.span())
	}
	return value, p.advance()
}

func parseUint(text string, kind TokenKind) (uint64, error) {
	if kind == T_HEX_INT_LIT {
		return strconv.ParseUint(text[2:], 16, 64)
	}
	return strconv.ParseUint(text, 10, 64)
}

func intRange(type_ Primitive) (int64, int64) {
	switch type_ {
	case P_INT8:
		return math.MinInt8, math.MaxInt8
	case P_INT16:
		return math.MinInt16, math.MaxInt16
	case P_INT32:
		return math.MinInt32, math.MaxInt32
	default:
		return math.MinInt64, math.MaxInt64
	}
}
