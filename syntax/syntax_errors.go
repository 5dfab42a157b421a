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

import (
	"fmt"
	"math"
	"unicode/utf8"
)

type Error struct {
	code    uint32
	message string
	span    Span
}

var _ error = (*Error)(nil)

func (err *Error) Error() string {
	return fmt.Sprintf("E%d: %s", err.code, err.message)
}

func (err *Error) Code() uint32 {
	return err.code
}

func (err *Error) Message() string {
	return err.message
}

func (err *Error) Span() Span {
	return err.span
}

func errSourceTooLong(srcLen int) error {
	lenUint32 := uint32(math.MaxUint32)
	if uint64(srcLen) < math.MaxUint32 {
		lenUint32 = uint32(srcLen)
	}
	return &Error{
		code: 1000,
		message: fmt.Sprintf(
			"Source file size (%d bytes) exceeds maximum (%d bytes)",
			srcLen, maxSrcLen,
		),
		span: Span{0, lenUint32},
	}
}

func errInvalidUtf8(src []uint8) error {
	var off uint32
	for len(src) > 0 {
		r, size := utf8.DecodeRune(src)
		if r == utf8.RuneError {
			break
		}
		off += uint32(size)
		src = src[size:]
	}
	return &Error{
		code:    1001,
		message: "Source file contains invalid UTF-8",
		span:    Span{off, 1},
	}
}

func errUnexpectedCharacter(start uint32, r rune) error {
	return &Error{
		code:    1002,
		message: fmt.Sprintf("Unexpected character '%s' (U+%04X)", string(r), r),
		span:    Span{start, uint32(utf8.RuneLen(r))},
	}
}

func errForbiddenControlCharacter(start uint32, c uint8) error {
	return &Error{
		code:    1003,
		message: fmt.Sprintf("Forbidden control character U+%04X", c),
		span:    Span{start, 1},
	}
}

func errTokenTooLong(start uint32, tokenLen int) error {
	lenUint32 := uint32(math.MaxUint32)
	if uint64(tokenLen) < math.MaxUint32 {
		lenUint32 = uint32(tokenLen)
	}
	return &Error{
		code: 1004,
		message: fmt.Sprintf(
			"Token size (%d bytes) exceeds maximum (%d bytes)",
			tokenLen, maxTokenLen,
		),
		span: Span{start, lenUint32},
	}
}

func errNumLitInvalid(start uint32, token []uint8) error {
	tokenLen := uint32(math.MaxUint32)
	if uint64(len(token)) < math.MaxUint32 {
		tokenLen = uint32(len(token))
	}
	return &Error{
		code:    1005,
		message: fmt.Sprintf("Invalid numeric literal %q", token),
		span:    Span{start, tokenLen},
	}
}

func errTextLitUnterminated(start, tokenLen uint32) error {
	return &Error{
		code:    1006,
		message: "Unterminated text literal",
		span:    Span{start, tokenLen},
	}
}

func errTextLitContainsNewline(start, newlineLen uint32) error {
	return &Error{
		code:    1007,
		message: "Text literal contains unescaped newline",
		span:    Span{start, newlineLen},
	}
}

func errCommentUnterminated(start, tokenLen uint32) error {
	return &Error{
		code:    1008,
		message: "Unterminated block comment",
		span:    Span{start, tokenLen},
	}
}

func errExpectedSigil(want uint8, gotKind TokenKind, gotToken string, span Span) error {
	return &Error{
		code:    2000,
		message: fmt.Sprintf("Expected sigil '%c', got (%s %q)", want, gotKind, gotToken),
		span:    span,
	}
}

func errExpectedIdent(gotKind TokenKind, gotToken string, span Span) error {
	return &Error{
		code:    2001,
		message: fmt.Sprintf("Expected identifier, got (%s %q)", gotKind, gotToken),
		span:    span,
	}
}

func errExpectedDeclaration(gotKind TokenKind, gotToken string, span Span) error {
	return &Error{
		code:    2002,
		message: fmt.Sprintf("Expected 'struct', 'enum', or 'const' declaration, got (%s %q)", gotKind, gotToken),
		span:    span,
	}
}

func errDuplicatePackageDecl(span Span) error {
	return &Error{
		code:    2003,
		message: "Duplicate package declaration",
		span:    span,
	}
}

func errExpectedTypeName(gotKind TokenKind, gotToken string, span Span) error {
	return &Error{
		code:    2004,
		message: fmt.Sprintf("Expected type name, got (%s %q)", gotKind, gotToken),
		span:    span,
	}
}

func errExpectedDimension(gotKind TokenKind, gotToken string, span Span) error {
	return &Error{
		code:    2005,
		message: fmt.Sprintf("Expected array dimension (integer literal or member name), got (%s %q)", gotKind, gotToken),
		span:    span,
	}
}

func errDimensionNegative(token string, span Span) error {
	return &Error{
		code:    2006,
		message: fmt.Sprintf("Array dimension %s must not be negative", token),
		span:    span,
	}
}

func errExpectedConstValue(gotKind TokenKind, gotToken string, span Span) error {
	return &Error{
		code:    2007,
		message: fmt.Sprintf("Expected constant value, got (%s %q)", gotKind, gotToken),
		span:    span,
	}
}

func errConstTypeInvalid(gotToken string, span Span) error {
	return &Error{
		code:    2008,
		message: fmt.Sprintf("Constants must have a numeric primitive type, got %q", gotToken),
		span:    span,
	}
}

func errValueOutOfRange(type_ Primitive, token string, span Span) error {
	return &Error{
		code:    2009,
		message: fmt.Sprintf("Value %s out of range for type %s", token, type_),
		span:    span,
	}
}

func errDuplicateMemberName(name string, span Span) error {
	return &Error{
		code:    2010,
		message: fmt.Sprintf("Duplicate member name %q", name),
		span:    span,
	}
}

func errDuplicateConstName(name string, span Span) error {
	return &Error{
		code:    2011,
		message: fmt.Sprintf("Duplicate constant name %q", name),
		span:    span,
	}
}

func errDuplicateEnumLabel(name string, span Span) error {
	return &Error{
		code:    2012,
		message: fmt.Sprintf("Duplicate enum label %q", name),
		span:    span,
	}
}

func errDuplicateEnumValue(value int64, name string, span Span) error {
	return &Error{
		code:    2013,
		message: fmt.Sprintf("Enum label %q repeats value %d", name, value),
		span:    span,
	}
}

func errEnumWidthInvalid(gotToken string, span Span) error {
	return &Error{
		code:    2014,
		message: fmt.Sprintf("Enum width must be an integer primitive type, got %q", gotToken),
		span:    span,
	}
}

func errExpectedIntLit(gotKind TokenKind, gotToken string, span Span) error {
	return &Error{
		code:    2015,
		message: fmt.Sprintf("Expected integer literal, got (%s %q)", gotKind, gotToken),
		span:    span,
	}
}

func errExpectedEnumLabel(gotKind TokenKind, gotToken string, span Span) error {
	return &Error{
		code:    2016,
		message: fmt.Sprintf("Expected enum label, got (%s %q)", gotKind, gotToken),
		span:    span,
	}
}

func errExpectedPackageName(gotKind TokenKind, gotToken string, span Span) error {
	return &Error{
		code:    2017,
		message: fmt.Sprintf("Expected package name, got (%s %q)", gotKind, gotToken),
		span:    span,
	}
}

func errKeywordAsName(keyword string, span Span) error {
	return &Error{
		code:    2018,
		message: fmt.Sprintf("Keyword %q may not be used as a name", keyword),
		span:    span,
	}
}
