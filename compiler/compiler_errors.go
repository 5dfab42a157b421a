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
	"fmt"

	"go.lcm-lang.org/lcmgen/syntax"
)

// Error is a resolution failure. The span points into the input file
// identified by File.
type Error struct {
	code    uint32
	message string
	file    int
	span    syntax.Span
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

func (err *Error) File() int {
	return err.file
}

func (err *Error) Span() syntax.Span {
	return err.span
}

func errDuplicateDefinition(qualifiedName string, file int, span syntax.Span) error {
	return &Error{
		code:    3000,
		message: fmt.Sprintf("Duplicate definition of type %q", qualifiedName),
		file:    file,
		span:    span,
	}
}

func errUnresolvedType(name string, file int, span syntax.Span) error {
	return &Error{
		code:    3001,
		message: fmt.Sprintf("Unresolved type %q", name),
		file:    file,
		span:    span,
	}
}

func errDimRefUnresolved(name string, file int, span syntax.Span) error {
	return &Error{
		code:    3002,
		message: fmt.Sprintf("Array dimension %q does not name a constant or member of this struct", name),
		file:    file,
		span:    span,
	}
}

func errDimRefNotEarlierInteger(name string, file int, span syntax.Span) error {
	return &Error{
		code:    3003,
		message: fmt.Sprintf("Array dimension %q must name an integer constant or an earlier integer member with no array dimensions", name),
		file:    file,
		span:    span,
	}
}

func errDimConstNegative(name string, value int64, file int, span syntax.Span) error {
	return &Error{
		code:    3004,
		message: fmt.Sprintf("Array dimension constant %q has negative value %d", name, value),
		file:    file,
		span:    span,
	}
}

func errRecursiveSizeCycle(qualifiedName string, file int, span syntax.Span) error {
	return &Error{
		code:    3005,
		message: fmt.Sprintf("Struct %q contains itself without an intervening array", qualifiedName),
		file:    file,
		span:    span,
	}
}
