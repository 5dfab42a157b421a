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

package lcm

import (
	"fmt"
)

// FingerprintMismatchError reports a top-level message whose leading 8 bytes
// do not match the decoding type's fingerprint: the sender and receiver were
// generated from structurally different schemas.
type FingerprintMismatchError struct {
	Want uint64
	Got  uint64
}

func (err *FingerprintMismatchError) Error() string {
	return fmt.Sprintf("lcm: fingerprint mismatch: want 0x%016X, got 0x%016X", err.Want, err.Got)
}

// InvalidEnumValueError reports a decoded enum value that matches none of
// the enum's labels.
type InvalidEnumValueError struct {
	Enum  string
	Value int64
}

func (err *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("lcm: invalid value %d for enum %s", err.Value, err.Enum)
}

// ArrayLenError reports a dynamic array length that is negative or exceeds
// MaxArrayLen.
type ArrayLenError struct {
	Field string
	Len   int64
}

func (err *ArrayLenError) Error() string {
	return fmt.Sprintf("lcm: array length %d of %q out of range [0, %d]", err.Len, err.Field, MaxArrayLen)
}

// ArrayLenMismatchError reports an encode of a dynamic array whose length
// disagrees with the member that carries it on the wire.
type ArrayLenMismatchError struct {
	Field string
	Len   int64
	Size  int64
}

func (err *ArrayLenMismatchError) Error() string {
	return fmt.Sprintf("lcm: array %q has %d elements but its length member holds %d", err.Field, err.Len, err.Size)
}

// StringLenError reports a string whose encoded byte length does not fit in
// the wire format's signed 32-bit length field.
type StringLenError struct {
	Len int64
}

func (err *StringLenError) Error() string {
	return fmt.Sprintf("lcm: string length %d out of range [0, %d]", err.Len, int64(MaxStringLen))
}
