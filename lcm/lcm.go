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

// Package lcm is the runtime for generated message types: cursors for
// encoding and decoding the big-endian wire format, and the error types
// decoders report.
//
// Every multi-byte value on the wire is big-endian. A top-level message is
// the type's 8-byte fingerprint followed by the encoded body; nested structs
// encode body-only. Strings are a 4-byte byte length followed by UTF-8 with
// no terminator. Array elements are encoded back to back with no per-array
// header: a fixed dimension's length is part of the schema, and a dynamic
// dimension's length is carried by an earlier integer member.
package lcm

import (
	"encoding/binary"
	"io"
	"math"
)

// MaxArrayLen bounds decoded dynamic array lengths, so a corrupt or hostile
// length prefix cannot trigger an enormous allocation.
const MaxArrayLen = 1 << 28

// MaxStringLen bounds encoded and decoded string byte lengths; the wire
// length field is a signed 32-bit count.
const MaxStringLen = math.MaxInt32

// Encoder appends the wire encoding of a message to an in-memory buffer.
// The zero value is ready to use.
type Encoder struct {
	buf []byte
}

// Bytes returns the encoded message. The slice is only valid until the next
// Put or Reset.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// WriteTo writes the encoded message and resets the encoder.
func (e *Encoder) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(e.buf)
	e.Reset()
	return int64(n), err
}

func (e *Encoder) PutFingerprint(fingerprint uint64) {
	e.buf = binary.BigEndian.AppendUint64(e.buf, fingerprint)
}

func (e *Encoder) PutInt8(v int8) {
	e.buf = append(e.buf, uint8(v))
}

func (e *Encoder) PutInt16(v int16) {
	e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(v))
}

func (e *Encoder) PutInt32(v int32) {
	e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(v))
}

func (e *Encoder) PutInt64(v int64) {
	e.buf = binary.BigEndian.AppendUint64(e.buf, uint64(v))
}

func (e *Encoder) PutFloat(v float32) {
	e.buf = binary.BigEndian.AppendUint32(e.buf, math.Float32bits(v))
}

func (e *Encoder) PutDouble(v float64) {
	e.buf = binary.BigEndian.AppendUint64(e.buf, math.Float64bits(v))
}

func (e *Encoder) PutBoolean(v bool) {
	if v {
		e.buf = append(e.buf, 1)
	} else {
		e.buf = append(e.buf, 0)
	}
}

func (e *Encoder) PutByte(v uint8) {
	e.buf = append(e.buf, v)
}

func (e *Encoder) PutString(s string) error {
	if len(s) > MaxStringLen {
		return &StringLenError{Len: int64(len(s))}
	}
	e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(len(s)))
	e.buf = append(e.buf, s...)
	return nil
}

// Decoder reads the wire encoding of a message from an in-memory buffer.
// Reads past the end of the buffer return io.ErrUnexpectedEOF.
type Decoder struct {
	buf []byte
}

func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf)
}

func (d *Decoder) take(n int) ([]byte, error) {
	if len(d.buf) < n {
		return nil, io.ErrUnexpectedEOF
	}
	taken := d.buf[:n]
	d.buf = d.buf[n:]
	return taken, nil
}

func (d *Decoder) Fingerprint() (uint64, error) {
	buf, err := d.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf), nil
}

// CheckFingerprint reads the 8-byte fingerprint and rejects the message if
// it is not the expected value.
func (d *Decoder) CheckFingerprint(want uint64) error {
	got, err := d.Fingerprint()
	if err != nil {
		return err
	}
	if got != want {
		return &FingerprintMismatchError{
			Want: want,
			Got:  got,
		}
	}
	return nil
}

func (d *Decoder) Int8() (int8, error) {
	buf, err := d.take(1)
	if err != nil {
		return 0, err
	}
	return int8(buf[0]), nil
}

func (d *Decoder) Int16() (int16, error) {
	buf, err := d.take(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(buf)), nil
}

func (d *Decoder) Int32() (int32, error) {
	buf, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(buf)), nil
}

func (d *Decoder) Int64() (int64, error) {
	buf, err := d.take(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(buf)), nil
}

func (d *Decoder) Float() (float32, error) {
	buf, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(buf)), nil
}

func (d *Decoder) Double() (float64, error) {
	buf, err := d.take(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(buf)), nil
}

func (d *Decoder) Boolean() (bool, error) {
	buf, err := d.take(1)
	if err != nil {
		return false, err
	}
	return buf[0] != 0, nil
}

func (d *Decoder) Byte() (uint8, error) {
	buf, err := d.take(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (d *Decoder) String() (string, error) {
	lenBuf, err := d.take(4)
	if err != nil {
		return "", err
	}
	strLen := int32(binary.BigEndian.Uint32(lenBuf))
	if strLen < 0 {
		return "", &StringLenError{Len: int64(strLen)}
	}
	buf, err := d.take(int(strLen))
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// ArrayLen validates a dynamic array length read from a length member.
func ArrayLen(field string, n int64) (int, error) {
	if n < 0 || n > MaxArrayLen {
		return 0, &ArrayLenError{
			Field: field,
			Len:   n,
		}
	}
	return int(n), nil
}

// CheckArrayLen validates at encode time that a dynamic array's length
// matches the value of the member that carries it on the wire.
func CheckArrayLen(field string, arrayLen, size int64) error {
	if arrayLen != size {
		return &ArrayLenMismatchError{
			Field: field,
			Len:   arrayLen,
			Size:  size,
		}
	}
	return nil
}
