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

// Fingerprints are the interoperability contract of the wire format: every
// independent implementation must derive the same 8 bytes from the same
// schema, or decoders will reject each other's messages. The hash mixes in
// each member's name, its primitive type name (but not the names of struct
// or enum member types, whose own hashes are summed in instead), and the
// count, kind, and size expression of each array dimension.

const (
	structHashSeed = int64(0x12345678)
	enumHashSeed   = int64(0x87654321)
)

func hashUpdate(v int64, c int8) int64 {
	return ((v << 8) ^ (v >> 55)) + int64(c)
}

func hashString(v int64, s string) int64 {
	v = hashUpdate(v, int8(len(s)))
	for ii := 0; ii < len(s); ii++ {
		v = hashUpdate(v, int8(s[ii]))
	}
	return v
}

// finishHash rotates the summed hash left by one bit. Only top-level
// fingerprints are rotated; contributions summed into containing structs
// stay unrotated.
func finishHash(v int64) uint64 {
	return (uint64(v) << 1) + (uint64(v) >> 63)
}

// primitiveHashName is the type spelling folded into the hash. The reference
// implementations hash the integer types under their C names, so the schema
// spelling "int32" must contribute "int32_t" or every fingerprint involving
// an integer member diverges from theirs.
func primitiveHashName(p syntax.Primitive) string {
	switch p {
	case syntax.P_INT8:
		return "int8_t"
	case syntax.P_INT16:
		return "int16_t"
	case syntax.P_INT32:
		return "int32_t"
	case syntax.P_INT64:
		return "int64_t"
	}
	return p.String()
}

// baseHash is the struct's own contribution: member names, primitive type
// names, and array shape. Member struct and enum types contribute their
// hashes separately.
func (t *StructType) baseHash() int64 {
	v := structHashSeed
	for _, member := range t.members {
		v = hashString(v, member.name)
		if member.fieldType.IsPrimitive() {
			v = hashString(v, primitiveHashName(member.fieldType.primitive))
		}
		v = hashUpdate(v, int8(len(member.dims)))
		for _, dim := range member.dims {
			mode := int8(1)
			if dim.fixed {
				mode = 0
			}
			v = hashUpdate(v, mode)
			v = hashString(v, dim.hashStr)
		}
	}
	return v
}

// computeFingerprints assigns every type its hash. An enum's hash depends
// only on its local name. A struct's hash is its base hash plus the hashes
// of every member's struct or enum type; those in turn depend on their own
// member types, so struct hashes are found by iterating the whole table to
// a fixed point. A struct that contains itself (legal only through an
// array) contributes nothing to its own hash. Iteration is capped at the
// type count, which bounds the longest dependency chain.
func computeFingerprints(types []Type) {
	ordinals := make(map[Type]int, len(types))
	for ii, t := range types {
		ordinals[t] = ii
	}

	base := make([]int64, len(types))
	cur := make([]int64, len(types))
	for ii, t := range types {
		switch t := t.(type) {
		case *StructType:
			base[ii] = t.baseHash()
		case *EnumType:
			base[ii] = hashString(enumHashSeed, t.name)
		}
		cur[ii] = base[ii]
	}

	next := make([]int64, len(types))
	for iter := 0; iter < len(types); iter++ {
		changed := false
		for ii, t := range types {
			st, ok := t.(*StructType)
			if !ok {
				next[ii] = base[ii]
				continue
			}
			v := base[ii]
			for _, member := range st.members {
				ref := member.fieldType.ref
				if ref == nil || ref == Type(st) {
					continue
				}
				v += cur[ordinals[ref]]
			}
			if v != cur[ii] {
				changed = true
			}
			next[ii] = v
		}
		cur, next = next, cur
		if !changed {
			break
		}
	}

	for ii, t := range types {
		switch t := t.(type) {
		case *StructType:
			t.hashRecursive = cur[ii]
			t.fingerprint = finishHash(cur[ii])
		case *EnumType:
			t.hashRecursive = cur[ii]
			t.fingerprint = finishHash(cur[ii])
		}
	}
}
