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
	"fmt"

	"go.lcm-lang.org/lcmgen/compiler"
	"go.lcm-lang.org/lcmgen/syntax"
)

func (fg *fileGen) genStruct(decl *compiler.StructType) {
	fg.addImport("io")
	fg.addImport(fg.cfg.runtimeImport)
	name := goTypeName(decl.Name())

	if consts := decl.Consts(); len(consts) > 0 {
		fg.line("const (")
		fg.push()
		for _, c := range consts {
			switch c.Type() {
			case syntax.P_FLOAT:
				fg.line("%s%s float32 = %s", name, goFieldName(c.Name()), c.Raw())
			case syntax.P_DOUBLE:
				fg.line("%s%s float64 = %s", name, goFieldName(c.Name()), c.Raw())
			default:
				fg.line("%s%s %s = %d", name, goFieldName(c.Name()),
					primitiveGoType(c.Type()), c.IntValue())
			}
		}
		fg.pop()
		fg.line(")")
		fg.line("")
	}

	fg.line("// %sFingerprint identifies the structure of %s on the wire.", name, decl.QualifiedName())
	fg.line("const %sFingerprint uint64 = 0x%016X", name, decl.Fingerprint())
	fg.line("")

	fg.line("// %s is the message type %s.", name, decl.QualifiedName())
	fg.line("type %s struct {", name)
	fg.push()
	for _, member := range decl.Members() {
		fg.line("%s %s", goFieldName(member.Name()), fg.memberType(member, 0))
	}
	fg.pop()
	fg.line("}")
	fg.line("")

	fg.line("// Encode writes the message, prefixed by its fingerprint.")
	fg.line("func (m *%s) Encode(w io.Writer) error {", name)
	fg.push()
	fg.line("var enc lcm.Encoder")
	fg.line("enc.PutFingerprint(%sFingerprint)", name)
	fg.line("if err := m.EncodeBody(&enc); err != nil {")
	fg.push()
	fg.line("return err")
	fg.pop()
	fg.line("}")
	fg.line("_, err := enc.WriteTo(w)")
	fg.line("return err")
	fg.pop()
	fg.line("}")
	fg.line("")

	fg.line("// EncodeBody writes the message body with no fingerprint prefix, as")
	fg.line("// when nested inside another message.")
	fg.line("func (m *%s) EncodeBody(enc *lcm.Encoder) error {", name)
	fg.push()
	for _, member := range decl.Members() {
		fg.encodeMember(decl, member)
	}
	fg.line("return nil")
	fg.pop()
	fg.line("}")
	fg.line("")

	fg.line("// Decode reads a message, rejecting it unless its fingerprint matches.")
	fg.line("func (m *%s) Decode(r io.Reader) error {", name)
	fg.push()
	fg.line("buf, err := io.ReadAll(r)")
	fg.line("if err != nil {")
	fg.push()
	fg.line("return err")
	fg.pop()
	fg.line("}")
	fg.line("dec := lcm.NewDecoder(buf)")
	fg.line("if err := dec.CheckFingerprint(%sFingerprint); err != nil {", name)
	fg.push()
	fg.line("return err")
	fg.pop()
	fg.line("}")
	fg.line("return m.DecodeBody(dec)")
	fg.pop()
	fg.line("}")
	fg.line("")

	fg.line("// DecodeBody reads the message body with no fingerprint prefix.")
	fg.line("func (m *%s) DecodeBody(dec *lcm.Decoder) error {", name)
	fg.push()
	for _, member := range decl.Members() {
		fg.decodeMember(member)
	}
	fg.line("return nil")
	fg.pop()
	fg.line("}")
}

func (fg *fileGen) encodeMember(decl *compiler.StructType, member *compiler.Member) {
	fg.encodeDims("m."+goFieldName(member.Name()), decl, member, 0)
}

func (fg *fileGen) encodeDims(expr string, decl *compiler.StructType, member *compiler.Member, depth int) {
	dims := member.Dims()
	if depth == len(dims) {
		fg.encodeValue(expr, member.Type())
		return
	}

	dim := dims[depth]
	if !dim.IsFixed() {
		lenMember := decl.Members()[dim.LenMember()]
		fg.line("if err := lcm.CheckArrayLen(%q, int64(len(%s)), int64(m.%s)); err != nil {",
			member.Name(), expr, goFieldName(lenMember.Name()))
		fg.push()
		fg.line("return err")
		fg.pop()
		fg.line("}")
	}
	idx := fmt.Sprintf("i%d", depth)
	fg.line("for %s := range %s {", idx, expr)
	fg.push()
	fg.encodeDims(fmt.Sprintf("%s[%s]", expr, idx), decl, member, depth+1)
	fg.pop()
	fg.line("}")
}

func (fg *fileGen) encodeValue(expr string, fieldType compiler.FieldType) {
	if !fieldType.IsPrimitive() {
		fg.line("if err := %s.EncodeBody(enc); err != nil {", expr)
		fg.push()
		fg.line("return err")
		fg.pop()
		fg.line("}")
		return
	}
	if fieldType.Primitive() == syntax.P_STRING {
		fg.line("if err := enc.PutString(%s); err != nil {", expr)
		fg.push()
		fg.line("return err")
		fg.pop()
		fg.line("}")
		return
	}
	fg.line("enc.Put%s(%s)", primitiveMethod(fieldType.Primitive()), expr)
}

func (fg *fileGen) decodeMember(member *compiler.Member) {
	fg.decodeDims("m."+goFieldName(member.Name()), member, 0)
}

func (fg *fileGen) decodeDims(expr string, member *compiler.Member, depth int) {
	dims := member.Dims()
	if depth == len(dims) {
		fg.decodeValue(expr, member.Type())
		return
	}

	dim := dims[depth]
	idx := fmt.Sprintf("i%d", depth)
	if dim.IsFixed() {
		fg.line("for %s := range %s {", idx, expr)
		fg.push()
		fg.decodeDims(fmt.Sprintf("%s[%s]", expr, idx), member, depth+1)
		fg.pop()
		fg.line("}")
		return
	}

	lenVar := fmt.Sprintf("n%d", depth)
	fg.line("{")
	fg.push()
	fg.line("%s, err := lcm.ArrayLen(%q, int64(m.%s))",
		lenVar, member.Name(), goFieldName(dim.LenName()))
	fg.line("if err != nil {")
	fg.push()
	fg.line("return err")
	fg.pop()
	fg.line("}")
	fg.line("%s = make(%s, %s)", expr, fg.memberType(member, depth), lenVar)
	fg.line("for %s := range %s {", idx, expr)
	fg.push()
	fg.decodeDims(fmt.Sprintf("%s[%s]", expr, idx), member, depth+1)
	fg.pop()
	fg.line("}")
	fg.pop()
	fg.line("}")
}

func (fg *fileGen) decodeValue(expr string, fieldType compiler.FieldType) {
	if !fieldType.IsPrimitive() {
		fg.line("if err := %s.DecodeBody(dec); err != nil {", expr)
		fg.push()
		fg.line("return err")
		fg.pop()
		fg.line("}")
		return
	}
	fg.line("{")
	fg.push()
	fg.line("v, err := dec.%s()", primitiveMethod(fieldType.Primitive()))
	fg.line("if err != nil {")
	fg.push()
	fg.line("return err")
	fg.pop()
	fg.line("}")
	fg.line("%s = v", expr)
	fg.pop()
	fg.line("}")
}
