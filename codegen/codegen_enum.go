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
	"strings"

	"go.lcm-lang.org/lcmgen/compiler"
)

func (fg *fileGen) genEnum(decl *compiler.EnumType) {
	fg.addImport("fmt")
	fg.addImport("io")
	fg.addImport(fg.cfg.runtimeImport)
	name := goTypeName(decl.Name())
	width := primitiveGoType(decl.Width())
	widthMethod := primitiveMethod(decl.Width())

	fg.line("// %s is the enum type %s.", name, decl.QualifiedName())
	fg.line("type %s %s", name, width)
	fg.line("")

	items := decl.Items()
	if len(items) > 0 {
		fg.line("const (")
		fg.push()
		for _, item := range items {
			fg.line("%s%s %s = %d", name, goFieldName(item.Name), name, item.Value)
		}
		fg.pop()
		fg.line(")")
		fg.line("")
	}

	fg.line("// %sFingerprint identifies %s on the wire.", name, decl.QualifiedName())
	fg.line("const %sFingerprint uint64 = 0x%016X", name, decl.Fingerprint())
	fg.line("")

	fg.line("// Valid reports whether the value matches one of the enum's labels.")
	fg.line("func (v %s) Valid() bool {", name)
	fg.push()
	if len(items) > 0 {
		var labels []string
		for _, item := range items {
			labels = append(labels, name+goFieldName(item.Name))
		}
		fg.line("switch v {")
		fg.line("case %s:", strings.Join(labels, ", "))
		fg.push()
		fg.line("return true")
		fg.pop()
		fg.line("}")
		fg.line("return false")
	} else {
		fg.line("return false")
	}
	fg.pop()
	fg.line("}")
	fg.line("")

	fg.line("func (v %s) String() string {", name)
	fg.push()
	if len(items) > 0 {
		fg.line("switch v {")
		for _, item := range items {
			fg.line("case %s%s:", name, goFieldName(item.Name))
			fg.push()
			fg.line("return %q", item.Name)
			fg.pop()
		}
		fg.line("}")
	}
	fg.line("return fmt.Sprintf(\"%s(%%d)\", %s(v))", name, width)
	fg.pop()
	fg.line("}")
	fg.line("")

	fg.line("// Encode writes the value, prefixed by the enum's fingerprint.")
	fg.line("func (v %s) Encode(w io.Writer) error {", name)
	fg.push()
	fg.line("var enc lcm.Encoder")
	fg.line("enc.PutFingerprint(%sFingerprint)", name)
	fg.line("if err := v.EncodeBody(&enc); err != nil {")
	fg.push()
	fg.line("return err")
	fg.pop()
	fg.line("}")
	fg.line("_, err := enc.WriteTo(w)")
	fg.line("return err")
	fg.pop()
	fg.line("}")
	fg.line("")

	fg.line("// EncodeBody writes the bare value, as when nested inside a message.")
	fg.line("func (v %s) EncodeBody(enc *lcm.Encoder) error {", name)
	fg.push()
	fg.line("if !v.Valid() {")
	fg.push()
	fg.line("return &lcm.InvalidEnumValueError{Enum: %q, Value: int64(v)}", decl.QualifiedName())
	fg.pop()
	fg.line("}")
	fg.line("enc.Put%s(%s(v))", widthMethod, width)
	fg.line("return nil")
	fg.pop()
	fg.line("}")
	fg.line("")

	fg.line("// Decode reads a value, rejecting it unless its fingerprint matches.")
	fg.line("func (v *%s) Decode(r io.Reader) error {", name)
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
	fg.line("return v.DecodeBody(dec)")
	fg.pop()
	fg.line("}")
	fg.line("")

	fg.line("// DecodeBody reads a bare value and validates it against the labels.")
	fg.line("func (v *%s) DecodeBody(dec *lcm.Decoder) error {", name)
	fg.push()
	fg.line("raw, err := dec.%s()", widthMethod)
	fg.line("if err != nil {")
	fg.push()
	fg.line("return err")
	fg.pop()
	fg.line("}")
	fg.line("if !%s(raw).Valid() {", name)
	fg.push()
	fg.line("return &lcm.InvalidEnumValueError{Enum: %q, Value: int64(raw)}", decl.QualifiedName())
	fg.pop()
	fg.line("}")
	fg.line("*v = %s(raw)", name)
	fg.line("return nil")
	fg.pop()
	fg.line("}")
}
