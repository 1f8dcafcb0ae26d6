package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/opengex/openddl"
)

type EncState struct {
	depth, indent int

	Color func(ColorAttr, string) string
}

// Encode writes d as OpenDDL text. The output parses back to an equivalent
// document; comments from the original source are not preserved because the
// document store never sees them.
func Encode(d *openddl.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 4}
	for _, opt := range opts {
		opt(es)
	}
	first := true
	for s := range d.Children() {
		if !first {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
		first = false
		if err := encodeStructure(s, w, es); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

func (es *EncState) pad() string {
	return strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func encodeStructure(s openddl.Structure, w io.Writer, es *EncState) error {
	if s.IsCustom() {
		return encodeCustom(s, w, es)
	}
	return encodePrimitive(s, w, es)
}

func encodeCustom(s openddl.Structure, w io.Writer, es *EncState) error {
	var b strings.Builder
	b.WriteString(es.pad())
	b.WriteString(es.color(IdentifierColor, s.IdentifierName()))
	if s.HasName() {
		b.WriteString(" ")
		b.WriteString(es.color(NameColor, s.Name()))
	}
	if s.HasProperties() {
		b.WriteString(" ")
		b.WriteString(es.color(SepColor, "("))
		first := true
		for p := range s.Properties() {
			if !first {
				b.WriteString(es.color(SepColor, ",") + " ")
			}
			first = false
			b.WriteString(es.color(PropertyColor, p.IdentifierName()))
			b.WriteString(" " + es.color(SepColor, "=") + " ")
			b.WriteString(propertyLiteral(p, es))
		}
		b.WriteString(es.color(SepColor, ")"))
	}
	if !s.HasChildren() {
		b.WriteString(" " + es.color(SepColor, "{}") + "\n")
		return writeString(w, b.String())
	}
	b.WriteString(" " + es.color(SepColor, "{") + "\n")
	if err := writeString(w, b.String()); err != nil {
		return err
	}
	es.depth++
	for c := range s.Children() {
		if err := encodeStructure(c, w, es); err != nil {
			return err
		}
	}
	es.depth--
	return writeString(w, es.pad()+es.color(SepColor, "}")+"\n")
}

func encodePrimitive(s openddl.Structure, w io.Writer, es *EncState) error {
	var b strings.Builder
	b.WriteString(es.pad())
	b.WriteString(es.color(KeywordColor, s.Type().Keyword()))
	if n := s.SubArraySize(); n > 0 {
		b.WriteString(es.color(SepColor, "[") +
			es.color(NumberColor, strconv.Itoa(n)) +
			es.color(SepColor, "]"))
	}
	if s.HasName() {
		b.WriteString(" " + es.color(NameColor, s.Name()))
	}
	values := primitiveLiterals(s, es)
	if len(values) == 0 {
		b.WriteString(" " + es.color(SepColor, "{}") + "\n")
		return writeString(w, b.String())
	}
	b.WriteString(" " + es.color(SepColor, "{") + " ")
	sep := es.color(SepColor, ",") + " "
	if n := s.SubArraySize(); n > 0 {
		for i := 0; i < len(values); i += n {
			if i > 0 {
				b.WriteString(sep)
			}
			b.WriteString(es.color(SepColor, "{"))
			b.WriteString(strings.Join(values[i:i+n], sep))
			b.WriteString(es.color(SepColor, "}"))
		}
	} else {
		b.WriteString(strings.Join(values, sep))
	}
	b.WriteString(" " + es.color(SepColor, "}") + "\n")
	return writeString(w, b.String())
}

func primitiveLiterals(s openddl.Structure, es *EncState) []string {
	out := make([]string, 0, s.ArraySize())
	switch s.Type() {
	case openddl.Bool:
		for _, v := range openddl.AsArray[bool](s) {
			out = append(out, es.color(BoolColor, strconv.FormatBool(v)))
		}
	case openddl.UnsignedByte:
		for _, v := range openddl.AsArray[uint8](s) {
			out = append(out, es.color(NumberColor, strconv.FormatUint(uint64(v), 10)))
		}
	case openddl.Byte:
		for _, v := range openddl.AsArray[int8](s) {
			out = append(out, es.color(NumberColor, strconv.FormatInt(int64(v), 10)))
		}
	case openddl.UnsignedShort:
		for _, v := range openddl.AsArray[uint16](s) {
			out = append(out, es.color(NumberColor, strconv.FormatUint(uint64(v), 10)))
		}
	case openddl.Short:
		for _, v := range openddl.AsArray[int16](s) {
			out = append(out, es.color(NumberColor, strconv.FormatInt(int64(v), 10)))
		}
	case openddl.UnsignedInt:
		for _, v := range openddl.AsArray[uint32](s) {
			out = append(out, es.color(NumberColor, strconv.FormatUint(uint64(v), 10)))
		}
	case openddl.Int:
		for _, v := range openddl.AsArray[int32](s) {
			out = append(out, es.color(NumberColor, strconv.FormatInt(int64(v), 10)))
		}
	case openddl.UnsignedLong:
		for _, v := range openddl.AsArray[uint64](s) {
			out = append(out, es.color(NumberColor, strconv.FormatUint(v, 10)))
		}
	case openddl.Long:
		for _, v := range openddl.AsArray[int64](s) {
			out = append(out, es.color(NumberColor, strconv.FormatInt(v, 10)))
		}
	case openddl.Half, openddl.Float:
		for _, v := range openddl.AsArray[float32](s) {
			out = append(out, es.color(NumberColor, formatFloat(float64(v), 32)))
		}
	case openddl.Double:
		for _, v := range openddl.AsArray[float64](s) {
			out = append(out, es.color(NumberColor, formatFloat(v, 64)))
		}
	case openddl.String:
		for _, v := range openddl.AsArray[string](s) {
			out = append(out, es.color(StringColor, Quote(v)))
		}
	case openddl.Reference:
		for _, v := range s.ReferenceNames() {
			if v == "" {
				v = "null"
			}
			out = append(out, es.color(ReferenceColor, v))
		}
	}
	return out
}

func propertyLiteral(p openddl.Property, es *EncState) string {
	switch p.Kind() {
	case openddl.BoolKind:
		return es.color(BoolColor, strconv.FormatBool(p.AsBool()))
	case openddl.IntegralKind:
		return es.color(NumberColor, strconv.FormatInt(p.AsInt(), 10))
	case openddl.FloatingKind:
		return es.color(NumberColor, formatFloat(p.AsFloat(), 64))
	case openddl.StringKind:
		return es.color(StringColor, Quote(p.AsString()))
	case openddl.ReferenceKind:
		v := p.AsString()
		if v == "" {
			v = "null"
		}
		return es.color(ReferenceColor, v)
	}
	panic(fmt.Sprintf("encode: property of kind %s", p.Kind()))
}

func formatFloat(v float64, bits int) string {
	return strconv.FormatFloat(v, 'g', -1, bits)
}

// Quote renders s as an OpenDDL string literal: double-quoted, with the
// grammar's escapes for quotes, backslashes and control bytes.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			b.WriteString(`\"`)
		case c == '\\':
			b.WriteString(`\\`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '\r':
			b.WriteString(`\r`)
		case c < 0x20 || c == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
