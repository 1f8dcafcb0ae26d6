package encode

import (
	"github.com/opengex/openddl"
)

// Any converts a document to plain maps and slices so it can be handed to
// encoding/json or goccy/go-yaml. The top level is a slice of structures;
// a custom structure becomes
//
//	{"structure": ..., "name": ..., "properties": {...}, "children": [...]}
//
// with name and properties omitted when absent, and a primitive structure
// becomes
//
//	{"type": ..., "name": ..., "subArraySize": ..., "values": [...]}
//
// with name omitted when unnamed and subArraySize omitted for flat arrays.
func Any(d *openddl.Document) any {
	out := []any{}
	for s := range d.Children() {
		out = append(out, structureAny(s))
	}
	return out
}

func structureAny(s openddl.Structure) any {
	if !s.IsCustom() {
		return primitiveAny(s)
	}
	m := map[string]any{"structure": s.IdentifierName()}
	if s.HasName() {
		m["name"] = s.Name()
	}
	if s.HasProperties() {
		props := map[string]any{}
		for p := range s.Properties() {
			props[p.IdentifierName()] = propertyAny(p)
		}
		m["properties"] = props
	}
	children := []any{}
	for c := range s.Children() {
		children = append(children, structureAny(c))
	}
	m["children"] = children
	return m
}

func primitiveAny(s openddl.Structure) any {
	m := map[string]any{"type": s.Type().Keyword()}
	if s.HasName() {
		m["name"] = s.Name()
	}
	if n := s.SubArraySize(); n > 0 {
		m["subArraySize"] = n
	}
	m["values"] = primitiveValues(s)
	return m
}

func primitiveValues(s openddl.Structure) []any {
	out := make([]any, 0, s.ArraySize())
	switch s.Type() {
	case openddl.Bool:
		for _, v := range openddl.AsArray[bool](s) {
			out = append(out, v)
		}
	case openddl.UnsignedByte:
		for _, v := range openddl.AsArray[uint8](s) {
			out = append(out, v)
		}
	case openddl.Byte:
		for _, v := range openddl.AsArray[int8](s) {
			out = append(out, v)
		}
	case openddl.UnsignedShort:
		for _, v := range openddl.AsArray[uint16](s) {
			out = append(out, v)
		}
	case openddl.Short:
		for _, v := range openddl.AsArray[int16](s) {
			out = append(out, v)
		}
	case openddl.UnsignedInt:
		for _, v := range openddl.AsArray[uint32](s) {
			out = append(out, v)
		}
	case openddl.Int:
		for _, v := range openddl.AsArray[int32](s) {
			out = append(out, v)
		}
	case openddl.UnsignedLong:
		for _, v := range openddl.AsArray[uint64](s) {
			out = append(out, v)
		}
	case openddl.Long:
		for _, v := range openddl.AsArray[int64](s) {
			out = append(out, v)
		}
	case openddl.Half, openddl.Float:
		for _, v := range openddl.AsArray[float32](s) {
			out = append(out, v)
		}
	case openddl.Double:
		for _, v := range openddl.AsArray[float64](s) {
			out = append(out, v)
		}
	case openddl.String:
		for _, v := range openddl.AsArray[string](s) {
			out = append(out, v)
		}
	case openddl.Reference:
		for _, v := range s.ReferenceNames() {
			if v == "" {
				out = append(out, nil)
			} else {
				out = append(out, v)
			}
		}
	}
	return out
}

func propertyAny(p openddl.Property) any {
	switch p.Kind() {
	case openddl.BoolKind:
		return p.AsBool()
	case openddl.IntegralKind:
		return p.AsInt()
	case openddl.FloatingKind:
		return p.AsFloat()
	case openddl.StringKind:
		return p.AsString()
	case openddl.ReferenceKind:
		if v := p.AsString(); v != "" {
			return v
		}
		return nil
	}
	return nil
}
