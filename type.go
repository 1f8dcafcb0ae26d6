package openddl

import "fmt"

// Type tags the value type of a structure or property. Custom sorts above
// all primitive tags; every custom structure reports Type Custom regardless
// of its identifier.
type Type int

const (
	Bool Type = iota
	UnsignedByte
	Byte
	UnsignedShort
	Short
	UnsignedInt
	Int
	UnsignedLong
	Long
	Half
	Float
	Double
	String
	Reference
	Custom
)

func (t Type) String() string {
	s, ok := map[Type]string{
		Bool:          "Bool",
		UnsignedByte:  "UnsignedByte",
		Byte:          "Byte",
		UnsignedShort: "UnsignedShort",
		Short:         "Short",
		UnsignedInt:   "UnsignedInt",
		Int:           "Int",
		UnsignedLong:  "UnsignedLong",
		Long:          "Long",
		Half:          "Half",
		Float:         "Float",
		Double:        "Double",
		String:        "String",
		Reference:     "Reference",
		Custom:        "Custom",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for _, c := range Types() {
		if c.String() == string(d) {
			*t = c
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

// Types returns all type tags, primitives first.
func Types() []Type {
	return []Type{
		Bool,
		UnsignedByte,
		Byte,
		UnsignedShort,
		Short,
		UnsignedInt,
		Int,
		UnsignedLong,
		Long,
		Half,
		Float,
		Double,
		String,
		Reference,
		Custom,
	}
}

// Keyword returns the OpenDDL source keyword for a primitive type tag and
// "" for Custom.
func (t Type) Keyword() string {
	for kw, kt := range typeKeywords {
		if kt == t {
			return kw
		}
	}
	return ""
}

var typeKeywords = map[string]Type{
	"bool":           Bool,
	"int8":           Byte,
	"int16":          Short,
	"int32":          Int,
	"int64":          Long,
	"unsigned_int8":  UnsignedByte,
	"unsigned_int16": UnsignedShort,
	"unsigned_int32": UnsignedInt,
	"unsigned_int64": UnsignedLong,
	"half":           Half,
	"float":          Float,
	"double":         Double,
	"string":         String,
	"ref":            Reference,
}

// UnknownIdentifier is reported by Structure.Identifier and
// Property.Identifier when the source name was not present in the caller's
// identifier table. Unknown structures and properties parse fine and are
// skipped, not rejected, by validation.
const UnknownIdentifier = -1

// PropertyKind is the width-agnostic type of a parsed property value.
// Property literals carry no declared type, so the parser classifies them
// by shape alone; the compatibility rules in
// Property.IsTypeCompatibleWith bridge the gap to declared schema types.
type PropertyKind int

const (
	BoolKind PropertyKind = iota
	IntegralKind
	FloatingKind
	StringKind
	ReferenceKind
)

func (k PropertyKind) String() string {
	switch k {
	case BoolKind:
		return "bool"
	case IntegralKind:
		return "integral"
	case FloatingKind:
		return "floating"
	case StringKind:
		return "string"
	case ReferenceKind:
		return "reference"
	}
	return "<unknown kind>"
}
