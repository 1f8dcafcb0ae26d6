package openddl

// Property is a non-owning view of one key/value attribute of a custom
// structure. Property values are untyped literals in the source, so they
// are stored width-agnostically: booleans as bool, integrals as int64,
// floating-point values as float64, strings and references as strings.
type Property struct {
	d *Document
	i int32
}

func (p Property) data() *propertyData {
	return &p.d.properties[p.i]
}

// Identifier returns the resolved property identifier, or
// UnknownIdentifier.
func (p Property) Identifier() int {
	return int(p.data().identifier)
}

// Kind returns the value category the property stores.
func (p Property) Kind() PropertyKind {
	return p.data().kind
}

// IdentifierName returns the property identifier as written in the source,
// even when it did not resolve against the identifier table.
func (p Property) IdentifierName() string {
	return p.d.strings[p.data().source]
}

// IsTypeCompatibleWith reports whether the property's literal can satisfy
// a declared type. Integral literals satisfy every integer type as well as
// the floating-point ones; no other cross-kind conversions exist.
func (p Property) IsTypeCompatibleWith(t Type) bool {
	switch p.data().kind {
	case BoolKind:
		return t == Bool
	case IntegralKind:
		switch t {
		case UnsignedByte, Byte, UnsignedShort, Short,
			UnsignedInt, Int, UnsignedLong, Long,
			Half, Float, Double:
			return true
		}
		return false
	case FloatingKind:
		return t == Half || t == Float || t == Double
	case StringKind:
		return t == String
	case ReferenceKind:
		return t == Reference
	}
	return false
}

// AsBool returns a boolean property value. The property must hold a
// boolean literal.
func (p Property) AsBool() bool {
	pd := p.data()
	if pd.kind != BoolKind {
		panic("openddl: AsBool on " + pd.kind.String() + " property")
	}
	return p.d.bools[pd.value]
}

// AsInt returns an integral property value. The property must hold an
// integer or character literal.
func (p Property) AsInt() int64 {
	pd := p.data()
	if pd.kind != IntegralKind {
		panic("openddl: AsInt on " + pd.kind.String() + " property")
	}
	return p.d.i64[pd.value]
}

// AsFloat returns a floating-point property value; integral literals are
// widened. The property must hold a numeric literal.
func (p Property) AsFloat() float64 {
	pd := p.data()
	switch pd.kind {
	case FloatingKind:
		return p.d.f64[pd.value]
	case IntegralKind:
		return float64(p.d.i64[pd.value])
	}
	panic("openddl: AsFloat on " + pd.kind.String() + " property")
}

// AsString returns a string property value. For a reference property it
// returns the raw reference name including its % or $ prefix ("" for
// null). The property must hold a string or reference literal.
func (p Property) AsString() string {
	pd := p.data()
	switch pd.kind {
	case StringKind:
		return p.d.strs[pd.value]
	case ReferenceKind:
		return p.d.refs[pd.value]
	}
	panic("openddl: AsString on " + pd.kind.String() + " property")
}

// AsReference resolves a reference property against the document's name
// table; false for null or unresolvable references. The property must hold
// a reference literal.
func (p Property) AsReference() (Structure, bool) {
	pd := p.data()
	if pd.kind != ReferenceKind {
		panic("openddl: AsReference on " + pd.kind.String() + " property")
	}
	name := p.d.refs[pd.value]
	if name == "" {
		return Structure{p.d, 0}, false
	}
	i := p.d.byNameLookup(name)
	return Structure{p.d, i}, i != 0
}
