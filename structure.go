package openddl

import (
	"fmt"
	"iter"
)

// Structure is a non-owning view of one structure in a Document: a
// document pointer plus an arena index. Copy it freely; it is valid only
// while the Document is alive.
//
// Accessors state preconditions on the structure being custom or
// primitive. Violating one is a caller bug and panics rather than
// returning an error.
type Structure struct {
	d *Document
	i int32
}

func (s Structure) data() *structureData {
	if s.i == 0 {
		panic("openddl: null structure")
	}
	return &s.d.structures[s.i]
}

// IsNull reports whether s is the null sentinel, as produced for null
// entries of a reference array.
func (s Structure) IsNull() bool {
	return s.i == 0
}

// Document returns the owning document.
func (s Structure) Document() *Document {
	return s.d
}

// Type returns the structure's type tag; Custom for all custom structures.
func (s Structure) Type() Type {
	return s.data().typ
}

// IsCustom reports whether the structure is custom rather than primitive.
func (s Structure) IsCustom() bool {
	return s.Type() == Custom
}

// Identifier returns the resolved identifier of a custom structure, or
// UnknownIdentifier. The structure must be custom.
func (s Structure) Identifier() int {
	sd := s.data()
	if sd.typ != Custom {
		panic("openddl: Identifier on primitive structure")
	}
	return int(sd.identifier)
}

// IdentifierName returns the identifier of a custom structure as written
// in the source, even when it did not resolve against the identifier
// table. The structure must be custom.
func (s Structure) IdentifierName() string {
	sd := s.data()
	if sd.typ != Custom {
		panic("openddl: IdentifierName on primitive structure")
	}
	return s.d.strings[sd.source]
}

// HasName reports whether the structure carries a % or $ name.
func (s Structure) HasName() bool {
	return s.data().name != 0
}

// Name returns the structure name including its % or $ prefix, "" if
// unnamed.
func (s Structure) Name() string {
	return s.d.strings[s.data().name]
}

// ArraySize returns the total scalar count of a primitive structure,
// flattened across sub-arrays. The structure must be primitive.
func (s Structure) ArraySize() int {
	sd := s.data()
	if sd.typ == Custom {
		panic("openddl: ArraySize on custom structure")
	}
	return int(sd.dataCount)
}

// SubArraySize returns the fixed tuple width of a primitive structure, 0
// for a flat array. The structure must be primitive.
func (s Structure) SubArraySize() int {
	sd := s.data()
	if sd.typ == Custom {
		panic("openddl: SubArraySize on custom structure")
	}
	return int(sd.subArraySize)
}

// Value constrains the Go types usable with As and AsArray.
type Value interface {
	bool | int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | string
}

// As returns the single value of a primitive structure. The structure must
// be primitive, of the type corresponding to T, and have ArraySize 1.
func As[T Value](s Structure) T {
	if s.ArraySize() != 1 {
		panic("openddl: As on structure without exactly one value")
	}
	return AsArray[T](s)[0]
}

// AsArray returns the values of a primitive structure as a view over the
// document's backing array; the caller must not modify it. The structure
// must be primitive and of the type corresponding to T. float32 covers
// both Float and Half structures.
func AsArray[T Value](s Structure) []T {
	sd := s.data()
	if sd.typ == Custom {
		panic("openddl: AsArray on custom structure")
	}
	b, e := sd.dataBegin, sd.dataBegin+sd.dataCount
	var out any
	switch any(*new(T)).(type) {
	case bool:
		mustType(sd.typ, Bool)
		out = s.d.bools[b:e]
	case uint8:
		mustType(sd.typ, UnsignedByte)
		out = s.d.u8[b:e]
	case int8:
		mustType(sd.typ, Byte)
		out = s.d.i8[b:e]
	case uint16:
		mustType(sd.typ, UnsignedShort)
		out = s.d.u16[b:e]
	case int16:
		mustType(sd.typ, Short)
		out = s.d.i16[b:e]
	case uint32:
		mustType(sd.typ, UnsignedInt)
		out = s.d.u32[b:e]
	case int32:
		mustType(sd.typ, Int)
		out = s.d.i32[b:e]
	case uint64:
		mustType(sd.typ, UnsignedLong)
		out = s.d.u64[b:e]
	case int64:
		mustType(sd.typ, Long)
		out = s.d.i64[b:e]
	case float32:
		if sd.typ == Half {
			out = s.d.halves[b:e]
		} else {
			mustType(sd.typ, Float)
			out = s.d.f32[b:e]
		}
	case float64:
		mustType(sd.typ, Double)
		out = s.d.f64[b:e]
	case string:
		mustType(sd.typ, String)
		out = s.d.strs[b:e]
	}
	return out.([]T)
}

func mustType(got, want Type) {
	if got != want {
		panic(fmt.Sprintf("openddl: structure of type %s accessed as %s", got, want))
	}
}

// AsReference resolves the single value of a Reference structure. The
// second result is false for a null or unresolvable reference. Resolution
// happens here, not at parse time, so forward references work.
func (s Structure) AsReference() (Structure, bool) {
	sd := s.data()
	if sd.typ != Reference {
		panic("openddl: AsReference on structure of type " + sd.typ.String())
	}
	if sd.dataCount != 1 {
		panic("openddl: AsReference on structure without exactly one value")
	}
	return s.resolveRef(s.d.refs[sd.dataBegin])
}

// AsReferenceArray resolves every value of a Reference structure. Null and
// unresolvable references come back as null structures (IsNull).
func (s Structure) AsReferenceArray() []Structure {
	sd := s.data()
	if sd.typ != Reference {
		panic("openddl: AsReferenceArray on structure of type " + sd.typ.String())
	}
	out := make([]Structure, 0, sd.dataCount)
	for _, name := range s.d.refs[sd.dataBegin : sd.dataBegin+sd.dataCount] {
		r, _ := s.resolveRef(name)
		out = append(out, r)
	}
	return out
}

// ReferenceNames returns the raw reference literals of a Reference
// structure in source order, prefix included, "" for null. Unlike
// AsReferenceArray the names are not resolved.
func (s Structure) ReferenceNames() []string {
	sd := s.data()
	if sd.typ != Reference {
		panic("openddl: ReferenceNames on structure of type " + sd.typ.String())
	}
	return s.d.refs[sd.dataBegin : sd.dataBegin+sd.dataCount]
}

func (s Structure) resolveRef(name string) (Structure, bool) {
	if name == "" {
		return Structure{s.d, 0}, false
	}
	i := s.d.byNameLookup(name)
	return Structure{s.d, i}, i != 0
}

// Parent returns the enclosing structure, false for top-level structures.
func (s Structure) Parent() (Structure, bool) {
	p := s.data().parent
	return Structure{s.d, p}, p != 0
}

// FindNext returns the next sibling, false if s is last on its level.
func (s Structure) FindNext() (Structure, bool) {
	n := s.data().next
	return Structure{s.d, n}, n != 0
}

// FindNextOf returns the next custom sibling whose identifier is one of
// ids.
func (s Structure) FindNextOf(ids ...int) (Structure, bool) {
	return findOf(s.d, s.data().next, ids)
}

// FindNextSame returns the next custom sibling with the same identifier.
// The structure must be custom.
func (s Structure) FindNextSame() (Structure, bool) {
	return s.FindNextOf(s.Identifier())
}

// HasChildren reports whether the structure has child structures. The
// structure must be custom.
func (s Structure) HasChildren() bool {
	return s.childLink() != 0
}

// FindFirstChild returns the first child, false if there is none. The
// structure must be custom.
func (s Structure) FindFirstChild() (Structure, bool) {
	c := s.childLink()
	return Structure{s.d, c}, c != 0
}

// FirstChild is FindFirstChild with the child asserted present.
func (s Structure) FirstChild() Structure {
	c, ok := s.FindFirstChild()
	if !ok {
		panic("openddl: FirstChild on structure without children")
	}
	return c
}

// Children iterates the structure's children in source order. The
// structure must be custom.
func (s Structure) Children() iter.Seq[Structure] {
	return siblings(s.d, s.childLink())
}

// ChildrenOf iterates the custom children whose identifier is one of ids.
// The structure must be custom.
func (s Structure) ChildrenOf(ids ...int) iter.Seq[Structure] {
	return siblingsOf(s.d, s.childLink(), ids)
}

// FindFirstChildOf returns the first custom child whose identifier is one
// of ids. The structure must be custom.
func (s Structure) FindFirstChildOf(ids ...int) (Structure, bool) {
	return findOf(s.d, s.childLink(), ids)
}

// FirstChildOf is FindFirstChildOf with the match asserted present.
func (s Structure) FirstChildOf(ids ...int) Structure {
	c, ok := s.FindFirstChildOf(ids...)
	if !ok {
		panic("openddl: no child structure of given identifier")
	}
	return c
}

// FindFirstChildOfType returns the first child of the given type tag. The
// structure must be custom.
func (s Structure) FindFirstChildOfType(t Type) (Structure, bool) {
	for i := s.childLink(); i != 0; i = s.d.structures[i].next {
		if s.d.structures[i].typ == t {
			return Structure{s.d, i}, true
		}
	}
	return Structure{}, false
}

// FirstChildOfType is FindFirstChildOfType with the match asserted
// present.
func (s Structure) FirstChildOfType(t Type) Structure {
	c, ok := s.FindFirstChildOfType(t)
	if !ok {
		panic("openddl: no child structure of type " + t.String())
	}
	return c
}

func (s Structure) childLink() int32 {
	sd := s.data()
	if sd.typ != Custom {
		panic("openddl: child access on primitive structure")
	}
	return sd.firstChild
}

// PropertyCount returns the number of properties. The structure must be
// custom.
func (s Structure) PropertyCount() int {
	sd := s.data()
	if sd.typ != Custom {
		panic("openddl: PropertyCount on primitive structure")
	}
	return int(sd.propCount)
}

// HasProperties reports whether the structure has properties. The
// structure must be custom.
func (s Structure) HasProperties() bool {
	return s.PropertyCount() != 0
}

// Properties iterates the structure's properties in source order. The
// structure must be custom.
func (s Structure) Properties() iter.Seq[Property] {
	sd := s.data()
	if sd.typ != Custom {
		panic("openddl: Properties on primitive structure")
	}
	return func(yield func(Property) bool) {
		for i := sd.propBegin; i < sd.propBegin+sd.propCount; i++ {
			if !yield(Property{s.d, i}) {
				return
			}
		}
	}
}

// FindPropertyOf returns the first property with the given identifier,
// false if there is none. The structure must be custom.
func (s Structure) FindPropertyOf(identifier int) (Property, bool) {
	for p := range s.Properties() {
		if p.Identifier() == identifier {
			return p, true
		}
	}
	return Property{}, false
}

// PropertyOf is FindPropertyOf with the property asserted present.
func (s Structure) PropertyOf(identifier int) Property {
	p, ok := s.FindPropertyOf(identifier)
	if !ok {
		panic("openddl: no property of given identifier")
	}
	return p
}
