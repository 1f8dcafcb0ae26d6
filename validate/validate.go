// Package validate checks a parsed OpenDDL document against a declarative
// schema: which structures may appear where and how often, which properties
// they may carry, and what shape their primitive payloads must have.
//
// A schema is plain data built from the same identifier space the document
// was parsed with. Validation walks the tree top-down and reports the first
// violation; it never mutates the document and may be run repeatedly with
// different schemas against the same tree. Structures and properties whose
// identifiers did not resolve during parsing are skipped, not rejected, so
// documents using extensions a schema does not know about still validate.
package validate

import (
	"iter"
	"maps"
	"slices"

	"github.com/opengex/openddl"
	"github.com/opengex/openddl/debug"
)

// Range bounds how many structures of one identifier may appear at a level.
// Max of 0 means unbounded.
type Range struct {
	Min, Max int
}

// Structures lists the custom structure identifiers allowed at one level of
// the tree, each with its occurrence range.
type Structures map[int]Range

// Property declares one allowed property of a structure. The value found in
// the document must be compatible with Type; see
// openddl.Property.IsTypeCompatibleWith for the compatibility rules.
type Property struct {
	Identifier int
	Type       openddl.Type
	Required   bool
}

// Structure declares the schema of one custom structure identifier.
//
// Primitives lists the types allowed for direct primitive children.
// PrimitiveCount, when nonzero, requires exactly that many primitive
// children; PrimitiveArraySize, when nonzero, requires every primitive
// child to hold exactly that many values. Structures lists the allowed
// nested custom structures.
type Structure struct {
	Identifier         int
	Properties         []Property
	Primitives         []openddl.Type
	PrimitiveCount     int
	PrimitiveArraySize int
	Structures         Structures
}

// Validate walks d against the schema. root bounds the top-level
// structures; schemas describes each known structure identifier. The first
// violation is returned as a *Error; nil means the document conforms.
//
// Top-level structures must be custom: the grammar permits primitive
// structures only inside another structure, so one in the root is always a
// violation regardless of schema. A structure whose identifier has no
// schemas entry is accepted without looking inside it.
func Validate(d *openddl.Document, root Structures, schemas []Structure) error {
	for s := range d.Children() {
		if !s.IsCustom() {
			return &Error{Msg: "unexpected primitive structure in root"}
		}
	}
	v := &validator{d: d, byID: make(map[int]*Structure, len(schemas))}
	for i := range schemas {
		v.byID[schemas[i].Identifier] = &schemas[i]
	}
	return v.level(d.Children(), root)
}

type validator struct {
	d    *openddl.Document
	byID map[int]*Structure
}

// level checks one sibling run of custom structures against an allowlist.
// Primitive structures in the run are the owner's concern and are skipped
// here. Unresolved identifiers are skipped entirely.
func (v *validator) level(children iter.Seq[openddl.Structure], allowed Structures) error {
	counts := make(map[int]int)
	for s := range children {
		if !s.IsCustom() {
			continue
		}
		id := s.Identifier()
		if id == openddl.UnknownIdentifier {
			continue
		}
		if _, ok := allowed[id]; !ok {
			return errf("unexpected structure %s", v.d.StructureName(id))
		}
		counts[id]++
		if err := v.structure(s); err != nil {
			return err
		}
	}
	for _, id := range slices.Sorted(maps.Keys(allowed)) {
		r, n := allowed[id], counts[id]
		if r.Max != 0 && n > r.Max {
			return errf("too many %s structures, got %d but expected max %d",
				v.d.StructureName(id), n, r.Max)
		}
		if n < r.Min {
			return errf("too little %s structures, got %d but expected min %d",
				v.d.StructureName(id), n, r.Min)
		}
	}
	return nil
}

func (v *validator) structure(s openddl.Structure) error {
	schema, ok := v.byID[s.Identifier()]
	if !ok {
		return nil
	}
	name := v.d.StructureName(s.Identifier())
	if debug.Validate() {
		debug.Logf("openddl: validating structure %s\n", name)
	}
	for p := range s.Properties() {
		id := p.Identifier()
		if id == openddl.UnknownIdentifier {
			continue
		}
		sp := findProperty(schema.Properties, id)
		if sp == nil {
			return errf("unexpected property %s in structure %s",
				v.d.PropertyName(id), name)
		}
		if !p.IsTypeCompatibleWith(sp.Type) {
			return errf("unexpected type of property %s, expected %s",
				v.d.PropertyName(id), sp.Type)
		}
	}
	for i := range schema.Properties {
		sp := &schema.Properties[i]
		if !sp.Required {
			continue
		}
		if _, ok := s.FindPropertyOf(sp.Identifier); !ok {
			return errf("expected property %s in structure %s",
				v.d.PropertyName(sp.Identifier), name)
		}
	}
	count := 0
	for c := range s.Children() {
		if c.IsCustom() {
			continue
		}
		if !slices.Contains(schema.Primitives, c.Type()) {
			return errf("unexpected sub-structure of type %s in structure %s",
				c.Type(), name)
		}
		count++
	}
	if schema.PrimitiveCount != 0 && count != schema.PrimitiveCount {
		return errf("expected exactly %d primitive sub-structures in structure %s",
			schema.PrimitiveCount, name)
	}
	if schema.PrimitiveArraySize != 0 {
		for c := range s.Children() {
			if c.IsCustom() {
				continue
			}
			if c.ArraySize() != schema.PrimitiveArraySize {
				return errf("expected exactly %d values in %s sub-structure",
					schema.PrimitiveArraySize, name)
			}
		}
	}
	return v.level(s.Children(), schema.Structures)
}

func findProperty(props []Property, identifier int) *Property {
	for i := range props {
		if props[i].Identifier == identifier {
			return &props[i]
		}
	}
	return nil
}
